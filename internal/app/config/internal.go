package config

type InternalConfig struct {
	App InternalApp
	JWT InternalJWT
}

type InternalApp struct {
	Env                            string
	Port                           string
	Version                        string
	Timezone                       string
	EndpointPrefix                 string
	MaxRequests                    int
	ShutdownTimeoutInSeconds       int
	LoginSessionExpiredTimeInHours int
	RequestBodyLimitInMegabyte     int
	PhotoMaxUploadSizeInMB         int
	StreamHeartbeatInSeconds       int
}

type InternalJWT struct {
	Secret        string
	ExpTimeInHour int
}
