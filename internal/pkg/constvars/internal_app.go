package constvars

type contextKey string

const (
	CONTEXT_REQUEST_ID_KEY           contextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY contextKey = "is_client_request_id"
	CONTEXT_SESSION_DATA_KEY         contextKey = "session_data"
)

const (
	MongoCollectionDoctors = "doctors"
	MongoCollectionUsers   = "users"
)

const (
	RedisSessionKeyFormat = "session:%s"
)

const (
	DoctorAssetsPrefix     = "assets/doctors/"
	DoctorPhotoPlaceholder = "assets/placeholders/doctor.png"
)

// Social networks the doctor form exposes. Anything else in the stored
// document is dropped on write.
var DoctorSocialKeys = []string{"x", "facebook", "instagram", "tiktok"}

const (
	DoctorStatusAll      = "all"
	DoctorStatusActive   = "active"
	DoctorStatusInactive = "inactive"
)
