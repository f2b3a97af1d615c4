package constvars

// Client messages are safe to surface to end users. The public directory is
// Spanish-facing, so the doctor-related ones keep the site wording.
const (
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientInvalidEmailOrPassword        = "Correo o contraseña incorrectos."
	ErrClientDoctorNotFound                = "No encontramos este profesional. Verifica el enlace o contacta al laboratorio."
	ErrClientDoctorUnavailable             = "Este perfil no está disponible actualmente."
	ErrClientDoctorSaveFailed              = "No pudimos guardar el profesional. Revisá los datos e intentá nuevamente."
	ErrClientInvalidImageFormat            = "the image you uploaded does not meet the specified standards"
	ErrClientProfileIdentifierMissing      = "Necesitamos un identificador de profesional para mostrar la ficha."
)

const (
	ErrDevInvalidInput             = "invalid input"
	ErrDevCannotParseJSON          = "cannot parse JSON into struct or other data types"
	ErrDevCannotMarshalJSON        = "cannot convert struct or other data types to JSON"
	ErrDevCannotParseMultipartForm = "cannot parse multipart form body"
	ErrDevValidationFailed         = "request validation failed"
	ErrDevServerDeadlineExceeded   = "the server took too long to respond"
	ErrDevInvalidCredentials       = "invalid credentials"
	ErrDevFailedToHashPassword     = "failed to hash password"
	ErrDevUserNotExists            = "user not exists in our system"
	ErrDevDoctorNotExists          = "doctor document not found"
	ErrDevDoctorInactive           = "doctor exists but is flagged inactive"
	ErrDevMissingProfileIdentifier = "neither slug nor id query parameter supplied"

	ErrDevAuthTokenMissing          = "authorization token is missing from the request header"
	ErrDevAuthTokenInvalid          = "authorization token is invalid"
	ErrDevAuthTokenInvalidOrExpired = "authorization token is invalid or already expired"
	ErrDevAuthGenerateToken         = "failed to generate JWT token"
	ErrDevAuthSigningMethod         = "unexpected JWT signing method"

	ErrDevMongoDBInsertDocument = "failed to insert document to mongoDB"
	ErrDevMongoDBFindDocument   = "failed to find document in mongoDB"
	ErrDevMongoDBUpdateDocument = "failed to update document in mongoDB"
	ErrDevMongoDBDeleteDocument = "failed to delete document in mongoDB"
	ErrDevMongoDBNotObjectID    = "given identifier is not a valid mongoDB ObjectID"
	ErrDevMongoDBWatchStream    = "failed to open mongoDB change stream"

	ErrDevRedisSet        = "failed to set value to redis"
	ErrDevRedisGetNoData  = "failed to get value from redis with key: %s"
	ErrDevRedisDelete     = "failed to delete value from redis"
	ErrDevRedisStoreSess  = "failed to store session data in redis"
	ErrDevSessionNotFound = "session data not found or already expired"

	ErrDevMinioCreateObject = "failed to put object to minio bucket %s"

	ErrDevRabbitMQPublish = "failed to publish message to rabbitMQ queue"
	ErrDevRabbitMQDeclare = "failed to declare rabbitMQ queue"
)
