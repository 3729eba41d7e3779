package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"password": "must be at least 8 characters long, contain at least one special character, and one uppercase letter",
	"oneof":    "must be one of [%s]",
	"gte":      "must be greater than or equal to %s",
	"lte":      "must be less than or equal to %s",
	"date":     "must be a date in YYYY-MM-DD format",
	"slot":     "must be a time in HH:MM format",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"oneof": true,
	"gte":   true,
	"lte":   true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientInvalidUsernameOrPassword     = "invalid email or password"
	ErrClientEmailAlreadyExists            = "email already used"
	ErrClientLoginToBook                   = "please login to book a session"
	ErrClientBookingIncomplete             = "please select a therapist, date and time"
	ErrClientBookingFailed                 = "could not complete your booking"
	ErrClientTherapistNotFound             = "therapist not found"
	ErrClientMessageNotSendable            = "client not selected or message is empty"
	ErrClientMessageSendFailed             = "cannot send message"
	ErrClientNoteIncomplete                = "missing title, content, or booking request"
	ErrClientNoteNotFound                  = "note not found"
	ErrClientBookingRequestNotFound        = "booking request not found"
	ErrClientInvalidImageFile              = "please upload a jpg, jpeg, png or webp image"
	ErrClientImageTooLarge                 = "image must be 5MB or smaller"
	ErrClientUnknownPaymentEvent           = "unknown payment event"
	ErrClientVideoRoomNotFound             = "video room is not available"
	ErrClientPaymentAlreadyProcessing      = "this payment is already being processed"
	ErrClientDashboardUnavailable          = "could not load the dashboard"
	ErrClientTooManyRequests               = "too many requests, you are temporarily blocked"
)

// Error messages for developers
const (
	ErrDevInvalidInput                 = "invalid input"
	ErrDevValidationFailed             = "request validation failed"
	ErrDevCannotParseJSON              = "cannot parse JSON"
	ErrDevCannotMarshalJSON            = "cannot marshal JSON"
	ErrDevCannotParseMultipartForm     = "cannot parse multipart form"
	ErrDevCannotParseTime              = "cannot parse booking date and time"
	ErrDevFailedToHashPassword         = "failed to hash password"
	ErrDevInvalidCredentials           = "invalid credentials"
	ErrDevEmailAlreadyExists           = "email already exists"
	ErrDevUserNotExists                = "user does not exist"
	ErrDevRoleTypeDoesntMatch          = "role type does not match"
	ErrDevMissingSessionData           = "session data missing from context"
	ErrDevAuthTokenMissing             = "authorization token missing"
	ErrDevAuthTokenInvalid             = "authorization token invalid"
	ErrDevAuthTokenInvalidOrExpired    = "authorization token invalid or expired"
	ErrDevAuthGenerateToken            = "failed to generate token"
	ErrDevAuthSigningMethod            = "unexpected signing method"
	ErrDevServerDeadlineExceeded       = "server deadline exceeded"
	ErrDevServerProcess                = "server failed to process request"
	ErrDevBookingIncomplete            = "booking selection incomplete"
	ErrDevTherapistNotFound            = "therapist does not exist"
	ErrDevMessageNotSendable           = "message content or receiver missing"
	ErrDevNoteIncomplete               = "note content or booking request missing"
	ErrDevNoteNotFound                 = "note does not exist or belongs to another therapist"
	ErrDevBookingRequestNotFound       = "booking request does not exist"
	ErrDevImageValidationFailed        = "image validation failed"
	ErrDevUnknownPaymentEvent          = "payment event %s is not handled"
	ErrDevVideoRoomNotFound            = "video room %s not registered"
	ErrDevPaymentLocked                = "payment reference %s is locked by another request"
	ErrDevDashboardQueryFailed         = "dashboard query %s failed"
	ErrDevDBFailedToFindDocument       = "failed to find document"
	ErrDevDBFailedToInsertDocument     = "failed to insert document"
	ErrDevDBFailedToUpdateDocument     = "failed to update document"
	ErrDevDBFailedToDeleteDocument     = "failed to delete document"
	ErrDevDBFailedToIterateDocuments   = "failed to iterate documents"
	ErrDevDBFailedToCountDocuments     = "failed to count documents"
	ErrDevDBFailedToAggregateDocuments = "failed to aggregate documents"
	ErrDevRedisGetData                 = "failed to get data from redis"
	ErrDevRedisSetData                 = "failed to set data in redis"
	ErrDevRedisDeleteData              = "failed to delete data in redis"
	ErrDevRedisUnlock                  = "failed to release redis lock"
	ErrDevMinioFailedToCreateObject    = "failed to create object in bucket %s"
	ErrDevMinioFailedToListObjects     = "failed to list objects in bucket %s"
	ErrDevMinioFailedToRemoveObject    = "failed to remove object in bucket %s"
	ErrDevRabbitMQPublishMessage       = "failed to publish message to queue %s"
)
