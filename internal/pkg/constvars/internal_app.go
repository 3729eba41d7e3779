package constvars

import "time"

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_SESSION_DATA_KEY         ContextKey = "session_data"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	EnvironmentDevelopment = "development"
	EnvironmentProduction  = "production"
)

const (
	RoleAdmin     = "admin"
	RoleTherapist = "therapist"
	RoleFriend    = "friend"
	RoleClient    = "client"
)

const (
	MongoCollectionProfiles        = "profiles"
	MongoCollectionTherapists      = "therapists"
	MongoCollectionAppointments    = "appointments"
	MongoCollectionBookingRequests = "booking_requests"
	MongoCollectionBookingNotes    = "booking_notes"
	MongoCollectionMessages        = "messages"
	MongoCollectionTransactions    = "transactions"
	MongoCollectionSessionNotes    = "session_notes"
	MongoCollectionFeedback        = "feedback"
	MongoCollectionContactMessages = "contact_messages"
	MongoCollectionReviews         = "reviews"
	MongoCollectionFriendDetails   = "friend_details"
	MongoCollectionBlogs           = "blogs"
)

const (
	RedisKeySessionPrefix     = "session:"
	RedisKeyVideoRoomPrefix   = "video_room:"
	RedisKeyPaymentLockPrefix = "payment_lock:"
)

const (
	AppointmentStatusScheduled = "scheduled"
	AppointmentStatusConfirmed = "confirmed"
	AppointmentStatusCompleted = "completed"
	AppointmentStatusCancelled = "cancelled"
)

const (
	BookingRequestStatusPending   = "pending"
	BookingRequestStatusScheduled = "scheduled"
	BookingRequestStatusConfirmed = "confirmed"
	BookingRequestStatusCompleted = "completed"
)

const (
	SessionTypeVideo = "video"
	SessionTypeChat  = "chat"
)

const (
	ApplicationStatusPending  = "pending"
	ApplicationStatusApproved = "approved"
	ApplicationStatusRejected = "rejected"
)

const (
	TherapistFilterAll      = "all"
	TherapistFilterVerified = "verified"
	TherapistFilterPending  = "pending"
	TherapistFilterActive   = "active"
)

const (
	TransactionStatusSuccess = "success"
	TransactionStatusFailed  = "failed"
	TransactionStatusPending = "pending"
)

const (
	VideoSessionDuration     = 50 * time.Minute
	ChatSessionDuration      = 30 * time.Minute
	DefaultHourlyRate        = 80
	ChatRateFactor           = 0.7
	DefaultSpecialization    = "General Therapy"
	DefaultTherapistBio      = "Professional therapist."
	DefaultProfileName       = "Unknown"
	FallbackAvailabilityDays = 7
	MessageThreadLimit       = 50
	ClientAppointmentsPath   = "/client/appointments"
)

// DefaultAvailabilitySlots is offered on every fallback date.
var DefaultAvailabilitySlots = []string{"09:00", "10:00", "11:00", "14:00", "15:00", "16:00"}

const (
	DateLayout          = "2006-01-02"
	SlotLayoutMinutes   = "2006-01-02T15:04"
	SlotLayoutSeconds   = "2006-01-02T15:04:05"
	AvatarObjectPattern = "%s/avatar-%d.%s"
	AvatarCacheMaxAge   = 3600
	AvatarMaxSizeInMB   = 5
)

// AllowedAvatarExtensions lists the accepted profile image extensions.
var AllowedAvatarExtensions = map[string]bool{
	"jpg":  true,
	"jpeg": true,
	"png":  true,
	"webp": true,
}

const (
	PaymentEventComplete   = "COMPLETE"
	PaymentEventFailed     = "FAILED"
	PaymentEventInProgress = "IN-PROGRESS"
)

const (
	VideoEventParticipantJoined     = "participantJoined"
	VideoEventParticipantLeft       = "participantLeft"
	VideoEventVideoConferenceJoined = "videoConferenceJoined"
	VideoEventVideoConferenceLeft   = "videoConferenceLeft"
	VideoEventReadyToClose          = "readyToClose"
	VideoRoomNamePattern            = "TherapySession-%s-%d"
	VideoDisplayNameTherapist       = "Therapist"
	VideoDisplayNameClient          = "Client"
)

const (
	EventAppointmentCreated = "appointment.created"
	EventPaymentCompleted   = "payment.completed"
	EventPaymentFailed      = "payment.failed"
	EventPaymentInProgress  = "payment.in_progress"
	EventVideoRoomPrefix    = "video."
)
