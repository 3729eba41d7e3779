package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"

	// Auth messages
	RegisterSuccessMessage = "account created successfully"
	LoginSuccessMessage    = "successfully login"
	LogoutSuccessMessage   = "successfully logout"

	// Booking messages
	GetTherapistBookingViewSuccessMessage = "get therapist booking details successfully"
	BookingConfirmedMessage               = "Your session has been confirmed."
	BookingScheduledMessage               = "Your session has been scheduled."
	GetAppointmentsSuccessMessage         = "get appointments successfully"
	CreateBookingRequestSuccessMessage    = "booking request sent successfully"
	GetBookingRequestsSuccessMessage      = "get booking requests successfully"
	GetClientsSuccessMessage              = "get clients successfully"

	// Therapist messages
	UpdateAvailabilitySuccessMessage = "availability updated successfully"
	UploadProfileImageSuccessMessage = "profile image updated successfully"
	GetTherapistsSuccessMessage      = "get therapists successfully"
	UpdateVerificationSuccessMessage = "therapist verification updated successfully"
	GetAdminDashboardSuccessMessage  = "get admin dashboard successfully"
	GetFriendDashboardSuccessMessage = "get friend dashboard successfully"
	GetMessagesSuccessMessage        = "get messages successfully"
	SendMessageSuccessMessage        = "message sent successfully"
	GetNotesSuccessMessage           = "get notes successfully"
	CreateNoteSuccessMessage         = "note created successfully"
	UpdateNoteSuccessMessage         = "note updated successfully"
	DeleteNoteSuccessMessage         = "note deleted successfully"
	GetCheckoutConfigSuccessMessage  = "get checkout configuration successfully"
	HandlePaymentEventSuccessMessage = "payment event handled successfully"
	OpenVideoRoomSuccessMessage      = "video room opened successfully"
	JoinVideoRoomSuccessMessage      = "video room joined successfully"
	HandleVideoEventSuccessMessage   = "video room event handled successfully"
	DisposeVideoRoomSuccessMessage   = "video room closed successfully"
)
