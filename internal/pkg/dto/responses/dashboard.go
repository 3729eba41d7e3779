package responses

type AdminDashboard struct {
	Users                 int64    `json:"users"`
	Therapists            int64    `json:"therapists"`
	Friends               int64    `json:"friends"`
	Clients               int64    `json:"clients"`
	Admins                int64    `json:"admins"`
	Appointments          int64    `json:"appointments"`
	CompletedAppointments int64    `json:"completed_appointments"`
	CancelledAppointments int64    `json:"cancelled_appointments"`
	Transactions          int64    `json:"transactions"`
	TotalRevenue          float64  `json:"total_revenue"`
	SessionNotes          int64    `json:"session_notes"`
	UnreadFeedback        int64    `json:"unread_feedback"`
	UnreadMessages        int64    `json:"unread_messages"`
	Reviews               int64    `json:"reviews"`
	AverageRating         float64  `json:"average_rating"`
	PendingTherapists     int64    `json:"pending_therapists"`
	PendingFriends        int64    `json:"pending_friends"`
	Blogs                 int64    `json:"blogs"`
	PublishedBlogs        int64    `json:"published_blogs"`
	ContactMessages       int64    `json:"contact_messages"`
	FailedFields          []string `json:"failed_fields,omitempty"`
}

type FriendDashboard struct {
	ActiveClients  int64    `json:"active_clients"`
	TotalSessions  int64    `json:"total_sessions"`
	UnreadMessages int64    `json:"unread_messages"`
	Notes          int64    `json:"notes"`
	FailedFields   []string `json:"failed_fields,omitempty"`
}
