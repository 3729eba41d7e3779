package requests

type FindNotes struct {
	SessionData string `json:"-"`
	Search      string `json:"-"`
}

type CreateNote struct {
	SessionData      string `json:"-"`
	BookingRequestID string `json:"booking_request_id"`
	Title            string `json:"title" validate:"max=200"`
	Content          string `json:"content" validate:"max=10000"`
}

type UpdateNote struct {
	SessionData string `json:"-"`
	NoteID      string `json:"-" validate:"required"`
	Title       string `json:"title" validate:"max=200"`
	Content     string `json:"content" validate:"required,max=10000"`
}

type DeleteNote struct {
	SessionData string `json:"-"`
	NoteID      string `json:"-" validate:"required"`
}
