package utils

import (
	"strings"

	"github.com/Bricklabsai/theralink/internal/pkg/dto/requests"
)

func SanitizeRegisterUserRequest(input *requests.RegisterUser) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.FullName = strings.TrimSpace(input.FullName)
	input.Role = strings.ToLower(strings.TrimSpace(input.Role))
}

func SanitizeLoginUserRequest(input *requests.LoginUser) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
}

// SanitizeCreateAppointmentRequest trims surrounding whitespace only. Date and
// time are compared against the schedule verbatim, so they are not reformatted.
func SanitizeCreateAppointmentRequest(input *requests.CreateAppointment) {
	input.TherapistID = strings.TrimSpace(input.TherapistID)
	input.Date = strings.TrimSpace(input.Date)
	input.Time = strings.TrimSpace(input.Time)
	input.SessionType = strings.ToLower(strings.TrimSpace(input.SessionType))
	input.ClientNotes = strings.TrimSpace(input.ClientNotes)
}

func SanitizeCreateBookingRequest(input *requests.CreateBookingRequest) {
	input.TherapistID = strings.TrimSpace(input.TherapistID)
	input.RequestedDate = strings.TrimSpace(input.RequestedDate)
	input.RequestedTime = strings.TrimSpace(input.RequestedTime)
	input.Message = strings.TrimSpace(input.Message)
}

func SanitizeSendMessageRequest(input *requests.SendMessage) {
	input.ReceiverID = strings.TrimSpace(input.ReceiverID)
	input.Content = strings.TrimSpace(input.Content)
}

func SanitizeCreateNoteRequest(input *requests.CreateNote) {
	input.BookingRequestID = strings.TrimSpace(input.BookingRequestID)
	input.Title = strings.TrimSpace(input.Title)
	input.Content = strings.TrimSpace(input.Content)
}

func SanitizeUpdateNoteRequest(input *requests.UpdateNote) {
	input.Title = strings.TrimSpace(input.Title)
	input.Content = strings.TrimSpace(input.Content)
}

func SanitizePaymentEventRequest(input *requests.PaymentEvent) {
	input.Event = strings.ToUpper(strings.TrimSpace(input.Event))
	input.Result.Status = strings.TrimSpace(input.Result.Status)
	input.Result.Reference = strings.TrimSpace(input.Result.Reference)
	input.Result.PhoneNumber = strings.TrimSpace(input.Result.PhoneNumber)
	input.Result.PaymentMethod = strings.TrimSpace(input.Result.PaymentMethod)
}
