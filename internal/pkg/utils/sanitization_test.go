package utils

import (
	"testing"

	"github.com/Bricklabsai/theralink/internal/pkg/dto/requests"
	"github.com/stretchr/testify/assert"
)

func TestSanitizeRegisterUserRequest(t *testing.T) {
	t.Run("Email And Role Lowercased", func(t *testing.T) {
		request := &requests.RegisterUser{
			Email:    "  Jane@Example.COM ",
			FullName: "  Jane Doe ",
			Role:     " Therapist ",
		}

		SanitizeRegisterUserRequest(request)

		assert.Equal(t, "jane@example.com", request.Email, "email should be lowercase and trimmed")
		assert.Equal(t, "Jane Doe", request.FullName, "full name should be trimmed")
		assert.Equal(t, "therapist", request.Role, "role should be lowercase and trimmed")
	})
}

func TestSanitizeCreateAppointmentRequest(t *testing.T) {
	t.Run("Date And Time Only Trimmed", func(t *testing.T) {
		request := &requests.CreateAppointment{
			TherapistID: " abc ",
			Date:        " 2024-03-01 ",
			Time:        " 09:00 ",
			SessionType: " VIDEO ",
		}

		SanitizeCreateAppointmentRequest(request)

		assert.Equal(t, "abc", request.TherapistID)
		assert.Equal(t, "2024-03-01", request.Date, "date should keep its format")
		assert.Equal(t, "09:00", request.Time, "time should keep its format")
		assert.Equal(t, "video", request.SessionType)
	})
}

func TestSanitizeSendMessageRequest(t *testing.T) {
	t.Run("Whitespace Only Content Becomes Empty", func(t *testing.T) {
		request := &requests.SendMessage{ReceiverID: " peer ", Content: "   \n "}

		SanitizeSendMessageRequest(request)

		assert.Equal(t, "peer", request.ReceiverID)
		assert.Empty(t, request.Content, "blank content should be trimmed to empty")
	})
}

func TestSanitizePaymentEventRequest(t *testing.T) {
	request := &requests.PaymentEvent{
		Event:  " complete ",
		Result: requests.PaymentEventResult{Reference: " REF1 "},
	}

	SanitizePaymentEventRequest(request)

	assert.Equal(t, "COMPLETE", request.Event, "event should be uppercased")
	assert.Equal(t, "REF1", request.Result.Reference)
}
