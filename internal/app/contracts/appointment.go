package contracts

import (
	"context"

	"github.com/Bricklabsai/theralink/internal/app/models"
	"github.com/Bricklabsai/theralink/internal/pkg/dto/requests"
	"github.com/Bricklabsai/theralink/internal/pkg/dto/responses"
)

type AppointmentRepository interface {
	CreateAppointment(ctx context.Context, appointment *models.Appointment) (string, error)
	FindByClientID(ctx context.Context, clientID string) ([]models.Appointment, error)
}

type AppointmentUsecase interface {
	CreateAppointment(ctx context.Context, request *requests.CreateAppointment) (*responses.CreateAppointment, error)
	FindMyAppointments(ctx context.Context, request *requests.FindMyAppointments) ([]responses.Appointment, error)
}
