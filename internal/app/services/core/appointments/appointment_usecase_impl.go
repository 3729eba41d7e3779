package appointments

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/Bricklabsai/theralink/internal/app/contracts"
	"github.com/Bricklabsai/theralink/internal/app/models"
	"github.com/Bricklabsai/theralink/internal/app/services/shared/events"
	"github.com/Bricklabsai/theralink/internal/pkg/constvars"
	"github.com/Bricklabsai/theralink/internal/pkg/dto/requests"
	"github.com/Bricklabsai/theralink/internal/pkg/dto/responses"
	"github.com/Bricklabsai/theralink/internal/pkg/exceptions"
	"github.com/Bricklabsai/theralink/internal/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type appointmentUsecase struct {
	AppointmentRepository contracts.AppointmentRepository
	TherapistRepository   contracts.TherapistRepository
	SessionService        contracts.SessionService
	EventPublisher        contracts.EventPublisher
	Location              *time.Location
	Log                   *zap.Logger
}

var (
	appointmentUsecaseInstance contracts.AppointmentUsecase
	onceAppointmentUsecase     sync.Once
)

func NewAppointmentUsecase(
	appointmentRepository contracts.AppointmentRepository,
	therapistRepository contracts.TherapistRepository,
	sessionService contracts.SessionService,
	eventPublisher contracts.EventPublisher,
	location *time.Location,
	logger *zap.Logger,
) contracts.AppointmentUsecase {
	onceAppointmentUsecase.Do(func() {
		appointmentUsecaseInstance = &appointmentUsecase{
			AppointmentRepository: appointmentRepository,
			TherapistRepository:   therapistRepository,
			SessionService:        sessionService,
			EventPublisher:        eventPublisher,
			Location:              location,
			Log:                   logger,
		}
	})
	return appointmentUsecaseInstance
}

// CreateAppointment books the selected slot. Nothing is written unless the
// caller is signed in and therapist, date and time are all present. There is
// no duplicate check: submitting twice books twice.
func (uc *appointmentUsecase) CreateAppointment(ctx context.Context, request *requests.CreateAppointment) (*responses.CreateAppointment, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("appointmentUsecase.CreateAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTherapistIDKey, request.TherapistID),
	)

	// Anonymous visitors are asked to login first
	if request.SessionData == "" {
		return nil, exceptions.ErrLoginToBook(nil)
	}
	session, err := uc.SessionService.ParseSessionData(ctx, request.SessionData)
	if err != nil {
		return nil, exceptions.ErrLoginToBook(err)
	}
	if !session.IsClient() {
		return nil, exceptions.ErrNotMatchRoleType(nil)
	}

	if strings.TrimSpace(request.TherapistID) == "" || strings.TrimSpace(request.Date) == "" || strings.TrimSpace(request.Time) == "" {
		return nil, exceptions.ErrBookingIncomplete(nil)
	}

	therapist, err := uc.findTherapist(ctx, request.TherapistID)
	if err != nil {
		return nil, err
	}

	startTime, err := utils.ParseSlotStart(request.Date, request.Time, uc.Location)
	if err != nil {
		return nil, exceptions.ErrCannotParseSlotTime(err)
	}

	sessionType := request.SessionType
	if sessionType == "" {
		sessionType = constvars.SessionTypeVideo
	}

	status := constvars.AppointmentStatusScheduled
	message := constvars.BookingScheduledMessage
	if therapist.IsCommunityTherapist {
		status = constvars.AppointmentStatusConfirmed
		message = constvars.BookingConfirmedMessage
	}

	appointment := &models.Appointment{
		ID:          uuid.NewString(),
		ClientID:    session.UserID,
		TherapistID: therapist.ID,
		StartTime:   startTime,
		EndTime:     utils.CalculateSessionEnd(startTime),
		SessionType: sessionType,
		Status:      status,
		ClientNotes: request.ClientNotes,
	}
	appointment.SetCreatedAtUpdatedAt()

	_, err = uc.AppointmentRepository.CreateAppointment(ctx, appointment)
	if err != nil {
		uc.Log.Error("appointmentUsecase.CreateAppointment error inserting appointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrBookingFailed(err)
	}

	utils.LogBusinessEvent(uc.Log, constvars.EventAppointmentCreated, requestID,
		zap.String(constvars.LoggingUserIDKey, session.UserID),
		zap.String(constvars.LoggingTherapistIDKey, therapist.ID),
		zap.String("status", status),
	)

	// The booking stands even when the event cannot be published
	event := events.NewDomainEvent(constvars.EventAppointmentCreated, map[string]interface{}{
		"appointment_id": appointment.ID,
		"client_id":      appointment.ClientID,
		"therapist_id":   appointment.TherapistID,
		"start_time":     appointment.StartTime,
		"end_time":       appointment.EndTime,
		"session_type":   appointment.SessionType,
		"status":         appointment.Status,
	})
	if err := uc.EventPublisher.Publish(ctx, event); err != nil {
		uc.Log.Warn("appointmentUsecase.CreateAppointment cannot publish event",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	return &responses.CreateAppointment{
		Appointment:  toAppointmentResponse(appointment),
		Message:      message,
		RedirectPath: constvars.ClientAppointmentsPath,
	}, nil
}

func (uc *appointmentUsecase) FindMyAppointments(ctx context.Context, request *requests.FindMyAppointments) ([]responses.Appointment, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, request.SessionData)
	if err != nil {
		return nil, err
	}

	appointments, err := uc.AppointmentRepository.FindByClientID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}

	result := make([]responses.Appointment, 0, len(appointments))
	for i := range appointments {
		result = append(result, toAppointmentResponse(&appointments[i]))
	}
	return result, nil
}

func (uc *appointmentUsecase) findTherapist(ctx context.Context, id string) (*models.Therapist, error) {
	therapist, err := uc.TherapistRepository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if therapist == nil {
		therapist, err = uc.TherapistRepository.FindByUserID(ctx, id)
		if err != nil {
			return nil, err
		}
	}
	if therapist == nil {
		return nil, exceptions.ErrTherapistNotExist(nil)
	}
	return therapist, nil
}

func toAppointmentResponse(appointment *models.Appointment) responses.Appointment {
	return responses.Appointment{
		ID:          appointment.ID,
		ClientID:    appointment.ClientID,
		TherapistID: appointment.TherapistID,
		StartTime:   appointment.StartTime,
		EndTime:     appointment.EndTime,
		SessionType: appointment.SessionType,
		Status:      appointment.Status,
		ClientNotes: appointment.ClientNotes,
		MeetingLink: appointment.MeetingLink,
		CreatedAt:   appointment.CreatedAt,
	}
}
