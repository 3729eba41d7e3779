package mocks

import (
	"context"

	"github.com/Bricklabsai/theralink/internal/app/models"

	"github.com/stretchr/testify/mock"
)

type ProfileRepository struct {
	mock.Mock
}

func (m *ProfileRepository) CreateProfile(ctx context.Context, profile *models.Profile) (string, error) {
	args := m.Called(ctx, profile)
	return args.String(0), args.Error(1)
}

func (m *ProfileRepository) FindByEmail(ctx context.Context, email string) (*models.Profile, error) {
	args := m.Called(ctx, email)
	profile, _ := args.Get(0).(*models.Profile)
	return profile, args.Error(1)
}

func (m *ProfileRepository) FindByID(ctx context.Context, profileID string) (*models.Profile, error) {
	args := m.Called(ctx, profileID)
	profile, _ := args.Get(0).(*models.Profile)
	return profile, args.Error(1)
}

func (m *ProfileRepository) FindByIDs(ctx context.Context, profileIDs []string) ([]models.Profile, error) {
	args := m.Called(ctx, profileIDs)
	profiles, _ := args.Get(0).([]models.Profile)
	return profiles, args.Error(1)
}

func (m *ProfileRepository) UpdateProfileImageURL(ctx context.Context, profileID, imageURL string) error {
	args := m.Called(ctx, profileID, imageURL)
	return args.Error(0)
}

type TherapistRepository struct {
	mock.Mock
}

func (m *TherapistRepository) CreateTherapist(ctx context.Context, therapist *models.Therapist) (string, error) {
	args := m.Called(ctx, therapist)
	return args.String(0), args.Error(1)
}

func (m *TherapistRepository) FindByID(ctx context.Context, therapistID string) (*models.Therapist, error) {
	args := m.Called(ctx, therapistID)
	therapist, _ := args.Get(0).(*models.Therapist)
	return therapist, args.Error(1)
}

func (m *TherapistRepository) FindByUserID(ctx context.Context, userID string) (*models.Therapist, error) {
	args := m.Called(ctx, userID)
	therapist, _ := args.Get(0).(*models.Therapist)
	return therapist, args.Error(1)
}

func (m *TherapistRepository) FindAll(ctx context.Context) ([]models.Therapist, error) {
	args := m.Called(ctx)
	therapists, _ := args.Get(0).([]models.Therapist)
	return therapists, args.Error(1)
}

func (m *TherapistRepository) UpdateAvailability(ctx context.Context, therapistID string, availability interface{}) error {
	args := m.Called(ctx, therapistID, availability)
	return args.Error(0)
}

func (m *TherapistRepository) UpdateVerification(ctx context.Context, therapistID string, isVerified bool, applicationStatus string) error {
	args := m.Called(ctx, therapistID, isVerified, applicationStatus)
	return args.Error(0)
}

type AppointmentRepository struct {
	mock.Mock
}

func (m *AppointmentRepository) CreateAppointment(ctx context.Context, appointment *models.Appointment) (string, error) {
	args := m.Called(ctx, appointment)
	return args.String(0), args.Error(1)
}

func (m *AppointmentRepository) FindByClientID(ctx context.Context, clientID string) ([]models.Appointment, error) {
	args := m.Called(ctx, clientID)
	appointments, _ := args.Get(0).([]models.Appointment)
	return appointments, args.Error(1)
}

type BookingRequestRepository struct {
	mock.Mock
}

func (m *BookingRequestRepository) CreateBookingRequest(ctx context.Context, bookingRequest *models.BookingRequest) (string, error) {
	args := m.Called(ctx, bookingRequest)
	return args.String(0), args.Error(1)
}

func (m *BookingRequestRepository) FindByID(ctx context.Context, bookingRequestID string) (*models.BookingRequest, error) {
	args := m.Called(ctx, bookingRequestID)
	bookingRequest, _ := args.Get(0).(*models.BookingRequest)
	return bookingRequest, args.Error(1)
}

func (m *BookingRequestRepository) FindByTherapistID(ctx context.Context, therapistID string) ([]models.BookingRequest, error) {
	args := m.Called(ctx, therapistID)
	bookingRequests, _ := args.Get(0).([]models.BookingRequest)
	return bookingRequests, args.Error(1)
}

func (m *BookingRequestRepository) FindDistinctClientIDs(ctx context.Context, therapistID string) ([]string, error) {
	args := m.Called(ctx, therapistID)
	clientIDs, _ := args.Get(0).([]string)
	return clientIDs, args.Error(1)
}

type NoteRepository struct {
	mock.Mock
}

func (m *NoteRepository) CreateNote(ctx context.Context, note *models.BookingNote) (string, error) {
	args := m.Called(ctx, note)
	return args.String(0), args.Error(1)
}

func (m *NoteRepository) FindByTherapistID(ctx context.Context, therapistID string) ([]models.BookingNote, error) {
	args := m.Called(ctx, therapistID)
	notes, _ := args.Get(0).([]models.BookingNote)
	return notes, args.Error(1)
}

func (m *NoteRepository) FindByIDAndTherapistID(ctx context.Context, noteID, therapistID string) (*models.BookingNote, error) {
	args := m.Called(ctx, noteID, therapistID)
	note, _ := args.Get(0).(*models.BookingNote)
	return note, args.Error(1)
}

func (m *NoteRepository) UpdateNote(ctx context.Context, note *models.BookingNote) error {
	args := m.Called(ctx, note)
	return args.Error(0)
}

func (m *NoteRepository) DeleteByIDAndTherapistID(ctx context.Context, noteID, therapistID string) (bool, error) {
	args := m.Called(ctx, noteID, therapistID)
	return args.Bool(0), args.Error(1)
}

type MessageRepository struct {
	mock.Mock
}

func (m *MessageRepository) CreateMessage(ctx context.Context, message *models.Message) (string, error) {
	args := m.Called(ctx, message)
	return args.String(0), args.Error(1)
}

func (m *MessageRepository) FindThread(ctx context.Context, userID, peerID string, limit int64) ([]models.Message, error) {
	args := m.Called(ctx, userID, peerID, limit)
	messages, _ := args.Get(0).([]models.Message)
	return messages, args.Error(1)
}

type TransactionRepository struct {
	mock.Mock
}

func (m *TransactionRepository) CreateTransaction(ctx context.Context, transaction *models.Transaction) (string, error) {
	args := m.Called(ctx, transaction)
	return args.String(0), args.Error(1)
}

type StatsRepository struct {
	mock.Mock
}

func (m *StatsRepository) Count(ctx context.Context, collection string, filter map[string]interface{}) (int64, error) {
	args := m.Called(ctx, collection, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *StatsRepository) Sum(ctx context.Context, collection, field string, filter map[string]interface{}) (float64, error) {
	args := m.Called(ctx, collection, field, filter)
	return args.Get(0).(float64), args.Error(1)
}

func (m *StatsRepository) Average(ctx context.Context, collection, field string, filter map[string]interface{}) (float64, error) {
	args := m.Called(ctx, collection, field, filter)
	return args.Get(0).(float64), args.Error(1)
}

func (m *StatsRepository) CountDistinct(ctx context.Context, collection, field string, filter map[string]interface{}) (int64, error) {
	args := m.Called(ctx, collection, field, filter)
	return args.Get(0).(int64), args.Error(1)
}
