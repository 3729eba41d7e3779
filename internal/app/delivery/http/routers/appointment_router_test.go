package routers

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Bricklabsai/theralink/internal/app/config"
	"github.com/Bricklabsai/theralink/internal/app/contracts/mocks"
	"github.com/Bricklabsai/theralink/internal/app/delivery/http/controllers"
	"github.com/Bricklabsai/theralink/internal/app/models"
	"github.com/Bricklabsai/theralink/internal/pkg/constvars"
	"github.com/Bricklabsai/theralink/internal/pkg/dto/requests"
	"github.com/Bricklabsai/theralink/internal/pkg/dto/responses"
	"github.com/Bricklabsai/theralink/internal/pkg/exceptions"
	"github.com/Bricklabsai/theralink/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockAppointmentUsecase struct {
	mock.Mock
}

func (m *MockAppointmentUsecase) CreateAppointment(ctx context.Context, request *requests.CreateAppointment) (*responses.CreateAppointment, error) {
	args := m.Called(ctx, request)
	response, _ := args.Get(0).(*responses.CreateAppointment)
	return response, args.Error(1)
}

func (m *MockAppointmentUsecase) FindMyAppointments(ctx context.Context, request *requests.FindMyAppointments) ([]responses.Appointment, error) {
	args := m.Called(ctx, request)
	response, _ := args.Get(0).([]responses.Appointment)
	return response, args.Error(1)
}

func bearerToken(t *testing.T, sessionID string) string {
	token, err := utils.GenerateSessionJWT(sessionID, "router-secret", 1)
	require.NoError(t, err)
	return constvars.AuthorizationBearerPrefix + token
}

func TestAppointmentRouter_AnonymousBookingAsksToLogin(t *testing.T) {
	usecase := new(MockAppointmentUsecase)
	usecase.On("CreateAppointment", mock.Anything, mock.MatchedBy(func(r *requests.CreateAppointment) bool {
		return r.SessionData == ""
	})).Return(nil, exceptions.ErrLoginToBook(nil))

	router := chi.NewRouter()
	attachAppointmentRoutes(router, newTestMiddlewares(new(mocks.SessionService), config.App{}), controllers.NewAppointmentController(zap.NewNop(), usecase))

	body, _ := json.Marshal(requests.CreateAppointment{TherapistID: "t-1", Date: "2024-05-02", Time: "09:00"})
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/", bytes.NewBuffer(body)))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	var payload exceptions.CustomError
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &payload))
	assert.Equal(t, constvars.ErrClientLoginToBook, payload.ClientMessage)
}

func TestAppointmentRouter_SignedInBookingCarriesSession(t *testing.T) {
	sessions := new(mocks.SessionService)
	sessions.On("GetSessionData", mock.Anything, "s-1").Return(`{"user_id":"c-1","role":"client"}`, nil)

	usecase := new(MockAppointmentUsecase)
	usecase.On("CreateAppointment", mock.Anything, mock.MatchedBy(func(r *requests.CreateAppointment) bool {
		return r.SessionData != "" && r.TherapistID == "t-1"
	})).Return(&responses.CreateAppointment{
		Message:      constvars.BookingScheduledMessage,
		RedirectPath: constvars.ClientAppointmentsPath,
	}, nil)

	router := chi.NewRouter()
	attachAppointmentRoutes(router, newTestMiddlewares(sessions, config.App{}), controllers.NewAppointmentController(zap.NewNop(), usecase))

	body, _ := json.Marshal(requests.CreateAppointment{TherapistID: "t-1", Date: "2024-05-02", Time: "09:00"})
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBuffer(body))
	req.Header.Set(constvars.HeaderAuthorization, bearerToken(t, "s-1"))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
	usecase.AssertExpectations(t)
}

func TestAppointmentRouter_MyAppointmentsIsClientOnly(t *testing.T) {
	sessions := new(mocks.SessionService)
	sessions.On("GetSessionData", mock.Anything, "s-friend").Return("friend", nil)
	sessions.On("ParseSessionData", mock.Anything, "friend").Return(&models.Session{UserID: "f-1", Role: constvars.RoleFriend}, nil)

	sessions.On("GetSessionData", mock.Anything, "s-client").Return("client", nil)
	sessions.On("ParseSessionData", mock.Anything, "client").Return(&models.Session{UserID: "c-1", Role: constvars.RoleClient}, nil)

	usecase := new(MockAppointmentUsecase)
	usecase.On("FindMyAppointments", mock.Anything, mock.Anything).Return([]responses.Appointment{}, nil)

	router := chi.NewRouter()
	router.Route("/api/v1/appointments", func(r chi.Router) {
		attachAppointmentRoutes(r, newTestMiddlewares(sessions, config.App{EndpointPrefix: "api", Version: "v1"}), controllers.NewAppointmentController(zap.NewNop(), usecase))
	})

	t.Run("friend is forbidden", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/appointments/me", nil)
		req.Header.Set(constvars.HeaderAuthorization, bearerToken(t, "s-friend"))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
		usecase.AssertNotCalled(t, "FindMyAppointments", mock.Anything, mock.Anything)
	})

	t.Run("client is allowed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/appointments/me", nil)
		req.Header.Set(constvars.HeaderAuthorization, bearerToken(t, "s-client"))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		usecase.AssertNumberOfCalls(t, "FindMyAppointments", 1)
	})
}
