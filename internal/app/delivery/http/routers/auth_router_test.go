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
	"github.com/Bricklabsai/theralink/internal/app/delivery/http/middlewares"
	"github.com/Bricklabsai/theralink/internal/app/services/shared/rbac"
	"github.com/Bricklabsai/theralink/internal/pkg/constvars"
	"github.com/Bricklabsai/theralink/internal/pkg/dto/requests"
	"github.com/Bricklabsai/theralink/internal/pkg/dto/responses"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockAuthUsecase struct {
	mock.Mock
}

func (m *MockAuthUsecase) RegisterUser(ctx context.Context, request *requests.RegisterUser) (*responses.RegisterUser, error) {
	args := m.Called(ctx, request)
	response, _ := args.Get(0).(*responses.RegisterUser)
	return response, args.Error(1)
}

func (m *MockAuthUsecase) LoginUser(ctx context.Context, request *requests.LoginUser) (*responses.LoginUser, error) {
	args := m.Called(ctx, request)
	response, _ := args.Get(0).(*responses.LoginUser)
	return response, args.Error(1)
}

func (m *MockAuthUsecase) LogoutUser(ctx context.Context, sessionData string) error {
	args := m.Called(ctx, sessionData)
	return args.Error(0)
}

func newTestMiddlewares(sessions *mocks.SessionService, app config.App) *middlewares.Middlewares {
	enforcer, err := rbac.NewEnforcer()
	if err != nil {
		panic(err)
	}
	return middlewares.NewMiddlewares(zap.NewNop(), sessions, enforcer, &config.InternalConfig{
		App: app,
		JWT: config.AppJWT{Secret: "router-secret"},
	})
}

func TestAuthRouter_Register(t *testing.T) {
	logger := zap.NewNop()
	mockAuthUsecase := new(MockAuthUsecase)
	authController := controllers.NewAuthController(logger, mockAuthUsecase)

	router := chi.NewRouter()
	attachAuthRoutes(router, newTestMiddlewares(new(mocks.SessionService), config.App{AuthRateLimitPerMinute: 100}), authController)

	t.Run("valid registration", func(t *testing.T) {
		mockAuthUsecase.On("RegisterUser", mock.Anything, mock.MatchedBy(func(r *requests.RegisterUser) bool {
			return r.Email == "jane@example.com" && r.Role == constvars.RoleClient
		})).Return(&responses.RegisterUser{UserID: "u-1"}, nil).Once()

		body, _ := json.Marshal(requests.RegisterUser{
			Email:    " Jane@Example.com ",
			Password: "Secret!123",
			FullName: "Jane",
			Role:     "Client",
		})
		req := httptest.NewRequest(http.MethodPost, "/register", bytes.NewBuffer(body))
		req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
		mockAuthUsecase.AssertExpectations(t)
	})

	t.Run("weak password is rejected before the usecase", func(t *testing.T) {
		body, _ := json.Marshal(requests.RegisterUser{
			Email:    "weak@example.com",
			Password: "password",
			FullName: "Weak",
			Role:     constvars.RoleClient,
		})
		req := httptest.NewRequest(http.MethodPost, "/register", bytes.NewBuffer(body))
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockAuthUsecase.AssertNotCalled(t, "RegisterUser", mock.Anything, mock.MatchedBy(func(r *requests.RegisterUser) bool {
			return r.Email == "weak@example.com"
		}))
	})

	t.Run("malformed body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/register", bytes.NewBufferString("{"))
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestAuthRouter_LoginIsRateLimited(t *testing.T) {
	logger := zap.NewNop()
	mockAuthUsecase := new(MockAuthUsecase)
	mockAuthUsecase.On("LoginUser", mock.Anything, mock.Anything).Return(&responses.LoginUser{Token: "t"}, nil)

	router := chi.NewRouter()
	attachAuthRoutes(router, newTestMiddlewares(new(mocks.SessionService), config.App{
		AuthRateLimitPerMinute:    1,
		AuthRateLimitBlockMinutes: 1,
	}), controllers.NewAuthController(logger, mockAuthUsecase))

	login := func() int {
		body, _ := json.Marshal(requests.LoginUser{Email: "jane@example.com", Password: "x"})
		req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewBuffer(body))
		req.RemoteAddr = "192.0.2.10:5555"
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		return rr.Code
	}

	assert.Equal(t, http.StatusOK, login())
	assert.Equal(t, http.StatusTooManyRequests, login())
	mockAuthUsecase.AssertNumberOfCalls(t, "LoginUser", 1)
}

func TestAuthRouter_LogoutRequiresToken(t *testing.T) {
	mockAuthUsecase := new(MockAuthUsecase)
	router := chi.NewRouter()
	attachAuthRoutes(router, newTestMiddlewares(new(mocks.SessionService), config.App{}), controllers.NewAuthController(zap.NewNop(), mockAuthUsecase))

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/logout", nil))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	mockAuthUsecase.AssertNotCalled(t, "LogoutUser", mock.Anything, mock.Anything)
}
