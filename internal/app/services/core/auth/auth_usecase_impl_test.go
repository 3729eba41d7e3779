package auth

import (
	"context"
	"testing"
	"time"

	"github.com/Bricklabsai/theralink/internal/app/config"
	"github.com/Bricklabsai/theralink/internal/app/contracts/mocks"
	"github.com/Bricklabsai/theralink/internal/app/models"
	"github.com/Bricklabsai/theralink/internal/pkg/constvars"
	"github.com/Bricklabsai/theralink/internal/pkg/dto/requests"
	"github.com/Bricklabsai/theralink/internal/pkg/exceptions"
	"github.com/Bricklabsai/theralink/internal/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type authFixture struct {
	uc         *authUsecase
	profiles   *mocks.ProfileRepository
	therapists *mocks.TherapistRepository
	sessions   *mocks.SessionService
}

func newAuthFixture() *authFixture {
	profiles := new(mocks.ProfileRepository)
	therapists := new(mocks.TherapistRepository)
	sessions := new(mocks.SessionService)
	return &authFixture{
		uc: &authUsecase{
			ProfileRepository:   profiles,
			TherapistRepository: therapists,
			SessionService:      sessions,
			InternalConfig: &config.InternalConfig{
				App: config.App{LoginSessionExpiredInHours: 12},
				JWT: config.AppJWT{Secret: "test-secret"},
			},
			Log: zap.NewNop(),
		},
		profiles:   profiles,
		therapists: therapists,
		sessions:   sessions,
	}
}

func TestRegisterUser_Client(t *testing.T) {
	f := newAuthFixture()
	f.profiles.On("FindByEmail", mock.Anything, "jane@example.com").Return(nil, nil)
	f.profiles.On("CreateProfile", mock.Anything, mock.MatchedBy(func(p *models.Profile) bool {
		return p.Role == constvars.RoleClient && p.Password != "Secret!123" && utils.CheckPasswordHash("Secret!123", p.Password)
	})).Return("u-1", nil)

	result, err := f.uc.RegisterUser(context.Background(), &requests.RegisterUser{
		Email:    "jane@example.com",
		Password: "Secret!123",
		FullName: "Jane",
		Role:     constvars.RoleClient,
	})
	require.NoError(t, err)
	assert.Equal(t, "u-1", result.UserID)
	f.therapists.AssertNotCalled(t, "CreateTherapist", mock.Anything, mock.Anything)
}

func TestRegisterUser_TherapistGetsPendingApplication(t *testing.T) {
	f := newAuthFixture()
	f.profiles.On("FindByEmail", mock.Anything, mock.Anything).Return(nil, nil)
	f.profiles.On("CreateProfile", mock.Anything, mock.Anything).Return("u-2", nil)
	f.therapists.On("CreateTherapist", mock.Anything, mock.MatchedBy(func(th *models.Therapist) bool {
		return th.UserID == "u-2" && th.ApplicationStatus == constvars.ApplicationStatusPending && !th.IsVerified
	})).Return("t-2", nil)

	_, err := f.uc.RegisterUser(context.Background(), &requests.RegisterUser{
		Email:    "doc@example.com",
		Password: "Secret!123",
		FullName: "Doc",
		Role:     constvars.RoleTherapist,
	})
	require.NoError(t, err)
	f.therapists.AssertExpectations(t)
}

func TestRegisterUser_DuplicateEmail(t *testing.T) {
	f := newAuthFixture()
	f.profiles.On("FindByEmail", mock.Anything, "jane@example.com").Return(&models.Profile{ID: "u-1"}, nil)

	_, err := f.uc.RegisterUser(context.Background(), &requests.RegisterUser{Email: "jane@example.com", Password: "Secret!123", Role: constvars.RoleClient})

	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)
	f.profiles.AssertNotCalled(t, "CreateProfile", mock.Anything, mock.Anything)
}

func TestLoginUser_StoresSessionAndIssuesToken(t *testing.T) {
	f := newAuthFixture()
	hash, err := utils.HashPassword("Secret!123")
	require.NoError(t, err)
	f.profiles.On("FindByEmail", mock.Anything, "jane@example.com").Return(&models.Profile{
		ID: "u-1", Email: "jane@example.com", Password: hash, FullName: "Jane", Role: constvars.RoleClient,
	}, nil)

	var stored *models.Session
	f.sessions.On("CreateSession", mock.Anything, mock.Anything, 12*time.Hour).
		Run(func(args mock.Arguments) { stored = args.Get(1).(*models.Session) }).
		Return(nil)

	result, err := f.uc.LoginUser(context.Background(), &requests.LoginUser{Email: "jane@example.com", Password: "Secret!123"})
	require.NoError(t, err)
	require.NotNil(t, stored)

	sessionID, err := utils.ParseJWT(result.Token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, stored.SessionID, sessionID)
	assert.Equal(t, "u-1", stored.UserID)
	assert.Equal(t, constvars.RoleClient, result.Role)
}

func TestLoginUser_WrongPassword(t *testing.T) {
	f := newAuthFixture()
	hash, err := utils.HashPassword("Secret!123")
	require.NoError(t, err)
	f.profiles.On("FindByEmail", mock.Anything, mock.Anything).Return(&models.Profile{ID: "u-1", Password: hash}, nil)

	_, err = f.uc.LoginUser(context.Background(), &requests.LoginUser{Email: "jane@example.com", Password: "nope"})

	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, constvars.StatusUnauthorized, customErr.StatusCode)
	f.sessions.AssertNotCalled(t, "CreateSession", mock.Anything, mock.Anything, mock.Anything)
}

func TestLogoutUser_DeletesSession(t *testing.T) {
	f := newAuthFixture()
	f.sessions.On("ParseSessionData", mock.Anything, "data").Return(&models.Session{SessionID: "s-1", UserID: "u-1"}, nil)
	f.sessions.On("DeleteSession", mock.Anything, "s-1").Return(nil)

	require.NoError(t, f.uc.LogoutUser(context.Background(), "data"))
	f.sessions.AssertExpectations(t)
}
