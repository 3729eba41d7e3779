package auth

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/Bricklabsai/theralink/internal/app/config"
	"github.com/Bricklabsai/theralink/internal/app/contracts"
	"github.com/Bricklabsai/theralink/internal/app/models"
	"github.com/Bricklabsai/theralink/internal/pkg/constvars"
	"github.com/Bricklabsai/theralink/internal/pkg/dto/requests"
	"github.com/Bricklabsai/theralink/internal/pkg/dto/responses"
	"github.com/Bricklabsai/theralink/internal/pkg/exceptions"
	"github.com/Bricklabsai/theralink/internal/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type authUsecase struct {
	ProfileRepository   contracts.ProfileRepository
	TherapistRepository contracts.TherapistRepository
	SessionService      contracts.SessionService
	InternalConfig      *config.InternalConfig
	Log                 *zap.Logger
}

var (
	authUsecaseInstance contracts.AuthUsecase
	onceAuthUsecase     sync.Once
)

func NewAuthUsecase(
	profileRepository contracts.ProfileRepository,
	therapistRepository contracts.TherapistRepository,
	sessionService contracts.SessionService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AuthUsecase {
	onceAuthUsecase.Do(func() {
		authUsecaseInstance = &authUsecase{
			ProfileRepository:   profileRepository,
			TherapistRepository: therapistRepository,
			SessionService:      sessionService,
			InternalConfig:      internalConfig,
			Log:                 logger,
		}
	})
	return authUsecaseInstance
}

func (uc *authUsecase) RegisterUser(ctx context.Context, request *requests.RegisterUser) (*responses.RegisterUser, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("authUsecase.RegisterUser called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRoleKey, request.Role),
	)

	existing, err := uc.ProfileRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, exceptions.ErrEmailAlreadyExist(nil)
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, exceptions.ErrHashPassword(err)
	}

	profile := &models.Profile{
		ID:       uuid.NewString(),
		Email:    request.Email,
		Password: hashedPassword,
		FullName: request.FullName,
		Role:     request.Role,
	}
	profile.SetCreatedAtUpdatedAt()

	profileID, err := uc.ProfileRepository.CreateProfile(ctx, profile)
	if err != nil {
		uc.Log.Error("authUsecase.RegisterUser error creating profile",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	// Therapists start unverified until an admin approves the application
	if request.Role == constvars.RoleTherapist {
		therapist := &models.Therapist{
			ID:                uuid.NewString(),
			UserID:            profileID,
			HourlyRate:        constvars.DefaultHourlyRate,
			ApplicationStatus: constvars.ApplicationStatusPending,
		}
		therapist.SetCreatedAtUpdatedAt()

		if _, err := uc.TherapistRepository.CreateTherapist(ctx, therapist); err != nil {
			uc.Log.Error("authUsecase.RegisterUser error creating therapist",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, err
		}
	}

	utils.LogBusinessEvent(uc.Log, "user_registered", requestID,
		zap.String(constvars.LoggingUserIDKey, profileID),
		zap.String(constvars.LoggingRoleKey, request.Role),
	)

	return &responses.RegisterUser{
		UserID:   profileID,
		Email:    profile.Email,
		FullName: profile.FullName,
		Role:     profile.Role,
	}, nil
}

func (uc *authUsecase) LoginUser(ctx context.Context, request *requests.LoginUser) (*responses.LoginUser, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("authUsecase.LoginUser called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	profile, err := uc.ProfileRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if profile == nil || !utils.CheckPasswordHash(request.Password, profile.Password) {
		utils.LogSecurityEvent(uc.Log, "login_failed", requestID, "medium")
		return nil, exceptions.ErrInvalidUsernameOrPassword(errors.New("email or password mismatch"))
	}

	ttl := time.Duration(uc.sessionHours()) * time.Hour
	session := &models.Session{
		SessionID: utils.GenerateSessionID(),
		UserID:    profile.ID,
		Email:     profile.Email,
		FullName:  profile.FullName,
		Role:      profile.Role,
		ExpiresAt: time.Now().Add(ttl),
	}

	err = uc.SessionService.CreateSession(ctx, session, ttl)
	if err != nil {
		uc.Log.Error("authUsecase.LoginUser error storing session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	token, err := utils.GenerateSessionJWT(session.SessionID, uc.InternalConfig.JWT.Secret, uc.sessionHours())
	if err != nil {
		return nil, err
	}

	uc.Log.Info("authUsecase.LoginUser succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, profile.ID),
	)

	return &responses.LoginUser{
		Token:    token,
		UserID:   profile.ID,
		FullName: profile.FullName,
		Role:     profile.Role,
	}, nil
}

func (uc *authUsecase) LogoutUser(ctx context.Context, sessionData string) error {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("authUsecase.LogoutUser called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		uc.Log.Error("authUsecase.LogoutUser error parsing session data",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	err = uc.SessionService.DeleteSession(ctx, session.SessionID)
	if err != nil {
		uc.Log.Error("authUsecase.LogoutUser error deleting session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	uc.Log.Info("authUsecase.LogoutUser succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return nil
}

func (uc *authUsecase) sessionHours() int {
	if uc.InternalConfig.App.LoginSessionExpiredInHours > 0 {
		return uc.InternalConfig.App.LoginSessionExpiredInHours
	}
	if uc.InternalConfig.JWT.ExpTimeInHour > 0 {
		return uc.InternalConfig.JWT.ExpTimeInHour
	}
	return 24
}
