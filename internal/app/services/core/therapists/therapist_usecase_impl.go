package therapists

import (
	"bytes"
	"context"
	"errors"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/Bricklabsai/theralink/internal/app/config"
	"github.com/Bricklabsai/theralink/internal/app/contracts"
	"github.com/Bricklabsai/theralink/internal/app/models"
	"github.com/Bricklabsai/theralink/internal/app/services/core/availability"
	"github.com/Bricklabsai/theralink/internal/pkg/constvars"
	"github.com/Bricklabsai/theralink/internal/pkg/dto/requests"
	"github.com/Bricklabsai/theralink/internal/pkg/dto/responses"
	"github.com/Bricklabsai/theralink/internal/pkg/exceptions"
	"github.com/Bricklabsai/theralink/internal/pkg/utils"

	"go.uber.org/zap"
)

type therapistUsecase struct {
	TherapistRepository contracts.TherapistRepository
	ProfileRepository   contracts.ProfileRepository
	SessionService      contracts.SessionService
	Storage             contracts.Storage
	Resolver            *availability.Resolver
	InternalConfig      *config.InternalConfig
	Log                 *zap.Logger
}

var (
	therapistUsecaseInstance contracts.TherapistUsecase
	onceTherapistUsecase     sync.Once
)

func NewTherapistUsecase(
	therapistRepository contracts.TherapistRepository,
	profileRepository contracts.ProfileRepository,
	sessionService contracts.SessionService,
	storage contracts.Storage,
	resolver *availability.Resolver,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.TherapistUsecase {
	onceTherapistUsecase.Do(func() {
		therapistUsecaseInstance = &therapistUsecase{
			TherapistRepository: therapistRepository,
			ProfileRepository:   profileRepository,
			SessionService:      sessionService,
			Storage:             storage,
			Resolver:            resolver,
			InternalConfig:      internalConfig,
			Log:                 logger,
		}
	})
	return therapistUsecaseInstance
}

func (uc *therapistUsecase) FindBookingView(ctx context.Context, request *requests.FindTherapistBookingView) (*responses.TherapistBookingView, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("therapistUsecase.FindBookingView called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTherapistIDKey, request.TherapistID),
	)

	therapist, err := uc.findTherapist(ctx, request.TherapistID)
	if err != nil {
		return nil, err
	}

	profile, err := uc.ProfileRepository.FindByID(ctx, therapist.UserID)
	if err != nil {
		return nil, err
	}

	schedule := uc.Resolver.Resolve(availability.FromBSON(therapist.Availability))
	if schedule.Fallback {
		uc.Log.Warn("therapistUsecase.FindBookingView availability unreadable, using default window",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingTherapistIDKey, therapist.ID),
		)
	}

	selectedDate := request.Date
	if selectedDate == "" {
		selectedDate = schedule.FirstDate()
	}

	view := buildBookingView(therapist, profile)
	view.Schedule = toScheduleResponse(schedule)
	view.SelectedDate = selectedDate
	view.SelectedSlots = schedule.SlotsFor(selectedDate)
	return view, nil
}

func (uc *therapistUsecase) UpdateAvailability(ctx context.Context, request *requests.UpdateAvailability) (*responses.Schedule, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, request.SessionData)
	if err != nil {
		return nil, err
	}
	if !session.IsTherapist() {
		return nil, exceptions.ErrNotMatchRoleType(nil)
	}

	therapist, err := uc.TherapistRepository.FindByUserID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	if therapist == nil {
		return nil, exceptions.ErrTherapistNotExist(nil)
	}

	value := availability.FromJSON(request.Availability)
	err = uc.TherapistRepository.UpdateAvailability(ctx, therapist.ID, value.StorageValue())
	if err != nil {
		return nil, err
	}

	uc.Log.Info("therapistUsecase.UpdateAvailability succeeded",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingTherapistIDKey, therapist.ID),
	)

	schedule := toScheduleResponse(uc.Resolver.Resolve(value))
	return &schedule, nil
}

// UploadProfileImage replaces the caller's avatar. Old objects are removed
// first; a failed cleanup is only logged.
func (uc *therapistUsecase) UploadProfileImage(ctx context.Context, request *requests.UploadProfileImage) (*responses.ProfileImage, error) {
	requestID := utils.GetRequestID(ctx)

	session, err := uc.SessionService.ParseSessionData(ctx, request.SessionData)
	if err != nil {
		return nil, err
	}
	if !session.IsProvider() {
		return nil, exceptions.ErrNotMatchRoleType(nil)
	}

	maxSizeInMB := uc.InternalConfig.Minio.ProfilePictureMaxUploadSizeInMB
	if maxSizeInMB <= 0 {
		maxSizeInMB = constvars.AvatarMaxSizeInMB
	}

	ext, err := utils.ValidateImageUpload(request.FileName, request.ContentType, request.Size, maxSizeInMB)
	if err != nil {
		if errors.Is(err, utils.ErrImageTooLarge) {
			return nil, exceptions.ErrImageTooLarge(err)
		}
		return nil, exceptions.ErrImageValidation(err)
	}

	bucketName := uc.InternalConfig.Minio.BucketName
	oldObjects, err := uc.Storage.ListObjects(ctx, bucketName, session.UserID+"/")
	if err != nil {
		uc.Log.Warn("therapistUsecase.UploadProfileImage cannot list previous avatars",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	} else if len(oldObjects) > 0 {
		err = uc.Storage.RemoveObjects(ctx, bucketName, oldObjects)
		if err != nil {
			uc.Log.Warn("therapistUsecase.UploadProfileImage cannot remove previous avatars",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
		}
	}

	objectName := utils.GenerateAvatarObjectName(session.UserID, ext, time.Now())
	_, err = uc.Storage.UploadObject(ctx, &contracts.UploadObjectInput{
		BucketName:   bucketName,
		ObjectName:   objectName,
		Reader:       bytes.NewReader(request.Content),
		Size:         int64(len(request.Content)),
		ContentType:  request.ContentType,
		CacheControl: utils.CacheControlMaxAge(constvars.AvatarCacheMaxAge),
	})
	if err != nil {
		return nil, err
	}

	imageURL := uc.Storage.PublicURL(bucketName, objectName)
	err = uc.ProfileRepository.UpdateProfileImageURL(ctx, session.UserID, imageURL)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("therapistUsecase.UploadProfileImage succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, session.UserID),
		zap.String(constvars.LoggingObjectKey, objectName),
	)
	return &responses.ProfileImage{ProfileImageURL: imageURL}, nil
}

func (uc *therapistUsecase) FindTherapists(ctx context.Context, request *requests.FindTherapists) ([]responses.AdminTherapist, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, request.SessionData)
	if err != nil {
		return nil, err
	}
	if !session.IsAdmin() {
		return nil, exceptions.ErrNotMatchRoleType(nil)
	}

	therapists, err := uc.TherapistRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	userIDs := make([]string, 0, len(therapists))
	for _, therapist := range therapists {
		userIDs = append(userIDs, therapist.UserID)
	}
	profiles, err := uc.ProfileRepository.FindByIDs(ctx, userIDs)
	if err != nil {
		return nil, err
	}
	profileByID := make(map[string]*models.Profile, len(profiles))
	for i := range profiles {
		profileByID[profiles[i].ID] = &profiles[i]
	}

	search := strings.ToLower(strings.TrimSpace(request.Search))
	result := make([]responses.AdminTherapist, 0, len(therapists))
	for i := range therapists {
		therapist := &therapists[i]
		profile := profileByID[therapist.UserID]
		if !matchesStatus(therapist, request.Status) || !matchesSearch(therapist, profile, search) {
			continue
		}
		result = append(result, buildAdminTherapist(therapist, profile))
	}
	return result, nil
}

func (uc *therapistUsecase) UpdateVerification(ctx context.Context, request *requests.UpdateTherapistVerification) (*responses.AdminTherapist, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, request.SessionData)
	if err != nil {
		return nil, err
	}
	if !session.IsAdmin() {
		return nil, exceptions.ErrNotMatchRoleType(nil)
	}

	therapist, err := uc.TherapistRepository.FindByID(ctx, request.TherapistID)
	if err != nil {
		return nil, err
	}
	if therapist == nil {
		return nil, exceptions.ErrTherapistNotExist(nil)
	}

	therapist.IsVerified = *request.IsVerified
	therapist.ApplicationStatus = constvars.ApplicationStatusRejected
	if therapist.IsVerified {
		therapist.ApplicationStatus = constvars.ApplicationStatusApproved
	}

	err = uc.TherapistRepository.UpdateVerification(ctx, therapist.ID, therapist.IsVerified, therapist.ApplicationStatus)
	if err != nil {
		return nil, err
	}

	utils.LogBusinessEvent(uc.Log, "therapist_verification_updated", utils.GetRequestID(ctx),
		zap.String(constvars.LoggingTherapistIDKey, therapist.ID),
		zap.Bool("is_verified", therapist.IsVerified),
	)

	profile, err := uc.ProfileRepository.FindByID(ctx, therapist.UserID)
	if err != nil {
		return nil, err
	}
	response := buildAdminTherapist(therapist, profile)
	return &response, nil
}

// findTherapist accepts either a therapist id or the owning user id.
func (uc *therapistUsecase) findTherapist(ctx context.Context, id string) (*models.Therapist, error) {
	therapist, err := uc.TherapistRepository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if therapist != nil {
		return therapist, nil
	}

	therapist, err = uc.TherapistRepository.FindByUserID(ctx, id)
	if err != nil {
		return nil, err
	}
	if therapist == nil {
		return nil, exceptions.ErrTherapistNotExist(nil)
	}
	return therapist, nil
}

func buildBookingView(therapist *models.Therapist, profile *models.Profile) *responses.TherapistBookingView {
	hourlyRate := therapist.HourlyRate
	if hourlyRate == 0 {
		hourlyRate = constvars.DefaultHourlyRate
	}
	specialization := therapist.Specialization
	if specialization == "" {
		specialization = constvars.DefaultSpecialization
	}
	bio := therapist.Bio
	if bio == "" {
		bio = constvars.DefaultTherapistBio
	}

	view := &responses.TherapistBookingView{
		TherapistID:          therapist.ID,
		UserID:               therapist.UserID,
		FullName:             constvars.DefaultProfileName,
		Bio:                  bio,
		Specialization:       specialization,
		YearsExperience:      therapist.YearsExperience,
		HourlyRate:           hourlyRate,
		Rating:               therapist.Rating,
		Languages:            therapist.Languages,
		TherapyApproaches:    therapist.TherapyApproaches,
		IsCommunityTherapist: therapist.IsCommunityTherapist,
		IsVerified:           therapist.IsVerified,
		SessionOptions:       SessionOptions(hourlyRate, therapist.IsCommunityTherapist),
	}
	if profile != nil {
		if profile.FullName != "" {
			view.FullName = profile.FullName
		}
		view.ProfileImageURL = profile.ProfileImageURL
	}
	return view
}

// SessionOptions prices both session types. Community therapists are free.
func SessionOptions(hourlyRate int, isCommunity bool) []responses.SessionOption {
	videoPrice := hourlyRate
	chatPrice := int(math.Round(constvars.ChatRateFactor * float64(hourlyRate)))
	if isCommunity {
		videoPrice, chatPrice = 0, 0
	}
	return []responses.SessionOption{
		{
			Type:            constvars.SessionTypeVideo,
			DurationMinutes: int(constvars.VideoSessionDuration / time.Minute),
			Price:           videoPrice,
			Free:            isCommunity,
		},
		{
			Type:            constvars.SessionTypeChat,
			DurationMinutes: int(constvars.ChatSessionDuration / time.Minute),
			Price:           chatPrice,
			Free:            isCommunity,
		},
	}
}

func buildAdminTherapist(therapist *models.Therapist, profile *models.Profile) responses.AdminTherapist {
	result := responses.AdminTherapist{
		TherapistID:          therapist.ID,
		UserID:               therapist.UserID,
		FullName:             constvars.DefaultProfileName,
		Specialization:       therapist.Specialization,
		LicenseNumber:        therapist.LicenseNumber,
		LicenseType:          therapist.LicenseType,
		YearsExperience:      therapist.YearsExperience,
		HourlyRate:           therapist.HourlyRate,
		IsVerified:           therapist.IsVerified,
		IsCommunityTherapist: therapist.IsCommunityTherapist,
		ApplicationStatus:    therapist.ApplicationStatus,
		CreatedAt:            therapist.CreatedAt,
	}
	if profile != nil {
		result.FullName = profile.FullName
		result.Email = profile.Email
		result.ProfileImageURL = profile.ProfileImageURL
		result.Phone = profile.Phone
		result.Location = profile.Location
	}
	return result
}

func matchesStatus(therapist *models.Therapist, status string) bool {
	switch status {
	case constvars.TherapistFilterVerified:
		return therapist.IsVerified
	case constvars.TherapistFilterPending:
		return therapist.ApplicationStatus == constvars.ApplicationStatusPending
	case constvars.TherapistFilterActive:
		return therapist.IsVerified && therapist.LicenseNumber != ""
	}
	return true
}

func matchesSearch(therapist *models.Therapist, profile *models.Profile, search string) bool {
	if search == "" {
		return true
	}
	candidates := []string{therapist.Specialization}
	if profile != nil {
		candidates = append(candidates, profile.FullName, profile.Email, profile.Location)
	}
	for _, candidate := range candidates {
		if strings.Contains(strings.ToLower(candidate), search) {
			return true
		}
	}
	return false
}

func toScheduleResponse(schedule *availability.Schedule) responses.Schedule {
	return responses.Schedule{
		Dates:    schedule.Dates,
		Slots:    schedule.Slots,
		Fallback: schedule.Fallback,
	}
}
