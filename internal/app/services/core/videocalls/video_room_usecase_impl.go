package videocalls

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Bricklabsai/theralink/internal/app/config"
	"github.com/Bricklabsai/theralink/internal/app/contracts"
	"github.com/Bricklabsai/theralink/internal/app/models"
	"github.com/Bricklabsai/theralink/internal/app/services/shared/events"
	"github.com/Bricklabsai/theralink/internal/pkg/constvars"
	"github.com/Bricklabsai/theralink/internal/pkg/dto/requests"
	"github.com/Bricklabsai/theralink/internal/pkg/dto/responses"
	"github.com/Bricklabsai/theralink/internal/pkg/exceptions"
	"github.com/Bricklabsai/theralink/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const defaultRoomTTL = 2 * time.Hour

type videoRoomUsecase struct {
	RedisRepository contracts.RedisRepository
	SessionService  contracts.SessionService
	EventPublisher  contracts.EventPublisher
	InternalConfig  *config.InternalConfig
	Log             *zap.Logger
	now             func() time.Time
}

var (
	videoRoomUsecaseInstance contracts.VideoRoomUsecase
	onceVideoRoomUsecase     sync.Once
)

func NewVideoRoomUsecase(
	redisRepository contracts.RedisRepository,
	sessionService contracts.SessionService,
	eventPublisher contracts.EventPublisher,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.VideoRoomUsecase {
	onceVideoRoomUsecase.Do(func() {
		videoRoomUsecaseInstance = &videoRoomUsecase{
			RedisRepository: redisRepository,
			SessionService:  sessionService,
			EventPublisher:  eventPublisher,
			InternalConfig:  internalConfig,
			Log:             logger,
			now:             time.Now,
		}
	})
	return videoRoomUsecaseInstance
}

// OpenRoom creates a fresh conference room for the signed in provider and
// registers it until it is disposed or its TTL runs out.
func (uc *videoRoomUsecase) OpenRoom(ctx context.Context, request *requests.OpenVideoRoom) (*responses.VideoRoom, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("videoRoomUsecase.OpenRoom called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, request.SessionData)
	if err != nil {
		return nil, err
	}
	if !session.IsProvider() {
		return nil, exceptions.ErrNotMatchRoleType(nil)
	}

	roomName := utils.GenerateVideoRoomName(session.UserID, uc.now())
	room := &models.VideoRoom{
		RoomName:    roomName,
		TherapistID: session.UserID,
		OpenedBy:    session.UserID,
		MeetingLink: uc.meetingLink(roomName),
		OpenedAt:    uc.now().UTC(),
	}

	registered, err := uc.RedisRepository.TrySetNX(ctx, roomKey(roomName), room, uc.roomTTL())
	if err != nil {
		uc.Log.Error("videoRoomUsecase.OpenRoom error registering room",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRoomNameKey, roomName),
			zap.Error(err),
		)
		return nil, err
	}
	if !registered {
		return nil, exceptions.ErrRedisSet(fmt.Errorf("room %s already registered", roomName))
	}

	utils.LogBusinessEvent(uc.Log, "video_room_opened", requestID,
		zap.String(constvars.LoggingUserIDKey, session.UserID),
		zap.String(constvars.LoggingRoomNameKey, roomName),
	)

	return uc.buildRoomResponse(room, request.ParentNode, true), nil
}

// JoinRoom hands out embed options for a room that is still registered. The
// provider who opened the room gets the provider options back.
func (uc *videoRoomUsecase) JoinRoom(ctx context.Context, request *requests.JoinVideoRoom) (*responses.VideoRoom, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, request.SessionData)
	if err != nil {
		return nil, err
	}

	room, err := uc.findRoom(ctx, request.RoomName)
	if err != nil {
		return nil, err
	}

	return uc.buildRoomResponse(room, request.ParentNode, room.OpenedBy == session.UserID), nil
}

// HandleEvent forwards a lifecycle event of the embedded conference.
// readyToClose from the opener releases the room.
func (uc *videoRoomUsecase) HandleEvent(ctx context.Context, request *requests.VideoRoomEvent) (*responses.VideoRoomEvent, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("videoRoomUsecase.HandleEvent called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRoomNameKey, request.RoomName),
		zap.String(constvars.LoggingEventKey, request.Event),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, request.SessionData)
	if err != nil {
		return nil, err
	}

	room, err := uc.findRoom(ctx, request.RoomName)
	if err != nil {
		return nil, err
	}

	payload := map[string]interface{}{
		"room_name":    room.RoomName,
		"therapist_id": room.TherapistID,
		"user_id":      session.UserID,
	}
	for key, value := range request.Payload {
		if _, reserved := payload[key]; !reserved {
			payload[key] = value
		}
	}
	if err := uc.EventPublisher.Publish(ctx, events.NewDomainEvent(constvars.EventVideoRoomPrefix+request.Event, payload)); err != nil {
		uc.Log.Warn("videoRoomUsecase.HandleEvent cannot publish event",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	result := &responses.VideoRoomEvent{
		RoomName: room.RoomName,
		Event:    request.Event,
	}
	// Other participants closing their embed only release their own view
	if request.Event == constvars.VideoEventReadyToClose && room.OpenedBy == session.UserID {
		if err := uc.dispose(ctx, room.RoomName); err != nil {
			return nil, err
		}
		result.Disposed = true
	}
	return result, nil
}

// DisposeRoom removes the registration. Only the provider who opened the room
// may do so.
func (uc *videoRoomUsecase) DisposeRoom(ctx context.Context, request *requests.DisposeVideoRoom) error {
	session, err := uc.SessionService.ParseSessionData(ctx, request.SessionData)
	if err != nil {
		return err
	}

	room, err := uc.findRoom(ctx, request.RoomName)
	if err != nil {
		return err
	}
	if room.OpenedBy != session.UserID {
		utils.LogSecurityEvent(uc.Log, "video_room_dispose_denied", utils.GetRequestID(ctx), "low",
			zap.String(constvars.LoggingUserIDKey, session.UserID),
			zap.String(constvars.LoggingRoomNameKey, room.RoomName),
		)
		return exceptions.ErrNotMatchRoleType(nil)
	}
	return uc.dispose(ctx, room.RoomName)
}

func (uc *videoRoomUsecase) dispose(ctx context.Context, roomName string) error {
	err := uc.RedisRepository.Delete(ctx, roomKey(roomName))
	if err != nil {
		uc.Log.Error("videoRoomUsecase.dispose error removing room",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingRoomNameKey, roomName),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func (uc *videoRoomUsecase) findRoom(ctx context.Context, roomName string) (*models.VideoRoom, error) {
	value, err := uc.RedisRepository.Get(ctx, roomKey(roomName))
	if err != nil {
		return nil, err
	}
	if value == "" {
		return nil, exceptions.ErrVideoRoomNotExist(nil, roomName)
	}

	room := new(models.VideoRoom)
	if err := json.Unmarshal([]byte(value), room); err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return room, nil
}

func (uc *videoRoomUsecase) buildRoomResponse(room *models.VideoRoom, parentNode string, asProvider bool) *responses.VideoRoom {
	video := uc.InternalConfig.Video
	if parentNode == "" {
		parentNode = video.DefaultParentNode
	}

	// Providers skip the prejoin page, clients see it
	displayName := constvars.VideoDisplayNameClient
	if asProvider {
		displayName = constvars.VideoDisplayNameTherapist
	}

	return &responses.VideoRoom{
		RoomName:    room.RoomName,
		Domain:      video.Domain,
		MeetingLink: room.MeetingLink,
		TherapistID: room.TherapistID,
		Options: responses.VideoEmbedOptions{
			RoomName:   room.RoomName,
			Width:      orDefault(video.EmbedWidth, "100%"),
			Height:     orDefault(video.EmbedHeight, "100%"),
			ParentNode: parentNode,
			ConfigOverwrite: responses.ConferenceConfig{
				PrejoinPageEnabled: !asProvider,
			},
			UserInfo: responses.VideoUserInfo{DisplayName: displayName},
		},
	}
}

func (uc *videoRoomUsecase) meetingLink(roomName string) string {
	return fmt.Sprintf("https://%s/%s", uc.InternalConfig.Video.Domain, roomName)
}

func (uc *videoRoomUsecase) roomTTL() time.Duration {
	if uc.InternalConfig.Video.RoomTTLInMinutes <= 0 {
		return defaultRoomTTL
	}
	return time.Duration(uc.InternalConfig.Video.RoomTTLInMinutes) * time.Minute
}

func roomKey(roomName string) string {
	return constvars.RedisKeyVideoRoomPrefix + roomName
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
