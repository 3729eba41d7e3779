package videocalls

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

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var fixedNow = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

type videoFixture struct {
	uc        *videoRoomUsecase
	redis     *mocks.RedisRepository
	publisher *mocks.EventPublisher
}

func newVideoFixture() *videoFixture {
	redis := new(mocks.RedisRepository)
	publisher := new(mocks.EventPublisher)
	sessions := new(mocks.SessionService)
	sessions.On("ParseSessionData", mock.Anything, "therapist").Return(&models.Session{UserID: "t-1", Role: constvars.RoleTherapist}, nil)
	sessions.On("ParseSessionData", mock.Anything, "client").Return(&models.Session{UserID: "c-1", Role: constvars.RoleClient}, nil)

	return &videoFixture{
		uc: &videoRoomUsecase{
			RedisRepository: redis,
			SessionService:  sessions,
			EventPublisher:  publisher,
			InternalConfig: &config.InternalConfig{Video: config.AppVideo{
				Domain:            "meet.jit.si",
				RoomTTLInMinutes:  30,
				DefaultParentNode: "#jitsi-container",
			}},
			Log: zap.NewNop(),
			now: func() time.Time { return fixedNow },
		},
		redis:     redis,
		publisher: publisher,
	}
}

func storedRoom(t *testing.T, name string) string {
	raw, err := json.Marshal(&models.VideoRoom{
		RoomName:    name,
		TherapistID: "t-1",
		OpenedBy:    "t-1",
		MeetingLink: "https://meet.jit.si/" + name,
		OpenedAt:    fixedNow,
	})
	require.NoError(t, err)
	return string(raw)
}

func TestOpenRoom_RegistersRoomWithTTL(t *testing.T) {
	f := newVideoFixture()
	roomName := "TherapySession-t-1-1714557600000"
	f.redis.On("TrySetNX", mock.Anything, constvars.RedisKeyVideoRoomPrefix+roomName, mock.Anything, 30*time.Minute).Return(true, nil)

	room, err := f.uc.OpenRoom(context.Background(), &requests.OpenVideoRoom{SessionData: "therapist"})
	require.NoError(t, err)

	assert.Equal(t, roomName, room.RoomName)
	assert.Equal(t, "https://meet.jit.si/"+roomName, room.MeetingLink)
	assert.Equal(t, "100%", room.Options.Width)
	assert.Equal(t, "#jitsi-container", room.Options.ParentNode)
	assert.False(t, room.Options.ConfigOverwrite.PrejoinPageEnabled)
	assert.False(t, room.Options.InterfaceConfigOverwrite.ShowJitsiWatermark)
	assert.Equal(t, constvars.VideoDisplayNameTherapist, room.Options.UserInfo.DisplayName)
	f.redis.AssertExpectations(t)
}

func TestOpenRoom_ClientsCannotOpen(t *testing.T) {
	f := newVideoFixture()

	_, err := f.uc.OpenRoom(context.Background(), &requests.OpenVideoRoom{SessionData: "client"})

	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, constvars.StatusForbidden, customErr.StatusCode)
	f.redis.AssertNotCalled(t, "TrySetNX", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestJoinRoom_ClientOptions(t *testing.T) {
	f := newVideoFixture()
	f.redis.On("Get", mock.Anything, constvars.RedisKeyVideoRoomPrefix+"room-1").Return(storedRoom(t, "room-1"), nil)

	room, err := f.uc.JoinRoom(context.Background(), &requests.JoinVideoRoom{SessionData: "client", RoomName: "room-1", ParentNode: "#video"})
	require.NoError(t, err)

	assert.True(t, room.Options.ConfigOverwrite.PrejoinPageEnabled)
	assert.Equal(t, constvars.VideoDisplayNameClient, room.Options.UserInfo.DisplayName)
	assert.Equal(t, "#video", room.Options.ParentNode)
	assert.Equal(t, "t-1", room.TherapistID)
}

func TestJoinRoom_UnknownRoom(t *testing.T) {
	f := newVideoFixture()
	f.redis.On("Get", mock.Anything, mock.Anything).Return("", nil)

	_, err := f.uc.JoinRoom(context.Background(), &requests.JoinVideoRoom{SessionData: "client", RoomName: "gone"})

	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
}

func TestHandleEvent_PublishesAndKeepsRoom(t *testing.T) {
	f := newVideoFixture()
	f.redis.On("Get", mock.Anything, constvars.RedisKeyVideoRoomPrefix+"room-1").Return(storedRoom(t, "room-1"), nil)
	f.publisher.On("Publish", mock.Anything, mock.MatchedBy(func(e *models.DomainEvent) bool {
		return e.Type == "video.participantJoined" && e.Payload["room_name"] == "room-1"
	})).Return(nil)

	result, err := f.uc.HandleEvent(context.Background(), &requests.VideoRoomEvent{
		SessionData: "client",
		RoomName:    "room-1",
		Event:       constvars.VideoEventParticipantJoined,
	})
	require.NoError(t, err)
	assert.False(t, result.Disposed)
	f.publisher.AssertExpectations(t)
	f.redis.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestHandleEvent_ReadyToCloseDisposes(t *testing.T) {
	f := newVideoFixture()
	key := constvars.RedisKeyVideoRoomPrefix + "room-1"
	f.redis.On("Get", mock.Anything, key).Return(storedRoom(t, "room-1"), nil)
	f.redis.On("Delete", mock.Anything, key).Return(nil)
	f.publisher.On("Publish", mock.Anything, mock.Anything).Return(nil)

	result, err := f.uc.HandleEvent(context.Background(), &requests.VideoRoomEvent{
		SessionData: "therapist",
		RoomName:    "room-1",
		Event:       constvars.VideoEventReadyToClose,
	})
	require.NoError(t, err)
	assert.True(t, result.Disposed)
	f.redis.AssertExpectations(t)
}

func TestHandleEvent_ClientReadyToCloseKeepsRoom(t *testing.T) {
	f := newVideoFixture()
	f.redis.On("Get", mock.Anything, constvars.RedisKeyVideoRoomPrefix+"room-1").Return(storedRoom(t, "room-1"), nil)
	f.publisher.On("Publish", mock.Anything, mock.MatchedBy(func(e *models.DomainEvent) bool {
		return e.Type == "video.readyToClose" && e.Payload["user_id"] == "c-1"
	})).Return(nil)

	result, err := f.uc.HandleEvent(context.Background(), &requests.VideoRoomEvent{
		SessionData: "client",
		RoomName:    "room-1",
		Event:       constvars.VideoEventReadyToClose,
	})
	require.NoError(t, err)
	assert.False(t, result.Disposed)
	f.publisher.AssertExpectations(t)
	f.redis.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestDisposeRoom(t *testing.T) {
	f := newVideoFixture()
	key := constvars.RedisKeyVideoRoomPrefix + "room-1"
	f.redis.On("Get", mock.Anything, key).Return(storedRoom(t, "room-1"), nil)
	f.redis.On("Delete", mock.Anything, key).Return(nil)

	err := f.uc.DisposeRoom(context.Background(), &requests.DisposeVideoRoom{SessionData: "therapist", RoomName: "room-1"})
	require.NoError(t, err)
	f.redis.AssertExpectations(t)
}

func TestDisposeRoom_OnlyOpenerMayDispose(t *testing.T) {
	f := newVideoFixture()
	f.redis.On("Get", mock.Anything, constvars.RedisKeyVideoRoomPrefix+"room-1").Return(storedRoom(t, "room-1"), nil)

	err := f.uc.DisposeRoom(context.Background(), &requests.DisposeVideoRoom{SessionData: "client", RoomName: "room-1"})

	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, constvars.StatusForbidden, customErr.StatusCode)
	f.redis.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
