package session

import (
	"context"
	"testing"
	"time"

	"github.com/Bricklabsai/theralink/internal/app/contracts/mocks"
	"github.com/Bricklabsai/theralink/internal/app/models"
	"github.com/Bricklabsai/theralink/internal/pkg/constvars"
	"github.com/Bricklabsai/theralink/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func encodeSession(t *testing.T, session *models.Session) string {
	t.Helper()
	raw, err := json.Marshal(session)
	require.NoError(t, err)
	return string(raw)
}

func TestSessionService_ParseSessionData(t *testing.T) {
	svc := NewSessionService(new(mocks.RedisRepository))
	ctx := context.Background()

	t.Run("valid session", func(t *testing.T) {
		data := encodeSession(t, &models.Session{
			SessionID: "s-1",
			UserID:    "u-1",
			Role:      constvars.RoleClient,
			ExpiresAt: time.Now().Add(time.Hour),
		})

		session, err := svc.ParseSessionData(ctx, data)
		require.NoError(t, err)
		assert.Equal(t, "u-1", session.UserID)
		assert.True(t, session.IsClient())
	})

	t.Run("anonymous caller", func(t *testing.T) {
		_, err := svc.ParseSessionData(ctx, "")
		require.Error(t, err)

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusUnauthorized, customErr.StatusCode)
	})

	t.Run("expired session", func(t *testing.T) {
		data := encodeSession(t, &models.Session{UserID: "u-1", ExpiresAt: time.Now().Add(-time.Minute)})

		_, err := svc.ParseSessionData(ctx, data)
		assert.Error(t, err)
	})

	t.Run("garbage payload", func(t *testing.T) {
		_, err := svc.ParseSessionData(ctx, "{not json")
		assert.Error(t, err)
	})
}

func TestSessionService_GetSessionData(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		redisRepo := new(mocks.RedisRepository)
		redisRepo.On("Get", mock.Anything, "session:s-1").Return(`{"user_id":"u-1"}`, nil)

		data, err := NewSessionService(redisRepo).GetSessionData(ctx, "s-1")
		require.NoError(t, err)
		assert.Equal(t, `{"user_id":"u-1"}`, data)
		redisRepo.AssertExpectations(t)
	})

	t.Run("missing key", func(t *testing.T) {
		redisRepo := new(mocks.RedisRepository)
		redisRepo.On("Get", mock.Anything, "session:gone").Return("", nil)

		_, err := NewSessionService(redisRepo).GetSessionData(ctx, "gone")
		assert.Error(t, err)
	})
}

func TestSessionService_CreateAndDeleteSession(t *testing.T) {
	ctx := context.Background()
	redisRepo := new(mocks.RedisRepository)
	session := &models.Session{SessionID: "s-9", UserID: "u-9"}

	redisRepo.On("Set", mock.Anything, "session:s-9", session, 2*time.Hour).Return(nil)
	redisRepo.On("Delete", mock.Anything, "session:s-9").Return(nil)

	svc := NewSessionService(redisRepo)
	require.NoError(t, svc.CreateSession(ctx, session, 2*time.Hour))
	require.NoError(t, svc.DeleteSession(ctx, "s-9"))
	redisRepo.AssertExpectations(t)
}
