package utils

import (
	"fmt"
	"time"

	"github.com/Bricklabsai/theralink/internal/pkg/constvars"
	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return uuid.NewString()
}

func GenerateSessionID() string {
	return uuid.NewString()
}

func GenerateAvatarObjectName(userID, ext string, now time.Time) string {
	return fmt.Sprintf(constvars.AvatarObjectPattern, userID, now.UnixMilli(), ext)
}

func GenerateVideoRoomName(therapistID string, now time.Time) string {
	return fmt.Sprintf(constvars.VideoRoomNamePattern, therapistID, now.UnixMilli())
}

func CacheControlMaxAge(seconds int) string {
	return fmt.Sprintf("max-age=%d", seconds)
}
