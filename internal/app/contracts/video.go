package contracts

import (
	"context"

	"github.com/Bricklabsai/theralink/internal/pkg/dto/requests"
	"github.com/Bricklabsai/theralink/internal/pkg/dto/responses"
)

type VideoRoomUsecase interface {
	OpenRoom(ctx context.Context, request *requests.OpenVideoRoom) (*responses.VideoRoom, error)
	JoinRoom(ctx context.Context, request *requests.JoinVideoRoom) (*responses.VideoRoom, error)
	HandleEvent(ctx context.Context, request *requests.VideoRoomEvent) (*responses.VideoRoomEvent, error)
	DisposeRoom(ctx context.Context, request *requests.DisposeVideoRoom) error
}
