package messages

import (
	"context"
	"strings"
	"sync"
	"time"

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

type messageUsecase struct {
	MessageRepository contracts.MessageRepository
	SessionService    contracts.SessionService
	Log               *zap.Logger
}

var (
	messageUsecaseInstance contracts.MessageUsecase
	onceMessageUsecase     sync.Once
)

func NewMessageUsecase(
	messageRepository contracts.MessageRepository,
	sessionService contracts.SessionService,
	logger *zap.Logger,
) contracts.MessageUsecase {
	onceMessageUsecase.Do(func() {
		messageUsecaseInstance = &messageUsecase{
			MessageRepository: messageRepository,
			SessionService:    sessionService,
			Log:               logger,
		}
	})
	return messageUsecaseInstance
}

func (uc *messageUsecase) FindThread(ctx context.Context, request *requests.FindMessages) ([]responses.Message, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, request.SessionData)
	if err != nil {
		return nil, err
	}
	return uc.thread(ctx, session.UserID, request.PeerID)
}

// SendMessage stores the message and returns the refreshed thread.
func (uc *messageUsecase) SendMessage(ctx context.Context, request *requests.SendMessage) ([]responses.Message, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, request.SessionData)
	if err != nil {
		return nil, err
	}

	content := strings.TrimSpace(request.Content)
	receiverID := strings.TrimSpace(request.ReceiverID)
	if content == "" || receiverID == "" {
		return nil, exceptions.ErrMessageNotSendable(nil)
	}

	message := &models.Message{
		ID:         uuid.NewString(),
		SenderID:   session.UserID,
		ReceiverID: receiverID,
		Content:    content,
		CreatedAt:  time.Now(),
	}
	_, err = uc.MessageRepository.CreateMessage(ctx, message)
	if err != nil {
		uc.Log.Error("messageUsecase.SendMessage error inserting message",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.Error(err),
		)
		return nil, exceptions.ErrMessageSendFailed(err)
	}

	return uc.thread(ctx, session.UserID, receiverID)
}

func (uc *messageUsecase) thread(ctx context.Context, userID, peerID string) ([]responses.Message, error) {
	messages, err := uc.MessageRepository.FindThread(ctx, userID, peerID, constvars.MessageThreadLimit)
	if err != nil {
		return nil, err
	}

	result := make([]responses.Message, 0, len(messages))
	for _, message := range messages {
		result = append(result, responses.Message{
			ID:         message.ID,
			SenderID:   message.SenderID,
			ReceiverID: message.ReceiverID,
			Content:    message.Content,
			IsRead:     message.IsRead,
			CreatedAt:  message.CreatedAt,
		})
	}
	return result, nil
}
