package payments

import (
	"context"
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

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// paymentLockTTL bounds how long a single callback may hold its reference.
const paymentLockTTL = 30 * time.Second

const paymentLockReleaseTimeout = 5 * time.Second

type paymentUsecase struct {
	TransactionRepository contracts.TransactionRepository
	SessionService        contracts.SessionService
	LockerService         contracts.LockerService
	EventPublisher        contracts.EventPublisher
	InternalConfig        *config.InternalConfig
	Log                   *zap.Logger
}

var (
	paymentUsecaseInstance contracts.PaymentUsecase
	oncePaymentUsecase     sync.Once
)

func NewPaymentUsecase(
	transactionRepository contracts.TransactionRepository,
	sessionService contracts.SessionService,
	lockerService contracts.LockerService,
	eventPublisher contracts.EventPublisher,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.PaymentUsecase {
	oncePaymentUsecase.Do(func() {
		paymentUsecaseInstance = &paymentUsecase{
			TransactionRepository: transactionRepository,
			SessionService:        sessionService,
			LockerService:         lockerService,
			EventPublisher:        eventPublisher,
			InternalConfig:        internalConfig,
			Log:                   logger,
		}
	})
	return paymentUsecaseInstance
}

// GetCheckoutConfig returns what the checkout widget needs to start a payment
// for the signed in user.
func (uc *paymentUsecase) GetCheckoutConfig(ctx context.Context, sessionData string) (*responses.CheckoutConfig, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	payment := uc.InternalConfig.Payment
	return &responses.CheckoutConfig{
		PublicAPIKey: payment.PublicAPIKey,
		Live:         payment.Live,
		Currency:     payment.Currency,
		Country:      payment.Country,
		Email:        session.Email,
		FullName:     session.FullName,
	}, nil
}

func (uc *paymentUsecase) HandlePaymentEvent(ctx context.Context, request *requests.PaymentEvent) (*responses.PaymentEvent, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("paymentUsecase.HandlePaymentEvent called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEventKey, request.Event),
		zap.String(constvars.LoggingReferenceKey, request.Result.Reference),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, request.SessionData)
	if err != nil {
		return nil, err
	}

	handler, ok := uc.handlers().lookup(request.Event)
	if !ok {
		return nil, exceptions.ErrUnknownPaymentEvent(nil, request.Event)
	}

	// The widget may fire the same callback twice; one reference is handled at a time
	if request.Result.Reference != "" {
		release, err := uc.lockReference(ctx, request.Result.Reference)
		if err != nil {
			return nil, err
		}
		defer release()
	}

	transactionID, eventType, err := handler(ctx, session, &request.Result)
	if err != nil {
		uc.Log.Error("paymentUsecase.HandlePaymentEvent error handling event",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEventKey, request.Event),
			zap.Error(err),
		)
		return nil, err
	}

	event := events.NewDomainEvent(eventType, map[string]interface{}{
		"user_id":        session.UserID,
		"transaction_id": transactionID,
		"status":         request.Result.Status,
		"reference":      request.Result.Reference,
		"amount":         request.Result.Amount,
		"payment_method": request.Result.PaymentMethod,
	})
	if err := uc.EventPublisher.Publish(ctx, event); err != nil {
		uc.Log.Warn("paymentUsecase.HandlePaymentEvent cannot publish event",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	return &responses.PaymentEvent{
		Event:         request.Event,
		Status:        request.Result.Status,
		Reference:     request.Result.Reference,
		TransactionID: transactionID,
	}, nil
}

func (uc *paymentUsecase) recordTransaction(ctx context.Context, session *models.Session, result *requests.PaymentEventResult, status string) (string, error) {
	requestID := utils.GetRequestID(ctx)

	transaction := &models.Transaction{
		ID:            uuid.NewString(),
		UserID:        session.UserID,
		Reference:     result.Reference,
		Status:        status,
		Amount:        result.Amount,
		Currency:      uc.InternalConfig.Payment.Currency,
		PaymentMethod: result.PaymentMethod,
		PhoneNumber:   result.PhoneNumber,
		CreatedAt:     time.Now(),
	}

	id, err := uc.TransactionRepository.CreateTransaction(ctx, transaction)
	if err != nil {
		return "", err
	}

	utils.LogBusinessEvent(uc.Log, "transaction_recorded", requestID,
		zap.String(constvars.LoggingUserIDKey, session.UserID),
		zap.String(constvars.LoggingTransactionIDKey, id),
		zap.String("status", status),
	)
	return id, nil
}

func (uc *paymentUsecase) lockReference(ctx context.Context, reference string) (func(), error) {
	key := constvars.RedisKeyPaymentLockPrefix + reference
	acquired, lockValue, err := uc.LockerService.TryLock(ctx, key, paymentLockTTL)
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, exceptions.ErrPaymentLocked(nil, reference)
	}

	return func() {
		// the request may already be cancelled; the lock must still go
		releaseCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), paymentLockReleaseTimeout)
		defer cancel()

		if err := uc.LockerService.Unlock(releaseCtx, key, lockValue); err != nil {
			uc.Log.Warn("paymentUsecase.lockReference cannot release lock",
				zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
				zap.String(constvars.LoggingReferenceKey, reference),
				zap.Error(err),
			)
		}
	}, nil
}
