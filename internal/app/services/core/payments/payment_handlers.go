package payments

import (
	"context"

	"github.com/Bricklabsai/theralink/internal/app/models"
	"github.com/Bricklabsai/theralink/internal/pkg/constvars"
	"github.com/Bricklabsai/theralink/internal/pkg/dto/requests"
)

// eventHandler reacts to one checkout widget callback. It returns the id of
// the recorded transaction, if any, and the event type to publish.
type eventHandler func(ctx context.Context, session *models.Session, result *requests.PaymentEventResult) (transactionID string, eventType string, err error)

// handlerSet holds the callbacks the checkout widget can emit.
type handlerSet struct {
	OnComplete eventHandler
	OnFailed   eventHandler
	OnProgress eventHandler
}

func (h handlerSet) lookup(event string) (eventHandler, bool) {
	var handler eventHandler
	switch event {
	case constvars.PaymentEventComplete:
		handler = h.OnComplete
	case constvars.PaymentEventFailed:
		handler = h.OnFailed
	case constvars.PaymentEventInProgress:
		handler = h.OnProgress
	}
	return handler, handler != nil
}

func (uc *paymentUsecase) handlers() handlerSet {
	return handlerSet{
		OnComplete: func(ctx context.Context, session *models.Session, result *requests.PaymentEventResult) (string, string, error) {
			id, err := uc.recordTransaction(ctx, session, result, constvars.TransactionStatusSuccess)
			return id, constvars.EventPaymentCompleted, err
		},
		OnFailed: func(ctx context.Context, session *models.Session, result *requests.PaymentEventResult) (string, string, error) {
			id, err := uc.recordTransaction(ctx, session, result, constvars.TransactionStatusFailed)
			return id, constvars.EventPaymentFailed, err
		},
		OnProgress: func(ctx context.Context, session *models.Session, result *requests.PaymentEventResult) (string, string, error) {
			return "", constvars.EventPaymentInProgress, nil
		},
	}
}
