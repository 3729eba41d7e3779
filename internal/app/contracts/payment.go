package contracts

import (
	"context"

	"github.com/Bricklabsai/theralink/internal/pkg/dto/requests"
	"github.com/Bricklabsai/theralink/internal/pkg/dto/responses"
)

type PaymentUsecase interface {
	GetCheckoutConfig(ctx context.Context, sessionData string) (*responses.CheckoutConfig, error)
	HandlePaymentEvent(ctx context.Context, request *requests.PaymentEvent) (*responses.PaymentEvent, error)
}
