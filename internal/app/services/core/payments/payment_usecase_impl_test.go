package payments

import (
	"context"
	"testing"

	"github.com/Bricklabsai/theralink/internal/app/config"
	"github.com/Bricklabsai/theralink/internal/app/contracts/mocks"
	"github.com/Bricklabsai/theralink/internal/app/models"
	"github.com/Bricklabsai/theralink/internal/pkg/constvars"
	"github.com/Bricklabsai/theralink/internal/pkg/dto/requests"
	"github.com/Bricklabsai/theralink/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type paymentFixture struct {
	uc           *paymentUsecase
	transactions *mocks.TransactionRepository
	publisher    *mocks.EventPublisher
	locker       *mocks.LockerService
}

func newPaymentFixture() *paymentFixture {
	transactions := new(mocks.TransactionRepository)
	publisher := new(mocks.EventPublisher)
	locker := new(mocks.LockerService)
	sessions := new(mocks.SessionService)
	sessions.On("ParseSessionData", mock.Anything, "client").Return(&models.Session{
		UserID:   "c-1",
		Email:    "jane@example.com",
		FullName: "Jane",
		Role:     constvars.RoleClient,
	}, nil)

	return &paymentFixture{
		uc: &paymentUsecase{
			TransactionRepository: transactions,
			SessionService:        sessions,
			LockerService:         locker,
			EventPublisher:        publisher,
			InternalConfig: &config.InternalConfig{Payment: config.AppPayment{
				PublicAPIKey: "ISPubKey_test",
				Currency:     "KES",
				Country:      "KE",
			}},
			Log: zap.NewNop(),
		},
		transactions: transactions,
		publisher:    publisher,
		locker:       locker,
	}
}

func (f *paymentFixture) allowLock(reference string) {
	key := constvars.RedisKeyPaymentLockPrefix + reference
	f.locker.On("TryLock", mock.Anything, key, paymentLockTTL).Return(true, "lock-1", nil)
	f.locker.On("Unlock", mock.Anything, key, "lock-1").Return(nil)
}

func TestGetCheckoutConfig(t *testing.T) {
	f := newPaymentFixture()

	cfg, err := f.uc.GetCheckoutConfig(context.Background(), "client")
	require.NoError(t, err)
	assert.Equal(t, "ISPubKey_test", cfg.PublicAPIKey)
	assert.False(t, cfg.Live)
	assert.Equal(t, "KES", cfg.Currency)
	assert.Equal(t, "KE", cfg.Country)
	assert.Equal(t, "jane@example.com", cfg.Email)
}

func TestHandlePaymentEvent_RecordsTransactionPerOutcome(t *testing.T) {
	cases := []struct {
		event     string
		status    string
		eventType string
	}{
		{constvars.PaymentEventComplete, constvars.TransactionStatusSuccess, constvars.EventPaymentCompleted},
		{constvars.PaymentEventFailed, constvars.TransactionStatusFailed, constvars.EventPaymentFailed},
	}

	for _, tc := range cases {
		t.Run(tc.event, func(t *testing.T) {
			f := newPaymentFixture()
			f.allowLock("REF-1")
			f.transactions.On("CreateTransaction", mock.Anything, mock.MatchedBy(func(trx *models.Transaction) bool {
				return trx.UserID == "c-1" && trx.Status == tc.status && trx.Reference == "REF-1" && trx.Currency == "KES"
			})).Return("trx-1", nil)
			f.publisher.On("Publish", mock.Anything, mock.MatchedBy(func(e *models.DomainEvent) bool {
				return e.Type == tc.eventType && e.Payload["transaction_id"] == "trx-1"
			})).Return(nil)

			result, err := f.uc.HandlePaymentEvent(context.Background(), &requests.PaymentEvent{
				SessionData: "client",
				Event:       tc.event,
				Result:      requests.PaymentEventResult{Status: "done", Reference: "REF-1", Amount: 80},
			})
			require.NoError(t, err)
			assert.Equal(t, "trx-1", result.TransactionID)
			assert.Equal(t, "REF-1", result.Reference)
			f.transactions.AssertExpectations(t)
			f.publisher.AssertExpectations(t)
			f.locker.AssertExpectations(t)
		})
	}
}

func TestHandlePaymentEvent_InProgressOnlyPublishes(t *testing.T) {
	f := newPaymentFixture()
	f.publisher.On("Publish", mock.Anything, mock.Anything).Return(nil)

	result, err := f.uc.HandlePaymentEvent(context.Background(), &requests.PaymentEvent{
		SessionData: "client",
		Event:       constvars.PaymentEventInProgress,
	})
	require.NoError(t, err)
	assert.Empty(t, result.TransactionID)
	f.transactions.AssertNotCalled(t, "CreateTransaction", mock.Anything, mock.Anything)
}

func TestHandlePaymentEvent_UnknownEvent(t *testing.T) {
	f := newPaymentFixture()

	_, err := f.uc.HandlePaymentEvent(context.Background(), &requests.PaymentEvent{
		SessionData: "client",
		Event:       "REFUNDED",
	})

	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
	f.transactions.AssertNotCalled(t, "CreateTransaction", mock.Anything, mock.Anything)
	f.publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestHandlePaymentEvent_PublishFailureKeepsTransaction(t *testing.T) {
	f := newPaymentFixture()
	f.transactions.On("CreateTransaction", mock.Anything, mock.Anything).Return("trx-2", nil)
	f.publisher.On("Publish", mock.Anything, mock.Anything).Return(assert.AnError)

	result, err := f.uc.HandlePaymentEvent(context.Background(), &requests.PaymentEvent{
		SessionData: "client",
		Event:       constvars.PaymentEventComplete,
	})
	require.NoError(t, err)
	assert.Equal(t, "trx-2", result.TransactionID)
}

func TestHandlePaymentEvent_ConcurrentCallbackIsRejected(t *testing.T) {
	f := newPaymentFixture()
	f.locker.On("TryLock", mock.Anything, constvars.RedisKeyPaymentLockPrefix+"REF-9", paymentLockTTL).Return(false, "", nil)

	_, err := f.uc.HandlePaymentEvent(context.Background(), &requests.PaymentEvent{
		SessionData: "client",
		Event:       constvars.PaymentEventComplete,
		Result:      requests.PaymentEventResult{Reference: "REF-9"},
	})

	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)
	f.transactions.AssertNotCalled(t, "CreateTransaction", mock.Anything, mock.Anything)
}

func TestHandlePaymentEvent_ReleasesLockAfterRequestIsCancelled(t *testing.T) {
	f := newPaymentFixture()
	key := constvars.RedisKeyPaymentLockPrefix + "REF-5"
	ctx, cancel := context.WithCancel(context.WithValue(context.Background(), constvars.CONTEXT_REQUEST_ID_KEY, "req-5"))
	defer cancel()

	f.locker.On("TryLock", mock.Anything, key, paymentLockTTL).Return(true, "lock-5", nil)
	f.locker.On("Unlock", mock.MatchedBy(func(releaseCtx context.Context) bool {
		return releaseCtx.Err() == nil && releaseCtx.Value(constvars.CONTEXT_REQUEST_ID_KEY) == "req-5"
	}), key, "lock-5").Return(nil)
	f.transactions.On("CreateTransaction", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { cancel() }).
		Return("trx-5", nil)
	f.publisher.On("Publish", mock.Anything, mock.Anything).Return(nil)

	_, err := f.uc.HandlePaymentEvent(ctx, &requests.PaymentEvent{
		SessionData: "client",
		Event:       constvars.PaymentEventComplete,
		Result:      requests.PaymentEventResult{Reference: "REF-5", Status: "success"},
	})
	require.NoError(t, err)
	require.Error(t, ctx.Err())
	f.locker.AssertExpectations(t)
}
