package events

import (
	"context"
	"errors"
	"testing"

	"github.com/Bricklabsai/theralink/internal/app/models"
	"github.com/Bricklabsai/theralink/internal/pkg/constvars"
	"github.com/Bricklabsai/theralink/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPublishing(t *testing.T) {
	event := NewDomainEvent(constvars.EventAppointmentCreated, map[string]interface{}{
		"appointment_id": "apt-1",
	})

	msg, err := buildPublishing(event, "req-1")
	require.NoError(t, err)

	assert.Equal(t, constvars.MIMEApplicationJSON, msg.ContentType)
	assert.Equal(t, amqp.Persistent, msg.DeliveryMode)
	assert.Equal(t, event.ID, msg.MessageId)
	assert.Equal(t, constvars.EventAppointmentCreated, msg.Type)
	assert.Equal(t, "req-1", msg.Headers[constvars.HeaderXRequestID])

	decoded := new(models.DomainEvent)
	require.NoError(t, json.Unmarshal(msg.Body, decoded))
	assert.Equal(t, event.ID, decoded.ID)
	assert.Equal(t, "apt-1", decoded.Payload["appointment_id"])
}

func TestNewDomainEvent(t *testing.T) {
	first := NewDomainEvent(constvars.EventPaymentCompleted, nil)
	second := NewDomainEvent(constvars.EventPaymentCompleted, nil)

	assert.NotEmpty(t, first.ID)
	assert.NotEqual(t, first.ID, second.ID)
	assert.False(t, first.OccurredAt.IsZero())
}

type stubConfirmation struct {
	acks chan bool
}

func newStubConfirmation() *stubConfirmation {
	return &stubConfirmation{acks: make(chan bool, 1)}
}

func (c *stubConfirmation) WaitContext(ctx context.Context) (bool, error) {
	select {
	case ack := <-c.acks:
		return ack, nil
	case <-ctx.Done():
		return false, ctx.Err()
	}
}

func TestAwaitConfirm(t *testing.T) {
	t.Run("ack", func(t *testing.T) {
		confirm := newStubConfirmation()
		confirm.acks <- true

		assert.NoError(t, awaitConfirm(context.Background(), confirm, "theralink.events"))
	})

	t.Run("nack", func(t *testing.T) {
		confirm := newStubConfirmation()
		confirm.acks <- false

		err := awaitConfirm(context.Background(), confirm, "theralink.events")

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusInternalServerError, customErr.StatusCode)
	})

	t.Run("late ack of an abandoned delivery does not confirm the next one", func(t *testing.T) {
		first := newStubConfirmation()
		second := newStubConfirmation()

		cancelled, cancel := context.WithCancel(context.Background())
		cancel()
		err := awaitConfirm(cancelled, first, "theralink.events")
		require.Error(t, err)
		assert.True(t, errors.Is(err, context.Canceled))

		// the broker acks the first delivery after its caller gave up and
		// nacks the second one
		first.acks <- true
		second.acks <- false

		err = awaitConfirm(context.Background(), second, "theralink.events")
		require.Error(t, err)
		assert.Len(t, first.acks, 1)
	})
}
