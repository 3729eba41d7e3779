package events

import (
	"context"
	"fmt"

	"github.com/Bricklabsai/theralink/internal/app/contracts"
	"github.com/Bricklabsai/theralink/internal/app/models"
	"github.com/Bricklabsai/theralink/internal/pkg/constvars"
	"github.com/Bricklabsai/theralink/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

const bindAllRoutingKeys = "#"

// rabbitMQPublisher fans domain events out on a durable topic exchange.
// The routing key is the event type.
type rabbitMQPublisher struct {
	ch       *amqp.Channel
	log      *zap.Logger
	exchange string
}

// confirmation is the broker ack for a single delivery tag.
type confirmation interface {
	WaitContext(ctx context.Context) (bool, error)
}

// NewRabbitMQPublisher declares the exchange and the events queue bound to
// every routing key, then enables publisher confirms.
func NewRabbitMQPublisher(conn *amqp.Connection, log *zap.Logger, exchange, queueName string) (contracts.EventPublisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	err = ch.ExchangeDeclare(
		exchange, // name
		"topic",  // kind
		true,     // durable
		false,    // autoDelete
		false,    // internal
		false,    // noWait
		nil,      // args
	)
	if err != nil {
		return nil, err
	}

	if queueName != "" {
		_, err = ch.QueueDeclare(queueName, true, false, false, false, nil)
		if err != nil {
			return nil, err
		}
		err = ch.QueueBind(queueName, bindAllRoutingKeys, exchange, false, nil)
		if err != nil {
			return nil, err
		}
	}

	if err := ch.Confirm(false); err != nil {
		return nil, err
	}

	return &rabbitMQPublisher{
		ch:       ch,
		log:      log,
		exchange: exchange,
	}, nil
}

func (p *rabbitMQPublisher) Publish(ctx context.Context, event *models.DomainEvent) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	p.log.Info("EventPublisher.Publish called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRoutingKey, event.Type),
	)

	msg, err := buildPublishing(event, requestID)
	if err != nil {
		return err
	}

	deferred, err := p.ch.PublishWithDeferredConfirmWithContext(ctx, p.exchange, event.Type, false, false, msg)
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, p.exchange)
	}
	// nil when the channel is not in confirm mode
	if deferred != nil {
		if err := awaitConfirm(ctx, deferred, p.exchange); err != nil {
			p.log.Error("EventPublisher.Publish error waiting for confirmation",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingRoutingKey, event.Type),
				zap.Uint64("delivery_tag", deferred.DeliveryTag),
				zap.Error(err),
			)
			return err
		}
	}

	p.log.Info("EventPublisher.Publish succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRoutingKey, event.Type),
	)
	return nil
}

// awaitConfirm blocks until the broker acks this delivery or ctx ends. A late
// ack for an abandoned delivery stays with its own tag.
func awaitConfirm(ctx context.Context, confirm confirmation, exchange string) error {
	acked, err := confirm.WaitContext(ctx)
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, exchange)
	}
	if !acked {
		return exceptions.ErrRabbitMQPublishMessage(fmt.Errorf("message not confirmed"), exchange)
	}
	return nil
}

func buildPublishing(event *models.DomainEvent, requestID string) (amqp.Publishing, error) {
	body, err := json.Marshal(event)
	if err != nil {
		return amqp.Publishing{}, exceptions.ErrCannotMarshalJSON(err)
	}

	return amqp.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		DeliveryMode: amqp.Persistent,
		MessageId:    event.ID,
		Type:         event.Type,
		Timestamp:    event.OccurredAt,
		Headers: amqp.Table{
			constvars.HeaderXRequestID: requestID,
		},
		Body: body,
	}, nil
}
