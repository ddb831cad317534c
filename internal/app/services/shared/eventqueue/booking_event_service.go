package eventqueue

import (
	"context"
	"sync"

	"fitbook-service/internal/app/contracts"
	"fitbook-service/internal/pkg/constvars"
	"fitbook-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

var (
	bookingEventServiceInstance contracts.BookingEventPublisher
	onceBookingEventService     sync.Once
)

// Service publishes booking lifecycle events to a durable RabbitMQ queue so
// downstream consumers (notifications, calendars) learn about confirmed and
// cancelled bookings.
type Service struct {
	ch  *amqp.Channel
	log *zap.Logger
}

func NewService(conn *amqp.Connection, logger *zap.Logger) (contracts.BookingEventPublisher, error) {
	var initErr error
	onceBookingEventService.Do(func() {
		ch, err := conn.Channel()
		if err != nil {
			initErr = err
			return
		}

		_, err = ch.QueueDeclare(
			constvars.BookingEventQueueName,
			true,  // durable
			false, // autoDelete
			false, // exclusive
			false, // noWait
			nil,
		)
		if err != nil {
			initErr = err
			return
		}

		if err := ch.Confirm(false); err != nil {
			initErr = err
			return
		}

		bookingEventServiceInstance = &Service{ch: ch, log: logger}
	})
	if initErr != nil {
		return nil, initErr
	}
	return bookingEventServiceInstance, nil
}

func (s *Service) PublishBookingEvent(ctx context.Context, event contracts.BookingEvent) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.log.Info("eventqueue.PublishBookingEvent called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBookingIDKey, event.BookingID),
		zap.String(constvars.LoggingQueueNameKey, constvars.BookingEventQueueName),
	)

	body, err := json.Marshal(event)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	err = s.ch.PublishWithContext(ctx,
		"", // default exchange
		constvars.BookingEventQueueName,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  constvars.MIMEApplicationJSON,
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
	if err != nil {
		s.log.Error("eventqueue.PublishBookingEvent error publishing message",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrRabbitMQPublishMessage(err, constvars.BookingEventQueueName)
	}

	s.log.Info("eventqueue.PublishBookingEvent succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBookingIDKey, event.BookingID),
	)
	return nil
}
