package eventqueue

import (
	"context"
	"labclinics-service/internal/app/contracts"
	"labclinics-service/internal/pkg/exceptions"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

const QueueName = "doctor_change_events"

const (
	ActionCreated = "doctor.created"
	ActionUpdated = "doctor.updated"
	ActionDeleted = "doctor.deleted"
)

// DoctorEvent is the envelope published for every committed write.
type DoctorEvent struct {
	ID         string    `json:"id"`
	Action     string    `json:"action"`
	DoctorID   string    `json:"doctor_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

type Service struct {
	ch  *amqp.Channel
	log *zap.Logger
}

// NewService opens a channel and declares the durable event queue.
func NewService(conn *amqp.Connection, log *zap.Logger) (contracts.DoctorEventPublisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	_, err = ch.QueueDeclare(
		QueueName,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,   // args
	)
	if err != nil {
		return nil, exceptions.ErrRabbitMQDeclare(err)
	}

	return &Service{
		ch:  ch,
		log: log,
	}, nil
}

func (s *Service) PublishDoctorEvent(ctx context.Context, action, doctorID string) error {
	event := DoctorEvent{
		ID:         uuid.New().String(),
		Action:     action,
		DoctorID:   doctorID,
		OccurredAt: time.Now(),
	}

	body, err := json.Marshal(event)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	err = s.ch.PublishWithContext(ctx, "", QueueName, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Body:         body,
	})
	if err != nil {
		return exceptions.ErrRabbitMQPublish(err)
	}

	s.log.Debug("published doctor change event",
		zap.String("action", action),
		zap.String("doctor_id", doctorID),
	)
	return nil
}
