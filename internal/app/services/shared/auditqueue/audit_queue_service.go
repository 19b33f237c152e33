package auditqueue

import (
	"carelink-service/internal/app/contracts"
	"carelink-service/internal/app/models"
	"context"
	"fmt"
	"sync"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

const (
	DeadLetterSuffix = "_dlq"
)

// Service publishes audit events to a durable queue so downstream
// consumers (SIEM, compliance exports) can pick them up. Publishing is
// confirm-mode but callers treat failures as best-effort.
type Service struct {
	ch        *amqp.Channel
	log       *zap.Logger
	queueName string
	confirms  chan amqp.Confirmation
	mu        sync.Mutex
}

func NewService(conn *amqp.Connection, log *zap.Logger, queueName string) (contracts.AuditQueuePublisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	// Declare standard queue (durable)
	_, err = ch.QueueDeclare(
		queueName, // name
		true,      // durable
		false,     // autoDelete
		false,     // exclusive
		false,     // noWait
		nil,       // args
	)
	if err != nil {
		return nil, err
	}

	// Declare dead-letter queue (durable)
	_, err = ch.QueueDeclare(
		queueName+DeadLetterSuffix,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return nil, err
	}

	// Enable publisher confirms
	if err := ch.Confirm(false); err != nil {
		return nil, err
	}
	confirms := ch.NotifyPublish(make(chan amqp.Confirmation, 1))

	return &Service{
		ch:        ch,
		log:       log,
		queueName: queueName,
		confirms:  confirms,
	}, nil
}

func (s *Service) Publish(ctx context.Context, auditLog *models.AuditLog) error {
	body, err := json.Marshal(auditLog)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	err = s.ch.PublishWithContext(ctx,
		"",          // exchange
		s.queueName, // routing key
		false,       // mandatory
		false,       // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
	if err != nil {
		return err
	}

	select {
	case confirmation := <-s.confirms:
		if !confirmation.Ack {
			return fmt.Errorf("audit event publish not acknowledged by broker")
		}
	case <-ctx.Done():
		return ctx.Err()
	}

	s.log.Debug("audit event published",
		zap.String("queue", s.queueName),
		zap.String("action", auditLog.Action),
	)
	return nil
}
