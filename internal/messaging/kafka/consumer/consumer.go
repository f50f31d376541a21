package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"time"

	"go-ems/internal/events"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// SalarySeeder creates the opening salary ledger entry for a new employee.
// Seeding is idempotent: employees that already have history are skipped.
type SalarySeeder interface {
	SeedInitial(ctx context.Context, employeeID string, amount float64, occurredAt time.Time) error
}

func NewEmployeeLifecycleReader(broker, groupID string) *kafkago.Reader {
	return kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{broker},
		GroupID:        groupID,
		Topic:          events.EmployeeCreatedTopic,
		MinBytes:       1,
		MaxBytes:       10e6,
		CommitInterval: time.Second,
	})
}

// ConsumeEmployeeLifecycle reads employee lifecycle events and seeds the
// initial salary ledger entry for each created employee. Blocks until the
// context is cancelled.
func ConsumeEmployeeLifecycle(
	ctx context.Context,
	reader *kafkago.Reader,
	seeder SalarySeeder,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.employee_lifecycle")
	log.Info("consumer started", zap.String("topic", events.EmployeeCreatedTopic))

	for {
		msg, err := reader.ReadMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, io.EOF) {
				log.Info("consumer stopped")
				return
			}
			log.Error("read message failed", zap.Error(err))
			continue
		}

		if err := handleEmployeeCreated(ctx, msg, seeder, log); err != nil {
			log.Error("handle employee created failed",
				zap.String("key", string(msg.Key)),
				zap.Error(err),
			)
		}
	}
}

func handleEmployeeCreated(
	ctx context.Context,
	msg kafkago.Message,
	seeder SalarySeeder,
	logger *zap.Logger,
) error {
	var event events.EmployeeCreatedEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		// Malformed payloads are logged and dropped, not retried.
		logger.Warn("skipping malformed event payload", zap.Error(err))
		return nil
	}

	if event.EventType != events.EmployeeCreatedType {
		return nil
	}

	if err := seeder.SeedInitial(ctx, event.EmployeeID, event.Salary, event.OccurredAt); err != nil {
		return err
	}

	logger.Info("initial salary ledger entry seeded",
		zap.String("employee_id", event.EmployeeID),
		zap.String("request_id", event.RequestID),
	)
	return nil
}
