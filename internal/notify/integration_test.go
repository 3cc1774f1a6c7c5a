//go:build integration

package notify

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/rabbitmq"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/toolforge/tool-spacemedia-sub000/internal/domain"
)

type RabbitMQIntegrationSuite struct {
	suite.Suite
	ctx       context.Context
	container *rabbitmq.RabbitMQContainer
	amqpURL   string
	logger    *slog.Logger
}

func (s *RabbitMQIntegrationSuite) SetupSuite() {
	s.ctx = context.Background()
	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	container, err := rabbitmq.Run(s.ctx,
		"rabbitmq:3.13-management-alpine",
		testcontainers.WithWaitStrategy(
			wait.ForLog("Server startup complete").
				WithStartupTimeout(60*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	amqpURL, err := container.AmqpURL(s.ctx)
	s.Require().NoError(err)
	s.amqpURL = amqpURL
}

func (s *RabbitMQIntegrationSuite) TearDownSuite() {
	if s.container != nil {
		_ = s.container.Terminate(s.ctx)
	}
}

func TestRabbitMQIntegrationSuite(t *testing.T) {
	suite.Run(t, new(RabbitMQIntegrationSuite))
}

func (s *RabbitMQIntegrationSuite) TestNotifier_Connection() {
	cfg := Config{
		URL:        s.amqpURL,
		Exchange:   "test-exchange",
		RoutingKey: "test-routing-key",
		QueueName:  "test-queue",
	}

	notifier, err := NewRabbitMQ(cfg, s.logger)
	s.NoError(err)
	s.NotNil(notifier)

	err = notifier.Close()
	s.NoError(err)
}

func (s *RabbitMQIntegrationSuite) TestNotifier_RunBatchMessage() {
	cfg := Config{
		URL:        s.amqpURL,
		Exchange:   "test-exchange-batch",
		RoutingKey: "test-routing-key-batch",
		QueueName:  "test-queue-batch",
	}

	notifier, err := NewRabbitMQ(cfg, s.logger)
	s.Require().NoError(err)
	defer notifier.Close()

	summary := &domain.RunSummary{
		RunID:     "run-123",
		SourceID:  "test-source",
		Processed: 10,
		Published: 2,
		Problems:  1,
		Items: []domain.PublishedRef{
			{
				SourceID:   "test-source",
				ExternalID: "abc-1",
				Title:      "Test item",
				AssetURL:   "https://source.test/abc-1.jpg",
				ArchiveIDs: []string{"F1"},
			},
		},
	}

	err = notifier.Notify(s.ctx, summary)
	s.NoError(err)

	msg := s.consumeMessage(cfg)
	s.Require().NotNil(msg)
	s.Equal("application/json", msg.ContentType)
	s.Equal(uint8(amqp.Persistent), msg.DeliveryMode)

	var received RunMessage
	err = json.Unmarshal(msg.Body, &received)
	s.NoError(err)
	s.Equal("run-123", received.RunID)
	s.Equal("test-source", received.SourceID)
	s.Equal(2, received.Published)
	s.Equal(10, received.Processed)
	s.Equal(1, received.Problems)
	s.Require().Len(received.Items, 1)
	s.Equal([]string{"F1"}, received.Items[0].ArchiveIDs)
	s.False(received.Timestamp.IsZero())
}

func (s *RabbitMQIntegrationSuite) consumeMessage(cfg Config) *amqp.Delivery {
	conn, err := amqp.Dial(s.amqpURL)
	s.Require().NoError(err)
	defer conn.Close()

	ch, err := conn.Channel()
	s.Require().NoError(err)
	defer ch.Close()

	msgs, err := ch.Consume(cfg.QueueName, "", true, false, false, false, nil)
	s.Require().NoError(err)

	select {
	case msg := <-msgs:
		return &msg
	case <-time.After(5 * time.Second):
		s.Fail("Timeout waiting for message")
		return nil
	}
}
