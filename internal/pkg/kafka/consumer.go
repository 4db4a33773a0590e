package kafka

import (
	"context"
	"errors"
	"fmt"
	"time"

	"delivery-service/internal/pkg/config"
	"delivery-service/pkg/logger"
	retrierconfig "delivery-service/pkg/retrier"
	"delivery-service/pkg/retrier/backoff_adapter"

	"github.com/IBM/sarama"
)

const (
	initialInterval = 1 * time.Second
	maxInterval     = 30 * time.Second
	maxElapsedTime  = 2 * time.Minute
	randomization   = 0.5
	multiplier      = 2
)

// Consumer читает топик в составе consumer group и передает сообщения handler.
type Consumer struct {
	log     logger.Logger
	group   sarama.ConsumerGroup
	topics  []string
	handler sarama.ConsumerGroupHandler
}

// NewSaramaConsumerConfig собирает конфигурацию consumer group. Чтение
// начинается с самого старого offset, если группа еще ничего не коммитила.
func NewSaramaConsumerConfig(versionStr string, autoCommit bool) (*sarama.Config, error) {
	cfg := sarama.NewConfig()

	version, err := sarama.ParseKafkaVersion(versionStr)
	if err != nil {
		return nil, fmt.Errorf("parse kafka version %q: %w", versionStr, err)
	}
	cfg.Version = version

	cfg.Consumer.Offsets.Initial = sarama.OffsetOldest
	cfg.Consumer.Offsets.AutoCommit.Enable = autoCommit
	cfg.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{
		sarama.NewBalanceStrategyRoundRobin(),
	}
	cfg.Consumer.Return.Errors = true

	return cfg, nil
}

func NewConsumer(ctx context.Context, log logger.Logger, cfg *config.Kafka, handler sarama.ConsumerGroupHandler) (*Consumer, error) {
	brokers := ParseBrokers(cfg.Brokers)
	topics := []string{cfg.Topic}

	saramaConfig, err := NewSaramaConsumerConfig(cfg.Sarama.Version, cfg.Sarama.ConsumerOffsetsAutocommit)
	if err != nil {
		return nil, fmt.Errorf("build saramaConfig: %w", err)
	}

	kafkaLog := log.With(
		logger.NewField("brokers", brokers),
		logger.NewField("group", cfg.ConsumerGroup),
		logger.NewField("topics", topics),
	)

	// до создания группы: иначе при недоступном брокере ее пришлось бы закрывать
	if err := pingKafka(ctx, kafkaLog, brokers, saramaConfig); err != nil {
		return nil, fmt.Errorf("kafka connection: %w", err)
	}

	group, err := sarama.NewConsumerGroup(brokers, cfg.ConsumerGroup, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create consumer group: %w", err)
	}

	return &Consumer{
		log:     kafkaLog,
		group:   group,
		topics:  topics,
		handler: handler,
	}, nil
}

// Start блокируется до отмены ctx или закрытия группы.
// Consume возвращается при каждой ребалансировке, поэтому вызывается в цикле.
func (c *Consumer) Start(ctx context.Context) error {
	c.log.Info("Kafka consumer starting")

	go c.logErrors()

	for {
		err := c.group.Consume(ctx, c.topics, c.handler)
		switch {
		case errors.Is(err, sarama.ErrClosedConsumerGroup):
			c.log.Info("Consumer group closed")
			return nil
		case err != nil:
			c.log.With(
				logger.NewField("error", err),
			).Error("Error from consumer")
			return fmt.Errorf("consumer error: %w", err)
		}

		if ctx.Err() != nil {
			c.log.Warn("Context cancelled, stopping consumer")
			return ctx.Err()
		}
	}
}

func (c *Consumer) Close() error {
	return c.group.Close()
}

// logErrors читает асинхронные ошибки группы, канал закрывается в Close.
func (c *Consumer) logErrors() {
	for err := range c.group.Errors() {
		c.log.With(
			logger.NewField("error", err),
		).Warn("consumer group error")
	}
}

func pingKafka(ctx context.Context, log logger.Logger, brokers []string, cfg *sarama.Config) error {
	var attempt uint64
	retrier := backoff_adapter.New(retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		Notify: func(err error, wait time.Duration) {
			log.With(
				logger.NewField("attempt", attempt),
				logger.NewField("retry_in", wait),
				logger.NewField("error", err),
			).Warn("Kafka is not ready")
		},
	})

	err := retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++

		client, err := sarama.NewClient(brokers, cfg)
		if err != nil {
			return err
		}
		defer func() {
			if err := client.Close(); err != nil {
				log.Error("failed to close Kafka connection",
					logger.NewField("error", err),
				)
			}
		}()

		_, err = client.Topics()
		return err
	})
	if err != nil {
		log.With(
			logger.NewField("error", err),
			logger.NewField("attempts", attempt),
		).Error("Kafka connection failed after retries")
		return fmt.Errorf("failed to connect to Kafka: %w", err)
	}

	log.With(
		logger.NewField("attempts", attempt),
	).Info("Kafka connection established")
	return nil
}
