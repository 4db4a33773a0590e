package kafka

import (
	"context"
	"fmt"
	"strings"

	"delivery-service/internal/pkg/config"
	"delivery-service/pkg/logger"

	"github.com/IBM/sarama"
)

// Producer синхронно публикует сообщения в один топик.
type Producer struct {
	log      logger.Logger
	producer sarama.SyncProducer
	topic    string
}

func NewSaramaProducerConfig(versionStr string) (*sarama.Config, error) {
	cfg := sarama.NewConfig()

	if versionStr != "" {
		version, err := sarama.ParseKafkaVersion(versionStr)
		if err != nil {
			return nil, fmt.Errorf("parse kafka version %q: %w", versionStr, err)
		}
		cfg.Version = version
	}

	// идемпотентный продюсер требует acks=all и одного запроса в полете
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Idempotent = true
	cfg.Net.MaxOpenRequests = 1
	cfg.Producer.Return.Successes = true
	cfg.Producer.Return.Errors = true
	cfg.Producer.Partitioner = sarama.NewHashPartitioner

	return cfg, nil
}

func NewProducer(ctx context.Context, log logger.Logger, cfg *config.Kafka) (*Producer, error) {
	brokers := ParseBrokers(cfg.Brokers)

	saramaConfig, err := NewSaramaProducerConfig(cfg.Sarama.Version)
	if err != nil {
		return nil, fmt.Errorf("build saramaConfig: %w", err)
	}

	kafkaLog := log.With(
		logger.NewField("brokers", brokers),
		logger.NewField("topic", cfg.Topic),
	)

	err = pingKafka(ctx, kafkaLog, brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("kafka connection: %w", err)
	}

	producer, err := sarama.NewSyncProducer(brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create producer: %w", err)
	}

	return newProducer(kafkaLog, producer, cfg.Topic), nil
}

func newProducer(log logger.Logger, producer sarama.SyncProducer, topic string) *Producer {
	return &Producer{
		log:      log,
		producer: producer,
		topic:    topic,
	}
}

// Publish отправляет сообщение с ключом партиционирования key.
// sarama.SyncProducer не принимает контекст, отмененный ctx проверяется до отправки.
func (p *Producer) Publish(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	partition, offset, err := p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(key),
		Value: sarama.ByteEncoder(value),
	})
	if err != nil {
		return fmt.Errorf("kafka publish: %w", err)
	}

	p.log.With(
		logger.NewField("partition", partition),
		logger.NewField("offset", offset),
	).Info("kafka message published")
	return nil
}

func (p *Producer) Close() error {
	return p.producer.Close()
}

// ParseBrokers разбирает список брокеров вида "host1:9092, host2:9092".
func ParseBrokers(brokers string) []string {
	parts := strings.Split(brokers, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if broker := strings.TrimSpace(part); broker != "" {
			result = append(result, broker)
		}
	}
	return result
}
