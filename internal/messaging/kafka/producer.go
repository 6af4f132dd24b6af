package kafka

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	log "github.com/sirupsen/logrus"
)

// producerClientID идентифицирует orders-service в метриках и логах брокера.
const producerClientID = "orders-service"

// Producer публикует события жизненного цикла заказов в Kafka.
// Сообщения партиционируются по order id, поэтому статусы одного заказа
// читаются консьюмером строго в порядке публикации.
type Producer struct {
	producer sarama.SyncProducer
	logger   *log.Entry
}

// NewProducer подключает синхронный продюсер к брокерам событий заказов.
func NewProducer(brokers []string) (*Producer, error) {
	producer, err := sarama.NewSyncProducer(brokers, producerConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to create orders kafka producer: %w", err)
	}

	return &Producer{
		producer: producer,
		logger:   log.WithField("component", "kafka-producer"),
	}, nil
}

// producerConfig настраивает доставку так, чтобы событие заказа не терялось
// и не дублировалось: ack от всех in-sync реплик плюс идемпотентная запись.
func producerConfig() *sarama.Config {
	config := sarama.NewConfig()
	config.ClientID = producerClientID
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 5
	config.Producer.Return.Successes = true
	config.Producer.Compression = sarama.CompressionSnappy
	config.Producer.Idempotent = true
	config.Net.MaxOpenRequests = 1 // Требование идемпотентного продюсера
	return config
}

// PublishEvent сериализует событие заказа в JSON и отправляет его в topic
// с ключом key (обычно order id).
func (p *Producer) PublishEvent(topic string, key string, event interface{}) error {
	eventData, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal order event: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic:     topic,
		Key:       sarama.StringEncoder(key),
		Value:     sarama.ByteEncoder(eventData),
		Timestamp: time.Now(),
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		p.logger.WithError(err).WithFields(log.Fields{
			"topic":    topic,
			"order_id": key,
		}).Error("failed to publish order event")
		return fmt.Errorf("failed to publish order event: %w", err)
	}

	p.logger.WithFields(log.Fields{
		"topic":     topic,
		"order_id":  key,
		"partition": partition,
		"offset":    offset,
	}).Debug("order event published")

	return nil
}

// Close закрывает соединение с брокерами.
func (p *Producer) Close() error {
	if err := p.producer.Close(); err != nil {
		return fmt.Errorf("failed to close orders kafka producer: %w", err)
	}
	return nil
}
