package producer

import (
	"context"
	"encoding/json"
	"time"

	"fiveki/coop_loan_management/configs"
	"fiveki/coop_loan_management/internal/pkg/logger"
	"fiveki/coop_loan_management/internal/pkg/models"

	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
)

type Producer struct {
	producer *kafka.Producer
	topic    string
}

var KafkaProducer *Producer

func NewKafkaProducer(broker, topic string) (*Producer, error) {
	p, err := kafka.NewProducer(&kafka.ConfigMap{"bootstrap.servers": configs.KAFKA_SERVER,
		"security.protocol":  configs.KAFKA_SECURITY_PROTOCOL,
		"sasl.mechanisms":    configs.KAFKA_SASL_MECHANISM,
		"sasl.username":      configs.KAFKA_SASL_USERNAME,
		"sasl.password":      configs.KAFKA_SASL_PASSWORD,
		"session.timeout.ms": configs.KAFKA_SESSION_TIMEOUT_MS,
		"client.id":          configs.KAFKA_CLIENT_ID,
		"log_level":          0})
	if err != nil {
		return nil, err
	}

	return &Producer{
		producer: p,
		topic:    topic,
	}, nil
}

// SendMessageBatch publishes the given transaction log entries keyed by GUID,
// retrying each message up to retryCount times with linear backoff.
func SendMessageBatch(ctx context.Context, kafkaProducer *Producer, transactions []models.LoanTransaction, topic string, retryCount int) ([]string, []string, error) {

	var successIDs []string
	var failedIDs []string

	kafkaMessages := make([]*kafka.Message, 0, len(transactions))
	for _, transaction := range transactions {
		payload, err := json.Marshal(transaction)
		if err != nil {
			logger.Error(ctx, "Failed to marshal LoanTransaction to JSON: %v", err)
			failedIDs = append(failedIDs, transaction.GUID)
			continue
		}
		kafkaMessages = append(kafkaMessages, &kafka.Message{
			TopicPartition: kafka.TopicPartition{Topic: &topic, Partition: kafka.PartitionAny},
			Value:          payload,
			Key:            []byte(transaction.GUID),
		})
	}

	for _, kafkaMsg := range kafkaMessages {
		success := false
		for attempt := 0; attempt <= retryCount; attempt++ {
			err := kafkaProducer.producer.Produce(kafkaMsg, nil)
			if err == nil {
				logger.Info(ctx, "kafka message sent successfully")
				success = true
				break
			}
			logger.Error(ctx, "Failed to send Kafka message on attempt %d: %v", attempt+1, err)
			// Backoff before retrying
			time.Sleep(time.Second * time.Duration(attempt+1))
		}
		if success {
			successIDs = append(successIDs, string(kafkaMsg.Key))
		} else {
			failedIDs = append(failedIDs, string(kafkaMsg.Key))
		}
	}
	// Wait for all messages to be delivered
	kafkaProducer.producer.Flush(15 * 1000)
	return successIDs, failedIDs, nil
}

func (p *Producer) Close() {
	p.producer.Close()
}
