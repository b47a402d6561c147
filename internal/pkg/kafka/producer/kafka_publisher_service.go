package producer

import (
	"context"
	"encoding/json"
	"fmt"

	"fiveki/coop_loan_management/configs"
	"fiveki/coop_loan_management/internal/pkg/logger"
	"fiveki/coop_loan_management/internal/pkg/models"

	kafkaservice "github.com/confluentinc/confluent-kafka-go/v2/kafka"
)

type KafkaService struct {
}

func NewKafkaService() *KafkaService {
	return &KafkaService{}
}

func KafkaPublisher(ctx context.Context, payload []byte) error {

	KafkaTopic := configs.KAFKA_TOPIC

	config := &kafkaservice.ConfigMap{
		"bootstrap.servers":  configs.KAFKA_SERVER,
		"security.protocol":  configs.KAFKA_SECURITY_PROTOCOL,
		"sasl.mechanisms":    configs.KAFKA_SASL_MECHANISM,
		"sasl.username":      configs.KAFKA_SASL_USERNAME,
		"sasl.password":      configs.KAFKA_SASL_PASSWORD,
		"session.timeout.ms": configs.KAFKA_SESSION_TIMEOUT_MS,
		"client.id":          configs.KAFKA_CLIENT_ID,
		"log_level":          0,
	}
	producer, err := kafkaservice.NewProducer(config)
	if err != nil {
		return fmt.Errorf("failed to create producer: %w", err)
	}
	defer producer.Close()

	deliveryChan := make(chan kafkaservice.Event, 1)
	err = producer.Produce(&kafkaservice.Message{
		TopicPartition: kafkaservice.TopicPartition{Topic: &KafkaTopic, Partition: kafkaservice.PartitionAny},
		Value:          payload,
	}, deliveryChan)
	if err != nil {
		return fmt.Errorf("failed to produce message: %w", err)
	}

	// Wait for message delivery
	event := <-deliveryChan
	msg := event.(*kafkaservice.Message)
	if msg.TopicPartition.Error != nil {
		return fmt.Errorf("delivery failed: %w", msg.TopicPartition.Error)
	}

	logger.Info(ctx, "Message delivered to topic: %s, partition: %d, offset: %v, Message content: %s",
		*msg.TopicPartition.Topic, msg.TopicPartition.Partition, msg.TopicPartition.Offset, string(payload))

	return nil
}

// PublishLoanTransactionToKafka serializes a transaction log entry and
// publishes it on the loan transactions topic for downstream reporting.
func (k *KafkaService) PublishLoanTransactionToKafka(ctx context.Context, transaction models.LoanTransaction) error {

	payload, err := json.Marshal(transaction)
	if err != nil {
		return fmt.Errorf("failed to marshal loan transaction %s: %w", transaction.GUID, err)
	}

	return KafkaPublisher(ctx, payload)
}
