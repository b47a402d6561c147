package producer

import (
	"context"
	"fmt"

	"fiveki/coop_loan_management/configs"
	"fiveki/coop_loan_management/internal/pkg/logger"
	"fiveki/coop_loan_management/internal/pkg/models"
)

type TransactionStoreInterface interface {
	GetFailedKafkaEntries(ctx context.Context, durationHours int32) ([]models.LoanTransaction, error)
	SetKafkaFlag(ctx context.Context, guid string) error
}

type KafkaRetryService struct {
	transactionStore TransactionStoreInterface
}

func NewKafkaRetryService(transactionStore TransactionStoreInterface) *KafkaRetryService {
	return &KafkaRetryService{transactionStore: transactionStore}
}

// RetryLoanTransactionMessages republishes transaction log entries whose
// publishedToKafka flag is still false within the configured lookback window,
// then flips the flag on the ones that made it through.
func (ks *KafkaRetryService) RetryLoanTransactionMessages(ctx context.Context) ([]string, []string, error) {
	topic := configs.KAFKA_TOPIC
	server := configs.KAFKA_SERVER
	if KafkaProducer == nil {
		producer, err := NewKafkaProducer(server, topic)
		if err != nil {
			logger.Error(ctx, "failed to create Kafka Producer error: %v", err)
			return nil, nil, err
		}
		logger.Info(ctx, "Kafka Producer Created")
		KafkaProducer = producer
	}

	transactions, err := ks.transactionStore.GetFailedKafkaEntries(ctx, int32(configs.KAFKA_RETRY_DURATION))
	if err != nil {
		return nil, nil, err
	}
	if len(transactions) <= 0 {
		return nil, nil, fmt.Errorf("no unpublished loan transactions found in the duration")
	}

	successMessagesId, failedMessagesId, err := SendMessageBatch(ctx, KafkaProducer, transactions, topic, 2)
	if err != nil {
		return nil, nil, err
	}

	var flagFailures []string
	for _, guid := range successMessagesId {
		if err := ks.transactionStore.SetKafkaFlag(ctx, guid); err != nil {
			flagFailures = append(flagFailures, guid)
		}
	}
	if len(flagFailures) > 0 {
		return successMessagesId, failedMessagesId, fmt.Errorf("error updating Kafka flag in database for transactions %v", flagFailures)
	}
	return successMessagesId, failedMessagesId, nil
}
