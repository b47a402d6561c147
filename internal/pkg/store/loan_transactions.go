package store

import (
	"context"
	"fmt"
	"time"

	"fiveki/coop_loan_management/internal/pkg/consts"
	"fiveki/coop_loan_management/internal/pkg/db"
	"fiveki/coop_loan_management/internal/pkg/logger"
	"fiveki/coop_loan_management/internal/pkg/models"

	"go.mongodb.org/mongo-driver/bson"
)

type LoanTransactionRepository struct {
	repo *MongoRepository[models.LoanTransaction]
}

func NewLoanTransactionRepository() *LoanTransactionRepository {
	collection := db.MDB.Database.Collection(consts.LoanTransactionsCollection)
	return &LoanTransactionRepository{
		repo: NewMongoRepository[models.LoanTransaction](collection),
	}
}

func (r *LoanTransactionRepository) CreateLoanTransaction(ctx context.Context, transaction models.LoanTransaction) error {
	_, err := r.repo.Create(ctx, transaction)
	if err != nil {
		logger.Error(ctx, "loanTransactions : error while inserting %v", err.Error())
		return fmt.Errorf("loanTransactions : error while inserting %v", err.Error())
	}
	return nil
}

// GetFailedKafkaEntries returns transactions whose reporting event never made
// it onto the topic, within the retry window.
func (r *LoanTransactionRepository) GetFailedKafkaEntries(ctx context.Context, durationHours int32) ([]models.LoanTransaction, error) {
	thresholdTime := time.Now().Add(-time.Duration(durationHours) * time.Hour)

	filter := bson.M{
		"publishedToKafka": false,
		"createdAt":        bson.M{"$gte": thresholdTime},
	}
	return r.repo.FindAll(ctx, filter)
}

func (r *LoanTransactionRepository) SetKafkaFlag(ctx context.Context, guid string) error {
	filter := bson.M{"GUID": guid}
	return r.repo.Update(ctx, filter, bson.M{"publishedToKafka": true})
}
