package store

import (
	"context"
	"errors"
	"fmt"

	"fiveki/coop_loan_management/internal/pkg/consts"
	"fiveki/coop_loan_management/internal/pkg/db"
	"fiveki/coop_loan_management/internal/pkg/logger"
	"fiveki/coop_loan_management/internal/pkg/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type RejectedLoanRepository struct {
	repo *MongoRepository[models.RejectedLoan]
}

func NewRejectedLoanRepository() *RejectedLoanRepository {
	collection := db.MDB.Database.Collection(consts.RejectedLoansCollection)
	return &RejectedLoanRepository{
		repo: NewMongoRepository[models.RejectedLoan](collection),
	}
}

func (r *RejectedLoanRepository) CreateRejectedLoan(ctx context.Context, loan models.RejectedLoan) error {
	_, err := r.repo.Create(ctx, loan)
	if err != nil {
		logger.Error(ctx, "rejectedLoans : error while inserting %v", err.Error())
		return fmt.Errorf("rejectedLoans : error while inserting %v", err.Error())
	}
	return nil
}

func (r *RejectedLoanRepository) RejectedLoanByMemberAndTransaction(ctx context.Context, memberID, transactionID string) (*models.RejectedLoan, error) {
	filter := bson.M{"memberId": memberID, "transactionId": transactionID}
	result, err := r.repo.Read(ctx, filter)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, consts.ErrorRejectedLoanNotFound
		}
		return nil, err
	}
	return &result, nil
}
