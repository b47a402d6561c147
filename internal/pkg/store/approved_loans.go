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

type ApprovedLoanRepository struct {
	repo *MongoRepository[models.ApprovedLoan]
}

func NewApprovedLoanRepository() *ApprovedLoanRepository {
	collection := db.MDB.Database.Collection(consts.ApprovedLoansCollection)
	return &ApprovedLoanRepository{
		repo: NewMongoRepository[models.ApprovedLoan](collection),
	}
}

func (r *ApprovedLoanRepository) CreateApprovedLoan(ctx context.Context, loan models.ApprovedLoan) error {
	_, err := r.repo.Create(ctx, loan)
	if err != nil {
		logger.Error(ctx, "approvedLoans : error while inserting %v", err.Error())
		return fmt.Errorf("approvedLoans : error while inserting %v", err.Error())
	}
	return nil
}

func (r *ApprovedLoanRepository) ApprovedLoanByMemberAndTransaction(ctx context.Context, memberID, transactionID string) (*models.ApprovedLoan, error) {
	filter := bson.M{"memberId": memberID, "transactionId": transactionID}
	result, err := r.repo.Read(ctx, filter)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, consts.ErrorApprovedLoanNotFound
		}
		return nil, err
	}
	return &result, nil
}
