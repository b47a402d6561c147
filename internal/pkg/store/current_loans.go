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

type CurrentLoanRepository struct {
	repo *MongoRepository[models.CurrentLoan]
}

func NewCurrentLoanRepository() *CurrentLoanRepository {
	collection := db.MDB.Database.Collection(consts.CurrentLoansCollection)
	return &CurrentLoanRepository{
		repo: NewMongoRepository[models.CurrentLoan](collection),
	}
}

func (r *CurrentLoanRepository) CreateCurrentLoan(ctx context.Context, loan models.CurrentLoan) error {
	_, err := r.repo.Create(ctx, loan)
	if err != nil {
		logger.Error(ctx, "currentLoans : error while inserting %v", err.Error())
		return fmt.Errorf("currentLoans : error while inserting %v", err.Error())
	}
	return nil
}

func (r *CurrentLoanRepository) AllCurrentLoans(ctx context.Context) ([]models.CurrentLoan, error) {
	return r.repo.FindAll(ctx, bson.M{})
}

func (r *CurrentLoanRepository) CurrentLoanByMemberAndTransaction(ctx context.Context, memberID, transactionID string) (*models.CurrentLoan, error) {
	filter := bson.M{"memberId": memberID, "transactionId": transactionID}
	result, err := r.repo.Read(ctx, filter)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, consts.ErrorCurrentLoanNotFound
		}
		return nil, err
	}
	return &result, nil
}
