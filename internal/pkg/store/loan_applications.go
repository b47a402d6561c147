package store

import (
	"context"
	"errors"

	"fiveki/coop_loan_management/internal/pkg/consts"
	"fiveki/coop_loan_management/internal/pkg/db"
	"fiveki/coop_loan_management/internal/pkg/logger"
	"fiveki/coop_loan_management/internal/pkg/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type LoanApplicationRepository struct {
	repo *MongoRepository[models.LoanApplication]
}

func NewLoanApplicationRepository() *LoanApplicationRepository {
	collection := db.MDB.Database.Collection(consts.LoanApplicationsCollection)
	return &LoanApplicationRepository{
		repo: NewMongoRepository[models.LoanApplication](collection),
	}
}

func (r *LoanApplicationRepository) ApplicationByMemberAndTransaction(ctx context.Context, memberID, transactionID string) (*models.LoanApplication, error) {
	filter := bson.M{"memberId": memberID, "transactionId": transactionID}
	result, err := r.repo.Read(ctx, filter)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, consts.ErrorLoanApplicationNotFound
		}
		return nil, err
	}
	return &result, nil
}

func (r *LoanApplicationRepository) ListApplications(ctx context.Context) ([]models.LoanApplication, error) {
	return r.repo.FindAll(ctx, bson.M{})
}

func (r *LoanApplicationRepository) DeleteApplication(ctx context.Context, memberID, transactionID string) error {
	filter := bson.M{"memberId": memberID, "transactionId": transactionID}
	if err := r.repo.Delete(ctx, filter); err != nil {
		logger.Error(ctx, "loanApplications : error while deleting %v", err.Error())
		return err
	}
	return nil
}
