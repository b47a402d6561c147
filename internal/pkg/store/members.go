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

type MemberRepository struct {
	repo *MongoRepository[models.Member]
}

func NewMemberRepository() *MemberRepository {
	collection := db.MDB.Database.Collection(consts.MembersCollection)
	return &MemberRepository{
		repo: NewMongoRepository[models.Member](collection),
	}
}

func (r *MemberRepository) MemberByID(ctx context.Context, memberID string) (*models.Member, error) {
	filter := bson.M{"memberId": memberID}
	result, err := r.repo.Read(ctx, filter)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, consts.ErrorMemberNotFound
		}
		return nil, err
	}
	return &result, nil
}

func (r *MemberRepository) UpdateBalance(ctx context.Context, memberID string, newBalance float64) error {
	filter := bson.M{"memberId": memberID}
	if err := r.repo.Update(ctx, filter, bson.M{"balance": newBalance}); err != nil {
		logger.Error(ctx, "members : error while updating balance %v", err.Error())
		return err
	}
	return nil
}

// AttachLoan writes the member-scoped denormalized copy of an approved loan
// under loans.{transactionId}.
func (r *MemberRepository) AttachLoan(ctx context.Context, memberID string, loan models.ApprovedLoan) error {
	filter := bson.M{"memberId": memberID}
	field := fmt.Sprintf("loans.%s", loan.TransactionID)
	if err := r.repo.Update(ctx, filter, bson.M{field: loan}); err != nil {
		logger.Error(ctx, "members : error while attaching loan %v", err.Error())
		return err
	}
	return nil
}
