package store

import (
	"context"
	"errors"
	"fmt"

	"fiveki/coop_loan_management/internal/pkg/common"
	"fiveki/coop_loan_management/internal/pkg/consts"
	"fiveki/coop_loan_management/internal/pkg/db"
	"fiveki/coop_loan_management/internal/pkg/logger"
	"fiveki/coop_loan_management/internal/pkg/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type LoanNotificationRepository struct {
	repo *MongoRepository[models.LoanNotification]
}

func NewLoanNotificationRepository() *LoanNotificationRepository {
	collection := db.MDB.Database.Collection(consts.LoanNotificationsCollection)
	return &LoanNotificationRepository{
		repo: NewMongoRepository[models.LoanNotification](collection),
	}
}

// NotificationExists reports whether a reminder marker is present for the
// loan. The scanner treats a positive answer as "never send again".
func (r *LoanNotificationRepository) NotificationExists(ctx context.Context, memberID, transactionID string) (bool, error) {
	filter := bson.M{"key": common.NotificationKey(memberID, transactionID)}
	count, err := r.repo.CountDocuments(ctx, filter)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *LoanNotificationRepository) NotificationByKey(ctx context.Context, memberID, transactionID string) (*models.LoanNotification, error) {
	filter := bson.M{"key": common.NotificationKey(memberID, transactionID)}
	result, err := r.repo.Read(ctx, filter)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &result, nil
}

func (r *LoanNotificationRepository) CreateNotification(ctx context.Context, notification models.LoanNotification) error {
	_, err := r.repo.Create(ctx, notification)
	if err != nil {
		logger.Error(ctx, "loanNotifications : error while inserting %v", err.Error())
		return fmt.Errorf("loanNotifications : error while inserting %v", err.Error())
	}
	return nil
}

func (r *LoanNotificationRepository) IncrementResendCount(ctx context.Context, memberID, transactionID string) error {
	filter := bson.M{"key": common.NotificationKey(memberID, transactionID)}
	return r.repo.Inc(ctx, filter, bson.M{"resendCount": 1})
}
