package store

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"fiveki/coop_loan_management/configs"
	"fiveki/coop_loan_management/internal/pkg/consts"
	"fiveki/coop_loan_management/internal/pkg/db"
	"fiveki/coop_loan_management/internal/pkg/logger"
	"fiveki/coop_loan_management/internal/pkg/models"
	"fiveki/coop_loan_management/internal/pkg/store/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const settingsCacheKey = "fiveki:settings"

// SettingsRepository fronts the single cooperative settings document. Reads
// go through Redis with a short TTL; every aggregate write invalidates the
// cache so the next orchestration sees fresh balances.
type SettingsRepository struct {
	repo        *MongoRepository[models.Settings]
	fundsRepo   *MongoRepository[models.FundsSnapshot]
	savingsRepo *MongoRepository[models.SavingsSnapshot]
	redisClient repository.RedisStoreOperations
}

func NewSettingsRepository(redisClient repository.RedisStoreOperations) *SettingsRepository {
	collection := db.MDB.Database.Collection(consts.SettingsCollection)
	fundsCollection := db.MDB.Database.Collection(consts.FundsHistoryCollection)
	savingsCollection := db.MDB.Database.Collection(consts.SavingsHistoryCollection)
	return &SettingsRepository{
		repo:        NewMongoRepository[models.Settings](collection),
		fundsRepo:   NewMongoRepository[models.FundsSnapshot](fundsCollection),
		savingsRepo: NewMongoRepository[models.SavingsSnapshot](savingsCollection),
		redisClient: redisClient,
	}
}

func (r *SettingsRepository) GetSettings(ctx context.Context) (*models.Settings, error) {
	if r.redisClient != nil {
		if cached, err := r.redisClient.Get(ctx, settingsCacheKey); err == nil {
			var settings models.Settings
			if err := json.Unmarshal(cached, &settings); err == nil {
				return &settings, nil
			}
		}
	}

	settings, err := r.repo.Read(ctx, bson.M{})
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, consts.ErrorMissingSettings
		}
		return nil, err
	}

	if r.redisClient != nil {
		data, err := json.Marshal(settings)
		if err == nil {
			ttl := time.Duration(configs.SETTINGS_CACHE_TTL_SECONDS) * time.Second
			if err := r.redisClient.Set(ctx, settingsCacheKey, data, ttl); err != nil {
				logger.Debug(ctx, "settings cache set failed: %v", err)
			}
		}
	}

	return &settings, nil
}

// GetSettingsFresh bypasses the cache; the commit path uses it so funding
// decisions are made against current balances.
func (r *SettingsRepository) GetSettingsFresh(ctx context.Context) (*models.Settings, error) {
	settings, err := r.repo.Read(ctx, bson.M{})
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, consts.ErrorMissingSettings
		}
		return nil, err
	}
	return &settings, nil
}

func (r *SettingsRepository) UpdateFundsAndSavings(ctx context.Context, funds, savings float64) error {
	if err := r.repo.Update(ctx, bson.M{}, bson.M{"funds": funds, "savings": savings}); err != nil {
		logger.Error(ctx, "settings : error while updating aggregates %v", err.Error())
		return err
	}
	r.invalidateCache(ctx)
	return nil
}

func (r *SettingsRepository) AppendFundsSnapshot(ctx context.Context, snapshot models.FundsSnapshot) error {
	_, err := r.fundsRepo.Create(ctx, snapshot)
	return err
}

// UpsertSavingsSnapshot keeps one savings reading per calendar date.
func (r *SettingsRepository) UpsertSavingsSnapshot(ctx context.Context, snapshot models.SavingsSnapshot) error {
	filter := bson.M{"date": snapshot.Date}
	update := bson.M{"$set": bson.M{"savings": snapshot.Savings}, "$setOnInsert": bson.M{"_id": snapshot.ID, "date": snapshot.Date}}
	return r.savingsRepo.Upsert(ctx, filter, update)
}

func (r *SettingsRepository) invalidateCache(ctx context.Context) {
	if r.redisClient == nil {
		return
	}
	if err := r.redisClient.Delete(ctx, settingsCacheKey); err != nil {
		logger.Debug(ctx, "settings cache invalidation failed: %v", err)
	}
}
