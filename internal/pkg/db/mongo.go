package db

import (
	"context"
	"time"

	"fiveki/coop_loan_management/configs"
	"fiveki/coop_loan_management/internal/pkg/logger"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoDB struct {
	Client   *mongo.Client
	Database *mongo.Database
}

var MDB *MongoDB

func NewMongoDB() (*MongoDB, error) {

	uri := configs.DB_URI
	dbName := configs.DB_NAME

	clientOptions := options.Client().
		ApplyURI(uri).
		SetMaxPoolSize(configs.DB_MAXPOOLSIZE).
		SetMinPoolSize(configs.DB_MINPOOLSIZE).
		SetMaxConnIdleTime(time.Duration(configs.DB_MAXIDLETIME_INMINUTES) * time.Minute)

	client, err := mongo.Connect(context.TODO(), clientOptions)
	if err != nil {
		logger.Error("Error in connecting to MongoDB")
		return nil, err
	}

	if err := client.Ping(context.TODO(), nil); err != nil {
		return nil, err
	}

	db := client.Database(dbName)

	return &MongoDB{
		Client:   client,
		Database: db,
	}, nil
}

func (mdb *MongoDB) Close() error {
	return mdb.Client.Disconnect(context.TODO())
}
