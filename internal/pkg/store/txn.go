package store

import (
	"context"

	"fiveki/coop_loan_management/internal/pkg/db"

	"go.mongodb.org/mongo-driver/mongo"
)

// MongoTxnRunner executes a write sequence inside a Mongo session
// transaction. The repositories all operate on the caller's context, so the
// session context threads through every write in the callback.
type MongoTxnRunner struct{}

func NewMongoTxnRunner() *MongoTxnRunner {
	return &MongoTxnRunner{}
}

func (r *MongoTxnRunner) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	session, err := db.MDB.Client.StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	return mongo.WithSession(ctx, session, func(sessCtx mongo.SessionContext) error {
		if err := session.StartTransaction(); err != nil {
			return err
		}

		if err := fn(sessCtx); err != nil {
			session.AbortTransaction(sessCtx)
			return err
		}

		return session.CommitTransaction(sessCtx)
	})
}
