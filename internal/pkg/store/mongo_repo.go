package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoRepository is the shared typed access layer over a collection. All
// methods take the caller's context so session-bound contexts flow into the
// driver and multi-write commits stay inside their transaction.
type MongoRepository[T any] struct {
	collection *mongo.Collection
}

func NewMongoRepository[T any](collection *mongo.Collection) *MongoRepository[T] {
	return &MongoRepository[T]{collection: collection}
}

func (r *MongoRepository[T]) Create(ctx context.Context, document interface{}) (*mongo.InsertOneResult, error) {
	result, err := r.collection.InsertOne(ctx, document)
	if err != nil {
		return nil, err
	}

	return result, nil
}

// Read a document by filter
func (r *MongoRepository[T]) Read(ctx context.Context, filter interface{}) (T, error) {
	var result T
	err := r.collection.FindOne(ctx, filter).Decode(&result)
	if err != nil {
		return result, err
	}

	return result, nil
}

// Update a document
func (r *MongoRepository[T]) Update(ctx context.Context, filter interface{}, update interface{}) error {
	_, err := r.collection.UpdateOne(ctx, filter, bson.M{"$set": update})
	if err != nil {
		return err
	}

	return nil
}

// Delete a document
func (r *MongoRepository[T]) Delete(ctx context.Context, filter interface{}) error {
	_, err := r.collection.DeleteOne(ctx, filter)
	if err != nil {
		return err
	}

	return nil
}

func (r *MongoRepository[T]) FindAll(ctx context.Context, filter interface{}) ([]T, error) {
	var results []T
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var entity T
		if err := cursor.Decode(&entity); err != nil {
			return nil, err
		}
		results = append(results, entity)
	}
	return results, nil
}

func (r *MongoRepository[T]) CountDocuments(ctx context.Context, filter interface{}) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return 0, err
	}

	return count, nil
}

func (r *MongoRepository[T]) Upsert(ctx context.Context, filter interface{}, update interface{}) error {
	opts := options.Update().SetUpsert(true)
	_, err := r.collection.UpdateOne(ctx, filter, update, opts)
	if err != nil {
		return err
	}
	return nil
}

// Inc applies a $inc update, used for resend counters.
func (r *MongoRepository[T]) Inc(ctx context.Context, filter interface{}, fields interface{}) error {
	_, err := r.collection.UpdateOne(ctx, filter, bson.M{"$inc": fields})
	return err
}
