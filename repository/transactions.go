package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/lukwagoraymond/duzol-pharma/models"
)

type TransactionStore struct {
	col *mongo.Collection
}

func (s *TransactionStore) Create(ctx context.Context, txn *models.Transaction) (*models.Transaction, error) {
	txn.CreatedAt = time.Now()
	txn.UpdatedAt = txn.CreatedAt
	res, err := s.col.InsertOne(ctx, txn)
	if err != nil {
		return nil, err
	}
	txn.ID = res.InsertedID.(primitive.ObjectID)
	return txn, nil
}

func (s *TransactionStore) FindByID(ctx context.Context, id string) (*models.Transaction, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	var txn models.Transaction
	err = s.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&txn)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &txn, nil
}

func (s *TransactionStore) FindAll(ctx context.Context) ([]models.Transaction, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := s.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var txns []models.Transaction
	if err := cursor.All(ctx, &txns); err != nil {
		return nil, err
	}
	return txns, nil
}

func (s *TransactionStore) Save(ctx context.Context, txn *models.Transaction) error {
	txn.UpdatedAt = time.Now()
	_, err := s.col.ReplaceOne(ctx, bson.M{"_id": txn.ID}, txn)
	return err
}
