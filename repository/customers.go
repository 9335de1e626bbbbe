package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/lukwagoraymond/duzol-pharma/models"
)

type CustomerStore struct {
	col *mongo.Collection
}

func (s *CustomerStore) Create(ctx context.Context, customer *models.Customer) (*models.Customer, error) {
	customer.CreatedAt = time.Now()
	customer.UpdatedAt = customer.CreatedAt
	res, err := s.col.InsertOne(ctx, customer)
	if err != nil {
		return nil, err
	}
	customer.ID = res.InsertedID.(primitive.ObjectID)
	return customer, nil
}

func (s *CustomerStore) FindByID(ctx context.Context, id string) (*models.Customer, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	var customer models.Customer
	err = s.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&customer)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

func (s *CustomerStore) FindByEmail(ctx context.Context, email string) (*models.Customer, error) {
	var customer models.Customer
	err := s.col.FindOne(ctx, bson.M{"email": email}).Decode(&customer)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

// Save replaces the whole customer document, cart included. Single-document
// replacement is the atomicity unit here; there is no multi-document
// transaction around callers that also touch orders or transactions.
func (s *CustomerStore) Save(ctx context.Context, customer *models.Customer) error {
	customer.UpdatedAt = time.Now()
	_, err := s.col.ReplaceOne(ctx, bson.M{"_id": customer.ID}, customer)
	return err
}
