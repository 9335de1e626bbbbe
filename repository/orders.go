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

type OrderStore struct {
	col *mongo.Collection
}

func (s *OrderStore) Create(ctx context.Context, order *models.Order) (*models.Order, error) {
	order.CreatedAt = time.Now()
	order.UpdatedAt = order.CreatedAt
	res, err := s.col.InsertOne(ctx, order)
	if err != nil {
		return nil, err
	}
	order.ID = res.InsertedID.(primitive.ObjectID)
	return order, nil
}

func (s *OrderStore) FindByID(ctx context.Context, id string) (*models.Order, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	var order models.Order
	err = s.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&order)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (s *OrderStore) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Order, error) {
	return s.findAll(ctx, bson.M{"_id": bson.M{"$in": ids}})
}

func (s *OrderStore) FindByVendor(ctx context.Context, vendorID string) ([]models.Order, error) {
	return s.findAll(ctx, bson.M{"vendorId": vendorID})
}

func (s *OrderStore) Save(ctx context.Context, order *models.Order) error {
	order.UpdatedAt = time.Now()
	_, err := s.col.ReplaceOne(ctx, bson.M{"_id": order.ID}, order)
	return err
}

func (s *OrderStore) findAll(ctx context.Context, filter bson.M) ([]models.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "orderDate", Value: -1}})
	cursor, err := s.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var orders []models.Order
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}
