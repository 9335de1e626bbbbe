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

type ProductStore struct {
	col *mongo.Collection
}

func (s *ProductStore) Create(ctx context.Context, product *models.Product) (*models.Product, error) {
	product.CreatedAt = time.Now()
	product.UpdatedAt = product.CreatedAt
	res, err := s.col.InsertOne(ctx, product)
	if err != nil {
		return nil, err
	}
	product.ID = res.InsertedID.(primitive.ObjectID)
	return product, nil
}

func (s *ProductStore) FindByID(ctx context.Context, id string) (*models.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	var product models.Product
	err = s.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&product)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// FindByIDs resolves a batch of hex ids in one query. Ids that do not parse
// or do not exist are silently absent from the result.
func (s *ProductStore) FindByIDs(ctx context.Context, ids []string) ([]models.Product, error) {
	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		oid, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			continue
		}
		oids = append(oids, oid)
	}
	return s.findAll(ctx, bson.M{"_id": bson.M{"$in": oids}})
}

func (s *ProductStore) FindByObjectIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Product, error) {
	return s.findAll(ctx, bson.M{"_id": bson.M{"$in": ids}})
}

func (s *ProductStore) FindByVendor(ctx context.Context, vendorID string) ([]models.Product, error) {
	return s.findAll(ctx, bson.M{"vendorId": vendorID})
}

func (s *ProductStore) findAll(ctx context.Context, filter bson.M) ([]models.Product, error) {
	cursor, err := s.col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var products []models.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}
