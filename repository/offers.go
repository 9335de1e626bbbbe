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

type OfferStore struct {
	col *mongo.Collection
}

func (s *OfferStore) Create(ctx context.Context, offer *models.Offer) (*models.Offer, error) {
	offer.CreatedAt = time.Now()
	offer.UpdatedAt = offer.CreatedAt
	res, err := s.col.InsertOne(ctx, offer)
	if err != nil {
		return nil, err
	}
	offer.ID = res.InsertedID.(primitive.ObjectID)
	return offer, nil
}

func (s *OfferStore) FindByID(ctx context.Context, id string) (*models.Offer, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	var offer models.Offer
	err = s.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&offer)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &offer, nil
}

func (s *OfferStore) FindAll(ctx context.Context) ([]models.Offer, error) {
	return s.findAll(ctx, bson.M{})
}

func (s *OfferStore) FindActiveByPincode(ctx context.Context, pincode string) ([]models.Offer, error) {
	return s.findAll(ctx, bson.M{"pincode": pincode, "isActive": true})
}

func (s *OfferStore) Save(ctx context.Context, offer *models.Offer) error {
	offer.UpdatedAt = time.Now()
	_, err := s.col.ReplaceOne(ctx, bson.M{"_id": offer.ID}, offer)
	return err
}

func (s *OfferStore) findAll(ctx context.Context, filter bson.M) ([]models.Offer, error) {
	cursor, err := s.col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var offers []models.Offer
	if err := cursor.All(ctx, &offers); err != nil {
		return nil, err
	}
	return offers, nil
}
