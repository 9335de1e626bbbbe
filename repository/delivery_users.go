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

type DeliveryUserStore struct {
	col *mongo.Collection
}

func (s *DeliveryUserStore) Create(ctx context.Context, user *models.DeliveryUser) (*models.DeliveryUser, error) {
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	res, err := s.col.InsertOne(ctx, user)
	if err != nil {
		return nil, err
	}
	user.ID = res.InsertedID.(primitive.ObjectID)
	return user, nil
}

func (s *DeliveryUserStore) FindByID(ctx context.Context, id string) (*models.DeliveryUser, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	var user models.DeliveryUser
	err = s.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *DeliveryUserStore) FindByEmail(ctx context.Context, email string) (*models.DeliveryUser, error) {
	var user models.DeliveryUser
	err := s.col.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *DeliveryUserStore) FindAll(ctx context.Context) ([]models.DeliveryUser, error) {
	return s.findAll(ctx, bson.M{})
}

// FindAvailable returns verified, available agents in a postal area in
// whatever order the store yields them. No ranking is applied.
func (s *DeliveryUserStore) FindAvailable(ctx context.Context, pincode string) ([]models.DeliveryUser, error) {
	return s.findAll(ctx, bson.M{"pincode": pincode, "verified": true, "isAvailable": true})
}

func (s *DeliveryUserStore) Save(ctx context.Context, user *models.DeliveryUser) error {
	user.UpdatedAt = time.Now()
	_, err := s.col.ReplaceOne(ctx, bson.M{"_id": user.ID}, user)
	return err
}

func (s *DeliveryUserStore) findAll(ctx context.Context, filter bson.M) ([]models.DeliveryUser, error) {
	cursor, err := s.col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []models.DeliveryUser
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}
