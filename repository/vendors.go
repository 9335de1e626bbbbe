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

type VendorStore struct {
	col *mongo.Collection
}

func (s *VendorStore) Create(ctx context.Context, vendor *models.Vendor) (*models.Vendor, error) {
	vendor.CreatedAt = time.Now()
	vendor.UpdatedAt = vendor.CreatedAt
	res, err := s.col.InsertOne(ctx, vendor)
	if err != nil {
		return nil, err
	}
	vendor.ID = res.InsertedID.(primitive.ObjectID)
	return vendor, nil
}

func (s *VendorStore) FindByID(ctx context.Context, id string) (*models.Vendor, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	var vendor models.Vendor
	err = s.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&vendor)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &vendor, nil
}

func (s *VendorStore) FindByEmail(ctx context.Context, email string) (*models.Vendor, error) {
	var vendor models.Vendor
	err := s.col.FindOne(ctx, bson.M{"email": email}).Decode(&vendor)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &vendor, nil
}

func (s *VendorStore) FindAll(ctx context.Context) ([]models.Vendor, error) {
	return s.findAll(ctx, bson.M{}, nil)
}

// FindServiceableByPincode lists vendors open for business in an area,
// best-rated first. A limit of 0 means no limit.
func (s *VendorStore) FindServiceableByPincode(ctx context.Context, pincode string, limit int64) ([]models.Vendor, error) {
	opts := options.Find().SetSort(bson.D{{Key: "rating", Value: -1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}
	return s.findAll(ctx, bson.M{"pincode": pincode, "serviceAvailable": true}, opts)
}

func (s *VendorStore) Save(ctx context.Context, vendor *models.Vendor) error {
	vendor.UpdatedAt = time.Now()
	_, err := s.col.ReplaceOne(ctx, bson.M{"_id": vendor.ID}, vendor)
	return err
}

func (s *VendorStore) findAll(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.Vendor, error) {
	var cursor *mongo.Cursor
	var err error
	if opts != nil {
		cursor, err = s.col.Find(ctx, filter, opts)
	} else {
		cursor, err = s.col.Find(ctx, filter)
	}
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var vendors []models.Vendor
	if err := cursor.All(ctx, &vendors); err != nil {
		return nil, err
	}
	return vendors, nil
}
