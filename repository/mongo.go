package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/lukwagoraymond/duzol-pharma/config"
)

// ErrNotFound is returned by every store when a document does not exist,
// including when a caller supplies a malformed object id.
var ErrNotFound = errors.New("document not found")

func Connect(ctx context.Context, cfg *config.MongoConfig) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}
	return client, nil
}

// Stores bundles one typed store per collection.
type Stores struct {
	Customers     *CustomerStore
	Vendors       *VendorStore
	Products      *ProductStore
	Orders        *OrderStore
	Transactions  *TransactionStore
	Offers        *OfferStore
	DeliveryUsers *DeliveryUserStore
}

func New(db *mongo.Database) *Stores {
	return &Stores{
		Customers:     &CustomerStore{col: db.Collection("customers")},
		Vendors:       &VendorStore{col: db.Collection("vendors")},
		Products:      &ProductStore{col: db.Collection("products")},
		Orders:        &OrderStore{col: db.Collection("orders")},
		Transactions:  &TransactionStore{col: db.Collection("transactions")},
		Offers:        &OfferStore{col: db.Collection("offers")},
		DeliveryUsers: &DeliveryUserStore{col: db.Collection("delivery_users")},
	}
}
