package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product is read-only from the checkout path's perspective: its price is
// copied into the order line at order time, never re-read afterwards.
type Product struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	VendorID     string             `bson:"vendorId" json:"vendorId"`
	Name         string             `bson:"name" json:"name"`
	Description  string             `bson:"description" json:"description"`
	Category     string             `bson:"category" json:"category"`
	ProductType  string             `bson:"productType" json:"productType"`
	DeliveryTime int                `bson:"deliveryTime" json:"deliveryTime"` // minutes
	Price        float64            `bson:"price" json:"price"`
	Rating       float64            `bson:"rating" json:"rating"`
	Images       []string           `bson:"images" json:"images"`
	CreatedAt    time.Time          `bson:"createdAt" json:"-"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"-"`
}
