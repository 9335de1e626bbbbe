package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CartLine is one (product, unit) pairing in a customer's cart.
// At most one line exists per product id.
type CartLine struct {
	ProductID primitive.ObjectID `bson:"productId" json:"productId"`
	Unit      int                `bson:"unit" json:"unit"`
}

type Customer struct {
	ID        primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Email     string               `bson:"email" json:"email"`
	Password  string               `bson:"password" json:"-"`
	Phone     string               `bson:"phone" json:"phone"`
	FirstName string               `bson:"firstName" json:"firstName"`
	LastName  string               `bson:"lastName" json:"lastName"`
	Address   string               `bson:"address" json:"address"`
	Verified  bool                 `bson:"verified" json:"verified"`
	OTP       int                  `bson:"otp" json:"-"`
	OTPExpiry time.Time            `bson:"otp_expiry" json:"-"`
	Lat       float64              `bson:"lat" json:"lat"`
	Lng       float64              `bson:"lng" json:"lng"`
	Cart      []CartLine           `bson:"cart" json:"cart"`
	Orders    []primitive.ObjectID `bson:"orders" json:"orders"`
	CreatedAt time.Time            `bson:"createdAt" json:"-"`
	UpdatedAt time.Time            `bson:"updatedAt" json:"-"`
}
