package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DeliveryUser is a delivery agent. Verification is admin-controlled;
// availability is toggled by the agent themselves.
type DeliveryUser struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email       string             `bson:"email" json:"email"`
	Password    string             `bson:"password" json:"-"`
	Phone       string             `bson:"phone" json:"phone"`
	FirstName   string             `bson:"firstName" json:"firstName"`
	LastName    string             `bson:"lastName" json:"lastName"`
	Address     string             `bson:"address" json:"address"`
	Pincode     string             `bson:"pincode" json:"pincode"`
	Verified    bool               `bson:"verified" json:"verified"`
	IsAvailable bool               `bson:"isAvailable" json:"isAvailable"`
	Lat         float64            `bson:"lat" json:"lat"`
	Lng         float64            `bson:"lng" json:"lng"`
	CreatedAt   time.Time          `bson:"createdAt" json:"-"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"-"`
}
