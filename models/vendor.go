package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Vendor struct {
	ID               primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Name             string               `bson:"name" json:"name"`
	OwnerName        string               `bson:"ownerName" json:"ownerName"`
	ProductType      []string             `bson:"productType" json:"productType"`
	Pincode          string               `bson:"pincode" json:"pincode"`
	Address          string               `bson:"address" json:"address"`
	Phone            string               `bson:"phone" json:"phone"`
	Email            string               `bson:"email" json:"email"`
	Password         string               `bson:"password" json:"-"`
	ServiceAvailable bool                 `bson:"serviceAvailable" json:"serviceAvailable"`
	CoverImages      []string             `bson:"coverImages" json:"coverImages"`
	Rating           float64              `bson:"rating" json:"rating"`
	Products         []primitive.ObjectID `bson:"products" json:"products"`
	Lat              float64              `bson:"lat" json:"lat"`
	Lng              float64              `bson:"lng" json:"lng"`
	CreatedAt        time.Time            `bson:"createdAt" json:"-"`
	UpdatedAt        time.Time            `bson:"updatedAt" json:"-"`
}
