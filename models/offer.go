package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	OfferTypeVendor  = "VENDOR"
	OfferTypeGeneric = "GENERIC"
)

type Offer struct {
	ID            primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	OfferType     string               `bson:"offerType" json:"offerType"` // VENDOR / GENERIC
	Vendors       []primitive.ObjectID `bson:"vendors" json:"vendors"`
	Title         string               `bson:"title" json:"title"`
	Description   string               `bson:"description" json:"description"`
	MinValue      float64              `bson:"minValue" json:"minValue"`
	OfferAmount   float64              `bson:"offerAmount" json:"offerAmount"`
	StartValidity time.Time            `bson:"startValidity" json:"startValidity"`
	EndValidity   time.Time            `bson:"endValidity" json:"endValidity"`
	PromoCode     string               `bson:"promoCode" json:"promoCode"`
	PromoType     string               `bson:"promoType" json:"promoType"` // USER / ALL / BANK / CARD
	Bank          []string             `bson:"bank" json:"bank"`
	Bins          []int                `bson:"bins" json:"bins"`
	Pincode       string               `bson:"pincode" json:"pincode"`
	IsActive      bool                 `bson:"isActive" json:"isActive"`
	CreatedAt     time.Time            `bson:"createdAt" json:"-"`
	UpdatedAt     time.Time            `bson:"updatedAt" json:"-"`
}
