package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Transaction status doubles as the checkout saga state, keyed by the
// transaction id. The four document writes of a checkout are not atomic as
// a group, so each step stamps its completion here before the next runs:
//
//	OPEN -> ORDER_CREATED -> CART_CLEARED -> CONFIRMED
//
// FAILED is terminal; a transaction never leaves it.
const (
	TxnStatusOpen         = "OPEN"
	TxnStatusOrderCreated = "ORDER_CREATED"
	TxnStatusCartCleared  = "CART_CLEARED"
	TxnStatusConfirmed    = "CONFIRMED"
	TxnStatusFailed       = "FAILED"
)

// OfferNotUsed marks a transaction opened without a promotion.
const OfferNotUsed = "NA"

type Transaction struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CustomerID      string             `bson:"customerId" json:"customerId"`
	VendorID        string             `bson:"vendorId" json:"vendorId"` // set once an order is created
	OrderID         string             `bson:"orderId" json:"orderId"`   // set once an order is created
	OrderValue      float64            `bson:"orderValue" json:"orderValue"`
	OfferUsed       string             `bson:"offerUsed" json:"offerUsed"`
	Status          string             `bson:"status" json:"status"`
	PaymentMode     string             `bson:"paymentMode" json:"paymentMode"`
	PaymentResponse string             `bson:"paymentResponse" json:"paymentResponse"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt" json:"-"`
}
