package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderStatusWaiting is the status every order is created with. Later
// statuses are vendor-facing free text (accepted, rejected, under-process,
// ready, ...) and are deliberately not constrained to an enum.
const OrderStatusWaiting = "Waiting"

// SelfDelivery is the sentinel delivery id meaning no agent could be
// assigned and the vendor delivers the order themselves.
const SelfDelivery = "SELF_DELIVERY"

// OrderLine snapshots a product at order time together with the unit count.
type OrderLine struct {
	Product Product `bson:"product" json:"product"`
	Unit    int     `bson:"unit" json:"unit"`
}

type Order struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	OrderID         string             `bson:"orderId" json:"orderId"` // human-facing short code
	VendorID        string             `bson:"vendorId" json:"vendorId"`
	Items           []OrderLine        `bson:"items" json:"items"`
	TotalAmount     float64            `bson:"totalAmount" json:"totalAmount"`
	PaidAmount      float64            `bson:"paidAmount" json:"paidAmount"`
	PaidThrough     string             `bson:"paidThrough" json:"paidThrough"`
	OrderDate       time.Time          `bson:"orderDate" json:"orderDate"`
	OrderStatus     string             `bson:"orderStatus" json:"orderStatus"`
	Remarks         string             `bson:"remarks" json:"remarks"`
	PaymentResponse string             `bson:"paymentResponse" json:"paymentResponse"`
	DeliveryID      string             `bson:"deliveryId" json:"deliveryId"`
	DeliveryTime    int                `bson:"deliveryTime" json:"deliveryTime"` // minutes
	CreatedAt       time.Time          `bson:"createdAt" json:"-"`
	UpdatedAt       time.Time          `bson:"updatedAt" json:"-"`
}
