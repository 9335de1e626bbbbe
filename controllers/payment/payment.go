package paymentControllers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/lukwagoraymond/duzol-pharma/middleware"
	"github.com/lukwagoraymond/duzol-pharma/models"
	"github.com/lukwagoraymond/duzol-pharma/repository"
)

var (
	ErrOfferNotFound = errors.New("applied for offer not found")
	ErrOfferInactive = errors.New("offer is not active")
)

type OfferStore interface {
	FindByID(ctx context.Context, id string) (*models.Offer, error)
}

type TransactionStore interface {
	Create(ctx context.Context, txn *models.Transaction) (*models.Transaction, error)
	FindByID(ctx context.Context, id string) (*models.Transaction, error)
}

// Ledger records payment intents ahead of order creation. The gateway is
// stubbed: every transaction opens as cash on delivery.
type Ledger struct {
	Offers       OfferStore
	Transactions TransactionStore

	// ClampAtZero floors discounted amounts at zero. Off, a discount
	// larger than the amount opens a negative-value transaction, which
	// is the legacy behavior.
	ClampAtZero bool
}

// Open creates an OPEN transaction for a customer. When an offer id is
// supplied and the offer is active, its fixed amount is deducted first;
// the offer's validity window is not consulted. Vendor and order ids stay
// blank until an order is created against the transaction.
func (l *Ledger) Open(ctx context.Context, customerID string, amount float64, paymentMode, offerID string) (*models.Transaction, error) {
	payable := amount
	offerUsed := models.OfferNotUsed
	if offerID != "" {
		offerUsed = offerID
		offer, err := l.Offers.FindByID(ctx, offerID)
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("look up offer: %w", err)
		}
		if err == nil && offer.IsActive {
			payable -= offer.OfferAmount
			if l.ClampAtZero && payable < 0 {
				payable = 0
			}
		}
	}

	txn := &models.Transaction{
		CustomerID:      customerID,
		VendorID:        "",
		OrderID:         "",
		OrderValue:      payable,
		OfferUsed:       offerUsed,
		Status:          models.TxnStatusOpen,
		PaymentMode:     paymentMode,
		PaymentResponse: "Payment is cash on Delivery",
	}
	return l.Transactions.Create(ctx, txn)
}

// Validate reports whether an order may be created against the
// transaction. Only FAILED refuses; OPEN and CONFIRMED both proceed, so a
// confirmed transaction can back a second order. Blocking that is a
// product decision that has not been taken. A transaction that does not
// exist is not-ok rather than an error: callers treat it the same as a
// pending payment.
func (l *Ledger) Validate(ctx context.Context, transactionID string) (bool, *models.Transaction, error) {
	txn, err := l.Transactions.FindByID(ctx, transactionID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return false, nil, nil
		}
		return false, nil, err
	}
	if strings.EqualFold(txn.Status, models.TxnStatusFailed) {
		return false, txn, nil
	}
	return true, txn, nil
}

// VerifyOffer checks an offer's isActive flag and nothing else. The
// start/end validity dates exist on the document but are not enforced.
func (l *Ledger) VerifyOffer(ctx context.Context, offerID string) (*models.Offer, error) {
	offer, err := l.Offers.FindByID(ctx, offerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrOfferNotFound
		}
		return nil, fmt.Errorf("look up offer: %w", err)
	}
	if !offer.IsActive {
		return nil, ErrOfferInactive
	}
	return offer, nil
}

type CreatePaymentInput struct {
	Amount      float64 `json:"amount" binding:"required"`
	PaymentMode string  `json:"paymentMode" binding:"required"`
	OfferID     string  `json:"offerId"`
}

// POST /customer/create-payment
func CreatePayment(l *Ledger) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.Principal(c)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Customer Not Authorised to Make Payment"})
			return
		}

		var input CreatePaymentInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		txn, err := l.Open(c.Request.Context(), user.ID, input.Amount, input.PaymentMode, input.OfferID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Transaction was not Created"})
			return
		}
		c.JSON(http.StatusCreated, txn)
	}
}

// GET /customer/offer/verify/:id
func VerifyOffer(l *Ledger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := middleware.Principal(c); !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "User Not Authorised to Access Offer"})
			return
		}
		offer, err := l.VerifyOffer(c.Request.Context(), c.Param("id"))
		if err != nil {
			switch {
			case errors.Is(err, ErrOfferNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			case errors.Is(err, ErrOfferInactive):
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify offer"})
			}
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Offer is Valid", "offer": offer})
	}
}
