package paymentControllers

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/lukwagoraymond/duzol-pharma/models"
	"github.com/lukwagoraymond/duzol-pharma/repository"
)

type fakeOffers struct {
	offers map[string]models.Offer
}

func (f *fakeOffers) FindByID(_ context.Context, id string) (*models.Offer, error) {
	o, ok := f.offers[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &o, nil
}

type fakeTransactions struct {
	txns map[string]*models.Transaction
}

func (f *fakeTransactions) Create(_ context.Context, txn *models.Transaction) (*models.Transaction, error) {
	txn.ID = primitive.NewObjectID()
	f.txns[txn.ID.Hex()] = txn
	return txn, nil
}

func (f *fakeTransactions) FindByID(_ context.Context, id string) (*models.Transaction, error) {
	txn, ok := f.txns[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return txn, nil
}

func newLedgerFixture(offers ...models.Offer) (*Ledger, *fakeTransactions) {
	offerMap := make(map[string]models.Offer, len(offers))
	for _, o := range offers {
		offerMap[o.ID.Hex()] = o
	}
	txns := &fakeTransactions{txns: map[string]*models.Transaction{}}
	return &Ledger{
		Offers:       &fakeOffers{offers: offerMap},
		Transactions: txns,
	}, txns
}

func TestOpenWithoutOffer(t *testing.T) {
	ledger, _ := newLedgerFixture()

	txn, err := ledger.Open(context.Background(), "cust-1", 1000, "COD", "")
	require.NoError(t, err)
	assert.Equal(t, float64(1000), txn.OrderValue)
	assert.Equal(t, models.OfferNotUsed, txn.OfferUsed)
	assert.Equal(t, models.TxnStatusOpen, txn.Status)
	assert.Equal(t, "Payment is cash on Delivery", txn.PaymentResponse)
	assert.Empty(t, txn.VendorID)
	assert.Empty(t, txn.OrderID)
}

func TestOpenWithActiveOffer(t *testing.T) {
	offer := models.Offer{ID: primitive.NewObjectID(), OfferAmount: 200, IsActive: true}
	ledger, _ := newLedgerFixture(offer)

	txn, err := ledger.Open(context.Background(), "cust-1", 1000, "COD", offer.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, float64(800), txn.OrderValue)
	assert.Equal(t, offer.ID.Hex(), txn.OfferUsed)
}

func TestOpenWithInactiveOfferRecordsItButKeepsAmount(t *testing.T) {
	offer := models.Offer{ID: primitive.NewObjectID(), OfferAmount: 200, IsActive: false}
	ledger, _ := newLedgerFixture(offer)

	txn, err := ledger.Open(context.Background(), "cust-1", 1000, "COD", offer.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, float64(1000), txn.OrderValue)
	// The offer id is still recorded, active or not.
	assert.Equal(t, offer.ID.Hex(), txn.OfferUsed)
}

func TestOpenWithUnknownOfferKeepsAmount(t *testing.T) {
	ledger, _ := newLedgerFixture()

	unknown := primitive.NewObjectID().Hex()
	txn, err := ledger.Open(context.Background(), "cust-1", 1000, "COD", unknown)
	require.NoError(t, err)
	assert.Equal(t, float64(1000), txn.OrderValue)
	assert.Equal(t, unknown, txn.OfferUsed)
}

func TestOpenDiscountCanGoNegative(t *testing.T) {
	offer := models.Offer{ID: primitive.NewObjectID(), OfferAmount: 1500, IsActive: true}
	ledger, _ := newLedgerFixture(offer)

	txn, err := ledger.Open(context.Background(), "cust-1", 1000, "COD", offer.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, float64(-500), txn.OrderValue)
}

func TestOpenDiscountClampedAtZero(t *testing.T) {
	offer := models.Offer{ID: primitive.NewObjectID(), OfferAmount: 1500, IsActive: true}
	ledger, _ := newLedgerFixture(offer)
	ledger.ClampAtZero = true

	txn, err := ledger.Open(context.Background(), "cust-1", 1000, "COD", offer.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, float64(0), txn.OrderValue)
}

func TestValidateRefusesOnlyFailed(t *testing.T) {
	ledger, txns := newLedgerFixture()

	cases := []struct {
		status string
		want   bool
	}{
		{models.TxnStatusOpen, true},
		{models.TxnStatusOrderCreated, true},
		{models.TxnStatusCartCleared, true},
		{models.TxnStatusConfirmed, true},
		{models.TxnStatusFailed, false},
		{"failed", false},
	}
	for _, tc := range cases {
		txn, err := txns.Create(context.Background(), &models.Transaction{Status: tc.status})
		require.NoError(t, err)

		ok, got, err := ledger.Validate(context.Background(), txn.ID.Hex())
		require.NoError(t, err, "status %q", tc.status)
		assert.Equal(t, tc.want, ok, "status %q", tc.status)
		assert.Equal(t, txn.ID, got.ID)
	}
}

func TestValidateMissingTransactionIsNotOK(t *testing.T) {
	ledger, _ := newLedgerFixture()

	ok, txn, err := ledger.Validate(context.Background(), primitive.NewObjectID().Hex())
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, txn)
}

func TestVerifyOfferIgnoresValidityWindow(t *testing.T) {
	// Expired by its dates but still flagged active: verification passes.
	offer := models.Offer{
		ID:            primitive.NewObjectID(),
		IsActive:      true,
		StartValidity: time.Now().Add(-48 * time.Hour),
		EndValidity:   time.Now().Add(-24 * time.Hour),
	}
	ledger, _ := newLedgerFixture(offer)

	got, err := ledger.VerifyOffer(context.Background(), offer.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, offer.ID, got.ID)
}

func TestVerifyOfferInactive(t *testing.T) {
	offer := models.Offer{ID: primitive.NewObjectID(), IsActive: false}
	ledger, _ := newLedgerFixture(offer)

	_, err := ledger.VerifyOffer(context.Background(), offer.ID.Hex())
	assert.ErrorIs(t, err, ErrOfferInactive)
}

func TestVerifyOfferNotFound(t *testing.T) {
	ledger, _ := newLedgerFixture()

	_, err := ledger.VerifyOffer(context.Background(), primitive.NewObjectID().Hex())
	assert.ErrorIs(t, err, ErrOfferNotFound)
}
