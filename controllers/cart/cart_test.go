package cartControllers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/lukwagoraymond/duzol-pharma/models"
	"github.com/lukwagoraymond/duzol-pharma/repository"
)

type fakeCatalog struct {
	products map[string]models.Product
}

func (f *fakeCatalog) FindByID(_ context.Context, id string) (*models.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &p, nil
}

func (f *fakeCatalog) FindByIDs(_ context.Context, ids []string) ([]models.Product, error) {
	var out []models.Product
	for _, id := range ids {
		if p, ok := f.products[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakeCustomers struct {
	customers map[string]*models.Customer
	saves     int
}

func (f *fakeCustomers) FindByID(_ context.Context, id string) (*models.Customer, error) {
	c, ok := f.customers[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *c
	copied.Cart = append([]models.CartLine(nil), c.Cart...)
	return &copied, nil
}

func (f *fakeCustomers) Save(_ context.Context, customer *models.Customer) error {
	f.customers[customer.ID.Hex()] = customer
	f.saves++
	return nil
}

func newCartFixture(t *testing.T) (*Engine, *fakeCustomers, models.Product, string) {
	t.Helper()
	product := models.Product{ID: primitive.NewObjectID(), Name: "Paracetamol", Price: 500}
	customer := &models.Customer{ID: primitive.NewObjectID()}
	customers := &fakeCustomers{customers: map[string]*models.Customer{
		customer.ID.Hex(): customer,
	}}
	engine := &Engine{
		Products:  &fakeCatalog{products: map[string]models.Product{product.ID.Hex(): product}},
		Customers: customers,
	}
	return engine, customers, product, customer.ID.Hex()
}

func TestMergeItemAddsLine(t *testing.T) {
	engine, _, product, customerID := newCartFixture(t)

	cart, err := engine.MergeItem(context.Background(), customerID, product.ID.Hex(), 2)
	require.NoError(t, err)
	require.Len(t, cart, 1)
	assert.Equal(t, product.ID, cart[0].ProductID)
	assert.Equal(t, 2, cart[0].Unit)
}

func TestMergeItemReplacesUnitOutright(t *testing.T) {
	engine, _, product, customerID := newCartFixture(t)

	_, err := engine.MergeItem(context.Background(), customerID, product.ID.Hex(), 2)
	require.NoError(t, err)
	cart, err := engine.MergeItem(context.Background(), customerID, product.ID.Hex(), 5)
	require.NoError(t, err)

	// Last write wins: 5, not 7.
	require.Len(t, cart, 1)
	assert.Equal(t, 5, cart[0].Unit)
}

func TestMergeItemZeroRemovesLine(t *testing.T) {
	engine, _, product, customerID := newCartFixture(t)

	_, err := engine.MergeItem(context.Background(), customerID, product.ID.Hex(), 3)
	require.NoError(t, err)
	cart, err := engine.MergeItem(context.Background(), customerID, product.ID.Hex(), 0)
	require.NoError(t, err)
	assert.Empty(t, cart)
}

func TestMergeItemZeroOnAbsentLineIsNoOp(t *testing.T) {
	engine, customers, product, customerID := newCartFixture(t)

	cart, err := engine.MergeItem(context.Background(), customerID, product.ID.Hex(), 0)
	require.NoError(t, err)
	assert.NotNil(t, cart)
	assert.Empty(t, cart)
	assert.Zero(t, customers.saves)
}

func TestMergeItemUnknownProduct(t *testing.T) {
	engine, _, _, customerID := newCartFixture(t)

	_, err := engine.MergeItem(context.Background(), customerID, primitive.NewObjectID().Hex(), 1)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestMergeItemUnknownCustomer(t *testing.T) {
	engine, _, product, _ := newCartFixture(t)

	_, err := engine.MergeItem(context.Background(), primitive.NewObjectID().Hex(), product.ID.Hex(), 1)
	assert.ErrorIs(t, err, ErrCustomerNotFound)
}

func TestClearIsIdempotent(t *testing.T) {
	engine, _, product, customerID := newCartFixture(t)

	_, err := engine.MergeItem(context.Background(), customerID, product.ID.Hex(), 2)
	require.NoError(t, err)

	customer, err := engine.Clear(context.Background(), customerID)
	require.NoError(t, err)
	assert.Empty(t, customer.Cart)

	// Clearing an already-empty cart succeeds.
	customer, err = engine.Clear(context.Background(), customerID)
	require.NoError(t, err)
	assert.Empty(t, customer.Cart)
}

func TestReadEmptyCart(t *testing.T) {
	engine, _, _, customerID := newCartFixture(t)

	lines, err := engine.Read(context.Background(), customerID)
	require.NoError(t, err)
	assert.NotNil(t, lines)
	assert.Empty(t, lines)
}

func TestReadResolvesProducts(t *testing.T) {
	engine, _, product, customerID := newCartFixture(t)

	_, err := engine.MergeItem(context.Background(), customerID, product.ID.Hex(), 4)
	require.NoError(t, err)

	lines, err := engine.Read(context.Background(), customerID)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, product.Name, lines[0].Product.Name)
	assert.Equal(t, 4, lines[0].Unit)
}
