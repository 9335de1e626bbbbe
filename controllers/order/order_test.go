package orderControllers

import (
	"context"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	paymentControllers "github.com/lukwagoraymond/duzol-pharma/controllers/payment"
	"github.com/lukwagoraymond/duzol-pharma/models"
	"github.com/lukwagoraymond/duzol-pharma/repository"
)

type fakeCatalog struct {
	products map[string]models.Product
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
}

func (f *fakeCustomers) FindByID(_ context.Context, id string) (*models.Customer, error) {
	c, ok := f.customers[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return c, nil
}

func (f *fakeCustomers) Save(_ context.Context, customer *models.Customer) error {
	f.customers[customer.ID.Hex()] = customer
	return nil
}

type fakeOrders struct {
	orders map[string]*models.Order
}

func (f *fakeOrders) Create(_ context.Context, order *models.Order) (*models.Order, error) {
	order.ID = primitive.NewObjectID()
	f.orders[order.ID.Hex()] = order
	return order, nil
}

func (f *fakeOrders) FindByID(_ context.Context, id string) (*models.Order, error) {
	o, ok := f.orders[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return o, nil
}

func (f *fakeOrders) FindByIDs(_ context.Context, ids []primitive.ObjectID) ([]models.Order, error) {
	var out []models.Order
	for _, id := range ids {
		if o, ok := f.orders[id.Hex()]; ok {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (f *fakeOrders) Save(_ context.Context, order *models.Order) error {
	f.orders[order.ID.Hex()] = order
	return nil
}

type fakeTransactions struct {
	statuses []string
	last     *models.Transaction
}

func (f *fakeTransactions) Save(_ context.Context, txn *models.Transaction) error {
	f.statuses = append(f.statuses, txn.Status)
	copied := *txn
	f.last = &copied
	return nil
}

type fakeValidator struct {
	ok  bool
	txn *models.Transaction
}

func (f *fakeValidator) Validate(_ context.Context, _ string) (bool, *models.Transaction, error) {
	return f.ok, f.txn, nil
}

type fakeVendors struct {
	vendors map[string]*models.Vendor
}

func (f *fakeVendors) FindByID(_ context.Context, id string) (*models.Vendor, error) {
	v, ok := f.vendors[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return v, nil
}

type fakeAgents struct {
	agents []models.DeliveryUser
}

func (f *fakeAgents) FindAvailable(_ context.Context, _ string) ([]models.DeliveryUser, error) {
	return f.agents, nil
}

type orderFixture struct {
	engine    *Engine
	customers *fakeCustomers
	orders    *fakeOrders
	txns      *fakeTransactions
	agents    *fakeAgents
	customer  *models.Customer
	vendor    *models.Vendor
	p1, p2    models.Product
}

func newOrderFixture(t *testing.T) *orderFixture {
	t.Helper()

	vendor := &models.Vendor{ID: primitive.NewObjectID(), Pincode: "00256"}
	p1 := models.Product{ID: primitive.NewObjectID(), VendorID: vendor.ID.Hex(), Price: 1000}
	p2 := models.Product{ID: primitive.NewObjectID(), VendorID: vendor.ID.Hex(), Price: 500}
	customer := &models.Customer{
		ID:   primitive.NewObjectID(),
		Cart: []models.CartLine{{ProductID: p1.ID, Unit: 2}},
	}

	customers := &fakeCustomers{customers: map[string]*models.Customer{customer.ID.Hex(): customer}}
	orders := &fakeOrders{orders: map[string]*models.Order{}}
	txns := &fakeTransactions{}
	agents := &fakeAgents{}

	txn := &models.Transaction{
		ID:              primitive.NewObjectID(),
		CustomerID:      customer.ID.Hex(),
		Status:          models.TxnStatusOpen,
		PaymentMode:     "COD",
		PaymentResponse: "Payment is cash on Delivery",
	}

	engine := &Engine{
		Products: &fakeCatalog{products: map[string]models.Product{
			p1.ID.Hex(): p1,
			p2.ID.Hex(): p2,
		}},
		Customers:    customers,
		Orders:       orders,
		Transactions: txns,
		Ledger:       &fakeValidator{ok: true, txn: txn},
		Assigner: &FirstAvailableInArea{
			Vendors: &fakeVendors{vendors: map[string]*models.Vendor{vendor.ID.Hex(): vendor}},
			Agents:  agents,
			Orders:  orders,
		},
		Logger: zap.NewNop(),
	}
	return &orderFixture{
		engine:    engine,
		customers: customers,
		orders:    orders,
		txns:      txns,
		agents:    agents,
		customer:  customer,
		vendor:    vendor,
		p1:        p1,
		p2:        p2,
	}
}

func (fx *orderFixture) createdOrder(t *testing.T) *models.Order {
	t.Helper()
	require.Len(t, fx.orders.orders, 1)
	for _, o := range fx.orders.orders {
		return o
	}
	return nil
}

type missingTxnStore struct{}

func (missingTxnStore) Create(_ context.Context, txn *models.Transaction) (*models.Transaction, error) {
	return txn, nil
}

func (missingTxnStore) FindByID(_ context.Context, _ string) (*models.Transaction, error) {
	return nil, repository.ErrNotFound
}

func TestCreateOrderRefusesMissingTransaction(t *testing.T) {
	fx := newOrderFixture(t)
	fx.engine.Ledger = &paymentControllers.Ledger{Transactions: missingTxnStore{}}

	_, err := fx.engine.CreateOrder(context.Background(), fx.customer.ID.Hex(),
		primitive.NewObjectID().Hex(), 2500,
		[]ItemRequest{{ProductID: fx.p1.ID.Hex(), Unit: 2}})
	assert.ErrorIs(t, err, ErrPaymentNotConfirmed)
	assert.Empty(t, fx.orders.orders)
}

func TestCreateOrderRefusesFailedPayment(t *testing.T) {
	fx := newOrderFixture(t)
	fx.engine.Ledger = &fakeValidator{ok: false, txn: &models.Transaction{Status: models.TxnStatusFailed}}

	_, err := fx.engine.CreateOrder(context.Background(), fx.customer.ID.Hex(), "txn-1", 2500,
		[]ItemRequest{{ProductID: fx.p1.ID.Hex(), Unit: 2}})
	assert.ErrorIs(t, err, ErrPaymentNotConfirmed)
	assert.Empty(t, fx.orders.orders)
	assert.Empty(t, fx.txns.statuses)
}

func TestCreateOrderHappyPath(t *testing.T) {
	fx := newOrderFixture(t)

	customer, err := fx.engine.CreateOrder(context.Background(), fx.customer.ID.Hex(), "txn-1", 2500,
		[]ItemRequest{
			{ProductID: fx.p1.ID.Hex(), Unit: 2},
			{ProductID: fx.p2.ID.Hex(), Unit: 1},
		})
	require.NoError(t, err)

	order := fx.createdOrder(t)
	assert.Equal(t, float64(2500), order.TotalAmount)
	assert.Equal(t, float64(2500), order.PaidAmount)
	assert.Equal(t, fx.vendor.ID.Hex(), order.VendorID)
	assert.Equal(t, models.OrderStatusWaiting, order.OrderStatus)
	assert.Equal(t, "COD", order.PaidThrough)
	assert.Equal(t, 33, order.DeliveryTime)
	assert.Len(t, order.Items, 2)

	// Short code is numeric and in range.
	code, err := strconv.Atoi(order.OrderID)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, code, 1000)
	assert.Less(t, code, 91000)

	// The cart is gone and the order reference is recorded.
	assert.Empty(t, customer.Cart)
	require.Len(t, customer.Orders, 1)
	assert.Equal(t, order.ID, customer.Orders[0])
}

func TestCreateOrderWalksSagaToConfirmed(t *testing.T) {
	fx := newOrderFixture(t)

	_, err := fx.engine.CreateOrder(context.Background(), fx.customer.ID.Hex(), "txn-1", 2000,
		[]ItemRequest{{ProductID: fx.p1.ID.Hex(), Unit: 2}})
	require.NoError(t, err)

	assert.Equal(t, []string{
		models.TxnStatusOrderCreated,
		models.TxnStatusCartCleared,
		models.TxnStatusConfirmed,
	}, fx.txns.statuses)

	order := fx.createdOrder(t)
	assert.Equal(t, order.ID.Hex(), fx.txns.last.OrderID)
	assert.Equal(t, fx.vendor.ID.Hex(), fx.txns.last.VendorID)
}

func TestCreateOrderAssignsFirstAvailableAgent(t *testing.T) {
	fx := newOrderFixture(t)
	agent := models.DeliveryUser{ID: primitive.NewObjectID(), Pincode: "00256", Verified: true, IsAvailable: true}
	other := models.DeliveryUser{ID: primitive.NewObjectID(), Pincode: "00256", Verified: true, IsAvailable: true}
	fx.agents.agents = []models.DeliveryUser{agent, other}

	_, err := fx.engine.CreateOrder(context.Background(), fx.customer.ID.Hex(), "txn-1", 2000,
		[]ItemRequest{{ProductID: fx.p1.ID.Hex(), Unit: 2}})
	require.NoError(t, err)

	order := fx.createdOrder(t)
	assert.Equal(t, agent.ID.Hex(), order.DeliveryID)
}

func TestCreateOrderFallsBackToSelfDelivery(t *testing.T) {
	fx := newOrderFixture(t)

	_, err := fx.engine.CreateOrder(context.Background(), fx.customer.ID.Hex(), "txn-1", 2000,
		[]ItemRequest{{ProductID: fx.p1.ID.Hex(), Unit: 2}})
	require.NoError(t, err)

	order := fx.createdOrder(t)
	assert.Equal(t, models.SelfDelivery, order.DeliveryID)
}

func TestCreateOrderWithUnresolvableItems(t *testing.T) {
	fx := newOrderFixture(t)

	// None of the requested ids resolve: a zero-value order is still
	// created and the saga completes.
	customer, err := fx.engine.CreateOrder(context.Background(), fx.customer.ID.Hex(), "txn-1", 0,
		[]ItemRequest{{ProductID: primitive.NewObjectID().Hex(), Unit: 1}})
	require.NoError(t, err)

	order := fx.createdOrder(t)
	assert.Zero(t, order.TotalAmount)
	assert.Empty(t, order.Items)
	assert.Empty(t, order.VendorID)
	assert.Equal(t, models.TxnStatusConfirmed, fx.txns.last.Status)
	assert.Empty(t, customer.Cart)
}

func TestCreateOrderUnknownCustomer(t *testing.T) {
	fx := newOrderFixture(t)

	_, err := fx.engine.CreateOrder(context.Background(), primitive.NewObjectID().Hex(), "txn-1", 1000,
		[]ItemRequest{{ProductID: fx.p1.ID.Hex(), Unit: 1}})
	assert.ErrorIs(t, err, ErrCustomerNotFound)
}

func TestListOrdersEmpty(t *testing.T) {
	fx := newOrderFixture(t)

	orders, err := fx.engine.ListOrders(context.Background(), fx.customer.ID.Hex())
	require.NoError(t, err)
	assert.NotNil(t, orders)
	assert.Empty(t, orders)
}

func TestUpdateStatusKeepsDeliveryTimeWhenOmitted(t *testing.T) {
	fx := newOrderFixture(t)

	_, err := fx.engine.CreateOrder(context.Background(), fx.customer.ID.Hex(), "txn-1", 2000,
		[]ItemRequest{{ProductID: fx.p1.ID.Hex(), Unit: 2}})
	require.NoError(t, err)
	order := fx.createdOrder(t)

	updated, err := fx.engine.UpdateStatus(context.Background(), order.ID.Hex(), "accepted", "on it", nil)
	require.NoError(t, err)
	assert.Equal(t, "accepted", updated.OrderStatus)
	assert.Equal(t, "on it", updated.Remarks)
	assert.Equal(t, 33, updated.DeliveryTime)

	minutes := 45
	updated, err = fx.engine.UpdateStatus(context.Background(), order.ID.Hex(), "ready", "", &minutes)
	require.NoError(t, err)
	assert.Equal(t, 45, updated.DeliveryTime)
}

func TestUpdateStatusUnknownOrder(t *testing.T) {
	fx := newOrderFixture(t)

	_, err := fx.engine.UpdateStatus(context.Background(), primitive.NewObjectID().Hex(), "accepted", "", nil)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}
