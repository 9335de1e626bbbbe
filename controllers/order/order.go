package orderControllers

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/lukwagoraymond/duzol-pharma/middleware"
	"github.com/lukwagoraymond/duzol-pharma/models"
	"github.com/lukwagoraymond/duzol-pharma/repository"
)

var (
	ErrPaymentNotConfirmed = errors.New("order not created, payment pending")
	ErrOrderNotFound       = errors.New("order not found")
	ErrCustomerNotFound    = errors.New("customer does not exist")
)

// Fallback delivery estimate stamped on new orders, in minutes, until the
// vendor sets a real one while processing.
const defaultDeliveryTime = 33

type Catalog interface {
	FindByIDs(ctx context.Context, ids []string) ([]models.Product, error)
}

type CustomerStore interface {
	FindByID(ctx context.Context, id string) (*models.Customer, error)
	Save(ctx context.Context, customer *models.Customer) error
}

type OrderStore interface {
	Create(ctx context.Context, order *models.Order) (*models.Order, error)
	FindByID(ctx context.Context, id string) (*models.Order, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Order, error)
	Save(ctx context.Context, order *models.Order) error
}

type TransactionStore interface {
	Save(ctx context.Context, txn *models.Transaction) error
}

// Validator is the slice of the payment ledger the order engine consumes.
type Validator interface {
	Validate(ctx context.Context, transactionID string) (bool, *models.Transaction, error)
}

// Assigner binds a fresh order to a delivery agent. Best-effort: a failed
// assignment never invalidates the order.
type Assigner interface {
	Assign(ctx context.Context, orderID, vendorID string) error
}

// Engine converts a validated transaction plus a set of requested items
// into an immutable order.
type Engine struct {
	Products     Catalog
	Customers    CustomerStore
	Orders       OrderStore
	Transactions TransactionStore
	Ledger       Validator
	Assigner     Assigner
	Logger       *zap.Logger

	// Publish, when set, broadcasts order creations and status changes
	// to the vendor websocket feed.
	Publish func(order models.Order)
}

type ItemRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Unit      int    `json:"unit" binding:"required,min=1"`
}

// newOrderCode returns the human-facing short numeric code. Uniform random
// with no uniqueness check against existing orders; a collision is
// accepted, as in the legacy dashboard this feeds.
func newOrderCode() string {
	return strconv.Itoa(rand.Intn(89999) + 1000)
}

// CreateOrder runs the checkout saga. The four document writes (order
// create, customer save, transaction updates) are each atomic on their
// own but not as a group; the transaction document records how far the
// saga got (OPEN -> ORDER_CREATED -> CART_CLEARED -> CONFIRMED) so a
// crash leaves an inspectable intermediate state rather than silence.
func (e *Engine) CreateOrder(ctx context.Context, customerID, transactionID string, amount float64, items []ItemRequest) (*models.Customer, error) {
	ok, txn, err := e.Ledger.Validate(ctx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("validate transaction: %w", err)
	}
	if !ok {
		return nil, ErrPaymentNotConfirmed
	}

	customer, err := e.Customers.FindByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("load customer: %w", err)
	}

	ids := make([]string, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ProductID)
	}
	products, err := e.Products.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("resolve order items: %w", err)
	}

	var (
		lines     []models.OrderLine
		netAmount float64
		vendorID  string
	)
	for _, product := range products {
		for _, item := range items {
			if product.ID.Hex() == item.ProductID {
				// Last line's vendor wins; single-vendor orders are
				// assumed, not enforced.
				vendorID = product.VendorID
				netAmount += product.Price * float64(item.Unit)
				lines = append(lines, models.OrderLine{Product: product, Unit: item.Unit})
			}
		}
	}

	order := &models.Order{
		OrderID:         newOrderCode(),
		VendorID:        vendorID,
		Items:           lines,
		TotalAmount:     netAmount,
		PaidAmount:      amount,
		PaidThrough:     txn.PaymentMode,
		OrderDate:       time.Now(),
		OrderStatus:     models.OrderStatusWaiting,
		PaymentResponse: txn.PaymentResponse,
		DeliveryID:      "",
		DeliveryTime:    defaultDeliveryTime,
	}
	order, err = e.Orders.Create(ctx, order)
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	// Saga checkpoint: the order document exists, nothing else yet.
	txn.VendorID = vendorID
	txn.OrderID = order.ID.Hex()
	txn.Status = models.TxnStatusOrderCreated
	if err := e.Transactions.Save(ctx, txn); err != nil {
		return nil, fmt.Errorf("mark transaction order-created: %w", err)
	}

	customer.Cart = nil
	customer.Orders = append(customer.Orders, order.ID)
	if err := e.Customers.Save(ctx, customer); err != nil {
		return nil, fmt.Errorf("save customer: %w", err)
	}

	txn.Status = models.TxnStatusCartCleared
	if err := e.Transactions.Save(ctx, txn); err != nil {
		return nil, fmt.Errorf("mark transaction cart-cleared: %w", err)
	}

	txn.Status = models.TxnStatusConfirmed
	if err := e.Transactions.Save(ctx, txn); err != nil {
		return nil, fmt.Errorf("confirm transaction: %w", err)
	}

	if err := e.Assigner.Assign(ctx, order.ID.Hex(), vendorID); err != nil {
		// The order stands without an agent; the vendor self-delivers.
		e.Logger.Warn("delivery assignment failed",
			zap.String("orderId", order.OrderID),
			zap.String("vendorId", vendorID),
			zap.Error(err))
	}

	if e.Publish != nil {
		if fresh, err := e.Orders.FindByID(ctx, order.ID.Hex()); err == nil {
			e.Publish(*fresh)
		}
	}
	return customer, nil
}

// GetOrder returns one order; line items carry full product snapshots.
func (e *Engine) GetOrder(ctx context.Context, orderID string) (*models.Order, error) {
	order, err := e.Orders.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return order, nil
}

// ListOrders resolves the customer's order references.
func (e *Engine) ListOrders(ctx context.Context, customerID string) ([]models.Order, error) {
	customer, err := e.Customers.FindByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}
	if len(customer.Orders) == 0 {
		return []models.Order{}, nil
	}
	return e.Orders.FindByIDs(ctx, customer.Orders)
}

// UpdateStatus applies a vendor's processing update. Status is free text
// with no state machine: any status may follow any other.
func (e *Engine) UpdateStatus(ctx context.Context, orderID, status, remarks string, deliveryTime *int) (*models.Order, error) {
	order, err := e.Orders.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	order.OrderStatus = status
	order.Remarks = remarks
	if deliveryTime != nil {
		order.DeliveryTime = *deliveryTime
	}
	if err := e.Orders.Save(ctx, order); err != nil {
		return nil, fmt.Errorf("save order: %w", err)
	}
	if e.Publish != nil {
		e.Publish(*order)
	}
	return order, nil
}

type CreateOrderInput struct {
	TransactionID string        `json:"transactionId" binding:"required"`
	Amount        float64       `json:"amount" binding:"required"`
	Items         []ItemRequest `json:"items" binding:"required,dive"`
}

// POST /customer/create-order
func CreateOrderHandler(e *Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.Principal(c)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Error with Created Order"})
			return
		}

		var input CreateOrderInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		customer, err := e.CreateOrder(c.Request.Context(), user.ID, input.TransactionID, input.Amount, input.Items)
		if err != nil {
			switch {
			case errors.Is(err, ErrPaymentNotConfirmed):
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not Created Pending Payment"})
			case errors.Is(err, ErrCustomerNotFound):
				c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			default:
				c.JSON(http.StatusBadRequest, gin.H{"error": "Error with Created Order"})
			}
			return
		}
		c.JSON(http.StatusOK, customer)
	}
}

// GET /customer/orders
func GetOrdersHandler(e *Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.Principal(c)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "User Not Authorised to Access Orders"})
			return
		}
		orders, err := e.ListOrders(c.Request.Context(), user.ID)
		if err != nil {
			if errors.Is(err, ErrCustomerNotFound) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GET /customer/order/:id
func GetOrderByIDHandler(e *Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		order, err := e.GetOrder(c.Request.Context(), c.Param("id"))
		if err != nil {
			if errors.Is(err, ErrOrderNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order Not Found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}
