package cartControllers

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lukwagoraymond/duzol-pharma/middleware"
	"github.com/lukwagoraymond/duzol-pharma/models"
	"github.com/lukwagoraymond/duzol-pharma/repository"
)

var (
	ErrProductNotFound  = errors.New("product does not exist")
	ErrCustomerNotFound = errors.New("customer does not exist")
)

// Catalog is the read-only product lookup the cart needs.
type Catalog interface {
	FindByID(ctx context.Context, id string) (*models.Product, error)
	FindByIDs(ctx context.Context, ids []string) ([]models.Product, error)
}

type CustomerStore interface {
	FindByID(ctx context.Context, id string) (*models.Customer, error)
	Save(ctx context.Context, customer *models.Customer) error
}

// Engine owns the per-customer cart: a mapping from product to requested
// unit count, persisted as a whole on every change.
type Engine struct {
	Products  Catalog
	Customers CustomerStore
}

// Line is a cart line with its product resolved.
type Line struct {
	Product models.Product `json:"product"`
	Unit    int            `json:"unit"`
}

// MergeItem applies one (product, unit) request to the customer's cart.
// An existing line is replaced outright (last write wins, no increment);
// a unit of zero deletes the line, or is a no-op when no line exists.
func (e *Engine) MergeItem(ctx context.Context, customerID, productID string, unit int) ([]models.CartLine, error) {
	product, err := e.Products.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("validate product: %w", err)
	}

	customer, err := e.Customers.FindByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("load customer: %w", err)
	}

	index := -1
	for i, line := range customer.Cart {
		if line.ProductID == product.ID {
			index = i
			break
		}
	}
	switch {
	case index >= 0 && unit > 0:
		customer.Cart[index].Unit = unit
	case index >= 0:
		customer.Cart = append(customer.Cart[:index], customer.Cart[index+1:]...)
	case unit > 0:
		customer.Cart = append(customer.Cart, models.CartLine{ProductID: product.ID, Unit: unit})
	default:
		// Removing a line that never existed: nothing to do. A fresh
		// customer has a nil cart; hand back an empty slice so the wire
		// shape matches Read.
		if customer.Cart == nil {
			return []models.CartLine{}, nil
		}
		return customer.Cart, nil
	}

	if err := e.Customers.Save(ctx, customer); err != nil {
		return nil, fmt.Errorf("save cart: %w", err)
	}
	return customer.Cart, nil
}

// Clear empties the cart unconditionally. Clearing an empty cart is fine.
func (e *Engine) Clear(ctx context.Context, customerID string) (*models.Customer, error) {
	customer, err := e.Customers.FindByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("load customer: %w", err)
	}
	customer.Cart = nil
	if err := e.Customers.Save(ctx, customer); err != nil {
		return nil, fmt.Errorf("save cart: %w", err)
	}
	return customer, nil
}

// Read returns the cart with products resolved. An empty cart yields an
// empty slice, never an error.
func (e *Engine) Read(ctx context.Context, customerID string) ([]Line, error) {
	customer, err := e.Customers.FindByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("load customer: %w", err)
	}
	if len(customer.Cart) == 0 {
		return []Line{}, nil
	}

	ids := make([]string, 0, len(customer.Cart))
	for _, line := range customer.Cart {
		ids = append(ids, line.ProductID.Hex())
	}
	products, err := e.Products.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("resolve cart products: %w", err)
	}

	lines := make([]Line, 0, len(customer.Cart))
	for _, line := range customer.Cart {
		for _, product := range products {
			if product.ID == line.ProductID {
				lines = append(lines, Line{Product: product, Unit: line.Unit})
				break
			}
		}
	}
	return lines, nil
}

type CartItemInput struct {
	ProductID string `json:"productId" binding:"required"`
	Unit      *int   `json:"unit" binding:"required,min=0"`
}

// POST /customer/cart
func UpdateCartItem(e *Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.Principal(c)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "User Not Authorised to Update Cart"})
			return
		}

		var input CartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		lines, err := e.MergeItem(c.Request.Context(), user.ID, input.ProductID, *input.Unit)
		if err != nil {
			switch {
			case errors.Is(err, ErrProductNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			case errors.Is(err, ErrCustomerNotFound):
				c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
			}
			return
		}
		c.JSON(http.StatusCreated, lines)
	}
}

// GET /customer/cart
func GetCart(e *Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.Principal(c)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "User Not Authorised to See Cart"})
			return
		}
		lines, err := e.Read(c.Request.Context(), user.ID)
		if err != nil {
			if errors.Is(err, ErrCustomerNotFound) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		c.JSON(http.StatusOK, lines)
	}
}

// DELETE /customer/cart
func DeleteCart(e *Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.Principal(c)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "User Not Authorised to Delete Cart"})
			return
		}
		customer, err := e.Clear(c.Request.Context(), user.ID)
		if err != nil {
			if errors.Is(err, ErrCustomerNotFound) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
			return
		}
		c.JSON(http.StatusOK, customer)
	}
}
