package adminControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/lukwagoraymond/duzol-pharma/auth"
	"github.com/lukwagoraymond/duzol-pharma/models"
	"github.com/lukwagoraymond/duzol-pharma/repository"
)

// Deps carries everything the admin handlers need. Admin routes are
// gated by the API-key middleware, not by JWT.
type Deps struct {
	Vendors       *repository.VendorStore
	Transactions  *repository.TransactionStore
	DeliveryUsers *repository.DeliveryUserStore
	Logger        *zap.Logger
}

type CreateVendorInput struct {
	Name        string   `json:"name" binding:"required"`
	OwnerName   string   `json:"ownerName" binding:"required"`
	ProductType []string `json:"productType"`
	Pincode     string   `json:"pincode" binding:"required"`
	Address     string   `json:"address"`
	Phone       string   `json:"phone" binding:"required"`
	Email       string   `json:"email" binding:"required,email"`
	Password    string   `json:"password" binding:"required"`
}

// POST /admin/vendor
func CreateVendor(d Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CreateVendorInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if _, err := d.Vendors.FindByEmail(c.Request.Context(), input.Email); err == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "A vendor exists with this email ID"})
			return
		} else if !errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to create vendor"})
			return
		}

		hashed, err := auth.HashPassword(input.Password)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to create vendor"})
			return
		}

		vendor := &models.Vendor{
			Name:             input.Name,
			OwnerName:        input.OwnerName,
			ProductType:      input.ProductType,
			Pincode:          input.Pincode,
			Address:          input.Address,
			Phone:            input.Phone,
			Email:            input.Email,
			Password:         hashed,
			ServiceAvailable: false,
			CoverImages:      []string{},
			Rating:           0,
		}
		vendor, err = d.Vendors.Create(c.Request.Context(), vendor)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to create vendor"})
			return
		}
		c.JSON(http.StatusCreated, vendor)
	}
}

// GET /admin/vendors
func GetVendors(d Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		vendors, err := d.Vendors.FindAll(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Vendors data not available"})
			return
		}
		c.JSON(http.StatusOK, vendors)
	}
}

// GET /admin/vendor/:id
func GetVendorByID(d Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		vendor, err := d.Vendors.FindByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Vendors data not available"})
			return
		}
		c.JSON(http.StatusOK, vendor)
	}
}

// GET /admin/transactions
func GetTransactions(d Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		txns, err := d.Transactions.FindAll(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Transactions data not available"})
			return
		}
		c.JSON(http.StatusOK, txns)
	}
}

// GET /admin/transaction/:id
func GetTransactionByID(d Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		txn, err := d.Transactions.FindByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Transaction data not available"})
			return
		}
		c.JSON(http.StatusOK, txn)
	}
}

type VerifyDeliveryUserInput struct {
	ID     string `json:"_id" binding:"required"`
	Status bool   `json:"status"`
}

// PUT /admin/delivery/verify
func VerifyDeliveryUser(d Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input VerifyDeliveryUserInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		agent, err := d.DeliveryUsers.FindByID(c.Request.Context(), input.ID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unable to verify Delivery User"})
			return
		}
		agent.Verified = input.Status
		if err := d.DeliveryUsers.Save(c.Request.Context(), agent); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to verify Delivery User"})
			return
		}
		c.JSON(http.StatusOK, agent)
	}
}

// GET /admin/delivery/users
func GetDeliveryUsers(d Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		users, err := d.DeliveryUsers.FindAll(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Unable to get Delivery Users"})
			return
		}
		c.JSON(http.StatusOK, users)
	}
}
