package deliveryControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/lukwagoraymond/duzol-pharma/auth"
	"github.com/lukwagoraymond/duzol-pharma/middleware"
	"github.com/lukwagoraymond/duzol-pharma/models"
	"github.com/lukwagoraymond/duzol-pharma/repository"
)

// Deps carries everything the delivery-agent handlers need.
type Deps struct {
	DeliveryUsers *repository.DeliveryUserStore
	Secret        string
	Logger        *zap.Logger
}

type SignUpInput struct {
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone" binding:"required,min=7,max=15"`
	Password  string `json:"password" binding:"required,min=6,max=20"`
	FirstName string `json:"firstName" binding:"required,min=3,max=16"`
	LastName  string `json:"lastName" binding:"required,min=3,max=16"`
	Address   string `json:"address" binding:"required,min=6,max=60"`
	Pincode   string `json:"pincode" binding:"required"`
}

// POST /delivery/signup — agents start unverified and unavailable; an
// admin verifies them before they can receive assignments.
func SignUp(d Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input SignUpInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if _, err := d.DeliveryUsers.FindByEmail(c.Request.Context(), input.Email); err == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "A Delivery User exist with the provided email ID!"})
			return
		} else if !errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error while creating Delivery user"})
			return
		}

		hashed, err := auth.HashPassword(input.Password)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error while creating Delivery user"})
			return
		}

		user := &models.DeliveryUser{
			Email:       input.Email,
			Password:    hashed,
			Phone:       input.Phone,
			FirstName:   input.FirstName,
			LastName:    input.LastName,
			Address:     input.Address,
			Pincode:     input.Pincode,
			Verified:    false,
			IsAvailable: false,
		}
		user, err = d.DeliveryUsers.Create(c.Request.Context(), user)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error while creating Delivery user"})
			return
		}

		signature, err := auth.GenerateSignature(auth.Payload{
			ID:       user.ID.Hex(),
			Email:    user.Email,
			Verified: user.Verified,
		}, d.Secret)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error while creating Delivery user"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{
			"signature": signature,
			"verified":  user.Verified,
			"email":     user.Email,
		})
	}
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// POST /delivery/login
func Login(d Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input LoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		user, err := d.DeliveryUsers.FindByEmail(c.Request.Context(), input.Email)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Error With Login"})
			return
		}
		if !auth.CheckPassword(input.Password, user.Password) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Error With Login"})
			return
		}

		signature, err := auth.GenerateSignature(auth.Payload{
			ID:       user.ID.Hex(),
			Email:    user.Email,
			Verified: user.Verified,
		}, d.Secret)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error With Login"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"signature": signature,
			"verified":  user.Verified,
			"email":     user.Email,
		})
	}
}

// GET /delivery/profile
func GetProfile(d Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.Principal(c)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Error with Fetch Profile"})
			return
		}
		agent, err := d.DeliveryUsers.FindByID(c.Request.Context(), user.ID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Error with Fetch Profile"})
			return
		}
		c.JSON(http.StatusOK, agent)
	}
}

type EditProfileInput struct {
	FirstName string `json:"firstName" binding:"required,min=3,max=16"`
	LastName  string `json:"lastName" binding:"required,min=3,max=16"`
	Address   string `json:"address" binding:"required,min=6,max=60"`
}

// PATCH /delivery/profile
func EditProfile(d Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.Principal(c)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Error while Updating Profile"})
			return
		}

		var input EditProfileInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		agent, err := d.DeliveryUsers.FindByID(c.Request.Context(), user.ID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Error while Updating Profile"})
			return
		}
		agent.FirstName = input.FirstName
		agent.LastName = input.LastName
		agent.Address = input.Address
		if err := d.DeliveryUsers.Save(c.Request.Context(), agent); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error while Updating Profile"})
			return
		}
		c.JSON(http.StatusCreated, agent)
	}
}

type ChangeStatusInput struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// PUT /delivery/change-status — toggles availability; a location update
// rides along when supplied. Unverified agents stay unavailable to the
// assignment policy regardless of this flag.
func UpdateStatus(d Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.Principal(c)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Error with Updating Profile"})
			return
		}

		var input ChangeStatusInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		agent, err := d.DeliveryUsers.FindByID(c.Request.Context(), user.ID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Error with Updating Profile"})
			return
		}
		if input.Lat != 0 || input.Lng != 0 {
			agent.Lat = input.Lat
			agent.Lng = input.Lng
		}
		agent.IsAvailable = !agent.IsAvailable
		if err := d.DeliveryUsers.Save(c.Request.Context(), agent); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error with Updating Profile"})
			return
		}
		c.JSON(http.StatusCreated, agent)
	}
}
