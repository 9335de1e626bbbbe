package customerControllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/lukwagoraymond/duzol-pharma/auth"
	"github.com/lukwagoraymond/duzol-pharma/middleware"
	"github.com/lukwagoraymond/duzol-pharma/models"
	"github.com/lukwagoraymond/duzol-pharma/notify"
	"github.com/lukwagoraymond/duzol-pharma/repository"
)

// Deps carries everything the customer handlers need.
type Deps struct {
	Customers *repository.CustomerStore
	Notifier  notify.Notifier
	Secret    string
	Logger    *zap.Logger
}

type SignUpInput struct {
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone" binding:"required,min=7,max=15"`
	Password string `json:"password" binding:"required,min=6,max=20"`
}

// POST /customer/signup
func SignUp(d Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input SignUpInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if _, err := d.Customers.FindByEmail(c.Request.Context(), input.Email); err == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email already exist!"})
			return
		} else if !errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error while creating user"})
			return
		}

		hashed, err := auth.HashPassword(input.Password)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error while creating user"})
			return
		}
		otp, expiry := auth.GenerateOTP()

		customer := &models.Customer{
			Email:     input.Email,
			Password:  hashed,
			Phone:     input.Phone,
			Verified:  false,
			OTP:       otp,
			OTPExpiry: expiry,
			Cart:      []models.CartLine{},
			Orders:    []primitive.ObjectID{},
		}
		customer, err = d.Customers.Create(c.Request.Context(), customer)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error while creating user"})
			return
		}

		if err := d.Notifier.SendOTP(c.Request.Context(), otp, customer.Phone); err != nil {
			d.Logger.Warn("otp dispatch failed", zap.String("email", customer.Email), zap.Error(err))
		}

		signature, err := auth.GenerateSignature(auth.Payload{
			ID:       customer.ID.Hex(),
			Email:    customer.Email,
			Verified: customer.Verified,
		}, d.Secret)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error while creating user"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{
			"signature": signature,
			"verified":  customer.Verified,
			"email":     customer.Email,
		})
	}
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// POST /customer/login
func Login(d Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input LoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		customer, err := d.Customers.FindByEmail(c.Request.Context(), input.Email)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Error With Login"})
			return
		}
		if !auth.CheckPassword(input.Password, customer.Password) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Error With Login"})
			return
		}

		signature, err := auth.GenerateSignature(auth.Payload{
			ID:       customer.ID.Hex(),
			Email:    customer.Email,
			Verified: customer.Verified,
		}, d.Secret)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error With Login"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"signature": signature,
			"verified":  customer.Verified,
			"email":     customer.Email,
		})
	}
}

type VerifyInput struct {
	OTP int `json:"otp" binding:"required"`
}

// PATCH /customer/verify
func Verify(d Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.Principal(c)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Error with OTP Validation"})
			return
		}

		var input VerifyInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		customer, err := d.Customers.FindByID(c.Request.Context(), user.ID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Error with OTP Validation"})
			return
		}
		if customer.OTP != input.OTP || time.Now().After(customer.OTPExpiry) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Error with OTP Validation"})
			return
		}

		customer.Verified = true
		if err := d.Customers.Save(c.Request.Context(), customer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error with OTP Validation"})
			return
		}

		signature, err := auth.GenerateSignature(auth.Payload{
			ID:       customer.ID.Hex(),
			Email:    customer.Email,
			Verified: customer.Verified,
		}, d.Secret)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error with OTP Validation"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"signature": signature,
			"verified":  customer.Verified,
			"email":     customer.Email,
		})
	}
}

// GET /customer/otp
func RequestOTP(d Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.Principal(c)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Error with Requesting OTP"})
			return
		}

		customer, err := d.Customers.FindByID(c.Request.Context(), user.ID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Error with Requesting OTP"})
			return
		}

		otp, expiry := auth.GenerateOTP()
		customer.OTP = otp
		customer.OTPExpiry = expiry
		if err := d.Customers.Save(c.Request.Context(), customer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error with Requesting OTP"})
			return
		}
		if err := d.Notifier.SendOTP(c.Request.Context(), otp, customer.Phone); err != nil {
			d.Logger.Warn("otp dispatch failed", zap.String("email", customer.Email), zap.Error(err))
		}
		c.JSON(http.StatusOK, gin.H{"message": "OTP sent to your registered phone number!"})
	}
}

// GET /customer/profile
func GetProfile(d Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.Principal(c)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Error with Fetch Profile"})
			return
		}
		customer, err := d.Customers.FindByID(c.Request.Context(), user.ID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Error with Fetch Profile"})
			return
		}
		c.JSON(http.StatusOK, customer)
	}
}

type EditProfileInput struct {
	FirstName string `json:"firstName" binding:"required,min=3,max=16"`
	LastName  string `json:"lastName" binding:"required,min=3,max=16"`
	Address   string `json:"address" binding:"required,min=6,max=60"`
}

// PATCH /customer/profile
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

		customer, err := d.Customers.FindByID(c.Request.Context(), user.ID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Error while Updating Profile"})
			return
		}
		customer.FirstName = input.FirstName
		customer.LastName = input.LastName
		customer.Address = input.Address
		if err := d.Customers.Save(c.Request.Context(), customer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error while Updating Profile"})
			return
		}
		c.JSON(http.StatusCreated, customer)
	}
}
