package routes

import (
	"github.com/gin-gonic/gin"

	deliveryControllers "github.com/lukwagoraymond/duzol-pharma/controllers/delivery"
	"github.com/lukwagoraymond/duzol-pharma/middleware"
)

// SetupDeliveryRoutes registers all "/delivery/*" endpoints.
func SetupDeliveryRoutes(r *gin.Engine, d Deps) {
	delivery := r.Group("/delivery")
	{
		delivery.POST("/signup", deliveryControllers.SignUp(d.Delivery))
		delivery.POST("/login", deliveryControllers.Login(d.Delivery))
	}

	authed := r.Group("/delivery")
	authed.Use(middleware.Authenticate(d.JWTSecret))
	{
		authed.GET("/profile", deliveryControllers.GetProfile(d.Delivery))
		authed.PATCH("/profile", deliveryControllers.EditProfile(d.Delivery))
		authed.PUT("/change-status", deliveryControllers.UpdateStatus(d.Delivery))
	}
}
