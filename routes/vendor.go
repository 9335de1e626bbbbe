package routes

import (
	"github.com/gin-gonic/gin"

	vendorControllers "github.com/lukwagoraymond/duzol-pharma/controllers/vendor"
	"github.com/lukwagoraymond/duzol-pharma/middleware"
)

// SetupVendorRoutes registers all "/vendor/*" endpoints.
func SetupVendorRoutes(r *gin.Engine, d Deps) {
	vendor := r.Group("/vendor")
	{
		vendor.POST("/login", vendorControllers.Login(d.Vendor))
	}

	authed := r.Group("/vendor")
	authed.Use(middleware.Authenticate(d.JWTSecret))
	{
		authed.GET("/profile", vendorControllers.GetProfile(d.Vendor))
		authed.PATCH("/profile", vendorControllers.UpdateProfile(d.Vendor))
		authed.PATCH("/service", vendorControllers.UpdateService(d.Vendor))

		authed.POST("/product", vendorControllers.AddProduct(d.Vendor))
		authed.GET("/products", vendorControllers.GetProducts(d.Vendor))

		authed.POST("/offer", vendorControllers.AddOffer(d.Vendor))
		authed.GET("/offers", vendorControllers.GetOffers(d.Vendor))
		authed.PATCH("/offer/:id", vendorControllers.EditOffer(d.Vendor))

		authed.GET("/orders", vendorControllers.GetCurrentOrders(d.Vendor))
		authed.GET("/order/:id", vendorControllers.GetOrderDetails(d.Vendor))
		authed.PUT("/order/:id/process", vendorControllers.ProcessOrder(d.Vendor))
	}
}
