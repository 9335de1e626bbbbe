package routes

import (
	"github.com/gin-gonic/gin"

	adminControllers "github.com/lukwagoraymond/duzol-pharma/controllers/admin"
	"github.com/lukwagoraymond/duzol-pharma/middleware"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Requires API-Key
// middleware.
func SetupAdminRoutes(r *gin.Engine, d Deps) {
	admin := r.Group("/admin")
	admin.Use(middleware.ValidateAPIKey(d.AdminAPIKey))
	{
		admin.POST("/vendor", adminControllers.CreateVendor(d.Admin))
		admin.GET("/vendors", adminControllers.GetVendors(d.Admin))
		admin.GET("/vendor/:id", adminControllers.GetVendorByID(d.Admin))

		admin.GET("/transactions", adminControllers.GetTransactions(d.Admin))
		admin.GET("/transaction/:id", adminControllers.GetTransactionByID(d.Admin))
		admin.GET("/transactions/export", adminControllers.ExportTransactionsToExcel(d.Admin))

		admin.PUT("/delivery/verify", adminControllers.VerifyDeliveryUser(d.Admin))
		admin.GET("/delivery/users", adminControllers.GetDeliveryUsers(d.Admin))
	}
}
