package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	adminControllers "github.com/lukwagoraymond/duzol-pharma/controllers/admin"
	cartControllers "github.com/lukwagoraymond/duzol-pharma/controllers/cart"
	customerControllers "github.com/lukwagoraymond/duzol-pharma/controllers/customer"
	deliveryControllers "github.com/lukwagoraymond/duzol-pharma/controllers/delivery"
	orderControllers "github.com/lukwagoraymond/duzol-pharma/controllers/order"
	paymentControllers "github.com/lukwagoraymond/duzol-pharma/controllers/payment"
	shoppingControllers "github.com/lukwagoraymond/duzol-pharma/controllers/shopping"
	vendorControllers "github.com/lukwagoraymond/duzol-pharma/controllers/vendor"
)

// Deps is everything the route tree needs, wired once in main.
type Deps struct {
	Cart   *cartControllers.Engine
	Ledger *paymentControllers.Ledger
	Orders *orderControllers.Engine
	Feed   *orderControllers.Feed

	Customer customerControllers.Deps
	Vendor   vendorControllers.Deps
	Delivery deliveryControllers.Deps
	Admin    adminControllers.Deps
	Shopping shoppingControllers.Deps

	JWTSecret   string
	AdminAPIKey string
	Logger      *zap.Logger
}

// SetupRoutes registers every endpoint group on the engine.
func SetupRoutes(r *gin.Engine, d Deps) {
	SetupCustomerRoutes(r, d)
	SetupVendorRoutes(r, d)
	SetupDeliveryRoutes(r, d)
	SetupAdminRoutes(r, d)
	SetupShoppingRoutes(r, d)

	// Real-time order feed for vendor dashboards.
	r.GET("/ws/orders", d.Feed.Handler())
}
