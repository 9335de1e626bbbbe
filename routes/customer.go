package routes

import (
	"github.com/gin-gonic/gin"

	cartControllers "github.com/lukwagoraymond/duzol-pharma/controllers/cart"
	customerControllers "github.com/lukwagoraymond/duzol-pharma/controllers/customer"
	orderControllers "github.com/lukwagoraymond/duzol-pharma/controllers/order"
	paymentControllers "github.com/lukwagoraymond/duzol-pharma/controllers/payment"
	"github.com/lukwagoraymond/duzol-pharma/middleware"
)

// SetupCustomerRoutes registers all "/customer/*" endpoints. Signup and
// login are open; everything else requires a bearer token.
func SetupCustomerRoutes(r *gin.Engine, d Deps) {
	customer := r.Group("/customer")
	{
		customer.POST("/signup", customerControllers.SignUp(d.Customer))
		customer.POST("/login", customerControllers.Login(d.Customer))
	}

	authed := r.Group("/customer")
	authed.Use(middleware.Authenticate(d.JWTSecret))
	{
		authed.PATCH("/verify", customerControllers.Verify(d.Customer))
		authed.GET("/otp", customerControllers.RequestOTP(d.Customer))
		authed.GET("/profile", customerControllers.GetProfile(d.Customer))
		authed.PATCH("/profile", customerControllers.EditProfile(d.Customer))

		authed.POST("/cart", cartControllers.UpdateCartItem(d.Cart))
		authed.GET("/cart", cartControllers.GetCart(d.Cart))
		authed.DELETE("/cart", cartControllers.DeleteCart(d.Cart))

		authed.GET("/offer/verify/:id", paymentControllers.VerifyOffer(d.Ledger))
		authed.POST("/create-payment", paymentControllers.CreatePayment(d.Ledger))

		authed.POST("/create-order", orderControllers.CreateOrderHandler(d.Orders))
		authed.GET("/orders", orderControllers.GetOrdersHandler(d.Orders))
		authed.GET("/order/:id", orderControllers.GetOrderByIDHandler(d.Orders))
	}
}
