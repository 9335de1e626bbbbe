package routes

import (
	"github.com/gin-gonic/gin"

	shoppingControllers "github.com/lukwagoraymond/duzol-pharma/controllers/shopping"
)

// SetupShoppingRoutes registers the public "/shopping/*" endpoints. No
// authentication: this is the storefront browse surface.
func SetupShoppingRoutes(r *gin.Engine, d Deps) {
	shopping := r.Group("/shopping")
	{
		shopping.GET("/:pincode", shoppingControllers.GetAvailability(d.Shopping))
		shopping.GET("/top-pharmacies/:pincode", shoppingControllers.GetTopPharmacies(d.Shopping))
		shopping.GET("/products-in-30-min/:pincode", shoppingControllers.GetProductsIn30Min(d.Shopping))
		shopping.GET("/search/:pincode", shoppingControllers.SearchProducts(d.Shopping))
		shopping.GET("/pharmacy/:id", shoppingControllers.GetPharmacyByID(d.Shopping))
		shopping.GET("/offers/:pincode", shoppingControllers.GetAvailableOffers(d.Shopping))
	}
}
