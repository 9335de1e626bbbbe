package shoppingControllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/lukwagoraymond/duzol-pharma/models"
	"github.com/lukwagoraymond/duzol-pharma/repository"
)

// Deps carries the read-only stores the public shopping surface uses.
// Everything here is keyed by pincode and needs no authentication.
type Deps struct {
	Vendors  *repository.VendorStore
	Products *repository.ProductStore
	Offers   *repository.OfferStore
}

// vendorsWithProducts resolves each vendor's product references so the
// storefront renders in one round trip.
func vendorsWithProducts(c *gin.Context, d Deps, vendors []models.Vendor) ([]gin.H, error) {
	result := make([]gin.H, 0, len(vendors))
	for _, vendor := range vendors {
		products, err := d.Products.FindByObjectIDs(c.Request.Context(), vendor.Products)
		if err != nil {
			return nil, err
		}
		result = append(result, gin.H{"vendor": vendor, "products": products})
	}
	return result, nil
}

// GET /shopping/:pincode — all serviceable pharmacies in an area with
// their catalogs, best-rated first.
func GetAvailability(d Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		vendors, err := d.Vendors.FindServiceableByPincode(c.Request.Context(), c.Param("pincode"), 0)
		if err != nil || len(vendors) == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "data Not found!"})
			return
		}
		result, err := vendorsWithProducts(c, d, vendors)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch availability"})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

// GET /shopping/top-pharmacies/:pincode
func GetTopPharmacies(d Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		vendors, err := d.Vendors.FindServiceableByPincode(c.Request.Context(), c.Param("pincode"), 20)
		if err != nil || len(vendors) == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "data Not found!"})
			return
		}
		c.JSON(http.StatusOK, vendors)
	}
}

// GET /shopping/products-in-30-min/:pincode — products from serviceable
// vendors deliverable within half an hour.
func GetProductsIn30Min(d Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		vendors, err := d.Vendors.FindServiceableByPincode(c.Request.Context(), c.Param("pincode"), 0)
		if err != nil || len(vendors) == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "data Not found!"})
			return
		}

		var quick []models.Product
		for _, vendor := range vendors {
			products, err := d.Products.FindByObjectIDs(c.Request.Context(), vendor.Products)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
				return
			}
			for _, product := range products {
				if product.DeliveryTime <= 30 {
					quick = append(quick, product)
				}
			}
		}
		c.JSON(http.StatusOK, quick)
	}
}

// GET /shopping/search/:pincode?q= — substring match on product names
// across the area's serviceable vendors.
func SearchProducts(d Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		vendors, err := d.Vendors.FindServiceableByPincode(c.Request.Context(), c.Param("pincode"), 0)
		if err != nil || len(vendors) == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "data Not found!"})
			return
		}

		query := strings.ToLower(c.Query("q"))
		var matches []models.Product
		for _, vendor := range vendors {
			products, err := d.Products.FindByObjectIDs(c.Request.Context(), vendor.Products)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search products"})
				return
			}
			for _, product := range products {
				if query == "" || strings.Contains(strings.ToLower(product.Name), query) {
					matches = append(matches, product)
				}
			}
		}
		c.JSON(http.StatusOK, matches)
	}
}

// GET /shopping/pharmacy/:id — one pharmacy with its catalog.
func GetPharmacyByID(d Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		vendor, err := d.Vendors.FindByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "data Not found!"})
			return
		}
		products, err := d.Products.FindByObjectIDs(c.Request.Context(), vendor.Products)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch pharmacy"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"vendor": vendor, "products": products})
	}
}

// GET /shopping/offers/:pincode — active offers in an area. Validity
// dates are not filtered here; only the isActive flag counts.
func GetAvailableOffers(d Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		offers, err := d.Offers.FindActiveByPincode(c.Request.Context(), c.Param("pincode"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Offers not Found!"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Offers found", "offers": offers})
	}
}
