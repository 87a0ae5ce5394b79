package productControllers

import (
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/lvdark77/Online-Store/models"
)

// GET /products
func GetProducts() gin.HandlerFunc {
	return func(c *gin.Context) {
		search := strings.ToLower(c.Query("search"))
		category := c.Query("category")
		minPriceStr := c.Query("min_price")
		maxPriceStr := c.Query("max_price")
		sortBy := c.DefaultQuery("sort_by", "rating")
		sortOrder := strings.ToLower(c.DefaultQuery("order", "desc"))
		if sortOrder != "asc" && sortOrder != "desc" {
			sortOrder = "desc"
		}

		var minPrice, maxPrice int64 = 0, -1
		if minPriceStr != "" {
			v, err := strconv.ParseInt(minPriceStr, 10, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid min_price"})
				return
			}
			minPrice = v
		}
		if maxPriceStr != "" {
			v, err := strconv.ParseInt(maxPriceStr, 10, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid max_price"})
				return
			}
			maxPrice = v
		}

		products := models.Catalog()
		filtered := products[:0]
		for _, p := range products {
			if search != "" && !strings.Contains(strings.ToLower(p.Name), search) {
				continue
			}
			if category != "" && p.Category != category {
				continue
			}
			if p.Price < minPrice {
				continue
			}
			if maxPrice >= 0 && p.Price > maxPrice {
				continue
			}
			filtered = append(filtered, p)
		}

		sort.SliceStable(filtered, func(i, j int) bool {
			a, b := filtered[i], filtered[j]
			if sortOrder == "desc" {
				a, b = b, a
			}
			switch sortBy {
			case "price":
				return a.Price < b.Price
			case "name":
				return a.Name < b.Name
			default:
				return a.Rating < b.Rating
			}
		})

		c.JSON(http.StatusOK, filtered)
	}
}

// GET /products/:id
func GetProductByID() gin.HandlerFunc {
	return func(c *gin.Context) {
		product, ok := models.FindProduct(c.Param("id"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}
