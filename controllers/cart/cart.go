package cartControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lvdark77/Online-Store/middleware"
	"github.com/lvdark77/Online-Store/models"
)

type AddItemInput struct {
	ID    string `json:"id" binding:"required"`
	Name  string `json:"name" binding:"required"`
	Price int64  `json:"price" binding:"min=0"`
	Image string `json:"image"`
}

type QuantityInput struct {
	// Zero or negative removes the line, so no minimum here.
	Quantity int `json:"quantity"`
}

func cartResponse(c *gin.Context) gin.H {
	cart := middleware.CurrentSession(c).Cart
	return gin.H{
		"items":      cart.Items(),
		"totalItems": cart.TotalItems(),
		"totalPrice": cart.TotalPrice(),
	}
}

// GET /cart
func GetCart() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, cartResponse(c))
	}
}

// POST /cart
func AddItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		var input AddItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		middleware.CurrentSession(c).Cart.Add(models.CartItem{
			ID:    input.ID,
			Name:  input.Name,
			Price: input.Price,
			Image: input.Image,
		})
		c.JSON(http.StatusOK, cartResponse(c))
	}
}

// PUT /cart/:id
func UpdateQuantity() gin.HandlerFunc {
	return func(c *gin.Context) {
		var input QuantityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		middleware.CurrentSession(c).Cart.UpdateQuantity(c.Param("id"), input.Quantity)
		c.JSON(http.StatusOK, cartResponse(c))
	}
}

// DELETE /cart/:id
func RemoveItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		middleware.CurrentSession(c).Cart.Remove(c.Param("id"))
		c.JSON(http.StatusOK, cartResponse(c))
	}
}

// DELETE /cart
func ClearCart() gin.HandlerFunc {
	return func(c *gin.Context) {
		middleware.CurrentSession(c).Cart.Clear()
		c.JSON(http.StatusOK, cartResponse(c))
	}
}
