package checkoutControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lvdark77/Online-Store/checkout"
	orderControllers "github.com/lvdark77/Online-Store/controllers/order"
	"github.com/lvdark77/Online-Store/middleware"
	"github.com/lvdark77/Online-Store/models"
	"github.com/lvdark77/Online-Store/store"
)

type DeliveryInput struct {
	Method string `json:"method" binding:"required"`
}

type PaymentInput struct {
	Method string `json:"method" binding:"required"`
}

type AddressSelectInput struct {
	AddressID string `json:"addressId" binding:"required"`
}

// GET /checkout
func GetState() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, middleware.CurrentSession(c).Checkout.State())
	}
}

// POST /checkout/next
func Next() gin.HandlerFunc {
	return func(c *gin.Context) {
		step := middleware.CurrentSession(c).Checkout.Next()
		c.JSON(http.StatusOK, gin.H{"step": step})
	}
}

// POST /checkout/back
func Back() gin.HandlerFunc {
	return func(c *gin.Context) {
		step, cancelled := middleware.CurrentSession(c).Checkout.Back()
		c.JSON(http.StatusOK, gin.H{"step": step, "cancelled": cancelled})
	}
}

// PUT /checkout/delivery
func SelectDelivery() gin.HandlerFunc {
	return func(c *gin.Context) {
		var input DeliveryInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		method, err := models.ParseDeliveryMethod(input.Method)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		middleware.CurrentSession(c).Checkout.SelectDelivery(method)
		c.JSON(http.StatusOK, gin.H{"method": method, "fee": method.Fee()})
	}
}

// PUT /checkout/payment
func SelectPayment() gin.HandlerFunc {
	return func(c *gin.Context) {
		var input PaymentInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		method, err := models.ParsePaymentMethod(input.Method)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		middleware.CurrentSession(c).Checkout.SelectPayment(method)
		c.JSON(http.StatusOK, gin.H{"method": method})
	}
}

// PUT /checkout/address
func SelectAddress() gin.HandlerFunc {
	return func(c *gin.Context) {
		var input AddressSelectInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		err := middleware.CurrentSession(c).Checkout.SelectAddress(input.AddressID)
		switch {
		case errors.Is(err, store.ErrNotAuthenticated):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Please log in to select an address"})
		case errors.Is(err, store.ErrAddressNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Address not found"})
		case err != nil:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to select address"})
		default:
			c.JSON(http.StatusOK, gin.H{"addressId": input.AddressID})
		}
	}
}

// POST /checkout/confirm
func Confirm(feed *orderControllers.Feed) gin.HandlerFunc {
	return func(c *gin.Context) {
		order, err := middleware.CurrentSession(c).Checkout.ConfirmOrder(c.Request.Context())
		switch {
		case errors.Is(err, store.ErrNotAuthenticated):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Please log in to place an order"})
		case errors.Is(err, checkout.ErrEmptyCart):
			c.JSON(http.StatusConflict, gin.H{"error": "Cart is empty"})
		case errors.Is(err, checkout.ErrNotAtReview):
			c.JSON(http.StatusConflict, gin.H{"error": "Finish the checkout steps first"})
		case errors.Is(err, checkout.ErrNoAddress):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Select a delivery address first"})
		case err != nil:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
		default:
			feed.Broadcast(order)
			c.JSON(http.StatusCreated, order)
		}
	}
}
