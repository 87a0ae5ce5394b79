package userControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lvdark77/Online-Store/middleware"
	"github.com/lvdark77/Online-Store/models"
	"github.com/lvdark77/Online-Store/store"
)

type LoginInput struct {
	Email string `json:"email" binding:"required"`
}

type AddressInput struct {
	Name       string `json:"name" binding:"required"`
	Street     string `json:"street" binding:"required"`
	City       string `json:"city" binding:"required"`
	PostalCode string `json:"postalCode"`
	IsDefault  bool   `json:"isDefault"`
}

// POST /login
func Login() gin.HandlerFunc {
	return func(c *gin.Context) {
		var input LoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		user := middleware.CurrentSession(c).Users.Login(c.Request.Context(), input.Email)
		c.JSON(http.StatusOK, user)
	}
}

// POST /logout
func Logout() gin.HandlerFunc {
	return func(c *gin.Context) {
		middleware.CurrentSession(c).Users.Logout(c.Request.Context())
		c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
	}
}

// GET /profile
func GetProfile() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.CurrentSession(c).Users.User()
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not logged in"})
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

// PUT /profile
func UpdateProfile() gin.HandlerFunc {
	return func(c *gin.Context) {
		var input store.ProfileUpdate
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		user, err := middleware.CurrentSession(c).Users.UpdateProfile(c.Request.Context(), input)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Not logged in"})
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

// POST /addresses
func AddAddress() gin.HandlerFunc {
	return func(c *gin.Context) {
		var input AddressInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		addr, err := middleware.CurrentSession(c).Users.AddAddress(c.Request.Context(), models.Address{
			Name:       input.Name,
			Street:     input.Street,
			City:       input.City,
			PostalCode: input.PostalCode,
			IsDefault:  input.IsDefault,
		})
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Not logged in"})
			return
		}
		c.JSON(http.StatusCreated, addr)
	}
}

// PUT /addresses/:id
func UpdateAddress() gin.HandlerFunc {
	return func(c *gin.Context) {
		var input store.AddressUpdate
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		addr, err := middleware.CurrentSession(c).Users.UpdateAddress(c.Request.Context(), c.Param("id"), input)
		switch {
		case errors.Is(err, store.ErrNotAuthenticated):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Not logged in"})
		case errors.Is(err, store.ErrAddressNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Address not found"})
		case err != nil:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update address"})
		default:
			c.JSON(http.StatusOK, addr)
		}
	}
}

// DELETE /addresses/:id
func RemoveAddress() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := middleware.CurrentSession(c).Users.RemoveAddress(c.Request.Context(), c.Param("id")); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Not logged in"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Address removed"})
	}
}
