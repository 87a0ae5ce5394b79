package routes

import (
	"github.com/gin-gonic/gin"

	cartControllers "github.com/lvdark77/Online-Store/controllers/cart"
	checkoutControllers "github.com/lvdark77/Online-Store/controllers/checkout"
	orderControllers "github.com/lvdark77/Online-Store/controllers/order"
	userControllers "github.com/lvdark77/Online-Store/controllers/user"
	"github.com/lvdark77/Online-Store/middleware"
	"github.com/lvdark77/Online-Store/session"
)

// SetupStorefrontRoutes registers every session-scoped endpoint. All of them
// require a valid session token.
func SetupStorefrontRoutes(r *gin.Engine, mgr *session.Manager, feed *orderControllers.Feed) {
	group := r.Group("/")
	group.Use(middleware.ValidateSession(mgr))
	{
		// ──────────────── Shopping Cart ────────────────
		cartGroup := group.Group("/cart")
		{
			cartGroup.GET("", cartControllers.GetCart())            // GET /cart
			cartGroup.POST("", cartControllers.AddItem())           // POST /cart
			cartGroup.PUT("/:id", cartControllers.UpdateQuantity()) // PUT /cart/:id
			cartGroup.DELETE("/:id", cartControllers.RemoveItem())  // DELETE /cart/:id
			cartGroup.DELETE("", cartControllers.ClearCart())       // DELETE /cart
		}

		// ──────────────── User Profile ────────────────
		group.POST("/login", userControllers.Login())          // POST /login
		group.POST("/logout", userControllers.Logout())        // POST /logout
		group.GET("/profile", userControllers.GetProfile())    // GET /profile
		group.PUT("/profile", userControllers.UpdateProfile()) // PUT /profile

		addressGroup := group.Group("/addresses")
		{
			addressGroup.POST("", userControllers.AddAddress())          // POST /addresses
			addressGroup.PUT("/:id", userControllers.UpdateAddress())    // PUT /addresses/:id
			addressGroup.DELETE("/:id", userControllers.RemoveAddress()) // DELETE /addresses/:id
		}

		// ──────────────── Checkout Wizard ────────────────
		checkoutGroup := group.Group("/checkout")
		{
			checkoutGroup.GET("", checkoutControllers.GetState())                // GET /checkout
			checkoutGroup.POST("/next", checkoutControllers.Next())              // POST /checkout/next
			checkoutGroup.POST("/back", checkoutControllers.Back())              // POST /checkout/back
			checkoutGroup.PUT("/delivery", checkoutControllers.SelectDelivery()) // PUT /checkout/delivery
			checkoutGroup.PUT("/payment", checkoutControllers.SelectPayment())   // PUT /checkout/payment
			checkoutGroup.PUT("/address", checkoutControllers.SelectAddress())   // PUT /checkout/address
			checkoutGroup.POST("/confirm", checkoutControllers.Confirm(feed))    // POST /checkout/confirm
		}
	}
}
