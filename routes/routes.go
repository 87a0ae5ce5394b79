package routes

import (
	"github.com/gin-gonic/gin"

	orderControllers "github.com/lvdark77/Online-Store/controllers/order"
	"github.com/lvdark77/Online-Store/session"
)

// SetupRoutes is the single entry point that wires up the public, session
// and order route groups.
func SetupRoutes(r *gin.Engine, mgr *session.Manager) {
	feed := orderControllers.NewFeed()

	// Public routes (no session required)
	SetupPublicRoutes(r, mgr)

	// Session-scoped storefront routes (token required)
	SetupStorefrontRoutes(r, mgr, feed)

	// Order history + live feed
	SetupOrderRoutes(r, mgr, feed)
}
