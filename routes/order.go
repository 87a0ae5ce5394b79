package routes

import (
	"github.com/gin-gonic/gin"

	orderControllers "github.com/lvdark77/Online-Store/controllers/order"
	"github.com/lvdark77/Online-Store/middleware"
	"github.com/lvdark77/Online-Store/session"
)

// SetupOrderRoutes registers order history plus the live order feed.
func SetupOrderRoutes(r *gin.Engine, mgr *session.Manager, feed *orderControllers.Feed) {
	orderGroup := r.Group("/orders")
	orderGroup.Use(middleware.ValidateSession(mgr))
	{
		orderGroup.GET("", orderControllers.ListOrders())                 // GET /orders
		orderGroup.GET("/export", orderControllers.ExportOrdersToExcel()) // GET /orders/export
	}

	// Websocket clients cannot set an Authorization header, so the feed is
	// open like the rest of the demo surface.
	r.GET("/ws/orders", feed.Handler())
}
