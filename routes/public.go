package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/lvdark77/Online-Store/auth"
	productControllers "github.com/lvdark77/Online-Store/controllers/product"
	"github.com/lvdark77/Online-Store/session"
)

// SetupPublicRoutes registers the endpoints that need no session token:
// opening a session and browsing the catalog.
func SetupPublicRoutes(r *gin.Engine, mgr *session.Manager) {
	r.POST("/session", auth.CreateSession(mgr))

	r.GET("/products", productControllers.GetProducts())        // GET /products
	r.GET("/products/:id", productControllers.GetProductByID()) // GET /products/:id
}
