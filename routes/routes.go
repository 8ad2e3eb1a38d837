package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/kirtanpatel0001/gulab-mehandi-sub000/cache"
	"github.com/kirtanpatel0001/gulab-mehandi-sub000/store"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry point that wires up every route group.
func SetupRoutes(r *gin.Engine, db *gorm.DB, carts *store.CartStore, pc *cache.ProductCache) {
	// Public storefront routes (no middleware)
	SetupPublicRoutes(r, db, pc)

	// Auth routes
	SetupAuthRoutes(r, db, carts)

	// User routes (JWT-protected)
	SetupUserRoutes(r, db, carts)

	// Checkout and payment verification
	SetupPaymentRoutes(r, db, carts)

	// Admin routes (JWT + admin role)
	SetupAdminRoutes(r, db, carts, pc)
}
