package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/kirtanpatel0001/gulab-mehandi-sub000/auth"
	"github.com/kirtanpatel0001/gulab-mehandi-sub000/middleware"
	"github.com/kirtanpatel0001/gulab-mehandi-sub000/store"
	"gorm.io/gorm"
)

// SetupAuthRoutes registers the "/auth/*" endpoints.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB, carts *store.CartStore) {
	authGroup := r.Group("/auth")
	{
		authGroup.GET("/callback", auth.CallbackHandler(db))
		authGroup.POST("/logout", middleware.ValidateToken, auth.LogoutHandler(carts))
	}
}
