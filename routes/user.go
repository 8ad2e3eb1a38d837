package routes

import (
	"github.com/gin-gonic/gin"
	cartControllers "github.com/kirtanpatel0001/gulab-mehandi-sub000/controllers/cart"
	orderControllers "github.com/kirtanpatel0001/gulab-mehandi-sub000/controllers/order"
	userControllers "github.com/kirtanpatel0001/gulab-mehandi-sub000/controllers/user"
	"github.com/kirtanpatel0001/gulab-mehandi-sub000/middleware"
	"github.com/kirtanpatel0001/gulab-mehandi-sub000/store"
	"gorm.io/gorm"
)

// SetupUserRoutes registers all "/user/*" endpoints. Requires a session.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB, carts *store.CartStore) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken)
	{
		userGroup.GET("/", userControllers.GetProfile(db))
		userGroup.PUT("/", userControllers.UpdateProfile(db))

		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("/", cartControllers.GetUserCart(carts))
			cartGroup.POST("/", cartControllers.AddCartItem(carts))
			cartGroup.PATCH("/:cart_id", cartControllers.UpdateCartQuantity(carts))
			cartGroup.DELETE("/:cart_id", cartControllers.RemoveCartItem(carts))
			cartGroup.DELETE("/", cartControllers.ClearUserCart(carts))
		}

		addressGroup := userGroup.Group("/addresses")
		{
			addressGroup.GET("/", userControllers.GetAddresses(db))
			addressGroup.POST("/", userControllers.CreateAddress(db))
			addressGroup.PUT("/:id", userControllers.UpdateAddress(db))
			addressGroup.DELETE("/:id", userControllers.DeleteAddress(db))
		}

		userGroup.GET("/orders", orderControllers.GetUserOrdersHandler(db))
	}
}
