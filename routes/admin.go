package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/kirtanpatel0001/gulab-mehandi-sub000/cache"
	bookingControllers "github.com/kirtanpatel0001/gulab-mehandi-sub000/controllers/booking"
	cartControllers "github.com/kirtanpatel0001/gulab-mehandi-sub000/controllers/cart"
	orderControllers "github.com/kirtanpatel0001/gulab-mehandi-sub000/controllers/order"
	productControllers "github.com/kirtanpatel0001/gulab-mehandi-sub000/controllers/product"
	userControllers "github.com/kirtanpatel0001/gulab-mehandi-sub000/controllers/user"
	"github.com/kirtanpatel0001/gulab-mehandi-sub000/middleware"
	"github.com/kirtanpatel0001/gulab-mehandi-sub000/store"
	"gorm.io/gorm"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Requires a session
// with the admin role.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB, carts *store.CartStore, pc *cache.ProductCache) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateToken, middleware.RequireAdmin)
	{
		adminGroup.GET("/users", userControllers.GetAllUsers(db))

		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.POST("", productControllers.CreateProduct(db, pc))
			productAdmin.PUT("/:id", productControllers.UpdateProduct(db, pc))
			productAdmin.DELETE("/:id", productControllers.DeleteProduct(db, pc))
			productAdmin.POST("/import-excel", productControllers.ImportProductsFromExcel(db, pc))
			productAdmin.GET("/export-excel", productControllers.ExportProductsToExcel(db))
		}

		orderAdmin := adminGroup.Group("/orders")
		{
			orderAdmin.GET("/", orderControllers.GetAllOrdersHandler(db))
			orderAdmin.GET("/:orderID", orderControllers.GetOrderByIDHandler(db))
			orderAdmin.PUT("/:orderID/status", orderControllers.UpdateOrderStatusHandler(db))
		}

		// websocket endpoint for real-time order updates
		adminGroup.GET("/ws/orders", orderControllers.OrderWebSocketHandler)

		bookingAdmin := adminGroup.Group("/bookings")
		{
			bookingAdmin.GET("/", bookingControllers.GetAllBookings(db))
			bookingAdmin.PUT("/:bookingID/status", bookingControllers.UpdateBookingStatus(db))
		}

		adminGroup.GET("/user-cart/:user_id", cartControllers.GetAdminUserCart(carts))
	}
}
