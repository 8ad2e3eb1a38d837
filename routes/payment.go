package routes

import (
	"github.com/gin-gonic/gin"
	paymentControllers "github.com/kirtanpatel0001/gulab-mehandi-sub000/controllers/payment"
	"github.com/kirtanpatel0001/gulab-mehandi-sub000/middleware"
	"github.com/kirtanpatel0001/gulab-mehandi-sub000/store"
	"gorm.io/gorm"
)

// SetupPaymentRoutes registers checkout order creation and payment
// verification.
func SetupPaymentRoutes(r *gin.Engine, db *gorm.DB, carts *store.CartStore) {
	checkout := r.Group("/checkout")
	checkout.Use(middleware.ValidateToken)
	{
		checkout.POST("/order", paymentControllers.CreateCheckoutOrder(db))
		checkout.POST("/verify", paymentControllers.VerifyPayment(db, carts))
	}
}
