package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/kirtanpatel0001/gulab-mehandi-sub000/cache"
	bookingControllers "github.com/kirtanpatel0001/gulab-mehandi-sub000/controllers/booking"
	productControllers "github.com/kirtanpatel0001/gulab-mehandi-sub000/controllers/product"
	reviewControllers "github.com/kirtanpatel0001/gulab-mehandi-sub000/controllers/review"
	uploadControllers "github.com/kirtanpatel0001/gulab-mehandi-sub000/controllers/upload"
	"gorm.io/gorm"
)

// SetupPublicRoutes registers the storefront endpoints that need no session.
func SetupPublicRoutes(r *gin.Engine, db *gorm.DB, pc *cache.ProductCache) {
	r.GET("/products", productControllers.GetProducts(db, pc))
	r.GET("/products/:id", productControllers.GetProductByID(db, pc))

	r.GET("/reviews", reviewControllers.GetReviews(db))
	r.POST("/reviews", reviewControllers.CreateReview(db))

	r.POST("/bookings", bookingControllers.CreateBooking(db))

	// Image uploads go through the server so CDN credentials never reach
	// the browser.
	r.POST("/upload", uploadControllers.UploadImage(uploadControllers.CloudinaryForwarder()))
}
