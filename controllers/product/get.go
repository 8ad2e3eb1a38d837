package productControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kirtanpatel0001/gulab-mehandi-sub000/cache"
	"github.com/kirtanpatel0001/gulab-mehandi-sub000/models"
	"gorm.io/gorm"
)

// GET /products
func GetProducts(db *gorm.DB, pc *cache.ProductCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		load := func() ([]models.Product, error) {
			var products []models.Product
			if err := db.Order("created_at DESC").Find(&products).Error; err != nil {
				return nil, err
			}
			return products, nil
		}

		var products []models.Product
		var err error
		if pc != nil {
			products, err = pc.GetAll(c.Request.Context(), load)
		} else {
			products, err = load()
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

// GET /products/:id
func GetProductByID(db *gorm.DB, pc *cache.ProductCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		load := func() (*models.Product, error) {
			var product models.Product
			if err := db.First(&product, "id = ?", id).Error; err != nil {
				return nil, err
			}
			return &product, nil
		}

		var product *models.Product
		var err error
		if pc != nil {
			product, err = pc.GetByID(c.Request.Context(), id, load)
		} else {
			product, err = load()
		}
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product"})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}
