package productControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kirtanpatel0001/gulab-mehandi-sub000/cache"
	"github.com/kirtanpatel0001/gulab-mehandi-sub000/models"
	"gorm.io/gorm"
)

type ProductInput struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	InStock     *bool   `json:"in_stock"`
	StainColor  string  `json:"stain_color"`
	WeightGrams float64 `json:"weight_grams"`
	Image       string  `json:"image" binding:"required"` // URL from the upload proxy
	Gallery     string  `json:"gallery"`
}

// POST /admin/products
func CreateProduct(db *gorm.DB, pc *cache.ProductCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		inStock := true
		if input.InStock != nil {
			inStock = *input.InStock
		}

		product := models.Product{
			Name:        input.Name,
			Description: input.Description,
			Price:       input.Price,
			InStock:     inStock,
			StainColor:  input.StainColor,
			WeightGrams: input.WeightGrams,
			Image:       input.Image,
			Gallery:     input.Gallery,
		}
		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}

		if pc != nil {
			pc.Invalidate(c.Request.Context(), "")
		}
		c.JSON(http.StatusCreated, product)
	}
}
