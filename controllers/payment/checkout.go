package paymentControllers

import (
	"fmt"
	"log"
	"math"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kirtanpatel0001/gulab-mehandi-sub000/models"
	"github.com/kirtanpatel0001/gulab-mehandi-sub000/store"
	"gorm.io/gorm"
)

type CheckoutRequest struct {
	UserID       string `json:"userId" binding:"required"`
	AddressID    uint   `json:"addressId" binding:"required"`
	CustomerName string `json:"customerName" binding:"required"`
	Currency     string `json:"currency" binding:"required"`
}

// computeTotal sums unit price times quantity over freshly read cart rows.
// The total used for payment is always derived here from current stored
// prices, never trusted from the browser.
func computeTotal(items []models.CartItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Product.Price * float64(item.Quantity)
	}
	return total
}

// toMinorUnits converts a decimal amount to the provider's minor-unit
// representation (paise for INR).
func toMinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// generateReceipt derives a provider-side receipt from the user id and the
// current time, for traceability at the provider.
func generateReceipt(userID string, now time.Time) string {
	return fmt.Sprintf("rcpt_%s_%d", userID, now.Unix())
}

// CreateCheckoutOrder re-reads the cart from the database, opens a provider
// order for the recomputed total and persists a pending local order.
//
// POST /checkout/order
func CreateCheckoutOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		keyID, keySecret, err := getRazorpayConfig()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "payment gateway is not configured"})
			return
		}

		var req CheckoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		// Fresh read through the cart source, never the cached copy: the
		// payable total comes from what is in the database right now.
		items, err := store.NewGormSource(db).LoadCart(c.Request.Context(), req.UserID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read cart"})
			return
		}
		if len(items) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
			return
		}

		total := computeTotal(items)
		amount := toMinorUnits(total)
		receipt := generateReceipt(req.UserID, time.Now())

		providerOrderID, err := createProviderOrder(keyID, keySecret, amount, req.Currency, receipt)
		if err != nil {
			log.Printf("checkout: provider order failed for user %s: %v", req.UserID, err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "Checkout failed"})
			return
		}

		orderItems := make([]models.OrderItem, 0, len(items))
		for _, item := range items {
			orderItems = append(orderItems, models.OrderItem{
				ProductID:   item.ProductID,
				ProductName: item.Product.Name,
				UnitPrice:   item.Product.Price,
				Quantity:    item.Quantity,
			})
		}

		order := models.Order{
			UserID:          req.UserID,
			AddressID:       req.AddressID,
			CustomerName:    req.CustomerName,
			Items:           orderItems,
			TotalAmount:     total,
			Currency:        req.Currency,
			ProviderOrderID: providerOrderID,
			Receipt:         receipt,
			Status:          models.OrderStatusPending,
		}

		if err := db.Create(&order).Error; err != nil {
			// The provider order is orphaned here; it was never charged.
			log.Printf("checkout: local order insert failed for provider order %s: %v", providerOrderID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Checkout failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"id":          providerOrderID,
			"db_order_id": order.ID,
			"amount":      amount,
			"currency":    req.Currency,
		})
	}
}
