package paymentControllers

import (
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	orderControllers "github.com/kirtanpatel0001/gulab-mehandi-sub000/controllers/order"
	"github.com/kirtanpatel0001/gulab-mehandi-sub000/models"
	"github.com/kirtanpatel0001/gulab-mehandi-sub000/store"
	"gorm.io/gorm"
)

type VerifyRequest struct {
	PaymentID string `json:"razorpay_payment_id"`
	OrderID   string `json:"razorpay_order_id"`
	Signature string `json:"razorpay_signature"`
}

// VerifyPayment checks the signature returned by the checkout widget and
// transitions the order to paid. This is the sole gate between pending and
// paid; a mismatch leaves the order untouched.
//
// POST /checkout/verify
func VerifyPayment(db *gorm.DB, carts *store.CartStore) gin.HandlerFunc {
	return verifyHandler(store.NewGormOrderSource(db), carts, orderControllers.BroadcastOrderPaid)
}

func verifyHandler(orders store.OrderSource, carts *store.CartStore, notify func(models.Order)) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req VerifyRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid request"})
			return
		}
		if req.PaymentID == "" || req.OrderID == "" || req.Signature == "" {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "missing payment fields"})
			return
		}

		secret := os.Getenv("RAZORPAY_KEY_SECRET")
		if secret == "" {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "payment gateway is not configured"})
			return
		}

		if !verifyPaymentSignature(req.OrderID, req.PaymentID, req.Signature, secret) {
			log.Printf("verify: signature mismatch for provider order %s, possible tamper attempt", req.OrderID)
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "signature verification failed"})
			return
		}

		order, err := orders.FindByProviderOrderID(c.Request.Context(), req.OrderID)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "order not found"})
			return
		}

		// Replaying a valid payload finds the order already paid; the
		// update is a no-op and the response stays successful.
		if order.Status != models.OrderStatusPaid {
			if err := orders.MarkPaid(c.Request.Context(), order.ID); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to update order"})
				return
			}
			order.Status = models.OrderStatusPaid
			notify(*order)
		}

		// Best-effort cleanup: the payment is confirmed, so a cart-clear
		// failure is logged and swallowed rather than reversing it.
		if carts != nil {
			if err := carts.ClearPersistent(c.Request.Context(), order.UserID); err != nil {
				log.Printf("verify: cart clear for user %s failed: %v", order.UserID, err)
			}
		}

		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}
