package paymentControllers

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kirtanpatel0001/gulab-mehandi-sub000/models"
	"gorm.io/gorm"
)

type fakeOrderSource struct {
	order     models.Order
	markCalls int
}

func (f *fakeOrderSource) FindByProviderOrderID(_ context.Context, providerOrderID string) (*models.Order, error) {
	if providerOrderID != f.order.ProviderOrderID {
		return nil, gorm.ErrRecordNotFound
	}
	cp := f.order
	return &cp, nil
}

func (f *fakeOrderSource) MarkPaid(_ context.Context, _ uint) error {
	f.markCalls++
	f.order.Status = models.OrderStatusPaid
	return nil
}

func sign(orderID, paymentID, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestComputeTotal(t *testing.T) {
	items := []models.CartItem{
		{Quantity: 2, Product: models.Product{Price: 25.00}},
		{Quantity: 1, Product: models.Product{Price: 18.00}},
	}
	total := computeTotal(items)
	if total != 68.00 {
		t.Fatalf("total = %v, want 68.00", total)
	}
	if got := toMinorUnits(total); got != 6800 {
		t.Fatalf("minor units = %d, want 6800", got)
	}
}

func TestToMinorUnitsRounding(t *testing.T) {
	cases := []struct {
		amount float64
		want   int64
	}{
		{0.01, 1},
		{10.55, 1055},
		{999.99, 99999},
		{68.00, 6800},
	}
	for _, tc := range cases {
		if got := toMinorUnits(tc.amount); got != tc.want {
			t.Errorf("toMinorUnits(%v) = %d, want %d", tc.amount, got, tc.want)
		}
	}
}

func TestGenerateReceipt(t *testing.T) {
	now := time.Unix(1700000000, 0)
	got := generateReceipt("user-1", now)
	want := "rcpt_user-1_1700000000"
	if got != want {
		t.Fatalf("receipt = %q, want %q", got, want)
	}
}

func TestVerifyPaymentSignature(t *testing.T) {
	secret := "test_secret"
	orderID := "order_abc"
	paymentID := "pay_xyz"
	good := sign(orderID, paymentID, secret)

	if !verifyPaymentSignature(orderID, paymentID, good, secret) {
		t.Fatal("valid signature rejected")
	}
	if verifyPaymentSignature(orderID, paymentID, good+"0", secret) {
		t.Fatal("tampered signature accepted")
	}
	if verifyPaymentSignature(orderID, "pay_other", good, secret) {
		t.Fatal("signature over a different payment id accepted")
	}
	// Signature computed over a different order|payment pair.
	wrongPair := sign("order_other", paymentID, secret)
	if verifyPaymentSignature(orderID, paymentID, wrongPair, secret) {
		t.Fatal("signature over a different order id accepted")
	}
}

func postJSON(h gin.HandlerFunc, path string, body interface{}) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST(path, h)

	data, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestVerifyRejectsMissingFields(t *testing.T) {
	os.Setenv("RAZORPAY_KEY_SECRET", "test_secret")
	defer os.Unsetenv("RAZORPAY_KEY_SECRET")

	// nil DB is safe: the handler must reject before touching storage.
	w := postJSON(VerifyPayment(nil, nil), "/checkout/verify", map[string]string{
		"razorpay_payment_id": "pay_xyz",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}

	var resp map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp["success"] != false {
		t.Fatalf("success = %v, want false", resp["success"])
	}
}

func TestVerifyRejectsBadSignatureBeforeStorage(t *testing.T) {
	os.Setenv("RAZORPAY_KEY_SECRET", "test_secret")
	defer os.Unsetenv("RAZORPAY_KEY_SECRET")

	w := postJSON(VerifyPayment(nil, nil), "/checkout/verify", map[string]string{
		"razorpay_payment_id": "pay_xyz",
		"razorpay_order_id":   "order_abc",
		"razorpay_signature":  sign("order_other", "pay_xyz", "test_secret"),
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}

	var resp map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp["success"] != false {
		t.Fatalf("success = %v, want false", resp["success"])
	}
}

func TestVerifyReplayStaysSuccessfulWithOneTransition(t *testing.T) {
	os.Setenv("RAZORPAY_KEY_SECRET", "test_secret")
	defer os.Unsetenv("RAZORPAY_KEY_SECRET")

	orders := &fakeOrderSource{order: models.Order{
		ID:              7,
		UserID:          "u1",
		ProviderOrderID: "order_abc",
		Status:          models.OrderStatusPending,
	}}
	broadcasts := 0
	h := verifyHandler(orders, nil, func(models.Order) { broadcasts++ })

	payload := map[string]string{
		"razorpay_payment_id": "pay_xyz",
		"razorpay_order_id":   "order_abc",
		"razorpay_signature":  sign("order_abc", "pay_xyz", "test_secret"),
	}
	for i := 0; i < 2; i++ {
		w := postJSON(h, "/checkout/verify", payload)
		if w.Code != http.StatusOK {
			t.Fatalf("call %d: status = %d, want 200", i+1, w.Code)
		}
		var resp map[string]interface{}
		json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["success"] != true {
			t.Fatalf("call %d: success = %v, want true", i+1, resp["success"])
		}
	}

	if orders.markCalls != 1 {
		t.Fatalf("status transitions = %d, want exactly 1", orders.markCalls)
	}
	if broadcasts != 1 {
		t.Fatalf("broadcasts = %d, want exactly 1", broadcasts)
	}
}

func TestVerifyFailsClosedWithoutSecret(t *testing.T) {
	os.Unsetenv("RAZORPAY_KEY_SECRET")

	w := postJSON(VerifyPayment(nil, nil), "/checkout/verify", map[string]string{
		"razorpay_payment_id": "pay_xyz",
		"razorpay_order_id":   "order_abc",
		"razorpay_signature":  "anything",
	})
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
}

func TestCheckoutFailsClosedWithoutConfig(t *testing.T) {
	os.Unsetenv("RAZORPAY_KEY_ID")
	os.Unsetenv("RAZORPAY_KEY_SECRET")

	w := postJSON(CreateCheckoutOrder(nil), "/checkout/order", CheckoutRequest{
		UserID:       "u1",
		AddressID:    1,
		CustomerName: "Test",
		Currency:     "INR",
	})
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
}
