package paymentControllers

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
)

const razorpayOrdersURL = "https://api.razorpay.com/v1/orders"

// razorpayOrderResponse represents the provider's order object
type razorpayOrderResponse struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
	Error    *struct {
		Code        string `json:"code"`
		Description string `json:"description"`
	} `json:"error,omitempty"`
}

// getRazorpayConfig fails closed when either credential is missing so no
// handler proceeds with partial credentials.
func getRazorpayConfig() (keyID, keySecret string, err error) {
	keyID = os.Getenv("RAZORPAY_KEY_ID")
	keySecret = os.Getenv("RAZORPAY_KEY_SECRET")
	if keyID == "" || keySecret == "" {
		return "", "", fmt.Errorf("razorpay configuration missing")
	}
	return keyID, keySecret, nil
}

// createProviderOrder opens an order at Razorpay for the given minor-unit
// amount and returns the provider order id.
func createProviderOrder(keyID, keySecret string, amount int64, currency, receipt string) (string, error) {
	payload := map[string]interface{}{
		"amount":   amount,
		"currency": currency,
		"receipt":  receipt,
	}

	jsonData, _ := json.Marshal(payload)

	req, err := http.NewRequest("POST", razorpayOrdersURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.SetBasicAuth(keyID, keySecret)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to reach razorpay: %v", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("razorpay API error (%d): %s", resp.StatusCode, string(body))
	}

	var orderResp razorpayOrderResponse
	if err := json.Unmarshal(body, &orderResp); err != nil {
		return "", fmt.Errorf("failed to parse razorpay response: %v", err)
	}
	if orderResp.Error != nil {
		return "", fmt.Errorf("razorpay error: %s", orderResp.Error.Description)
	}
	if orderResp.ID == "" {
		return "", fmt.Errorf("razorpay returned empty order id")
	}

	return orderResp.ID, nil
}

// verifyPaymentSignature recomputes the HMAC-SHA256 over
// "<order_id>|<payment_id>" and compares it with the signature returned by
// the checkout widget. The comparison is constant-time.
func verifyPaymentSignature(orderID, paymentID, signature, secret string) bool {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
