package payments

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	config "github.com/rohitpatil04/turf_booking/configs"
)

type RazorpayOrder struct {
	ID       string `json:"id"`
	Amount   int    `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}

// CreateOrder creates a Razorpay order for the given amount in rupees.
// Razorpay wants the amount in paise.
func CreateOrder(amount int) (*RazorpayOrder, error) {
	keyID := config.Config("RAZORPAY_KEY_ID")
	keySecret := config.Config("RAZORPAY_KEY_SECRET")
	if keyID == "" || keySecret == "" {
		return nil, errors.New("RAZORPAY keys missing")
	}

	apiBase := config.ConfigOr("RAZORPAY_API_BASE_URL", "https://api.razorpay.com")

	payload := map[string]interface{}{
		"amount":   amount * 100,
		"currency": "INR",
		"receipt":  fmt.Sprintf("rcpt_%d", time.Now().UnixMilli()),
	}
	body, _ := json.Marshal(payload)

	req, err := http.NewRequest("POST", fmt.Sprintf("%s/v1/orders", apiBase), bytes.NewBuffer(body))
	if err != nil {
		return nil, err
	}
	req.SetBasicAuth(keyID, keySecret)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("failed to create order: %s", string(respBody))
	}

	var order RazorpayOrder
	if err := json.NewDecoder(resp.Body).Decode(&order); err != nil {
		return nil, err
	}
	return &order, nil
}

// VerifySignature checks the assertion triple returned by Razorpay's
// client-side checkout: the signature must equal
// hex(HMAC-SHA256(secret, orderID + "|" + paymentID)). Pure and fail-closed:
// any missing value rejects.
func VerifySignature(orderID, paymentID, signature, secret string) bool {
	if orderID == "" || paymentID == "" || signature == "" || secret == "" {
		return false
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(signature))
}
