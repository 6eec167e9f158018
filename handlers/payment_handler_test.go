package handlers

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func paymentTestApp() *fiber.App {
	app := fiber.New()
	app.Post("/api/payments/verify", VerifyPayment)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, payload interface{}) (int, map[string]interface{}) {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var parsed map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &parsed))
	return resp.StatusCode, parsed
}

func signAssertion(secret, orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

// A forged signature must be rejected before anything touches storage.
func TestVerifyPaymentRejectsInvalidSignature(t *testing.T) {
	t.Setenv("RAZORPAY_KEY_SECRET", "test_secret")
	mock := useMockDB(t)
	app := paymentTestApp()

	status, body := postJSON(t, app, "/api/payments/verify", fiber.Map{
		"razorpay_order_id":   "order_abc",
		"razorpay_payment_id": "pay_xyz",
		"razorpay_signature":  "definitely-not-valid",
		"userId":              uuid.New().String(),
		"slotId":              uuid.New().String(),
	})

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Invalid signature", body["error"])
	assert.NoError(t, mock.ExpectationsWereMet(), "zero storage calls expected")
}

func TestVerifyPaymentRejectsMissingFields(t *testing.T) {
	t.Setenv("RAZORPAY_KEY_SECRET", "test_secret")
	mock := useMockDB(t)
	app := paymentTestApp()

	status, _ := postJSON(t, app, "/api/payments/verify", fiber.Map{
		"razorpay_order_id": "order_abc",
		"userId":            uuid.New().String(),
		"slotId":            uuid.New().String(),
	})

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVerifyPaymentBooksSlot(t *testing.T) {
	t.Setenv("RAZORPAY_KEY_SECRET", "test_secret")
	mock := useMockDB(t)
	app := paymentTestApp()

	slotID := uuid.New()
	now := time.Now().UTC()
	date := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM "slots"`).
		WillReturnRows(sqlmock.NewRows(slotColumns).
			AddRow(slotID.String(), date, "9:00 AM", "10:00 AM", "09:00", "10:00", 800, false, nil, nil, now, now, now))
	mock.ExpectExec(`UPDATE "slots"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`INSERT INTO "bookings"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.New().String()))
	mock.ExpectCommit()

	status, body := postJSON(t, app, "/api/payments/verify", fiber.Map{
		"razorpay_order_id":   "order_abc",
		"razorpay_payment_id": "pay_xyz",
		"razorpay_signature":  signAssertion("test_secret", "order_abc", "pay_xyz"),
		"userId":              uuid.New().String(),
		"slotId":              slotID.String(),
	})

	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, true, body["success"])

	booking, ok := body["booking"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(800), booking["amount"])
	assert.Equal(t, "completed", booking["paymentStatus"])
	assert.Equal(t, "pay_xyz", booking["paymentId"])
	assert.Contains(t, booking["bookingId"], "BK")

	assert.NoError(t, mock.ExpectationsWereMet())
}

// The race loser sees "slot unavailable", not a generic server error.
func TestVerifyPaymentConflictIsUserFacing(t *testing.T) {
	t.Setenv("RAZORPAY_KEY_SECRET", "test_secret")
	mock := useMockDB(t)
	app := paymentTestApp()

	slotID := uuid.New()
	now := time.Now().UTC()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM "slots"`).
		WillReturnRows(sqlmock.NewRows(slotColumns).
			AddRow(slotID.String(), now, "9:00 AM", "10:00 AM", "09:00", "10:00", 800, false, nil, nil, now, now, now))
	mock.ExpectExec(`UPDATE "slots"`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	status, body := postJSON(t, app, "/api/payments/verify", fiber.Map{
		"razorpay_order_id":   "order_abc",
		"razorpay_payment_id": "pay_xyz",
		"razorpay_signature":  signAssertion("test_secret", "order_abc", "pay_xyz"),
		"userId":              uuid.New().String(),
		"slotId":              slotID.String(),
	})

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Slot unavailable", body["error"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVerifyPaymentSlotNotFound(t *testing.T) {
	t.Setenv("RAZORPAY_KEY_SECRET", "test_secret")
	mock := useMockDB(t)
	app := paymentTestApp()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM "slots"`).WillReturnRows(sqlmock.NewRows(slotColumns))
	mock.ExpectRollback()

	status, body := postJSON(t, app, "/api/payments/verify", fiber.Map{
		"razorpay_order_id":   "order_abc",
		"razorpay_payment_id": "pay_xyz",
		"razorpay_signature":  signAssertion("test_secret", "order_abc", "pay_xyz"),
		"userId":              uuid.New().String(),
		"slotId":              uuid.New().String(),
	})

	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "Slot not found", body["error"])
	assert.NoError(t, mock.ExpectationsWereMet())
}
