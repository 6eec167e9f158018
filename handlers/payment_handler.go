package handlers

import (
	"errors"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	config "github.com/rohitpatil04/turf_booking/configs"
	"github.com/rohitpatil04/turf_booking/database"
	"github.com/rohitpatil04/turf_booking/models"
	"github.com/rohitpatil04/turf_booking/notifications"
	"github.com/rohitpatil04/turf_booking/payments"
	"github.com/rohitpatil04/turf_booking/services"
)

type CreateOrderRequest struct {
	Amount int `json:"amount" validate:"required,gt=0"`
}

func CreateOrder(c *fiber.Ctx) error {
	var req CreateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	order, err := payments.CreateOrder(req.Amount)
	if err != nil {
		log.Printf("❌ Create order error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Order creation failed"})
	}

	return c.JSON(order)
}

type VerifyPaymentRequest struct {
	RazorpayOrderID   string `json:"razorpay_order_id" validate:"required"`
	RazorpayPaymentID string `json:"razorpay_payment_id" validate:"required"`
	RazorpaySignature string `json:"razorpay_signature" validate:"required"`
	UserID            string `json:"userId" validate:"required,uuid"`
	SlotID            string `json:"slotId" validate:"required,uuid"`
}

// VerifyPayment is the reservation commit path: validate the payment
// assertion, atomically book the slot, respond, then hand the confirmation
// email to the background queue.
func VerifyPayment(c *fiber.Ctx) error {
	var req VerifyPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	secret := config.Config("RAZORPAY_KEY_SECRET")
	if !payments.VerifySignature(req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature, secret) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid signature"})
	}

	userID, _ := uuid.Parse(req.UserID)
	slotID, _ := uuid.Parse(req.SlotID)

	booking, slot, err := services.ReserveSlot(database.DB, slotID, userID, req.RazorpayPaymentID)
	if err != nil {
		if errors.Is(err, services.ErrSlotNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Slot not found"})
		}
		if errors.Is(err, services.ErrSlotUnavailable) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Slot unavailable"})
		}
		log.Printf("❌ Verify error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Payment verification failed"})
	}

	go sendBookingConfirmation(userID, booking, slot)

	return c.JSON(fiber.Map{"success": true, "booking": booking})
}

func sendBookingConfirmation(userID uuid.UUID, booking *models.Booking, slot *models.Slot) {
	if !notifications.Ready() {
		return
	}

	var user models.User
	if err := database.DB.First(&user, "id = ?", userID).Error; err != nil {
		log.Printf("🔥 Background email error: %v", err)
		return
	}
	if user.Email == "" {
		return
	}

	html := fmt.Sprintf(`
		<h2>Booking Confirmed 🏏</h2>
		<p><strong>Booking ID:</strong> %s</p>
		<p><strong>Date:</strong> %s</p>
		<p><strong>Time:</strong> %s - %s</p>
		<p><strong>Amount Paid:</strong> ₹%d</p>
		<br/>
		<p>Please arrive 15 minutes before your slot.</p>
		<p>Thank you for booking with us!</p>`,
		booking.BookingID,
		slot.Date.Format("Mon Jan 02 2006"),
		slot.StartTime,
		slot.EndTime,
		booking.Amount,
	)

	notifications.SendEmail(user.Name, user.Email, "✅ Cricket Turf Booking Confirmed", html)
}
