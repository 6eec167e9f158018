package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rohitpatil04/turf_booking/database"
	"github.com/rohitpatil04/turf_booking/models"
)

// GetUserBookings lists a user's bookings, newest first. Bookings carry
// their own copies of date and times, so this works even after the slots
// themselves were purged.
func GetUserBookings(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid user id"})
	}

	var bookings []models.Booking
	if err := database.DB.Where("user_id = ?", userID).Order("created_at desc").Find(&bookings).Error; err != nil {
		log.Printf("❌ Error fetching bookings: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Server error"})
	}

	return c.JSON(bookings)
}
