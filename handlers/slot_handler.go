package handlers

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rohitpatil04/turf_booking/database"
	"github.com/rohitpatil04/turf_booking/models"
	"github.com/rohitpatil04/turf_booking/services"
	"gorm.io/gorm"
)

// slotResponse is the wire shape the booking client expects, including the
// fixed human-readable duration.
type slotResponse struct {
	ID          uuid.UUID `json:"_id"`
	Date        time.Time `json:"date"`
	StartTime   string    `json:"startTime"`
	EndTime     string    `json:"endTime"`
	StartTime24 string    `json:"startTime24"`
	EndTime24   string    `json:"endTime24"`
	Price       int       `json:"price"`
	IsBooked    bool      `json:"isBooked"`
	Duration    string    `json:"duration"`
}

func toSlotResponse(slot models.Slot) slotResponse {
	return slotResponse{
		ID:          slot.ID,
		Date:        slot.Date,
		StartTime:   slot.StartTime,
		EndTime:     slot.EndTime,
		StartTime24: slot.StartTime24,
		EndTime24:   slot.EndTime24,
		Price:       slot.Price,
		IsBooked:    slot.IsBooked,
		Duration:    "1 hour",
	}
}

// GetTodaySlots sweeps expired inventory, generates today's slots when
// missing and returns only the available ones, sorted by start time.
func GetTodaySlots(c *fiber.Ctx) error {
	slots, err := services.TodaySlots(database.DB)
	if err != nil {
		log.Printf("❌ Error fetching slots: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Server error"})
	}

	resp := make([]slotResponse, 0, len(slots))
	for _, slot := range slots {
		resp = append(resp, toSlotResponse(slot))
	}

	log.Printf("🟢 Sending %d available slots (1-hour each)", len(resp))
	return c.JSON(resp)
}

func GetSlotByID(c *fiber.Ctx) error {
	slotID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid slot id"})
	}

	var slot models.Slot
	if err := database.DB.First(&slot, "id = ?", slotID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Slot not found"})
		}
		log.Printf("❌ Error fetching slot: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Server error"})
	}

	return c.JSON(slot)
}

// ResetAndRecreateSlots wipes today's inventory and regenerates the fresh
// 1-hour layout. Maintenance endpoint.
func ResetAndRecreateSlots(c *fiber.Ctx) error {
	today := services.Midnight(time.Now().UTC())
	tomorrow := today.AddDate(0, 0, 1)

	if err := database.DB.Where("date >= ? AND date < ?", today, tomorrow).Delete(&models.Slot{}).Error; err != nil {
		log.Printf("❌ Error resetting slots: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Server error"})
	}

	slots, err := services.RegenerateSlots(database.DB, today)
	if err != nil {
		log.Printf("❌ Error recreating slots: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Server error"})
	}

	return c.JSON(fiber.Map{
		"message":      "Reset and recreated fresh 1-hour slots!",
		"slotsCreated": len(slots),
		"timeRange":    "8:00 AM to 10:00 PM",
		"duration":     "1 hour each",
	})
}

func GetAllSlots(c *fiber.Ctx) error {
	var slots []models.Slot
	if err := database.DB.Order("date desc, start_time24 asc").Find(&slots).Error; err != nil {
		log.Printf("❌ Error fetching all slots: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Server error"})
	}
	return c.JSON(slots)
}

func DeleteAllSlots(c *fiber.Ctx) error {
	result := database.DB.Where("1 = 1").Delete(&models.Slot{})
	if result.Error != nil {
		log.Printf("❌ Error deleting slots: %v", result.Error)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Server error"})
	}

	log.Printf("🗑️ Deleted %d slots", result.RowsAffected)
	return c.JSON(fiber.Map{"message": fmt.Sprintf("Deleted %d slots", result.RowsAffected)})
}
