package handlers

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/rohitpatil04/turf_booking/database"
	"github.com/rohitpatil04/turf_booking/models"
)

// GetSlotUtilization counts bookings per time window, keyed as
// "startTime-endTime".
func GetSlotUtilization(c *fiber.Ctx) error {
	var rows []struct {
		StartTime string
		EndTime   string
		Count     int64
	}
	err := database.DB.Model(&models.Booking{}).
		Select("start_time, end_time, count(*) as count").
		Group("start_time, end_time").
		Scan(&rows).Error
	if err != nil {
		log.Printf("❌ Error computing slot utilization: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Server error"})
	}

	utilization := fiber.Map{}
	for _, row := range rows {
		utilization[fmt.Sprintf("%s-%s", row.StartTime, row.EndTime)] = row.Count
	}
	return c.JSON(utilization)
}

// GetPeakHours returns the three most-booked start times as
// [startTime, count] pairs, busiest first.
func GetPeakHours(c *fiber.Ctx) error {
	var rows []struct {
		StartTime string
		Count     int64
	}
	err := database.DB.Model(&models.Booking{}).
		Select("start_time, count(*) as count").
		Group("start_time").
		Order("count desc").
		Limit(3).
		Scan(&rows).Error
	if err != nil {
		log.Printf("❌ Error computing peak hours: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Server error"})
	}

	peaks := make([][]interface{}, 0, len(rows))
	for _, row := range rows {
		peaks = append(peaks, []interface{}{row.StartTime, row.Count})
	}
	return c.JSON(peaks)
}

func GetRevenue(c *fiber.Ctx) error {
	var result struct {
		Total int64
		Count int64
	}
	err := database.DB.Model(&models.Booking{}).
		Where("payment_status = ?", "completed").
		Select("coalesce(sum(amount), 0) as total, count(*) as count").
		Scan(&result).Error
	if err != nil {
		log.Printf("❌ Error computing revenue: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Server error"})
	}

	bookings := result.Count
	if bookings == 0 {
		bookings = 1
	}
	return c.JSON(fiber.Map{
		"totalRevenue": result.Total,
		"avgRevenue":   float64(result.Total) / float64(bookings),
	})
}
