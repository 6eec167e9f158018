package services

import (
	"log"
	"time"

	"github.com/rohitpatil04/turf_booking/models"
	"gorm.io/gorm"
)

const retentionDays = 7

// SweepExpired reclaims booked slots dated before yesterday, then purges
// slots older than the retention window. It runs before every inventory
// read and nightly from the cron job; running it twice is a no-op.
// Failures are logged and never block the read path.
func SweepExpired(db *gorm.DB, today time.Time) {
	yesterday := today.AddDate(0, 0, -1)

	result := db.Model(&models.Slot{}).
		Where("date < ? AND is_booked = ?", yesterday, true).
		Updates(map[string]interface{}{
			"is_booked":    false,
			"booked_by_id": nil,
			"booking_ref":  nil,
			"last_updated": time.Now().UTC(),
		})
	if result.Error != nil {
		log.Printf("🔥 Failed to reclaim expired slots: %v", result.Error)
	} else if result.RowsAffected > 0 {
		log.Printf("♻️ Reset %d old booked slots to available", result.RowsAffected)
	}

	weekAgo := today.AddDate(0, 0, -retentionDays)
	if err := db.Where("date < ?", weekAgo).Delete(&models.Slot{}).Error; err != nil {
		log.Printf("🔥 Failed to purge slots past retention: %v", err)
	}
}
