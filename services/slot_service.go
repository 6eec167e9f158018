package services

import (
	"fmt"
	"log"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/rohitpatil04/turf_booking/models"
	"gorm.io/gorm"
)

const (
	openingHour  = 8
	closingHour  = 22
	slotDuration = 1
)

// FormatTo12Hour converts a zero-padded "HH:MM" time into its 12-hour
// display form: "00:00" -> "12:00 AM", "12:00" -> "12:00 PM", "13:30" ->
// "1:30 PM".
func FormatTo12Hour(time24 string) string {
	if time24 == "" || time24 == "00:00" {
		return "12:00 AM"
	}
	parts := strings.Split(time24, ":")
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return time24
	}
	minutes := "00"
	if len(parts) > 1 {
		minutes = parts[1]
	}
	ampm := "AM"
	if hour >= 12 {
		ampm = "PM"
	}
	hour12 := hour % 12
	if hour12 == 0 {
		hour12 = 12
	}
	return fmt.Sprintf("%d:%s %s", hour12, minutes, ampm)
}

// priceForHour applies the time-of-day pricing tiers: morning base rate,
// afternoon (12-4 PM), evening (4-8 PM), night (8-10 PM).
func priceForHour(hour int) int {
	price := 800
	if hour >= 12 && hour < 16 {
		price = 1000
	}
	if hour >= 16 && hour < 20 {
		price = 1200
	}
	if hour >= 20 {
		price = 1500
	}
	return price
}

// Midnight truncates a time to its UTC date.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// buildDailySlots synthesizes the full one-hour slot set for a date,
// 08:00 through 22:00.
func buildDailySlots(date time.Time) []models.Slot {
	slots := make([]models.Slot, 0, (closingHour-openingHour)/slotDuration)
	now := time.Now().UTC()
	for hour := openingHour; hour < closingHour; hour += slotDuration {
		startTime24 := fmt.Sprintf("%02d:00", hour)
		endTime24 := fmt.Sprintf("%02d:00", hour+slotDuration)

		slots = append(slots, models.Slot{
			Date:        date,
			StartTime:   FormatTo12Hour(startTime24),
			EndTime:     FormatTo12Hour(endTime24),
			StartTime24: startTime24,
			EndTime24:   endTime24,
			Price:       priceForHour(hour),
			IsBooked:    false,
			LastUpdated: now,
		})
	}
	return slots
}

// RegenerateSlots inserts a fresh daily slot set for the date. The caller
// is responsible for clearing any existing slots first.
func RegenerateSlots(db *gorm.DB, date time.Time) ([]models.Slot, error) {
	slots := buildDailySlots(date)
	if err := db.Create(&slots).Error; err != nil {
		return nil, err
	}
	log.Printf("✅ Created %d fresh 1-hour slots (%d:00 to %d:00)", len(slots), openingHour, closingHour)
	return slots, nil
}

// staleLayout reports whether a sample slot was generated under the retired
// 2-hour layout. Kept deliberately narrow: it guards against exactly that
// one historical shape and nothing else.
func staleLayout(sample models.Slot) bool {
	start, err := strconv.Atoi(strings.SplitN(sample.StartTime24, ":", 2)[0])
	if err != nil {
		return false
	}
	end, err := strconv.Atoi(strings.SplitN(sample.EndTime24, ":", 2)[0])
	if err != nil {
		return false
	}
	return end-start == 2
}

// TodaySlots runs the rollover sweep, materializes today's inventory when
// missing or stale, and returns the still-available slots sorted by their
// 24-hour start time. Read failures fall through to regeneration rather
// than surfacing to the caller.
func TodaySlots(db *gorm.DB) ([]models.Slot, error) {
	today := Midnight(time.Now().UTC())
	tomorrow := today.AddDate(0, 0, 1)

	SweepExpired(db, today)

	var slots []models.Slot
	if err := db.Where("date >= ? AND date < ?", today, tomorrow).Find(&slots).Error; err != nil {
		log.Printf("🔥 Failed to load today's slots: %v", err)
		slots = nil
	}
	log.Printf("📅 Found %d slots for %s", len(slots), today.Format("2006-01-02"))

	if len(slots) == 0 {
		log.Println("🆕 Creating FRESH 1-hour slots for today...")
		created, err := RegenerateSlots(db, today)
		if err != nil {
			return nil, err
		}
		slots = created
	} else if staleLayout(slots[0]) {
		log.Println("⚠️ Found OLD 2-hour slots, deleting and creating fresh 1-hour slots...")
		if err := db.Where("date >= ? AND date < ?", today, tomorrow).Delete(&models.Slot{}).Error; err != nil {
			return nil, err
		}
		created, err := RegenerateSlots(db, today)
		if err != nil {
			return nil, err
		}
		slots = created
	}

	available := make([]models.Slot, 0, len(slots))
	for _, slot := range slots {
		if !slot.IsBooked {
			available = append(available, slot)
		}
	}
	sort.Slice(available, func(i, j int) bool {
		return available[i].StartTime24 < available[j].StartTime24
	})
	return available, nil
}
