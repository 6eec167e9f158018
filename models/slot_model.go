package models

import (
	"time"

	"github.com/google/uuid"
)

// Slot is one bookable one-hour window for a given date. Times are stored
// twice: a 12-hour display form and a zero-padded 24-hour form used for
// sorting and layout checks.
type Slot struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"_id"`
	Date        time.Time  `gorm:"not null;index:idx_slots_date_booked" json:"date"`
	StartTime   string     `gorm:"size:20;not null" json:"startTime"`
	EndTime     string     `gorm:"size:20;not null" json:"endTime"`
	StartTime24 string     `gorm:"size:5;not null" json:"startTime24"`
	EndTime24   string     `gorm:"size:5;not null" json:"endTime24"`
	Price       int        `gorm:"not null;default:800" json:"price"`
	IsBooked    bool       `gorm:"not null;default:false;index:idx_slots_date_booked" json:"isBooked"`
	BookedByID  *uuid.UUID `json:"bookedBy,omitempty"`
	BookingRef  *string    `gorm:"size:30" json:"bookingId,omitempty"`
	LastUpdated time.Time  `json:"lastUpdated"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
