package models

import (
	"time"

	"github.com/google/uuid"
)

// Booking is the immutable record of a confirmed, paid reservation. Slot
// date and times are copied at creation so the record survives the weekly
// slot purge; the slot association carries no database constraint for the
// same reason. slot_id is unique: a slot can be claimed by one booking only.
type Booking struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"_id"`
	BookingID     string    `gorm:"size:30;not null;unique" json:"bookingId"`
	UserID        uuid.UUID `gorm:"not null" json:"user"`
	SlotID        uuid.UUID `gorm:"not null;unique" json:"slot"`
	Date          time.Time `gorm:"not null" json:"date"`
	StartTime     string    `gorm:"size:20;not null" json:"startTime"`
	EndTime       string    `gorm:"size:20;not null" json:"endTime"`
	Amount        int       `gorm:"not null" json:"amount"`
	PaymentStatus string    `gorm:"size:20;not null;default:'pending'" json:"paymentStatus"`
	PaymentID     string    `gorm:"size:255" json:"paymentId"`

	User User `gorm:"foreignkey:UserID" json:"-"`
	Slot Slot `gorm:"foreignkey:SlotID;constraint:-" json:"-"`

	CreatedAt time.Time `json:"createdAt"`
}
