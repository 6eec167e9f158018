package services

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rohitpatil04/turf_booking/models"
	"github.com/rohitpatil04/turf_booking/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const bookingIDAttempts = 3

// ReserveSlot atomically transitions a slot from available to booked and
// writes the ledger entry, in one transaction. The availability check is a
// conditional UPDATE on is_booked, so under concurrent attempts exactly one
// caller sees a row affected and every other caller gets
// ErrSlotUnavailable. A booking-id collision rolls the transaction back and
// retries with a fresh id, bounded at bookingIDAttempts.
func ReserveSlot(db *gorm.DB, slotID, userID uuid.UUID, paymentID string) (*models.Booking, *models.Slot, error) {
	var lastErr error
	for attempt := 0; attempt < bookingIDAttempts; attempt++ {
		bookingID := utils.GenerateBookingID()

		booking, slot, err := reserveOnce(db, slotID, userID, paymentID, bookingID)
		if err == nil {
			return booking, slot, nil
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			lastErr = err
			continue
		}
		return nil, nil, err
	}
	return nil, nil, lastErr
}

func reserveOnce(db *gorm.DB, slotID, userID uuid.UUID, paymentID, bookingID string) (*models.Booking, *models.Slot, error) {
	var booking models.Booking
	var slot models.Slot

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&slot, "id = ?", slotID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrSlotNotFound
			}
			return err
		}
		if slot.IsBooked {
			return ErrSlotUnavailable
		}

		now := time.Now().UTC()
		claim := tx.Model(&models.Slot{}).
			Where("id = ? AND is_booked = ?", slotID, false).
			Updates(map[string]interface{}{
				"is_booked":    true,
				"booked_by_id": userID,
				"booking_ref":  bookingID,
				"last_updated": now,
			})
		if claim.Error != nil {
			return claim.Error
		}
		if claim.RowsAffected == 0 {
			// Another request claimed the slot between our read and write.
			return ErrSlotUnavailable
		}

		booking = models.Booking{
			BookingID:     bookingID,
			UserID:        userID,
			SlotID:        slot.ID,
			Date:          slot.Date,
			StartTime:     slot.StartTime,
			EndTime:       slot.EndTime,
			Amount:        slot.Price,
			PaymentStatus: "completed",
			PaymentID:     paymentID,
		}
		if err := tx.Create(&booking).Error; err != nil {
			return err
		}

		slot.IsBooked = true
		slot.BookedByID = &userID
		slot.BookingRef = &bookingID
		slot.LastUpdated = now
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return &booking, &slot, nil
}
