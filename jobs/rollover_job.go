package jobs

import (
	"log"
	"time"

	"github.com/rohitpatil04/turf_booking/database"
	"github.com/rohitpatil04/turf_booking/services"
)

// SweepExpiredSlots runs the inventory rollover off the request path, so
// stale holds are reclaimed and old slots purged even on days when nobody
// browses the slot list.
func SweepExpiredSlots() {
	log.Println("Running job: SweepExpiredSlots...")
	today := services.Midnight(time.Now().UTC())
	services.SweepExpired(database.DB, today)
}
