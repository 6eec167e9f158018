// Package services holds the slot-inventory and reservation logic. The
// sentinel errors below let handlers map domain failures onto HTTP statuses
// without string matching.
package services

import "errors"

// ErrSlotNotFound is returned when a reservation targets a slot id that
// does not exist (or was purged by the rollover sweep).
var ErrSlotNotFound = errors.New("slot not found")

// ErrSlotUnavailable is returned when the slot is already booked, including
// the case where a concurrent reservation claimed it first. Handlers should
// present this as "slot no longer available", not as a server error.
var ErrSlotUnavailable = errors.New("slot already booked")
