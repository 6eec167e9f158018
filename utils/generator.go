package utils

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	mrand "math/rand"
	"time"
)

const bookingSuffixLength = 9
const letterBytes = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateBookingID produces a human-readable booking identifier of the
// form BK<unix-millis><random suffix>. Uniqueness is backed by the unique
// constraint on bookings.booking_id; callers retry on collision.
func GenerateBookingID() string {
	seededRand := mrand.New(mrand.NewSource(time.Now().UnixNano()))

	b := make([]byte, bookingSuffixLength)
	for i := range b {
		b[i] = letterBytes[seededRand.Intn(len(letterBytes))]
	}
	return fmt.Sprintf("BK%d%s", time.Now().UnixMilli(), string(b))
}

// GenerateResetToken returns a password-reset token and the sha256 hash
// stored server-side. Only the hash ever touches the database, so a leaked
// user table cannot be replayed as reset links.
func GenerateResetToken() (token string, hashed string, err error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", "", err
	}
	token = hex.EncodeToString(buf)

	sum := sha256.Sum256([]byte(token))
	return token, hex.EncodeToString(sum[:]), nil
}

// HashResetToken recomputes the stored form of a reset token supplied by a
// client.
func HashResetToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
