package game

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"
)

const dayLayout = "2006-01-02"

// DateKey is the UTC calendar day of t, e.g. "2026-10-18".
func DateKey(t time.Time) string {
	return t.UTC().Format(dayLayout)
}

// DailyIndex picks the answer slot for the day containing date. Every caller
// with the same salt gets the same slot in [0, n); n <= 0 yields 0.
func DailyIndex(date time.Time, salt string, n int) int {
	if n <= 0 {
		return 0
	}
	day := DateKey(date)
	mac := hmac.New(sha256.New, []byte(salt))
	mac.Write([]byte(day))
	digest := mac.Sum(nil)
	return int(binary.BigEndian.Uint64(digest[:8]) % uint64(n))
}
