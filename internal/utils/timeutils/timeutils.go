// Package timeutils owns the timestamp convention used across all persisted
// records: civil time at UTC+5:30, serialised as an ISO-8601 string with
// millisecond precision and a literal trailing "Z" (no real offset suffix).
// Existing stored data uses exactly this format, so it must round-trip
// byte-for-byte.
package timeutils

import "time"

const istOffset = 5*time.Hour + 30*time.Minute

// ISO8601Millis is the layout of every persisted createdAt value.
const ISO8601Millis = "2006-01-02T15:04:05.000Z"

// NowIST returns the current instant shifted to IST civil time.
// The returned value is in the UTC location; only the wall clock is shifted,
// matching how timestamps were produced historically.
func NowIST() time.Time {
	return time.Now().UTC().Add(istOffset)
}

// FormatIST serialises t using the persisted timestamp convention.
func FormatIST(t time.Time) string {
	return t.Format(ISO8601Millis)
}

// ParseIST parses a persisted timestamp back into a shifted civil time.
func ParseIST(s string) (time.Time, error) {
	return time.Parse(ISO8601Millis, s)
}

// DayKey returns the calendar-date portion (YYYY-MM-DD) of a persisted
// timestamp string. Timestamps are already IST-shifted, so slicing the date
// prefix yields the IST calendar day.
func DayKey(createdAt string) string {
	if len(createdAt) < 10 {
		return createdAt
	}
	return createdAt[:10]
}
