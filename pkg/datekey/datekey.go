// Package datekey formats calendar days as history keys.
//
// Keys use the device-local calendar on purpose: "today" must match the
// user's wall clock, not UTC.
package datekey

import "time"

// Layout is the calendar-day key format, e.g. "2025-12-01".
const Layout = "2006-01-02"

// For returns the key for the local calendar day containing t.
func For(t time.Time) string {
	return t.Local().Format(Layout)
}

// Today returns the key for the current local calendar day.
func Today() string {
	return For(time.Now())
}

// Parse converts a key back into a (local) time at midnight.
func Parse(key string) (time.Time, error) {
	return time.ParseInLocation(Layout, key, time.Local)
}

// Valid reports whether key is a well-formed calendar-day key.
func Valid(key string) bool {
	_, err := Parse(key)
	return err == nil
}

// Window returns the windowDays keys ending at asOf inclusive: asOf,
// asOf-1, ..., asOf-(windowDays-1). A malformed asOf or non-positive
// window yields an empty slice.
func Window(windowDays int, asOf string) []string {
	if windowDays <= 0 {
		return nil
	}
	end, err := Parse(asOf)
	if err != nil {
		return nil
	}
	keys := make([]string, 0, windowDays)
	for i := 0; i < windowDays; i++ {
		keys = append(keys, For(end.AddDate(0, 0, -i)))
	}
	return keys
}

// SameDay reports whether a and b name the same calendar day.
func SameDay(a, b string) bool {
	return a != "" && a == b
}
