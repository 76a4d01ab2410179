// Package timeslot normalizes wall-clock times to the 10-minute grid the
// record store accepts.
package timeslot

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Round snaps (hour, minute) to the nearest 10-minute slot. Minutes of 55 and
// above round up and carry into the hour; 23:55-23:59 wrap to 00:00.
func Round(hour, minute int) (int, int) {
	rounded := (minute + 5) / 10 * 10
	if rounded == 60 {
		rounded = 0
		hour = (hour + 1) % 24
	}
	return hour, rounded
}

// Format renders an (hour, minute) pair as zero-padded HH:MM.
func Format(hour, minute int) string {
	return fmt.Sprintf("%02d:%02d", hour, minute)
}

// RoundClock rounds a time.Time to its HH:MM slot.
func RoundClock(t time.Time) string {
	h, m := Round(t.Hour(), t.Minute())
	return Format(h, m)
}

// Normalize parses an HH:MM string and returns it snapped to the grid.
// Malformed input is the caller's validation failure, reported as-is.
func Normalize(v string) (string, error) {
	parts := strings.SplitN(v, ":", 2)
	if len(parts) != 2 {
		return "", fmt.Errorf("malformed time %q", v)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return "", fmt.Errorf("malformed time %q", v)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return "", fmt.Errorf("malformed time %q", v)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return "", fmt.Errorf("time %q out of range", v)
	}
	h, m := Round(hour, minute)
	return Format(h, m), nil
}
