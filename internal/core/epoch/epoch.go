// Package epoch converts raw epoch columns into UTC timestamps.
// Source feeds are inconsistent about units: most columns carry epoch
// milliseconds, older snapshots carry seconds, and both appear as
// integers or floats depending on the exporting tool
package epoch

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// msThreshold splits seconds from milliseconds. Values above it are
// far beyond any plausible present-day epoch-seconds value
const msThreshold = 1e11

// ToTime parses a raw epoch string and returns the UTC timestamp.
// Empty, non-numeric, non-finite, and non-positive values report ok=false
func ToTime(raw string) (time.Time, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return time.Time{}, false
	}
	// ParseFloat accepts "NaN" and "Inf" and int64 conversion of either
	// is unspecified, so treat them as absent
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return time.Time{}, false
	}
	if f <= 0 {
		return time.Time{}, false
	}
	return FromFloat(f), true
}

// FromFloat converts a positive epoch value in seconds or milliseconds
func FromFloat(f float64) time.Time {
	if f > msThreshold {
		ms := int64(f)
		return time.UnixMilli(ms).UTC()
	}
	sec := int64(f)
	nsec := int64((f - float64(sec)) * float64(time.Second))
	return time.Unix(sec, nsec).UTC()
}
