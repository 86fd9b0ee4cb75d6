package timezone

import (
	"fmt"
	"math"
	"time"

	"homestay/shared/constant"
)

// ParseDate parses a calendar date (YYYY-MM-DD) as midnight UTC. Stay dates are calendar days,
// so they are never shifted into the application timezone.
func ParseDate(value string) (time.Time, error) {
	date, err := time.Parse(constant.DateOnlyFormat, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", value, err)
	}

	return date, nil
}

// FormatDate renders a calendar date as YYYY-MM-DD.
func FormatDate(date time.Time) string {
	if date.IsZero() {
		return constant.Empty
	}

	return date.UTC().Format(constant.DateOnlyFormat)
}

// Today returns the current calendar date of the application timezone as midnight UTC.
func Today() time.Time {
	now := Now()

	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// Nights returns the ceiling of the day difference between two dates.
func Nights(checkIn, checkOut time.Time) int {
	hours := checkOut.Sub(checkIn).Hours()

	return int(math.Ceil(hours / constant.HoursPerDay))
}
