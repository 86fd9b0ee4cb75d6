package timezone_test

import (
	"testing"
	"time"

	"homestay/shared/timezone"
)

func TestLoad(t *testing.T) {
	loc, err := timezone.Load("Asia/Kolkata")
	if err != nil || loc.String() != "Asia/Kolkata" {
		t.Fatalf("expected Asia/Kolkata, got %v (%v)", loc, err)
	}

	if loc, err = timezone.Load(""); err != nil || loc != time.UTC {
		t.Errorf("expected UTC for an empty name, got %v (%v)", loc, err)
	}

	if loc, err = timezone.Load("Mars/Olympus"); err == nil || loc != time.UTC {
		t.Errorf("expected UTC and an error for an unknown name, got %v (%v)", loc, err)
	}
}

func TestAppLocation(t *testing.T) {
	kolkata, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}

	previous := timezone.GetLocation()
	timezone.SetLocation(kolkata)
	t.Cleanup(func() { timezone.SetLocation(previous) })

	instant := time.Date(2025, 1, 10, 20, 0, 0, 0, time.UTC)

	if got := timezone.Format(instant, "2006-01-02 15:04"); got != "2025-01-11 01:30" {
		t.Errorf("expected 2025-01-11 01:30, got %s", got)
	}

	parsed, err := timezone.Parse("2006-01-02 15:04", "2025-01-11 01:30")
	if err != nil || !parsed.Equal(instant) {
		t.Errorf("expected %v, got %v (%v)", instant, parsed, err)
	}
}

func TestSetClock(t *testing.T) {
	kolkata, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}

	previous := timezone.GetLocation()
	timezone.SetLocation(kolkata)
	t.Cleanup(func() { timezone.SetLocation(previous) })

	// 20:00 UTC on the 10th is already the 11th at the front desk.
	restore := timezone.SetClock(func() time.Time {
		return time.Date(2025, 1, 10, 20, 0, 0, 0, time.UTC)
	})
	defer restore()

	if got := timezone.Today(); !got.Equal(time.Date(2025, 1, 11, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("expected 2025-01-11, got %v", got)
	}

	if got := timezone.Now().Location(); got != kolkata {
		t.Errorf("expected Asia/Kolkata, got %v", got)
	}
}

func TestParseDate(t *testing.T) {
	date, err := timezone.ParseDate("2025-01-10")
	if err != nil {
		t.Fatalf("ParseDate() failed: %v", err)
	}

	if date.Location() != time.UTC || date.Hour() != 0 {
		t.Errorf("expected midnight UTC, got %v", date)
	}

	if timezone.FormatDate(date) != "2025-01-10" {
		t.Errorf("expected round trip to 2025-01-10, got %s", timezone.FormatDate(date))
	}

	if _, err := timezone.ParseDate("10/01/2025"); err == nil {
		t.Error("expected error for non ISO date")
	}

	if timezone.FormatDate(time.Time{}) != "" {
		t.Error("expected empty string for zero date")
	}
}

func TestNights(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		expected int
	}{
		{
			name:     "single night",
			checkIn:  time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
			checkOut: time.Date(2025, 1, 11, 0, 0, 0, 0, time.UTC),
			expected: 1,
		},
		{
			name:     "across month boundary",
			checkIn:  time.Date(2025, 1, 30, 0, 0, 0, 0, time.UTC),
			checkOut: time.Date(2025, 2, 2, 0, 0, 0, 0, time.UTC),
			expected: 3,
		},
		{
			name:     "partial day rounds up",
			checkIn:  time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
			checkOut: time.Date(2025, 1, 11, 6, 0, 0, 0, time.UTC),
			expected: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := timezone.Nights(tt.checkIn, tt.checkOut); got != tt.expected {
				t.Errorf("expected %d nights, got %d", tt.expected, got)
			}
		})
	}
}

func TestToday(t *testing.T) {
	today := timezone.Today()
	if today.Hour() != 0 || today.Minute() != 0 || today.Location() != time.UTC {
		t.Errorf("expected midnight UTC, got %v", today)
	}
}
