package timezone

import (
	"fmt"
	"sync"
	"time"

	"homestay/config"

	"github.com/rs/zerolog/log"
)

var (
	appLocation *time.Location
	clock       = time.Now
	mu          sync.RWMutex
)

func init() {
	loc, err := Load(config.Get().App.Timezone)
	if err != nil {
		log.Error().Err(err).Msg("Failed to load timezone, falling back to UTC")
	}

	SetLocation(loc)

	log.Info().Str("location", loc.String()).Msg("Application timezone initialized")
}

// Load resolves an IANA name such as Asia/Kolkata. An empty name means UTC; an unknown one
// returns UTC together with the error.
func Load(name string) (*time.Location, error) {
	if name == "" {
		return time.UTC, nil
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC, fmt.Errorf("failed to load timezone %q: %w", name, err)
	}

	return loc, nil
}

func SetLocation(loc *time.Location) {
	mu.Lock()
	defer mu.Unlock()

	appLocation = loc
}

// SetClock replaces the wall clock, mostly so night audits and today's arrivals can be tested on a
// fixed date. The returned func restores the previous clock.
func SetClock(now func() time.Time) (restore func()) {
	mu.Lock()
	defer mu.Unlock()

	previous := clock
	clock = now

	return func() {
		mu.Lock()
		defer mu.Unlock()

		clock = previous
	}
}

// Now returns the current time in the application timezone
func Now() time.Time {
	mu.RLock()
	defer mu.RUnlock()

	return clock().In(location())
}

// ToAppTime converts a time to the application timezone
func ToAppTime(t time.Time) time.Time {
	return t.In(GetLocation())
}

func GetLocation() *time.Location {
	mu.RLock()
	defer mu.RUnlock()

	return location()
}

// Parse parses a time string in the application timezone
func Parse(layout, value string) (time.Time, error) {
	return time.ParseInLocation(layout, value, GetLocation()) //nolint:wrapcheck
}

func Format(t time.Time, layout string) string {
	return ToAppTime(t).Format(layout)
}

func location() *time.Location {
	if appLocation == nil {
		return time.UTC
	}

	return appLocation
}
