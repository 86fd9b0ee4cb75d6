package postgres

import (
	"testing"

	"homestay/config"

	"github.com/stretchr/testify/assert"
)

func TestBuildDSN(t *testing.T) {
	tests := []struct {
		name     string
		prefix   string
		appTZ    string
		nodeTZ   string
		expected string
	}{
		{
			name:     "node time zone wins",
			appTZ:    "UTC",
			nodeTZ:   "Asia/Kolkata",
			expected: "postgres://frontdesk:p%40ss@db:5432/homestay?sslmode=disable&timezone=Asia%2FKolkata",
		},
		{
			name:     "falls back to app time zone",
			appTZ:    "Asia/Kolkata",
			expected: "postgres://frontdesk:p%40ss@db:5432/homestay?sslmode=disable&timezone=Asia%2FKolkata",
		},
		{
			name:     "prefix and no time zone",
			prefix:   "test_",
			expected: "postgres://frontdesk:p%40ss@db:5432/test_homestay?sslmode=disable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{}
			cfg.App.Timezone = tt.appTZ
			cfg.DB.Postgres.Prefix = tt.prefix

			e := endpoint{
				Host:     "db",
				Port:     "5432",
				Username: "frontdesk",
				Password: "p@ss",
				Name:     "homestay",
				Timezone: tt.nodeTZ,
				SSLMode:  "disable",
			}

			assert.Equal(t, tt.expected, buildDSN(cfg, e))
		})
	}
}

func TestConnectionClose(t *testing.T) {
	assert.NotPanics(t, func() {
		(&Connection{}).Close()
	})
}
