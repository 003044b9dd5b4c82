package database_test

import (
	"testing"

	"empanada-tracker/core/database"

	"github.com/stretchr/testify/assert"
)

func TestConfig_IsValidDriver(t *testing.T) {
	tests := []struct {
		name   string
		driver string
		want   bool
	}{
		{"MySQL", database.DriverMySQL, true},
		{"SQLite", database.DriverSQLite, true},
		{"Postgres", "postgres", false},
		{"Empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := database.Config{Driver: tt.driver}
			assert.Equal(t, tt.want, c.IsValidDriver())
		})
	}
}
