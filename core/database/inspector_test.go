package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetTableColumns(t *testing.T) {
	// Setup In-Memory DB
	cfg := Config{
		Driver: DriverSQLite,
		Name:   ":memory:",
	}
	db, err := Connect(cfg)
	require.NoError(t, err)

	err = db.Exec("CREATE TABLE empanada_baked (id INTEGER PRIMARY KEY, date DATETIME, flavor_id INTEGER, dozens NUMERIC)").Error
	require.NoError(t, err)

	columns, err := GetTableColumns(db, "empanada_baked")
	assert.NoError(t, err)
	assert.Len(t, columns, 4)

	colMap := make(map[string]string)
	for _, col := range columns {
		colMap[col.Field] = col.Type
	}

	assert.Equal(t, "integer", colMap["id"])
	assert.Equal(t, "datetime", colMap["date"])
	assert.Equal(t, "numeric", colMap["dozens"])

	// PRAGMA table_info returns an empty result for a non-existent table
	cols, err := GetTableColumns(db, "non_existent")
	assert.NoError(t, err)
	assert.Empty(t, cols)
}

func TestMissingColumns(t *testing.T) {
	db, err := Connect(Config{Driver: DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, db.Exec("CREATE TABLE flavors (id INTEGER PRIMARY KEY, name TEXT)").Error)

	missing, err := MissingColumns(db, "flavors", []string{"id", "name"})
	assert.NoError(t, err)
	assert.Empty(t, missing)

	missing, err = MissingColumns(db, "flavors", []string{"id", "name", "color"})
	assert.NoError(t, err)
	assert.Equal(t, []string{"color"}, missing)

	missing, err = MissingColumns(db, "markets", []string{"id", "name"})
	assert.NoError(t, err)
	assert.Equal(t, []string{"id", "name"}, missing)
}
