package store

import (
	"context"
	"fmt"
	"sort"

	"empanada-tracker/core/database"

	"gorm.io/gorm"
)

// Store reads and appends event rows through a GORM handle.
type Store struct {
	db *gorm.DB
}

// New creates a store on an open connection.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// AutoMigrate creates any missing table. Intended for sqlite files and tests.
func (s *Store) AutoMigrate(ctx context.Context) error {
	err := s.db.WithContext(ctx).AutoMigrate(
		&flavorRow{},
		&marketRow{},
		&marketEventRow{},
		&wrappedRow{},
		&bakedRow{},
		&allocationRow{},
		&tapasRow{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

// SchemaIssue names the columns a table is missing.
type SchemaIssue struct {
	Table   string   `json:"table"`
	Missing []string `json:"missing"`
}

// VerifySchema checks every table the store reads for its expected columns.
// It returns one issue per table with missing columns, ordered by table name.
func (s *Store) VerifySchema(ctx context.Context) ([]SchemaIssue, error) {
	tables := make([]string, 0, len(expectedColumns))
	for table := range expectedColumns {
		tables = append(tables, table)
	}
	sort.Strings(tables)

	var issues []SchemaIssue
	for _, table := range tables {
		missing, err := database.MissingColumns(s.db.WithContext(ctx), table, expectedColumns[table])
		if err != nil {
			return nil, err
		}
		if len(missing) > 0 {
			issues = append(issues, SchemaIssue{Table: table, Missing: missing})
		}
	}
	return issues, nil
}
