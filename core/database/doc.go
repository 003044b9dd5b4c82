// Package database handles database connections and schema inspection.
//
// It provides a wrapper around GORM to configure either a MySQL connection (shared
// deployments) or a SQLite file (a single operator, tests) from the application's
// configuration.
//
// # Connect
//
// Connect opens the connection, sizes the pool for the driver and pings the database
// within the configured timeout. Unique-constraint violations are translated to
// gorm.ErrDuplicatedKey so the store can map them to its own error.
//
// # Schema Inspection
//
// GetTableColumns and MissingColumns let the event store verify that the tables it reads
// exist with the expected columns before any reconciliation runs.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	missing, err := database.MissingColumns(db, "flavors", []string{"id", "name"})
package database
