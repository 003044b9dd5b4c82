// Package config loads the application configuration.
//
// Values come from a .env file, when present, and the process environment.
// Defaults are declared on each section's struct through `default` tags and
// registered with Viper by reflection, so every key can be overridden by an
// environment variable named SECTION_KEY.
//
// # Sections
//
//   - Log: level and format
//   - Database: driver (sqlite or mysql) and connection details
//   - Storage: S3/MinIO credentials and the report bucket
//   - Settlement: validation tolerance and strict mode
//   - Report: archive key prefix and dashboard size
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    return err
//	}
//	db, err := database.Connect(cfg.Database)
package config
