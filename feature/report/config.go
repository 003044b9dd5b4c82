package report

// Config holds report settings.
type Config struct {
	// ArchivePrefix is the object key prefix archived reports are stored under.
	ArchivePrefix string `mapstructure:"archive_prefix" default:"empanadas"`
	// RecentLimit is the number of events on the recent events dashboard.
	RecentLimit int `mapstructure:"recent_limit" default:"10"`
}
