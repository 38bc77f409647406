package config

// Default paths
const (
	// DefaultDatabasePath is the default path for the imported books database
	DefaultDatabasePath = "./highlights.db"

	// DefaultExportDir is where exported markdown files go by default
	DefaultExportDir = "./markdown"
)
