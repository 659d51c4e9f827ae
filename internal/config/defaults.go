package config

// GetDefaults returns the default configuration values applied before any
// config file or environment variable is read.
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"schema_file":            "",
		"skip_schema_validation": false,
		"show_progress":          true,
	}
}
