package config

// DefaultLocalConfigPath is the project-level config file location.
const DefaultLocalConfigPath = ".specdev/config.json"

// GetDefaults returns the default configuration values
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"templates_dir":       "",
		"check_documents":     false,
		"default_stage":       "post-init",
		"color":               true,
		"history.enabled":     true,
		"history.max_entries": 500,
	}
}
