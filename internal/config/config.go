// Package config reads the process environment into a typed value.
// All settings are optional; zero values fall back to built-in defaults.
package config

import "os"

type Config struct {
	Removal RemovalConfig
	Output  OutputConfig
}

type RemovalConfig struct {
	URL string // background removal service, defaults to http://localhost:7000
}

type OutputConfig struct {
	Dir string // base directory for generated sheets
}

func Load() *Config {
	return &Config{
		Removal: RemovalConfig{
			URL: os.Getenv("REMOVAL_SERVICE_URL"),
		},
		Output: OutputConfig{
			Dir: envString("SHEET_OUTPUT_DIR", "output"),
		},
	}
}

// envString reads an environment variable with a fallback for unset or
// empty values.
func envString(key, defaultVal string) string {
	s := os.Getenv(key)
	if s == "" {
		return defaultVal
	}
	return s
}
