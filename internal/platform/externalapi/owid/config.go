// Package owid provides a client for the Our World in Data grapher CSV endpoints.
package owid

import (
	"os"
	"time"
)

// defaultBaseURL is the public OWID site; grapher CSVs live under /grapher/<slug>.csv.
const defaultBaseURL = "https://ourworldindata.org"

// Config holds configuration for the OWID client.
type Config struct {
	BaseURL string        // Base URL for the grapher endpoints
	Timeout time.Duration // HTTP request timeout
}

// LoadConfig loads OWID configuration from environment variables.
// The grapher CSVs are public, so no API key is involved.
func LoadConfig() Config {
	base := os.Getenv("OWID_BASE_URL")
	if base == "" {
		base = defaultBaseURL
	}
	return Config{
		BaseURL: base,
		Timeout: 30 * time.Second,
	}
}
