// Package di provides dependency injection factories for creating application components.
package di

import (
	"carbon_backend/internal/platform/externalapi/owid"
	infrahttp "carbon_backend/internal/platform/http"
)

// NewOWIDClient creates a fully configured OWID client with HTTP client.
func NewOWIDClient() *owid.Client {
	cfg := owid.LoadConfig()
	httpClient := infrahttp.NewHTTPClient(cfg.Timeout)
	return owid.NewClient(cfg, httpClient)
}
