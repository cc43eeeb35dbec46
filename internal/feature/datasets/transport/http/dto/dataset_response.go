// Package dto defines data transfer objects for the datasets HTTP API.
package dto

// DatasetItem describes one dataset in the list response.
type DatasetItem struct {
	Slug    string `json:"slug"`
	Title   string `json:"title"`
	MinYear int    `json:"min_year"`
}

// SeriesPoint is one (series, year) value in a dataset series response.
type SeriesPoint struct {
	Series string  `json:"series"`
	Year   int     `json:"year"`
	Value  float64 `json:"value"`
}

// SeriesResponse is the body returned by GET /datasets/:slug.
type SeriesResponse struct {
	Slug   string        `json:"slug"`
	Title  string        `json:"title"`
	Points []SeriesPoint `json:"points"`
}
