// Package entity defines the domain models for the datasets feature.
package entity

// Dataset describes one public emissions dataset served for charting.
type Dataset struct {
	// Slug identifies the dataset in the API.
	Slug string
	// Title is the human-readable chart title.
	Title string
	// GrapherSlug is the Our World in Data grapher identifier the
	// dataset is ingested from.
	GrapherSlug string
	// MinYear is the inclusive lower bound applied when serving the
	// series; earlier years are sparse and only clutter the chart.
	MinYear int
}

// EmissionPoint is one (series, year) value of a dataset. For
// single-metric datasets the series is the country/entity; for
// multi-metric datasets each metric column becomes its own series
// (the long-format melt the charts expect).
type EmissionPoint struct {
	ID      uint    `gorm:"primaryKey"`
	Dataset string  `gorm:"size:64;not null;uniqueIndex:uidx_point_dataset_series_year,priority:1"`
	Series  string  `gorm:"size:255;not null;uniqueIndex:uidx_point_dataset_series_year,priority:2"`
	Year    int     `gorm:"not null;uniqueIndex:uidx_point_dataset_series_year,priority:3"`
	Value   float64 `gorm:"not null"`
}

// TableName pins the storage table name.
func (EmissionPoint) TableName() string {
	return "emission_points"
}
