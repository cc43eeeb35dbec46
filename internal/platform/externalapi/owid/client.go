package owid

import (
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"carbon_backend/internal/feature/datasets/domain/entity"
	"carbon_backend/internal/feature/datasets/usecase"
)

// Client fetches emissions datasets from the OWID grapher CSV endpoints.
type Client struct {
	cfg    Config
	client *http.Client
}

// Compile-time check that Client implements SourceRepository.
var _ usecase.SourceRepository = (*Client)(nil)

// NewClient creates a new Client with the given config and HTTP client.
func NewClient(cfg Config, client *http.Client) *Client {
	return &Client{cfg: cfg, client: client}
}

// FetchDataset downloads one grapher CSV and converts it to emission points.
//
// The grapher CSV layout is Entity,Code,Year,<metric columns...>. A
// single-metric CSV melts to one series per entity; a multi-metric CSV
// melts to one series per metric column (long format for stacked or
// multi-line charts), restricted to the World entity so the series keys
// stay unique per (dataset, series, year).
func (c *Client) FetchDataset(ctx context.Context, d entity.Dataset) ([]entity.EmissionPoint, error) {
	u := fmt.Sprintf("%s/grapher/%s.csv", c.cfg.BaseURL, d.GrapherSlug)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	res, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("owid http %d for %s", res.StatusCode, d.GrapherSlug)
	}

	r := csv.NewReader(res.Body)
	r.FieldsPerRecord = -1 // grapher CSVs occasionally pad trailing columns

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	if len(header) < 4 || header[0] != "Entity" || header[2] != "Year" {
		return nil, fmt.Errorf("unexpected csv header %v for %s", header, d.GrapherSlug)
	}
	metrics := header[3:]
	multiMetric := len(metrics) > 1

	var points []entity.EmissionPoint
	for {
		rec, err := r.Read()
		if err != nil {
			break // io.EOF or a malformed trailing line ends the stream
		}
		if len(rec) < 4 {
			continue
		}

		year, err := strconv.Atoi(rec[2])
		if err != nil {
			continue
		}
		if multiMetric && rec[0] != "World" {
			continue
		}

		for i, metric := range metrics {
			col := 3 + i
			if col >= len(rec) || rec[col] == "" {
				continue
			}
			value, err := strconv.ParseFloat(rec[col], 64)
			if err != nil {
				continue
			}
			series := rec[0]
			if multiMetric {
				series = metric
			}
			points = append(points, entity.EmissionPoint{
				Dataset: d.Slug,
				Series:  series,
				Year:    year,
				Value:   value,
			})
		}
	}

	return points, nil
}
