// Package handler provides the HTTP handlers for the datasets feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"carbon_backend/internal/api"
	"carbon_backend/internal/feature/datasets/domain/entity"
	"carbon_backend/internal/feature/datasets/transport/http/dto"
	"carbon_backend/internal/feature/datasets/usecase"
)

// DatasetUsecase defines the usecase for the public emissions datasets.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type DatasetUsecase interface {
	List(ctx context.Context) ([]entity.Dataset, error)
	Series(ctx context.Context, slug string) ([]entity.EmissionPoint, error)
}

// DatasetHandler handles HTTP requests for the public emissions datasets.
type DatasetHandler struct {
	uc DatasetUsecase
}

// NewDatasetHandler creates a new DatasetHandler instance.
func NewDatasetHandler(uc DatasetUsecase) *DatasetHandler {
	return &DatasetHandler{uc: uc}
}

// List handles GET /datasets and returns the dataset registry.
func (h *DatasetHandler) List(c *gin.Context) {
	datasets, err := h.uc.List(c.Request.Context())
	if err != nil {
		slog.Error("dataset list failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal error"})
		return
	}
	out := make([]dto.DatasetItem, 0, len(datasets))
	for _, d := range datasets {
		out = append(out, dto.DatasetItem{Slug: d.Slug, Title: d.Title, MinYear: d.MinYear})
	}
	c.JSON(http.StatusOK, out)
}

// Series handles GET /datasets/:slug and returns one dataset's chart points.
func (h *DatasetHandler) Series(c *gin.Context) {
	slug := c.Param("slug")

	points, err := h.uc.Series(c.Request.Context(), slug)
	if err != nil {
		if errors.Is(err, usecase.ErrDatasetNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "dataset not found"})
			return
		}
		slog.Error("dataset series failed", "error", err, "dataset", slug)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal error"})
		return
	}

	d, _ := usecase.Lookup(slug)
	out := dto.SeriesResponse{
		Slug:   d.Slug,
		Title:  d.Title,
		Points: make([]dto.SeriesPoint, 0, len(points)),
	}
	for _, p := range points {
		out.Points = append(out.Points, dto.SeriesPoint{Series: p.Series, Year: p.Year, Value: p.Value})
	}
	c.JSON(http.StatusOK, out)
}
