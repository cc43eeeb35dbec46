// Package handler provides the HTTP handlers for the report feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"carbon_backend/internal/api"
	"carbon_backend/internal/feature/report/transport/http/dto"
	"carbon_backend/internal/feature/report/usecase"
	jwtmw "carbon_backend/internal/platform/jwt"
)

// ReportUsecase defines the usecase for period reporting.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type ReportUsecase interface {
	Report(ctx context.Context, accountID uint, period usecase.Period) ([]usecase.Row, error)
}

// ReportHandler handles HTTP requests for period reports.
type ReportHandler struct {
	uc ReportUsecase
}

// NewReportHandler creates a new ReportHandler instance.
func NewReportHandler(uc ReportUsecase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Get handles GET /reports/:period.
// An empty window is a normal result: 200 with an empty rows array.
//
// Example:
// GET /reports/weekly
func (h *ReportHandler) Get(c *gin.Context) {
	accountID := c.GetUint(jwtmw.ContextAccountID)

	period, err := usecase.ParsePeriod(c.Param("period"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "period must be one of daily, weekly, monthly, yearly"})
		return
	}

	rows, err := h.uc.Report(c.Request.Context(), accountID, period)
	if err != nil {
		if errors.Is(err, usecase.ErrUnknownPeriod) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
			return
		}
		slog.Error("report failed", "error", err, "account_id", accountID, "period", period)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal error"})
		return
	}

	out := dto.ReportResponse{
		Period:      string(period),
		ThresholdKg: usecase.DailyThresholdKg,
		Rows:        make([]dto.ReportRow, 0, len(rows)),
	}
	for _, r := range rows {
		out.Rows = append(out.Rows, dto.ReportRow{
			Date:           r.Date.UTC().Format("2006-01-02"),
			ElectricityKWh: r.ElectricityKWh,
			VehicleType:    string(r.VehicleType),
			DistanceKm:     r.DistanceKm,
			DietType:       string(r.DietType),
			Meals:          r.Meals,
			GarbageKg:      r.GarbageKg,
			EstimateKg:     r.EstimateKg,
			BelowKg:        r.BelowKg,
			AboveKg:        r.AboveKg,
		})
	}

	c.JSON(http.StatusOK, out)
}
