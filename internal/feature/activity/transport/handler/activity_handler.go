// Package handler provides the HTTP handlers for the activity feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"carbon_backend/internal/api"
	"carbon_backend/internal/feature/activity/domain/entity"
	"carbon_backend/internal/feature/activity/transport/http/dto"
	"carbon_backend/internal/feature/activity/usecase"
	jwtmw "carbon_backend/internal/platform/jwt"
)

// ActivityUsecase defines the usecase for daily submissions.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type ActivityUsecase interface {
	Submit(ctx context.Context, accountID uint, in usecase.SubmitInput) error
}

// ActivityHandler handles HTTP requests for daily activity submissions.
type ActivityHandler struct {
	uc ActivityUsecase
}

// NewActivityHandler creates a new ActivityHandler instance.
func NewActivityHandler(uc ActivityUsecase) *ActivityHandler {
	return &ActivityHandler{uc: uc}
}

// Submit handles POST /activities.
// - 400 on validation errors
// - 409 when today's record already exists
// - 201 on success
func (h *ActivityHandler) Submit(c *gin.Context) {
	accountID := c.GetUint(jwtmw.ContextAccountID)

	var req dto.SubmitReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("activity validation failed", "error", err, "account_id", accountID)
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	in := usecase.SubmitInput{
		ElectricityKWh: req.ElectricityKWh,
		VehicleType:    entity.VehicleType(req.VehicleType),
		DistanceKm:     req.DistanceKm,
		DietType:       entity.DietType(req.DietType),
		Meals:          req.Meals,
		GarbageKg:      req.GarbageKg,
	}
	if err := h.uc.Submit(c.Request.Context(), accountID, in); err != nil {
		switch {
		case errors.Is(err, usecase.ErrAlreadySubmittedToday):
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: "already submitted for today"})
		case errors.Is(err, usecase.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		default:
			slog.Error("activity submit failed", "error", err, "account_id", accountID)
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal error"})
		}
		return
	}

	slog.Info("activity submitted", "account_id", accountID)
	c.JSON(http.StatusCreated, api.MessageResponse{Message: "ok"})
}
