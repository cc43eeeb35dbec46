package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"carbon_backend/internal/feature/activity/usecase"
	jwtmw "carbon_backend/internal/platform/jwt"
)

// mockActivityUsecase is a mock implementation of the ActivityUsecase interface.
type mockActivityUsecase struct {
	SubmitFunc func(ctx context.Context, accountID uint, in usecase.SubmitInput) error
}

// Submit is the mock implementation of the Submit method.
func (m *mockActivityUsecase) Submit(ctx context.Context, accountID uint, in usecase.SubmitInput) error {
	if m.SubmitFunc != nil {
		return m.SubmitFunc(ctx, accountID, in)
	}
	return nil // Default: success
}

func validBody() gin.H {
	return gin.H{
		"electricity_kwh": 10.0,
		"vehicle_type":    "two-wheeler",
		"distance_km":     20.0,
		"diet_type":       "vegetarian",
		"meals":           2,
		"garbage_kg":      3.0,
	}
}

func TestActivityHandler_Submit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		requestBody    gin.H
		mockSubmitFunc func(ctx context.Context, accountID uint, in usecase.SubmitInput) error
		expectedStatus int
		expectedBody   gin.H
	}{
		{
			name:        "success: first submission of the day",
			requestBody: validBody(),
			mockSubmitFunc: func(ctx context.Context, accountID uint, in usecase.SubmitInput) error {
				return nil
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   gin.H{"message": "ok"},
		},
		{
			name: "failure: missing vehicle type",
			requestBody: gin.H{
				"electricity_kwh": 10.0,
				"distance_km":     20.0,
				"diet_type":       "vegetarian",
				"meals":           2,
				"garbage_kg":      3.0,
			},
			mockSubmitFunc: nil, // Usecase is not called
			expectedStatus: http.StatusBadRequest,
			expectedBody:   gin.H{"error": "invalid request"},
		},
		{
			name: "failure: unknown diet type",
			requestBody: func() gin.H {
				b := validBody()
				b["diet_type"] = "pescatarian"
				return b
			}(),
			mockSubmitFunc: nil, // Usecase is not called
			expectedStatus: http.StatusBadRequest,
			expectedBody:   gin.H{"error": "invalid request"},
		},
		{
			name: "failure: negative distance",
			requestBody: func() gin.H {
				b := validBody()
				b["distance_km"] = -1.0
				return b
			}(),
			mockSubmitFunc: nil, // Usecase is not called
			expectedStatus: http.StatusBadRequest,
			expectedBody:   gin.H{"error": "invalid request"},
		},
		{
			name:        "failure: already submitted today (usecase error)",
			requestBody: validBody(),
			mockSubmitFunc: func(ctx context.Context, accountID uint, in usecase.SubmitInput) error {
				return usecase.ErrAlreadySubmittedToday
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   gin.H{"error": "already submitted for today"},
		},
		{
			name:        "failure: storage error (usecase error)",
			requestBody: validBody(),
			mockSubmitFunc: func(ctx context.Context, accountID uint, in usecase.SubmitInput) error {
				return errors.New("database error")
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   gin.H{"error": "internal error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUC := &mockActivityUsecase{SubmitFunc: tt.mockSubmitFunc}
			handler := NewActivityHandler(mockUC)

			router := gin.New()
			router.POST("/activities", func(c *gin.Context) {
				c.Set(jwtmw.ContextAccountID, uint(1))
			}, handler.Submit)

			body, _ := json.Marshal(tt.requestBody)
			req, _ := http.NewRequest(http.MethodPost, "/activities", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var responseBody gin.H
			err := json.Unmarshal(w.Body.Bytes(), &responseBody)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedBody, responseBody)
		})
	}
}

func TestActivityHandler_Submit_PassesAccountAndInput(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var gotAccountID uint
	var gotInput usecase.SubmitInput
	mockUC := &mockActivityUsecase{
		SubmitFunc: func(ctx context.Context, accountID uint, in usecase.SubmitInput) error {
			gotAccountID = accountID
			gotInput = in
			return nil
		},
	}
	handler := NewActivityHandler(mockUC)

	router := gin.New()
	router.POST("/activities", func(c *gin.Context) {
		c.Set(jwtmw.ContextAccountID, uint(42))
	}, handler.Submit)

	body, _ := json.Marshal(validBody())
	req, _ := http.NewRequest(http.MethodPost, "/activities", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, uint(42), gotAccountID)
	assert.Equal(t, usecase.SubmitInput{
		ElectricityKWh: 10,
		VehicleType:    "two-wheeler",
		DistanceKm:     20,
		DietType:       "vegetarian",
		Meals:          2,
		GarbageKg:      3,
	}, gotInput)
}
