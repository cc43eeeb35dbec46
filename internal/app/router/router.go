// Package router wires the HTTP route table.
package router

import (
	"github.com/gin-gonic/gin"

	activityhandler "carbon_backend/internal/feature/activity/transport/handler"
	authhandler "carbon_backend/internal/feature/auth/transport/handler"
	datasethandler "carbon_backend/internal/feature/datasets/transport/handler"
	reporthandler "carbon_backend/internal/feature/report/transport/handler"
	"carbon_backend/internal/platform/http/handler"
	jwtmw "carbon_backend/internal/platform/jwt"
)

// NewRouter builds the gin engine with all routes registered.
func NewRouter(auth *authhandler.AuthHandler, activity *activityhandler.ActivityHandler,
	report *reporthandler.ReportHandler, datasets *datasethandler.DatasetHandler) *gin.Engine {
	r := gin.Default()

	// No authentication required
	r.GET("/healthz", handler.Health)
	r.POST("/signup", auth.Signup)
	r.POST("/login", auth.Login)
	// Public reference datasets (read-only)
	r.GET("/datasets", datasets.List)
	r.GET("/datasets/:slug", datasets.Series)

	// Authenticated routes: bearer JWT required
	authed := r.Group("/")
	authed.Use(jwtmw.AuthRequired())
	{
		authed.POST("/activities", activity.Submit)
		authed.GET("/reports/:period", report.Get)
	}

	return r
}
