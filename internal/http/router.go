package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"moda-survey/internal/service"
)

// NewRouter configura el router de Gin con middlewares y rutas del dashboard.
func NewRouter(
	logger *zap.Logger,
	datasetH *DatasetHandler,
	dashboardH *DashboardHandler,
	jwtSvc *service.JWTService,
	uploadLimiter service.UploadRateLimiter,
) *gin.Engine {
	r := gin.New()

	// Middlewares basicos: logging, recovery y JSON content-type.
	r.Use(zapLoggerMiddleware(logger), gin.Recovery(), jsonContentTypeMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	datasets := r.Group("/datasets")
	datasets.GET("", datasetH.ListDatasets)
	datasets.POST("",
		JWTAuthMiddleware(jwtSvc),
		RequireRole(service.RoleUploader),
		UploadRateLimitMiddleware(uploadLimiter),
		datasetH.UploadDataset,
	)

	ds := datasets.Group("/:id")
	ds.GET("/filters", dashboardH.Filters)
	ds.GET("/dashboard", dashboardH.Dashboard)
	ds.GET("/tables/:table", dashboardH.Table)
	ds.GET("/export/:table", dashboardH.Export)
	ds.GET("/circularity", dashboardH.Circularity)
	ds.GET("/words", dashboardH.Words)
	ds.GET("/cities", dashboardH.Cities)

	return r
}

// zapLoggerMiddleware crea un middleware simple de logging con zap.
func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}

// jsonContentTypeMiddleware fuerza Content-Type: application/json en responses.
// Las descargas CSV lo sobreescriben.
func jsonContentTypeMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Content-Type", "application/json")
		c.Next()
	}
}
