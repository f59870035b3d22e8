package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"summarizer-backend/internal/documents"
	"summarizer-backend/internal/extract"
	"summarizer-backend/internal/shared/config"
	"summarizer-backend/internal/shared/metrics"
	"summarizer-backend/internal/shared/server/middleware"
	"summarizer-backend/internal/shared/server/respond"
	localblob "summarizer-backend/internal/shared/storage/blob/local"
)

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(cfg config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
	)

	// Dependencies
	blobs := localblob.New(cfg.UploadDir)
	store := documents.NewStore()
	docSvc := documents.NewService(blobs, store, extract.ExtractText)
	docHandler := documents.NewHandler(docSvc, cfg.MaxUploadBytes)

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	api.GET("/metrics", metrics.Handler())
	docHandler.RegisterRoutes(api)

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
