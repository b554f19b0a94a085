package api

import (
	"github.com/gin-gonic/gin"

	"pdf_merger/pdf"
)

// Config holds application configuration
type Config struct {
	Port        string
	MaxFileSize int64
	TempDir     string
	Pipeline    *pdf.Pipeline
}

func SetupRoutes(r *gin.Engine, config *Config) {
	apiGroup := r.Group("/api/pdf")
	{
		apiGroup.POST("/merge", func(c *gin.Context) { HandleMerge(c, config) })
		apiGroup.POST("/info", func(c *gin.Context) { HandleInfo(c, config) })
	}
}
