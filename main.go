package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"pdf_merger/api"
	"pdf_merger/pdf"

	"github.com/gin-gonic/gin"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultMaxFileSize is the default maximum size per uploaded file (50MB)
	DefaultMaxFileSize = 50 * 1024 * 1024

	// DefaultPort is the default server port
	DefaultPort = "8080"

	// DefaultTempDir is the default temporary directory
	DefaultTempDir = "./temp"

	// DefaultConfigFile is the optional YAML config file looked for at startup
	DefaultConfigFile = "config.yaml"

	// ServerReadTimeout is the HTTP server read timeout
	ServerReadTimeout = 60 * time.Second

	// ServerWriteTimeout is the HTTP server write timeout; it must outlast
	// one external compressor run
	ServerWriteTimeout = 3 * time.Minute

	// ServerIdleTimeout is the HTTP server idle timeout
	ServerIdleTimeout = 60 * time.Second

	// GracefulShutdownTimeout is the timeout for graceful shutdown
	GracefulShutdownTimeout = 10 * time.Second
)

// fileConfig mirrors the optional YAML config file. Environment variables
// override anything set here.
type fileConfig struct {
	Port        string `yaml:"port"`
	MaxFileSize int64  `yaml:"max_file_size"`
	TempDir     string `yaml:"temp_dir"`
	Ghostscript struct {
		Binary         string `yaml:"binary"`
		TimeoutSeconds int    `yaml:"timeout_seconds"`
	} `yaml:"ghostscript"`
}

func main() {
	// Defaults, then config file, then environment
	port := DefaultPort
	maxFileSize := int64(DefaultMaxFileSize)
	tempDir := DefaultTempDir
	gsBinary := pdf.DefaultGhostscriptBinary
	gsTimeout := pdf.DefaultCompressTimeout

	configFile := getEnv("CONFIG_FILE", DefaultConfigFile)
	if fc, err := loadFileConfig(configFile); err == nil {
		if fc.Port != "" {
			port = fc.Port
		}
		if fc.MaxFileSize > 0 {
			maxFileSize = fc.MaxFileSize
		}
		if fc.TempDir != "" {
			tempDir = fc.TempDir
		}
		if fc.Ghostscript.Binary != "" {
			gsBinary = fc.Ghostscript.Binary
		}
		if fc.Ghostscript.TimeoutSeconds > 0 {
			gsTimeout = time.Duration(fc.Ghostscript.TimeoutSeconds) * time.Second
		}
		log.Printf("Loaded configuration from %s", configFile)
	} else if !os.IsNotExist(err) {
		log.Fatalf("Failed to load config file %s: %v", configFile, err)
	}

	config := &api.Config{
		Port:        getEnv("PORT", port),
		MaxFileSize: getEnvInt64("MAX_FILE_SIZE", maxFileSize),
		TempDir:     getEnv("TEMP_DIR", tempDir),
	}
	gsBinary = getEnv("GS_BINARY", gsBinary)
	if secs := getEnvInt64("GS_TIMEOUT_SECONDS", int64(gsTimeout/time.Second)); secs > 0 {
		gsTimeout = time.Duration(secs) * time.Second
	}

	// Ghostscript absence is not fatal: the pipeline falls back to the
	// in-process document-model rewrite.
	tool := pdf.NewGhostscript(gsBinary, gsTimeout)
	if tool.Probe() {
		log.Printf("Ghostscript available (%s), external compression enabled", tool.Binary)
	} else {
		log.Printf("Ghostscript not found (%s), compression will use the in-process rewrite", tool.Binary)
	}
	config.Pipeline = pdf.NewPipeline(tool)

	r := gin.Default()

	// Static files for web UI
	r.Static("/static", "./static")

	// API routes with config
	api.SetupRoutes(r, config)

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "pdf_merger",
		})
	})

	// Create HTTP server with timeout settings
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", config.Port),
		Handler:      r,
		ReadTimeout:  ServerReadTimeout,
		WriteTimeout: ServerWriteTimeout,
		IdleTimeout:  ServerIdleTimeout,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Server starting on %s", srv.Addr)
		log.Printf("Max file size: %d bytes", config.MaxFileSize)
		log.Printf("Temp directory: %s", config.TempDir)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), GracefulShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited gracefully")
}

func loadFileConfig(path string) (*fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, err
	}
	return &fc, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}
