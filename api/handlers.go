package api

import (
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	pdfPkg "pdf_merger/pdf"
)

// HandleMerge merges the uploaded PDFs in form order and compresses the
// result according to the requested level. The response body is the
// final document; nothing is retained server-side.
func HandleMerge(c *gin.Context, config *Config) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid multipart form", "details": err.Error()})
		return
	}

	files := form.File["files"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No files uploaded"})
		return
	}

	level, err := pdfPkg.ParseLevel(c.DefaultPostForm("compressionLevel", "0"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid compression level", "details": err.Error()})
		return
	}

	inputs, err := readUploads(files, config.MaxFileSize)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	workDir, err := newWorkDir(config.TempDir)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create temp directory"})
		return
	}
	defer removeWorkDir(workDir)

	result, err := config.Pipeline.Run(workDir, inputs, level)
	if err != nil {
		status := http.StatusInternalServerError
		msg := "PDF processing failed"
		switch {
		case errors.Is(err, pdfPkg.ErrInvalidDocument):
			status = http.StatusBadRequest
			msg = "One or more files are not valid PDF documents"
		case errors.Is(err, pdfPkg.ErrCompressionFailed):
			msg = "Compression failed"
		}
		log.Printf("merge pipeline error: %v", err)
		c.JSON(status, gin.H{"error": msg, "details": err.Error()})
		return
	}

	filename := MergedFilename
	if level != pdfPkg.LevelNone {
		filename = MergedCompressedFilename
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header(HeaderCompressionMethod, string(result.Method))
	c.Header(HeaderCompressionLevel, fmt.Sprintf("%d", int(result.Level)))
	c.Header("Content-Length", fmt.Sprintf("%d", len(result.Data)))
	c.Data(http.StatusOK, "application/pdf", result.Data)
}

// HandleInfo inspects uploads without merging: per-file page count and
// size, plus estimated output sizes per compression level. The estimates
// use fixed ratios and carry no guarantee about actual output size.
func HandleInfo(c *gin.Context, config *Config) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid multipart form", "details": err.Error()})
		return
	}

	files := form.File["files"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No files uploaded"})
		return
	}

	inputs, err := readUploads(files, config.MaxFileSize)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	workDir, err := newWorkDir(config.TempDir)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create temp directory"})
		return
	}
	defer removeWorkDir(workDir)

	infos := make([]gin.H, 0, len(files))
	var totalPages int
	var totalBytes int64
	for i, data := range inputs {
		pages, err := pdfPkg.PageCount(workDir, data)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   fmt.Sprintf("%s is not a valid PDF document", files[i].Filename),
				"details": err.Error(),
			})
			return
		}
		infos = append(infos, gin.H{
			"filename": files[i].Filename,
			"size":     int64(len(data)),
			"pages":    pages,
		})
		totalPages += pages
		totalBytes += int64(len(data))
	}

	c.JSON(http.StatusOK, gin.H{
		"files":       infos,
		"total_pages": totalPages,
		"total_size":  totalBytes,
		"estimated_sizes": gin.H{
			"0": pdfPkg.EstimateSize(totalBytes, pdfPkg.LevelNone),
			"1": pdfPkg.EstimateSize(totalBytes, pdfPkg.LevelMedium),
			"2": pdfPkg.EstimateSize(totalBytes, pdfPkg.LevelHigh),
		},
	})
}

// readUploads validates and buffers every uploaded part, in form order.
func readUploads(files []*multipart.FileHeader, maxSize int64) ([][]byte, error) {
	inputs := make([][]byte, 0, len(files))
	for _, header := range files {
		data, err := readUpload(header, maxSize)
		if err != nil {
			return nil, fmt.Errorf("%s: %v", header.Filename, err)
		}
		inputs = append(inputs, data)
	}
	return inputs, nil
}

// readUpload checks the size cap and the PDF magic before buffering.
func readUpload(header *multipart.FileHeader, maxSize int64) ([]byte, error) {
	if header.Size > maxSize {
		return nil, fmt.Errorf("file size %d exceeds maximum allowed %d bytes", header.Size, maxSize)
	}

	file, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open upload: %v", err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read upload: %v", err)
	}
	if len(data) < 4 || string(data[:4]) != "%PDF" {
		return nil, fmt.Errorf("invalid PDF file: header does not match")
	}
	return data, nil
}

// newWorkDir creates a request-private working directory under tempDir.
func newWorkDir(tempDir string) (string, error) {
	if err := os.MkdirAll(tempDir, DefaultFilePermissions); err != nil {
		return "", err
	}
	return os.MkdirTemp(tempDir, "req_")
}

// removeWorkDir deletes the request working directory. Failures are
// logged only; they never affect the response.
func removeWorkDir(dir string) {
	if err := os.RemoveAll(dir); err != nil {
		log.Printf("failed to remove temp dir %s: %v", dir, err)
	}
}
