package fileservice

import (
	"context"
	"errors"
	"log/slog"
	"mime/multipart"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shirou/gopsutil/process"
)

// ErrorResponse represents an error response body.
type ErrorResponse struct {
	Error string `json:"error"`
}

// FileResult is one entry of a multi-upload response.
type FileResult struct {
	Filename string `json:"filename"`
	Key      string `json:"key,omitempty"`
	Error    string `json:"error,omitempty"`
}

// MultiUploadResponse lists the outcome of every part of a multi-upload.
type MultiUploadResponse struct {
	Results []FileResult `json:"results"`
}

// HealthResponse reports process-level vitals.
type HealthResponse struct {
	Status         string  `json:"status"`
	UptimeSeconds  float64 `json:"uptime_seconds"`
	MemoryRSSBytes uint64  `json:"memory_rss_bytes"`
	CPUPercent     float64 `json:"cpu_percent"`
}

// FileHandlers provides the HTTP handlers for the file endpoints.
type FileHandlers struct {
	service   Service
	log       *slog.Logger
	startedAt time.Time
}

func NewFileHandlers(service Service, log *slog.Logger) FileHandlers {
	return FileHandlers{service: service, log: log, startedAt: time.Now()}
}

// Routes registers every file endpoint under /api/files.
func (h FileHandlers) Routes(r *gin.Engine) {
	files := r.Group("/api/files")
	files.POST("/upload", h.UploadFile)
	files.POST("/upload/:folder", h.UploadToFolder)
	files.POST("/upload-multiple", h.UploadMultiple)
	files.DELETE("", h.DeleteFile)
	files.GET("/health", h.Health)
	files.GET("/recent", h.Recent)
}

// UploadFile stores a single multipart file under the default folder.
// POST /api/files/upload
func (h FileHandlers) UploadFile(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: ErrEmptyFile.Error()})
		return
	}
	upload, err := h.storeOne(c.Request.Context(), "", header)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, upload)
}

// UploadToFolder stores a single multipart file under the requested folder.
// POST /api/files/upload/:folder
func (h FileHandlers) UploadToFolder(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: ErrEmptyFile.Error()})
		return
	}
	upload, err := h.storeOne(c.Request.Context(), c.Param("folder"), header)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, upload)
}

// UploadMultiple stores every part named "files" and reports each outcome
// independently: one rejected part never blocks its siblings.
// POST /api/files/upload-multiple
func (h FileHandlers) UploadMultiple(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid multipart form"})
		return
	}
	headers := form.File["files"]
	if len(headers) == 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: ErrEmptyFile.Error()})
		return
	}

	results := make([]FileResult, 0, len(headers))
	for _, header := range headers {
		upload, err := h.storeOne(c.Request.Context(), "", header)
		if err != nil {
			results = append(results, FileResult{Filename: header.Filename, Error: err.Error()})
			continue
		}
		results = append(results, FileResult{Filename: header.Filename, Key: upload.Key})
	}
	c.JSON(http.StatusOK, MultiUploadResponse{Results: results})
}

// DeleteFile removes the object named by the key query parameter.
// DELETE /api/files?key=...
func (h FileHandlers) DeleteFile(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Query("key")); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Recent lists the latest upload audit entries, newest first.
// GET /api/files/recent?limit=
func (h FileHandlers) Recent(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid limit"})
			return
		}
		limit = parsed
	}
	uploads, err := h.service.Recent(limit)
	if err != nil {
		h.respondError(c, err)
		return
	}
	if uploads == nil {
		uploads = []Upload{}
	}
	c.JSON(http.StatusOK, uploads)
}

// Health reports uptime and process vitals.
// GET /api/files/health
func (h FileHandlers) Health(c *gin.Context) {
	health := HealthResponse{
		Status:        "ok",
		UptimeSeconds: time.Since(h.startedAt).Seconds(),
	}
	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		h.log.Debug("Error while retrieving process", "err", err)
		c.JSON(http.StatusOK, health)
		return
	}
	if mem, err := p.MemoryInfo(); err == nil {
		health.MemoryRSSBytes = mem.RSS
	}
	if cpu, err := p.CPUPercent(); err == nil {
		health.CPUPercent = cpu
	}
	c.JSON(http.StatusOK, health)
}

func (h FileHandlers) storeOne(ctx context.Context, folder string, header *multipart.FileHeader) (Upload, error) {
	file, err := header.Open()
	if err != nil {
		return Upload{}, ErrEmptyFile
	}
	defer func() { _ = file.Close() }()

	if folder == "" {
		return h.service.Upload(ctx, header.Filename, header.Size, file)
	}
	return h.service.UploadTo(ctx, folder, header.Filename, header.Size, file)
}

func (h FileHandlers) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrEmptyFile),
		errors.Is(err, ErrExtensionNotAllowed),
		errors.Is(err, ErrBadFolder),
		errors.Is(err, ErrMissingKey):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, ErrFileTooLarge):
		c.JSON(http.StatusRequestEntityTooLarge, ErrorResponse{Error: err.Error()})
	default:
		h.log.Error("Request failed", "error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
}

// RequestLogger logs every request once it completes.
func RequestLogger(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info("Request handled",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}
