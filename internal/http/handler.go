package http

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"clarity-gate/internal/config"
	"clarity-gate/internal/domain/visitor"
	"clarity-gate/internal/service"
	"clarity-gate/internal/storage"
)

type Handler struct {
	visitorService *service.VisitorService
	config         *config.Config
	log            zerolog.Logger
}

func NewHandler(
	visitorService *service.VisitorService,
	cfg *config.Config,
	log zerolog.Logger,
) *Handler {
	return &Handler{
		visitorService: visitorService,
		config:         cfg,
		log:            log,
	}
}

func (h *Handler) Register(r *gin.Engine) {
	api := r.Group("/api/v1")
	{
		api.POST("/visitors/convert", h.convertVisitorList)
		api.GET("/visitors/template", h.downloadTemplate)
		api.GET("/clearance", h.estimateClearance)
	}
}

func (h *Handler) convertVisitorList(c *gin.Context) {
	variant, err := h.variant(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	strict := h.config.Cleaning.StrictMode
	if s := c.Query("strict"); s != "" {
		parsed, err := strconv.ParseBool(s)
		if err != nil {
			c.JSON(http.StatusBadRequest, errorResponse("strict must be true or false"))
			return
		}
		strict = parsed
	}

	maxBytes := int64(h.config.HTTP.MaxUploadMB) << 20
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes+(1<<20))

	fh, err := c.FormFile("file")
	if err != nil {
		h.log.Warn().Err(err).Msg("missing upload")
		c.JSON(http.StatusBadRequest, errorResponse("multipart field \"file\" is required"))
		return
	}
	if err := checkUpload(fh, maxBytes); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	file, err := fh.Open()
	if err != nil {
		h.log.Error().Err(err).Str("file_name", fh.Filename).Msg("failed to open upload")
		c.JSON(http.StatusBadRequest, errorResponse("cannot read upload"))
		return
	}
	defer file.Close()

	h.log.Info().
		Str("file_name", fh.Filename).
		Int64("size", fh.Size).
		Str("variant", string(variant)).
		Bool("strict", strict).
		Msg("processing visitor list")

	result, err := h.visitorService.Convert(c.Request.Context(), file, service.ConvertOptions{
		Variant: variant,
		Strict:  strict,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Header("X-Report-Id", result.ID.String())
	c.Header("X-Total-Visitors", strconv.Itoa(result.Summary.TotalVisitors))
	c.Header("X-Row-Count", strconv.Itoa(result.RowCount))
	if result.ReportURL != "" {
		c.Header("X-Report-Url", result.ReportURL)
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.FileName))
	c.Data(http.StatusOK, storage.XLSXContentType, result.Content)
}

func (h *Handler) downloadTemplate(c *gin.Context) {
	variant, err := h.variant(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	content, err := h.visitorService.Template(variant)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", string(variant)+"_template.xlsx"))
	c.Data(http.StatusOK, storage.XLSXContentType, content)
}

func (h *Handler) estimateClearance(c *gin.Context) {
	var submitted time.Time
	if s := strings.TrimSpace(c.Query("submitted")); s != "" {
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			c.JSON(http.StatusBadRequest, errorResponse("submitted must be RFC3339"))
			return
		}
		submitted = t
	}

	days := 0
	if d := c.Query("days"); d != "" {
		parsed, err := strconv.Atoi(d)
		if err != nil || parsed < 1 {
			c.JSON(http.StatusBadRequest, errorResponse("days must be a positive integer"))
			return
		}
		days = parsed
	}

	c.JSON(http.StatusOK, successResponse(h.visitorService.EstimateClearance(submitted, days)))
}

func (h *Handler) variant(c *gin.Context) (visitor.Variant, error) {
	v := c.Query("variant")
	if v == "" {
		return h.config.Cleaning.Variant, nil
	}
	return visitor.ParseVariant(v)
}

func (h *Handler) handleError(c *gin.Context, err error) {
	var (
		schemaErr     *visitor.SchemaError
		emptyErr      *visitor.EmptyResultError
		validationErr visitor.ValidationErrors
	)

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":   "visitor list failed strict validation",
			"details": validationErr,
		})
	case errors.As(err, &schemaErr), errors.As(err, &emptyErr):
		c.JSON(http.StatusUnprocessableEntity, errorResponse(err.Error()))
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
	default:
		h.log.Error().Err(err).Msg("handler error")
		c.JSON(http.StatusInternalServerError, errorResponse("internal error"))
	}
}

func checkUpload(fh *multipart.FileHeader, maxBytes int64) error {
	if fh.Size <= 0 {
		return errors.New("uploaded file is empty")
	}
	if fh.Size > maxBytes {
		return fmt.Errorf("uploaded file exceeds %d MB", maxBytes>>20)
	}
	if !strings.EqualFold(filepath.Ext(fh.Filename), ".xlsx") {
		return errors.New("only .xlsx files are accepted")
	}
	return nil
}

func successResponse(data interface{}) gin.H {
	return gin.H{
		"data": data,
	}
}

func errorResponse(message string) gin.H {
	return gin.H{
		"error": message,
	}
}
