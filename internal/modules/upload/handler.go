package upload

import (
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/folio-space/core/internal/pkg/assetpath"
	"github.com/folio-space/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	staticDir string
	image     Policy
	pdf       Policy
}

// NewHandler serves the image and PDF upload endpoints under staticDir.
func NewHandler(staticDir string) *Handler {
	return &Handler{
		staticDir: staticDir,
		image:     ImagePolicy(),
		pdf:       PDFPolicy(),
	}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/upload")

	g.POST("/image", h.handle(h.image))
	g.POST("/pdf", h.handle(h.pdf))

	// liveness probes kept from the original API
	g.GET("/test", h.test)
	g.GET("/pdf/test", h.pdfTest)
}

// handle accepts exactly one file per request: validate first, write after,
// so a rejected upload leaves nothing behind.
func (h *Handler) handle(p Policy) gin.HandlerFunc {
	return func(c *gin.Context) {
		fh, err := c.FormFile(p.Field)
		if err != nil {
			response.BadRequest(c, p.Message(ErrFileMissing))
			return
		}
		if err := p.Validate(fh); err != nil {
			response.BadRequest(c, p.Message(err))
			return
		}

		name := buildFileName(fh.Filename)
		dir := filepath.Join(h.staticDir, string(p.Kind))
		if err := os.MkdirAll(dir, 0o755); err != nil {
			response.InternalError(c, err)
			return
		}
		if err := c.SaveUploadedFile(fh, filepath.Join(dir, name)); err != nil {
			response.InternalError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			p.PathKey: assetpath.Canonical(p.Kind, name),
			"filename": name,
		})
	}
}

// GET /upload/test
func (h *Handler) test(c *gin.Context) {
	response.OK(c, gin.H{
		"message":   "Upload route is working",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// GET /upload/pdf/test
func (h *Handler) pdfTest(c *gin.Context) {
	response.OK(c, gin.H{
		"message":            "PDF upload route is registered",
		"timestamp":          time.Now().Format(time.RFC3339),
		"availableEndpoints": []string{"POST /api/upload/pdf"},
	})
}
