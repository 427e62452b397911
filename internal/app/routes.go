package app

import (
	"fmt"
	"net/http"
	"path/filepath"

	"github.com/folio-space/core/internal/modules/ad"
	"github.com/folio-space/core/internal/modules/project"
	"github.com/folio-space/core/internal/modules/upload"
	"github.com/folio-space/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
)

func (a *App) registerRoutes() {
	r := a.router

	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c, fmt.Sprintf("Route %s %s not found", c.Request.Method, c.Request.URL.Path))
	})

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Portfolio API Running")
	})

	// uploaded files are served straight off the content directory
	staticDir := a.cfg.Paths.Static
	r.Static("/images", filepath.Join(staticDir, "images"))
	r.Static("/pdfs", filepath.Join(staticDir, "pdfs"))

	api := r.Group("/api")
	project.NewHandler(a.store.Projects()).RegisterRoutes(api)
	ad.NewHandler(a.store.Ads()).RegisterRoutes(api)
	upload.NewHandler(staticDir).RegisterRoutes(api)
}
