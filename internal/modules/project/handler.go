package project

import (
	"context"
	"errors"

	"github.com/folio-space/core/internal/models"
	"github.com/folio-space/core/internal/pkg/response"
	"github.com/folio-space/core/internal/store"
	"github.com/gin-gonic/gin"
)

// Store is the slice of the project repository the handlers need.
type Store interface {
	FindAll(ctx context.Context) ([]models.ProjectModel, error)
	FindByID(ctx context.Context, id string) (*models.ProjectModel, error)
	Insert(ctx context.Context, p *models.ProjectModel) error
	UpdateByID(ctx context.Context, id string, set map[string]interface{}) (*models.ProjectModel, error)
	DeleteByID(ctx context.Context, id string) error
}

type Handler struct {
	projects Store
}

func NewHandler(projects Store) *Handler {
	return &Handler{projects: projects}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/projects")

	g.GET("", h.list)
	g.GET("/:id", h.get)
	g.POST("", h.create)
	g.PUT("/:id", h.update)
	g.DELETE("/:id", h.delete)
}

// GET /projects
func (h *Handler) list(c *gin.Context) {
	projects, err := h.projects.FindAll(c.Request.Context())
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, projects)
}

// GET /projects/:id
func (h *Handler) get(c *gin.Context) {
	p, err := h.projects.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			response.NotFound(c, "Project not found")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.OK(c, p)
}

// POST /projects
func (h *Handler) create(c *gin.Context) {
	var dto ProjectDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if strVal(dto.Title) == "" || strVal(dto.Description) == "" {
		response.BadRequest(c, "Title and description are required")
		return
	}

	p := dto.newProject()
	if err := h.projects.Insert(c.Request.Context(), &p); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	response.Created(c, p)
}

// PUT /projects/:id
func (h *Handler) update(c *gin.Context) {
	var dto ProjectDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	p, err := h.projects.UpdateByID(c.Request.Context(), c.Param("id"), dto.changes())
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			response.NotFound(c, "Project not found")
			return
		}
		response.BadRequest(c, err.Error())
		return
	}
	response.OK(c, p)
}

// DELETE /projects/:id
func (h *Handler) delete(c *gin.Context) {
	if err := h.projects.DeleteByID(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			response.NotFound(c, "Project not found")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.OK(c, gin.H{"message": "Project deleted successfully"})
}
