package ad

import (
	"context"
	"errors"

	"github.com/folio-space/core/internal/models"
	"github.com/folio-space/core/internal/pkg/response"
	"github.com/folio-space/core/internal/store"
	"github.com/gin-gonic/gin"
)

// Store is the slice of the ad repository the handlers need.
type Store interface {
	FindAll(ctx context.Context) ([]models.AdModel, error)
	FindByCategory(ctx context.Context, category string) ([]models.AdModel, error)
	Insert(ctx context.Context, ad *models.AdModel) error
	UpdateByID(ctx context.Context, id string, set map[string]interface{}) (*models.AdModel, error)
	DeleteByID(ctx context.Context, id string) error
}

type Handler struct {
	ads Store
}

func NewHandler(ads Store) *Handler {
	return &Handler{ads: ads}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/ads")

	g.GET("", h.list)
	g.GET("/category/:category", h.listByCategory)
	g.POST("", h.create)
	g.PUT("/:id", h.update)
	g.DELETE("/:id", h.delete)
}

// GET /ads
func (h *Handler) list(c *gin.Context) {
	ads, err := h.ads.FindAll(c.Request.Context())
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, ads)
}

// GET /ads/category/:category — active ads only
func (h *Handler) listByCategory(c *gin.Context) {
	ads, err := h.ads.FindByCategory(c.Request.Context(), c.Param("category"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, ads)
}

// POST /ads
func (h *Handler) create(c *gin.Context) {
	var dto AdDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if strVal(dto.Title) == "" || strVal(dto.Description) == "" {
		response.BadRequest(c, "Title and description are required")
		return
	}

	a := dto.newAd()
	if err := h.ads.Insert(c.Request.Context(), &a); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	response.Created(c, a)
}

// PUT /ads/:id
func (h *Handler) update(c *gin.Context) {
	var dto AdDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	a, err := h.ads.UpdateByID(c.Request.Context(), c.Param("id"), dto.changes())
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			response.NotFound(c, "Ad not found")
			return
		}
		response.BadRequest(c, err.Error())
		return
	}
	response.OK(c, a)
}

// DELETE /ads/:id
func (h *Handler) delete(c *gin.Context) {
	if err := h.ads.DeleteByID(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			response.NotFound(c, "Ad not found")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.OK(c, gin.H{"message": "Ad deleted successfully"})
}
