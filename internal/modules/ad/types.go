package ad

import (
	"time"

	"github.com/folio-space/core/internal/models"
)

// AdDTO is the loose request body shared by create and update.
type AdDTO struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	ImageURL    *string `json:"imageUrl"`
	Link        *string `json:"link"`
	Category    *string `json:"category"`
	Position    *int    `json:"position"`
	IsActive    *bool   `json:"isActive"`
}

func strVal(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// newAd builds the document for a create request. New ads are always active;
// deactivation goes through update.
func (d *AdDTO) newAd() models.AdModel {
	category := strVal(d.Category)
	if category == "" {
		category = models.CategoryDevelopment
	}
	position := 0
	if d.Position != nil {
		position = *d.Position
	}
	return models.AdModel{
		Title:       strVal(d.Title),
		Description: strVal(d.Description),
		ImageURL:    strVal(d.ImageURL),
		Link:        strVal(d.Link),
		Category:    category,
		Position:    position,
		IsActive:    true,
		CreatedAt:   time.Now(),
	}
}

// changes builds the partial field set for an update request. Every supplied
// key is applied as-is; unlike projects there is no truthiness filter.
func (d *AdDTO) changes() map[string]interface{} {
	set := map[string]interface{}{}
	if d.Title != nil {
		set["title"] = *d.Title
	}
	if d.Description != nil {
		set["description"] = *d.Description
	}
	if d.ImageURL != nil {
		set["imageUrl"] = *d.ImageURL
	}
	if d.Link != nil {
		set["link"] = *d.Link
	}
	if d.Category != nil {
		set["category"] = *d.Category
	}
	if d.Position != nil {
		set["position"] = *d.Position
	}
	if d.IsActive != nil {
		set["isActive"] = *d.IsActive
	}
	return set
}
