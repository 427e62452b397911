package project

import "github.com/folio-space/core/internal/models"

// ProjectDTO is the loose request body shared by create and update. The API
// historically accepted synonym keys ("technologies" for tech, "link" for
// live); they are merged here, before validation, into the canonical shape.
type ProjectDTO struct {
	Title        *string  `json:"title"`
	Description  *string  `json:"description"`
	Tech         []string `json:"tech"`
	Technologies []string `json:"technologies"`
	Github       *string  `json:"github"`
	Live         *string  `json:"live"`
	Link         *string  `json:"link"`
	Image        *string  `json:"image"`
	PDF          *string  `json:"pdf"`
	Category     *string  `json:"category"`
}

func strVal(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// mergeTech picks whichever synonym was supplied, never returning nil.
func mergeTech(tech, technologies []string) []string {
	switch {
	case tech != nil:
		return tech
	case technologies != nil:
		return technologies
	default:
		return []string{}
	}
}

// mergeLive returns the first non-empty of live/link.
func mergeLive(live, link *string) string {
	if v := strVal(live); v != "" {
		return v
	}
	return strVal(link)
}

// newProject builds the canonical document for a create request, applying the
// defaults for omitted fields. Required-field validation happens in the
// handler, after synonym merging.
func (d *ProjectDTO) newProject() models.ProjectModel {
	category := strVal(d.Category)
	if category == "" {
		category = models.CategoryDevelopment
	}
	return models.ProjectModel{
		Title:       strVal(d.Title),
		Description: strVal(d.Description),
		Tech:        mergeTech(d.Tech, d.Technologies),
		Github:      strVal(d.Github),
		Live:        mergeLive(d.Live, d.Link),
		Image:       strVal(d.Image),
		PDF:         strVal(d.PDF),
		Category:    category,
	}
}

// changes builds the partial field set for an update request. The rules are
// asymmetric on purpose: title, description and category only change when
// supplied non-empty, while github, image and pdf change whenever the key is
// present, so an explicit "" clears the stored value. live/link change when
// either key is present.
func (d *ProjectDTO) changes() map[string]interface{} {
	set := map[string]interface{}{}
	if v := strVal(d.Title); v != "" {
		set["title"] = v
	}
	if v := strVal(d.Description); v != "" {
		set["description"] = v
	}
	if d.Tech != nil || d.Technologies != nil {
		set["tech"] = mergeTech(d.Tech, d.Technologies)
	}
	if d.Github != nil {
		set["github"] = *d.Github
	}
	if d.Live != nil || d.Link != nil {
		set["live"] = mergeLive(d.Live, d.Link)
	}
	if d.Image != nil {
		set["image"] = *d.Image
	}
	if d.PDF != nil {
		set["pdf"] = *d.PDF
	}
	if v := strVal(d.Category); v != "" {
		set["category"] = v
	}
	return set
}
