package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Known category tags. The field is deliberately free text: the store never
// rejects an unknown value, it simply renders into no display bucket.
const (
	CategoryDevelopment = "development"
	CategoryGraphic     = "graphic"
	CategoryUIUX        = "uiux"
)

// ProjectModel stores portfolio projects.
// The JSON id key is "_id" for compatibility with existing clients.
type ProjectModel struct {
	ID          primitive.ObjectID `json:"_id"              bson:"_id,omitempty"`
	Title       string             `json:"title"            bson:"title"`
	Description string             `json:"description"      bson:"description"`
	Tech        []string           `json:"tech"             bson:"tech"`
	Github      string             `json:"github,omitempty" bson:"github,omitempty"`
	Live        string             `json:"live,omitempty"   bson:"live,omitempty"`
	Image       string             `json:"image"            bson:"image"`
	PDF         string             `json:"pdf"              bson:"pdf"` // populated for uiux projects
	Category    string             `json:"category"         bson:"category"`
}

func (ProjectModel) CollectionName() string { return "projects" }
