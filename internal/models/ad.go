package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AdModel stores promotional cards shown alongside the project sections.
// It has no cross-references to ProjectModel.
type AdModel struct {
	ID          primitive.ObjectID `json:"_id"         bson:"_id,omitempty"`
	Title       string             `json:"title"       bson:"title"`
	Description string             `json:"description" bson:"description"`
	ImageURL    string             `json:"imageUrl"    bson:"imageUrl"`
	Link        string             `json:"link"        bson:"link"`
	Category    string             `json:"category"    bson:"category"`
	Position    int                `json:"position"    bson:"position"`
	IsActive    bool               `json:"isActive"    bson:"isActive"`
	CreatedAt   time.Time          `json:"createdAt"   bson:"createdAt"`
}

func (AdModel) CollectionName() string { return "ads" }
