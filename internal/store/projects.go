package store

import (
	"context"
	"errors"

	"github.com/folio-space/core/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ProjectRepo provides single-document CRUD over the projects collection.
type ProjectRepo struct{ s *Store }

// FindAll returns every project in store-native order.
func (r *ProjectRepo) FindAll(ctx context.Context) ([]models.ProjectModel, error) {
	coll, err := r.s.collection(models.ProjectModel{}.CollectionName())
	if err != nil {
		return nil, err
	}

	cur, err := coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	projects := make([]models.ProjectModel, 0)
	if err := cur.All(ctx, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

func (r *ProjectRepo) FindByID(ctx context.Context, id string) (*models.ProjectModel, error) {
	coll, err := r.s.collection(models.ProjectModel{}.CollectionName())
	if err != nil {
		return nil, err
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// A malformed id is indistinguishable from an absent document.
		return nil, ErrNotFound
	}

	var p models.ProjectModel
	if err := coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// Insert stores a new project and fills in its assigned id.
func (r *ProjectRepo) Insert(ctx context.Context, p *models.ProjectModel) error {
	coll, err := r.s.collection(models.ProjectModel{}.CollectionName())
	if err != nil {
		return err
	}
	res, err := coll.InsertOne(ctx, p)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		p.ID = oid
	}
	return nil
}

// UpdateByID applies the given field set to a project and returns the updated
// document. An empty set degrades to a plain read.
func (r *ProjectRepo) UpdateByID(ctx context.Context, id string, set map[string]interface{}) (*models.ProjectModel, error) {
	if len(set) == 0 {
		return r.FindByID(ctx, id)
	}
	coll, err := r.s.collection(models.ProjectModel{}.CollectionName())
	if err != nil {
		return nil, err
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var p models.ProjectModel
	err = coll.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&p)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *ProjectRepo) DeleteByID(ctx context.Context, id string) error {
	coll, err := r.s.collection(models.ProjectModel{}.CollectionName())
	if err != nil {
		return err
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	res, err := coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
