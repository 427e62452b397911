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

// AdRepo provides single-document CRUD over the ads collection.
type AdRepo struct{ s *Store }

// FindAll returns every ad sorted by category, then by position.
func (r *AdRepo) FindAll(ctx context.Context) ([]models.AdModel, error) {
	coll, err := r.s.collection(models.AdModel{}.CollectionName())
	if err != nil {
		return nil, err
	}

	sort := bson.D{{Key: "category", Value: 1}, {Key: "position", Value: 1}}
	cur, err := coll.Find(ctx, bson.M{}, options.Find().SetSort(sort))
	if err != nil {
		return nil, err
	}
	ads := make([]models.AdModel, 0)
	if err := cur.All(ctx, &ads); err != nil {
		return nil, err
	}
	return ads, nil
}

// FindByCategory returns the active ads of one category sorted by position.
func (r *AdRepo) FindByCategory(ctx context.Context, category string) ([]models.AdModel, error) {
	coll, err := r.s.collection(models.AdModel{}.CollectionName())
	if err != nil {
		return nil, err
	}

	filter := bson.M{"category": category, "isActive": true}
	cur, err := coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "position", Value: 1}}))
	if err != nil {
		return nil, err
	}
	ads := make([]models.AdModel, 0)
	if err := cur.All(ctx, &ads); err != nil {
		return nil, err
	}
	return ads, nil
}

func (r *AdRepo) Insert(ctx context.Context, ad *models.AdModel) error {
	coll, err := r.s.collection(models.AdModel{}.CollectionName())
	if err != nil {
		return err
	}
	res, err := coll.InsertOne(ctx, ad)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		ad.ID = oid
	}
	return nil
}

func (r *AdRepo) UpdateByID(ctx context.Context, id string, set map[string]interface{}) (*models.AdModel, error) {
	coll, err := r.s.collection(models.AdModel{}.CollectionName())
	if err != nil {
		return nil, err
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var ad models.AdModel
	if len(set) == 0 {
		err = coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&ad)
	} else {
		err = coll.FindOneAndUpdate(ctx,
			bson.M{"_id": oid},
			bson.M{"$set": set},
			options.FindOneAndUpdate().SetReturnDocument(options.After),
		).Decode(&ad)
	}
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &ad, nil
}

func (r *AdRepo) DeleteByID(ctx context.Context, id string) error {
	coll, err := r.s.collection(models.AdModel{}.CollectionName())
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
