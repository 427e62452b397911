package store

import (
	"context"
	"errors"
	"time"

	"github.com/folio-space/core/internal/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

var (
	// ErrNotFound means no document matched the given id.
	ErrNotFound = errors.New("document not found")
	// ErrUnavailable means the backing store could not be reached.
	ErrUnavailable = errors.New("store unavailable")
)

const connectTimeout = 5 * time.Second

// Store owns the MongoDB client and hands out per-collection repositories.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
	logger *zap.Logger
}

// Connect opens the MongoDB client. A down server is not fatal: the client
// is kept and individual operations fail with a store fault until the server
// becomes reachable, so the API stays up without a database.
func Connect(ctx context.Context, cfg *config.AppConfig, logger *zap.Logger) *Store {
	s := &Store{logger: logger}

	opts := options.Client().
		ApplyURI(cfg.MongoURI).
		SetConnectTimeout(connectTimeout).
		SetServerSelectionTimeout(connectTimeout)
	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		logger.Warn("mongodb client init failed, serving without a store", zap.Error(err))
		return s
	}
	s.client = client
	s.db = client.Database(cfg.MongoDB)

	pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		logger.Warn("mongodb unreachable, store operations will fail until it recovers", zap.Error(err))
		return s
	}

	logger.Info("mongodb connected", zap.String("database", cfg.MongoDB))
	return s
}

// Disconnect closes the client. Safe to call when the connect never succeeded.
func (s *Store) Disconnect(ctx context.Context) {
	if s.client == nil {
		return
	}
	if err := s.client.Disconnect(ctx); err != nil {
		s.logger.Warn("mongodb disconnect", zap.Error(err))
	}
}

// Projects returns the repository for the projects collection.
func (s *Store) Projects() *ProjectRepo { return &ProjectRepo{s: s} }

// Ads returns the repository for the ads collection.
func (s *Store) Ads() *AdRepo { return &AdRepo{s: s} }

func (s *Store) collection(name string) (*mongo.Collection, error) {
	if s.db == nil {
		return nil, ErrUnavailable
	}
	return s.db.Collection(name), nil
}
