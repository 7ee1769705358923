// Package persistence opens and closes the store handles shared by every
// request. Handles are built once in main and passed down explicitly.
package persistence

import (
	"context"
	"fmt"
	"log/slog"

	persistenceconfig "github.com/KasumiMercury/primind-task-api/internal/config/persistence"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type Mongo struct {
	client   *mongo.Client
	database *mongo.Database
}

func OpenMongo(ctx context.Context, cfg *persistenceconfig.Config) (*Mongo, error) {
	if cfg == nil {
		return nil, ErrConfigRequired
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConnect, err)
	}

	m := &Mongo{
		client:   client,
		database: client.Database(cfg.MongoDatabase),
	}

	if err := m.Ping(ctx); err != nil {
		_ = client.Disconnect(ctx)

		return nil, err
	}

	slog.InfoContext(ctx, "connected to mongo", slog.String("database", cfg.MongoDatabase))

	return m, nil
}

func (m *Mongo) Collection(name string) *mongo.Collection {
	return m.database.Collection(name)
}

func (m *Mongo) Name() string {
	return "mongo"
}

func (m *Mongo) Ping(ctx context.Context) error {
	if err := m.client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("%w: %v", ErrPing, err)
	}

	return nil
}

func (m *Mongo) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}
