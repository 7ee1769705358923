// Package testutil starts throwaway stores for integration tests. Tests are
// skipped when no container runtime is reachable.
package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	mongoImage    = "mongo:7"
	postgresImage = "postgres:16-alpine"
)

// StartMongoContainer returns the connection string of a fresh mongo server.
func StartMongoContainer(ctx context.Context, t *testing.T) (string, func()) {
	t.Helper()
	testcontainers.SkipIfProviderIsNotHealthy(t)

	container, err := mongodb.Run(ctx, mongoImage)
	if err != nil {
		t.Fatalf("failed to start mongo container: %v", err)
	}

	uri, err := container.ConnectionString(ctx)
	if err != nil {
		_ = testcontainers.TerminateContainer(container)

		t.Fatalf("failed to get mongo connection string: %v", err)
	}

	terminate := func() {
		if err := testcontainers.TerminateContainer(container); err != nil {
			t.Logf("failed to terminate mongo container: %v", err)
		}
	}

	return uri, terminate
}

func SetupMongoContainer(ctx context.Context, t *testing.T) (*mongo.Database, func()) {
	t.Helper()

	uri, terminate := StartMongoContainer(ctx, t)

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		terminate()

		t.Fatalf("failed to connect to mongo: %v", err)
	}

	cleanup := func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := client.Disconnect(disconnectCtx); err != nil {
			t.Logf("failed to disconnect mongo client: %v", err)
		}

		terminate()
	}

	return client.Database("taskapi_test"), cleanup
}

func SetupPostgresContainer(ctx context.Context, t *testing.T) (*gorm.DB, func()) {
	t.Helper()
	testcontainers.SkipIfProviderIsNotHealthy(t)

	container, err := postgres.Run(ctx, postgresImage,
		postgres.WithDatabase("taskapi_test"),
		postgres.WithUsername("taskapi"),
		postgres.WithPassword("taskapi"),
		postgres.BasicWaitStrategies(),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = testcontainers.TerminateContainer(container)

		t.Fatalf("failed to get postgres connection string: %v", err)
	}

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		_ = testcontainers.TerminateContainer(container)

		t.Fatalf("failed to open postgres: %v", err)
	}

	cleanup := func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}

		if err := testcontainers.TerminateContainer(container); err != nil {
			t.Logf("failed to terminate postgres container: %v", err)
		}
	}

	return db, cleanup
}
