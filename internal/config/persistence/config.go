package persistence

import (
	"fmt"
	"os"
	"strings"
)

const (
	driverEnv        = "PERSISTENCE_DRIVER"
	mongoURIEnv      = "MONGO_URI"
	mongoDatabaseEnv = "MONGO_DATABASE"
	postgresDSNEnv   = "POSTGRES_DSN"

	defaultMongoDatabase = "taskapi"
)

type Driver string

const (
	DriverMongo    Driver = "mongo"
	DriverPostgres Driver = "postgres"
)

type Config struct {
	Driver        Driver
	MongoURI      string
	MongoDatabase string
	PostgresDSN   string
}

func Load() (*Config, error) {
	driver := Driver(strings.ToLower(getEnv(driverEnv, string(DriverMongo))))

	cfg := &Config{
		Driver:        driver,
		MongoURI:      getEnv(mongoURIEnv, ""),
		MongoDatabase: getEnv(mongoDatabaseEnv, defaultMongoDatabase),
		PostgresDSN:   getEnv(postgresDSNEnv, ""),
	}

	return cfg, cfg.Validate()
}

// Validate only checks the settings of the selected driver.
func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("%w: config is nil", ErrUnknownDriver)
	}

	switch c.Driver {
	case DriverMongo:
		if c.MongoURI == "" {
			return fmt.Errorf("%w: %s", ErrMongoURIMissing, mongoURIEnv)
		}

		if c.MongoDatabase == "" {
			return fmt.Errorf("%w: %s", ErrMongoDBMissing, mongoDatabaseEnv)
		}
	case DriverPostgres:
		if c.PostgresDSN == "" {
			return fmt.Errorf("%w: %s", ErrPostgresDSNMissing, postgresDSNEnv)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownDriver, c.Driver)
	}

	return nil
}

func getEnv(key, defaultVal string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}

	return defaultVal
}
