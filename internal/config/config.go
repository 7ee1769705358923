package config

import (
	"fmt"

	"github.com/KasumiMercury/primind-task-api/internal/config/persistence"
	"github.com/KasumiMercury/primind-task-api/internal/config/server"
)

type Config struct {
	Persistence *persistence.Config
	Server      *server.Config
}

func Load() (*Config, error) {
	persistenceCfg, err := persistence.Load()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistenceLoad, err)
	}

	serverCfg, err := server.Load()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrServerLoad, err)
	}

	return &Config{Persistence: persistenceCfg, Server: serverCfg}, nil
}
