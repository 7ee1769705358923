package server

import (
	"context"
	"fmt"

	persistenceconfig "github.com/KasumiMercury/primind-task-api/internal/config/persistence"
	"github.com/KasumiMercury/primind-task-api/internal/health"
	"github.com/KasumiMercury/primind-task-api/internal/persistence"
	taskmodule "github.com/KasumiMercury/primind-task-api/internal/task"
	"github.com/KasumiMercury/primind-task-api/internal/task/infra/repository"
)

// Store is the opened backend selected by configuration.
type Store struct {
	Repositories taskmodule.Repositories
	Dependency   health.Dependency
	close        func(ctx context.Context) error
}

func OpenStore(ctx context.Context, cfg *persistenceconfig.Config) (*Store, error) {
	if cfg == nil {
		return nil, persistence.ErrConfigRequired
	}

	switch cfg.Driver {
	case persistenceconfig.DriverMongo:
		m, err := persistence.OpenMongo(ctx, cfg)
		if err != nil {
			return nil, err
		}

		tasks := m.Collection(repository.TaskCollection)

		if err := repository.EnsureMongoIndexes(ctx, tasks); err != nil {
			_ = m.Close(ctx)

			return nil, err
		}

		return &Store{
			Repositories: taskmodule.Repositories{Tasks: repository.NewMongoTaskRepository(tasks)},
			Dependency:   m,
			close:        m.Close,
		}, nil
	case persistenceconfig.DriverPostgres:
		p, err := persistence.OpenPostgres(ctx, cfg, &repository.TaskModel{})
		if err != nil {
			return nil, err
		}

		return &Store{
			Repositories: taskmodule.Repositories{Tasks: repository.NewPostgresTaskRepository(p.DB())},
			Dependency:   p,
			close:        p.Close,
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}
}

func (s *Store) Close(ctx context.Context) error {
	if s == nil || s.close == nil {
		return nil
	}

	return s.close(ctx)
}
