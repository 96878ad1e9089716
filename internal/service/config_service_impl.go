package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/developerjhp/jirawaka/internal/db"
	"github.com/developerjhp/jirawaka/internal/domain"
	"github.com/developerjhp/jirawaka/internal/repository"
)

type configService struct {
	configs repository.ConfigRepo
	uow     db.UnitOfWork
}

// NewConfigService creates the stored-configuration service.
func NewConfigService(configs repository.ConfigRepo, uow db.UnitOfWork) ConfigService {
	return &configService{configs: configs, uow: uow}
}

func (s *configService) SaveAll(ctx context.Context, base domain.ProjectConfig, projects string) ([]string, error) {
	names := splitProjects(projects)
	if len(names) == 0 {
		return nil, fmt.Errorf("no projects named in %q", projects)
	}

	now := time.Now().UTC()
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txConfigs := repository.NewSQLiteConfigRepo(tx)
		for _, name := range names {
			cfg := base
			cfg.Project = name
			cfg.UpdatedAt = now
			if err := txConfigs.Save(ctx, &cfg); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return names, nil
}

func (s *configService) Get(ctx context.Context, project string) (*domain.ProjectConfig, error) {
	return s.configs.GetByProject(ctx, project)
}

func (s *configService) List(ctx context.Context) ([]*domain.ProjectConfig, error) {
	return s.configs.List(ctx)
}

// splitProjects parses the comma-separated projects field, discarding all
// whitespace the way the original trigger did.
func splitProjects(projects string) []string {
	stripped := strings.Map(func(r rune) rune {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			return -1
		}
		return r
	}, projects)

	var names []string
	for _, name := range strings.Split(stripped, ",") {
		if name != "" {
			names = append(names, name)
		}
	}
	return names
}
