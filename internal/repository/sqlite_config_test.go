package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/developerjhp/jirawaka/internal/domain"
	"github.com/developerjhp/jirawaka/internal/repository"
	"github.com/developerjhp/jirawaka/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigRepo_SaveAndGet(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteConfigRepo(database)
	ctx := context.Background()

	cfg := testutil.NewTestConfig("myproj")
	cfg.NotifyRecipient = "team@example.com"
	require.NoError(t, repo.Save(ctx, &cfg))

	got, err := repo.GetByProject(ctx, "myproj")
	require.NoError(t, err)
	assert.Equal(t, "myproj", got.Project)
	assert.Equal(t, "PROJ", got.ProjectKey)
	assert.Equal(t, "waka-key", got.WakatimeAPIKey)
	assert.Equal(t, "https://jira.example.com", got.JiraServer)
	assert.Equal(t, "team@example.com", got.NotifyRecipient)
	assert.Equal(t, cfg.UpdatedAt.Format(time.RFC3339), got.UpdatedAt.Format(time.RFC3339))
}

func TestConfigRepo_GetMissing(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteConfigRepo(database)

	_, err := repo.GetByProject(context.Background(), "missing")
	assert.ErrorIs(t, err, repository.ErrConfigNotFound)
}

func TestConfigRepo_ListSorted(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteConfigRepo(database)
	ctx := context.Background()

	for _, name := range []string{"zeta", "alpha", "mid"} {
		cfg := testutil.NewTestConfig(name)
		require.NoError(t, repo.Save(ctx, &cfg))
	}

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)

	var names []string
	for _, cfg := range all {
		names = append(names, cfg.Project)
	}
	assert.Equal(t, []string{"alpha", "mid", "zeta"}, names)
}

func TestConfigRepo_Delete(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteConfigRepo(database)
	ctx := context.Background()

	cfg := testutil.NewTestConfig("myproj")
	require.NoError(t, repo.Save(ctx, &cfg))
	require.NoError(t, repo.Delete(ctx, "myproj"))

	_, err := repo.GetByProject(ctx, "myproj")
	assert.ErrorIs(t, err, repository.ErrConfigNotFound)
}

func TestConfigRepo_RecipientFallback(t *testing.T) {
	cfg := domain.ProjectConfig{JiraUsername: "dev@example.com"}
	assert.Equal(t, "dev@example.com", cfg.Recipient())

	cfg.NotifyRecipient = "team@example.com"
	assert.Equal(t, "team@example.com", cfg.Recipient())
}
