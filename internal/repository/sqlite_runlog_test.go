package repository_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/developerjhp/jirawaka/internal/repository"
	"github.com/developerjhp/jirawaka/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunLogRepo_AppendAndList(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteRunLogRepo(database)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		err := repo.Append(ctx, &repository.RunLog{
			ID:           uuid.New().String(),
			Project:      "myproj",
			RunDate:      "2024-03-01",
			Report:       fmt.Sprintf("report %d", i),
			TotalMinutes: 10 * i,
			CreatedAt:    fmt.Sprintf("2024-03-01T0%d:00:00Z", i),
		})
		require.NoError(t, err)
	}

	logs, err := repo.ListByProject(ctx, "myproj", 2)
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, "report 2", logs[0].Report, "newest first")
	assert.Equal(t, 20, logs[0].TotalMinutes)
}

func TestRunLogRepo_ListOtherProjectEmpty(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteRunLogRepo(database)

	logs, err := repo.ListByProject(context.Background(), "other", 10)
	require.NoError(t, err)
	assert.Empty(t, logs)
}
