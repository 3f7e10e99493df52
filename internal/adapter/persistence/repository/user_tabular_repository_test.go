package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"urb_denuncias/internal/domain/entities"
	"urb_denuncias/internal/infrastructure/database"
)

func TestUserRepositoryInsertAndLoad(t *testing.T) {
	ctx := context.Background()
	table := database.NewMemoryTable()
	repo := NewUserTabularRepository(table)

	users, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)

	inserted, err := repo.Insert(ctx, entities.User{
		Username:     "suellen",
		PasswordHash: "$2a$10$hash",
		DisplayName:  "Suellen Nascimento",
		Role:         entities.UserRoleAdmin,
	})
	require.NoError(t, err)
	assert.Equal(t, "suellen", inserted.Username)

	header, _, err := table.ReadAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, userFields, header)

	users, err = repo.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, entities.UserRoleAdmin, users[0].Role)
	assert.Equal(t, "$2a$10$hash", users[0].PasswordHash)
}

func TestUserRepositoryToleratesDriftedHeader(t *testing.T) {
	ctx := context.Background()
	table := database.NewMemoryTable()
	require.NoError(t, table.WriteHeader(ctx, []string{"role", "username"}))
	require.NoError(t, table.Append(ctx, []string{"user", "edvaldo"}))

	repo := NewUserTabularRepository(table)
	users, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "edvaldo", users[0].Username)
	assert.Equal(t, entities.UserRoleUser, users[0].Role)
	assert.Equal(t, "", users[0].PasswordHash, "missing column reads as default")
}
