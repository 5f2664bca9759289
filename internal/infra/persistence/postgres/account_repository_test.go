package postgres

import (
	"context"
	"testing"

	"lineconnect/internal/domain/entity"
	"lineconnect/internal/domain/repository"
	"lineconnect/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountRepository_CreateAndFind(t *testing.T) {
	repo := NewAccountRepository(newTestDB(t))
	ctx := context.Background()

	account := &entity.Account{
		Login:        "alice",
		Email:        "alice@example.com",
		DisplayName:  "Alice",
		PasswordHash: "hash",
		Roles:        entity.Roles{entity.RoleEditor},
		Capabilities: []string{"view_reports"},
	}
	require.NoError(t, repo.Create(ctx, account))
	require.NotZero(t, account.ID)

	got, err := repo.FindByID(ctx, account.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice", got.DisplayName)
	assert.Equal(t, entity.Roles{entity.RoleEditor}, got.Roles)
	assert.Equal(t, []string{"view_reports"}, got.Capabilities)

	byEmail, err := repo.FindByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, account.ID, byEmail.ID)
}

func TestAccountRepository_EmptyEmailsDoNotCollide(t *testing.T) {
	repo := NewAccountRepository(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entity.Account{Login: "a", PasswordHash: "h"}))
	require.NoError(t, repo.Create(ctx, &entity.Account{Login: "b", PasswordHash: "h"}))

	_, err := repo.FindByEmail(ctx, "")
	assert.ErrorIs(t, err, repository.ErrAccountNotFound)
}

func TestAccountRepository_DuplicateEmail(t *testing.T) {
	repo := NewAccountRepository(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entity.Account{Login: "a", Email: "x@example.com", PasswordHash: "h"}))

	err := repo.Create(ctx, &entity.Account{Login: "b", Email: "x@example.com", PasswordHash: "h"})
	assert.True(t, errors.Is(err, repository.ErrAccountExists))
}

func TestAccountRepository_UpdateProfile(t *testing.T) {
	repo := NewAccountRepository(newTestDB(t))
	ctx := context.Background()

	account := &entity.Account{Login: "alice", PasswordHash: "h"}
	require.NoError(t, repo.Create(ctx, account))

	err := repo.UpdateProfile(ctx, account.ID, map[entity.ProfileField]string{
		entity.FieldDisplayName: "Alice L",
		entity.FieldEmail:       "alice@example.com",
		entity.FieldAvatarURL:   "https://img.example.com/a.png",
	})
	require.NoError(t, err)

	got, err := repo.FindByID(ctx, account.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice L", got.DisplayName)
	assert.Equal(t, "alice@example.com", got.Email)
	assert.Equal(t, "https://img.example.com/a.png", got.AvatarURL)

	err = repo.UpdateProfile(ctx, 9999, map[entity.ProfileField]string{entity.FieldDisplayName: "x"})
	assert.ErrorIs(t, err, repository.ErrAccountNotFound)
}
