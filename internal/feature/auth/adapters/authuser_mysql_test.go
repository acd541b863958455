package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"user_backend/internal/feature/auth/domain/entity"
	"user_backend/internal/feature/auth/usecase"
)

// setupTestDB prepares an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to initialize test database")

	err = db.AutoMigrate(&entity.AuthUser{})
	require.NoError(t, err, "failed to migrate table")

	return db
}

func TestNewAuthUserMySQL(t *testing.T) {
	db := setupTestDB(t)

	repo := NewAuthUserMySQL(db)

	assert.NotNil(t, repo, "repository is nil")
	assert.NotNil(t, repo.db, "database connection is nil")
}

func TestAuthUserMySQL_Create(t *testing.T) {
	t.Run("successful account creation", func(t *testing.T) {
		repo := NewAuthUserMySQL(setupTestDB(t))

		u := &entity.AuthUser{Name: "A", Email: "a@a.com", Password: "hashed_password"}
		err := repo.Create(context.Background(), u)

		assert.NoError(t, err)
		assert.NotZero(t, u.ID, "ID is not set")
		assert.False(t, u.CreatedAt.IsZero(), "CreatedAt is not set")
		assert.False(t, u.UpdatedAt.IsZero(), "UpdatedAt is not set")
	})

	t.Run("duplicate email errors", func(t *testing.T) {
		repo := NewAuthUserMySQL(setupTestDB(t))

		u1 := &entity.AuthUser{Name: "A", Email: "duplicate@a.com", Password: "p1"}
		require.NoError(t, repo.Create(context.Background(), u1))

		u2 := &entity.AuthUser{Name: "B", Email: "duplicate@a.com", Password: "p2"}
		err := repo.Create(context.Background(), u2)

		assert.Error(t, err, "should return duplicate error")
	})
}

func TestAuthUserMySQL_FindByEmail(t *testing.T) {
	t.Run("finds an existing account", func(t *testing.T) {
		repo := NewAuthUserMySQL(setupTestDB(t))

		seeded := &entity.AuthUser{Name: "A", Email: "find@a.com", Password: "hashed_password"}
		require.NoError(t, repo.Create(context.Background(), seeded))

		got, err := repo.FindByEmail(context.Background(), "find@a.com")

		require.NoError(t, err)
		assert.Equal(t, seeded.ID, got.ID)
		assert.Equal(t, "A", got.Name)
		assert.Equal(t, "hashed_password", got.Password)
	})

	t.Run("missing email returns ErrUserNotFound", func(t *testing.T) {
		repo := NewAuthUserMySQL(setupTestDB(t))

		_, err := repo.FindByEmail(context.Background(), "nobody@a.com")

		assert.ErrorIs(t, err, usecase.ErrUserNotFound)
	})
}
