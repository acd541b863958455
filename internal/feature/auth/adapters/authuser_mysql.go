// Package adapters provides the repository implementations for the auth feature.
package adapters

import (
	"context"
	"errors"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	"user_backend/internal/feature/auth/domain/entity"
	"user_backend/internal/feature/auth/usecase"
)

// authUserMySQL is the MySQL implementation of the AuthUserRepository interface.
type authUserMySQL struct {
	db *gorm.DB
}

var _ usecase.AuthUserRepository = (*authUserMySQL)(nil)

// NewAuthUserMySQL creates a new authUserMySQL with the given gorm.DB connection.
func NewAuthUserMySQL(db *gorm.DB) *authUserMySQL {
	return &authUserMySQL{db: db}
}

// Create inserts an account into the database.
// It returns usecase.ErrEmailAlreadyExists on a duplicate email.
func (r *authUserMySQL) Create(ctx context.Context, u *entity.AuthUser) error {
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		// MySQL error 1062: duplicate entry for a unique key.
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
			return usecase.ErrEmailAlreadyExists
		}
		return err
	}
	return nil
}

// FindByEmail retrieves an account by email.
// It returns usecase.ErrUserNotFound when no account exists.
func (r *authUserMySQL) FindByEmail(ctx context.Context, email string) (*entity.AuthUser, error) {
	var u entity.AuthUser
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}
