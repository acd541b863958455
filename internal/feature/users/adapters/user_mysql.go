// Package adapters provides the repository implementations for the users feature.
package adapters

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	"user_backend/internal/feature/users/domain/entity"
	"user_backend/internal/feature/users/usecase"
)

// userMySQL is the MySQL implementation of the UserRepository interface.
type userMySQL struct {
	db *gorm.DB
}

var _ usecase.UserRepository = (*userMySQL)(nil)

// NewUserMySQL creates a new userMySQL with the given gorm.DB connection.
func NewUserMySQL(db *gorm.DB) *userMySQL {
	return &userMySQL{db: db}
}

// ListAll returns every user in store order.
func (r *userMySQL) ListAll(ctx context.Context) ([]entity.User, error) {
	var users []entity.User
	if err := r.db.WithContext(ctx).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// FindByID retrieves a user by id.
// It returns usecase.ErrUserNotFound when no record exists.
func (r *userMySQL) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// FindByAttrs retrieves a user whose attributes all equal the given record's.
// Optional fields that are nil must be NULL in the matched row.
func (r *userMySQL) FindByAttrs(ctx context.Context, u *entity.User) (*entity.User, error) {
	q := r.db.WithContext(ctx).
		Where("fullName = ?", u.FullName).
		Where("email = ?", u.Email)
	if u.Phone != nil {
		q = q.Where("phone = ?", *u.Phone)
	} else {
		q = q.Where("phone IS NULL")
	}
	if u.Age != nil {
		q = q.Where("age = ?", *u.Age)
	} else {
		q = q.Where("age IS NULL")
	}

	var found entity.User
	if err := q.First(&found).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &found, nil
}

// Create inserts a user into the database.
// Unique-key collisions surface as the matching usecase sentinel.
func (r *userMySQL) Create(ctx context.Context, u *entity.User) error {
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		return duplicateKeyError(err)
	}
	return nil
}

// Update persists all fields of an existing user.
func (r *userMySQL) Update(ctx context.Context, u *entity.User) error {
	if err := r.db.WithContext(ctx).Save(u).Error; err != nil {
		return duplicateKeyError(err)
	}
	return nil
}

// Delete removes a user permanently.
// It returns usecase.ErrUserNotFound when no row was affected.
func (r *userMySQL) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&entity.User{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrUserNotFound
	}
	return nil
}

// EmailExists reports whether a user other than excludeID holds the email.
func (r *userMySQL) EmailExists(ctx context.Context, email string, excludeID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entity.User{}).
		Where("email = ? AND id <> ?", email, excludeID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// PhoneExists reports whether a user other than excludeID holds the phone.
func (r *userMySQL) PhoneExists(ctx context.Context, phone string, excludeID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entity.User{}).
		Where("phone = ? AND id <> ?", phone, excludeID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Search returns one page of users plus a has-more flag.
// When either filter is supplied the query matches email OR phone as
// substrings, with the missing filter defaulting to the empty string (which
// matches everything). The extra row fetched beyond the page size is only
// used to detect a further page.
func (r *userMySQL) Search(ctx context.Context, q usecase.SearchQuery) ([]entity.User, bool, error) {
	tx := r.db.WithContext(ctx).Model(&entity.User{})

	if q.Email != nil || q.Phone != nil {
		email, phone := "", ""
		if q.Email != nil {
			email = *q.Email
		}
		if q.Phone != nil {
			phone = *q.Phone
		}
		tx = tx.Where("email LIKE ? OR phone LIKE ?", "%"+email+"%", "%"+phone+"%")
	}

	if q.OrderBy != "" {
		// OrderBy and Order are restricted to validated enum values upstream.
		dir := "desc"
		if strings.EqualFold(q.Order, "asc") {
			dir = "asc"
		}
		tx = tx.Order(fmt.Sprintf("%s %s", q.OrderBy, dir))
	}

	var users []entity.User
	offset := (q.Page - 1) * q.Limit
	if err := tx.Offset(offset).Limit(q.Limit + 1).Find(&users).Error; err != nil {
		return nil, false, err
	}

	hasMore := len(users) > q.Limit
	if hasMore {
		users = users[:q.Limit]
	}
	return users, hasMore, nil
}

// duplicateKeyError maps a MySQL duplicate-entry error (1062) onto the
// usecase sentinel for the colliding column.
func duplicateKeyError(err error) error {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
		if strings.Contains(mysqlErr.Message, "phone") {
			return usecase.ErrPhoneAlreadyExists
		}
		return usecase.ErrEmailAlreadyExists
	}
	return err
}
