package usecase

import (
	"context"
	"errors"
	"fmt"

	"user_backend/internal/feature/users/domain/entity"
	"user_backend/internal/platform/validation"
)

// DefaultSearchLimit is the page size used when the search request omits one.
const DefaultSearchLimit = 10

// SearchQuery describes a user search: optional substring filters, optional
// ordering and offset pagination. Filters of nil mean "not supplied"; when
// either filter is supplied the repository matches email OR phone, with the
// missing filter treated as the empty string.
type SearchQuery struct {
	Email   *string
	Phone   *string
	OrderBy string // "email" or "phone", "" for store order
	Order   string // "asc" or "desc", "" defaults to "desc" when OrderBy is set
	Limit   int
	Page    int // 1-based
}

// UserRepository abstracts the persistence layer for user records.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (adapters).
type UserRepository interface {
	// ListAll returns every user in store order.
	ListAll(ctx context.Context) ([]entity.User, error)

	// FindByID returns the user with the given id, or ErrUserNotFound.
	FindByID(ctx context.Context, id uint) (*entity.User, error)

	// FindByAttrs returns a user whose attributes all equal the given record's
	// (nil phone/age match NULL), or ErrUserNotFound.
	FindByAttrs(ctx context.Context, u *entity.User) (*entity.User, error)

	// Create inserts a new user and fills in its id and timestamps.
	Create(ctx context.Context, u *entity.User) error

	// Update persists all fields of an existing user.
	Update(ctx context.Context, u *entity.User) error

	// Delete removes the user with the given id, or returns ErrUserNotFound.
	Delete(ctx context.Context, id uint) error

	// EmailExists reports whether a user other than excludeID holds the email.
	EmailExists(ctx context.Context, email string, excludeID uint) (bool, error)

	// PhoneExists reports whether a user other than excludeID holds the phone.
	PhoneExists(ctx context.Context, phone string, excludeID uint) (bool, error)

	// Search returns one page of users matching the query plus a flag
	// reporting whether a further page exists.
	Search(ctx context.Context, q SearchQuery) ([]entity.User, bool, error)
}

// CreateInput carries the validated fields for creating or updating a user.
type CreateInput struct {
	FullName string
	Email    string
	Phone    *string
	Age      *int
}

// UserUsecase provides the business logic for the user CRUD operations.
type UserUsecase struct {
	repo UserRepository
}

// NewUserUsecase creates a new UserUsecase with the given repository.
func NewUserUsecase(r UserRepository) *UserUsecase {
	return &UserUsecase{repo: r}
}

// List returns all users.
func (u *UserUsecase) List(ctx context.Context) ([]entity.User, error) {
	return u.repo.ListAll(ctx)
}

// Get returns the user with the given id.
func (u *UserUsecase) Get(ctx context.Context, id uint) (*entity.User, error) {
	return u.repo.FindByID(ctx, id)
}

// Create stores a new user with first-or-create semantics: a record matching
// every given attribute exactly is returned unchanged, a partial collision on
// a unique field is a field-level validation error, anything else is inserted.
// The second return value reports whether a new record was created.
func (u *UserUsecase) Create(ctx context.Context, in CreateInput) (*entity.User, bool, error) {
	user := &entity.User{
		FullName: in.FullName,
		Email:    in.Email,
		Phone:    in.Phone,
		Age:      in.Age,
	}

	// Exact match wins over the uniqueness checks: create is idempotent on
	// identical input.
	existing, err := u.repo.FindByAttrs(ctx, user)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, ErrUserNotFound) {
		return nil, false, fmt.Errorf("failed to look up user: %w", err)
	}

	if ferr, err := u.checkUnique(ctx, user.Email, user.Phone, 0); err != nil {
		return nil, false, err
	} else if ferr != nil {
		return nil, false, ferr
	}

	if err := u.repo.Create(ctx, user); err != nil {
		return nil, false, fmt.Errorf("failed to create user: %w", err)
	}
	return user, true, nil
}

// Update applies the supplied fields to an existing user and persists them.
// FullName and Email are always applied; Phone and Age only when supplied.
func (u *UserUsecase) Update(ctx context.Context, id uint, in CreateInput) (*entity.User, error) {
	user, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Uniqueness checks ignore the record being updated.
	if ferr, err := u.checkUnique(ctx, in.Email, in.Phone, id); err != nil {
		return nil, err
	} else if ferr != nil {
		return nil, ferr
	}

	user.FullName = in.FullName
	user.Email = in.Email
	if in.Phone != nil {
		user.Phone = in.Phone
	}
	if in.Age != nil {
		user.Age = in.Age
	}

	if err := u.repo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return user, nil
}

// Delete removes the user with the given id and returns its last state.
func (u *UserUsecase) Delete(ctx context.Context, id uint) (*entity.User, error) {
	user, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := u.repo.Delete(ctx, id); err != nil {
		return nil, err
	}
	return user, nil
}

// Search returns one page of users matching the query and whether more exist.
func (u *UserUsecase) Search(ctx context.Context, q SearchQuery) ([]entity.User, bool, error) {
	if q.Limit <= 0 {
		q.Limit = DefaultSearchLimit
	}
	if q.Page <= 0 {
		q.Page = 1
	}
	if q.OrderBy != "" && q.Order == "" {
		q.Order = "desc"
	}
	return u.repo.Search(ctx, q)
}

// checkUnique reports collisions on the unique email/phone columns as a
// field-level validation error.
func (u *UserUsecase) checkUnique(ctx context.Context, email string, phone *string, excludeID uint) (validation.Errors, error) {
	ferr := validation.Errors{}

	taken, err := u.repo.EmailExists(ctx, email, excludeID)
	if err != nil {
		return nil, fmt.Errorf("failed to check email uniqueness: %w", err)
	}
	if taken {
		ferr.Add("email", validation.Taken("email"))
	}

	if phone != nil {
		taken, err := u.repo.PhoneExists(ctx, *phone, excludeID)
		if err != nil {
			return nil, fmt.Errorf("failed to check phone uniqueness: %w", err)
		}
		if taken {
			ferr.Add("phone", validation.Taken("phone"))
		}
	}

	if len(ferr) == 0 {
		return nil, nil
	}
	return ferr, nil
}
