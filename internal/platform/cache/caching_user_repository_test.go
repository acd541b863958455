package cache

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"

	"user_backend/internal/feature/users/domain/entity"
	"user_backend/internal/feature/users/usecase"
)

// mockUserRepository is a mock implementation of usecase.UserRepository.
type mockUserRepository struct {
	findByIDFn func(ctx context.Context, id uint) (*entity.User, error)
	createFn   func(ctx context.Context, u *entity.User) error
	updateFn   func(ctx context.Context, u *entity.User) error
	deleteFn   func(ctx context.Context, id uint) error
}

func (m *mockUserRepository) ListAll(ctx context.Context) ([]entity.User, error) { return nil, nil }

func (m *mockUserRepository) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return nil, usecase.ErrUserNotFound
}

func (m *mockUserRepository) FindByAttrs(ctx context.Context, u *entity.User) (*entity.User, error) {
	return nil, usecase.ErrUserNotFound
}

func (m *mockUserRepository) Create(ctx context.Context, u *entity.User) error {
	if m.createFn != nil {
		return m.createFn(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) Update(ctx context.Context, u *entity.User) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) Delete(ctx context.Context, id uint) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func (m *mockUserRepository) EmailExists(ctx context.Context, email string, excludeID uint) (bool, error) {
	return false, nil
}

func (m *mockUserRepository) PhoneExists(ctx context.Context, phone string, excludeID uint) (bool, error) {
	return false, nil
}

func (m *mockUserRepository) Search(ctx context.Context, q usecase.SearchQuery) ([]entity.User, bool, error) {
	return nil, false, nil
}

// TestNewCachingUserRepository_Defaults verifies the TTL and namespace defaults.
func TestNewCachingUserRepository_Defaults(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name              string
		ttl               time.Duration
		namespace         string
		expectedTTL       time.Duration
		expectedNamespace string
	}{
		{
			name:              "default values when zero/empty",
			ttl:               0,
			namespace:         "",
			expectedTTL:       15 * time.Minute,
			expectedNamespace: "users",
		},
		{
			name:              "negative ttl uses default",
			ttl:               -1 * time.Minute,
			namespace:         "",
			expectedTTL:       15 * time.Minute,
			expectedNamespace: "users",
		},
		{
			name:              "custom values preserved",
			ttl:               10 * time.Minute,
			namespace:         "custom",
			expectedTTL:       10 * time.Minute,
			expectedNamespace: "custom",
		},
	}

	for _, tt := range tests {

		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			repo := NewCachingUserRepository(nil, tt.ttl, &mockUserRepository{}, tt.namespace)

			if repo.ttl != tt.expectedTTL {
				t.Errorf("expected TTL %v, got %v", tt.expectedTTL, repo.ttl)
			}
			if repo.namespace != tt.expectedNamespace {
				t.Errorf("expected namespace %q, got %q", tt.expectedNamespace, repo.namespace)
			}
		})
	}
}

// TestCachingUserRepository_FindByID_NilRedis verifies the decorator bypasses
// the cache and calls the inner repository directly when Redis is nil.
func TestCachingUserRepository_FindByID_NilRedis(t *testing.T) {
	t.Parallel()

	expected := &entity.User{ID: 1, FullName: "A", Email: "a@a.com"}
	inner := &mockUserRepository{
		findByIDFn: func(ctx context.Context, id uint) (*entity.User, error) {
			return expected, nil
		},
	}

	repo := NewCachingUserRepository(nil, 15*time.Minute, inner, "users")

	got, err := repo.FindByID(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Email != expected.Email {
		t.Errorf("expected email %q, got %q", expected.Email, got.Email)
	}
}

// TestCachingUserRepository_FindByID_CacheHit verifies a hit serves the
// snapshot without touching the inner repository, even when the store has a
// newer version of the record.
func TestCachingUserRepository_FindByID_CacheHit(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	cached := entity.User{ID: 7, FullName: "Cached Name", Email: "cached@a.com"}
	cachedJSON, _ := json.Marshal(cached)
	mock.ExpectGet("users:7").SetVal(string(cachedJSON))

	innerCalled := false
	inner := &mockUserRepository{
		findByIDFn: func(ctx context.Context, id uint) (*entity.User, error) {
			innerCalled = true
			return &entity.User{ID: 7, FullName: "Fresh Name", Email: "fresh@a.com"}, nil
		},
	}

	repo := NewCachingUserRepository(rdb, 15*time.Minute, inner, "users")

	got, err := repo.FindByID(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if innerCalled {
		t.Error("inner repository should not be called on a cache hit")
	}
	if got.FullName != "Cached Name" {
		t.Errorf("expected stale snapshot, got %q", got.FullName)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet redis expectations: %v", err)
	}
}

// TestCachingUserRepository_FindByID_CacheMiss verifies a miss falls back to
// the inner repository and stores the result with the configured TTL.
func TestCachingUserRepository_FindByID_CacheMiss(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	fresh := &entity.User{ID: 3, FullName: "B", Email: "b@b.com"}
	freshJSON, _ := json.Marshal(fresh)

	mock.ExpectGet("users:3").RedisNil()
	mock.ExpectSet("users:3", freshJSON, 15*time.Minute).SetVal("OK")

	inner := &mockUserRepository{
		findByIDFn: func(ctx context.Context, id uint) (*entity.User, error) {
			return fresh, nil
		},
	}

	repo := NewCachingUserRepository(rdb, 15*time.Minute, inner, "users")

	got, err := repo.FindByID(context.Background(), 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != 3 {
		t.Errorf("expected id 3, got %d", got.ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet redis expectations: %v", err)
	}
}

// TestCachingUserRepository_FindByID_CorruptedEntry verifies a corrupted
// cache entry is deleted and the inner repository takes over.
func TestCachingUserRepository_FindByID_CorruptedEntry(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	fresh := &entity.User{ID: 4, FullName: "C", Email: "c@c.com"}
	freshJSON, _ := json.Marshal(fresh)

	mock.ExpectGet("users:4").SetVal("{not json")
	mock.ExpectDel("users:4").SetVal(1)
	mock.ExpectSet("users:4", freshJSON, 15*time.Minute).SetVal("OK")

	inner := &mockUserRepository{
		findByIDFn: func(ctx context.Context, id uint) (*entity.User, error) {
			return fresh, nil
		},
	}

	repo := NewCachingUserRepository(rdb, 15*time.Minute, inner, "users")

	got, err := repo.FindByID(context.Background(), 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Email != "c@c.com" {
		t.Errorf("expected fresh record, got %q", got.Email)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet redis expectations: %v", err)
	}
}

// TestCachingUserRepository_Update_RefreshesSnapshot verifies write-through:
// a successful update replaces the cached snapshot.
func TestCachingUserRepository_Update_RefreshesSnapshot(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	u := &entity.User{ID: 5, FullName: "Updated", Email: "u@u.com"}
	uJSON, _ := json.Marshal(u)
	mock.ExpectSet("users:5", uJSON, 15*time.Minute).SetVal("OK")

	repo := NewCachingUserRepository(rdb, 15*time.Minute, &mockUserRepository{}, "users")

	if err := repo.Update(context.Background(), u); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet redis expectations: %v", err)
	}
}

// TestCachingUserRepository_Update_InnerFailure verifies the cache is left
// untouched when the store rejects the write.
func TestCachingUserRepository_Update_InnerFailure(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	expectedErr := errors.New("db down")
	inner := &mockUserRepository{
		updateFn: func(ctx context.Context, u *entity.User) error { return expectedErr },
	}

	repo := NewCachingUserRepository(rdb, 15*time.Minute, inner, "users")

	err := repo.Update(context.Background(), &entity.User{ID: 5})
	if !errors.Is(err, expectedErr) {
		t.Fatalf("expected %v, got %v", expectedErr, err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet redis expectations: %v", err)
	}
}

// TestCachingUserRepository_Delete_Invalidates verifies a delete removes the
// cached snapshot.
func TestCachingUserRepository_Delete_Invalidates(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	mock.ExpectDel("users:9").SetVal(1)

	repo := NewCachingUserRepository(rdb, 15*time.Minute, &mockUserRepository{}, "users")

	if err := repo.Delete(context.Background(), 9); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet redis expectations: %v", err)
	}
}

// TestCachingUserRepository_Create_PrimesCache verifies a create stores the
// new record's snapshot.
func TestCachingUserRepository_Create_PrimesCache(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	inner := &mockUserRepository{
		createFn: func(ctx context.Context, u *entity.User) error {
			u.ID = 11 // simulate the auto-assigned id
			return nil
		},
	}

	u := &entity.User{FullName: "New", Email: "n@n.com"}
	withID := *u
	withID.ID = 11
	primedJSON, _ := json.Marshal(&withID)
	mock.ExpectSet("users:11", primedJSON, 15*time.Minute).SetVal("OK")

	repo := NewCachingUserRepository(rdb, 15*time.Minute, inner, "users")

	if err := repo.Create(context.Background(), u); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet redis expectations: %v", err)
	}
}
