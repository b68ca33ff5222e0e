package cached

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"user-rest-service/internal/adapter/cache"
	domain "user-rest-service/internal/domain/user"
	"user-rest-service/internal/usecase/user"
	pkgerrors "user-rest-service/pkg/errors"
)

// countingRepo is a fake persistent repository that records GetByID calls.
type countingRepo struct {
	users      map[int64]domain.User
	getByIDCnt atomic.Int64
}

func (r *countingRepo) Create(ctx context.Context, u *domain.User) (int64, error) {
	id := int64(len(r.users) + 1)
	r.users[id] = domain.User{ID: id, Name: u.Name, Email: u.Email}
	return id, nil
}

func (r *countingRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	r.getByIDCnt.Add(1)
	u, ok := r.users[id]
	if !ok {
		return nil, pkgerrors.NewNotFoundError("user", "user not found")
	}
	return &u, nil
}

func (r *countingRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, nil
}

func (r *countingRepo) Update(ctx context.Context, u *domain.User) (int64, error) {
	if _, ok := r.users[u.ID]; !ok {
		return 0, pkgerrors.NewNotFoundError("user", "user not found")
	}
	r.users[u.ID] = *u
	return u.ID, nil
}

func (r *countingRepo) Delete(ctx context.Context, id int64) (int64, error) {
	if _, ok := r.users[id]; !ok {
		return 0, pkgerrors.NewNotFoundError("user", "user not found")
	}
	delete(r.users, id)
	return id, nil
}

func (r *countingRepo) List(ctx context.Context, page domain.PageRequest) ([]domain.User, error) {
	return nil, nil
}

func setupCachedRepo(t *testing.T) (user.Repository, *countingRepo, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		_ = client.Close()
	})

	log := zaptest.NewLogger(t)
	userCache := cache.NewRedisUserCache(client, time.Minute, log)
	dbRepo := &countingRepo{users: map[int64]domain.User{
		1: {ID: 1, Name: "John Doe", Email: "john@example.com"},
	}}

	return NewUserRepository(dbRepo, userCache, log), dbRepo, mr
}

func TestCachedRepo_GetByID_PopulatesCache(t *testing.T) {
	repo, dbRepo, _ := setupCachedRepo(t)
	ctx := context.Background()

	first, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "John Doe", first.Name)
	assert.Equal(t, int64(1), dbRepo.getByIDCnt.Load())

	// Second read is served from cache
	second, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, int64(1), dbRepo.getByIDCnt.Load())
}

func TestCachedRepo_GetByID_NotFoundPassesThrough(t *testing.T) {
	repo, _, _ := setupCachedRepo(t)

	_, err := repo.GetByID(context.Background(), 99)
	require.Error(t, err)

	var notFoundErr *pkgerrors.NotFoundError
	assert.True(t, errors.As(err, &notFoundErr))
}

func TestCachedRepo_Update_InvalidatesCache(t *testing.T) {
	repo, dbRepo, _ := setupCachedRepo(t)
	ctx := context.Background()

	_, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)

	_, err = repo.Update(ctx, &domain.User{ID: 1, Name: "John Updated", Email: "john@example.com"})
	require.NoError(t, err)

	// The stale entry is gone; the next read hits the database again
	got, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "John Updated", got.Name)
	assert.Equal(t, int64(2), dbRepo.getByIDCnt.Load())
}

func TestCachedRepo_Delete_InvalidatesCache(t *testing.T) {
	repo, _, mr := setupCachedRepo(t)
	ctx := context.Background()

	_, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.True(t, mr.Exists("user:1"))

	_, err = repo.Delete(ctx, 1)
	require.NoError(t, err)
	assert.False(t, mr.Exists("user:1"))

	_, err = repo.GetByID(ctx, 1)
	var notFoundErr *pkgerrors.NotFoundError
	assert.True(t, errors.As(err, &notFoundErr))
}

func TestCachedRepo_CacheFailureFallsBack(t *testing.T) {
	repo, _, mr := setupCachedRepo(t)
	ctx := context.Background()

	// With Redis down, reads still come from the database
	mr.Close()

	got, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "John Doe", got.Name)
}
