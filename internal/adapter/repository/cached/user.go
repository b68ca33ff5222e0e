package cached

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"user-rest-service/internal/adapter/cache"
	domain "user-rest-service/internal/domain/user"
	"user-rest-service/internal/usecase/user"
)

// UserRepository decorates a persistent repository with cache-aside
// reads and write-through invalidation. Error semantics of the wrapped
// repository are preserved; the cache never turns a hit into a failure.
type UserRepository struct {
	dbRepo user.Repository
	cache  cache.UserCache
	log    *zap.Logger
	group  singleflight.Group
}

// NewUserRepository wraps dbRepo with the given cache.
func NewUserRepository(dbRepo user.Repository, c cache.UserCache, log *zap.Logger) user.Repository {
	return &UserRepository{
		dbRepo: dbRepo,
		cache:  c,
		log:    log,
	}
}

// Create delegates to the persistent repository.
func (r *UserRepository) Create(ctx context.Context, u *domain.User) (int64, error) {
	return r.dbRepo.Create(ctx, u)
}

// GetByID reads through the cache. Concurrent misses for the same ID
// collapse into a single database query.
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	if cachedUser, err := r.cache.Get(ctx, id); err != nil {
		r.log.Warn("cache get error, falling back to database", zap.Int64("id", id), zap.Error(err))
	} else if cachedUser != nil {
		return cachedUser, nil
	}

	key := fmt.Sprintf("user:%d", id)
	result, err, _ := r.group.Do(key, func() (any, error) {
		// Another request may have populated the cache while we waited
		if cachedUser, err := r.cache.Get(ctx, id); err == nil && cachedUser != nil {
			return cachedUser, nil
		}

		u, err := r.dbRepo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}

		if err := r.cache.Set(ctx, u); err != nil {
			r.log.Warn("failed to cache user", zap.Int64("id", id), zap.Error(err))
		}

		return u, nil
	})
	if err != nil {
		return nil, err
	}

	return result.(*domain.User), nil
}

// GetByEmail delegates to the persistent repository.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.dbRepo.GetByEmail(ctx, email)
}

// Update updates the user and invalidates the cached entry.
func (r *UserRepository) Update(ctx context.Context, u *domain.User) (int64, error) {
	id, err := r.dbRepo.Update(ctx, u)
	if err != nil {
		return 0, err
	}

	if err := r.cache.Delete(ctx, u.ID); err != nil {
		r.log.Warn("failed to invalidate cache after update", zap.Int64("id", u.ID), zap.Error(err))
	}

	return id, nil
}

// Delete deletes the user and invalidates the cached entry.
func (r *UserRepository) Delete(ctx context.Context, id int64) (int64, error) {
	deletedID, err := r.dbRepo.Delete(ctx, id)
	if err != nil {
		return 0, err
	}

	if err := r.cache.Delete(ctx, id); err != nil {
		r.log.Warn("failed to invalidate cache after delete", zap.Int64("id", id), zap.Error(err))
	}

	return deletedID, nil
}

// List delegates to the persistent repository. Pages are not cached;
// invalidating them on every write would cost more than the read saves.
func (r *UserRepository) List(ctx context.Context, page domain.PageRequest) ([]domain.User, error) {
	return r.dbRepo.List(ctx, page)
}
