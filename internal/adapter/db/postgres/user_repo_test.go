package postgres

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"gorm.io/gorm"

	"user-rest-service/internal/domain/user"
	pkgerrors "user-rest-service/pkg/errors"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
	})
	require.NoError(t, err)

	err = db.AutoMigrate(&UserSchema{})
	require.NoError(t, err)

	return db
}

func setupRepo(t *testing.T) *UserRepo {
	return NewUserRepo(setupTestDB(t), zaptest.NewLogger(t))
}

func TestUserRepo_Create(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	id, err := repo.Create(ctx, &user.User{Name: "John Doe", Email: "john@example.com"})
	require.NoError(t, err)
	assert.Greater(t, id, int64(0))

	got, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "John Doe", got.Name)
	assert.Equal(t, "john@example.com", got.Email)
}

func TestUserRepo_Create_DuplicateEmail(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	_, err := repo.Create(ctx, &user.User{Name: "John Doe", Email: "john@example.com"})
	require.NoError(t, err)

	_, err = repo.Create(ctx, &user.User{Name: "Other John", Email: "john@example.com"})
	require.Error(t, err)

	var conflictErr *pkgerrors.ConflictError
	assert.True(t, errors.As(err, &conflictErr))
}

func TestUserRepo_Create_NilUser(t *testing.T) {
	repo := setupRepo(t)

	_, err := repo.Create(context.Background(), nil)
	assert.Error(t, err)
}

func TestUserRepo_GetByID_NotFound(t *testing.T) {
	repo := setupRepo(t)

	_, err := repo.GetByID(context.Background(), 42)
	require.Error(t, err)

	var notFoundErr *pkgerrors.NotFoundError
	assert.True(t, errors.As(err, &notFoundErr))
}

func TestUserRepo_GetByEmail(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	id, err := repo.Create(ctx, &user.User{Name: "Jane Smith", Email: "jane@example.com"})
	require.NoError(t, err)

	got, err := repo.GetByEmail(ctx, "jane@example.com")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, id, got.ID)

	// Absence is not an error
	got, err = repo.GetByEmail(ctx, "nobody@example.com")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestUserRepo_Update(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	id, err := repo.Create(ctx, &user.User{Name: "John Doe", Email: "john@example.com"})
	require.NoError(t, err)

	updatedID, err := repo.Update(ctx, &user.User{ID: id, Name: "John Updated", Email: "john.updated@example.com"})
	require.NoError(t, err)
	assert.Equal(t, id, updatedID)

	got, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "John Updated", got.Name)
	assert.Equal(t, "john.updated@example.com", got.Email)
}

func TestUserRepo_Update_NotFound(t *testing.T) {
	repo := setupRepo(t)

	_, err := repo.Update(context.Background(), &user.User{ID: 42, Name: "Ghost", Email: "ghost@example.com"})
	require.Error(t, err)

	var notFoundErr *pkgerrors.NotFoundError
	assert.True(t, errors.As(err, &notFoundErr))
}

func TestUserRepo_Delete(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	id, err := repo.Create(ctx, &user.User{Name: "John Doe", Email: "john@example.com"})
	require.NoError(t, err)

	deletedID, err := repo.Delete(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, deletedID)

	// Deleted user is unfindable afterwards
	_, err = repo.GetByID(ctx, id)
	var notFoundErr *pkgerrors.NotFoundError
	assert.True(t, errors.As(err, &notFoundErr))
}

func TestUserRepo_Delete_NotFound(t *testing.T) {
	repo := setupRepo(t)

	_, err := repo.Delete(context.Background(), 42)
	require.Error(t, err)

	var notFoundErr *pkgerrors.NotFoundError
	assert.True(t, errors.As(err, &notFoundErr))
}

func TestUserRepo_List(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	for i := 1; i <= 5; i++ {
		_, err := repo.Create(ctx, &user.User{
			Name:  fmt.Sprintf("User %d", i),
			Email: fmt.Sprintf("user%d@example.com", i),
		})
		require.NoError(t, err)
	}

	tests := []struct {
		name      string
		page      user.PageRequest
		wantCount int
		wantFirst string
	}{
		{
			name:      "first page",
			page:      user.PageRequest{Page: 1, Limit: 2},
			wantCount: 2,
			wantFirst: "User 1",
		},
		{
			name:      "second page",
			page:      user.PageRequest{Page: 2, Limit: 2},
			wantCount: 2,
			wantFirst: "User 3",
		},
		{
			name:      "partial last page",
			page:      user.PageRequest{Page: 3, Limit: 2},
			wantCount: 1,
			wantFirst: "User 5",
		},
		{
			name:      "page past the end is empty",
			page:      user.PageRequest{Page: 10, Limit: 2},
			wantCount: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users, err := repo.List(ctx, tt.page)
			require.NoError(t, err)
			require.Len(t, users, tt.wantCount)
			if tt.wantCount > 0 {
				assert.Equal(t, tt.wantFirst, users[0].Name)
			}
		})
	}
}

func TestUserRepo_List_OrderedByID(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	for _, name := range []string{"Charlie", "Alice", "Bob"} {
		_, err := repo.Create(ctx, &user.User{Name: name, Email: name + "@example.com"})
		require.NoError(t, err)
	}

	users, err := repo.List(ctx, user.PageRequest{Page: 1, Limit: 10})
	require.NoError(t, err)
	require.Len(t, users, 3)

	for i := 1; i < len(users); i++ {
		assert.Less(t, users[i-1].ID, users[i].ID)
	}
}
