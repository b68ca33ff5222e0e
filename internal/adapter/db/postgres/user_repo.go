package postgres

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"user-rest-service/internal/domain/user"
	pkgerrors "user-rest-service/pkg/errors"
)

// UserRepo implements the user repository on top of GORM.
type UserRepo struct {
	db  *gorm.DB
	log *zap.Logger
}

// NewUserRepo creates a new GORM-backed user repository.
func NewUserRepo(db *gorm.DB, log *zap.Logger) *UserRepo {
	return &UserRepo{db: db, log: log}
}

// UserSchema represents the database schema for the users table.
type UserSchema struct {
	ID    int64  `gorm:"primaryKey;autoIncrement"`
	Name  string `gorm:"not null"`
	Email string `gorm:"not null;unique"`
}

// TableName specifies the table name for the UserSchema model.
func (UserSchema) TableName() string {
	return "users"
}

// Create inserts a new user and returns the assigned ID.
func (r *UserRepo) Create(ctx context.Context, u *user.User) (int64, error) {
	if u == nil {
		return 0, errors.New("user cannot be nil")
	}

	model := UserSchema{
		Name:  u.Name,
		Email: u.Email,
	}

	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		r.log.Error("failed to create user in db", zap.Error(err), zap.String("email", u.Email))
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return 0, pkgerrors.NewConflictError("user", "email already exists")
		}
		return 0, fmt.Errorf("failed to create user: %w", err)
	}

	r.log.Info("user created in db", zap.Int64("id", model.ID))
	return model.ID, nil
}

// GetByID retrieves a user by ID. Returns a NotFoundError when no row
// matches.
func (r *UserRepo) GetByID(ctx context.Context, id int64) (*user.User, error) {
	var model UserSchema
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.log.Warn("user not found", zap.Int64("id", id))
			return nil, pkgerrors.NewNotFoundError("user", "user not found")
		}
		r.log.Error("failed to get user from db", zap.Error(err), zap.Int64("id", id))
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user.User{
		ID:    model.ID,
		Name:  model.Name,
		Email: model.Email,
	}, nil
}

// GetByEmail retrieves a user by email. Returns (nil, nil) when no row
// matches, so callers can treat absence as a non-error.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	var model UserSchema
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.log.Error("failed to get user by email from db", zap.Error(err), zap.String("email", email))
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return &user.User{
		ID:    model.ID,
		Name:  model.Name,
		Email: model.Email,
	}, nil
}

// Update replaces the name and email of an existing user. Returns a
// NotFoundError when the row does not exist.
func (r *UserRepo) Update(ctx context.Context, u *user.User) (int64, error) {
	if u == nil {
		return 0, errors.New("user cannot be nil")
	}

	result := r.db.WithContext(ctx).Model(&UserSchema{}).Where("id = ?", u.ID).
		Updates(map[string]any{"name": u.Name, "email": u.Email})
	if result.Error != nil {
		r.log.Error("failed to update user in db", zap.Error(result.Error), zap.Int64("id", u.ID))
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return 0, pkgerrors.NewConflictError("user", "email already exists")
		}
		return 0, fmt.Errorf("failed to update user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		r.log.Warn("user to update not found", zap.Int64("id", u.ID))
		return 0, pkgerrors.NewNotFoundError("user", "user not found")
	}

	r.log.Info("user updated in db", zap.Int64("id", u.ID))
	return u.ID, nil
}

// Delete removes a user by ID. Returns a NotFoundError when the row
// does not exist.
func (r *UserRepo) Delete(ctx context.Context, id int64) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&UserSchema{}, id)
	if result.Error != nil {
		r.log.Error("failed to delete user in db", zap.Error(result.Error), zap.Int64("id", id))
		return 0, fmt.Errorf("failed to delete user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		r.log.Warn("user to delete not found", zap.Int64("id", id))
		return 0, pkgerrors.NewNotFoundError("user", "user not found")
	}

	r.log.Info("user deleted in db", zap.Int64("id", id))
	return id, nil
}

// List retrieves one page of users ordered by ascending ID.
func (r *UserRepo) List(ctx context.Context, page user.PageRequest) ([]user.User, error) {
	var models []UserSchema
	err := r.db.WithContext(ctx).
		Order("id ASC").
		Offset(int(page.Offset())).
		Limit(int(page.Limit)).
		Find(&models).Error
	if err != nil {
		r.log.Error("failed to list users from db", zap.Error(err),
			zap.Int64("page", page.Page), zap.Int64("limit", page.Limit))
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	users := make([]user.User, len(models))
	for i, model := range models {
		users[i] = user.User{
			ID:    model.ID,
			Name:  model.Name,
			Email: model.Email,
		}
	}

	return users, nil
}
