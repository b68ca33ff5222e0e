package user

import (
	"context"

	domain "user-rest-service/internal/domain/user"
)

// Usecase defines the interface for user business logic operations.
type Usecase interface {
	CreateUser(ctx context.Context, in CreateUserRequest) (*User, error)
	GetUser(ctx context.Context, in GetUserRequest) (*User, error)
	UpdateUser(ctx context.Context, in UpdateUserRequest) (*User, error)
	DeleteUser(ctx context.Context, in DeleteUserRequest) (*DeleteUserResponse, error)
	ListUsers(ctx context.Context, in ListUsersRequest) (*ListUsersResponse, error)
}

// Repository defines the interface for user data access. Implementations
// must report a missing record through *errors.NotFoundError so the
// transport layer can distinguish it from generic failures.
type Repository interface {
	Create(ctx context.Context, u *domain.User) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, u *domain.User) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
	List(ctx context.Context, page domain.PageRequest) ([]domain.User, error)
}
