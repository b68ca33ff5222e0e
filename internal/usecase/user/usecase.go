package user

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	domain "user-rest-service/internal/domain/user"
	pkgerrors "user-rest-service/pkg/errors"
)

// Service implements the user business logic on top of a Repository.
type Service struct {
	repo     Repository
	log      *zap.Logger
	validate *validator.Validate
}

// New creates a user Service with the provided repository and logger.
func New(r Repository, log *zap.Logger) *Service {
	return &Service{repo: r, log: log, validate: validator.New()}
}

// formatValidationError converts validator.ValidationErrors into a
// ValidationError with a readable message.
func formatValidationError(err error) error {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	var messages []string
	for _, e := range validationErrors {
		switch e.Tag() {
		case "required":
			messages = append(messages, fmt.Sprintf("%s is required", e.Field()))
		case "email":
			messages = append(messages, fmt.Sprintf("%s must be a valid email", e.Field()))
		case "min":
			messages = append(messages, fmt.Sprintf("%s must be at least %s characters", e.Field(), e.Param()))
		case "max":
			messages = append(messages, fmt.Sprintf("%s must be at most %s characters", e.Field(), e.Param()))
		default:
			messages = append(messages, fmt.Sprintf("%s is invalid", e.Field()))
		}
	}
	return pkgerrors.NewValidationError("", strings.Join(messages, ", "))
}

// CreateUser creates a new user after validating the payload and
// checking email uniqueness.
func (s *Service) CreateUser(ctx context.Context, in CreateUserRequest) (*User, error) {
	s.log.Info("creating user", zap.String("name", in.Name), zap.String("email", in.Email))

	if err := s.validate.Struct(in); err != nil {
		s.log.Warn("create user validation failed", zap.Error(err))
		return nil, formatValidationError(err)
	}

	existing, err := s.repo.GetByEmail(ctx, in.Email)
	if err != nil {
		s.log.Error("failed to check existing email", zap.String("email", in.Email), zap.Error(err))
		return nil, pkgerrors.NewInternalError("failed to validate email uniqueness", err)
	}
	if existing != nil {
		s.log.Warn("email already exists", zap.String("email", in.Email))
		return nil, pkgerrors.NewConflictError("user", "email already exists")
	}

	id, err := s.repo.Create(ctx, &domain.User{
		Name:  in.Name,
		Email: in.Email,
	})
	if err != nil {
		s.log.Error("failed to create user", zap.Error(err))
		return nil, err
	}

	return &User{ID: id, Name: in.Name, Email: in.Email}, nil
}

// GetUser retrieves a user by ID.
func (s *Service) GetUser(ctx context.Context, in GetUserRequest) (*User, error) {
	u, err := s.repo.GetByID(ctx, in.ID)
	if err != nil {
		s.log.Warn("failed to get user", zap.Int64("id", in.ID), zap.Error(err))
		return nil, err
	}

	return &User{ID: u.ID, Name: u.Name, Email: u.Email}, nil
}

// UpdateUser replaces the name and email of an existing user after
// validating the payload and checking email uniqueness.
func (s *Service) UpdateUser(ctx context.Context, in UpdateUserRequest) (*User, error) {
	s.log.Info("updating user", zap.Int64("id", in.ID), zap.String("name", in.Name), zap.String("email", in.Email))

	if err := s.validate.Struct(in); err != nil {
		s.log.Warn("update user validation failed", zap.Error(err))
		return nil, formatValidationError(err)
	}

	existing, err := s.repo.GetByEmail(ctx, in.Email)
	if err != nil {
		s.log.Error("failed to check existing email", zap.String("email", in.Email), zap.Error(err))
		return nil, pkgerrors.NewInternalError("failed to validate email uniqueness", err)
	}
	if existing != nil && existing.ID != in.ID {
		s.log.Warn("email already exists", zap.String("email", in.Email), zap.Int64("existing_id", existing.ID))
		return nil, pkgerrors.NewConflictError("user", "email already exists")
	}

	id, err := s.repo.Update(ctx, &domain.User{
		ID:    in.ID,
		Name:  in.Name,
		Email: in.Email,
	})
	if err != nil {
		s.log.Warn("failed to update user", zap.Int64("id", in.ID), zap.Error(err))
		return nil, err
	}

	return &User{ID: id, Name: in.Name, Email: in.Email}, nil
}

// DeleteUser deletes a user by ID.
func (s *Service) DeleteUser(ctx context.Context, in DeleteUserRequest) (*DeleteUserResponse, error) {
	s.log.Info("deleting user", zap.Int64("id", in.ID))

	id, err := s.repo.Delete(ctx, in.ID)
	if err != nil {
		s.log.Warn("failed to delete user", zap.Int64("id", in.ID), zap.Error(err))
		return nil, err
	}

	return &DeleteUserResponse{ID: id}, nil
}

// ListUsers retrieves one page of users ordered by ascending ID.
// Listing has no failure mode of its own beyond repository errors; an
// empty page is a valid result.
func (s *Service) ListUsers(ctx context.Context, in ListUsersRequest) (*ListUsersResponse, error) {
	page := in.Page.Normalize()

	s.log.Info("listing users", zap.Int64("page", page.Page), zap.Int64("limit", page.Limit))

	domainUsers, err := s.repo.List(ctx, page)
	if err != nil {
		s.log.Error("failed to list users", zap.Int64("page", page.Page), zap.Int64("limit", page.Limit), zap.Error(err))
		return nil, err
	}

	users := make([]User, len(domainUsers))
	for i, du := range domainUsers {
		users[i] = User{
			ID:    du.ID,
			Name:  du.Name,
			Email: du.Email,
		}
	}

	return &ListUsersResponse{Users: users}, nil
}
