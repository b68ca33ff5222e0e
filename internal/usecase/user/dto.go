package user

import domain "user-rest-service/internal/domain/user"

// CreateUserRequest is the payload for creating a new user.
type CreateUserRequest struct {
	Name  string `validate:"required,min=1,max=100"`
	Email string `validate:"required,email"`
}

// UpdateUserRequest is the payload for replacing a user's fields.
// ID carries no validation tag: the HTTP layer owns id syntax, and any
// integer id that matches no row must surface as not-found, id 0
// included.
type UpdateUserRequest struct {
	ID    int64
	Name  string `validate:"required,min=1,max=100"`
	Email string `validate:"required,email"`
}

// GetUserRequest is the payload for retrieving a user.
type GetUserRequest struct {
	ID int64
}

// DeleteUserRequest is the payload for deleting a user.
type DeleteUserRequest struct {
	ID int64
}

// DeleteUserResponse is returned after a successful deletion.
type DeleteUserResponse struct {
	ID int64
}

// ListUsersRequest is the payload for listing users.
type ListUsersRequest struct {
	Page domain.PageRequest
}

// ListUsersResponse is the payload for a user listing.
type ListUsersResponse struct {
	Users []User
}

// User is the user representation returned by the usecase layer.
type User struct {
	ID    int64
	Name  string
	Email string
}
