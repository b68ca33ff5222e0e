package user

// User represents a user record. The ID is assigned by the database
// and immutable afterwards.
type User struct {
	ID    int64
	Name  string
	Email string
}
