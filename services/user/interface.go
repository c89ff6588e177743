package user

import (
	"doctorsportal/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// CreateResult reports the outcome of a user creation attempt.
type CreateResult struct {
	InsertedID string
	Exists     bool
}

// UserService manages portal users and token issuance.
type UserService interface {
	// CreateUser inserts the user unless the email is already registered.
	CreateUser(user models.User) (*CreateResult, error)
	// IssueToken returns a signed 24h token for an existing user's email,
	// or ErrUnknownUser when no such user exists.
	IssueToken(email string) (string, error)
	GetAllUsers() ([]models.User, error)
	// IsAdmin reports whether the user with the given email carries the
	// elevated role. Unknown emails are simply not admins.
	IsAdmin(email string) (bool, error)
	PromoteToAdmin(id string) (*mongo.UpdateResult, error)
	DeleteUser(id string) (int64, error)
}
