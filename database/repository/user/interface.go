package userRepo

import (
	"doctorsportal/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// UserRepository provides access to the users collection.
type UserRepository interface {
	// GetByEmail returns (nil, nil) when no user exists for the email.
	GetByEmail(email string) (*models.User, error)
	GetAll() ([]models.User, error)
	// Insert stores a new user and returns its object id as a hex string.
	Insert(user *models.User) (string, error)
	// PromoteToAdmin upserts role=Admin on the user with the given object id.
	PromoteToAdmin(id string) (*mongo.UpdateResult, error)
	// Delete removes the user with the given object id and returns the
	// number of deleted documents.
	Delete(id string) (int64, error)
}
