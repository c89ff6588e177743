package user

import (
	"errors"
	"fmt"
	"time"

	userRepo "doctorsportal/database/repository/user"
	"doctorsportal/models"
	"doctorsportal/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// ErrUnknownUser is returned when a token is requested for an email with no
// user record.
var ErrUnknownUser = errors.New("user does not exist")

// tokenTTL is the lifetime of issued access tokens.
const tokenTTL = 24 * time.Hour

// DefaultUserService implements UserService over the users collection.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}

// CreateUser inserts the user if the email is not yet registered.
func (s *DefaultUserService) CreateUser(user models.User) (*CreateResult, error) {
	existing, err := s.Repo.GetByEmail(user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return &CreateResult{Exists: true}, nil
	}

	id, err := s.Repo.Insert(&user)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return &CreateResult{InsertedID: id}, nil
}

// IssueToken signs a 24h token for an existing user's email.
func (s *DefaultUserService) IssueToken(email string) (string, error) {
	logger := utils.GetLogger()

	existing, err := s.Repo.GetByEmail(email)
	if err != nil {
		return "", fmt.Errorf("failed to look up user: %w", err)
	}
	if existing == nil {
		return "", ErrUnknownUser
	}

	token, err := utils.GenerateToken(email, tokenTTL)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	logger.Debug("token issued", zap.String("email", email))
	return token, nil
}

// GetAllUsers lists every user.
func (s *DefaultUserService) GetAllUsers() ([]models.User, error) {
	return s.Repo.GetAll()
}

// IsAdmin reports whether the email belongs to an admin user.
func (s *DefaultUserService) IsAdmin(email string) (bool, error) {
	existing, err := s.Repo.GetByEmail(email)
	if err != nil {
		return false, fmt.Errorf("failed to look up user: %w", err)
	}
	return existing.IsAdmin(), nil
}

// PromoteToAdmin upserts the elevated role on the user id.
func (s *DefaultUserService) PromoteToAdmin(id string) (*mongo.UpdateResult, error) {
	return s.Repo.PromoteToAdmin(id)
}

// DeleteUser removes the user and returns the deleted count.
func (s *DefaultUserService) DeleteUser(id string) (int64, error) {
	return s.Repo.Delete(id)
}
