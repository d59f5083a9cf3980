package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/DavidL050/Forex/common"
	"github.com/DavidL050/Forex/model"
	"github.com/DavidL050/Forex/repository"
)

// UserService is the credential store: user creation, lookup, password
// verification and preference updates.
type UserService struct {
	userRepo repository.IUserRepository
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repository.IUserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// CreateUser hashes password and stores a new user. A nil prefs assigns
// DefaultPreferences.
func (s *UserService) CreateUser(ctx context.Context, username, password string, prefs *model.Preferences) (int, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return 0, errors.New("username and password are required")
	}

	p := model.DefaultPreferences()
	if prefs != nil {
		if err := validatePreferences(*prefs); err != nil {
			return 0, err
		}
		p = *prefs
	}

	hash, err := HashPassword(password)
	if err != nil {
		return 0, err
	}

	user := &model.User{Username: username, Password: hash, Preferences: p}
	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		return 0, err
	}
	return user.ID, nil
}

func (s *UserService) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	user, err := s.userRepo.GetUserByUsername(ctx, username)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	return user, err
}

func (s *UserService) FindByID(ctx context.Context, id int) (*model.User, error) {
	user, err := s.userRepo.GetUserByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	return user, err
}

func (s *UserService) VerifyPassword(user *model.User, password string) bool {
	if user == nil {
		return false
	}
	return CheckPasswordHash(password, user.Password)
}

// UpdatePreferences replaces the stored document. Nothing is written when
// prefs lacks preferred_currencies.
func (s *UserService) UpdatePreferences(ctx context.Context, userID int, prefs model.Preferences) error {
	if err := validatePreferences(prefs); err != nil {
		return err
	}

	err := s.userRepo.UpdatePreferences(ctx, userID, prefs)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrUserNotFound
	}
	return err
}

func validatePreferences(prefs model.Preferences) error {
	if err := common.Validate(prefs); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPreferences, err)
	}
	return nil
}
