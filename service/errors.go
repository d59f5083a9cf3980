// file: service/errors.go

package service

import (
	"errors"

	"github.com/DavidL050/Forex/repository"
)

var (
	ErrTokenMissing       = errors.New("token is missing")
	ErrTokenExpired       = errors.New("token has expired")
	ErrTokenMalformed     = errors.New("invalid token")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidPreferences = errors.New("preferences must contain preferred_currencies")
	ErrDuplicateUsername  = repository.ErrDuplicateUsername
	ErrInvalidPair        = errors.New("invalid currency pair")
	ErrNoData             = errors.New("no data found")
)
