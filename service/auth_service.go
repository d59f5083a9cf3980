package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/DavidL050/Forex/logger"
	"github.com/DavidL050/Forex/model"
	"github.com/DavidL050/Forex/repository"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to hash password")
		return "", err
	}
	return string(bytes), nil
}

// CheckPasswordHash reports whether password matches the bcrypt hash. The
// comparison is constant time.
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// TokenService issues and validates HS256 tokens carrying a user ID.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenService(secret []byte, ttl time.Duration) *TokenService {
	return &TokenService{secret: secret, ttl: ttl, now: time.Now}
}

// TTL is the lifetime of issued tokens.
func (s *TokenService) TTL() time.Duration {
	return s.ttl
}

func (s *TokenService) Issue(userID int) (string, error) {
	issuedAt := s.now()

	claims := &model.AppClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		logger.Log.WithError(err).WithField("user_id", userID).Error("Failed to sign JWT")
		return "", fmt.Errorf("failed to sign token string: %w", err)
	}
	return tokenString, nil
}

// Validate returns the user ID carried by tokenString. The signature is
// checked before expiry, so a forged or corrupted token is always
// ErrTokenMalformed and never ErrTokenExpired.
func (s *TokenService) Validate(tokenString string) (int, error) {
	claims := &model.AppClaims{}

	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, ErrTokenExpired
		}
		return 0, fmt.Errorf("%w: %v", ErrTokenMalformed, err)
	}
	if claims.UserID <= 0 {
		return 0, fmt.Errorf("%w: missing user_id", ErrTokenMalformed)
	}
	return claims.UserID, nil
}

// AuthService ties credentials, tokens and session bookkeeping together.
type AuthService struct {
	users    *UserService
	sessions repository.ISessionRepository
	tokens   *TokenService
}

func NewAuthService(users *UserService, sessions repository.ISessionRepository, tokens *TokenService) *AuthService {
	return &AuthService{
		users:    users,
		sessions: sessions,
		tokens:   tokens,
	}
}

func (s *AuthService) Tokens() *TokenService {
	return s.tokens
}

// Login verifies the credentials, issues a token and records the session.
// Unknown users and wrong passwords both yield ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *model.User, error) {
	log := logger.Log.WithField("username", username)

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			log.Info("Login attempt for unknown user")
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !s.users.VerifyPassword(user, password) {
		log.Info("Login attempt with wrong password")
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return "", nil, err
	}

	if err := s.sessions.Create(ctx, &model.Session{UserID: user.ID, Token: token}); err != nil {
		return "", nil, fmt.Errorf("could not record session: %w", err)
	}

	log.WithField("user_id", user.ID).Info("User logged in")
	return token, user, nil
}

// Logout deletes the session rows for (userID, token) and returns how many
// were removed. The token itself stays valid until it expires.
func (s *AuthService) Logout(ctx context.Context, userID int, token string) (int64, error) {
	deleted, err := s.sessions.DeleteByUserAndToken(ctx, userID, token)
	if err != nil {
		return 0, fmt.Errorf("could not revoke session: %w", err)
	}

	logger.Log.WithFields(logrus.Fields{
		"user_id": userID,
		"deleted": deleted,
	}).Info("User logged out")
	return deleted, nil
}

// Authenticate validates token and resolves its user.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*model.User, error) {
	if token == "" {
		return nil, ErrTokenMissing
	}

	userID, err := s.tokens.Validate(token)
	if err != nil {
		return nil, err
	}

	return s.users.FindByID(ctx, userID)
}
