package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/DavidL050/Forex/logger"
	"github.com/DavidL050/Forex/model"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

// ErrDuplicateUsername is returned by CreateUser when the username is taken.
var ErrDuplicateUsername = errors.New("username already exists")

const uniqueViolation = "23505"

// IUserRepository defines the contract for user database operations.
type IUserRepository interface {
	CreateUser(ctx context.Context, user *model.User) error
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	GetUserByID(ctx context.Context, id int) (*model.User, error)
	UpdatePreferences(ctx context.Context, id int, prefs model.Preferences) error
}

type UserRepository struct {
	DB *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{DB: db}
}

// CreateUser inserts user. user.Password must already be hashed.
func (r *UserRepository) CreateUser(ctx context.Context, user *model.User) error {
	log := logger.Log.WithField("username", user.Username)
	log.Info("Executing query to create a new user")

	query := `INSERT INTO users (username, password, preferences) VALUES ($1, $2, $3) RETURNING id, created_at`
	err := r.DB.QueryRowContext(ctx, query, user.Username, user.Password, user.Preferences).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			log.Warn("Username already exists")
			return ErrDuplicateUsername
		}
		log.WithError(err).Error("Failed to execute create user query")
		return err
	}
	return nil
}

// GetUserByUsername returns sql.ErrNoRows when no user matches.
func (r *UserRepository) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	query := `SELECT id, username, password, preferences, created_at FROM users WHERE username = $1`
	return r.getOne(ctx, logger.Log.WithField("username", username), query, username)
}

// GetUserByID returns sql.ErrNoRows when no user matches.
func (r *UserRepository) GetUserByID(ctx context.Context, id int) (*model.User, error) {
	query := `SELECT id, username, password, preferences, created_at FROM users WHERE id = $1`
	return r.getOne(ctx, logger.Log.WithField("user_id", id), query, id)
}

func (r *UserRepository) getOne(ctx context.Context, log *logrus.Entry, query string, arg any) (*model.User, error) {
	user := &model.User{}
	err := r.DB.QueryRowContext(ctx, query, arg).Scan(&user.ID, &user.Username, &user.Password, &user.Preferences, &user.CreatedAt)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			log.WithError(err).Error("Failed to execute get user query")
		}
		return nil, err
	}
	return user, nil
}

// UpdatePreferences replaces the stored preference document wholesale.
// It returns sql.ErrNoRows when the user does not exist.
func (r *UserRepository) UpdatePreferences(ctx context.Context, id int, prefs model.Preferences) error {
	log := logger.Log.WithFields(logrus.Fields{
		"user_id":    id,
		"currencies": len(prefs.PreferredCurrencies),
	})
	log.Info("Executing query to update user preferences")

	query := `UPDATE users SET preferences = $1 WHERE id = $2`
	result, err := r.DB.ExecContext(ctx, query, prefs, id)
	if err != nil {
		log.WithError(err).Error("Failed to execute update preferences query")
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}
