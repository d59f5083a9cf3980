// file: repository/session_repository.go

package repository

import (
	"context"
	"database/sql"

	"github.com/DavidL050/Forex/logger"
	"github.com/DavidL050/Forex/model"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// ISessionRepository defines the contract for session bookkeeping.
type ISessionRepository interface {
	Create(ctx context.Context, session *model.Session) error
	DeleteByUserAndToken(ctx context.Context, userID int, token string) (int64, error)
}

// SessionRepository implements ISessionRepository.
type SessionRepository struct {
	DB *sql.DB
}

// NewSessionRepository creates a new SessionRepository.
func NewSessionRepository(db *sql.DB) *SessionRepository {
	return &SessionRepository{DB: db}
}

// Create records an issued token. session.ID is generated when empty.
func (r *SessionRepository) Create(ctx context.Context, session *model.Session) error {
	if session.ID == "" {
		session.ID = uuid.NewString()
	}

	log := logger.Log.WithFields(logrus.Fields{
		"session_id": session.ID,
		"user_id":    session.UserID,
	})
	log.Info("Executing query to create a new session")

	query := `INSERT INTO sessions (id, user_id, token) VALUES ($1, $2, $3) RETURNING created_at`
	err := r.DB.QueryRowContext(ctx, query, session.ID, session.UserID, session.Token).Scan(&session.CreatedAt)
	if err != nil {
		log.WithError(err).Error("Failed to execute create session query")
		return err
	}
	return nil
}

// DeleteByUserAndToken removes the sessions matching the pair and reports
// how many rows were deleted. Zero rows is not an error.
func (r *SessionRepository) DeleteByUserAndToken(ctx context.Context, userID int, token string) (int64, error) {
	log := logger.Log.WithField("user_id", userID)
	log.Info("Executing query to delete session")

	query := `DELETE FROM sessions WHERE user_id = $1 AND token = $2`
	result, err := r.DB.ExecContext(ctx, query, userID, token)
	if err != nil {
		log.WithError(err).Error("Failed to execute delete session query")
		return 0, err
	}
	return result.RowsAffected()
}
