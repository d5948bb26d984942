package postgres

import (
	"database/sql"
	"time"

	"wordvault/internal/domain"
)

// SessionRepo implements repository.SessionRepository
type SessionRepo struct {
	db *sql.DB
}

// NewSessionRepo creates a new session repository
func NewSessionRepo(db *sql.DB) *SessionRepo {
	return &SessionRepo{db: db}
}

// CreateSession stores a new session token
func (r *SessionRepo) CreateSession(token, userID string, expiresAt time.Time) error {
	query := `INSERT INTO sessions (token, user_id, expires_at) VALUES ($1, $2, $3)`
	_, err := r.db.Exec(query, token, userID, expiresAt)
	return err
}

// GetSession returns a live session; expired or unknown tokens yield ErrInvalidCredentials
func (r *SessionRepo) GetSession(token string) (*domain.Session, error) {
	var s domain.Session
	query := `
		SELECT token, user_id, expires_at, created_at
		FROM sessions
		WHERE token = $1 AND expires_at > NOW()
	`
	err := r.db.QueryRow(query, token).Scan(&s.Token, &s.UserID, &s.ExpiresAt, &s.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, domain.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	return &s, nil
}

// DeleteSession removes a session token
func (r *SessionRepo) DeleteSession(token string) error {
	query := `DELETE FROM sessions WHERE token = $1`
	_, err := r.db.Exec(query, token)
	return err
}

// CreateResetToken stores a password reset token
func (r *SessionRepo) CreateResetToken(token, userID string, expiresAt time.Time) error {
	query := `INSERT INTO password_reset_tokens (token, user_id, expires_at) VALUES ($1, $2, $3)`
	_, err := r.db.Exec(query, token, userID, expiresAt)
	return err
}

// ConsumeResetToken marks a live token used and returns its owner
func (r *SessionRepo) ConsumeResetToken(token string) (string, error) {
	var userID string
	query := `
		UPDATE password_reset_tokens
		SET used = TRUE
		WHERE token = $1 AND NOT used AND expires_at > NOW()
		RETURNING user_id
	`
	err := r.db.QueryRow(query, token).Scan(&userID)

	if err == sql.ErrNoRows {
		return "", domain.ErrInvalidCredentials
	}
	if err != nil {
		return "", err
	}

	return userID, nil
}
