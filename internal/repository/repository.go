package repository

import (
	"time"

	"wordvault/internal/domain"
)

// UserRepository defines account data operations
type UserRepository interface {
	CreateUser(id, email, passwordHash string) (*domain.User, error)
	GetUserByEmail(email string) (*domain.User, error)
	GetUserByID(id string) (*domain.User, error)
	UpdatePassword(userID, passwordHash string) error
}

// SessionRepository defines session and reset-token operations
type SessionRepository interface {
	CreateSession(token, userID string, expiresAt time.Time) error
	GetSession(token string) (*domain.Session, error)
	DeleteSession(token string) error
	CreateResetToken(token, userID string, expiresAt time.Time) error
	// ConsumeResetToken marks the token used and returns its owner.
	// An unknown, expired or already-used token returns domain.ErrInvalidCredentials.
	ConsumeResetToken(token string) (string, error)
}

// WordRepository defines word data operations
type WordRepository interface {
	// FindWord returns the record for the exact (user, word) pair, or nil if absent
	FindWord(userID, originalWord string) (*domain.Word, error)
	// SaveWord inserts a new record; returns domain.ErrDuplicateWord when the
	// (user, word) pair already exists
	SaveWord(userID, originalWord, translatedWord, explanation string) (*domain.Word, error)
	// ListWords returns a page ordered newest first plus the owner's total count
	ListWords(userID string, limit, offset int) ([]domain.Word, int, error)
	// DeleteWord removes the record; returns domain.ErrNotFound when the id
	// does not exist or belongs to another user
	DeleteWord(id, userID string) error
}

// APIKeyRepository defines translation key operations
type APIKeyRepository interface {
	// SaveKey inserts a key and makes it the user's active one, deactivating
	// any previous active key in the same transaction
	SaveKey(userID, key string) (*domain.APIKey, error)
	ListKeys(userID string) ([]domain.APIKey, error)
	// GetActiveKey returns the user's active key, or nil if none is active
	GetActiveKey(userID string) (*domain.APIKey, error)
	// ActivateKey makes the given key active and deactivates the previous one
	// atomically; returns domain.ErrNotFound for a foreign or unknown id
	ActivateKey(id, userID string) error
	DeleteKey(id, userID string) error
}
