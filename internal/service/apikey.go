package service

import (
	"strings"

	"wordvault/internal/domain"
	"wordvault/internal/repository"
)

// APIKeyService manages per-user translation keys and resolves which
// credential to use for an outbound call
type APIKeyService struct {
	keyRepo     repository.APIKeyRepository
	fallbackKey string
}

// NewAPIKeyService creates a new API key service. fallbackKey may be empty;
// users must then supply their own key before adding words.
func NewAPIKeyService(keyRepo repository.APIKeyRepository, fallbackKey string) *APIKeyService {
	return &APIKeyService{keyRepo: keyRepo, fallbackKey: fallbackKey}
}

// AddKey stores a key and makes it the user's active one
func (s *APIKeyService) AddKey(userID, key string) (*domain.APIKey, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, domain.ErrInvalidInput
	}
	return s.keyRepo.SaveKey(userID, key)
}

// ListKeys returns the user's keys
func (s *APIKeyService) ListKeys(userID string) ([]domain.APIKey, error) {
	return s.keyRepo.ListKeys(userID)
}

// ActivateKey makes the given key the user's active one
func (s *APIKeyService) ActivateKey(id, userID string) error {
	return s.keyRepo.ActivateKey(id, userID)
}

// DeleteKey removes a key
func (s *APIKeyService) DeleteKey(id, userID string) error {
	return s.keyRepo.DeleteKey(id, userID)
}

// Resolve returns the credential to use for the user's translation calls:
// their active key if one exists, else the configured fallback. Zero active
// keys is a valid state, not an error, as long as a fallback is configured.
func (s *APIKeyService) Resolve(userID string) (string, error) {
	active, err := s.keyRepo.GetActiveKey(userID)
	if err != nil {
		return "", err
	}
	if active != nil {
		return active.Key, nil
	}
	if s.fallbackKey != "" {
		return s.fallbackKey, nil
	}
	return "", domain.ErrMissingCredential
}

// MaskKey renders a key for display, keeping the first 6 and last 4 characters
func MaskKey(key string) string {
	if len(key) <= 10 {
		return key
	}
	return key[:6] + "..." + key[len(key)-4:]
}
