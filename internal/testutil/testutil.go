package testutil

import (
	"time"

	"wordvault/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestWord creates a test word record
func NewTestWord(id, userID, original, translated, explanation string) *domain.Word {
	return &domain.Word{
		ID:             id,
		UserID:         userID,
		OriginalWord:   original,
		TranslatedWord: translated,
		Explanation:    explanation,
		CreatedAt:      time.Now(),
	}
}

// NewTestKey creates a test API key record
func NewTestKey(id, userID, key string, active bool) *domain.APIKey {
	return &domain.APIKey{
		ID:        id,
		UserID:    userID,
		Key:       key,
		IsActive:  active,
		CreatedAt: time.Now(),
	}
}
