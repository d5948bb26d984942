package testutil

import (
	"context"
	"time"

	"wordvault/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock for repository.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(id, email, passwordHash string) (*domain.User, error) {
	args := m.Called(id, email, passwordHash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByEmail(email string) (*domain.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByID(id string) (*domain.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) UpdatePassword(userID, passwordHash string) error {
	args := m.Called(userID, passwordHash)
	return args.Error(0)
}

// MockSessionRepository is a mock for repository.SessionRepository
type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) CreateSession(token, userID string, expiresAt time.Time) error {
	args := m.Called(token, userID, expiresAt)
	return args.Error(0)
}

func (m *MockSessionRepository) GetSession(token string) (*domain.Session, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}

func (m *MockSessionRepository) DeleteSession(token string) error {
	args := m.Called(token)
	return args.Error(0)
}

func (m *MockSessionRepository) CreateResetToken(token, userID string, expiresAt time.Time) error {
	args := m.Called(token, userID, expiresAt)
	return args.Error(0)
}

func (m *MockSessionRepository) ConsumeResetToken(token string) (string, error) {
	args := m.Called(token)
	return args.String(0), args.Error(1)
}

// MockWordRepository is a mock for repository.WordRepository
type MockWordRepository struct {
	mock.Mock
}

func (m *MockWordRepository) FindWord(userID, originalWord string) (*domain.Word, error) {
	args := m.Called(userID, originalWord)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Word), args.Error(1)
}

func (m *MockWordRepository) SaveWord(userID, originalWord, translatedWord, explanation string) (*domain.Word, error) {
	args := m.Called(userID, originalWord, translatedWord, explanation)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Word), args.Error(1)
}

func (m *MockWordRepository) ListWords(userID string, limit, offset int) ([]domain.Word, int, error) {
	args := m.Called(userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Word), args.Int(1), args.Error(2)
}

func (m *MockWordRepository) DeleteWord(id, userID string) error {
	args := m.Called(id, userID)
	return args.Error(0)
}

// MockAPIKeyRepository is a mock for repository.APIKeyRepository
type MockAPIKeyRepository struct {
	mock.Mock
}

func (m *MockAPIKeyRepository) SaveKey(userID, key string) (*domain.APIKey, error) {
	args := m.Called(userID, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.APIKey), args.Error(1)
}

func (m *MockAPIKeyRepository) ListKeys(userID string) ([]domain.APIKey, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.APIKey), args.Error(1)
}

func (m *MockAPIKeyRepository) GetActiveKey(userID string) (*domain.APIKey, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.APIKey), args.Error(1)
}

func (m *MockAPIKeyRepository) ActivateKey(id, userID string) error {
	args := m.Called(id, userID)
	return args.Error(0)
}

func (m *MockAPIKeyRepository) DeleteKey(id, userID string) error {
	args := m.Called(id, userID)
	return args.Error(0)
}

// MockTranslator is a mock for translator.Translator
type MockTranslator struct {
	mock.Mock
}

func (m *MockTranslator) Translate(ctx context.Context, word, model, apiKey string) (string, error) {
	args := m.Called(word, model, apiKey)
	return args.String(0), args.Error(1)
}

// MockResolver is a mock for service.CredentialResolver
type MockResolver struct {
	mock.Mock
}

func (m *MockResolver) Resolve(userID string) (string, error) {
	args := m.Called(userID)
	return args.String(0), args.Error(1)
}
