package service

import (
	"fmt"
	"strings"
	"time"

	"wordvault/internal/domain"
	"wordvault/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles accounts, sessions and password recovery
type AuthService struct {
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	sessionTTL  time.Duration
	resetTTL    time.Duration
}

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo repository.UserRepository,
	sessionRepo repository.SessionRepository,
	sessionTTL, resetTTL time.Duration,
) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		sessionTTL:  sessionTTL,
		resetTTL:    resetTTL,
	}
}

// Register creates an account and returns it
func (s *AuthService) Register(email, password string) (*domain.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("%w: invalid email", domain.ErrInvalidInput)
	}
	if len(password) < 6 {
		return nil, fmt.Errorf("%w: password must be at least 6 characters", domain.ErrInvalidInput)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	return s.userRepo.CreateUser(uuid.NewString(), email, string(hash))
}

// Login verifies credentials and issues a session token
func (s *AuthService) Login(email, password string) (*domain.Session, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	user, err := s.userRepo.GetUserByEmail(email)
	if err == domain.ErrNotFound {
		return nil, domain.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	session := &domain.Session{
		Token:     uuid.NewString(),
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(s.sessionTTL),
	}
	if err := s.sessionRepo.CreateSession(session.Token, session.UserID, session.ExpiresAt); err != nil {
		return nil, err
	}

	return session, nil
}

// Logout invalidates a session token
func (s *AuthService) Logout(token string) error {
	return s.sessionRepo.DeleteSession(token)
}

// CurrentUserByID looks up an account by id
func (s *AuthService) CurrentUserByID(userID string) (*domain.User, error) {
	return s.userRepo.GetUserByID(userID)
}

// CurrentUser resolves a session token to its account
func (s *AuthService) CurrentUser(token string) (*domain.User, error) {
	session, err := s.sessionRepo.GetSession(token)
	if err != nil {
		return nil, err
	}
	return s.userRepo.GetUserByID(session.UserID)
}

// RequestPasswordReset issues a single-use reset token for the account.
// An unknown email returns an empty token without error, so the endpoint
// does not reveal which addresses are registered.
func (s *AuthService) RequestPasswordReset(email string) (string, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	user, err := s.userRepo.GetUserByEmail(email)
	if err == domain.ErrNotFound {
		return "", nil
	}
	if err != nil {
		return "", err
	}

	token := uuid.NewString()
	if err := s.sessionRepo.CreateResetToken(token, user.ID, time.Now().Add(s.resetTTL)); err != nil {
		return "", err
	}

	return token, nil
}

// ResetPassword consumes a reset token and replaces the password
func (s *AuthService) ResetPassword(token, newPassword string) error {
	if len(newPassword) < 6 {
		return fmt.Errorf("%w: password must be at least 6 characters", domain.ErrInvalidInput)
	}

	userID, err := s.sessionRepo.ConsumeResetToken(token)
	if err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	return s.userRepo.UpdatePassword(userID, string(hash))
}
