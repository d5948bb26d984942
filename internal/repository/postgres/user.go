package postgres

import (
	"database/sql"

	"wordvault/internal/domain"

	"github.com/lib/pq"
)

// UserRepo implements repository.UserRepository
type UserRepo struct {
	db *sql.DB
}

// NewUserRepo creates a new user repository
func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{db: db}
}

// CreateUser inserts a new account
func (r *UserRepo) CreateUser(id, email, passwordHash string) (*domain.User, error) {
	var u domain.User
	query := `
		INSERT INTO users (id, email, password_hash)
		VALUES ($1, $2, $3)
		RETURNING id, email, password_hash, created_at
	`
	err := r.db.QueryRow(query, id, email, passwordHash).Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.CreatedAt,
	)

	if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == uniqueViolation {
		return nil, domain.ErrEmailTaken
	}
	if err != nil {
		return nil, err
	}

	return &u, nil
}

// GetUserByEmail looks up an account by email
func (r *UserRepo) GetUserByEmail(email string) (*domain.User, error) {
	return r.getUser(`SELECT id, email, password_hash, created_at FROM users WHERE email = $1`, email)
}

// GetUserByID looks up an account by id
func (r *UserRepo) GetUserByID(id string) (*domain.User, error) {
	return r.getUser(`SELECT id, email, password_hash, created_at FROM users WHERE id = $1`, id)
}

func (r *UserRepo) getUser(query, arg string) (*domain.User, error) {
	var u domain.User
	err := r.db.QueryRow(query, arg).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &u, nil
}

// UpdatePassword replaces the stored password hash
func (r *UserRepo) UpdatePassword(userID, passwordHash string) error {
	query := `UPDATE users SET password_hash = $1 WHERE id = $2`
	res, err := r.db.Exec(query, passwordHash, userID)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotFound
	}

	return nil
}
