package postgres

import (
	"database/sql"

	"wordvault/internal/domain"

	"github.com/google/uuid"
)

// APIKeyRepo implements repository.APIKeyRepository
type APIKeyRepo struct {
	db *sql.DB
}

// NewAPIKeyRepo creates a new API key repository
func NewAPIKeyRepo(db *sql.DB) *APIKeyRepo {
	return &APIKeyRepo{db: db}
}

// SaveKey inserts a key as the user's active one. The previous active key is
// deactivated in the same transaction, so the single-active invariant holds
// even if the process dies mid-way.
func (r *APIKeyRepo) SaveKey(userID, key string) (*domain.APIKey, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	deactivate := `UPDATE user_api_keys SET is_active = FALSE WHERE user_id = $1 AND is_active`
	if _, err := tx.Exec(deactivate, userID); err != nil {
		return nil, err
	}

	var k domain.APIKey
	insert := `
		INSERT INTO user_api_keys (id, user_id, api_key, is_active)
		VALUES ($1, $2, $3, TRUE)
		RETURNING id, user_id, api_key, is_active, created_at
	`
	err = tx.QueryRow(insert, uuid.NewString(), userID, key).Scan(
		&k.ID, &k.UserID, &k.Key, &k.IsActive, &k.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return &k, nil
}

// ListKeys returns all of the user's keys, newest first
func (r *APIKeyRepo) ListKeys(userID string) ([]domain.APIKey, error) {
	query := `
		SELECT id, user_id, api_key, is_active, created_at
		FROM user_api_keys
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var keys []domain.APIKey
	for rows.Next() {
		var k domain.APIKey
		if err := rows.Scan(&k.ID, &k.UserID, &k.Key, &k.IsActive, &k.CreatedAt); err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}

	return keys, rows.Err()
}

// GetActiveKey returns the user's active key, or nil when none is active.
// Zero active keys is a valid state; the resolver falls back to the default.
func (r *APIKeyRepo) GetActiveKey(userID string) (*domain.APIKey, error) {
	var k domain.APIKey
	query := `
		SELECT id, user_id, api_key, is_active, created_at
		FROM user_api_keys
		WHERE user_id = $1 AND is_active
	`
	err := r.db.QueryRow(query, userID).Scan(&k.ID, &k.UserID, &k.Key, &k.IsActive, &k.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &k, nil
}

// ActivateKey swaps the active key in a single transaction: deactivate the
// current one, activate the target. Commit makes both visible at once.
func (r *APIKeyRepo) ActivateKey(id, userID string) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	deactivate := `UPDATE user_api_keys SET is_active = FALSE WHERE user_id = $1 AND is_active`
	if _, err := tx.Exec(deactivate, userID); err != nil {
		return err
	}

	activate := `UPDATE user_api_keys SET is_active = TRUE WHERE id = $1 AND user_id = $2`
	res, err := tx.Exec(activate, id, userID)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		// Unknown or foreign id: roll back so the previous key stays active
		return domain.ErrNotFound
	}

	return tx.Commit()
}

// DeleteKey removes a key scoped to its owner
func (r *APIKeyRepo) DeleteKey(id, userID string) error {
	query := `DELETE FROM user_api_keys WHERE id = $1 AND user_id = $2`
	res, err := r.db.Exec(query, id, userID)
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
