package postgres

import (
	"database/sql"

	"wordvault/internal/domain"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// pq error code for unique_violation
const uniqueViolation = "23505"

// WordRepo implements repository.WordRepository
type WordRepo struct {
	db *sql.DB
}

// NewWordRepo creates a new word repository
func NewWordRepo(db *sql.DB) *WordRepo {
	return &WordRepo{db: db}
}

// FindWord returns the record for the exact (user, word) pair.
// No normalization: lookup is case- and whitespace-sensitive.
func (r *WordRepo) FindWord(userID, originalWord string) (*domain.Word, error) {
	var w domain.Word
	var explanation sql.NullString
	query := `
		SELECT id, user_id, original_word, translated_word, explanation, created_at
		FROM words
		WHERE user_id = $1 AND original_word = $2
	`
	err := r.db.QueryRow(query, userID, originalWord).Scan(
		&w.ID, &w.UserID, &w.OriginalWord, &w.TranslatedWord, &explanation, &w.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	w.Explanation = explanation.String
	return &w, nil
}

// SaveWord inserts a new word record
func (r *WordRepo) SaveWord(userID, originalWord, translatedWord, explanation string) (*domain.Word, error) {
	var w domain.Word
	query := `
		INSERT INTO words (id, user_id, original_word, translated_word, explanation)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, user_id, original_word, translated_word, explanation, created_at
	`
	err := r.db.QueryRow(query, uuid.NewString(), userID, originalWord, translatedWord, explanation).Scan(
		&w.ID, &w.UserID, &w.OriginalWord, &w.TranslatedWord, &w.Explanation, &w.CreatedAt,
	)

	if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == uniqueViolation {
		return nil, domain.ErrDuplicateWord
	}
	if err != nil {
		return nil, err
	}

	return &w, nil
}

// ListWords returns a page of the user's words, newest first, plus the total count
func (r *WordRepo) ListWords(userID string, limit, offset int) ([]domain.Word, int, error) {
	var total int
	countQuery := `SELECT COUNT(*) FROM words WHERE user_id = $1`
	if err := r.db.QueryRow(countQuery, userID).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT id, user_id, original_word, translated_word, explanation, created_at
		FROM words
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.Query(query, userID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var words []domain.Word
	for rows.Next() {
		var w domain.Word
		var explanation sql.NullString
		if err := rows.Scan(&w.ID, &w.UserID, &w.OriginalWord, &w.TranslatedWord, &explanation, &w.CreatedAt); err != nil {
			return nil, 0, err
		}
		w.Explanation = explanation.String
		words = append(words, w)
	}

	return words, total, rows.Err()
}

// DeleteWord removes a word scoped to its owner
func (r *WordRepo) DeleteWord(id, userID string) error {
	query := `DELETE FROM words WHERE id = $1 AND user_id = $2`
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
