package postgres

import (
	"database/sql"
	"testing"
	"time"

	"wordvault/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

const testUserID = "8b7b6c1e-0000-0000-0000-000000000001"

var wordColumns = []string{"id", "user_id", "original_word", "translated_word", "explanation", "created_at"}

func TestWordRepo_FindWord(t *testing.T) {
	tests := []struct {
		name          string
		word          string
		mockRows      *sqlmock.Rows
		mockError     error
		expectedNil   bool
		expectedError bool
	}{
		{
			name: "word found",
			word: "dog",
			mockRows: sqlmock.NewRows(wordColumns).
				AddRow("w1", testUserID, "dog", "köpek", "bir hayvan", time.Now()),
		},
		{
			name: "nil explanation on legacy record",
			word: "cat",
			mockRows: sqlmock.NewRows(wordColumns).
				AddRow("w2", testUserID, "cat", "kedi", nil, time.Now()),
		},
		{
			name:        "absent word returns nil without error",
			word:        "missing",
			mockError:   sql.ErrNoRows,
			expectedNil: true,
		},
		{
			name:          "database error",
			word:          "dog",
			mockError:     sql.ErrConnDone,
			expectedNil:   true,
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			assert.NoError(t, err)
			defer db.Close()

			repo := NewWordRepo(db)

			expect := mock.ExpectQuery("SELECT id, user_id, original_word").
				WithArgs(testUserID, tt.word)
			if tt.mockError != nil {
				expect.WillReturnError(tt.mockError)
			} else {
				expect.WillReturnRows(tt.mockRows)
			}

			word, err := repo.FindWord(testUserID, tt.word)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			if tt.expectedNil {
				assert.Nil(t, word)
			} else {
				assert.NotNil(t, word)
				assert.Equal(t, tt.word, word.OriginalWord)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestWordRepo_SaveWord(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewWordRepo(db)

	mock.ExpectQuery("INSERT INTO words").
		WithArgs(sqlmock.AnyArg(), testUserID, "dog", "köpek", "bir hayvan").
		WillReturnRows(sqlmock.NewRows(wordColumns).
			AddRow("w1", testUserID, "dog", "köpek", "bir hayvan", time.Now()))

	word, err := repo.SaveWord(testUserID, "dog", "köpek", "bir hayvan")

	assert.NoError(t, err)
	assert.Equal(t, "dog", word.OriginalWord)
	assert.Equal(t, "köpek", word.TranslatedWord)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWordRepo_SaveWord_Duplicate(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewWordRepo(db)

	mock.ExpectQuery("INSERT INTO words").
		WithArgs(sqlmock.AnyArg(), testUserID, "dog", "köpek", "bir hayvan").
		WillReturnError(&pq.Error{Code: "23505"})

	word, err := repo.SaveWord(testUserID, "dog", "köpek", "bir hayvan")

	assert.ErrorIs(t, err, domain.ErrDuplicateWord)
	assert.Nil(t, word)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWordRepo_ListWords(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewWordRepo(db)

	mock.ExpectQuery("SELECT COUNT").
		WithArgs(testUserID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(25))

	rows := sqlmock.NewRows(wordColumns)
	for _, w := range []string{"k", "j"} {
		rows.AddRow("id-"+w, testUserID, w, "t-"+w, "e-"+w, time.Now())
	}
	mock.ExpectQuery("SELECT id, user_id, original_word").
		WithArgs(testUserID, 10, 10).
		WillReturnRows(rows)

	words, total, err := repo.ListWords(testUserID, 10, 10)

	assert.NoError(t, err)
	assert.Equal(t, 25, total)
	assert.Len(t, words, 2)
	assert.Equal(t, "k", words[0].OriginalWord)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWordRepo_DeleteWord(t *testing.T) {
	tests := []struct {
		name          string
		rowsAffected  int64
		expectedError error
	}{
		{name: "owned word deleted", rowsAffected: 1},
		{name: "foreign or unknown word", rowsAffected: 0, expectedError: domain.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			assert.NoError(t, err)
			defer db.Close()

			repo := NewWordRepo(db)

			mock.ExpectExec("DELETE FROM words").
				WithArgs("w1", testUserID).
				WillReturnResult(sqlmock.NewResult(0, tt.rowsAffected))

			err = repo.DeleteWord("w1", testUserID)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
