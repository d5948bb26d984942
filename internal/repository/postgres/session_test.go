package postgres

import (
	"database/sql"
	"testing"
	"time"

	"wordvault/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestSessionRepo_GetSession(t *testing.T) {
	tests := []struct {
		name          string
		mockRows      *sqlmock.Rows
		mockError     error
		expectedError error
	}{
		{
			name: "live session",
			mockRows: sqlmock.NewRows([]string{"token", "user_id", "expires_at", "created_at"}).
				AddRow("t1", testUserID, time.Now().Add(time.Hour), time.Now()),
		},
		{
			name:          "expired or unknown token",
			mockError:     sql.ErrNoRows,
			expectedError: domain.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			assert.NoError(t, err)
			defer db.Close()

			repo := NewSessionRepo(db)

			expect := mock.ExpectQuery("SELECT token, user_id, expires_at").
				WithArgs("t1")
			if tt.mockError != nil {
				expect.WillReturnError(tt.mockError)
			} else {
				expect.WillReturnRows(tt.mockRows)
			}

			session, err := repo.GetSession("t1")

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, session)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, testUserID, session.UserID)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSessionRepo_ConsumeResetToken(t *testing.T) {
	tests := []struct {
		name          string
		mockRows      *sqlmock.Rows
		mockError     error
		expectedError error
	}{
		{
			name:     "live token consumed",
			mockRows: sqlmock.NewRows([]string{"user_id"}).AddRow(testUserID),
		},
		{
			name:          "used or expired token",
			mockError:     sql.ErrNoRows,
			expectedError: domain.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			assert.NoError(t, err)
			defer db.Close()

			repo := NewSessionRepo(db)

			expect := mock.ExpectQuery("UPDATE password_reset_tokens").
				WithArgs("t1")
			if tt.mockError != nil {
				expect.WillReturnError(tt.mockError)
			} else {
				expect.WillReturnRows(tt.mockRows)
			}

			userID, err := repo.ConsumeResetToken("t1")

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Empty(t, userID)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, testUserID, userID)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
