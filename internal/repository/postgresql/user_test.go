package postgresql

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/cmlabs-hris/hris-workflow-go/internal/domain/auth"
	"github.com/cmlabs-hris/hris-workflow-go/internal/domain/user"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var userRowColumns = []string{"id", "username", "email", "password_hash", "created_at", "updated_at"}

func TestUserRepository_Create(t *testing.T) {
	mock, db := newMockDB(t)
	repo := NewUserRepository(db)
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users (username, email, password_hash)")).
		WithArgs("jdoe", "jdoe@example.com", "hash").
		WillReturnRows(pgxmock.NewRows(userRowColumns).AddRow("u-1", "jdoe", "jdoe@example.com", "hash", now, now))

	created, err := repo.Create(context.Background(), user.User{Username: "jdoe", Email: "jdoe@example.com", PasswordHash: "hash"})

	require.NoError(t, err)
	assert.Equal(t, "u-1", created.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Create_UniqueViolations(t *testing.T) {
	tests := []struct {
		name       string
		constraint string
		want       error
	}{
		{"username taken", "users_username_key", user.ErrUsernameExists},
		{"email taken", "users_email_key", user.ErrEmailExists},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, db := newMockDB(t)
			repo := NewUserRepository(db)

			mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
				WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
				WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: tt.constraint})

			_, err := repo.Create(context.Background(), user.User{Username: "jdoe", Email: "jdoe@example.com", PasswordHash: "hash"})

			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestUserRepository_GetByUsername_NotFound(t *testing.T) {
	mock, db := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE username = $1")).
		WithArgs("ghost").
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.GetByUsername(context.Background(), "ghost")

	assert.ErrorIs(t, err, user.ErrUserNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_ExistsByUsernameOrEmail(t *testing.T) {
	mock, db := newMockDB(t)
	repo := NewUserRepository(db)
	email := "jdoe@example.com"

	mock.ExpectQuery(regexp.QuoteMeta("WHERE LOWER(email) = LOWER($1)")).
		WithArgs(email).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.ExistsByUsernameOrEmail(context.Background(), nil, &email)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByUsernameOrEmail(context.Background(), nil, nil)
	require.NoError(t, err)
	assert.False(t, exists)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestJWTRepository_CreateRefreshToken_StoresHash(t *testing.T) {
	mock, db := newMockDB(t)
	repo := NewJWTRepository(db)
	expiresAt := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO refresh_tokens (user_id, token_hash, expires_at, user_agent, ip_address)")).
		WithArgs("u-1", hashToken("raw-token"), expiresAt, "curl/8", "127.0.0.1").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := repo.CreateRefreshToken(context.Background(), "u-1", "raw-token", expiresAt.Unix(),
		auth.SessionTrackingRequest{UserAgent: "curl/8", IPAddress: "127.0.0.1"})

	require.NoError(t, err)
	assert.NotEqual(t, "raw-token", hashToken("raw-token"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestJWTRepository_IsRefreshTokenRevoked(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	columns := []string{"user_id", "revoked_at", "expires_at"}

	tests := []struct {
		name        string
		revokedAt   interface{}
		expiresAt   time.Time
		wantRevoked bool
	}{
		{"active", nil, now.Add(time.Hour), false},
		{"revoked", now.Add(-time.Minute), now.Add(time.Hour), true},
		{"expired", nil, now.Add(-time.Second), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, db := newMockDB(t)
			repo := &jwtRepositoryImpl{db: db, now: func() time.Time { return now }}

			mock.ExpectQuery(regexp.QuoteMeta("FROM refresh_tokens")).
				WithArgs(hashToken("raw-token")).
				WillReturnRows(pgxmock.NewRows(columns).AddRow("u-1", tt.revokedAt, tt.expiresAt))

			userID, revoked, err := repo.IsRefreshTokenRevoked(context.Background(), "raw-token")

			require.NoError(t, err)
			assert.Equal(t, "u-1", userID)
			assert.Equal(t, tt.wantRevoked, revoked)
		})
	}

	t.Run("unknown token", func(t *testing.T) {
		mock, db := newMockDB(t)
		repo := NewJWTRepository(db)

		mock.ExpectQuery(regexp.QuoteMeta("FROM refresh_tokens")).WithArgs(pgxmock.AnyArg()).WillReturnError(pgx.ErrNoRows)

		_, _, err := repo.IsRefreshTokenRevoked(context.Background(), "raw-token")
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})
}
