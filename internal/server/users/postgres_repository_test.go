package users

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dmitrijs2005/authservice/internal/common"
)

func newMockRepo(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, func()) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("error initializing mock db: %v", err)
	}

	return NewPostgresRepository(db), mock, func() { db.Close() }
}

func TestPostgresRepositoryExists(t *testing.T) {
	repo, mock, closeFn := newMockRepo(t)
	defer closeFn()

	mock.ExpectQuery(`SELECT 1 FROM users WHERE username = \$1`).
		WithArgs("alice01").
		WillReturnRows(sqlmock.NewRows([]string{"?column?"}).AddRow(1))

	exists, err := repo.Exists(context.Background(), "alice01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !exists {
		t.Errorf("expected user to exist")
	}

	mock.ExpectQuery(`SELECT 1 FROM users WHERE username = \$1`).
		WithArgs("nobody").
		WillReturnError(sql.ErrNoRows)

	exists, err = repo.Exists(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if exists {
		t.Errorf("expected user not to exist")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresRepositoryEmailExists(t *testing.T) {
	repo, mock, closeFn := newMockRepo(t)
	defer closeFn()

	mock.ExpectQuery(`SELECT 1 FROM users WHERE email = \$1`).
		WithArgs("a@b.com").
		WillReturnRows(sqlmock.NewRows([]string{"?column?"}).AddRow(1))

	exists, err := repo.EmailExists(context.Background(), "a@b.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !exists {
		t.Errorf("expected email to exist")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresRepositoryGetByUsername(t *testing.T) {
	repo, mock, closeFn := newMockRepo(t)
	defer closeFn()

	created := time.Now().UTC()

	mock.ExpectQuery(`SELECT id, username, password_hash, salt, email, created_at FROM users`).
		WithArgs("alice01").
		WillReturnRows(
			sqlmock.NewRows([]string{"id", "username", "password_hash", "salt", "email", "created_at"}).
				AddRow("u1", "alice01", "deadbeef", "c0ffee", "a@b.com", created))

	user, err := repo.GetByUsername(context.Background(), "alice01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.ID != "u1" || user.Username != "alice01" || user.Email != "a@b.com" {
		t.Errorf("unexpected user: %+v", user)
	}
	if !user.CreatedAt.Equal(created) {
		t.Errorf("expected created_at %v, got %v", created, user.CreatedAt)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresRepositoryGetByUsernameNotFound(t *testing.T) {
	repo, mock, closeFn := newMockRepo(t)
	defer closeFn()

	mock.ExpectQuery(`SELECT id, username, password_hash, salt, email, created_at FROM users`).
		WithArgs("nobody").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByUsername(context.Background(), "nobody")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Errorf("expected ErrorNotFound, got %v", err)
	}
}

func TestPostgresRepositoryCreate(t *testing.T) {
	repo, mock, closeFn := newMockRepo(t)
	defer closeFn()

	created := time.Now().UTC()

	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs(sqlmock.AnyArg(), "alice01", "deadbeef", "c0ffee", "a@b.com").
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(created))

	user, err := repo.Create(context.Background(), &User{
		Username:     "alice01",
		PasswordHash: "deadbeef",
		Salt:         "c0ffee",
		Email:        "a@b.com",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.ID == "" {
		t.Errorf("expected generated id")
	}
	if !user.CreatedAt.Equal(created) {
		t.Errorf("expected created_at %v, got %v", created, user.CreatedAt)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresRepositoryCreateConflicts(t *testing.T) {
	tests := []struct {
		name       string
		constraint string
		want       error
	}{
		{"username taken", usernameConstraint, common.ErrorUsernameExists},
		{"email taken", emailConstraint, common.ErrorEmailExists},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, closeFn := newMockRepo(t)
			defer closeFn()

			mock.ExpectQuery(`INSERT INTO users`).
				WillReturnError(&pgconn.PgError{
					Code:           uniqueViolationCode,
					ConstraintName: tt.constraint,
				})

			_, err := repo.Create(context.Background(), &User{
				Username:     "alice01",
				PasswordHash: "deadbeef",
				Salt:         "c0ffee",
				Email:        "a@b.com",
			})
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestPostgresRepositoryCreateOtherError(t *testing.T) {
	repo, mock, closeFn := newMockRepo(t)
	defer closeFn()

	mock.ExpectQuery(`INSERT INTO users`).
		WillReturnError(errors.New("connection reset"))

	_, err := repo.Create(context.Background(), &User{Username: "alice01"})
	if err == nil {
		t.Fatalf("expected error")
	}
	if errors.Is(err, common.ErrorUsernameExists) || errors.Is(err, common.ErrorEmailExists) {
		t.Errorf("unexpected conflict sentinel: %v", err)
	}
}
