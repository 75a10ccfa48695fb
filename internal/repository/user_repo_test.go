package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func newMockUserRepo(t *testing.T) (*UserRepository, sqlmock.Sqlmock, func()) {
	t.Helper()

	database, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}

	repo := NewUserRepository(database)
	cleanup := func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Fatalf("unmet sqlmock expectations: %v", err)
		}
		_ = database.Close()
	}
	return repo, mock, cleanup
}

func userRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"username", "name", "password_hash", "token"})
}

func TestUserRepository_Create(t *testing.T) {
	tests := []struct {
		name       string
		mockExpect func(sqlmock.Sqlmock)
		wantErr    string
	}{
		{
			name: "success",
			mockExpect: func(m sqlmock.Sqlmock) {
				m.ExpectExec(regexp.QuoteMeta(insertUserSQL)).
					WithArgs("alice", "Alice", "h123").
					WillReturnResult(sqlmock.NewResult(1, 1))
			},
		},
		{
			name: "exec error",
			mockExpect: func(m sqlmock.Sqlmock) {
				m.ExpectExec(regexp.QuoteMeta(insertUserSQL)).
					WithArgs("alice", "Alice", "h123").
					WillReturnError(errors.New("db exec failed"))
			},
			wantErr: "insert user",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := newMockUserRepo(t)
			defer cleanup()

			tt.mockExpect(mock)

			err := repo.Create(context.Background(), testUser("alice", "Alice", "h123"))

			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestUserRepository_GetByUsername(t *testing.T) {
	t.Run("found with token", func(t *testing.T) {
		repo, mock, cleanup := newMockUserRepo(t)
		defer cleanup()

		mock.ExpectQuery(regexp.QuoteMeta(selectUserSQL)).
			WithArgs("alice").
			WillReturnRows(userRows().AddRow("alice", "Alice", "h123", "tok-1"))

		user, err := repo.GetByUsername(context.Background(), "alice")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if user == nil || user.Username != "alice" {
			t.Fatalf("unexpected user: %+v", user)
		}
		if user.Token == nil || *user.Token != "tok-1" {
			t.Fatalf("expected token tok-1, got %v", user.Token)
		}
	})

	t.Run("found without token", func(t *testing.T) {
		repo, mock, cleanup := newMockUserRepo(t)
		defer cleanup()

		mock.ExpectQuery(regexp.QuoteMeta(selectUserSQL)).
			WithArgs("alice").
			WillReturnRows(userRows().AddRow("alice", "Alice", "h123", nil))

		user, err := repo.GetByUsername(context.Background(), "alice")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if user.Token != nil {
			t.Fatalf("expected nil token, got %q", *user.Token)
		}
	})

	t.Run("not found yields nil, nil", func(t *testing.T) {
		repo, mock, cleanup := newMockUserRepo(t)
		defer cleanup()

		mock.ExpectQuery(regexp.QuoteMeta(selectUserSQL)).
			WithArgs("ghost").
			WillReturnError(sql.ErrNoRows)

		user, err := repo.GetByUsername(context.Background(), "ghost")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if user != nil {
			t.Fatalf("expected nil user, got %+v", user)
		}
	})
}

func TestUserRepository_GetByToken(t *testing.T) {
	t.Run("unknown token yields nil, nil", func(t *testing.T) {
		repo, mock, cleanup := newMockUserRepo(t)
		defer cleanup()

		mock.ExpectQuery(regexp.QuoteMeta(selectUserByTokenSQL)).
			WithArgs("stale").
			WillReturnError(sql.ErrNoRows)

		user, err := repo.GetByToken(context.Background(), "stale")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if user != nil {
			t.Fatalf("expected nil user, got %+v", user)
		}
	})

	t.Run("found", func(t *testing.T) {
		repo, mock, cleanup := newMockUserRepo(t)
		defer cleanup()

		mock.ExpectQuery(regexp.QuoteMeta(selectUserByTokenSQL)).
			WithArgs("tok-1").
			WillReturnRows(userRows().AddRow("alice", "Alice", "h123", "tok-1"))

		user, err := repo.GetByToken(context.Background(), "tok-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if user == nil || user.Username != "alice" {
			t.Fatalf("unexpected user: %+v", user)
		}
	})
}

func TestUserRepository_SetToken(t *testing.T) {
	t.Run("set", func(t *testing.T) {
		repo, mock, cleanup := newMockUserRepo(t)
		defer cleanup()

		mock.ExpectExec(regexp.QuoteMeta(updateUserTokenSQL)).
			WithArgs("tok-2", "alice").
			WillReturnResult(sqlmock.NewResult(0, 1))

		token := "tok-2"
		if err := repo.SetToken(context.Background(), "alice", &token); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("clear writes NULL", func(t *testing.T) {
		repo, mock, cleanup := newMockUserRepo(t)
		defer cleanup()

		mock.ExpectExec(regexp.QuoteMeta(updateUserTokenSQL)).
			WithArgs(nil, "alice").
			WillReturnResult(sqlmock.NewResult(0, 1))

		if err := repo.SetToken(context.Background(), "alice", nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestUserRepository_UpdateProfile(t *testing.T) {
	repo, mock, cleanup := newMockUserRepo(t)
	defer cleanup()

	mock.ExpectExec(regexp.QuoteMeta(updateUserProfileSQL)).
		WithArgs("Alice B", "h456", "alice").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.UpdateProfile(context.Background(), testUser("alice", "Alice B", "h456")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
