package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/MKhiriev/career-compass/internal/logger"
	"github.com/MKhiriev/career-compass/models"
)

func newTestDB(t *testing.T, driver string) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })

	db, err := newDB(driver, logger.Nop())
	if err != nil {
		t.Fatalf("failed to prepare db: %v", err)
	}
	db.DB = conn
	return db, mock
}

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock) {
	db, mock := newTestDB(t, "pgx")
	return &userRepository{DB: db, logger: logger.Nop()}, mock
}

func pgError(code, constraint string) error {
	return &pgconn.PgError{Code: code, ConstraintName: constraint}
}

var testTime = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

func userRow(u models.User) []driver.Value {
	var studentID driver.Value
	if u.StudentID != "" {
		studentID = u.StudentID
	}
	return []driver.Value{u.ID, u.Name, u.Email, u.PasswordHash, u.Phone, u.Class, u.Section,
		studentID, string(u.Role), u.CreatedAt, u.UpdatedAt}
}

func testUser() models.User {
	return models.User{
		ID:           "u-1",
		Name:         "Asha",
		Email:        "asha@example.com",
		PasswordHash: "hash",
		Class:        "10",
		Section:      "A",
		StudentID:    "K_10_Aabcdefghi",
		Role:         models.RoleStudent,
		CreatedAt:    testTime,
		UpdatedAt:    testTime,
	}
}

// ─────────────────────────────────────────────
// CreateUser
// ─────────────────────────────────────────────

func TestCreateUser_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	user := testUser()
	user.Email = "  Asha@Example.COM "

	mock.ExpectExec("INSERT INTO users").
		WithArgs("u-1", "Asha", "asha@example.com", "hash", "", "10", "A",
			"K_10_Aabcdefghi", "student", testTime, testTime).
		WillReturnResult(sqlmock.NewResult(0, 1))

	created, err := repo.CreateUser(context.Background(), user)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.Email != "asha@example.com" {
		t.Errorf("expected normalized email, got %q", created.Email)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestCreateUser_EmptyStudentIDStoredAsNull(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	user := testUser()
	user.StudentID = ""
	user.Role = models.RoleAdmin

	mock.ExpectExec("INSERT INTO users").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(),
			sqlmock.AnyArg(), sqlmock.AnyArg(), nil, "admin", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if _, err := repo.CreateUser(context.Background(), user); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCreateUser_UniqueViolation(t *testing.T) {
	tests := []struct {
		name       string
		constraint string
		want       error
	}{
		{"email", "users_email_key", ErrEmailAlreadyExists},
		{"student id", "users_student_id_key", ErrStudentIDAlreadyExists},
		{"unknown constraint", "users_pkey", ErrEmailAlreadyExists},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestUserRepo(t)

			mock.ExpectExec("INSERT INTO users").
				WillReturnError(pgError(pgerrcode.UniqueViolation, tt.constraint))

			_, err := repo.CreateUser(context.Background(), testUser())
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
			if !errors.Is(err, models.ErrConflict) {
				t.Errorf("expected conflict kind, got %v", err)
			}
		})
	}
}

func TestCreateUser_CheckViolation(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectExec("INSERT INTO users").
		WillReturnError(pgError(pgerrcode.CheckViolation, "users_role_check"))

	_, err := repo.CreateUser(context.Background(), testUser())
	if !errors.Is(err, ErrConstraintViolation) {
		t.Fatalf("expected ErrConstraintViolation, got %v", err)
	}
}

func TestCreateUser_DBError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectExec("INSERT INTO users").WillReturnError(errors.New("connection reset"))

	_, err := repo.CreateUser(context.Background(), testUser())
	if !errors.Is(err, ErrExecutingStatement) {
		t.Fatalf("expected ErrExecutingStatement, got %v", err)
	}
	if !errors.Is(err, models.ErrPersistence) {
		t.Errorf("expected persistence kind, got %v", err)
	}
}

// ─────────────────────────────────────────────
// GetUserByID / GetUserByEmail
// ─────────────────────────────────────────────

func TestGetUserByID_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	want := testUser()
	mock.ExpectQuery(`SELECT .+ FROM users WHERE id = \$1`).
		WithArgs("u-1").
		WillReturnRows(sqlmock.NewRows(userColumns).AddRow(userRow(want)...))

	got, err := repo.GetUserByID(context.Background(), "u-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != want.ID || got.StudentID != want.StudentID || got.Role != models.RoleStudent {
		t.Errorf("unexpected user: %+v", got)
	}
}

func TestGetUserByID_NotFound(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("SELECT .+ FROM users").WillReturnError(sql.ErrNoRows)

	_, err := repo.GetUserByID(context.Background(), "missing")
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestGetUserByEmail_NormalizesLookup(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	user := testUser()
	user.StudentID = ""
	mock.ExpectQuery(`SELECT .+ FROM users WHERE email = \$1`).
		WithArgs("asha@example.com").
		WillReturnRows(sqlmock.NewRows(userColumns).AddRow(userRow(user)...))

	got, err := repo.GetUserByEmail(context.Background(), " ASHA@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.StudentID != "" {
		t.Errorf("expected empty student id for NULL column, got %q", got.StudentID)
	}
}

func TestGetUserByEmail_ScanError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("SELECT .+ FROM users").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("u-1"))

	_, err := repo.GetUserByEmail(context.Background(), "asha@example.com")
	if !errors.Is(err, ErrScanningRow) {
		t.Fatalf("expected ErrScanningRow, got %v", err)
	}
}

// ─────────────────────────────────────────────
// ListUsers
// ─────────────────────────────────────────────

func TestListUsers_FilterByRole(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	first, second := testUser(), testUser()
	second.ID, second.Email, second.StudentID = "u-2", "b@example.com", "K_10_Bxxxxxxxxx"

	mock.ExpectQuery(`SELECT .+ FROM users WHERE role = \$1 ORDER BY created_at, id`).
		WithArgs("student").
		WillReturnRows(sqlmock.NewRows(userColumns).AddRow(userRow(first)...).AddRow(userRow(second)...))

	users, err := repo.ListUsers(context.Background(), models.RoleStudent)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(users) != 2 || users[0].ID != "u-1" || users[1].ID != "u-2" {
		t.Errorf("unexpected users: %+v", users)
	}
}

func TestListUsers_Empty(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery(`SELECT .+ FROM users ORDER BY created_at, id`).
		WillReturnRows(sqlmock.NewRows(userColumns))

	users, err := repo.ListUsers(context.Background(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if users == nil || len(users) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", users)
	}
}

func TestListUsers_QueryError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("SELECT .+ FROM users").WillReturnError(errors.New("boom"))

	_, err := repo.ListUsers(context.Background(), "")
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}

// ─────────────────────────────────────────────
// UpdateUser / DeleteUser
// ─────────────────────────────────────────────

func TestUpdateUser_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	user := testUser()
	user.Email = "NEW@example.com"

	// squirrel orders SetMap columns alphabetically
	mock.ExpectExec(`UPDATE users SET class = \$1, email = \$2, name = \$3, phone = \$4, section = \$5, updated_at = \$6 WHERE id = \$7`).
		WithArgs("10", "new@example.com", "Asha", "", "A", testTime, "u-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	updated, err := repo.UpdateUser(context.Background(), user)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Email != "new@example.com" {
		t.Errorf("expected normalized email, got %q", updated.Email)
	}
}

func TestUpdateUser_NotFound(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectExec("UPDATE users").WillReturnResult(sqlmock.NewResult(0, 0))

	_, err := repo.UpdateUser(context.Background(), testUser())
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUpdateUser_EmailTaken(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectExec("UPDATE users").
		WillReturnError(pgError(pgerrcode.UniqueViolation, "users_email_key"))

	_, err := repo.UpdateUser(context.Background(), testUser())
	if !errors.Is(err, ErrEmailAlreadyExists) {
		t.Fatalf("expected ErrEmailAlreadyExists, got %v", err)
	}
}

func TestDeleteUser(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		repo, mock := newTestUserRepo(t)
		mock.ExpectExec(`DELETE FROM users WHERE id = \$1`).
			WithArgs("u-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		if err := repo.DeleteUser(context.Background(), "u-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		repo, mock := newTestUserRepo(t)
		mock.ExpectExec("DELETE FROM users").WillReturnResult(sqlmock.NewResult(0, 0))

		if err := repo.DeleteUser(context.Background(), "u-1"); !errors.Is(err, ErrUserNotFound) {
			t.Fatalf("expected ErrUserNotFound, got %v", err)
		}
	})

	t.Run("rows affected error", func(t *testing.T) {
		repo, mock := newTestUserRepo(t)
		mock.ExpectExec("DELETE FROM users").
			WillReturnResult(sqlmock.NewErrorResult(errors.New("driver")))

		if err := repo.DeleteUser(context.Background(), "u-1"); !errors.Is(err, ErrExecutingStatement) {
			t.Fatalf("expected ErrExecutingStatement, got %v", err)
		}
	})
}
