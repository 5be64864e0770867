package accounts

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dmitrijs2005/recipekeeper/internal/common"
	"github.com/dmitrijs2005/recipekeeper/internal/server/models"
)

const (
	insertQuery = `(?s)^\s*INSERT\s+INTO\s+users\s*\(id,\s*email,\s*name,\s*password_hash,\s*is_active,\s*is_staff,\s*is_superuser\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3,\s*\$4,\s*\$5,\s*\$6,\s*\$7\)\s*RETURNING\s+created_at\s*$`
	updateQuery = `(?s)^\s*UPDATE\s+users\s+SET\s+email\s*=\s*\$2,.*WHERE\s+id\s*=\s*\$1\s*$`
	byEmail     = `(?s)^\s*SELECT\s+id,\s*email,.*FROM\s+users\s+WHERE\s+email\s*=\s*\$1\s*$`
	byID        = `(?s)^\s*SELECT\s+id,\s*email,.*FROM\s+users\s+WHERE\s+id\s*=\s*\$1\s*$`
	existsQuery = `(?s)^SELECT\s+EXISTS\s*\(SELECT\s+1\s+FROM\s+users\s+WHERE\s+email\s*=\s*\$1\)$`
)

var accountColumns = []string{"id", "email", "name", "password_hash", "is_active", "is_staff", "is_superuser", "created_at"}

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func sampleAccount() *models.Account {
	return &models.Account{
		ID:           "6f1c7f4e-2a43-4b5e-9d51-6a3f0a2d1b10",
		Email:        "test@test.com",
		Name:         "name",
		PasswordHash: "$2a$04$hash",
		IsActive:     true,
	}
}

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	a := sampleAccount()
	mock.ExpectQuery(insertQuery).
		WithArgs(a.ID, a.Email, a.Name, a.PasswordHash, true, false, false).
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(created))

	got, err := repo.Create(context.Background(), a)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if !got.CreatedAt.Equal(created) {
		t.Fatalf("expected created_at %v, got %v", created, got.CreatedAt)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreate_DuplicateEmail(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(insertQuery).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})

	_, err := repo.Create(context.Background(), sampleAccount())
	if !errors.Is(err, common.ErrDuplicateIdentity) {
		t.Fatalf("want ErrDuplicateIdentity, got %v", err)
	}
}

func TestCreate_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(insertQuery).WillReturnError(errors.New("db down"))

	_, err := repo.Create(context.Background(), sampleAccount())
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestUpdate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	a := sampleAccount()
	mock.ExpectExec(updateQuery).
		WithArgs(a.ID, a.Email, a.Name, a.PasswordHash, true, false, false).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Update(context.Background(), a); err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUpdate_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(updateQuery).WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.Update(context.Background(), sampleAccount()); !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want ErrorNotFound, got %v", err)
	}
}

func TestUpdate_DuplicateEmail(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(updateQuery).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})

	if err := repo.Update(context.Background(), sampleAccount()); !errors.Is(err, common.ErrDuplicateIdentity) {
		t.Fatalf("want ErrDuplicateIdentity, got %v", err)
	}
}

func TestGetByEmail_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	created := time.Now().UTC()
	mock.ExpectQuery(byEmail).
		WithArgs("test@test.com").
		WillReturnRows(sqlmock.NewRows(accountColumns).
			AddRow("u-1", "test@test.com", "name", "$2a$04$hash", true, false, false, created))

	got, err := repo.GetByEmail(context.Background(), "test@test.com")
	if err != nil {
		t.Fatalf("GetByEmail error: %v", err)
	}
	if got.ID != "u-1" || got.Email != "test@test.com" || got.PasswordHash != "$2a$04$hash" || !got.IsActive {
		t.Fatalf("unexpected account: %+v", got)
	}
}

func TestGetByEmail_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(byEmail).WithArgs("ghost@test.com").WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByEmail(context.Background(), "ghost@test.com")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestGetByID_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(byID).WithArgs("u-1").WillReturnError(errors.New("db err"))

	_, err := repo.GetByID(context.Background(), "u-1")
	if err == nil || !regexp.MustCompile(`db error: .*db err`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestExistsByEmail(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(existsQuery).WithArgs("test@test.com").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectQuery(existsQuery).WithArgs("ghost@test.com").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	ok, err := repo.ExistsByEmail(context.Background(), "test@test.com")
	if err != nil || !ok {
		t.Fatalf("expected (true, nil), got (%v, %v)", ok, err)
	}
	ok, err = repo.ExistsByEmail(context.Background(), "ghost@test.com")
	if err != nil || ok {
		t.Fatalf("expected (false, nil), got (%v, %v)", ok, err)
	}
}
