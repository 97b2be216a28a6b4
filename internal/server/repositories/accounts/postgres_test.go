package accounts

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/tokengate/internal/common"
	"github.com/dmitrijs2005/tokengate/internal/server/models"
	"github.com/google/go-cmp/cmp"
	"github.com/jackc/pgx/v5/pgconn"
)

const testID = "8f1c1c3e-5d6a-4a43-9d5e-0f3a2b1c4d5e"

var accountColumns = []string{
	"id", "email", "username", "password_hash", "email_confirmed", "confirmation_hash",
	"tokens", "engine_access", "material_strength_access", "version", "created_at",
}

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	created := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	q := `(?s)^\s*INSERT\s+INTO\s+users\b.*RETURNING\s+version,\s*created_at\s*$`

	mock.ExpectQuery(q).
		WithArgs(testID, "Alice@Example.com", "alice@example.com", "Alice", "alice", "hash",
			false, "abc", int64(5), "00000000000000", "00000000000000").
		WillReturnRows(sqlmock.NewRows([]string{"version", "created_at"}).AddRow(int64(0), created))

	acc := &models.Account{
		ID: testID, Email: "Alice@Example.com", UserName: "Alice", PasswordHash: "hash",
		ConfirmationHash: "abc", Tokens: 5,
		EngineAccess: models.NewVector(models.Slots), MaterialAccess: models.NewVector(models.Slots),
	}
	got, err := repo.Create(context.Background(), acc)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if !got.CreatedAt.Equal(created) {
		t.Fatalf("created_at not populated: %v", got.CreatedAt)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreate_UniqueViolations(t *testing.T) {
	tests := []struct {
		constraint string
		want       string
	}{
		{constraint: "users_email_norm_key", want: "Email 'a@b.c' is already taken."},
		{constraint: "users_username_norm_key", want: "Username 'alice' is already taken."},
	}

	for _, tt := range tests {
		t.Run(tt.constraint, func(t *testing.T) {
			repo, mock, db := newRepoWithMock(t)
			defer db.Close()

			mock.ExpectQuery(`(?s)^\s*INSERT\s+INTO\s+users\b`).
				WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: tt.constraint})

			_, err := repo.Create(context.Background(), &models.Account{ID: testID, Email: "a@b.c", UserName: "alice"})
			msgs, ok := common.StoreMessages(err)
			if !ok {
				t.Fatalf("expected StoreError, got %v", err)
			}
			if diff := cmp.Diff([]string{tt.want}, msgs); diff != "" {
				t.Fatalf("messages mismatch (-want +got):\n%s", diff)
			}
			if !errors.Is(err, common.ErrConflict) {
				t.Fatalf("expected ErrConflict in chain, got %v", err)
			}
		})
	}
}

func TestCreate_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)^\s*INSERT\s+INTO\s+users\b`).WillReturnError(errors.New("db down"))

	_, err := repo.Create(context.Background(), &models.Account{ID: testID})
	msgs, ok := common.StoreMessages(err)
	if !ok || msgs[0] != "Failed to persist account." {
		t.Fatalf("expected generic store error, got %v", err)
	}
	if !regexp.MustCompile(`db error: db down`).MatchString(err.Error()) {
		t.Fatalf("cause not wrapped: %v", err)
	}
	if errors.Is(err, common.ErrConflict) {
		t.Fatalf("plain db error reported as conflict: %v", err)
	}
}

func TestFindByEmail_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	created := time.Now().UTC()
	rows := sqlmock.NewRows(accountColumns).
		AddRow(testID, "alice@example.com", "alice", "hash", true, nil,
			int64(2), "101", nil, int64(3), created)

	mock.ExpectQuery(`(?s)^\s*SELECT\s+id,.*FROM\s+users\s+WHERE\s+email_norm\s*=\s*\$1\s*$`).
		WithArgs("alice@example.com").
		WillReturnRows(rows)

	got, err := repo.FindByEmail(context.Background(), "  ALICE@example.com ")
	if err != nil {
		t.Fatalf("FindByEmail error: %v", err)
	}

	want := &models.Account{
		ID: testID, Email: "alice@example.com", UserName: "alice", PasswordHash: "hash",
		EmailConfirmed: true, Tokens: 2, EngineAccess: models.Vector{true, false, true},
		Version: 3, CreatedAt: created,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("account mismatch (-want +got):\n%s", diff)
	}
}

func TestFindByEmail_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)FROM\s+users\s+WHERE\s+email_norm`).
		WithArgs("ghost@example.com").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByEmail(context.Background(), "ghost@example.com")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestFindByID_NonUUIDSkipsQuery(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	_, err := repo.FindByID(context.Background(), "not-a-uuid")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unexpected db access: %v", err)
	}
}

func TestFindByID_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)FROM\s+users\s+WHERE\s+id\s*=\s*\$1`).
		WithArgs(testID).
		WillReturnError(errors.New("db err"))

	_, err := repo.FindByID(context.Background(), testID)
	if err == nil || errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestRoles(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)^\s*SELECT\s+role\s+FROM\s+user_roles\s+WHERE\s+user_id\s*=\s*\$1\s+ORDER\s+BY\s+role\s*$`).
		WithArgs(testID).
		WillReturnRows(sqlmock.NewRows([]string{"role"}).AddRow("Admin").AddRow("Guest"))

	roles, err := repo.Roles(context.Background(), testID)
	if err != nil {
		t.Fatalf("Roles error: %v", err)
	}
	if diff := cmp.Diff([]string{"Admin", "Guest"}, roles); diff != "" {
		t.Fatalf("roles mismatch (-want +got):\n%s", diff)
	}
}

func TestAddRole(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`(?s)^\s*INSERT\s+INTO\s+user_roles\b.*ON\s+CONFLICT\s+DO\s+NOTHING\s*$`).
		WithArgs(testID, "Guest").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.AddRole(context.Background(), testID, "Guest"); err != nil {
		t.Fatalf("AddRole error: %v", err)
	}
}

func TestUpdatePassword(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `^UPDATE\s+users\s+SET\s+password_hash\s*=\s*\$2\s+WHERE\s+id\s*=\s*\$1$`
	mock.ExpectExec(q).WithArgs(testID, "newhash").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(q).WithArgs(testID, "newhash").WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.UpdatePassword(context.Background(), testID, "newhash"); err != nil {
		t.Fatalf("UpdatePassword error: %v", err)
	}
	if err := repo.UpdatePassword(context.Background(), testID, "newhash"); !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound for missing row, got %v", err)
	}
}

func TestUpdateUsername_Taken(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`^UPDATE\s+users\s+SET\s+username\s*=\s*\$2,\s*username_norm\s*=\s*\$3\s+WHERE\s+id\s*=\s*\$1$`).
		WithArgs(testID, "Bob", "bob").
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_username_norm_key"})

	err := repo.UpdateUsername(context.Background(), testID, "Bob")
	msgs, ok := common.StoreMessages(err)
	if !ok || msgs[0] != "Username 'Bob' is already taken." {
		t.Fatalf("unexpected error: %v", err)
	}
	if !errors.Is(err, common.ErrConflict) {
		t.Fatalf("expected ErrConflict in chain, got %v", err)
	}
}

func TestConfirmEmail(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`^UPDATE\s+users\s+SET\s+email_confirmed\s*=\s*TRUE,\s*confirmation_hash\s*=\s*NULL\s+WHERE\s+id\s*=\s*\$1$`).
		WithArgs(testID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.ConfirmEmail(context.Background(), testID); err != nil {
		t.Fatalf("ConfirmEmail error: %v", err)
	}
}

func TestUpdateAccess_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^\s*UPDATE\s+users\s+SET\s+material_strength_access\s*=\s*\$2,\s*tokens\s*=\s*\$3,\s*version\s*=\s*version\s*\+\s*1\s+WHERE\s+id\s*=\s*\$1\s+AND\s+version\s*=\s*\$4\s+RETURNING\s+version\s*$`
	mock.ExpectQuery(q).
		WithArgs(testID, "101", int64(0), int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"version"}).AddRow(int64(8)))

	v, err := repo.UpdateAccess(context.Background(), testID, models.DomainMaterialStrength, models.Vector{true, false, true}, 0, 7)
	if err != nil {
		t.Fatalf("UpdateAccess error: %v", err)
	}
	if v != 8 {
		t.Fatalf("unexpected version: %d", v)
	}
}

func TestUpdateAccess_StaleVersion(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)UPDATE\s+users\s+SET\s+engine_access`).
		WithArgs(testID, "1", int64(1), int64(2)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.UpdateAccess(context.Background(), testID, models.DomainEngines, models.Vector{true}, 1, 2)
	if !errors.Is(err, common.ErrVersionConflict) {
		t.Fatalf("want common.ErrVersionConflict, got %v", err)
	}
}

func TestUpdateAccess_CheckViolation(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)UPDATE\s+users\s+SET\s+engine_access`).
		WillReturnError(&pgconn.PgError{Code: "23514", ConstraintName: "users_tokens_non_negative"})

	_, err := repo.UpdateAccess(context.Background(), testID, models.DomainEngines, models.Vector{true}, -1, 0)
	msgs, ok := common.StoreMessages(err)
	if !ok || msgs[0] != "Failed to persist account." {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestUpdateAccess_UnknownDomain(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	if _, err := repo.UpdateAccess(context.Background(), testID, "hulls", nil, 0, 0); err == nil {
		t.Fatalf("expected error for unknown domain")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unexpected db access: %v", err)
	}
}

func TestNormalize(t *testing.T) {
	if got := NormalizeEmail("  Alice@Example.COM "); got != "alice@example.com" {
		t.Fatalf("NormalizeEmail = %q", got)
	}
	if got := NormalizeUserName("Bob "); got != "bob" {
		t.Fatalf("NormalizeUserName = %q", got)
	}
}
