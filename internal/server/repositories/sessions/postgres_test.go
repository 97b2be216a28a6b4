package sessions

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/tokengate/internal/common"
	"github.com/oklog/ulid/v2"
)

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

	now := time.Now().UTC()
	mock.ExpectQuery(`(?s)^\s*INSERT\s+INTO\s+sessions\s*\(id,\s*user_id\)\s*VALUES\s*\(\$1,\s*\$2\)\s*RETURNING\s+created_at\s*$`).
		WithArgs(sqlmock.AnyArg(), "u1").
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(now))

	s, err := repo.Create(context.Background(), "u1")
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if _, err := ulid.ParseStrict(s.ID); err != nil {
		t.Fatalf("session id is not a ULID: %q", s.ID)
	}
	if s.UserID != "u1" || !s.CreatedAt.Equal(now) {
		t.Fatalf("unexpected session: %+v", s)
	}
}

func TestCreate_UniqueIDs(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	for i := 0; i < 2; i++ {
		mock.ExpectQuery(`INSERT\s+INTO\s+sessions`).
			WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(time.Now()))
	}

	a, _ := repo.Create(context.Background(), "u1")
	b, _ := repo.Create(context.Background(), "u1")
	if a.ID == b.ID {
		t.Fatalf("expected distinct ids, got %q twice", a.ID)
	}
}

func TestCreate_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`INSERT\s+INTO\s+sessions`).WillReturnError(errors.New("db down"))

	_, err := repo.Create(context.Background(), "u1")
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestFind(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	id := ulid.Make().String()
	q := `(?s)^\s*SELECT\s+id,\s*user_id,\s*created_at\s+FROM\s+sessions\s+WHERE\s+id\s*=\s*\$1\s*$`

	mock.ExpectQuery(q).WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "created_at"}).AddRow(id, "u1", time.Now()))
	mock.ExpectQuery(q).WithArgs(id).WillReturnError(sql.ErrNoRows)

	s, err := repo.Find(context.Background(), id)
	if err != nil || s.UserID != "u1" {
		t.Fatalf("Find = %+v, %v", s, err)
	}

	if _, err := repo.Find(context.Background(), id); !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestFind_MalformedIDSkipsQuery(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	if _, err := repo.Find(context.Background(), "forged"); !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unexpected db access: %v", err)
	}
}

func TestDelete(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^\s*DELETE\s+FROM\s+sessions\s+WHERE\s+id\s*=\s*\$1\s*$`
	mock.ExpectExec(q).WithArgs("s1").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(q).WithArgs("s1").WillReturnError(errors.New("db err"))

	if err := repo.Delete(context.Background(), "s1"); err != nil {
		t.Fatalf("deleting a missing session must succeed, got %v", err)
	}
	if err := repo.Delete(context.Background(), "s1"); err == nil {
		t.Fatalf("expected db error")
	}
}
