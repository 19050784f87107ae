package users

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/retailhub/internal/common"
	"github.com/dmitrijs2005/retailhub/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func userRows(users ...models.User) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"id", "email", "password", "name", "role", "is_approved", "created_at"})
	for _, u := range users {
		rows.AddRow(u.ID, u.Email, u.Password, u.Name, u.Role, u.IsApproved, u.CreatedAt)
	}
	return rows
}

func TestList_NoFilter(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+id, email, password, name, role, is_approved, created_at\s+FROM users\s+ORDER BY id$`
	mock.ExpectQuery(q).WillReturnRows(userRows(
		models.User{ID: 1, Email: "a@x.com", Name: "A", Role: "ADMIN", IsApproved: "YES"},
		models.User{ID: 2, Email: "b@x.com", Name: "B", Role: "RETAILER", IsApproved: "NO"},
	))

	got, err := repo.List(context.Background(), Filter{})
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(got) != 2 || got[0].ID != 1 || got[1].ID != 2 {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestList_CredentialFilterBuildsBothConditions(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)WHERE email = \$1 AND password = \$2\s+ORDER BY id$`
	mock.ExpectQuery(q).
		WithArgs("a@x.com", "pw").
		WillReturnRows(userRows(models.User{ID: 7, Email: "a@x.com", Password: "pw", Name: "A", Role: "RETAILER", IsApproved: "YES"}))

	got, err := repo.List(context.Background(), Filter{Email: "a@x.com", Password: "pw"})
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(got) != 1 || got[0].ID != 7 {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestList_ApprovalFilter(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)WHERE is_approved = \$1\s+ORDER BY id$`
	mock.ExpectQuery(q).WithArgs("NO").WillReturnRows(userRows())

	got, err := repo.List(context.Background(), Filter{IsApproved: "NO"})
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty result, got %+v", got)
	}
}

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^INSERT\s+INTO\s+users\s*\(email, password, name, role, is_approved, created_at\)\s*VALUES\s*\(\$1, \$2, \$3, \$4, \$5, \$6\)\s*RETURNING\s+id\s*$`
	mock.ExpectQuery(q).
		WithArgs("b@x.com", "pw", "Bob", "RETAILER", "NO", "2025-06-01T12:00:00Z").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))

	u := &models.User{Email: "b@x.com", Password: "pw", Name: "Bob", Role: "RETAILER", IsApproved: "NO", CreatedAt: "2025-06-01T12:00:00Z"}
	got, err := repo.Create(context.Background(), u)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.ID != 42 {
		t.Fatalf("unexpected user: %+v", got)
	}
}

func TestCreate_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`INSERT\s+INTO\s+users`).WillReturnError(errors.New("db down"))

	_, err := repo.Create(context.Background(), &models.User{Email: "b@x.com"})
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestUpdate_ApprovalPatch(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^UPDATE users SET is_approved = \$1 WHERE id = \$2 RETURNING`
	mock.ExpectQuery(q).
		WithArgs("YES", 7).
		WillReturnRows(userRows(models.User{ID: 7, Email: "a@x.com", Name: "A", Role: "RETAILER", IsApproved: "YES"}))

	yes := "YES"
	got, err := repo.Update(context.Background(), 7, Patch{IsApproved: &yes})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if got.IsApproved != "YES" {
		t.Fatalf("unexpected user: %+v", got)
	}
}

func TestUpdate_MissingRecord(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`UPDATE users SET`).WillReturnError(sql.ErrNoRows)

	yes := "YES"
	_, err := repo.Update(context.Background(), 99, Patch{IsApproved: &yes})
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDelete_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`DELETE FROM users WHERE id = \$1`).
		WithArgs(7).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Delete(context.Background(), 7); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
}

func TestDelete_MissingRecord(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`DELETE FROM users WHERE id = \$1`).
		WithArgs(99).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), 99)
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
