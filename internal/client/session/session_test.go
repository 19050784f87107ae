package session

import (
	"context"
	"database/sql"
	"testing"

	"github.com/dmitrijs2005/retailhub/internal/client/models"
	"github.com/dmitrijs2005/retailhub/internal/common"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupManager(t *testing.T) (*Manager, *sql.DB) {
	t.Helper()
	db, err := sql.Open("sqlite", "file:sessionmgr"+t.Name()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE session (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);
`)
	require.NoError(t, err)
	return NewManager(db), db
}

func testUser() models.User {
	return models.User{
		ID:         7,
		Email:      "a@x.com",
		Password:   "pw",
		Name:       "Alice",
		Role:       models.RoleRetailer,
		IsApproved: models.ApprovalYes,
	}
}

func TestSaveCurrent_RoundTripStripsPassword(t *testing.T) {
	m, _ := setupManager(t)
	ctx := context.Background()

	require.NoError(t, m.Save(ctx, testUser(), "token_7_abc"))

	got := m.Current(ctx)
	require.NotNil(t, got)

	want := testUser().WithoutPassword()
	require.Equal(t, &want, got)
	require.Empty(t, got.Password)
}

func TestSave_PersistsBothKeys(t *testing.T) {
	m, db := setupManager(t)
	ctx := context.Background()

	require.NoError(t, m.Save(ctx, testUser(), "token_7_abc"))

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM session`).Scan(&n))
	require.Equal(t, 2, n)
	require.Equal(t, "token_7_abc", m.Token(ctx))
}

func TestIsAuthenticated_TogglesWithSaveAndClear(t *testing.T) {
	m, _ := setupManager(t)
	ctx := context.Background()

	require.False(t, m.IsAuthenticated(ctx))

	require.NoError(t, m.Save(ctx, testUser(), "tok"))
	require.True(t, m.IsAuthenticated(ctx))

	require.NoError(t, m.Clear(ctx))
	require.False(t, m.IsAuthenticated(ctx))
	require.Nil(t, m.Current(ctx))
}

func TestClear_IsIdempotent(t *testing.T) {
	m, _ := setupManager(t)
	ctx := context.Background()

	require.NoError(t, m.Save(ctx, testUser(), "tok"))
	require.NoError(t, m.Clear(ctx))
	require.NoError(t, m.Clear(ctx))
	require.False(t, m.IsAuthenticated(ctx))
}

func TestIsAdmin(t *testing.T) {
	m, _ := setupManager(t)
	ctx := context.Background()

	// no session at all
	require.False(t, m.IsAdmin(ctx))

	// retailer session
	require.NoError(t, m.Save(ctx, testUser(), "tok"))
	require.False(t, m.IsAdmin(ctx))

	// admin session, lowercase role as stored by older data
	admin := testUser()
	admin.Role = models.Role("admin")
	require.NoError(t, m.Save(ctx, admin, "tok2"))
	require.True(t, m.IsAdmin(ctx))
}

func TestCurrent_MalformedStoredUserMeansNoSession(t *testing.T) {
	m, db := setupManager(t)
	ctx := context.Background()

	_, err := db.Exec(`INSERT INTO session(key,value) VALUES(?,?)`, common.UserStorageKey, []byte(`{not json`))
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO session(key,value) VALUES(?,?)`, common.TokenStorageKey, []byte(`tok`))
	require.NoError(t, err)

	require.Nil(t, m.Current(ctx))
	// corrupted user data must never be read as admin
	require.False(t, m.IsAdmin(ctx))
	// token presence still counts as authenticated, per contract
	require.True(t, m.IsAuthenticated(ctx))
}

func TestInitDatabase_AppliesMigrations(t *testing.T) {
	ctx := context.Background()
	db, err := InitDatabase(ctx, "file:sessioninit?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	m := NewManager(db)
	require.NoError(t, m.Save(ctx, testUser(), "tok"))
	require.True(t, m.IsAuthenticated(ctx))
}
