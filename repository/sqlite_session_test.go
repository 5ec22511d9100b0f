package repository

import (
	"context"
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/akinalp/postline/database"
	"github.com/akinalp/postline/models"
	"github.com/akinalp/postline/pkg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestDB, t.TempDir() içinde gerçek bir SQLite veritabanı açar ve
// embedded migration'ları uygular. Test bitince dosya dizinle birlikte silinir.
func newTestDB(t *testing.T) *database.DB {
	t.Helper()

	migrationsFS, err := fs.Sub(database.EmbeddedMigrations, "migrations")
	require.NoError(t, err)

	db, err := database.New(filepath.Join(t.TempDir(), "test.db"), migrationsFS)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return db
}

// createTestUser, session'ların FK gereksinimi için bir user satırı yaratır.
func createTestUser(t *testing.T, db *database.DB, username string) *models.User {
	t.Helper()

	users := NewSQLiteUserRepo(db.Conn)
	user := &models.User{
		Username: username,
		Email:    username + "@example.com",
		FullName: "Test User",
		Password: "digest",
	}
	require.NoError(t, users.Create(context.Background(), user))
	return user
}

func sessionCount(t *testing.T, db *database.DB, userID string) int {
	t.Helper()
	var n int
	err := db.Conn.QueryRow(`SELECT COUNT(*) FROM sessions WHERE user_id = ?`, userID).Scan(&n)
	require.NoError(t, err)
	return n
}

func TestSessionCreateAndGetByToken(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "ada")
	sessions := NewSQLiteSessionRepo(db.Conn)

	session := &models.Session{UserID: user.ID, Token: "refresh-1"}
	require.NoError(t, sessions.Create(context.Background(), session))
	assert.NotEmpty(t, session.ID)
	assert.False(t, session.CreatedAt.IsZero())

	got, err := sessions.GetByToken(context.Background(), "refresh-1")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.UserID)

	_, err = sessions.GetByToken(context.Background(), "unknown")
	assert.ErrorIs(t, err, pkg.ErrNotFound)
}

func TestSessionCreateSecondRowConflicts(t *testing.T) {
	// sessions.user_id UNIQUE — aynı kullanıcıya ikinci satır açılamaz
	db := newTestDB(t)
	user := createTestUser(t, db, "ada")
	sessions := NewSQLiteSessionRepo(db.Conn)

	require.NoError(t, sessions.Create(context.Background(), &models.Session{UserID: user.ID, Token: "refresh-1"}))

	err := sessions.Create(context.Background(), &models.Session{UserID: user.ID, Token: "refresh-2"})
	require.Error(t, err)
	assert.ErrorIs(t, err, pkg.ErrAlreadyExists)
	assert.Equal(t, 1, sessionCount(t, db, user.ID))
}

func TestSessionCreateRequiresUser(t *testing.T) {
	// FK aktif (_pragma=foreign_keys) — olmayan kullanıcıya session yazılamaz
	db := newTestDB(t)
	sessions := NewSQLiteSessionRepo(db.Conn)

	err := sessions.Create(context.Background(), &models.Session{UserID: "no-such-user", Token: "refresh-1"})
	assert.Error(t, err)
}

func TestSessionUpsertKeepsSingleRow(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "ada")
	sessions := NewSQLiteSessionRepo(db.Conn)

	first := &models.Session{UserID: user.ID, Token: "refresh-1"}
	require.NoError(t, sessions.Upsert(context.Background(), first))

	second := &models.Session{UserID: user.ID, Token: "refresh-2"}
	require.NoError(t, sessions.Upsert(context.Background(), second))

	// Satır sayısı hala 1, token son yazılan, id ilk satırınki
	assert.Equal(t, 1, sessionCount(t, db, user.ID))
	assert.Equal(t, first.ID, second.ID)

	got, err := sessions.GetByUserID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, "refresh-2", got.Token)

	_, err = sessions.GetByToken(context.Background(), "refresh-1")
	assert.ErrorIs(t, err, pkg.ErrNotFound)
}

func TestSessionReplaceRotatesToken(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "ada")
	sessions := NewSQLiteSessionRepo(db.Conn)

	session := &models.Session{UserID: user.ID, Token: "refresh-1"}
	require.NoError(t, sessions.Create(context.Background(), session))

	require.NoError(t, sessions.Replace(context.Background(), session.ID, "refresh-2"))

	got, err := sessions.GetByToken(context.Background(), "refresh-2")
	require.NoError(t, err)
	assert.Equal(t, session.ID, got.ID)

	// Eski token artık satır bulamaz
	_, err = sessions.GetByToken(context.Background(), "refresh-1")
	assert.ErrorIs(t, err, pkg.ErrNotFound)
}

func TestSessionReplaceMissingRow(t *testing.T) {
	db := newTestDB(t)
	sessions := NewSQLiteSessionRepo(db.Conn)

	err := sessions.Replace(context.Background(), "no-such-id", "refresh-2")
	assert.ErrorIs(t, err, pkg.ErrNotFound)
}

func TestSessionDeleteIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "ada")
	sessions := NewSQLiteSessionRepo(db.Conn)

	session := &models.Session{UserID: user.ID, Token: "refresh-1"}
	require.NoError(t, sessions.Create(context.Background(), session))

	require.NoError(t, sessions.Delete(context.Background(), session.ID))
	assert.Equal(t, 0, sessionCount(t, db, user.ID))

	// İkinci silme de hata değil
	require.NoError(t, sessions.Delete(context.Background(), session.ID))
}
