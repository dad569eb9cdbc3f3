package service

import (
	"testing"
	"time"

	"mupro/lostfound-api/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestLedger(t *testing.T) (*TokenLedger, *gorm.DB) {
	t.Helper()

	conn, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, conn.AutoMigrate(model.Token{}))

	return NewTokenLedger(conn), conn
}

func TestLedgerRecordAndFind(t *testing.T) {
	l, _ := newTestLedger(t)

	require.NoError(t, l.Record("tok-1", "user-1"))

	row, err := l.Find("tok-1")
	require.NoError(t, err)
	assert.Equal(t, "user-1", row.UserID)
	assert.False(t, row.Revoked)
	assert.False(t, row.Expired)

	active, err := l.IsActive("tok-1")
	require.NoError(t, err)
	assert.True(t, active)

	_, err = l.Find("never-issued")
	assert.ErrorIs(t, err, ErrTokenNotFound)

	// Unknown tokens are inactive, not an error
	active, err = l.IsActive("never-issued")
	require.NoError(t, err)
	assert.False(t, active)
}

func TestLedgerRevoke(t *testing.T) {
	l, _ := newTestLedger(t)

	require.NoError(t, l.Record("tok-1", "user-1"))
	require.NoError(t, l.Revoke("tok-1"))

	row, err := l.Find("tok-1")
	require.NoError(t, err)
	assert.True(t, row.Revoked)
	assert.True(t, row.Expired)

	assert.ErrorIs(t, l.Revoke("never-issued"), ErrTokenNotFound)
}

func TestLedgerRotate(t *testing.T) {
	l, conn := newTestLedger(t)

	require.NoError(t, l.Record("tok-1", "user-1"))
	require.NoError(t, l.Record("tok-other", "user-2"))

	require.NoError(t, l.Rotate("user-1", "tok-2"))

	active, err := l.IsActive("tok-1")
	require.NoError(t, err)
	assert.False(t, active)

	active, err = l.IsActive("tok-2")
	require.NoError(t, err)
	assert.True(t, active)

	// Other users are untouched
	active, err = l.IsActive("tok-other")
	require.NoError(t, err)
	assert.True(t, active)

	// Rotation flips rows, it never deletes them
	var count int64
	require.NoError(t, conn.Model(&model.Token{}).Count(&count).Error)
	assert.EqualValues(t, 3, count)
}

func TestLedgerRevokeAllForUser(t *testing.T) {
	l, _ := newTestLedger(t)

	require.NoError(t, l.Record("tok-1", "user-1"))
	require.NoError(t, l.Record("tok-2", "user-1"))

	require.NoError(t, l.RevokeAllForUser("user-1"))

	for _, tok := range []string{"tok-1", "tok-2"} {
		active, err := l.IsActive(tok)
		require.NoError(t, err)
		assert.False(t, active, tok)
	}
}

func TestLedgerSweep(t *testing.T) {
	l, conn := newTestLedger(t)

	require.NoError(t, l.Record("tok-old", "user-1"))
	require.NoError(t, l.Record("tok-new", "user-1"))

	stale := time.Now().Add(-2 * time.Hour)
	require.NoError(t, conn.Model(&model.Token{}).
		Where("token = ?", "tok-old").
		Update("created_at", stale).Error)

	require.NoError(t, l.Sweep(time.Hour))

	row, err := l.Find("tok-old")
	require.NoError(t, err)
	assert.True(t, row.Expired)
	assert.False(t, row.Revoked, "sweep marks expiry, not revocation")

	row, err = l.Find("tok-new")
	require.NoError(t, err)
	assert.False(t, row.Expired)
}
