package gratitude

import (
	"testing"

	"github.com/google/uuid"
	"github.com/moodsync/moodsync-backend/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&Entry{}))
	return db
}

func TestAddAndList(t *testing.T) {
	svc := NewService(testDB(t), nil)
	userID := uuid.New()

	entry, err := svc.Add(userID, AddRequest{Content: "morning coffee with a friend", Date: "2026-08-30T09:00:00Z"})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, entry.ID)
	assert.Equal(t, "morning coffee with a friend", entry.Content)
	assert.Equal(t, "2026-08-30T09:00:00Z", entry.Date)

	entries, err := svc.List(userID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, entry.ID, entries[0].ID)
}

func TestAddRejectsEmptyContent(t *testing.T) {
	db := testDB(t)
	svc := NewService(db, nil)

	_, err := svc.Add(uuid.New(), AddRequest{Content: "   "})
	assert.ErrorIs(t, err, ErrEmptyContent)

	var count int64
	require.NoError(t, db.Model(&Entry{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestAddDefaultsDate(t *testing.T) {
	svc := NewService(testDB(t), nil)

	entry, err := svc.Add(uuid.New(), AddRequest{Content: "a quiet evening"})
	require.NoError(t, err)
	assert.NotEmpty(t, entry.Date)
}

func TestAddFiltersProhibitedContent(t *testing.T) {
	svc := NewService(testDB(t), services.NewModerationService())

	entry, err := svc.Add(uuid.New(), AddRequest{Content: "check out https://spam.example.com"})
	require.NoError(t, err)
	assert.Equal(t, services.FilteredPlaceholder, entry.Content)
}

func TestDelete(t *testing.T) {
	svc := NewService(testDB(t), nil)
	userID := uuid.New()

	entry, err := svc.Add(userID, AddRequest{Content: "sunshine"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(userID, entry.ID))

	entries, err := svc.List(userID)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestDeleteTwiceReturnsNotFound(t *testing.T) {
	svc := NewService(testDB(t), nil)
	userID := uuid.New()

	entry, err := svc.Add(userID, AddRequest{Content: "sunshine"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(userID, entry.ID))
	assert.ErrorIs(t, svc.Delete(userID, entry.ID), ErrEntryNotFound)
}

func TestDeleteScopedByOwner(t *testing.T) {
	svc := NewService(testDB(t), nil)
	alice := uuid.New()
	bob := uuid.New()

	entry, err := svc.Add(alice, AddRequest{Content: "sunshine"})
	require.NoError(t, err)

	// Bob cannot delete Alice's entry.
	assert.ErrorIs(t, svc.Delete(bob, entry.ID), ErrEntryNotFound)

	entries, err := svc.List(alice)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
