package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"real-estate-office/internal/models"
)

func newTestStore(t *testing.T) *GormStore {
	t.Helper()
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSchemaVersionAfterMigration(t *testing.T) {
	store := newTestStore(t)

	version, err := store.SchemaVersion()
	require.NoError(t, err)
	assert.Equal(t, latestSchemaVersion(), version)
}

func TestMigrationsAreIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reopen.db")

	store, err := NewSQLiteStore(path)
	require.NoError(t, err)
	require.NoError(t, store.SaveRecord(&models.Record{ID: "r1", Category: "House"}))
	require.NoError(t, store.Close())

	// Reopening an up-to-date database applies nothing and loses nothing
	store, err = NewSQLiteStore(path)
	require.NoError(t, err)
	defer store.Close()

	record, err := store.GetRecord("r1")
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, "House", record.Category)
}

func TestRecordCRUD(t *testing.T) {
	store := newTestStore(t)

	record := models.Record{
		ID:         "r1",
		Category:   "House",
		Name:       "Lakeside Villa",
		Price:      "75 Lakhs",
		Starred:    true,
		Attributes: models.AttributeBag{"rooms": "4"},
	}
	require.NoError(t, store.SaveRecord(&record))
	assert.NotZero(t, record.CreatedAt)

	got, err := store.GetRecord("r1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Lakeside Villa", got.Name)
	assert.Equal(t, "4", got.Attributes["rooms"])
	assert.True(t, got.Starred)

	// Save is a full overwrite
	record.Name = "Renamed Villa"
	record.Attributes = nil
	require.NoError(t, store.SaveRecord(&record))

	got, err = store.GetRecord("r1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Renamed Villa", got.Name)

	require.NoError(t, store.DeleteRecord("r1"))
	got, err = store.GetRecord("r1")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestGetRecordMissingIsNotAnError(t *testing.T) {
	store := newTestStore(t)

	got, err := store.GetRecord("nope")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestDeleteMissingRecordIsNoOp(t *testing.T) {
	store := newTestStore(t)
	assert.NoError(t, store.DeleteRecord("nope"))
}

func TestGetRecordsByCategory(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.SaveRecord(&models.Record{ID: "r1", Category: "House"}))
	require.NoError(t, store.SaveRecord(&models.Record{ID: "r2", Category: "Land"}))
	require.NoError(t, store.SaveRecord(&models.Record{ID: "r3", Category: "House"}))

	houses, err := store.GetRecordsByCategory("House")
	require.NoError(t, err)
	assert.Len(t, houses, 2)

	// Exact equality, not substring
	none, err := store.GetRecordsByCategory("Hou")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestAgentsOrderedNewestFirst(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.SaveAgent(&models.Agent{ID: "a1", Name: "First", Contact: "1", CreatedAt: 1000}))
	require.NoError(t, store.SaveAgent(&models.Agent{ID: "a2", Name: "Second", Contact: "2", CreatedAt: 3000}))
	require.NoError(t, store.SaveAgent(&models.Agent{ID: "a3", Name: "Third", Contact: "3", CreatedAt: 2000}))

	agents, err := store.GetAllAgents()
	require.NoError(t, err)
	require.Len(t, agents, 3)
	assert.Equal(t, "a2", agents[0].ID)
	assert.Equal(t, "a3", agents[1].ID)
	assert.Equal(t, "a1", agents[2].ID)
}

func TestDealsOrderedNewestFirst(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.SaveDeal(&models.Deal{ID: "d1", Status: models.DealStatusOpen, CreatedAt: 1000}))
	require.NoError(t, store.SaveDeal(&models.Deal{ID: "d2", Status: models.DealStatusClosed, CreatedAt: 2000}))

	deals, err := store.GetAllDeals()
	require.NoError(t, err)
	require.Len(t, deals, 2)
	assert.Equal(t, "d2", deals[0].ID)
	assert.Equal(t, "d1", deals[1].ID)
}

func TestAttachmentBlobRoundTrip(t *testing.T) {
	store := newTestStore(t)

	blob := []byte{0x25, 0x50, 0x44, 0x46, 0x00, 0xFF}
	require.NoError(t, store.SaveAttachment(&models.Attachment{
		ID:       "att1",
		FileName: "citizenship.pdf",
		Blob:     blob,
		RecordID: "a1",
	}))

	got, err := store.GetAttachment("att1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "citizenship.pdf", got.FileName)
	assert.Equal(t, blob, got.Blob)

	require.NoError(t, store.DeleteAttachment("att1"))
	got, err = store.GetAttachment("att1")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestAttachmentSurvivesOwnerDeletion(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.SaveRecord(&models.Record{ID: "r1", Category: "House"}))
	require.NoError(t, store.SaveAttachment(&models.Attachment{
		ID: "att1", FileName: "deed.pdf", Blob: []byte("x"), RecordID: "r1",
	}))

	require.NoError(t, store.DeleteRecord("r1"))

	got, err := store.GetAttachment("att1")
	require.NoError(t, err)
	assert.NotNil(t, got)
}

func TestReminderCRUD(t *testing.T) {
	store := newTestStore(t)

	reminder := models.Reminder{ID: "rem1", Note: "call Hari", Date: "2026-09-10", Time: "10:00"}
	require.NoError(t, store.SaveReminder(&reminder))

	got, err := store.GetReminder("rem1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.False(t, got.Dismissed)

	got.Dismissed = true
	require.NoError(t, store.SaveReminder(got))

	got, err = store.GetReminder("rem1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.Dismissed)

	require.NoError(t, store.DeleteReminder("rem1"))
	got, err = store.GetReminder("rem1")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestDismissedMatches(t *testing.T) {
	store := newTestStore(t)

	dismissed, err := store.IsMatchDismissed("b1-p1")
	require.NoError(t, err)
	assert.False(t, dismissed)

	require.NoError(t, store.DismissMatch("b1-p1"))
	// Dismissing twice is a no-op, not an error
	require.NoError(t, store.DismissMatch("b1-p1"))
	require.NoError(t, store.DismissMatch("b1-p2"))

	dismissed, err = store.IsMatchDismissed("b1-p1")
	require.NoError(t, err)
	assert.True(t, dismissed)

	ids, err := store.GetDismissedMatches()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"b1-p1", "b1-p2"}, ids)

	require.NoError(t, store.ClearDismissedMatches())

	ids, err = store.GetDismissedMatches()
	require.NoError(t, err)
	assert.Empty(t, ids)

	dismissed, err = store.IsMatchDismissed("b1-p1")
	require.NoError(t, err)
	assert.False(t, dismissed)
}
