package exchange

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"real-estate-office/internal/database"
	"real-estate-office/internal/models"
)

func TestJSONRoundTrip(t *testing.T) {
	c := Collections{
		Records: []models.Record{
			{
				ID:         "r1",
				Category:   "House",
				Name:       "Lakeside Villa",
				Price:      "75 Lakhs",
				Starred:    true,
				Attributes: models.AttributeBag{"rooms": "4", "facing": "east"},
				CreatedAt:  1757000000000,
			},
		},
		Agents: []models.Agent{
			{ID: "a1", Name: "Sita", Contact: "9841111111", CreatedAt: 1757000000000},
		},
		Reminders: []models.Reminder{
			{ID: "rem1", Note: "call back", Date: "2026-09-10", Time: "14:00"},
		},
		Deals: []models.Deal{
			{ID: "d1", PropertyID: "r1", BuyerID: "b1", Status: models.DealStatusClosed},
		},
	}

	data, err := ExportJSON(c)
	require.NoError(t, err)

	// The envelope records when the export happened
	var envelope map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &envelope))
	assert.Contains(t, envelope, "exportedAt")

	got, err := ImportJSON(data)
	require.NoError(t, err)
	assert.Equal(t, c, got)
}

func TestJSONRoundTripPreservesAttributes(t *testing.T) {
	c := Collections{
		Records: []models.Record{
			{ID: "r1", Category: "Apartment", Attributes: models.AttributeBag{"floor": "3"}},
		},
	}

	data, err := ExportJSON(c)
	require.NoError(t, err)

	got, err := ImportJSON(data)
	require.NoError(t, err)
	require.Len(t, got.Records, 1)
	assert.Equal(t, "3", got.Records[0].Attributes["floor"])
}

func TestImportJSONMalformed(t *testing.T) {
	_, err := ImportJSON([]byte("{not json"))
	assert.Error(t, err)
}

func TestSaveAndLoadCollections(t *testing.T) {
	store, err := database.NewSQLiteStore(filepath.Join(t.TempDir(), "exchange-test.db"))
	require.NoError(t, err)
	defer store.Close()

	c := Collections{
		Records: []models.Record{
			{ID: "r1", Category: "House", Name: "First", CreatedAt: 2000},
			{ID: "r2", Category: "Customer", Name: "Second", CreatedAt: 1000},
		},
		Agents: []models.Agent{
			{ID: "a1", Name: "Sita", Contact: "9841111111", CreatedAt: 1000},
		},
		Reminders: []models.Reminder{
			{ID: "rem1", Note: "follow up", Date: "2026-09-05", CreatedAt: 1000},
		},
		Deals: []models.Deal{
			{ID: "d1", PropertyID: "r1", BuyerID: "r2", Status: models.DealStatusOpen, CreatedAt: 1000},
		},
	}

	result, err := SaveCollections(store, c)
	require.NoError(t, err)
	assert.Equal(t, ImportResult{Records: 2, Agents: 1, Reminders: 1, Deals: 1}, result)

	loaded, err := LoadCollections(store)
	require.NoError(t, err)
	assert.Len(t, loaded.Records, 2)
	assert.Len(t, loaded.Agents, 1)
	assert.Len(t, loaded.Reminders, 1)
	assert.Len(t, loaded.Deals, 1)

	// Re-import overwrites rather than duplicating
	result, err = SaveCollections(store, c)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Records)

	loaded, err = LoadCollections(store)
	require.NoError(t, err)
	assert.Len(t, loaded.Records, 2)
}
