package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"real-estate-office/internal/models"
)

func TestFilterRecords(t *testing.T) {
	records := []models.Record{
		{ID: "r1", Category: "House", Name: "Lakeside Villa", Address: "Pokhara"},
		{ID: "r2", Category: "Customer", Name: "Hari Sharma", Contact: "9841000000"},
		{ID: "r3", Category: "Land", Location: "Baneshwor", Notes: "near the lake"},
	}

	tests := []struct {
		name    string
		query   string
		wantIDs []string
	}{
		{name: "empty query returns everything", query: "", wantIDs: []string{"r1", "r2", "r3"}},
		{name: "name match", query: "villa", wantIDs: []string{"r1"}},
		{name: "contact match", query: "9841", wantIDs: []string{"r2"}},
		{name: "location match", query: "baneshwor", wantIDs: []string{"r3"}},
		{name: "notes match", query: "lake", wantIDs: []string{"r1", "r3"}},
		{name: "category match", query: "customer", wantIDs: []string{"r2"}},
		{name: "case insensitive", query: "POKHARA", wantIDs: []string{"r1"}},
		{name: "whitespace trimmed", query: "  villa  ", wantIDs: []string{"r1"}},
		{name: "no hit", query: "warehouse", wantIDs: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hits := FilterRecords(records, tt.query)
			var ids []string
			for _, h := range hits {
				ids = append(ids, h.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestFilterRecordsMatchesEachRecordOnce(t *testing.T) {
	// A query hitting several fields of the same record must not
	// duplicate it.
	records := []models.Record{
		{ID: "r1", Name: "Lakeside", Address: "Lakeside Road", Notes: "lakeside corner"},
	}

	hits := FilterRecords(records, "lakeside")
	require.Len(t, hits, 1)
	assert.Equal(t, "r1", hits[0].ID)
}
