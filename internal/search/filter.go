package search

import (
	"fmt"
	"strings"

	"real-estate-office/internal/models"

	"github.com/meilisearch/meilisearch-go"
)

type FilterParams struct {
	Query      string
	Categories []string
	Status     string
	Starred    *bool
	Limit      int64
}

// FilterSearch performs search with filters against the Meilisearch index
func (s *SearchClient) FilterSearch(params FilterParams) ([]models.Record, error) {
	var filters []string

	// Category filter
	if len(params.Categories) > 0 {
		categoryFilters := make([]string, len(params.Categories))
		for i, category := range params.Categories {
			categoryFilters[i] = fmt.Sprintf("category = '%s'", category)
		}
		filters = append(filters, fmt.Sprintf("(%s)", strings.Join(categoryFilters, " OR ")))
	}

	// Status filter
	if params.Status != "" {
		filters = append(filters, fmt.Sprintf("status = '%s'", params.Status))
	}

	// Starred filter
	if params.Starred != nil {
		filters = append(filters, fmt.Sprintf("starred = %v", *params.Starred))
	}

	// Combine filters
	var filterStr string
	if len(filters) > 0 {
		filterStr = strings.Join(filters, " AND ")
	}

	// Default limit
	if params.Limit == 0 {
		params.Limit = 20
	}

	// Perform search
	searchReq := &meilisearch.SearchRequest{
		Limit: params.Limit,
	}

	if filterStr != "" {
		searchReq.Filter = filterStr
	}

	searchRes, err := s.client.Index(s.index).Search(params.Query, searchReq)
	if err != nil {
		return nil, err
	}

	return recordsFromHits(searchRes.Hits), nil
}

// FilterRecords is the in-memory fallback used when no search engine is
// configured: a case-insensitive substring scan over the displayable
// fields. An empty query returns the input unchanged.
func FilterRecords(records []models.Record, query string) []models.Record {
	query = strings.TrimSpace(strings.ToLower(query))
	if query == "" {
		return records
	}

	var hits []models.Record
	for _, r := range records {
		fields := []string{
			r.Name,
			r.Contact,
			r.Address,
			r.Location,
			r.Category,
			r.CustomerCategory,
			r.Notes,
		}
		for _, f := range fields {
			if f != "" && strings.Contains(strings.ToLower(f), query) {
				hits = append(hits, r)
				break
			}
		}
	}
	return hits
}
