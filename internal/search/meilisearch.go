package search

import (
	"encoding/json"

	"real-estate-office/internal/models"

	"github.com/meilisearch/meilisearch-go"
)

type SearchClient struct {
	client *meilisearch.Client
	index  string
}

func NewSearchClient(host, apiKey string) *SearchClient {
	client := meilisearch.NewClient(meilisearch.ClientConfig{
		Host:   host,
		APIKey: apiKey,
	})

	return &SearchClient{
		client: client,
		index:  "records",
	}
}

// InitIndex initializes the Meilisearch index
func (s *SearchClient) InitIndex() error {
	// Create index if it doesn't exist
	_, err := s.client.CreateIndex(&meilisearch.IndexConfig{
		Uid:        s.index,
		PrimaryKey: "id",
	})
	// Ignore error if index already exists
	if err != nil && err.Error() != "index already exists" {
		return err
	}

	// Configure searchable attributes
	_, err = s.client.Index(s.index).UpdateSearchableAttributes(&[]string{
		"name",
		"contact",
		"address",
		"location",
		"category",
		"customerCategory",
		"notes",
	})
	if err != nil {
		return err
	}

	// Configure filterable attributes
	_, err = s.client.Index(s.index).UpdateFilterableAttributes(&[]string{
		"id",
		"category",
		"customerCategory",
		"status",
		"starred",
	})
	if err != nil {
		return err
	}

	// Configure sortable attributes
	_, err = s.client.Index(s.index).UpdateSortableAttributes(&[]string{
		"createdAt",
	})
	if err != nil {
		return err
	}

	return nil
}

// IndexRecord indexes a single record
func (s *SearchClient) IndexRecord(record *models.Record) error {
	_, err := s.client.Index(s.index).AddDocuments([]models.Record{*record})
	return err
}

// IndexRecords indexes multiple records
func (s *SearchClient) IndexRecords(records []models.Record) error {
	if len(records) == 0 {
		return nil
	}
	_, err := s.client.Index(s.index).AddDocuments(records)
	return err
}

// RemoveRecord drops a record from the index
func (s *SearchClient) RemoveRecord(id string) error {
	_, err := s.client.Index(s.index).DeleteDocument(id)
	return err
}

// Search searches for records with basic options
func (s *SearchClient) Search(query string, limit int64) ([]models.Record, error) {
	if limit == 0 {
		limit = 20
	}

	searchRes, err := s.client.Index(s.index).Search(query, &meilisearch.SearchRequest{
		Limit: limit,
	})
	if err != nil {
		return nil, err
	}

	return recordsFromHits(searchRes.Hits), nil
}

// recordsFromHits converts search hits back into records via JSON
func recordsFromHits(hits []interface{}) []models.Record {
	var records []models.Record
	for _, hit := range hits {
		hitJSON, err := json.Marshal(hit)
		if err != nil {
			continue
		}

		var record models.Record
		if err := json.Unmarshal(hitJSON, &record); err != nil {
			continue
		}

		records = append(records, record)
	}
	return records
}
