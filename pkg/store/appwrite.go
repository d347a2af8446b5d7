package store

import (
	"context"
	"fmt"
	"time"

	"github.com/appwrite/sdk-for-go/appwrite"
	"github.com/appwrite/sdk-for-go/databases"
	"github.com/appwrite/sdk-for-go/id"

	"aipulse/internal/model"
)

// AppwriteStore creates one report document per pipeline run. Documents get a
// store-generated id; nothing is ever updated or deleted here.
type AppwriteStore struct {
	databases    *databases.Databases
	databaseID   string
	collectionID string
}

func NewAppwriteStore(endpoint, projectID, apiKey, databaseID, collectionID string) *AppwriteStore {
	client := appwrite.NewClient(
		appwrite.WithEndpoint(endpoint),
		appwrite.WithProject(projectID),
		appwrite.WithKey(apiKey),
	)
	return &AppwriteStore{
		databases:    appwrite.NewDatabases(client),
		databaseID:   databaseID,
		collectionID: collectionID,
	}
}

func (s *AppwriteStore) CreateReport(ctx context.Context, record model.ReportRecord) (string, error) {
	doc, err := s.databases.CreateDocument(
		s.databaseID,
		s.collectionID,
		id.Unique(),
		map[string]interface{}{
			"topic":        record.Topic,
			"raw_data":     record.RawData,
			"analysis":     record.Analysis,
			"final_report": record.FinalReport,
			"created_at":   record.CreatedAt.Format(time.RFC3339),
			"status":       record.Status,
		},
	)
	if err != nil {
		return "", fmt.Errorf("create document: %w", err)
	}

	return doc.Id, nil
}
