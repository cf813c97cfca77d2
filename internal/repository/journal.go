package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/halcyon-app/halcyon/backend/internal/models"
	"github.com/halcyon-app/halcyon/backend/pkg/supabase"
)

type journalRepository struct {
	client *supabase.Client
}

// NewJournalRepository creates a new journal repository
func NewJournalRepository(client *supabase.Client) JournalRepository {
	return &journalRepository{client: client}
}

func (r *journalRepository) Create(ctx context.Context, entry *models.JournalEntry) (*models.JournalEntry, error) {
	data := map[string]interface{}{
		"user_id":         entry.UserID,
		"title":           entry.Title,
		"content":         entry.Content,
		"sentiment_score": entry.SentimentScore,
	}

	// mood_tags column has a NOT NULL constraint - use an empty array
	if entry.MoodTags != nil {
		data["mood_tags"] = entry.MoodTags
	} else {
		data["mood_tags"] = []string{}
	}

	body, err := r.client.InsertWithToken("journal_entries", data, userTokenFromContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to create journal entry: %w", err)
	}

	var entries []models.JournalEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if len(entries) == 0 {
		return nil, fmt.Errorf("no journal entry returned")
	}

	return &entries[0], nil
}

func (r *journalRepository) GetByID(ctx context.Context, userID, id string) (*models.JournalEntry, error) {
	query := map[string]interface{}{
		"id":      fmt.Sprintf("eq.%s", id),
		"user_id": fmt.Sprintf("eq.%s", userID),
		"select":  "*",
	}

	body, err := r.client.QueryWithToken("journal_entries", query, userTokenFromContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to get journal entry: %w", err)
	}

	var entries []models.JournalEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if len(entries) == 0 {
		return nil, nil
	}

	return &entries[0], nil
}

func (r *journalRepository) GetByUserID(ctx context.Context, userID string, limit, offset int) ([]models.JournalEntry, error) {
	query := map[string]interface{}{
		"user_id": fmt.Sprintf("eq.%s", userID),
		"select":  "*",
		"order":   "created_at.desc",
	}

	if limit > 0 {
		query["limit"] = limit
	}
	if offset > 0 {
		query["offset"] = offset
	}

	body, err := r.client.QueryWithToken("journal_entries", query, userTokenFromContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to get journal entries: %w", err)
	}

	var entries []models.JournalEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return entries, nil
}

func (r *journalRepository) Update(ctx context.Context, id string, entry *models.JournalEntry) (*models.JournalEntry, error) {
	data := map[string]interface{}{
		"title":           entry.Title,
		"content":         entry.Content,
		"sentiment_score": entry.SentimentScore,
		"mood_tags":       entry.MoodTags,
		"updated_at":      entry.UpdatedAt,
	}

	body, err := r.client.UpdateWithToken("journal_entries", id, data, userTokenFromContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to update journal entry: %w", err)
	}

	var entries []models.JournalEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if len(entries) == 0 {
		return nil, fmt.Errorf("no journal entry returned")
	}

	return &entries[0], nil
}

func (r *journalRepository) Delete(ctx context.Context, userID, id string) error {
	query := map[string]interface{}{
		"id":      fmt.Sprintf("eq.%s", id),
		"user_id": fmt.Sprintf("eq.%s", userID),
	}

	if err := r.client.DeleteWhereWithToken("journal_entries", query, userTokenFromContext(ctx)); err != nil {
		return fmt.Errorf("failed to delete journal entry: %w", err)
	}

	return nil
}
