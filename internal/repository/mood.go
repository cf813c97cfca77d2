package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/halcyon-app/halcyon/backend/internal/models"
	"github.com/halcyon-app/halcyon/backend/pkg/supabase"
)

type moodEntryRepository struct {
	client *supabase.Client
}

// NewMoodEntryRepository creates a new mood entry repository
func NewMoodEntryRepository(client *supabase.Client) MoodEntryRepository {
	return &moodEntryRepository{client: client}
}

func (r *moodEntryRepository) Create(ctx context.Context, entry *models.MoodEntry) (*models.MoodEntry, error) {
	data := map[string]interface{}{
		"user_id":   entry.UserID,
		"emotion":   entry.Emotion,
		"intensity": entry.Intensity,
	}

	// Use client-provided ID if present (for offline-first/UUIDv7 support)
	if entry.ID != "" {
		data["id"] = entry.ID
	}
	if !entry.CreatedAt.IsZero() {
		data["created_at"] = entry.CreatedAt
	}
	if entry.Notes != nil {
		data["notes"] = *entry.Notes
	}
	if len(entry.Factors) > 0 {
		data["factors"] = entry.Factors
	}

	body, err := r.client.InsertWithToken("mood_entries", data, userTokenFromContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to create mood entry: %w", err)
	}

	var entries []models.MoodEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if len(entries) == 0 {
		return nil, fmt.Errorf("no mood entry returned")
	}

	return &entries[0], nil
}

func (r *moodEntryRepository) GetByUserID(ctx context.Context, userID string) ([]models.MoodEntry, error) {
	query := map[string]interface{}{
		"user_id": fmt.Sprintf("eq.%s", userID),
		"select":  "*",
		"order":   "created_at.desc",
	}

	body, err := r.client.QueryWithToken("mood_entries", query, userTokenFromContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to get mood entries: %w", err)
	}

	var entries []models.MoodEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return entries, nil
}

func (r *moodEntryRepository) GetByUserIDSince(ctx context.Context, userID string, since time.Time) ([]models.MoodEntry, error) {
	query := map[string]interface{}{
		"user_id":    fmt.Sprintf("eq.%s", userID),
		"created_at": fmt.Sprintf("gte.%s", since.Format(time.RFC3339)),
		"select":     "*",
		"order":      "created_at.desc",
	}

	body, err := r.client.QueryWithToken("mood_entries", query, userTokenFromContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to get mood entries since %s: %w", since.Format(time.RFC3339), err)
	}

	var entries []models.MoodEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return entries, nil
}

func (r *moodEntryRepository) Delete(ctx context.Context, userID, id string) error {
	query := map[string]interface{}{
		"id":      fmt.Sprintf("eq.%s", id),
		"user_id": fmt.Sprintf("eq.%s", userID),
	}

	if err := r.client.DeleteWhereWithToken("mood_entries", query, userTokenFromContext(ctx)); err != nil {
		return fmt.Errorf("failed to delete mood entry: %w", err)
	}

	return nil
}
