package service

import (
	"context"
	"fmt"
	"time"

	"github.com/halcyon-app/halcyon/backend/internal/models"
	"github.com/halcyon-app/halcyon/backend/internal/repository"
)

type nowFunc func() time.Time

func defaultNow() time.Time { return time.Now() }

type moodService struct {
	moodRepo repository.MoodEntryRepository
}

// NewMoodService creates a new mood service
func NewMoodService(moodRepo repository.MoodEntryRepository) MoodService {
	return &moodService{moodRepo: moodRepo}
}

func (s *moodService) CreateEntry(ctx context.Context, userID string, req *models.CreateMoodEntryRequest) (*models.MoodEntry, error) {
	// Client-generated IDs must be valid UUIDv7 (offline-first support)
	if req.ID != "" {
		if err := ValidateUUIDv7(req.ID); err != nil {
			return nil, fmt.Errorf("invalid entry id: %w", err)
		}
	}

	entry := &models.MoodEntry{
		ID:        req.ID,
		UserID:    userID,
		Emotion:   req.Emotion,
		Intensity: req.Intensity,
		Notes:     req.Notes,
		Factors:   req.Factors,
	}
	if req.CreatedAt != nil {
		entry.CreatedAt = *req.CreatedAt
	}

	created, err := s.moodRepo.Create(ctx, entry)
	if err != nil {
		return nil, fmt.Errorf("failed to create mood entry: %w", err)
	}

	return created, nil
}

func (s *moodService) GetUserEntries(ctx context.Context, userID string) ([]models.MoodEntry, error) {
	return s.moodRepo.GetByUserID(ctx, userID)
}

func (s *moodService) DeleteEntry(ctx context.Context, userID, entryID string) error {
	return s.moodRepo.Delete(ctx, userID, entryID)
}
