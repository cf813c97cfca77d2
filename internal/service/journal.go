package service

import (
	"context"
	"fmt"

	"github.com/halcyon-app/halcyon/backend/internal/analytics"
	"github.com/halcyon-app/halcyon/backend/internal/models"
	"github.com/halcyon-app/halcyon/backend/internal/repository"
)

type journalService struct {
	journalRepo repository.JournalRepository
	now         nowFunc
}

// NewJournalService creates a new journal service
func NewJournalService(journalRepo repository.JournalRepository) JournalService {
	return &journalService{
		journalRepo: journalRepo,
		now:         defaultNow,
	}
}

func (s *journalService) CreateEntry(ctx context.Context, userID string, req *models.CreateJournalEntryRequest) (*models.JournalEntry, error) {
	// Derived fields are computed once at the write boundary and stored with
	// the raw text, never recomputed lazily.
	entry := &models.JournalEntry{
		UserID:         userID,
		Title:          req.Title,
		Content:        req.Content,
		SentimentScore: analytics.SentimentScore(req.Content),
		MoodTags:       analytics.ExtractTags(req.Content),
	}

	created, err := s.journalRepo.Create(ctx, entry)
	if err != nil {
		return nil, fmt.Errorf("failed to create journal entry: %w", err)
	}

	return created, nil
}

func (s *journalService) GetEntry(ctx context.Context, userID, entryID string) (*models.JournalEntry, error) {
	return s.journalRepo.GetByID(ctx, userID, entryID)
}

func (s *journalService) GetUserEntries(ctx context.Context, userID string, limit, offset int) ([]models.JournalEntry, error) {
	return s.journalRepo.GetByUserID(ctx, userID, limit, offset)
}

func (s *journalService) UpdateEntry(ctx context.Context, userID, entryID string, req *models.UpdateJournalEntryRequest) (*models.JournalEntry, error) {
	existing, err := s.journalRepo.GetByID(ctx, userID, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to get journal entry: %w", err)
	}
	if existing == nil {
		return nil, nil
	}

	updated := *existing
	if req.Title != nil {
		updated.Title = *req.Title
	}
	if req.Content != nil {
		// Content changed: re-derive sentiment and tags from the new text
		updated.Content = *req.Content
		updated.SentimentScore = analytics.SentimentScore(*req.Content)
		updated.MoodTags = analytics.ExtractTags(*req.Content)
	}
	updated.UpdatedAt = s.now()

	result, err := s.journalRepo.Update(ctx, entryID, &updated)
	if err != nil {
		return nil, fmt.Errorf("failed to update journal entry: %w", err)
	}

	return result, nil
}

func (s *journalService) DeleteEntry(ctx context.Context, userID, entryID string) error {
	return s.journalRepo.Delete(ctx, userID, entryID)
}
