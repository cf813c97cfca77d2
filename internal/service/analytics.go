package service

import (
	"context"
	"fmt"
	"time"

	"github.com/halcyon-app/halcyon/backend/internal/analytics"
	"github.com/halcyon-app/halcyon/backend/internal/models"
	"github.com/halcyon-app/halcyon/backend/internal/repository"
	"golang.org/x/sync/errgroup"
)

// DefaultTrendWindowDays is the mood window feeding the trend computation
const DefaultTrendWindowDays = 30

type analyticsService struct {
	moodRepo    repository.MoodEntryRepository
	journalRepo repository.JournalRepository
	windowDays  int
	now         func() time.Time
}

// NewAnalyticsService creates a new analytics service. windowDays <= 0 falls
// back to DefaultTrendWindowDays.
func NewAnalyticsService(moodRepo repository.MoodEntryRepository, journalRepo repository.JournalRepository, windowDays int) AnalyticsService {
	if windowDays <= 0 {
		windowDays = DefaultTrendWindowDays
	}
	return &analyticsService{
		moodRepo:    moodRepo,
		journalRepo: journalRepo,
		windowDays:  windowDays,
		now:         time.Now,
	}
}

// GetSummary recomputes the analytics summary from scratch. The three reads
// are independent and run concurrently; they are not a consistent snapshot,
// so a write landing between them may mix pre- and post-write state.
func (s *analyticsService) GetSummary(ctx context.Context, userID string) (*models.AnalyticsSummary, error) {
	var (
		moods       []models.MoodEntry
		windowMoods []models.MoodEntry
		journals    []models.JournalEntry
	)

	since := s.now().AddDate(0, 0, -s.windowDays)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		moods, err = s.moodRepo.GetByUserID(gctx, userID)
		if err != nil {
			return fmt.Errorf("failed to get mood entries: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		windowMoods, err = s.moodRepo.GetByUserIDSince(gctx, userID, since)
		if err != nil {
			return fmt.Errorf("failed to get windowed mood entries: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		journals, err = s.journalRepo.GetByUserID(gctx, userID, 0, 0)
		if err != nil {
			return fmt.Errorf("failed to get journal entries: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	intensities := make([]float64, 0, len(moods))
	for _, m := range moods {
		intensities = append(intensities, float64(m.Intensity))
	}

	trendValues := make([]float64, 0, len(windowMoods))
	for _, m := range windowMoods {
		if m.CreatedAt.IsZero() {
			continue
		}
		trendValues = append(trendValues, float64(m.Intensity))
	}

	sentiments := make([]float64, 0, len(journals))
	for _, j := range journals {
		sentiments = append(sentiments, float64(j.SentimentScore))
	}

	return &models.AnalyticsSummary{
		AverageMood:      analytics.Average(intensities),
		MoodStreak:       analytics.CurrentStreak(dedupeByDay(moods), s.now()),
		MoodTrend:        string(analytics.Trend(trendValues)),
		TotalEntries:     len(journals),
		AverageSentiment: analytics.Average(sentiments),
	}, nil
}

// dedupeByDay reduces most-recent-first mood entries to one timestamp per
// calendar day, dropping entries without a usable created_at. The streak
// calculator assumes at most one entry per day, so this runs first.
func dedupeByDay(entries []models.MoodEntry) []time.Time {
	seen := make(map[time.Time]bool, len(entries))
	days := make([]time.Time, 0, len(entries))
	for _, e := range entries {
		if e.CreatedAt.IsZero() {
			continue
		}
		day := analytics.DayStart(e.CreatedAt)
		if seen[day] {
			continue
		}
		seen[day] = true
		days = append(days, e.CreatedAt)
	}
	return days
}
