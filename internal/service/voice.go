package service

import (
	"context"
	"fmt"

	"github.com/halcyon-app/halcyon/backend/internal/models"
	"github.com/halcyon-app/halcyon/backend/internal/repository"
)

type voiceService struct {
	voiceRepo repository.VoiceAnalysisRepository
}

// NewVoiceService creates a new voice service
func NewVoiceService(voiceRepo repository.VoiceAnalysisRepository) VoiceService {
	return &voiceService{voiceRepo: voiceRepo}
}

// CreateAnalysis persists a voice-derived mood reading. The detected mood and
// confidence come from the external analysis process and are stored as-is.
func (s *voiceService) CreateAnalysis(ctx context.Context, userID string, req *models.CreateVoiceAnalysisRequest) (*models.VoiceAnalysis, error) {
	analysis := &models.VoiceAnalysis{
		UserID:       userID,
		DetectedMood: req.DetectedMood,
		Confidence:   req.Confidence,
		Insights:     req.Insights,
		Duration:     req.Duration,
	}

	created, err := s.voiceRepo.Create(ctx, analysis)
	if err != nil {
		return nil, fmt.Errorf("failed to create voice analysis: %w", err)
	}

	return created, nil
}

func (s *voiceService) GetUserAnalyses(ctx context.Context, userID string, limit, offset int) ([]models.VoiceAnalysis, error) {
	return s.voiceRepo.GetByUserID(ctx, userID, limit, offset)
}
