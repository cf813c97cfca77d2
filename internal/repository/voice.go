package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/halcyon-app/halcyon/backend/internal/models"
	"github.com/halcyon-app/halcyon/backend/pkg/supabase"
)

type voiceAnalysisRepository struct {
	client *supabase.Client
}

// NewVoiceAnalysisRepository creates a new voice analysis repository
func NewVoiceAnalysisRepository(client *supabase.Client) VoiceAnalysisRepository {
	return &voiceAnalysisRepository{client: client}
}

func (r *voiceAnalysisRepository) Create(ctx context.Context, analysis *models.VoiceAnalysis) (*models.VoiceAnalysis, error) {
	data := map[string]interface{}{
		"user_id":       analysis.UserID,
		"detected_mood": analysis.DetectedMood,
		"confidence":    analysis.Confidence,
		"duration":      analysis.Duration,
	}

	if analysis.Insights != nil {
		data["insights"] = analysis.Insights
	} else {
		data["insights"] = []string{}
	}

	body, err := r.client.InsertWithToken("voice_analyses", data, userTokenFromContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to create voice analysis: %w", err)
	}

	var analyses []models.VoiceAnalysis
	if err := json.Unmarshal(body, &analyses); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if len(analyses) == 0 {
		return nil, fmt.Errorf("no voice analysis returned")
	}

	return &analyses[0], nil
}

func (r *voiceAnalysisRepository) GetByUserID(ctx context.Context, userID string, limit, offset int) ([]models.VoiceAnalysis, error) {
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

	body, err := r.client.QueryWithToken("voice_analyses", query, userTokenFromContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to get voice analyses: %w", err)
	}

	var analyses []models.VoiceAnalysis
	if err := json.Unmarshal(body, &analyses); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return analyses, nil
}
