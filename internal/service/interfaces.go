package service

import (
	"context"

	"github.com/halcyon-app/halcyon/backend/internal/models"
)

// MoodService defines the interface for mood check-in business logic
type MoodService interface {
	CreateEntry(ctx context.Context, userID string, req *models.CreateMoodEntryRequest) (*models.MoodEntry, error)
	GetUserEntries(ctx context.Context, userID string) ([]models.MoodEntry, error)
	DeleteEntry(ctx context.Context, userID, entryID string) error
}

// JournalService defines the interface for journal business logic.
// Create and Update derive sentiment_score and mood_tags from content before
// persisting; the derived fields are never accepted from callers.
type JournalService interface {
	CreateEntry(ctx context.Context, userID string, req *models.CreateJournalEntryRequest) (*models.JournalEntry, error)
	GetEntry(ctx context.Context, userID, entryID string) (*models.JournalEntry, error)
	GetUserEntries(ctx context.Context, userID string, limit, offset int) ([]models.JournalEntry, error)
	UpdateEntry(ctx context.Context, userID, entryID string, req *models.UpdateJournalEntryRequest) (*models.JournalEntry, error)
	DeleteEntry(ctx context.Context, userID, entryID string) error
}

// VoiceService defines the interface for voice analysis business logic
type VoiceService interface {
	CreateAnalysis(ctx context.Context, userID string, req *models.CreateVoiceAnalysisRequest) (*models.VoiceAnalysis, error)
	GetUserAnalyses(ctx context.Context, userID string, limit, offset int) ([]models.VoiceAnalysis, error)
}

// ChatService defines the interface for chat business logic
type ChatService interface {
	CreateSession(ctx context.Context, userID string, req *models.CreateChatSessionRequest) (*models.ChatSession, error)
	GetUserSessions(ctx context.Context, userID string) ([]models.ChatSession, error)
	GetSessionMessages(ctx context.Context, userID, sessionID string) ([]models.ChatMessage, error)
	SendMessage(ctx context.Context, userID, sessionID string, req *models.SendMessageRequest) (*models.SendMessageResponse, error)
}

// AnalyticsService defines the interface for derived analytics
type AnalyticsService interface {
	GetSummary(ctx context.Context, userID string) (*models.AnalyticsSummary, error)
}

// AuthService defines the interface for authentication business logic
type AuthService interface {
	Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)
	Signup(ctx context.Context, req *models.SignupRequest) (*models.AuthResponse, error)
	GetUserByID(ctx context.Context, userID string) (*models.User, error)
}
