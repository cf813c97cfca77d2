package repository

import (
	"context"
	"time"

	"github.com/halcyon-app/halcyon/backend/internal/models"
)

// MoodEntryRepository defines the interface for mood check-in data access.
// List reads return entries ordered most-recent-first by created_at.
type MoodEntryRepository interface {
	Create(ctx context.Context, entry *models.MoodEntry) (*models.MoodEntry, error)
	GetByUserID(ctx context.Context, userID string) ([]models.MoodEntry, error)
	GetByUserIDSince(ctx context.Context, userID string, since time.Time) ([]models.MoodEntry, error)
	Delete(ctx context.Context, userID, id string) error
}

// JournalRepository defines the interface for journal entry data access
type JournalRepository interface {
	Create(ctx context.Context, entry *models.JournalEntry) (*models.JournalEntry, error)
	GetByID(ctx context.Context, userID, id string) (*models.JournalEntry, error)
	GetByUserID(ctx context.Context, userID string, limit, offset int) ([]models.JournalEntry, error)
	Update(ctx context.Context, id string, entry *models.JournalEntry) (*models.JournalEntry, error)
	Delete(ctx context.Context, userID, id string) error
}

// VoiceAnalysisRepository defines the interface for voice analysis data access
type VoiceAnalysisRepository interface {
	Create(ctx context.Context, analysis *models.VoiceAnalysis) (*models.VoiceAnalysis, error)
	GetByUserID(ctx context.Context, userID string, limit, offset int) ([]models.VoiceAnalysis, error)
}

// ChatRepository defines the interface for chat session and message data access
type ChatRepository interface {
	CreateSession(ctx context.Context, session *models.ChatSession) (*models.ChatSession, error)
	GetSessionByID(ctx context.Context, userID, sessionID string) (*models.ChatSession, error)
	GetSessionsByUserID(ctx context.Context, userID string) ([]models.ChatSession, error)
	CreateMessage(ctx context.Context, message *models.ChatMessage) (*models.ChatMessage, error)
	GetMessagesBySessionID(ctx context.Context, sessionID string, limit int) ([]models.ChatMessage, error)
}

// UserRepository defines the interface for user data access
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*models.User, error)
	Create(ctx context.Context, user *models.User) (*models.User, error)
}
