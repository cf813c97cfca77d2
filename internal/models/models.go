package models

import "time"

// User represents a user in the system
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Sentiment represents the three-way lexical sentiment label
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNeutral  Sentiment = "neutral"
	SentimentNegative Sentiment = "negative"
)

// MoodEntry represents a structured mood check-in.
// Intensity is always in [1,10]; CreatedAt is the authoritative ordering key.
type MoodEntry struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Emotion   string    `json:"emotion"`
	Intensity int       `json:"intensity"`
	Notes     *string   `json:"notes,omitempty"`
	Factors   []string  `json:"factors,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// JournalEntry represents a free-text journal entry.
// SentimentScore and MoodTags are derived from Content at write time by the
// analytics engine; they are never user-supplied.
type JournalEntry struct {
	ID             string    `json:"id"`
	UserID         string    `json:"user_id"`
	Title          string    `json:"title"`
	Content        string    `json:"content"`
	SentimentScore int       `json:"sentiment_score"`
	MoodTags       []string  `json:"mood_tags"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// VoiceAnalysis represents a voice-derived mood reading produced by an
// external analysis process. DetectedMood and Confidence are opaque inputs.
type VoiceAnalysis struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	DetectedMood string    `json:"detected_mood"`
	Confidence   int       `json:"confidence"`
	Insights     []string  `json:"insights"`
	Duration     int       `json:"duration"`
	CreatedAt    time.Time `json:"created_at"`
}

// ChatSession represents a conversation between a user and the assistant
type ChatSession struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ChatMessage represents a single turn in a chat session.
// Sentiment is derived for user-authored messages; assistant messages carry
// a fixed neutral label assigned by the chat service.
type ChatMessage struct {
	ID        string    `json:"id"`
	SessionID string    `json:"session_id"`
	Content   string    `json:"content"`
	IsUser    bool      `json:"is_user"`
	Sentiment Sentiment `json:"sentiment"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateMoodEntryRequest represents the request to log a mood check-in
type CreateMoodEntryRequest struct {
	ID        string     `json:"id"` // optional client-generated UUIDv7
	Emotion   string     `json:"emotion" binding:"required"`
	Intensity int        `json:"intensity" binding:"required,min=1,max=10"`
	Notes     *string    `json:"notes"`
	Factors   []string   `json:"factors"`
	CreatedAt *time.Time `json:"created_at"`
}

// CreateJournalEntryRequest represents the request to save a journal entry
type CreateJournalEntryRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
}

// UpdateJournalEntryRequest represents the request to edit a journal entry
type UpdateJournalEntryRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

// CreateVoiceAnalysisRequest represents the payload recorded when a voice
// session stops. The mood fields come from the client-side analyzer.
type CreateVoiceAnalysisRequest struct {
	DetectedMood string   `json:"detected_mood" binding:"required"`
	Confidence   int      `json:"confidence" binding:"min=0,max=100"`
	Insights     []string `json:"insights"`
	Duration     int      `json:"duration" binding:"min=0"`
}

// CreateChatSessionRequest represents the request to start a chat session
type CreateChatSessionRequest struct {
	Title string `json:"title"`
}

// SendMessageRequest represents a user chat turn
type SendMessageRequest struct {
	Content string `json:"content" binding:"required"`
}

// SendMessageResponse pairs the persisted user message with the assistant reply
type SendMessageResponse struct {
	UserMessage      ChatMessage `json:"user_message"`
	AssistantMessage ChatMessage `json:"assistant_message"`
}

// LoginRequest represents the login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// SignupRequest represents the signup request
type SignupRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// AuthResponse represents the authentication response
type AuthResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	User         User   `json:"user"`
}

// AnalyticsSummary is the transient aggregate exposed to presentation code.
// It is recomputed on demand and never persisted.
type AnalyticsSummary struct {
	AverageMood      float64 `json:"average_mood"`
	MoodStreak       int     `json:"mood_streak"`
	MoodTrend        string  `json:"mood_trend"`
	TotalEntries     int     `json:"total_entries"`
	AverageSentiment float64 `json:"average_sentiment"`
}
