package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/halcyon-app/halcyon/backend/internal/models"
	"github.com/halcyon-app/halcyon/backend/pkg/supabase"
)

type chatRepository struct {
	client *supabase.Client
}

// NewChatRepository creates a new chat repository
func NewChatRepository(client *supabase.Client) ChatRepository {
	return &chatRepository{client: client}
}

func (r *chatRepository) CreateSession(ctx context.Context, session *models.ChatSession) (*models.ChatSession, error) {
	data := map[string]interface{}{
		"user_id": session.UserID,
		"title":   session.Title,
	}

	body, err := r.client.InsertWithToken("chat_sessions", data, userTokenFromContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to create chat session: %w", err)
	}

	var sessions []models.ChatSession
	if err := json.Unmarshal(body, &sessions); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if len(sessions) == 0 {
		return nil, fmt.Errorf("no chat session returned")
	}

	return &sessions[0], nil
}

func (r *chatRepository) GetSessionByID(ctx context.Context, userID, sessionID string) (*models.ChatSession, error) {
	query := map[string]interface{}{
		"id":      fmt.Sprintf("eq.%s", sessionID),
		"user_id": fmt.Sprintf("eq.%s", userID),
		"select":  "*",
	}

	body, err := r.client.QueryWithToken("chat_sessions", query, userTokenFromContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to get chat session: %w", err)
	}

	var sessions []models.ChatSession
	if err := json.Unmarshal(body, &sessions); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if len(sessions) == 0 {
		return nil, nil
	}

	return &sessions[0], nil
}

func (r *chatRepository) GetSessionsByUserID(ctx context.Context, userID string) ([]models.ChatSession, error) {
	query := map[string]interface{}{
		"user_id": fmt.Sprintf("eq.%s", userID),
		"select":  "*",
		"order":   "updated_at.desc",
	}

	body, err := r.client.QueryWithToken("chat_sessions", query, userTokenFromContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to get chat sessions: %w", err)
	}

	var sessions []models.ChatSession
	if err := json.Unmarshal(body, &sessions); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return sessions, nil
}

func (r *chatRepository) CreateMessage(ctx context.Context, message *models.ChatMessage) (*models.ChatMessage, error) {
	data := map[string]interface{}{
		"session_id": message.SessionID,
		"content":    message.Content,
		"is_user":    message.IsUser,
		"sentiment":  string(message.Sentiment),
	}

	body, err := r.client.InsertWithToken("chat_messages", data, userTokenFromContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to create chat message: %w", err)
	}

	var messages []models.ChatMessage
	if err := json.Unmarshal(body, &messages); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if len(messages) == 0 {
		return nil, fmt.Errorf("no chat message returned")
	}

	return &messages[0], nil
}

// GetMessagesBySessionID returns messages oldest-first. A positive limit
// keeps only the most recent messages; PostgREST applies limit after
// ordering, so the query fetches newest-first and the slice is reversed
// back to chronological order locally.
func (r *chatRepository) GetMessagesBySessionID(ctx context.Context, sessionID string, limit int) ([]models.ChatMessage, error) {
	query := map[string]interface{}{
		"session_id": fmt.Sprintf("eq.%s", sessionID),
		"select":     "*",
		"order":      "created_at.asc",
	}

	if limit > 0 {
		query["order"] = "created_at.desc"
		query["limit"] = limit
	}

	body, err := r.client.QueryWithToken("chat_messages", query, userTokenFromContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to get chat messages: %w", err)
	}

	var messages []models.ChatMessage
	if err := json.Unmarshal(body, &messages); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if limit > 0 {
		for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
			messages[i], messages[j] = messages[j], messages[i]
		}
	}

	return messages, nil
}
