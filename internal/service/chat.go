package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/halcyon-app/halcyon/backend/internal/analytics"
	"github.com/halcyon-app/halcyon/backend/internal/llm"
	"github.com/halcyon-app/halcyon/backend/internal/logger"
	"github.com/halcyon-app/halcyon/backend/internal/models"
	"github.com/halcyon-app/halcyon/backend/internal/repository"
)

// ErrSessionNotFound indicates the chat session does not exist or belongs to
// another user
var ErrSessionNotFound = errors.New("chat session not found")

// historyLimit bounds how many prior messages are sent to the reply generator
const historyLimit = 20

type chatService struct {
	chatRepo  repository.ChatRepository
	llmClient llm.Client
}

// NewChatService creates a new chat service
func NewChatService(chatRepo repository.ChatRepository, llmClient llm.Client) ChatService {
	return &chatService{
		chatRepo:  chatRepo,
		llmClient: llmClient,
	}
}

func (s *chatService) CreateSession(ctx context.Context, userID string, req *models.CreateChatSessionRequest) (*models.ChatSession, error) {
	title := req.Title
	if title == "" {
		title = "New conversation"
	}

	session, err := s.chatRepo.CreateSession(ctx, &models.ChatSession{
		UserID: userID,
		Title:  title,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create chat session: %w", err)
	}

	return session, nil
}

func (s *chatService) GetUserSessions(ctx context.Context, userID string) ([]models.ChatSession, error) {
	return s.chatRepo.GetSessionsByUserID(ctx, userID)
}

func (s *chatService) GetSessionMessages(ctx context.Context, userID, sessionID string) ([]models.ChatMessage, error) {
	session, err := s.chatRepo.GetSessionByID(ctx, userID, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get chat session: %w", err)
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}

	return s.chatRepo.GetMessagesBySessionID(ctx, sessionID, 0)
}

// SendMessage classifies and persists the user turn, generates the assistant
// reply, and persists it with the fixed neutral label. Sentiment is derived
// only for user-authored messages.
func (s *chatService) SendMessage(ctx context.Context, userID, sessionID string, req *models.SendMessageRequest) (*models.SendMessageResponse, error) {
	session, err := s.chatRepo.GetSessionByID(ctx, userID, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get chat session: %w", err)
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}

	history, err := s.chatRepo.GetMessagesBySessionID(ctx, sessionID, historyLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to get chat history: %w", err)
	}

	label, _ := analytics.Classify(req.Content)
	userMessage, err := s.chatRepo.CreateMessage(ctx, &models.ChatMessage{
		SessionID: sessionID,
		Content:   req.Content,
		IsUser:    true,
		Sentiment: models.Sentiment(label),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save user message: %w", err)
	}

	turns := make([]llm.Turn, 0, len(history))
	for _, m := range history {
		turns = append(turns, llm.Turn{Text: m.Content, IsUser: m.IsUser})
	}

	reply, err := s.llmClient.GenerateReply(ctx, req.Content, turns)
	if err != nil {
		return nil, fmt.Errorf("failed to generate reply: %w", err)
	}

	assistantMessage, err := s.chatRepo.CreateMessage(ctx, &models.ChatMessage{
		SessionID: sessionID,
		Content:   reply,
		IsUser:    false,
		Sentiment: models.SentimentNeutral,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save assistant message: %w", err)
	}

	logger.Ctx(ctx).Debug("chat turn completed",
		logger.String("session_id", sessionID),
		logger.String("user_sentiment", string(label)),
	)

	return &models.SendMessageResponse{
		UserMessage:      *userMessage,
		AssistantMessage: *assistantMessage,
	}, nil
}
