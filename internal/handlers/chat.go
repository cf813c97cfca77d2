package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/halcyon-app/halcyon/backend/internal/apierror"
	"github.com/halcyon-app/halcyon/backend/internal/logger"
	"github.com/halcyon-app/halcyon/backend/internal/models"
	"github.com/halcyon-app/halcyon/backend/internal/service"
)

type ChatHandler struct {
	chatService service.ChatService
}

// NewChatHandler creates a new chat handler
func NewChatHandler(chatService service.ChatService) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
	}
}

// CreateSession handles POST /api/v1/chat/sessions
func (h *ChatHandler) CreateSession(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		apierror.WriteProblem(c, apierror.NewUnauthorizedError(apierror.GetRequestID(c)))
		return
	}

	var req models.CreateChatSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierror.WriteProblem(c, apierror.NewBadRequestError(
			apierror.GetRequestID(c), err.Error(), "Invalid chat session"))
		return
	}

	session, err := h.chatService.CreateSession(c.Request.Context(), userID.(string), &req)
	if err != nil {
		logger.Ctx(c.Request.Context()).Error("failed to create chat session", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(apierror.GetRequestID(c)))
		return
	}

	c.JSON(http.StatusCreated, session)
}

// GetSessions handles GET /api/v1/chat/sessions
func (h *ChatHandler) GetSessions(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		apierror.WriteProblem(c, apierror.NewUnauthorizedError(apierror.GetRequestID(c)))
		return
	}

	sessions, err := h.chatService.GetUserSessions(c.Request.Context(), userID.(string))
	if err != nil {
		logger.Ctx(c.Request.Context()).Error("failed to list chat sessions", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(apierror.GetRequestID(c)))
		return
	}

	c.JSON(http.StatusOK, sessions)
}

// GetMessages handles GET /api/v1/chat/sessions/:id/messages
func (h *ChatHandler) GetMessages(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		apierror.WriteProblem(c, apierror.NewUnauthorizedError(apierror.GetRequestID(c)))
		return
	}

	messages, err := h.chatService.GetSessionMessages(c.Request.Context(), userID.(string), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			apierror.WriteProblem(c, apierror.NewNotFoundError(apierror.GetRequestID(c), "chat session", c.Param("id")))
			return
		}
		logger.Ctx(c.Request.Context()).Error("failed to get chat messages", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(apierror.GetRequestID(c)))
		return
	}

	c.JSON(http.StatusOK, messages)
}

// SendMessage handles POST /api/v1/chat/sessions/:id/messages
func (h *ChatHandler) SendMessage(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		apierror.WriteProblem(c, apierror.NewUnauthorizedError(apierror.GetRequestID(c)))
		return
	}

	var req models.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierror.WriteProblem(c, apierror.NewBadRequestError(
			apierror.GetRequestID(c), err.Error(), "Invalid chat message"))
		return
	}

	resp, err := h.chatService.SendMessage(c.Request.Context(), userID.(string), c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			apierror.WriteProblem(c, apierror.NewNotFoundError(apierror.GetRequestID(c), "chat session", c.Param("id")))
			return
		}
		logger.Ctx(c.Request.Context()).Error("failed to send chat message", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(apierror.GetRequestID(c)))
		return
	}

	c.JSON(http.StatusCreated, resp)
}
