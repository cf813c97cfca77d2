package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/halcyon-app/halcyon/backend/internal/apierror"
	"github.com/halcyon-app/halcyon/backend/internal/logger"
	"github.com/halcyon-app/halcyon/backend/internal/models"
	"github.com/halcyon-app/halcyon/backend/internal/service"
)

type JournalHandler struct {
	journalService service.JournalService
}

// NewJournalHandler creates a new journal handler
func NewJournalHandler(journalService service.JournalService) *JournalHandler {
	return &JournalHandler{
		journalService: journalService,
	}
}

// CreateEntry handles POST /api/v1/journal
func (h *JournalHandler) CreateEntry(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		apierror.WriteProblem(c, apierror.NewUnauthorizedError(apierror.GetRequestID(c)))
		return
	}

	var req models.CreateJournalEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierror.WriteProblem(c, apierror.NewBadRequestError(
			apierror.GetRequestID(c), err.Error(), "Invalid journal entry"))
		return
	}

	entry, err := h.journalService.CreateEntry(c.Request.Context(), userID.(string), &req)
	if err != nil {
		logger.Ctx(c.Request.Context()).Error("failed to create journal entry", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(apierror.GetRequestID(c)))
		return
	}

	c.JSON(http.StatusCreated, entry)
}

// GetEntry handles GET /api/v1/journal/:id
func (h *JournalHandler) GetEntry(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		apierror.WriteProblem(c, apierror.NewUnauthorizedError(apierror.GetRequestID(c)))
		return
	}

	entry, err := h.journalService.GetEntry(c.Request.Context(), userID.(string), c.Param("id"))
	if err != nil {
		logger.Ctx(c.Request.Context()).Error("failed to get journal entry", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(apierror.GetRequestID(c)))
		return
	}
	if entry == nil {
		apierror.WriteProblem(c, apierror.NewNotFoundError(apierror.GetRequestID(c), "journal entry", c.Param("id")))
		return
	}

	c.JSON(http.StatusOK, entry)
}

// GetEntries handles GET /api/v1/journal
func (h *JournalHandler) GetEntries(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		apierror.WriteProblem(c, apierror.NewUnauthorizedError(apierror.GetRequestID(c)))
		return
	}

	limit, offset := parsePagination(c)

	entries, err := h.journalService.GetUserEntries(c.Request.Context(), userID.(string), limit, offset)
	if err != nil {
		logger.Ctx(c.Request.Context()).Error("failed to list journal entries", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(apierror.GetRequestID(c)))
		return
	}

	c.JSON(http.StatusOK, entries)
}

// UpdateEntry handles PUT /api/v1/journal/:id
func (h *JournalHandler) UpdateEntry(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		apierror.WriteProblem(c, apierror.NewUnauthorizedError(apierror.GetRequestID(c)))
		return
	}

	var req models.UpdateJournalEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierror.WriteProblem(c, apierror.NewBadRequestError(
			apierror.GetRequestID(c), err.Error(), "Invalid journal entry"))
		return
	}

	entry, err := h.journalService.UpdateEntry(c.Request.Context(), userID.(string), c.Param("id"), &req)
	if err != nil {
		logger.Ctx(c.Request.Context()).Error("failed to update journal entry", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(apierror.GetRequestID(c)))
		return
	}
	if entry == nil {
		apierror.WriteProblem(c, apierror.NewNotFoundError(apierror.GetRequestID(c), "journal entry", c.Param("id")))
		return
	}

	c.JSON(http.StatusOK, entry)
}

// DeleteEntry handles DELETE /api/v1/journal/:id
func (h *JournalHandler) DeleteEntry(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		apierror.WriteProblem(c, apierror.NewUnauthorizedError(apierror.GetRequestID(c)))
		return
	}

	if err := h.journalService.DeleteEntry(c.Request.Context(), userID.(string), c.Param("id")); err != nil {
		logger.Ctx(c.Request.Context()).Error("failed to delete journal entry", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(apierror.GetRequestID(c)))
		return
	}

	c.Status(http.StatusNoContent)
}
