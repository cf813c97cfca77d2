package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/halcyon-app/halcyon/backend/internal/apierror"
	"github.com/halcyon-app/halcyon/backend/internal/logger"
	"github.com/halcyon-app/halcyon/backend/internal/models"
	"github.com/halcyon-app/halcyon/backend/internal/service"
)

type VoiceHandler struct {
	voiceService service.VoiceService
}

// NewVoiceHandler creates a new voice handler
func NewVoiceHandler(voiceService service.VoiceService) *VoiceHandler {
	return &VoiceHandler{
		voiceService: voiceService,
	}
}

// parsePagination reads limit/offset query parameters, tolerating absence
func parsePagination(c *gin.Context) (int, int) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	return limit, offset
}

// CreateAnalysis handles POST /api/v1/voice
func (h *VoiceHandler) CreateAnalysis(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		apierror.WriteProblem(c, apierror.NewUnauthorizedError(apierror.GetRequestID(c)))
		return
	}

	var req models.CreateVoiceAnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierror.WriteProblem(c, apierror.NewBadRequestError(
			apierror.GetRequestID(c), err.Error(), "Invalid voice analysis"))
		return
	}

	analysis, err := h.voiceService.CreateAnalysis(c.Request.Context(), userID.(string), &req)
	if err != nil {
		logger.Ctx(c.Request.Context()).Error("failed to create voice analysis", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(apierror.GetRequestID(c)))
		return
	}

	c.JSON(http.StatusCreated, analysis)
}

// GetAnalyses handles GET /api/v1/voice
func (h *VoiceHandler) GetAnalyses(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		apierror.WriteProblem(c, apierror.NewUnauthorizedError(apierror.GetRequestID(c)))
		return
	}

	limit, offset := parsePagination(c)

	analyses, err := h.voiceService.GetUserAnalyses(c.Request.Context(), userID.(string), limit, offset)
	if err != nil {
		logger.Ctx(c.Request.Context()).Error("failed to list voice analyses", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(apierror.GetRequestID(c)))
		return
	}

	c.JSON(http.StatusOK, analyses)
}
