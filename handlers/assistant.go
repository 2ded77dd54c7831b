package handlers

import (
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"brewvoice/config"
	"brewvoice/services/assistant"
	"brewvoice/services/speech"
	"brewvoice/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AssistantHandler exposes the voice assistant over HTTP: transcripts from
// the browser's recognizer, raw WAV uploads for server-side recognition,
// and session lifecycle actions.
type AssistantHandler struct {
	Svc        assistant.Service
	Recognizer speech.Recognizer
	Logger     *zap.Logger
}

func NewAssistantHandler(svc assistant.Service, recognizer speech.Recognizer, logger *zap.Logger) *AssistantHandler {
	return &AssistantHandler{Svc: svc, Recognizer: recognizer, Logger: logger}
}

// TranscriptHandler processes one already-recognized transcript.
func (h *AssistantHandler) TranscriptHandler(c *gin.Context) {
	var input struct {
		SessionID  string `json:"session_id"`
		Transcript string `json:"transcript" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}

	resp, err := h.Svc.HandleTranscript(c.Request.Context(), input.SessionID, input.Transcript)
	if err != nil {
		h.Logger.Error("failed to handle transcript", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to process transcript", "")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// STTHandler accepts a WAV upload, recognizes it and processes the
// resulting transcript in one round trip.
func (h *AssistantHandler) STTHandler(c *gin.Context) {
	language := c.DefaultPostForm("language", config.AppConfig.SpeechLanguage)
	sessionID := c.PostForm("session_id")

	file, header, err := c.Request.FormFile("audio")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Audio file is required", err.Error())
		return
	}
	defer file.Close()

	if ext := strings.ToLower(filepath.Ext(header.Filename)); ext != speech.AllowedExtension {
		utils.JSONError(c, http.StatusBadRequest, "Invalid file type",
			fmt.Sprintf("expected %s, got %s", speech.AllowedExtension, ext))
		return
	}

	wav, err := io.ReadAll(io.LimitReader(file, speech.MaxFileSize))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to read audio file", err.Error())
		return
	}

	transcript, err := h.Recognizer.Recognize(c.Request.Context(), wav, language)
	if err != nil {
		h.Logger.Warn("speech recognition failed", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "Speech recognition failed", err.Error())
		return
	}

	resp, err := h.Svc.HandleTranscript(c.Request.Context(), sessionID, transcript)
	if err != nil {
		h.Logger.Error("failed to handle transcript", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to process transcript", "")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// StartSessionHandler creates a fresh ordering session.
func (h *AssistantHandler) StartSessionHandler(c *gin.Context) {
	snapshot, err := h.Svc.StartSession(c.Request.Context())
	if err != nil {
		h.Logger.Error("failed to start session", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to start session", "")
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

// ResetSessionHandler discards the current session and starts a new one.
func (h *AssistantHandler) ResetSessionHandler(c *gin.Context) {
	var input struct {
		SessionID string `json:"session_id"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}

	snapshot, err := h.Svc.ResetSession(c.Request.Context(), input.SessionID)
	if err != nil {
		h.Logger.Error("failed to reset session", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to reset session", "")
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

// ToggleCaptureHandler flips the voice-capture flag for a session.
func (h *AssistantHandler) ToggleCaptureHandler(c *gin.Context) {
	var input struct {
		SessionID string `json:"session_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}

	active, err := h.Svc.ToggleCapture(c.Request.Context(), input.SessionID)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "Session not found or expired", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"captureActive": active})
}
