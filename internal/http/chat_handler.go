package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"wellness-coach/internal/domain"
	"wellness-coach/internal/service"
)

// ChatHandler mantiene dependencias para el endpoint de chat.
type ChatHandler struct {
	logger  *zap.Logger
	advisor service.Advisor
}

// NewChatHandler crea una instancia de ChatHandler con dependencias necesarias.
func NewChatHandler(logger *zap.Logger, advisor service.Advisor) *ChatHandler {
	return &ChatHandler{
		logger:  logger,
		advisor: advisor,
	}
}

// Chat maneja POST /api/chat.
func (h *ChatHandler) Chat(c *gin.Context) {
	// Message es puntero para distinguir campo ausente (400) de string
	// vacío (respuesta por defecto). El historial se acepta y se ignora.
	var req struct {
		Message *string              `json:"message" binding:"required"`
		History []domain.ChatMessage `json:"history"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid chat request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	reply := h.advisor.Reply(*req.Message)

	c.JSON(http.StatusOK, domain.ChatResponse{Reply: reply})
}
