package http

import (
	"net/http"

	"anoa.com/binbeacon/internal/modules/chat/dto"
	"anoa.com/binbeacon/internal/modules/chat/service"
	"anoa.com/binbeacon/pkg/response"
	"anoa.com/binbeacon/pkg/validator"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ChatHandler struct {
	service service.ChatService
}

func NewChatHandler(service service.ChatService) *ChatHandler {
	return &ChatHandler{service: service}
}

func (h *ChatHandler) SendChat(c *gin.Context) {
	var req dto.SendChatInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	chat, err := h.service.Send(c.Request.Context(), req)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Message sent", "chat": chat})
}

func (h *ChatHandler) PrivateHistory(c *gin.Context) {
	user1, err := uuid.Parse(c.Param("user1"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}
	user2, err := uuid.Parse(c.Param("user2"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	chats, err := h.service.PrivateHistory(c.Request.Context(), user1, user2)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, chats)
}

func (h *ChatHandler) GroupHistory(c *gin.Context) {
	group := c.Param("name")
	if group == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "group name required"})
		return
	}

	chats, err := h.service.GroupHistory(c.Request.Context(), group)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, chats)
}
