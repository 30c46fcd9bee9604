package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type sendMessageRequest struct {
	ReceiverID string `json:"receiver_id"`
	Content    string `json:"content"`
}

// SendMessage handles POST /api/messages.
func (h *Handler) SendMessage(c *gin.Context) {
	var in sendMessageRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	sender := currentProfile(c)
	msg, err := h.messages.Send(c.Request.Context(), sender.ID, in.ReceiverID, in.Content)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": msg})
}

// GetInbox handles GET /api/inbox: every message addressed to the caller.
func (h *Handler) GetInbox(c *gin.Context) {
	principal := currentProfile(c)
	msgs, err := h.messages.Inbox(c.Request.Context(), principal.ID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"messages": msgs})
}

// GetConversation handles GET /api/messages/:peerID.
func (h *Handler) GetConversation(c *gin.Context) {
	principal := currentProfile(c)
	msgs, err := h.messages.Conversation(c.Request.Context(), principal.ID, c.Param("peerID"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"messages": msgs})
}
