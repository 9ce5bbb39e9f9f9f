package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jananikuppan04-sys/Campus-Cart/internal/marketplace"
	"github.com/jananikuppan04-sys/Campus-Cart/pkg/middleware"
)

type MessagesHandler struct {
	messages *marketplace.MessageService
}

type sendMessageRequest struct {
	ReceiverID string `json:"receiverId"`
	ProductID  string `json:"productId"`
	Content    string `json:"content" binding:"required"`
}

func (h *MessagesHandler) Send(c *gin.Context) {
	var req sendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	msg, err := h.messages.Send(c.Request.Context(), middleware.UserID(c), req.ReceiverID, req.ProductID, req.Content)
	if err != nil {
		failFor(c, err)
		return
	}
	created(c, msg)
}

func (h *MessagesHandler) Inbox(c *gin.Context) {
	list, err := h.messages.Inbox(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		failFor(c, err)
		return
	}
	okCount(c, list, len(list))
}
