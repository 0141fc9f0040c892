package http

import (
	"errors"
	"net/http"

	"axlas-recipes/domain/dto"
	"axlas-recipes/infrastructure/logger"
	"axlas-recipes/usecase"

	"github.com/gin-gonic/gin"
)

type IContactHandler interface {
	Submit(c *gin.Context)
	ListMessages(c *gin.Context)
}

type ContactHandler struct {
	ContactUsecase usecase.IContactUsecase
}

func NewContactHandler(contactUsecase usecase.IContactUsecase) IContactHandler {
	return &ContactHandler{ContactUsecase: contactUsecase}
}

func (contactHandler *ContactHandler) Submit(c *gin.Context) {
	var req dto.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing fields"})
		return
	}

	err := contactHandler.ContactUsecase.Submit(c.Request.Context(), &req)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"ok": true})
	case errors.Is(err, usecase.ErrMissingFields):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing fields"})
	case errors.Is(err, usecase.ErrMailNotConfigured):
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Email not configured"})
	default:
		logger.GetLogger().WithField("error", err).Error("Contact relay failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send"})
	}
}

// ListMessages is the admin view over stored submissions.
func (contactHandler *ContactHandler) ListMessages(c *gin.Context) {
	messages, err := contactHandler.ContactUsecase.ListMessages(c.Request.Context(), 50)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load messages"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": messages, "count": len(messages)})
}
