package server

import (
	"net/http"

	"github.com/chantierhq/chantier/internal/notify"
	"github.com/chantierhq/chantier/internal/store"
	"github.com/gin-gonic/gin"
)

type contactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject"`
	Message string `json:"message" binding:"required"`
}

// handleCreateContact inserts a contact form submission. New rows start
// unread with the date defaulted server-side.
func (s *Server) handleCreateContact(c *gin.Context) {
	var req contactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	msg, err := store.CreateContactMessage(s.db, store.ContactOpts{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}

	s.notifyAll(c.Request.Context(), notify.ContactMessageEvent(req.Name, req.Email, req.Subject))
	c.JSON(http.StatusCreated, msg)
}
