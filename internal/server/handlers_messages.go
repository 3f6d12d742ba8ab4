package server

import (
	"net/http"

	"github.com/chantierhq/chantier/internal/models"
	"github.com/chantierhq/chantier/internal/store"
	"github.com/chantierhq/chantier/internal/view"
	"github.com/gin-gonic/gin"
)

// handleListMessages returns the inbox, newest first, with substring
// search across sender, email, subject and body.
func (s *Server) handleListMessages(c *gin.Context) {
	msgs, err := store.ListContactMessages(s.db)
	if err != nil {
		abortWithError(c, err)
		return
	}

	filtered := view.Filter(msgs, c.Query("q"), view.CategoryAll,
		func(m models.ContactMessage) []string {
			fields := []string{m.Name, m.Email, m.Message}
			if m.Subject != nil {
				fields = append(fields, *m.Subject)
			}
			return fields
		},
		nil,
	)
	c.JSON(http.StatusOK, filtered)
}

type markReadRequest struct {
	Read *bool `json:"read" binding:"required"`
}

func (s *Server) handleMarkMessageRead(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req markReadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	msg, err := store.MarkMessageRead(s.db, id, *req.Read)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, msg)
}

type deleteMessagesRequest struct {
	IDs []uint `json:"ids" binding:"required,min=1"`
}

// handleDeleteMessages removes a batch of inbox messages.
func (s *Server) handleDeleteMessages(c *gin.Context) {
	var req deleteMessagesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := store.DeleteContactMessages(s.db, req.IDs); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
