package server

import (
	"net/http"

	"github.com/chantierhq/chantier/internal/stats"
	"github.com/chantierhq/chantier/internal/store"
	"github.com/gin-gonic/gin"
)

// handleStats returns the projects-overview figures. With no projects the
// summary is null rather than a division by zero.
func (s *Server) handleStats(c *gin.Context) {
	projects, err := store.ListProjects(s.db)
	if err != nil {
		abortWithError(c, err)
		return
	}

	var summary *stats.Summary
	if sum, ok := stats.Summarize(projects); ok {
		summary = &sum
	}

	histogram, err := stats.StatusHistogram(s.db)
	if err != nil {
		abortWithError(c, err)
		return
	}

	unread, err := store.CountUnreadMessages(s.db)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"summary":        summary,
		"status_counts":  histogram,
		"activity_trend": stats.ActivityTrend(),
		"unread_count":   unread,
	})
}
