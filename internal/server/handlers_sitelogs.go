package server

import (
	"net/http"
	"time"

	"github.com/chantierhq/chantier/internal/models"
	"github.com/chantierhq/chantier/internal/store"
	"github.com/chantierhq/chantier/internal/view"
	"github.com/gin-gonic/gin"
)

type siteLogRequest struct {
	Title     string     `json:"title" binding:"required"`
	Content   string     `json:"content"`
	ProjectID uint       `json:"project_id"`
	Author    string     `json:"author"`
	Weather   string     `json:"weather"`
	LogDate   *time.Time `json:"log_date"`
}

type siteLogPatchRequest struct {
	Title   *string    `json:"title"`
	Content *string    `json:"content"`
	Author  *string    `json:"author"`
	Weather *string    `json:"weather"`
	LogDate *time.Time `json:"log_date"`
}

// handleListSiteLogs returns one fixed-size page of site logs. The page
// number is clamped against the filtered count, so tightening the search
// never strands the viewer past the last page.
func (s *Server) handleListSiteLogs(c *gin.Context) {
	logs, err := store.ListSiteLogs(s.db, queryUint(c, "project_id"))
	if err != nil {
		abortWithError(c, err)
		return
	}

	filtered := view.Filter(logs, c.Query("q"), view.CategoryAll,
		func(l models.SiteLog) []string { return []string{l.Title, l.Content, l.Author} },
		nil,
	)
	view.SortByDateDesc(filtered, func(l models.SiteLog) time.Time { return l.LogDate })

	page := view.Paginate(filtered, queryInt(c, "page", 1), view.SiteLogPageSize)
	c.JSON(http.StatusOK, page)
}

func (s *Server) handleCreateSiteLog(c *gin.Context) {
	var req siteLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	opts := store.SiteLogOpts{
		Title:     req.Title,
		Content:   req.Content,
		ProjectID: req.ProjectID,
		Author:    req.Author,
		Weather:   req.Weather,
	}
	if req.LogDate != nil {
		opts.LogDate = *req.LogDate
	}

	log, err := store.CreateSiteLog(s.db, opts)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, log)
}

func (s *Server) handleUpdateSiteLog(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req siteLogPatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	log, err := store.UpdateSiteLog(s.db, id, store.SiteLogPatch{
		Title:   req.Title,
		Content: req.Content,
		Author:  req.Author,
		Weather: req.Weather,
		LogDate: req.LogDate,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, log)
}

func (s *Server) handleDeleteSiteLog(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := store.DeleteSiteLog(s.db, id); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
