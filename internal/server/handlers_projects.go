package server

import (
	"net/http"
	"time"

	"github.com/chantierhq/chantier/internal/store"
	"github.com/gin-gonic/gin"
)

type projectRequest struct {
	Name        string     `json:"name" binding:"required"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	Progress    int        `json:"progress"`
	Budget      float64    `json:"budget" binding:"required"`
	Deadline    *time.Time `json:"deadline"`
	Location    string     `json:"location"`
	TeamSize    int        `json:"team_size"`
	DelayDays   int        `json:"delay_days"`
	Issues      int        `json:"issues"`
}

type projectPatchRequest struct {
	Name        *string    `json:"name"`
	Description *string    `json:"description"`
	Status      *string    `json:"status"`
	Progress    *int       `json:"progress"`
	Budget      *float64   `json:"budget"`
	Deadline    *time.Time `json:"deadline"`
	Location    *string    `json:"location"`
	TeamSize    *int       `json:"team_size"`
	DelayDays   *int       `json:"delay_days"`
	Issues      *int       `json:"issues"`
}

func (s *Server) handleListProjects(c *gin.Context) {
	projects, err := store.ListProjects(s.db)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, projects)
}

func (s *Server) handleCreateProject(c *gin.Context) {
	var req projectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	p, err := store.CreateProject(s.db, store.ProjectOpts{
		Name:        req.Name,
		Description: req.Description,
		Status:      req.Status,
		Progress:    req.Progress,
		Budget:      req.Budget,
		Deadline:    req.Deadline,
		Location:    req.Location,
		TeamSize:    req.TeamSize,
		DelayDays:   req.DelayDays,
		Issues:      req.Issues,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (s *Server) handleGetProject(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	p, err := store.GetProject(s.db, id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (s *Server) handleUpdateProject(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req projectPatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	p, err := store.UpdateProject(s.db, id, store.ProjectPatch{
		Name:        req.Name,
		Description: req.Description,
		Status:      req.Status,
		Progress:    req.Progress,
		Budget:      req.Budget,
		Deadline:    req.Deadline,
		Location:    req.Location,
		TeamSize:    req.TeamSize,
		DelayDays:   req.DelayDays,
		Issues:      req.Issues,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (s *Server) handleDeleteProject(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := store.DeleteProject(s.db, id); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
