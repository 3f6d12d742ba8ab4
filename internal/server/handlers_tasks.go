package server

import (
	"net/http"
	"time"

	"github.com/chantierhq/chantier/internal/store"
	"github.com/gin-gonic/gin"
)

type taskRequest struct {
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	Priority    string     `json:"priority"`
	ProjectID   uint       `json:"project_id"`
	DueDate     *time.Time `json:"due_date"`
	Assignee    string     `json:"assignee"`
	Completion  int        `json:"completion"`
}

type taskPatchRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Status      *string    `json:"status"`
	Priority    *string    `json:"priority"`
	DueDate     *time.Time `json:"due_date"`
	Assignee    *string    `json:"assignee"`
	Completion  *int       `json:"completion"`
}

func (s *Server) handleListTasks(c *gin.Context) {
	tasks, err := store.ListTasks(s.db, store.TaskFilters{
		ProjectID: queryUint(c, "project_id"),
		Status:    c.Query("status"),
		Assignee:  c.Query("assignee"),
	})
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, tasks)
}

func (s *Server) handleCreateTask(c *gin.Context) {
	var req taskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := store.CreateTask(s.db, store.TaskOpts{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Priority:    req.Priority,
		ProjectID:   req.ProjectID,
		DueDate:     req.DueDate,
		Assignee:    req.Assignee,
		Completion:  req.Completion,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, task)
}

func (s *Server) handleUpdateTask(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req taskPatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := store.UpdateTask(s.db, id, store.TaskPatch{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Priority:    req.Priority,
		DueDate:     req.DueDate,
		Assignee:    req.Assignee,
		Completion:  req.Completion,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

func (s *Server) handleDeleteTask(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := store.DeleteTask(s.db, id); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
