package server

import (
	"net/http"

	"github.com/chantierhq/chantier/internal/models"
	"github.com/chantierhq/chantier/internal/store"
	"github.com/chantierhq/chantier/internal/view"
	"github.com/gin-gonic/gin"
)

type resourceRequest struct {
	Name      string `json:"name" binding:"required"`
	Type      string `json:"type" binding:"required"`
	Quantity  int    `json:"quantity"`
	Unit      string `json:"unit"`
	Status    string `json:"status"`
	ProjectID uint   `json:"project_id"`
}

type resourcePatchRequest struct {
	Name     *string `json:"name"`
	Type     *string `json:"type"`
	Quantity *int    `json:"quantity"`
	Unit     *string `json:"unit"`
	Status   *string `json:"status"`
}

// handleListResources lists resources with the standard list behaviors:
// substring search across name and status, an exact type filter
// ("all" matches everything), newest first.
func (s *Server) handleListResources(c *gin.Context) {
	resources, err := store.ListResources(s.db, queryUint(c, "project_id"))
	if err != nil {
		abortWithError(c, err)
		return
	}

	filtered := view.Filter(resources, c.Query("q"), c.DefaultQuery("type", view.CategoryAll),
		func(r models.Resource) []string { return []string{r.Name, r.Status, r.Unit} },
		func(r models.Resource) string { return r.Type },
	)
	c.JSON(http.StatusOK, filtered)
}

func (s *Server) handleCreateResource(c *gin.Context) {
	var req resourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	r, err := store.CreateResource(s.db, store.ResourceOpts{
		Name:      req.Name,
		Type:      req.Type,
		Quantity:  req.Quantity,
		Unit:      req.Unit,
		Status:    req.Status,
		ProjectID: req.ProjectID,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, r)
}

func (s *Server) handleUpdateResource(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req resourcePatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	r, err := store.UpdateResource(s.db, id, store.ResourcePatch{
		Name:     req.Name,
		Type:     req.Type,
		Quantity: req.Quantity,
		Unit:     req.Unit,
		Status:   req.Status,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, r)
}

func (s *Server) handleDeleteResource(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := store.DeleteResource(s.db, id); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
