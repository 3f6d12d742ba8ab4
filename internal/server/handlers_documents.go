package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/chantierhq/chantier/internal/document"
	"github.com/chantierhq/chantier/internal/models"
	"github.com/chantierhq/chantier/internal/notify"
	"github.com/chantierhq/chantier/internal/view"
	"github.com/gin-gonic/gin"
)

// documentResponse is a metadata row plus its public URL.
type documentResponse struct {
	models.Document
	URL string `json:"url"`
}

// handleListDocuments lists documents with search and sort applied
// server-side: q matches name and description, sort is one of
// date (default, newest first), name, or size.
func (s *Server) handleListDocuments(c *gin.Context) {
	docs, err := s.documents.List(queryUint(c, "project_id"))
	if err != nil {
		abortWithError(c, err)
		return
	}

	filtered := view.Filter(docs, c.Query("q"), view.CategoryAll,
		func(d models.Document) []string { return []string{d.Name, d.Description, d.FileType} },
		nil,
	)

	switch c.DefaultQuery("sort", "date") {
	case "name":
		view.SortByNameAsc(filtered, func(d models.Document) string { return d.Name })
	case "size":
		view.SortBySizeAsc(filtered, func(d models.Document) int64 { return d.FileSize })
	default:
		// ListDocuments already returns newest first.
	}

	out := make([]documentResponse, 0, len(filtered))
	for _, d := range filtered {
		out = append(out, documentResponse{Document: d, URL: s.documents.PublicURL(&d)})
	}
	c.JSON(http.StatusOK, out)
}

// handleUploadDocument accepts a multipart upload: the file part plus
// name/description/project_id form fields.
func (s *Server) handleUploadDocument(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	defer file.Close()

	projectID, _ := strconv.ParseUint(c.PostForm("project_id"), 10, 32)
	session := currentSession(c)

	fileType := header.Header.Get("Content-Type")
	if fileType == "" {
		fileType = "application/octet-stream"
	}

	doc, err := s.documents.Upload(document.UploadOpts{
		Name:        c.PostForm("name"),
		Description: c.PostForm("description"),
		ProjectID:   uint(projectID),
		FileName:    header.Filename,
		FileType:    fileType,
		UploadedBy:  session.Email,
		Content:     file,
	})
	if err != nil {
		if errors.Is(err, document.ErrOrphanedObject) {
			s.notifyAll(c.Request.Context(), notify.OrphanedObjectEvent(header.Filename, err))
		}
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, documentResponse{Document: *doc, URL: s.documents.PublicURL(doc)})
}

func (s *Server) handleDeleteDocument(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := s.documents.Delete(id); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// currentSession returns the session set by the auth middleware.
func currentSession(c *gin.Context) *models.AdminSession {
	return c.MustGet(sessionKey).(*models.AdminSession)
}
