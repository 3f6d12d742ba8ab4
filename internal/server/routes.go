package server

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/chantierhq/chantier/internal/auth"
	"github.com/gin-gonic/gin"
)

// registerRoutes sets up all routes on the Gin router.
func (s *Server) registerRoutes(router *gin.Engine) {
	if s.filesDir != "" {
		router.Static("/files", s.filesDir)
	}

	// Public surface: the contact form is the one unauthenticated write.
	router.POST("/api/contact", s.handleCreateContact)

	admin := router.Group("/api/admin")
	admin.POST("/login", s.handleLogin)

	authed := admin.Group("")
	authed.Use(s.authRequired())
	authed.DELETE("/session", s.handleLogout)
	authed.GET("/stats", s.handleStats)

	authed.GET("/projects", s.handleListProjects)
	authed.POST("/projects", s.handleCreateProject)
	authed.GET("/projects/:id", s.handleGetProject)
	authed.PUT("/projects/:id", s.handleUpdateProject)
	authed.DELETE("/projects/:id", s.handleDeleteProject)

	authed.GET("/tasks", s.handleListTasks)
	authed.POST("/tasks", s.handleCreateTask)
	authed.PUT("/tasks/:id", s.handleUpdateTask)
	authed.DELETE("/tasks/:id", s.handleDeleteTask)

	authed.GET("/resources", s.handleListResources)
	authed.POST("/resources", s.handleCreateResource)
	authed.PUT("/resources/:id", s.handleUpdateResource)
	authed.DELETE("/resources/:id", s.handleDeleteResource)

	authed.GET("/site-logs", s.handleListSiteLogs)
	authed.POST("/site-logs", s.handleCreateSiteLog)
	authed.PUT("/site-logs/:id", s.handleUpdateSiteLog)
	authed.DELETE("/site-logs/:id", s.handleDeleteSiteLog)

	authed.GET("/documents", s.handleListDocuments)
	authed.POST("/documents", s.handleUploadDocument)
	authed.DELETE("/documents/:id", s.handleDeleteDocument)

	authed.GET("/messages", s.handleListMessages)
	authed.PATCH("/messages/:id/read", s.handleMarkMessageRead)
	authed.DELETE("/messages", s.handleDeleteMessages)
}

const sessionKey = "adminSession"

// authRequired rejects requests without a valid bearer token. The session
// row is resolved on every request; nothing client-side is trusted.
func (s *Server) authRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		session, err := s.gate.Check(token)
		if err != nil {
			abortWithError(c, auth.ErrUnauthenticated)
			return
		}
		c.Set(sessionKey, session)
		c.Next()
	}
}

// bearerToken extracts the token from an Authorization header.
func bearerToken(header string) string {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}

// pathID parses the numeric :id path parameter. On failure it writes a 400
// and returns false.
func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return uint(id), true
}

// queryUint parses an optional numeric query parameter, returning 0 when
// absent or malformed.
func queryUint(c *gin.Context, name string) uint {
	v, err := strconv.ParseUint(c.Query(name), 10, 32)
	if err != nil {
		return 0
	}
	return uint(v)
}

// queryInt parses an optional numeric query parameter with a default.
func queryInt(c *gin.Context, name string, def int) int {
	v, err := strconv.Atoi(c.Query(name))
	if err != nil {
		return def
	}
	return v
}
