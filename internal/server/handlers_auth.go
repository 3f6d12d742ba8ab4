package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// handleLogin checks credentials and issues a session token.
func (s *Server) handleLogin(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := s.gate.Login(req.Email, req.Password)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"token":      session.Token,
		"email":      session.Email,
		"expires_at": session.ExpiresAt,
	})
}

// handleLogout revokes the caller's session.
func (s *Server) handleLogout(c *gin.Context) {
	session := currentSession(c)
	if err := s.gate.Logout(session.Token); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
