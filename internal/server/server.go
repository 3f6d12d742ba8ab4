// Package server exposes the public contact endpoint and the admin API
// over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/chantierhq/chantier/internal/auth"
	"github.com/chantierhq/chantier/internal/document"
	"github.com/chantierhq/chantier/internal/notify"
	"github.com/chantierhq/chantier/internal/store"
	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// Opts holds configuration for the HTTP server.
type Opts struct {
	DB        *gorm.DB
	Gate      *auth.Gate
	Documents *document.Service
	Notifiers []notify.Notifier
	Port      int
	FilesDir  string // served at /files; empty disables static serving
	Out       io.Writer
}

// Server wires the HTTP handlers to their dependencies.
type Server struct {
	db        *gorm.DB
	gate      *auth.Gate
	documents *document.Service
	notifiers []notify.Notifier
	filesDir  string
}

// New creates a Server. DB, Gate and Documents are required.
func New(opts Opts) (*Server, error) {
	if opts.DB == nil {
		return nil, fmt.Errorf("server: db is required")
	}
	if opts.Gate == nil {
		return nil, fmt.Errorf("server: gate is required")
	}
	if opts.Documents == nil {
		return nil, fmt.Errorf("server: document service is required")
	}
	return &Server{
		db:        opts.DB,
		gate:      opts.Gate,
		documents: opts.Documents,
		notifiers: opts.Notifiers,
		filesDir:  opts.FilesDir,
	}, nil
}

// Router builds the Gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	s.registerRoutes(router)
	return router
}

// Start launches the HTTP server and the hourly session sweep. It blocks
// until ctx is cancelled, then shuts down gracefully.
func Start(ctx context.Context, opts Opts) error {
	s, err := New(opts)
	if err != nil {
		return err
	}
	if opts.Port <= 0 {
		opts.Port = 8080
	}

	sweeper := cron.New()
	if _, err := sweeper.AddFunc("@hourly", func() {
		n, err := s.gate.SweepExpired()
		if err != nil {
			log.Printf("server: session sweep: %v", err)
			return
		}
		if n > 0 {
			log.Printf("server: swept %d expired sessions", n)
		}
	}); err != nil {
		return fmt.Errorf("server: schedule session sweep: %w", err)
	}
	sweeper.Start()
	defer sweeper.Stop()

	addr := fmt.Sprintf(":%d", opts.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: s.Router(),
	}

	// Graceful shutdown on context cancellation.
	go func() {
		<-ctx.Done()
		srv.Shutdown(context.Background())
	}()

	if opts.Out != nil {
		fmt.Fprintf(opts.Out, "Chantier API listening at http://localhost:%d\n", opts.Port)
	}

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server: %w", err)
	}
	return nil
}

// abortWithError maps domain errors to HTTP status codes. Every failure
// ends as a JSON body; nothing here takes the process down.
func abortWithError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, store.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, store.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, auth.ErrInvalidCredentials), errors.Is(err, auth.ErrUnauthenticated):
		status = http.StatusUnauthorized
	case errors.Is(err, document.ErrOrphanedObject):
		status = http.StatusInternalServerError
	}
	if status == http.StatusInternalServerError {
		log.Printf("server: %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	}
	c.AbortWithStatusJSON(status, gin.H{"error": err.Error()})
}

// notifyAll broadcasts an event to the configured notifiers, best-effort.
func (s *Server) notifyAll(ctx context.Context, ev notify.Event) {
	if len(s.notifiers) == 0 {
		return
	}
	notify.Broadcast(ctx, s.notifiers, ev)
}
