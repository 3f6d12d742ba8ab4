// Package document coordinates object storage and metadata rows for
// uploaded files. Upload is a two-step saga: the object is written first,
// then the metadata row; a failed insert triggers a compensating object
// delete. If that delete also fails, the object is orphaned and the error
// says so explicitly instead of burying it in a log line.
package document

import (
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/chantierhq/chantier/internal/models"
	"github.com/chantierhq/chantier/internal/storage"
	"github.com/chantierhq/chantier/internal/store"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrOrphanedObject reports that an object was uploaded but its metadata
// row could not be inserted, and the compensating delete failed too. The
// object remains in storage with no row pointing at it.
var ErrOrphanedObject = errors.New("document: orphaned object in storage")

// Service handles document upload and deletion.
type Service struct {
	db    *gorm.DB
	blobs storage.BlobStore
}

// NewService creates a document service over the given database and store.
func NewService(db *gorm.DB, blobs storage.BlobStore) *Service {
	return &Service{db: db, blobs: blobs}
}

// UploadOpts holds parameters for uploading a document.
type UploadOpts struct {
	Name        string
	Description string
	ProjectID   uint
	FileName    string
	FileType    string
	UploadedBy  string
	Content     io.Reader
}

// Upload stores the object, then inserts the metadata row. On insert
// failure the object is deleted; if that delete fails the returned error
// wraps ErrOrphanedObject with the stranded path.
func (s *Service) Upload(opts UploadOpts) (*models.Document, error) {
	if opts.FileName == "" {
		return nil, fmt.Errorf("document: file name is required")
	}
	if opts.Content == nil {
		return nil, fmt.Errorf("document: content is required")
	}
	name := opts.Name
	if name == "" {
		name = opts.FileName
	}

	path := objectPath(opts.ProjectID, opts.FileName)
	size, err := s.blobs.Upload(path, opts.Content)
	if err != nil {
		return nil, fmt.Errorf("document: upload object: %w", err)
	}

	doc, err := store.CreateDocument(s.db, store.DocumentOpts{
		Name:        name,
		Description: opts.Description,
		ProjectID:   opts.ProjectID,
		FilePath:    path,
		FileType:    opts.FileType,
		FileSize:    size,
		UploadedBy:  opts.UploadedBy,
	})
	if err != nil {
		// Compensate: the object must not outlive the failed insert.
		if rmErr := s.blobs.Remove([]string{path}); rmErr != nil {
			return nil, fmt.Errorf("%w: %s (insert: %v, cleanup: %v)", ErrOrphanedObject, path, err, rmErr)
		}
		return nil, fmt.Errorf("document: insert metadata: %w", err)
	}
	return doc, nil
}

// Delete removes the object first, then the metadata row. The row delete
// is attempted even when the object delete fails, so a missing or stuck
// object can never pin a stale row.
func (s *Service) Delete(id uint) error {
	doc, err := store.GetDocument(s.db, id)
	if err != nil {
		return err
	}
	if err := s.blobs.Remove([]string{doc.FilePath}); err != nil {
		log.Printf("document: remove object %s: %v", doc.FilePath, err)
	}
	return store.DeleteDocumentRow(s.db, id)
}

// List returns document metadata, optionally scoped to a project.
func (s *Service) List(projectID uint) ([]models.Document, error) {
	return store.ListDocuments(s.db, projectID)
}

// PublicURL returns the URL a stored document is served from.
func (s *Service) PublicURL(doc *models.Document) string {
	return s.blobs.PublicURL(doc.FilePath)
}

// objectPath builds a collision-free storage key: the project scope, a
// random prefix, and a sanitized version of the original file name.
func objectPath(projectID uint, fileName string) string {
	base := strings.ReplaceAll(fileName, "/", "_")
	return fmt.Sprintf("%d/%s-%s", projectID, uuid.NewString()[:8], base)
}
