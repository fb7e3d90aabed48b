package repository

import (
	"context"
	"errors"

	"github.com/makoye224/cwru-courses-backend/internal/catalog"
)

var (
	ErrNotFound = errors.New("course not found")
)

// Repository is the document-store boundary used by the catalog service.
// Save replaces the whole course document, embedded reviews included.
type Repository interface {
	Insert(ctx context.Context, c *catalog.Course) error
	FindByID(ctx context.Context, id string) (*catalog.Course, error)
	List(ctx context.Context) ([]catalog.Course, error)
	Search(ctx context.Context, text string) ([]catalog.Course, error)
	Save(ctx context.Context, c *catalog.Course) error
	Delete(ctx context.Context, id string) error
}
