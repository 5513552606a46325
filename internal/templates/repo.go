package templates

import (
	"context"
	"errors"
)

var (
	ErrTemplateNotFound = errors.New("template not found")

	// ErrReadOnlyTemplates is returned by the store-backed repo for mutations:
	// that collection is maintained directly in the record store UI.
	ErrReadOnlyTemplates = errors.New("templates are managed in the record store")
)

// Repo abstracts the template source. Exactly one implementation is active per
// process, selected at startup: the seeded in-memory list or the record-store
// collections. The two are never merged.
type Repo interface {
	List(ctx context.Context) ([]Template, error)
	Get(ctx context.Context, id string) (*Template, error)
	Create(ctx context.Context, template Template) (*Template, error)
	Update(ctx context.Context, id string, template Template) (*Template, error)
	Delete(ctx context.Context, id string) error
}
