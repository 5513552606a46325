package templates

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// StaticRepo serves the seeded template list from memory. Guarded by a mutex:
// template creation from two concurrent requests must not corrupt the slice.
type StaticRepo struct {
	mu        sync.RWMutex
	templates []Template
}

func NewStaticRepo(seed []Template) *StaticRepo {
	templates := make([]Template, 0, len(seed))
	for _, t := range seed {
		if t.ID == "" {
			t.ID = uuid.NewString()
		}
		templates = append(templates, t)
	}
	return &StaticRepo{
		templates: templates,
	}
}

func (r *StaticRepo) List(_ context.Context) ([]Template, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	templates := make([]Template, len(r.templates))
	copy(templates, r.templates)
	return templates, nil
}

func (r *StaticRepo) Get(_ context.Context, id string) (*Template, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.templates {
		if r.templates[i].ID == id {
			t := r.templates[i]
			return &t, nil
		}
	}
	return nil, ErrTemplateNotFound
}

func (r *StaticRepo) Create(_ context.Context, template Template) (*Template, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	template.ID = uuid.NewString()
	r.templates = append(r.templates, template)
	return &template, nil
}

func (r *StaticRepo) Update(_ context.Context, id string, template Template) (*Template, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.templates {
		if r.templates[i].ID == id {
			template.ID = id
			r.templates[i] = template
			return &template, nil
		}
	}
	return nil, ErrTemplateNotFound
}

func (r *StaticRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.templates {
		if r.templates[i].ID == id {
			r.templates = append(r.templates[:i], r.templates[i+1:]...)
			return nil
		}
	}
	return ErrTemplateNotFound
}
