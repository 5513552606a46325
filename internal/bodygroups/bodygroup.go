package bodygroups

import (
	"github.com/bkovacic/liftlog/internal/notion"
)

// BodyGroup is a muscle-group tag, maintained directly in the record store.
// Read-only from this app's perspective.
type BodyGroup struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func pageToBodyGroup(page notion.Page) BodyGroup {
	return BodyGroup{
		ID:   page.ID,
		Name: page.Prop("Name").PlainTitle(),
	}
}
