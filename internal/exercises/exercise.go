package exercises

import (
	"github.com/bkovacic/liftlog/internal/notion"
)

// Exercise is the plain shape returned by GET /exercises.
type Exercise struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	BodyGroupID string `json:"bodyGroupId"`
}

// ExerciseDetails is the richer shape returned when filtering by body groups,
// carrying the full relation list, a display name for the first body group and
// the stored personal best.
type ExerciseDetails struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	BodyGroupIDs  []string `json:"bodyGroupIds"`
	BodyGroupName string   `json:"bodyGroupName,omitempty"`
	Best          float64  `json:"best"`
}

func pageToExercise(page notion.Page) Exercise {
	return Exercise{
		ID:          page.ID,
		Name:        page.Prop("Name").PlainTitle(),
		BodyGroupID: page.Prop("Body Group").FirstRelationID(),
	}
}

func pageToExerciseDetails(page notion.Page) ExerciseDetails {
	return ExerciseDetails{
		ID:           page.ID,
		Name:         page.Prop("Name").PlainTitle(),
		BodyGroupIDs: page.Prop("Body Group").RelationIDs(),
		Best:         page.Prop("Best").NumberValue(),
	}
}
