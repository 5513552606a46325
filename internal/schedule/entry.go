package schedule

import (
	"fmt"
	"strings"

	"github.com/bkovacic/liftlog/internal/notion"
)

// compositeNameSeparator joins template and exercise name in the entry title.
// Downstream readers split on it to recover the exercise name, so it must be
// applied and parsed exactly the same way everywhere.
const compositeNameSeparator = " - "

// Entry is one exercise's planned or recorded performance on one date.
type Entry struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Date        string   `json:"date"`
	Sets        int      `json:"sets"`
	Reps        int      `json:"reps"`
	MaxWeight   float64  `json:"maxWeight"`
	Completed   bool     `json:"completed"`
	TemplateID  string   `json:"templateId,omitempty"`
	ExerciseID  string   `json:"exerciseId"`
	ExerciseIDs []string `json:"exerciseIds"`
}

func pageToEntry(page notion.Page) Entry {
	exerciseIDs := page.Prop("Exercises").RelationIDs()
	return Entry{
		ID:        page.ID,
		Name:      page.Prop("Name").PlainTitle(),
		Date:      DateOnly(page.Prop("Date").DateStart()),
		Sets:      int(page.Prop("Total Sets").NumberValue()),
		Reps:      int(page.Prop("Total Reps").NumberValue()),
		MaxWeight: page.Prop("Max Weight").NumberValue(),
		Completed: page.Prop("Completed").CheckboxValue(),
		// the relation is a list on the store side, but entries are
		// built one per exercise; the first id is authoritative
		TemplateID:  page.Prop("Workout Template").FirstRelationID(),
		ExerciseID:  firstOrEmpty(exerciseIDs),
		ExerciseIDs: exerciseIDs,
	}
}

// CompositeName builds the entry title from the owning template and exercise.
func CompositeName(templateName, exerciseName string) string {
	return fmt.Sprintf("%s%s%s", templateName, compositeNameSeparator, exerciseName)
}

// ExerciseName re-derives the exercise name from the composite title: drop the
// first segment on the separator and rejoin the rest, so exercise names that
// contain the separator themselves survive the round trip.
func (e Entry) ExerciseName() string {
	parts := strings.Split(e.Name, compositeNameSeparator)
	if len(parts) < 2 {
		return e.Name
	}
	return strings.Join(parts[1:], compositeNameSeparator)
}

func firstOrEmpty(ids []string) string {
	if len(ids) == 0 {
		return ""
	}
	return ids[0]
}
