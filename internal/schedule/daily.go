package schedule

import (
	"strings"

	"github.com/bkovacic/liftlog/internal/notion"
)

// DailySummary is the single completion record for a whole day's session.
type DailySummary struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Date      string `json:"date"`
	Completed bool   `json:"completed"`
}

func pageToDailySummary(page notion.Page) DailySummary {
	return DailySummary{
		ID:        page.ID,
		Name:      page.Prop("Name").PlainTitle(),
		Date:      DateOnly(page.Prop("Date").DateStart()),
		Completed: page.Prop("Completed").CheckboxValue(),
	}
}

// DateOnly strips a trailing time component; stored dates sometimes carry a
// duration-derived timestamp ("2025-01-06T18:00:00+01:00"), but the domain
// keys everything by the YYYY-MM-DD part.
func DateOnly(date string) string {
	if idx := strings.IndexByte(date, 'T'); idx >= 0 {
		return date[:idx]
	}
	return date
}
