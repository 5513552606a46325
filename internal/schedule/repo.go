package schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/bkovacic/liftlog/internal/notion"
	"github.com/bkovacic/liftlog/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/multierr"
)

var (
	ErrEntryNotFound   = errors.New("scheduled entry not found")
	ErrSummaryNotFound = errors.New("daily summary not found")
)

type store interface {
	QueryAll(ctx context.Context, databaseID string, q notion.Query) ([]notion.Page, error)
	GetPage(ctx context.Context, pageID string) (*notion.Page, error)
	CreatePage(ctx context.Context, databaseID string, props notion.Properties) (*notion.Page, error)
	UpdatePage(ctx context.Context, pageID string, props notion.Properties) (*notion.Page, error)
	ArchivePage(ctx context.Context, pageID string) error
}

// Repo covers both workout collections: the per-exercise scheduled entries
// and the per-date daily summaries.
type Repo struct {
	store    store
	weeklyDB string
	dailyDB  string
}

func NewRepo(store store, weeklyDB, dailyDB string) *Repo {
	return &Repo{
		store:    store,
		weeklyDB: weeklyDB,
		dailyDB:  dailyDB,
	}
}

// dateRangeFilter builds the inclusive range filter, or nil when either bound
// is missing (unfiltered list).
func dateRangeFilter(from, to string) *notion.Filter {
	if from == "" || to == "" {
		return nil
	}
	return notion.And(
		notion.DateOnOrAfter("Date", from),
		notion.DateOnOrBefore("Date", to),
	)
}

func (r *Repo) ListEntries(ctx context.Context, from, to string) (_ []Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.schedule.listentries")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	pages, err := r.store.QueryAll(ctx, r.weeklyDB, notion.Query{
		Filter: dateRangeFilter(from, to),
		Sorts:  []notion.Sort{{Property: "Date", Direction: notion.SortDescending}},
	})
	if err != nil {
		return nil, fmt.Errorf("query scheduled entries: %w", err)
	}

	entries := make([]Entry, 0, len(pages))
	for _, page := range pages {
		entries = append(entries, pageToEntry(page))
	}

	span.SetAttributes(attribute.Int("entries.count", len(entries)))
	return entries, nil
}

func (r *Repo) ListDailies(ctx context.Context, from, to string) (_ []DailySummary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.schedule.listdailies")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	pages, err := r.store.QueryAll(ctx, r.dailyDB, notion.Query{
		Filter: dateRangeFilter(from, to),
		Sorts:  []notion.Sort{{Property: "Date", Direction: notion.SortAscending}},
	})
	if err != nil {
		return nil, fmt.Errorf("query daily summaries: %w", err)
	}

	dailies := make([]DailySummary, 0, len(pages))
	for _, page := range pages {
		dailies = append(dailies, pageToDailySummary(page))
	}

	return dailies, nil
}

func (r *Repo) GetEntry(ctx context.Context, id string) (_ *Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.schedule.getentry")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("entry.id", id))

	page, err := r.store.GetPage(ctx, id)
	if err != nil {
		if errors.Is(err, notion.ErrPageNotFound) {
			return nil, ErrEntryNotFound
		}
		return nil, fmt.Errorf("get scheduled entry %s: %w", id, err)
	}

	entry := pageToEntry(*page)
	return &entry, nil
}

// NewEntry carries the properties for a scheduled entry creation. TemplateID
// and TemplateExerciseID are linked only when set.
type NewEntry struct {
	Name               string
	Date               string
	Sets               int
	Reps               int
	MaxWeight          float64
	ExerciseID         string
	TemplateID         string
	TemplateExerciseID string
}

func (r *Repo) CreateEntry(ctx context.Context, newEntry NewEntry) (_ *Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.schedule.createentry")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	props := notion.Properties{
		"Name":       notion.TitleProp(newEntry.Name),
		"Date":       notion.DateProp(newEntry.Date),
		"Total Sets": notion.NumberProp(float64(newEntry.Sets)),
		"Total Reps": notion.NumberProp(float64(newEntry.Reps)),
		"Max Weight": notion.NumberProp(newEntry.MaxWeight),
		"Completed":  notion.CheckboxProp(false),
		"Exercises":  notion.RelationProp(newEntry.ExerciseID),
	}
	if newEntry.TemplateID != "" {
		props["Workout Template"] = notion.RelationProp(newEntry.TemplateID)
	}
	if newEntry.TemplateExerciseID != "" {
		props["Template Exercise"] = notion.RelationProp(newEntry.TemplateExerciseID)
	}

	page, err := r.store.CreatePage(ctx, r.weeklyDB, props)
	if err != nil {
		return nil, fmt.Errorf("create scheduled entry: %w", err)
	}

	entry := pageToEntry(*page)
	// the created page echo can lag behind the write, keep the request values
	entry.Name = newEntry.Name
	entry.Date = newEntry.Date
	entry.Sets = newEntry.Sets
	entry.Reps = newEntry.Reps
	entry.MaxWeight = newEntry.MaxWeight
	if entry.ExerciseID == "" {
		entry.ExerciseID = newEntry.ExerciseID
		entry.ExerciseIDs = []string{newEntry.ExerciseID}
	}
	return &entry, nil
}

// NewDaily carries the properties for a daily summary creation; End is the
// optional duration-derived end timestamp.
type NewDaily struct {
	Name  string
	Start string
	End   string
}

func (r *Repo) CreateDaily(ctx context.Context, newDaily NewDaily) (_ *DailySummary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.schedule.createdaily")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	props := notion.Properties{
		"Name":      notion.TitleProp(newDaily.Name),
		"Completed": notion.CheckboxProp(false),
	}
	if newDaily.End != "" {
		props["Date"] = notion.DateRangeProp(newDaily.Start, newDaily.End)
	} else {
		props["Date"] = notion.DateProp(newDaily.Start)
	}

	page, err := r.store.CreatePage(ctx, r.dailyDB, props)
	if err != nil {
		return nil, fmt.Errorf("create daily summary: %w", err)
	}

	daily := pageToDailySummary(*page)
	daily.Name = newDaily.Name
	daily.Date = DateOnly(newDaily.Start)
	return &daily, nil
}

// DailyByDate returns the summary for the given date, ErrSummaryNotFound when
// none exists. More than one match is a data smell, the first one wins.
func (r *Repo) DailyByDate(ctx context.Context, date string) (_ *DailySummary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.schedule.dailybydate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("date", date))

	filter := notion.DateEquals("Date", date)
	pages, err := r.store.QueryAll(ctx, r.dailyDB, notion.Query{Filter: &filter})
	if err != nil {
		return nil, fmt.Errorf("query daily summary for %s: %w", date, err)
	}
	if len(pages) == 0 {
		return nil, ErrSummaryNotFound
	}

	daily := pageToDailySummary(pages[0])
	return &daily, nil
}

// EntryPatch is a partial update; nil fields are left untouched.
type EntryPatch struct {
	Sets      *int
	Reps      *int
	MaxWeight *float64
	Completed *bool
}

// Empty reports whether the patch has no fields set.
func (p EntryPatch) Empty() bool {
	return p.Sets == nil && p.Reps == nil && p.MaxWeight == nil && p.Completed == nil
}

func (r *Repo) UpdateEntry(ctx context.Context, id string, patch EntryPatch) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.schedule.updateentry")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("entry.id", id))

	props := notion.Properties{}
	if patch.Sets != nil {
		props["Total Sets"] = notion.NumberProp(float64(*patch.Sets))
	}
	if patch.Reps != nil {
		props["Total Reps"] = notion.NumberProp(float64(*patch.Reps))
	}
	if patch.MaxWeight != nil {
		props["Max Weight"] = notion.NumberProp(*patch.MaxWeight)
	}
	if patch.Completed != nil {
		props["Completed"] = notion.CheckboxProp(*patch.Completed)
	}
	if len(props) == 0 {
		return nil
	}

	if _, err := r.store.UpdatePage(ctx, id, props); err != nil {
		if errors.Is(err, notion.ErrPageNotFound) {
			return ErrEntryNotFound
		}
		return fmt.Errorf("update scheduled entry %s: %w", id, err)
	}
	return nil
}

func (r *Repo) SetDailyCompleted(ctx context.Context, id string, completed bool) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.schedule.setdailycompleted")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("daily.id", id))

	if _, err := r.store.UpdatePage(ctx, id, notion.Properties{
		"Completed": notion.CheckboxProp(completed),
	}); err != nil {
		if errors.Is(err, notion.ErrPageNotFound) {
			return ErrSummaryNotFound
		}
		return fmt.Errorf("update daily summary %s: %w", id, err)
	}
	return nil
}

func (r *Repo) ArchiveEntry(ctx context.Context, id string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.schedule.archiveentry")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("entry.id", id))

	if err := r.store.ArchivePage(ctx, id); err != nil {
		if errors.Is(err, notion.ErrPageNotFound) {
			return ErrEntryNotFound
		}
		return fmt.Errorf("archive scheduled entry %s: %w", id, err)
	}
	return nil
}

// ArchiveEntriesByDateExercise archives every entry matching the
// (date, exercise) pair and returns how many it archived. Zero matches is not
// an error here, callers decide what an empty match set means.
func (r *Repo) ArchiveEntriesByDateExercise(ctx context.Context, date, exerciseID string) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.schedule.archivebypair")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("date", date),
		attribute.String("exercise.id", exerciseID),
	)

	pages, err := r.store.QueryAll(ctx, r.weeklyDB, notion.Query{
		Filter: notion.And(
			notion.DateEquals("Date", date),
			notion.RelationContains("Exercises", exerciseID),
		),
	})
	if err != nil {
		return 0, fmt.Errorf("query entries for %s / %s: %w", date, exerciseID, err)
	}

	archived := 0
	for _, page := range pages {
		if err := r.store.ArchivePage(ctx, page.ID); err != nil {
			return archived, fmt.Errorf("archive entry %s: %w", page.ID, err)
		}
		archived++
	}
	return archived, nil
}

func (r *Repo) RepointEntryDate(ctx context.Context, id, date string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.schedule.repointentry")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if _, err := r.store.UpdatePage(ctx, id, notion.Properties{
		"Date": notion.DateProp(date),
	}); err != nil {
		return fmt.Errorf("repoint entry %s to %s: %w", id, date, err)
	}
	return nil
}

func (r *Repo) RepointDailyDate(ctx context.Context, id, start, end string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.schedule.repointdaily")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var dateProp notion.Property
	if end != "" {
		dateProp = notion.DateRangeProp(start, end)
	} else {
		dateProp = notion.DateProp(start)
	}
	if _, err := r.store.UpdatePage(ctx, id, notion.Properties{
		"Date": dateProp,
	}); err != nil {
		return fmt.Errorf("repoint daily summary %s to %s: %w", id, start, err)
	}
	return nil
}

// RepointDates moves every listed entry to the new date, one mutation at a
// time with no rollback. It returns how many moved, failures are aggregated.
func (r *Repo) RepointDates(ctx context.Context, entryIDs []string, date string) (int, error) {
	var errs error
	moved := 0
	for _, id := range entryIDs {
		if err := r.RepointEntryDate(ctx, id, date); err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		moved++
	}
	return moved, errs
}
