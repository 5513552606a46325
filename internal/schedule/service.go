package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bkovacic/liftlog/internal/telemetry/metrics"
	"github.com/bkovacic/liftlog/internal/telemetry/tracing"
	"github.com/bkovacic/liftlog/internal/templates"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/multierr"
)

// sessionStartHour anchors the duration-derived daily summary timestamp;
// workouts are assumed to start in the evening.
const sessionStartHour = 18

type scheduleRepo interface {
	ListEntries(ctx context.Context, from, to string) ([]Entry, error)
	GetEntry(ctx context.Context, id string) (*Entry, error)
	CreateEntry(ctx context.Context, newEntry NewEntry) (*Entry, error)
	UpdateEntry(ctx context.Context, id string, patch EntryPatch) error
	ArchiveEntry(ctx context.Context, id string) error
	ArchiveEntriesByDateExercise(ctx context.Context, date, exerciseID string) (int, error)
	RepointDates(ctx context.Context, entryIDs []string, date string) (int, error)
	RepointDailyDate(ctx context.Context, id, start, end string) error
	CreateDaily(ctx context.Context, newDaily NewDaily) (*DailySummary, error)
	DailyByDate(ctx context.Context, date string) (*DailySummary, error)
	SetDailyCompleted(ctx context.Context, id string, completed bool) error
}

type templatesGetter interface {
	Get(ctx context.Context, id string) (*templates.Template, error)
}

type exercisesBests interface {
	Best(ctx context.Context, exerciseID string) (float64, error)
	SetBest(ctx context.Context, exerciseID string, best float64) error
}

// Service runs the multi-step workflows that keep the scheduled entries and
// the daily summary for a date consistent. None of the workflows are atomic:
// mutations are sequential record-store calls with no rollback.
type Service struct {
	repo      scheduleRepo
	templates templatesGetter
	exercises exercisesBests
	metrics   *metrics.Manager
}

func NewService(
	repo scheduleRepo,
	templatesRepo templatesGetter,
	exercisesRepo exercisesBests,
	metricsManager *metrics.Manager,
) *Service {
	return &Service{
		repo:      repo,
		templates: templatesRepo,
		exercises: exercisesRepo,
		metrics:   metricsManager,
	}
}

type InstantiateParams struct {
	TemplateID      string
	Date            string
	CustomExercises []templates.TemplateExercise
}

type InstantiateResult struct {
	Workouts     []Entry
	DailyID      string
	DailyCreated bool
}

// Instantiate creates one scheduled entry per exercise of the template (or of
// the override list, which replaces the template's entirely) on the given
// date, lazily creating the daily summary first. An unknown template mutates
// nothing; later per-entry failures leave the created prefix in place.
func (s *Service) Instantiate(ctx context.Context, params InstantiateParams) (_ *InstantiateResult, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.schedule.instantiate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("template.id", params.TemplateID),
		attribute.String("date", params.Date),
	)

	template, err := s.templates.Get(ctx, params.TemplateID)
	if err != nil {
		return nil, fmt.Errorf("resolve template %s: %w", params.TemplateID, err)
	}

	exerciseList := template.Exercises
	if len(params.CustomExercises) > 0 {
		exerciseList = params.CustomExercises
	}

	result := &InstantiateResult{Workouts: make([]Entry, 0, len(exerciseList))}

	daily, err := s.repo.DailyByDate(ctx, params.Date)
	switch {
	case err == nil:
		result.DailyID = daily.ID
	case errors.Is(err, ErrSummaryNotFound):
		start, end := sessionWindow(params.Date, template.EstimatedTime)
		created, createErr := s.repo.CreateDaily(ctx, NewDaily{
			Name:  template.Name,
			Start: start,
			End:   end,
		})
		if createErr != nil {
			return nil, fmt.Errorf("create daily summary for %s: %w", params.Date, createErr)
		}
		result.DailyID = created.ID
		result.DailyCreated = true
	default:
		return nil, fmt.Errorf("look up daily summary for %s: %w", params.Date, err)
	}

	var errs error
	for _, exercise := range exerciseList {
		if exercise.ExerciseID == "" {
			log.Warnf("instantiate template %q on %s: exercise %q has no id, skipping",
				template.Name, params.Date, exercise.ExerciseName)
			continue
		}
		entry, createErr := s.repo.CreateEntry(ctx, NewEntry{
			Name:       CompositeName(template.Name, exercise.ExerciseName),
			Date:       params.Date,
			Sets:       exercise.DefaultSets,
			Reps:       exercise.DefaultReps,
			MaxWeight:  0,
			ExerciseID: exercise.ExerciseID,
			TemplateID: template.ID,
		})
		if createErr != nil {
			errs = multierr.Append(errs, fmt.Errorf("create entry for %s: %w", exercise.ExerciseName, createErr))
			continue
		}
		result.Workouts = append(result.Workouts, *entry)
	}

	s.metrics.CounterWorkoutsCreated.Add(float64(len(result.Workouts)))
	span.SetAttributes(attribute.Int("workouts.created", len(result.Workouts)))
	return result, errs
}

type CreateEntryParams struct {
	TemplateID         string
	TemplateExerciseID string
	ExerciseID         string
	ExerciseName       string
	Date               string
	Sets               int
	Reps               int
	MaxWeight          float64
}

// CreateEntry creates a single scheduled entry, resolving the template name
// for the composite title and linking the template relation when known.
func (s *Service) CreateEntry(ctx context.Context, params CreateEntryParams) (_ *Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.schedule.createentry")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	name := params.ExerciseName
	if params.TemplateID != "" {
		template, err := s.templates.Get(ctx, params.TemplateID)
		if err != nil {
			return nil, fmt.Errorf("resolve template %s: %w", params.TemplateID, err)
		}
		name = CompositeName(template.Name, params.ExerciseName)
	}

	entry, err := s.repo.CreateEntry(ctx, NewEntry{
		Name:               name,
		Date:               params.Date,
		Sets:               params.Sets,
		Reps:               params.Reps,
		MaxWeight:          params.MaxWeight,
		ExerciseID:         params.ExerciseID,
		TemplateID:         params.TemplateID,
		TemplateExerciseID: params.TemplateExerciseID,
	})
	if err != nil {
		return nil, err
	}

	s.metrics.CounterWorkoutsCreated.Inc()
	return entry, nil
}

type UpdateResult struct {
	NewPersonalBest bool
}

// UpdateEntry applies a partial patch to an entry. When the patch carries a
// max weight strictly greater than the exercise's stored personal best, the
// best is raised to it and the result is flagged. Equal or lower never writes
// the best. The comparison is read-then-write with no lock, two concurrent
// sessions on the same exercise can race.
func (s *Service) UpdateEntry(ctx context.Context, id string, patch EntryPatch) (_ *UpdateResult, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.schedule.updateentry")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("entry.id", id))

	entry, err := s.repo.GetEntry(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.repo.UpdateEntry(ctx, id, patch); err != nil {
		return nil, err
	}

	result := &UpdateResult{}
	if patch.MaxWeight == nil || *patch.MaxWeight <= 0 || entry.ExerciseID == "" {
		return result, nil
	}

	// personal best maintenance is best effort, the entry update already
	// succeeded
	best, err := s.exercises.Best(ctx, entry.ExerciseID)
	if err != nil {
		log.Errorf("read personal best for exercise %s: %s", entry.ExerciseID, err)
		return result, nil
	}
	if *patch.MaxWeight > best {
		if err := s.exercises.SetBest(ctx, entry.ExerciseID, *patch.MaxWeight); err != nil {
			log.Errorf("update personal best for exercise %s: %s", entry.ExerciseID, err)
			return result, nil
		}
		result.NewPersonalBest = true
		s.metrics.CounterPersonalBests.Inc()
	}
	return result, nil
}

type DeleteParams struct {
	PageID     string
	Date       string
	ExerciseID string
}

// Delete archives scheduled entries: by page id (unknown id is an error), or
// by (date, exercise) pair, archiving every match. Returns the archive count.
func (s *Service) Delete(ctx context.Context, params DeleteParams) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.schedule.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if params.PageID != "" {
		if err := s.repo.ArchiveEntry(ctx, params.PageID); err != nil {
			return 0, err
		}
		return 1, nil
	}

	return s.repo.ArchiveEntriesByDateExercise(ctx, params.Date, params.ExerciseID)
}

// Move re-points every scheduled entry on fromDate to toDate. A plain move is
// additive, entries already on toDate stay where they are; a swap captures
// both sides first and exchanges them. Each affected daily summary gets its
// date rewritten with a timestamp derived from the template now occupying
// that date. Mutations are sequential with no rollback, the returned count
// says how many entries actually moved.
func (s *Service) Move(ctx context.Context, fromDate, toDate string, isSwap bool) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.schedule.move")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("from", fromDate),
		attribute.String("to", toDate),
		attribute.Bool("swap", isSwap),
	)

	fromEntries, err := s.repo.ListEntries(ctx, fromDate, fromDate)
	if err != nil {
		return 0, fmt.Errorf("list entries on %s: %w", fromDate, err)
	}

	if !isSwap {
		moved, errs := s.repo.RepointDates(ctx, entryIDs(fromEntries), toDate)
		errs = multierr.Append(errs, s.repointSummary(ctx, fromDate, toDate, s.entriesDuration(ctx, fromEntries)))
		s.metrics.CounterWorkoutsMoved.Add(float64(moved))
		return moved, errs
	}

	// capture the destination side before anything mutates
	toEntries, err := s.repo.ListEntries(ctx, toDate, toDate)
	if err != nil {
		return 0, fmt.Errorf("list entries on %s: %w", toDate, err)
	}
	fromDuration := s.entriesDuration(ctx, fromEntries)
	toDuration := s.entriesDuration(ctx, toEntries)

	moved, errs := s.repo.RepointDates(ctx, entryIDs(fromEntries), toDate)
	movedBack, backErrs := s.repo.RepointDates(ctx, entryIDs(toEntries), fromDate)
	moved += movedBack
	errs = multierr.Append(errs, backErrs)

	// summaries keep their dates, their timestamps are recomputed for the
	// side that just arrived
	errs = multierr.Append(errs, s.retimeSummary(ctx, fromDate, toDuration))
	errs = multierr.Append(errs, s.retimeSummary(ctx, toDate, fromDuration))

	s.metrics.CounterWorkoutsMoved.Add(float64(moved))
	return moved, errs
}

// SetDailyCompleted flips the summary checkbox for a date; no summary means
// nothing was ever scheduled there.
func (s *Service) SetDailyCompleted(ctx context.Context, date string, completed bool) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.schedule.setdailycompleted")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("date", date))

	daily, err := s.repo.DailyByDate(ctx, date)
	if err != nil {
		return err
	}
	return s.repo.SetDailyCompleted(ctx, daily.ID, completed)
}

// repointSummary moves the summary of fromDate to toDate; absent summary is
// fine, the date may never have been instantiated through a template.
func (s *Service) repointSummary(ctx context.Context, fromDate, toDate string, durationMin int) error {
	daily, err := s.repo.DailyByDate(ctx, fromDate)
	if err != nil {
		if errors.Is(err, ErrSummaryNotFound) {
			return nil
		}
		return err
	}
	start, end := sessionWindow(toDate, durationMin)
	return s.repo.RepointDailyDate(ctx, daily.ID, start, end)
}

// retimeSummary rewrites a summary's date in place with a fresh
// duration-derived window.
func (s *Service) retimeSummary(ctx context.Context, date string, durationMin int) error {
	daily, err := s.repo.DailyByDate(ctx, date)
	if err != nil {
		if errors.Is(err, ErrSummaryNotFound) {
			return nil
		}
		return err
	}
	start, end := sessionWindow(date, durationMin)
	return s.repo.RepointDailyDate(ctx, daily.ID, start, end)
}

// entriesDuration resolves the estimated duration of the template behind a
// date's entries. Unknown or unresolvable templates degrade to zero, which
// yields a bare-date timestamp.
func (s *Service) entriesDuration(ctx context.Context, entries []Entry) int {
	for _, entry := range entries {
		if entry.TemplateID == "" {
			continue
		}
		template, err := s.templates.Get(ctx, entry.TemplateID)
		if err != nil {
			log.Warnf("resolve template %s for duration: %s", entry.TemplateID, err)
			return 0
		}
		return template.EstimatedTime
	}
	return 0
}

func entryIDs(entries []Entry) []string {
	ids := make([]string, 0, len(entries))
	for _, entry := range entries {
		ids = append(ids, entry.ID)
	}
	return ids
}

// sessionWindow derives the summary's date value: a bare date when no
// duration is tracked, otherwise an evening start plus the estimated
// duration.
func sessionWindow(date string, durationMin int) (start, end string) {
	if durationMin <= 0 {
		return date, ""
	}
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date, ""
	}
	startAt := day.Add(sessionStartHour * time.Hour)
	endAt := startAt.Add(time.Duration(durationMin) * time.Minute)
	const layout = "2006-01-02T15:04:05"
	return startAt.Format(layout), endAt.Format(layout)
}
