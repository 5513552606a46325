package exercises

import (
	"context"
	"fmt"

	"github.com/bkovacic/liftlog/internal/notion"
	"github.com/bkovacic/liftlog/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

type store interface {
	QueryAll(ctx context.Context, databaseID string, q notion.Query) ([]notion.Page, error)
	GetPage(ctx context.Context, pageID string) (*notion.Page, error)
	UpdatePage(ctx context.Context, pageID string, props notion.Properties) (*notion.Page, error)
}

type groupNamer interface {
	Name(ctx context.Context, id string) string
}

type Repo struct {
	store      store
	databaseID string
	groups     groupNamer
}

func NewRepo(store store, databaseID string, groups groupNamer) *Repo {
	return &Repo{
		store:      store,
		databaseID: databaseID,
		groups:     groups,
	}
}

func (r *Repo) ListAll(ctx context.Context) (_ []Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.listall")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	pages, err := r.store.QueryAll(ctx, r.databaseID, notion.Query{})
	if err != nil {
		return nil, fmt.Errorf("query exercises: %w", err)
	}

	exercises := make([]Exercise, 0, len(pages))
	for _, page := range pages {
		exercises = append(exercises, pageToExercise(page))
	}
	return exercises, nil
}

// ListByBodyGroups fetches every exercise and keeps those belonging to any of
// the given body groups. The store has no membership query for this, so it is
// a full scan plus filter; fine at personal-use record counts.
func (r *Repo) ListByBodyGroups(ctx context.Context, bodyGroupIDs []string) (_ []ExerciseDetails, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.listbybodygroups")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("bodygroups.count", len(bodyGroupIDs)))

	pages, err := r.store.QueryAll(ctx, r.databaseID, notion.Query{})
	if err != nil {
		return nil, fmt.Errorf("query exercises: %w", err)
	}

	requested := make(map[string]bool, len(bodyGroupIDs))
	for _, id := range bodyGroupIDs {
		requested[id] = true
	}

	exercises := make([]ExerciseDetails, 0)
	for _, page := range pages {
		details := pageToExerciseDetails(page)

		member := false
		for _, groupID := range details.BodyGroupIDs {
			if requested[groupID] {
				member = true
				break
			}
		}
		if !member {
			continue
		}

		if len(details.BodyGroupIDs) > 0 {
			details.BodyGroupName = r.groups.Name(ctx, details.BodyGroupIDs[0])
		}
		exercises = append(exercises, details)
	}

	return exercises, nil
}

// Best reads the stored personal best for an exercise (0 when unset).
func (r *Repo) Best(ctx context.Context, exerciseID string) (_ float64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.best")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("exercise.id", exerciseID))

	page, err := r.store.GetPage(ctx, exerciseID)
	if err != nil {
		return 0, fmt.Errorf("get exercise %s: %w", exerciseID, err)
	}
	return page.Prop("Best").NumberValue(), nil
}

// SetBest writes the given value as-is. The monotonic strictly-greater check
// belongs to the scheduling service, not here.
func (r *Repo) SetBest(ctx context.Context, exerciseID string, best float64) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.setbest")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("exercise.id", exerciseID))
	span.SetAttributes(attribute.Float64("best", best))

	if _, err := r.store.UpdatePage(ctx, exerciseID, notion.Properties{
		"Best": notion.NumberProp(best),
	}); err != nil {
		return fmt.Errorf("update exercise %s best: %w", exerciseID, err)
	}

	log.Debugf("exercise %s personal best set to %.1f", exerciseID, best)
	return nil
}
