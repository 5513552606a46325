package templates

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/bkovacic/liftlog/internal/notion"
	"github.com/bkovacic/liftlog/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

type store interface {
	QueryAll(ctx context.Context, databaseID string, q notion.Query) ([]notion.Page, error)
	GetPage(ctx context.Context, pageID string) (*notion.Page, error)
}

// StoreRepo reads templates from the record store: a templates collection plus
// a child template-exercises collection joined by the Template relation.
type StoreRepo struct {
	store               store
	templatesDB         string
	templateExercisesDB string
	exercisesDB         string
}

func NewStoreRepo(store store, templatesDB, templateExercisesDB, exercisesDB string) *StoreRepo {
	return &StoreRepo{
		store:               store,
		templatesDB:         templatesDB,
		templateExercisesDB: templateExercisesDB,
		exercisesDB:         exercisesDB,
	}
}

// childExercise is a template-exercise row before the join; pageID keeps the
// sort total when two rows share the same Order value.
type childExercise struct {
	TemplateExercise
	templateID string
	pageID     string
}

func pageToChildExercise(page notion.Page) childExercise {
	return childExercise{
		TemplateExercise: TemplateExercise{
			ExerciseID:  page.Prop("Exercise").FirstRelationID(),
			DefaultSets: int(page.Prop("Default Sets").NumberValue()),
			DefaultReps: int(page.Prop("Default Reps").NumberValue()),
			Order:       int(page.Prop("Order").NumberValue()),
		},
		templateID: page.Prop("Template").FirstRelationID(),
		pageID:     page.ID,
	}
}

func pageToTemplate(page notion.Page) Template {
	return Template{
		ID:            page.ID,
		Name:          page.Prop("Name").PlainTitle(),
		BodyGroupIDs:  page.Prop("Body Groups").RelationIDs(),
		EstimatedTime: int(page.Prop("Estimated Time").NumberValue()),
		Exercises:     make([]TemplateExercise, 0),
	}
}

func (r *StoreRepo) List(ctx context.Context) (_ []Template, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.templates.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	templatePages, err := r.store.QueryAll(ctx, r.templatesDB, notion.Query{
		Sorts: []notion.Sort{{Property: "Name", Direction: notion.SortAscending}},
	})
	if err != nil {
		return nil, fmt.Errorf("query templates: %w", err)
	}

	childPages, err := r.store.QueryAll(ctx, r.templateExercisesDB, notion.Query{
		Sorts: []notion.Sort{{Property: "Order", Direction: notion.SortAscending}},
	})
	if err != nil {
		return nil, fmt.Errorf("query template exercises: %w", err)
	}

	exerciseNames, err := r.exerciseNames(ctx)
	if err != nil {
		return nil, err
	}

	childrenByTemplate := make(map[string][]childExercise)
	for _, page := range childPages {
		child := pageToChildExercise(page)
		if child.templateID == "" || child.ExerciseID == "" {
			continue
		}
		child.ExerciseName = exerciseNames[child.ExerciseID]
		childrenByTemplate[child.templateID] = append(childrenByTemplate[child.templateID], child)
	}

	templates := make([]Template, 0, len(templatePages))
	for _, page := range templatePages {
		template := pageToTemplate(page)
		template.Exercises = sortedExercises(childrenByTemplate[template.ID])
		templates = append(templates, template)
	}

	span.SetAttributes(attribute.Int("templates.count", len(templates)))
	return templates, nil
}

func (r *StoreRepo) Get(ctx context.Context, id string) (_ *Template, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.templates.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("template.id", id))

	page, err := r.store.GetPage(ctx, id)
	if err != nil {
		if errors.Is(err, notion.ErrPageNotFound) {
			return nil, ErrTemplateNotFound
		}
		return nil, fmt.Errorf("get template %s: %w", id, err)
	}
	template := pageToTemplate(*page)

	childPages, err := r.store.QueryAll(ctx, r.templateExercisesDB, notion.Query{
		Filter: &notion.Filter{
			Property: "Template",
			Relation: &notion.RelationCondition{Contains: id},
		},
		Sorts: []notion.Sort{{Property: "Order", Direction: notion.SortAscending}},
	})
	if err != nil {
		return nil, fmt.Errorf("query template %s exercises: %w", id, err)
	}

	exerciseNames, err := r.exerciseNames(ctx)
	if err != nil {
		return nil, err
	}

	children := make([]childExercise, 0, len(childPages))
	for _, childPage := range childPages {
		child := pageToChildExercise(childPage)
		if child.ExerciseID == "" {
			log.Warnf("template %s: template exercise %s has no exercise relation, skipping", id, childPage.ID)
			continue
		}
		child.ExerciseName = exerciseNames[child.ExerciseID]
		children = append(children, child)
	}
	template.Exercises = sortedExercises(children)

	return &template, nil
}

func (r *StoreRepo) Create(_ context.Context, _ Template) (*Template, error) {
	return nil, ErrReadOnlyTemplates
}

func (r *StoreRepo) Update(_ context.Context, _ string, _ Template) (*Template, error) {
	return nil, ErrReadOnlyTemplates
}

func (r *StoreRepo) Delete(_ context.Context, _ string) error {
	return ErrReadOnlyTemplates
}

func (r *StoreRepo) exerciseNames(ctx context.Context) (map[string]string, error) {
	exercisePages, err := r.store.QueryAll(ctx, r.exercisesDB, notion.Query{})
	if err != nil {
		return nil, fmt.Errorf("query exercises: %w", err)
	}

	names := make(map[string]string, len(exercisePages))
	for _, page := range exercisePages {
		names[page.ID] = page.Prop("Name").PlainTitle()
	}
	return names, nil
}

// sortedExercises orders by the Order property; the store-assigned order of
// equal values is undefined, so page id breaks ties to keep the sort total.
func sortedExercises(children []childExercise) []TemplateExercise {
	sort.SliceStable(children, func(i, j int) bool {
		if children[i].Order != children[j].Order {
			return children[i].Order < children[j].Order
		}
		return children[i].pageID < children[j].pageID
	})

	exercises := make([]TemplateExercise, 0, len(children))
	for _, child := range children {
		exercises = append(exercises, child.TemplateExercise)
	}
	return exercises
}
