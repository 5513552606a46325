package exercises_test

import (
	"context"
	"testing"

	"github.com/bkovacic/liftlog/internal/exercises"
	"github.com/bkovacic/liftlog/internal/notion"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type storeSpy struct {
	pages    []notion.Page
	queryErr error

	getPage *notion.Page
	getErr  error

	updates map[string]notion.Properties
}

func (s *storeSpy) QueryAll(_ context.Context, _ string, _ notion.Query) ([]notion.Page, error) {
	return s.pages, s.queryErr
}

func (s *storeSpy) GetPage(_ context.Context, _ string) (*notion.Page, error) {
	return s.getPage, s.getErr
}

func (s *storeSpy) UpdatePage(_ context.Context, pageID string, props notion.Properties) (*notion.Page, error) {
	if s.updates == nil {
		s.updates = make(map[string]notion.Properties)
	}
	s.updates[pageID] = props
	return &notion.Page{ID: pageID, Properties: props}, nil
}

type groupNamerStub struct {
	names map[string]string
}

func (g *groupNamerStub) Name(_ context.Context, id string) string {
	return g.names[id]
}

func exercisePage(id, name string, best float64, bodyGroupIDs ...string) notion.Page {
	relations := make([]notion.RelationRef, 0, len(bodyGroupIDs))
	for _, bgID := range bodyGroupIDs {
		relations = append(relations, notion.RelationRef{ID: bgID})
	}
	return notion.Page{
		ID: id,
		Properties: notion.Properties{
			"Name":       notion.TitleProp(name),
			"Body Group": notion.Property{Type: "relation", Relation: relations},
			"Best":       notion.NumberProp(best),
		},
	}
}

func TestRepo_ListAll(t *testing.T) {
	spy := &storeSpy{
		pages: []notion.Page{
			exercisePage("ex-1", "Bench Press", 80, "bg-chest"),
			exercisePage("ex-2", "Deadlift", 120, "bg-back", "bg-legs"),
		},
	}
	repo := exercises.NewRepo(spy, "db-exercises", &groupNamerStub{})

	list, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Bench Press", list[0].Name)
	// the plain shape only carries the first related body group
	assert.Equal(t, "bg-back", list[1].BodyGroupID)
}

func TestRepo_ListByBodyGroups(t *testing.T) {
	spy := &storeSpy{
		pages: []notion.Page{
			exercisePage("ex-1", "Bench Press", 80, "bg-chest"),
			exercisePage("ex-2", "Deadlift", 120, "bg-back", "bg-legs"),
			exercisePage("ex-3", "Squats", 100, "bg-legs"),
			exercisePage("ex-4", "Plank", 0),
		},
	}
	namer := &groupNamerStub{names: map[string]string{
		"bg-back": "Back",
		"bg-legs": "Legs",
	}}
	repo := exercises.NewRepo(spy, "db-exercises", namer)

	details, err := repo.ListByBodyGroups(context.Background(), []string{"bg-legs"})
	require.NoError(t, err)
	require.Len(t, details, 2)

	assert.Equal(t, "Deadlift", details[0].Name)
	assert.Equal(t, []string{"bg-back", "bg-legs"}, details[0].BodyGroupIDs)
	// the display name comes from the first relation, not the matched one
	assert.Equal(t, "Back", details[0].BodyGroupName)
	assert.Equal(t, 120.0, details[0].Best)

	assert.Equal(t, "Squats", details[1].Name)
	assert.Equal(t, "Legs", details[1].BodyGroupName)
}

func TestRepo_ListByBodyGroups_NoMatches(t *testing.T) {
	spy := &storeSpy{
		pages: []notion.Page{
			exercisePage("ex-1", "Bench Press", 80, "bg-chest"),
		},
	}
	repo := exercises.NewRepo(spy, "db-exercises", &groupNamerStub{})

	details, err := repo.ListByBodyGroups(context.Background(), []string{"bg-arms"})
	require.NoError(t, err)
	assert.Empty(t, details)
}

func TestRepo_Best(t *testing.T) {
	t.Run("stored value", func(t *testing.T) {
		page := exercisePage("ex-1", "Bench Press", 85, "bg-chest")
		repo := exercises.NewRepo(&storeSpy{getPage: &page}, "db-exercises", &groupNamerStub{})

		best, err := repo.Best(context.Background(), "ex-1")
		require.NoError(t, err)
		assert.Equal(t, 85.0, best)
	})

	t.Run("missing property defaults to zero", func(t *testing.T) {
		page := notion.Page{ID: "ex-1", Properties: notion.Properties{}}
		repo := exercises.NewRepo(&storeSpy{getPage: &page}, "db-exercises", &groupNamerStub{})

		best, err := repo.Best(context.Background(), "ex-1")
		require.NoError(t, err)
		assert.Zero(t, best)
	})

	t.Run("store error", func(t *testing.T) {
		repo := exercises.NewRepo(&storeSpy{getErr: assert.AnError}, "db-exercises", &groupNamerStub{})

		_, err := repo.Best(context.Background(), "ex-1")
		assert.Error(t, err)
	})
}

func TestRepo_SetBest(t *testing.T) {
	spy := &storeSpy{}
	repo := exercises.NewRepo(spy, "db-exercises", &groupNamerStub{})

	require.NoError(t, repo.SetBest(context.Background(), "ex-1", 92.5))

	require.Contains(t, spy.updates, "ex-1")
	props := spy.updates["ex-1"]
	require.Contains(t, props, "Best")
	require.NotNil(t, props["Best"].Number)
	assert.Equal(t, 92.5, *props["Best"].Number)
}
