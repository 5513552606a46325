package schedule_test

import (
	"context"
	"testing"

	"github.com/bkovacic/liftlog/internal/notion"
	"github.com/bkovacic/liftlog/internal/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// storeSpy records the calls the repo makes against the record store and
// returns canned pages.
type storeSpy struct {
	queryResult []notion.Page
	queryErr    error
	getResult   *notion.Page
	getErr      error

	queries  []notion.Query
	created  []notion.Properties
	updates  map[string]notion.Properties
	archived []string
}

func newStoreSpy() *storeSpy {
	return &storeSpy{updates: make(map[string]notion.Properties)}
}

func (s *storeSpy) QueryAll(_ context.Context, _ string, q notion.Query) ([]notion.Page, error) {
	s.queries = append(s.queries, q)
	return s.queryResult, s.queryErr
}

func (s *storeSpy) GetPage(_ context.Context, _ string) (*notion.Page, error) {
	return s.getResult, s.getErr
}

func (s *storeSpy) CreatePage(_ context.Context, _ string, props notion.Properties) (*notion.Page, error) {
	s.created = append(s.created, props)
	return &notion.Page{ID: "created-page", Properties: props}, nil
}

func (s *storeSpy) UpdatePage(_ context.Context, pageID string, props notion.Properties) (*notion.Page, error) {
	s.updates[pageID] = props
	return &notion.Page{ID: pageID, Properties: props}, nil
}

func (s *storeSpy) ArchivePage(_ context.Context, pageID string) error {
	s.archived = append(s.archived, pageID)
	return nil
}

func entryPage(id, name, date string) notion.Page {
	sets, reps, weight := 4.0, 8.0, 60.0
	return notion.Page{
		ID: id,
		Properties: notion.Properties{
			"Name":             notion.TitleProp(name),
			"Date":             notion.DateProp(date),
			"Total Sets":       notion.NumberProp(sets),
			"Total Reps":       notion.NumberProp(reps),
			"Max Weight":       notion.NumberProp(weight),
			"Completed":        notion.CheckboxProp(false),
			"Exercises":        notion.RelationProp("ex-bench"),
			"Workout Template": notion.RelationProp("tpl-1"),
		},
	}
}

func TestRepo_ListEntries_DateRangeFilter(t *testing.T) {
	spy := newStoreSpy()
	spy.queryResult = []notion.Page{entryPage("entry-1", "Chest & Triceps - Bench Press", "2025-01-06")}
	repo := schedule.NewRepo(spy, "weekly-db", "daily-db")

	entries, err := repo.ListEntries(context.Background(), "2025-01-06", "2025-01-12")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "entry-1", entries[0].ID)
	assert.Equal(t, "2025-01-06", entries[0].Date)
	assert.Equal(t, 4, entries[0].Sets)
	assert.Equal(t, 8, entries[0].Reps)
	assert.Equal(t, 60.0, entries[0].MaxWeight)
	assert.Equal(t, "ex-bench", entries[0].ExerciseID)
	assert.Equal(t, "tpl-1", entries[0].TemplateID)

	require.Len(t, spy.queries, 1)
	query := spy.queries[0]
	require.NotNil(t, query.Filter)
	require.Len(t, query.Filter.And, 2)
	assert.Equal(t, "2025-01-06", query.Filter.And[0].Date.OnOrAfter)
	assert.Equal(t, "2025-01-12", query.Filter.And[1].Date.OnOrBefore)
	require.Len(t, query.Sorts, 1)
	assert.Equal(t, notion.SortDescending, query.Sorts[0].Direction)
}

func TestRepo_ListEntries_NoBoundsMeansNoFilter(t *testing.T) {
	spy := newStoreSpy()
	repo := schedule.NewRepo(spy, "weekly-db", "daily-db")

	_, err := repo.ListEntries(context.Background(), "", "")
	require.NoError(t, err)

	require.Len(t, spy.queries, 1)
	assert.Nil(t, spy.queries[0].Filter)
}

func TestRepo_ListEntries_MissingPropertiesDefaulted(t *testing.T) {
	spy := newStoreSpy()
	spy.queryResult = []notion.Page{{ID: "bare-entry", Properties: notion.Properties{}}}
	repo := schedule.NewRepo(spy, "weekly-db", "daily-db")

	entries, err := repo.ListEntries(context.Background(), "", "")
	require.NoError(t, err)
	require.Len(t, entries, 1)

	entry := entries[0]
	assert.Empty(t, entry.Name)
	assert.Empty(t, entry.Date)
	assert.Zero(t, entry.Sets)
	assert.Zero(t, entry.MaxWeight)
	assert.False(t, entry.Completed)
	assert.Empty(t, entry.ExerciseID)
	assert.NotNil(t, entry.ExerciseIDs)
	assert.Empty(t, entry.ExerciseIDs)
}

func TestRepo_UpdateEntry_DynamicPatch(t *testing.T) {
	spy := newStoreSpy()
	repo := schedule.NewRepo(spy, "weekly-db", "daily-db")

	completed := true
	err := repo.UpdateEntry(context.Background(), "entry-1", schedule.EntryPatch{Completed: &completed})
	require.NoError(t, err)

	props := spy.updates["entry-1"]
	require.Len(t, props, 1)
	assert.True(t, props["Completed"].CheckboxValue())
}

func TestRepo_UpdateEntry_EmptyPatchIsNoop(t *testing.T) {
	spy := newStoreSpy()
	repo := schedule.NewRepo(spy, "weekly-db", "daily-db")

	require.NoError(t, repo.UpdateEntry(context.Background(), "entry-1", schedule.EntryPatch{}))
	assert.Empty(t, spy.updates)
}

func TestRepo_GetEntry_NotFound(t *testing.T) {
	spy := newStoreSpy()
	spy.getErr = notion.ErrPageNotFound
	repo := schedule.NewRepo(spy, "weekly-db", "daily-db")

	_, err := repo.GetEntry(context.Background(), "no-such-entry")
	assert.ErrorIs(t, err, schedule.ErrEntryNotFound)
}

func TestRepo_ArchiveEntriesByDateExercise(t *testing.T) {
	spy := newStoreSpy()
	spy.queryResult = []notion.Page{
		entryPage("entry-1", "Chest & Triceps - Bench Press", "2025-01-06"),
		entryPage("entry-2", "Chest & Triceps - Bench Press", "2025-01-06"),
	}
	repo := schedule.NewRepo(spy, "weekly-db", "daily-db")

	archived, err := repo.ArchiveEntriesByDateExercise(context.Background(), "2025-01-06", "ex-bench")
	require.NoError(t, err)
	assert.Equal(t, 2, archived)
	assert.Equal(t, []string{"entry-1", "entry-2"}, spy.archived)

	require.Len(t, spy.queries, 1)
	filter := spy.queries[0].Filter
	require.NotNil(t, filter)
	require.Len(t, filter.And, 2)
	assert.Equal(t, "2025-01-06", filter.And[0].Date.Equals)
	assert.Equal(t, "ex-bench", filter.And[1].Relation.Contains)
}

func TestRepo_CreateDaily_DateWindow(t *testing.T) {
	spy := newStoreSpy()
	repo := schedule.NewRepo(spy, "daily-db", "daily-db")

	daily, err := repo.CreateDaily(context.Background(), schedule.NewDaily{
		Name:  "Chest & Triceps",
		Start: "2025-01-06T18:00:00",
		End:   "2025-01-06T19:00:00",
	})
	require.NoError(t, err)
	assert.Equal(t, "2025-01-06", daily.Date)
	assert.False(t, daily.Completed)

	require.Len(t, spy.created, 1)
	props := spy.created[0]
	require.NotNil(t, props["Date"].Date)
	assert.Equal(t, "2025-01-06T18:00:00", props["Date"].Date.Start)
	assert.Equal(t, "2025-01-06T19:00:00", props["Date"].Date.End)
	assert.False(t, props["Completed"].CheckboxValue())
}

func TestRepo_DailyByDate(t *testing.T) {
	spy := newStoreSpy()
	repo := schedule.NewRepo(spy, "weekly-db", "daily-db")

	_, err := repo.DailyByDate(context.Background(), "2025-01-06")
	assert.ErrorIs(t, err, schedule.ErrSummaryNotFound)

	spy.queryResult = []notion.Page{{
		ID: "daily-1",
		Properties: notion.Properties{
			"Name":      notion.TitleProp("Chest & Triceps"),
			"Date":      notion.DateProp("2025-01-06T18:00:00+01:00"),
			"Completed": notion.CheckboxProp(true),
		},
	}}

	daily, err := repo.DailyByDate(context.Background(), "2025-01-06")
	require.NoError(t, err)
	assert.Equal(t, "daily-1", daily.ID)
	// time component is normalized away
	assert.Equal(t, "2025-01-06", daily.Date)
	assert.True(t, daily.Completed)

	require.Len(t, spy.queries, 2)
	assert.Equal(t, "2025-01-06", spy.queries[1].Filter.Date.Equals)
}

func TestRepo_RepointDates(t *testing.T) {
	spy := newStoreSpy()
	repo := schedule.NewRepo(spy, "weekly-db", "daily-db")

	moved, err := repo.RepointDates(context.Background(), []string{"entry-1", "entry-2"}, "2025-01-08")
	require.NoError(t, err)
	assert.Equal(t, 2, moved)

	assert.Equal(t, "2025-01-08", spy.updates["entry-1"]["Date"].Date.Start)
	assert.Equal(t, "2025-01-08", spy.updates["entry-2"]["Date"].Date.Start)
}
