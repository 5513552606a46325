package schedule

import (
	"context"
	"fmt"
	"sort"
)

type MockScheduleRepo struct {
	entries map[string]*Entry
	dailies map[string]*DailySummary
	idSeq   int
}

func NewMockScheduleRepo() *MockScheduleRepo {
	return &MockScheduleRepo{
		entries: make(map[string]*Entry),
		dailies: make(map[string]*DailySummary),
	}
}

func (r *MockScheduleRepo) nextID(prefix string) string {
	r.idSeq++
	return fmt.Sprintf("%s-%d", prefix, r.idSeq)
}

func inRange(date, from, to string) bool {
	if from == "" || to == "" {
		return true
	}
	return date >= from && date <= to
}

func (r *MockScheduleRepo) ListEntries(_ context.Context, from, to string) ([]Entry, error) {
	var entries []Entry
	for _, e := range r.entries {
		if inRange(e.Date, from, to) {
			entries = append(entries, *e)
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Date != entries[j].Date {
			return entries[i].Date > entries[j].Date
		}
		return entries[i].ID < entries[j].ID
	})
	return entries, nil
}

func (r *MockScheduleRepo) ListDailies(_ context.Context, from, to string) ([]DailySummary, error) {
	var dailies []DailySummary
	for _, d := range r.dailies {
		if inRange(d.Date, from, to) {
			dailies = append(dailies, *d)
		}
	}
	sort.Slice(dailies, func(i, j int) bool {
		if dailies[i].Date != dailies[j].Date {
			return dailies[i].Date < dailies[j].Date
		}
		return dailies[i].ID < dailies[j].ID
	})
	return dailies, nil
}

func (r *MockScheduleRepo) GetEntry(_ context.Context, id string) (*Entry, error) {
	entry, ok := r.entries[id]
	if !ok {
		return nil, ErrEntryNotFound
	}
	e := *entry
	return &e, nil
}

func (r *MockScheduleRepo) CreateEntry(_ context.Context, newEntry NewEntry) (*Entry, error) {
	entry := &Entry{
		ID:          r.nextID("entry"),
		Name:        newEntry.Name,
		Date:        newEntry.Date,
		Sets:        newEntry.Sets,
		Reps:        newEntry.Reps,
		MaxWeight:   newEntry.MaxWeight,
		TemplateID:  newEntry.TemplateID,
		ExerciseID:  newEntry.ExerciseID,
		ExerciseIDs: []string{newEntry.ExerciseID},
	}
	r.entries[entry.ID] = entry
	e := *entry
	return &e, nil
}

func (r *MockScheduleRepo) UpdateEntry(_ context.Context, id string, patch EntryPatch) error {
	entry, ok := r.entries[id]
	if !ok {
		return ErrEntryNotFound
	}
	if patch.Sets != nil {
		entry.Sets = *patch.Sets
	}
	if patch.Reps != nil {
		entry.Reps = *patch.Reps
	}
	if patch.MaxWeight != nil {
		entry.MaxWeight = *patch.MaxWeight
	}
	if patch.Completed != nil {
		entry.Completed = *patch.Completed
	}
	return nil
}

func (r *MockScheduleRepo) ArchiveEntry(_ context.Context, id string) error {
	if _, ok := r.entries[id]; !ok {
		return ErrEntryNotFound
	}
	delete(r.entries, id)
	return nil
}

func (r *MockScheduleRepo) ArchiveEntriesByDateExercise(_ context.Context, date, exerciseID string) (int, error) {
	archived := 0
	for id, e := range r.entries {
		if e.Date == date && e.ExerciseID == exerciseID {
			delete(r.entries, id)
			archived++
		}
	}
	return archived, nil
}

func (r *MockScheduleRepo) RepointDates(_ context.Context, entryIDs []string, date string) (int, error) {
	moved := 0
	for _, id := range entryIDs {
		entry, ok := r.entries[id]
		if !ok {
			continue
		}
		entry.Date = date
		moved++
	}
	return moved, nil
}

func (r *MockScheduleRepo) RepointDailyDate(_ context.Context, id, start, _ string) error {
	daily, ok := r.dailies[id]
	if !ok {
		return ErrSummaryNotFound
	}
	daily.Date = DateOnly(start)
	return nil
}

func (r *MockScheduleRepo) CreateDaily(_ context.Context, newDaily NewDaily) (*DailySummary, error) {
	daily := &DailySummary{
		ID:   r.nextID("daily"),
		Name: newDaily.Name,
		Date: DateOnly(newDaily.Start),
	}
	r.dailies[daily.ID] = daily
	d := *daily
	return &d, nil
}

func (r *MockScheduleRepo) DailyByDate(_ context.Context, date string) (*DailySummary, error) {
	for _, daily := range r.dailies {
		if daily.Date == date {
			d := *daily
			return &d, nil
		}
	}
	return nil, ErrSummaryNotFound
}

func (r *MockScheduleRepo) SetDailyCompleted(_ context.Context, id string, completed bool) error {
	daily, ok := r.dailies[id]
	if !ok {
		return ErrSummaryNotFound
	}
	daily.Completed = completed
	return nil
}
