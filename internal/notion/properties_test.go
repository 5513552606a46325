package notion_test

import (
	"testing"

	"github.com/bkovacic/liftlog/internal/notion"

	"github.com/stretchr/testify/assert"
)

func TestProperty_TotalAccessors(t *testing.T) {
	// a page with no properties at all still yields usable zero values
	page := notion.Page{ID: "empty-page"}

	assert.Equal(t, "", page.Prop("Name").PlainTitle())
	assert.Equal(t, 0.0, page.Prop("Max Weight").NumberValue())
	assert.False(t, page.Prop("Completed").CheckboxValue())
	assert.Equal(t, "", page.Prop("Date").DateStart())
	assert.Equal(t, "", page.Prop("Exercises").FirstRelationID())

	ids := page.Prop("Exercises").RelationIDs()
	assert.NotNil(t, ids)
	assert.Empty(t, ids)
}

func TestProperty_PlainTitle(t *testing.T) {
	// responses carry plain_text, create payloads carry text.content
	fromResponse := notion.Property{
		Title: []notion.RichText{{PlainText: "Bench Press"}},
	}
	assert.Equal(t, "Bench Press", fromResponse.PlainTitle())

	fromBuilder := notion.TitleProp("Bench Press")
	assert.Equal(t, "Bench Press", fromBuilder.PlainTitle())
}

func TestProperty_Builders(t *testing.T) {
	assert.Equal(t, 42.5, notion.NumberProp(42.5).NumberValue())
	assert.True(t, notion.CheckboxProp(true).CheckboxValue())
	assert.Equal(t, "2025-01-06", notion.DateProp("2025-01-06").DateStart())

	ranged := notion.DateRangeProp("2025-01-06T18:00:00", "2025-01-06T19:00:00")
	assert.Equal(t, "2025-01-06T18:00:00", ranged.Date.Start)
	assert.Equal(t, "2025-01-06T19:00:00", ranged.Date.End)

	rel := notion.RelationProp("ex-1", "ex-2")
	assert.Equal(t, []string{"ex-1", "ex-2"}, rel.RelationIDs())
	assert.Equal(t, "ex-1", rel.FirstRelationID())
}
