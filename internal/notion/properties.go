package notion

// The record store models every page as a bag of typed properties. Only the
// property types this app actually reads/writes are modeled: title, rich text,
// number, checkbox, date and relation. All accessors are total: a missing or
// empty property yields the zero value of its domain type, never a nil that
// could leak into arithmetic or string operations downstream.

type RichText struct {
	PlainText string       `json:"plain_text,omitempty"`
	Text      *TextContent `json:"text,omitempty"`
}

type TextContent struct {
	Content string `json:"content"`
}

type DateValue struct {
	Start string `json:"start"`
	End   string `json:"end,omitempty"`
}

type RelationRef struct {
	ID string `json:"id"`
}

type Property struct {
	Type     string        `json:"type,omitempty"`
	Title    []RichText    `json:"title,omitempty"`
	RichText []RichText    `json:"rich_text,omitempty"`
	Number   *float64      `json:"number,omitempty"`
	Checkbox *bool         `json:"checkbox,omitempty"`
	Date     *DateValue    `json:"date,omitempty"`
	Relation []RelationRef `json:"relation,omitempty"`
}

type Properties map[string]Property

type Page struct {
	ID         string     `json:"id"`
	Archived   bool       `json:"archived,omitempty"`
	Properties Properties `json:"properties"`
}

// Prop returns the named property, or a zero Property when absent.
func (p Page) Prop(name string) Property {
	return p.Properties[name]
}

// property builders, used for create/update payloads

func TitleProp(content string) Property {
	return Property{
		Title: []RichText{
			{Text: &TextContent{Content: content}},
		},
	}
}

func NumberProp(v float64) Property {
	return Property{Number: &v}
}

func CheckboxProp(v bool) Property {
	return Property{Checkbox: &v}
}

func DateProp(start string) Property {
	return Property{Date: &DateValue{Start: start}}
}

func DateRangeProp(start, end string) Property {
	return Property{Date: &DateValue{Start: start, End: end}}
}

func RelationProp(ids ...string) Property {
	refs := make([]RelationRef, 0, len(ids))
	for _, id := range ids {
		refs = append(refs, RelationRef{ID: id})
	}
	return Property{Relation: refs}
}

// total accessors

func (p Property) PlainTitle() string {
	if len(p.Title) == 0 {
		return ""
	}
	if p.Title[0].PlainText != "" {
		return p.Title[0].PlainText
	}
	if p.Title[0].Text != nil {
		return p.Title[0].Text.Content
	}
	return ""
}

func (p Property) NumberValue() float64 {
	if p.Number == nil {
		return 0
	}
	return *p.Number
}

func (p Property) CheckboxValue() bool {
	if p.Checkbox == nil {
		return false
	}
	return *p.Checkbox
}

func (p Property) DateStart() string {
	if p.Date == nil {
		return ""
	}
	return p.Date.Start
}

func (p Property) RelationIDs() []string {
	ids := make([]string, 0, len(p.Relation))
	for _, rel := range p.Relation {
		ids = append(ids, rel.ID)
	}
	return ids
}

func (p Property) FirstRelationID() string {
	if len(p.Relation) == 0 {
		return ""
	}
	return p.Relation[0].ID
}
