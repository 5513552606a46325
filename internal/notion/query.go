package notion

const (
	SortAscending  = "ascending"
	SortDescending = "descending"
)

type DateCondition struct {
	Equals     string `json:"equals,omitempty"`
	OnOrAfter  string `json:"on_or_after,omitempty"`
	OnOrBefore string `json:"on_or_before,omitempty"`
}

type RelationCondition struct {
	Contains string `json:"contains,omitempty"`
}

type Filter struct {
	Property string             `json:"property,omitempty"`
	Date     *DateCondition     `json:"date,omitempty"`
	Relation *RelationCondition `json:"relation,omitempty"`
	And      []Filter           `json:"and,omitempty"`
}

func And(filters ...Filter) *Filter {
	return &Filter{And: filters}
}

func DateEquals(property, date string) Filter {
	return Filter{Property: property, Date: &DateCondition{Equals: date}}
}

func DateOnOrAfter(property, date string) Filter {
	return Filter{Property: property, Date: &DateCondition{OnOrAfter: date}}
}

func DateOnOrBefore(property, date string) Filter {
	return Filter{Property: property, Date: &DateCondition{OnOrBefore: date}}
}

func RelationContains(property, id string) Filter {
	return Filter{Property: property, Relation: &RelationCondition{Contains: id}}
}

type Sort struct {
	Property  string `json:"property"`
	Direction string `json:"direction"`
}

type Query struct {
	Filter      *Filter `json:"filter,omitempty"`
	Sorts       []Sort  `json:"sorts,omitempty"`
	StartCursor string  `json:"start_cursor,omitempty"`
	PageSize    int     `json:"page_size,omitempty"`
}

type QueryResult struct {
	Results    []Page `json:"results"`
	HasMore    bool   `json:"has_more"`
	NextCursor string `json:"next_cursor"`
}
