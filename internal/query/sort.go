package query

// Ordering is a deterministic ordering rule resolved from a sort key and
// direction.
type Ordering struct {
	Column     string
	Descending bool
}

// DefaultSortKey is used when the requested key is absent or not on the
// allow-list.
const DefaultSortKey = "createdAt"

// sortColumns maps the public sort keys onto the columns they order by.
// Keys outside this allow-list fall back to the default rather than being
// passed through, so arbitrary fields are never exposed to ordering.
var sortColumns = map[string]string{
	"createdAt": "created_at",
	"price":     "price",
}

// ResolveSort converts a sort key and direction into an ordering rule.
// Any direction other than the ascending token orders descending.
func ResolveSort(key, direction string) Ordering {
	column, ok := sortColumns[key]
	if !ok {
		column = sortColumns[DefaultSortKey]
	}
	return Ordering{
		Column:     column,
		Descending: direction != "asc",
	}
}

// OrderBy renders the rule as a SQL ORDER BY fragment (without the keyword).
func (o Ordering) OrderBy() string {
	if o.Descending {
		return o.Column + " DESC"
	}
	return o.Column + " ASC"
}
