package query

import (
	"fmt"
	"strings"
)

// Predicate is the store-agnostic description of which listings match a
// discovery request: a conjunction of independently built clauses over
// numbered placeholders.
type Predicate struct {
	clauses []string
	args    []any
}

// add appends one conjunctive clause. The expression uses %d verbs for its
// placeholders, numbered from the predicate's current argument count, so
// clauses can be built independently and conjoined in any combination.
func (p *Predicate) add(expr string, args ...any) {
	positions := make([]any, len(args))
	for i := range args {
		positions[i] = len(p.args) + i + 1
	}
	p.clauses = append(p.clauses, fmt.Sprintf(expr, positions...))
	p.args = append(p.args, args...)
}

// Where renders the predicate as a SQL WHERE fragment (without the WHERE
// keyword) plus its arguments. An empty predicate renders as TRUE so it can
// be interpolated unconditionally.
func (p *Predicate) Where() (string, []any) {
	if len(p.clauses) == 0 {
		return "TRUE", nil
	}
	return strings.Join(p.clauses, " AND "), p.args
}

// Empty reports whether no clause was contributed.
func (p *Predicate) Empty() bool {
	return len(p.clauses) == 0
}

// Compile converts a discovery request into a predicate. Each recognized
// parameter contributes one independent clause; absent parameters contribute
// nothing. The free-text term matches title or description
// case-insensitively, the city is a case-insensitive exact match, price
// bounds apply only when supplied, and bedrooms/bathrooms/area are inclusive
// lower bounds.
func Compile(req Request) *Predicate {
	p := &Predicate{}
	if req.Term != "" {
		pattern := "%" + escapeLike(req.Term) + "%"
		p.add("(title ILIKE $%[1]d OR description ILIKE $%[1]d)", pattern)
	}
	if req.City != "" {
		p.add("LOWER(city) = LOWER($%d)", req.City)
	}
	if req.MinPrice != nil {
		p.add("price >= $%d", *req.MinPrice)
	}
	if req.MaxPrice != nil {
		p.add("price <= $%d", *req.MaxPrice)
	}
	if req.MinBedrooms != nil {
		p.add("bedrooms >= $%d", *req.MinBedrooms)
	}
	if req.MinBathrooms != nil {
		p.add("bathrooms >= $%d", *req.MinBathrooms)
	}
	if req.MinAreaM2 != nil {
		p.add("area_m2 >= $%d", *req.MinAreaM2)
	}
	return p
}

// escapeLike neutralizes LIKE metacharacters in user input so a search term
// matches literally.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "%", `\%`)
	s = strings.ReplaceAll(s, "_", `\_`)
	return s
}
