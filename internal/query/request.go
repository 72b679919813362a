// Package query translates free-form discovery parameters into a bounded,
// deterministic database query: a compiled predicate, an ordering rule and a
// clamped pagination window. Malformed input never fails a request here;
// every parameter independently degrades to its documented default.
package query

import (
	"math"
	"net/url"
	"strconv"
	"strings"
)

// Defaults applied when a discovery parameter is absent or malformed.
const (
	DefaultPage     = 1
	DefaultPageSize = 10
)

// Request is one discovery query as derived from request parameters.
// Pointer fields are nil when the parameter was absent or unparseable.
type Request struct {
	Term         string
	City         string
	MinPrice     *float64
	MaxPrice     *float64
	MinBedrooms  *int
	MinBathrooms *int
	MinAreaM2    *float64

	Sort      string
	Direction string

	Page     int
	PageSize int
}

// ParseRequest derives a Request from raw query parameters. It is total:
// empty or non-numeric values are treated as absent, never as zero, and
// page/pageSize fall back to their defaults.
func ParseRequest(values url.Values) Request {
	return Request{
		Term:         strings.TrimSpace(values.Get("q")),
		City:         strings.TrimSpace(values.Get("city")),
		MinPrice:     parseFloat(values.Get("min")),
		MaxPrice:     parseFloat(values.Get("max")),
		MinBedrooms:  parseInt(values.Get("bedrooms")),
		MinBathrooms: parseInt(values.Get("bathrooms")),
		MinAreaM2:    parseFloat(values.Get("minArea")),
		Sort:         strings.TrimSpace(values.Get("sort")),
		Direction:    strings.TrimSpace(values.Get("dir")),
		Page:         parsePositive(values.Get("page"), DefaultPage),
		PageSize:     parsePositive(values.Get("pageSize"), DefaultPageSize),
	}
}

func parseFloat(raw string) *float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	n, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return nil
	}
	return &n
}

func parseInt(raw string) *int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &n
}

func parsePositive(raw string, fallback int) int {
	n := parseInt(raw)
	if n == nil || *n < 1 {
		return fallback
	}
	return *n
}
