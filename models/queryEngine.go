package models

import (
	"strings"
	"time"
)

type QueryOptions struct {
	// StrictMatching turns a phrase naming two different manufacturers (or
	// types) into an AmbiguousQueryError. Otherwise the last matching token wins.
	StrictMatching bool
}

// MatchResult holds the best exact match and an optional cross-manufacturer
// alternative. A zero MatchResult means nothing matched.
type MatchResult struct {
	Best        *Item
	Alternative *Item
}

func (r MatchResult) Found() bool {
	return r.Best != nil
}

// QueryEngine answers "manufacturer type" phrases against a fixed inventory.
type QueryEngine struct {
	items         []Item
	manufacturers map[string]bool
	types         map[string]bool
	opts          QueryOptions
}

func NewQueryEngine(inv *Inventory, opts QueryOptions) *QueryEngine {
	e := &QueryEngine{
		items:         inv.Items(),
		manufacturers: map[string]bool{},
		types:         map[string]bool{},
		opts:          opts,
	}
	for _, item := range e.items {
		e.manufacturers[strings.ToLower(item.Manufacturer)] = true
		e.types[strings.ToLower(item.Type)] = true
	}
	return e
}

// Query finds the most expensive available item of the named manufacturer and
// type, plus the available item of the same type from another manufacturer
// whose price is closest to it. Availability is judged against now.
func (e *QueryEngine) Query(phrase string, now time.Time) (MatchResult, error) {
	manufacturer, itemType, err := e.resolve(strings.Fields(strings.ToLower(phrase)))
	if err != nil {
		return MatchResult{}, err
	}
	if manufacturer == "" || itemType == "" {
		return MatchResult{}, nil
	}

	var best *Item
	for i := range e.items {
		item := &e.items[i]
		if !item.IsAvailableAt(now) ||
			!strings.EqualFold(item.Manufacturer, manufacturer) ||
			!strings.EqualFold(item.Type, itemType) {
			continue
		}
		// strict comparison keeps the first of equally priced items
		if best == nil || item.Price > best.Price {
			best = item
		}
	}
	if best == nil {
		return MatchResult{}, nil
	}

	var alt *Item
	for i := range e.items {
		item := &e.items[i]
		if !item.IsAvailableAt(now) ||
			strings.EqualFold(item.Manufacturer, manufacturer) ||
			!strings.EqualFold(item.Type, itemType) {
			continue
		}
		if alt == nil {
			alt = item
			continue
		}
		d, altD := priceDistance(item.Price, best.Price), priceDistance(alt.Price, best.Price)
		if d < altD || (d == altD && item.ItemId < alt.ItemId) {
			alt = item
		}
	}

	result := MatchResult{Best: copyItem(best)}
	if alt != nil {
		result.Alternative = copyItem(alt)
	}
	return result, nil
}

// resolve picks the manufacturer and type named by tokens. Tokens are already
// lower case; both return values are lower case or empty.
func (e *QueryEngine) resolve(tokens []string) (string, string, error) {
	var manufacturers, types []string
	for _, token := range tokens {
		if e.manufacturers[token] {
			manufacturers = appendDistinct(manufacturers, token)
		}
		if e.types[token] {
			types = appendDistinct(types, token)
		}
	}
	if e.opts.StrictMatching {
		if len(manufacturers) > 1 {
			return "", "", &AmbiguousQueryError{Field: "manufacturer", Candidates: manufacturers}
		}
		if len(types) > 1 {
			return "", "", &AmbiguousQueryError{Field: "type", Candidates: types}
		}
	}
	return lastOrEmpty(manufacturers), lastOrEmpty(types), nil
}

// appendDistinct moves v to the end of list so the last element is always the
// most recently matched token.
func appendDistinct(list []string, v string) []string {
	for i, existing := range list {
		if existing == v {
			list = append(list[:i], list[i+1:]...)
			break
		}
	}
	return append(list, v)
}

func lastOrEmpty(list []string) string {
	if len(list) == 0 {
		return ""
	}
	return list[len(list)-1]
}

func priceDistance(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}

func copyItem(item *Item) *Item {
	c := *item
	return &c
}
