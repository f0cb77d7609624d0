package catalog

import (
	"encoding/json"
	"sort"
	"strings"
)

// Criteria is rebuilt from user input on every interaction. The zero value
// matches every room.
type Criteria struct {
	Query              string
	RequiredFeatures   []string
	RequiredFacilities []string
	PriceMin           int
	PriceMax           *int // nil means no upper bound
	MinAdults          int  // 0 means any
	MinChildren        int  // 0 means any
}

// Normalize clamps out-of-range values instead of rejecting them.
func (c Criteria) Normalize() Criteria {
	if c.PriceMin < 0 {
		c.PriceMin = 0
	}
	if c.PriceMax != nil {
		max := *c.PriceMax
		if max < 0 {
			max = 0
		}
		if c.PriceMin > max {
			c.PriceMin = max
		}
		c.PriceMax = &max
	}
	if c.MinAdults < 0 {
		c.MinAdults = 0
	}
	if c.MinChildren < 0 {
		c.MinChildren = 0
	}
	return c
}

// Key identifies the result set of the criteria. Label order and query case
// do not matter.
func (c Criteria) Key() string {
	c = c.Normalize()

	key := struct {
		Query      string   `json:"q"`
		Features   []string `json:"f"`
		Facilities []string `json:"fa"`
		PriceMin   int      `json:"min"`
		PriceMax   *int     `json:"max"`
		Adults     int      `json:"a"`
		Children   int      `json:"c"`
	}{
		Query:      strings.ToLower(c.Query),
		Features:   sortedLabels(c.RequiredFeatures),
		Facilities: sortedLabels(c.RequiredFacilities),
		PriceMin:   c.PriceMin,
		PriceMax:   c.PriceMax,
		Adults:     c.MinAdults,
		Children:   c.MinChildren,
	}

	// strings, ints and slices of them always marshal
	raw, _ := json.Marshal(key)
	return string(raw)
}

func sortedLabels(labels []string) []string {
	out := append([]string{}, labels...)
	sort.Strings(out)
	return out
}
