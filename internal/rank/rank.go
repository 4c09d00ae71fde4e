// Package rank orders (repository, metric) pairs.
package rank

import (
	"errors"
	"fmt"
	"sort"
)

// Entry pairs a repository name with its metric value.
type Entry struct {
	Name  string
	Value float64
}

// ErrInvalidMax reports a non-positive result limit.
var ErrInvalidMax = errors.New("max must be a positive integer")

// Top returns up to max entries sorted descending by value. The sort is
// stable: entries with equal values keep their original relative order. The
// input slice is not modified.
func Top(entries []Entry, max int) ([]Entry, error) {
	if max < 1 {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidMax, max)
	}

	out := make([]Entry, len(entries))
	copy(out, entries)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Value > out[j].Value
	})
	if len(out) > max {
		out = out[:max]
	}
	return out, nil
}
