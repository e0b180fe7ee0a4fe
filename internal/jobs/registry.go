// Package jobs holds the fixed set of job postings served by the API.
package jobs

import (
	"errors"
	"fmt"
	"strings"
)

// Posting describes one open position.
type Posting struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	Description string `json:"description"`
}

// Registry is an immutable, ordered collection of postings. It is safe for
// concurrent use because nothing mutates it after NewRegistry returns.
type Registry struct {
	postings []Posting
}

// ErrDuplicateID is returned when two postings share an id.
var ErrDuplicateID = errors.New("duplicate posting id")

// NewRegistry copies postings into a Registry, keeping their order.
func NewRegistry(postings ...Posting) (*Registry, error) {
	seen := make(map[int]struct{}, len(postings))
	for i, p := range postings {
		if _, dup := seen[p.ID]; dup {
			return nil, fmt.Errorf("posting %d: %w: %d", i, ErrDuplicateID, p.ID)
		}
		seen[p.ID] = struct{}{}
		if strings.TrimSpace(p.Title) == "" {
			return nil, fmt.Errorf("posting %d: title is required", p.ID)
		}
		if strings.TrimSpace(p.Company) == "" {
			return nil, fmt.Errorf("posting %d: company is required", p.ID)
		}
	}
	cp := make([]Posting, len(postings))
	copy(cp, postings)
	return &Registry{postings: cp}, nil
}

// All returns the postings in insertion order. The slice is a copy.
func (r *Registry) All() []Posting {
	out := make([]Posting, len(r.postings))
	copy(out, r.postings)
	return out
}

// Len reports how many postings the registry holds.
func (r *Registry) Len() int {
	return len(r.postings)
}
