package model

import "time"

// MatchRecord pairs one lost report with one found report whose descriptive
// text cleared the similarity threshold. Matches are ephemeral: they are
// rebuilt on every computation and never persisted.
//
// ID is the deterministic composite key "<lost.ID>_<found.ID>"; a given pair
// appears at most once per computation.
type MatchRecord struct {
	ID      string     `json:"id"`
	Score   float64    `json:"score"`
	Created time.Time  `json:"created"`
	Status  string     `json:"status,omitempty"`
	Lost    ItemRecord `json:"lost"`
	Found   ItemRecord `json:"found"`
}
