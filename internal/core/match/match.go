package match

import "github.com/ldelorme/ratematch/internal/core/language"

// Match represents one bout on an event's card.
//
// Workers is free text naming the participants.
type Match struct {
	ID      int    `json:"id"`
	EventID int    `json:"event_id"`
	Workers string `json:"workers"`
}

// Desc is a localized description of a match.
//
// At most one description exists per (match, language) pair; the schema
// enforces it with a unique constraint.
type Desc struct {
	ID          int               `json:"id"`
	MatchID     int               `json:"match_id"`
	Description string            `json:"description"`
	Language    language.Language `json:"language_code"`
}
