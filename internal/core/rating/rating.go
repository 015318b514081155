package rating

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/ldelorme/ratematch/internal/core/language"
)

// Rating is one user's published opinion and score for a match.
//
// Score is arbitrary-precision: it must survive the round trip to the
// database's NUMERIC column without floating-point drift.
type Rating struct {
	ID              int               `json:"id"`
	MatchID         int               `json:"match_id"`
	Language        language.Language `json:"language_code"`
	Username        string            `json:"username"`
	Score           decimal.Decimal   `json:"score"`
	PublicationDate time.Time         `json:"publication_date"`
	Opinion         *string           `json:"opinion"`
}

// NewRating is a rating submission before the server assigns its identity.
//
// The publication date is stamped server-side at submission time and is
// never accepted from the client.
//
// Language is a pointer so that an absent language_code field is visible
// as nil and can be rejected; the zero value of the enum is a real
// language and must never stand in for "not provided".
type NewRating struct {
	MatchID  int                `json:"match_id"`
	Language *language.Language `json:"language_code"`
	Username string             `json:"username"`
	Score    decimal.Decimal    `json:"score"`
	Opinion  *string            `json:"opinion"`
}

// Average is the aggregation result for a scope. The value is absent (null
// in JSON) when the scope has no ratings yet, which is distinct from an
// average of zero.
type Average struct {
	Average decimal.NullDecimal `json:"average"`
}

// Global field names for validation
const (
	FieldMatchID  = "match_id"
	FieldLanguage = "language_code"
	FieldUsername = "username"
	FieldScore    = "score"
	FieldOpinion  = "opinion"
)

// Score bounds accepted on submission.
var (
	MinScore = decimal.NewFromInt(0)
	MaxScore = decimal.NewFromInt(10)
)
