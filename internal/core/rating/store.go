package rating

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/ldelorme/ratematch/internal/core/language"
	"github.com/ldelorme/ratematch/pkg/pagination"
)

// Repository defines the data access contract.
type Repository interface {
	// ListRatings pages through all ratings in one language, newest first.
	ListRatings(ctx context.Context, lang language.Language, page int) (*pagination.Page[*Rating], error)
	// ListForEvent restricts the listing to ratings of matches under one event.
	ListForEvent(ctx context.Context, eventID int, lang language.Language, page int) (*pagination.Page[*Rating], error)
	// ListForMatch restricts the listing to one match.
	ListForMatch(ctx context.Context, matchID int, lang language.Language, page int) (*pagination.Page[*Rating], error)

	// Insert persists a fully-stamped rating and fills its ID.
	Insert(ctx context.Context, r *Rating) error

	// AverageForMatch returns the mean score over one match, absent when the
	// match has no ratings.
	AverageForMatch(ctx context.Context, matchID int) (decimal.NullDecimal, error)
	// AverageForEvent returns the mean score over every match of an event.
	AverageForEvent(ctx context.Context, eventID int) (decimal.NullDecimal, error)
}
