package match

import (
	"context"

	"github.com/ldelorme/ratematch/internal/core/language"
)

// Repository defines the data access contract.
type Repository interface {
	GetMatch(ctx context.Context, id int) (*Match, error)
	ListCard(ctx context.Context, eventID int) ([]*Match, error)
	GetDescription(ctx context.Context, matchID int, lang language.Language) (*Desc, error)
}
