package event

import (
	"context"

	"github.com/ldelorme/ratematch/pkg/pagination"
)

// Repository defines the data access contract.
type Repository interface {
	ListEvents(ctx context.Context, page int) (*pagination.Page[*Event], error)
	GetEvent(ctx context.Context, id int) (*Event, error)
}
