package event

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ldelorme/ratematch/internal/platform/database/schema"
	"github.com/ldelorme/ratematch/internal/platform/dberr"
	"github.com/ldelorme/ratematch/pkg/pagination"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// ListEvents returns one page of events, most recent show first.
func (repository *PostgresRepository) ListEvents(ctx context.Context, page int) (*pagination.Page[*Event], error) {
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s`, schema.Event.Table)

	// id breaks date ties so pages partition the result set deterministically.
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		ORDER BY %s DESC, %s DESC
		LIMIT $1 OFFSET $2
	`,
		strings.Join(schema.Event.Columns(), ", "),
		schema.Event.Table,
		schema.Event.Date, schema.Event.ID,
	)

	return pagination.Paginate(ctx, page, pagination.DefaultPerPage,
		func(ctx context.Context) (int, error) {
			var total int
			if err := repository.db.QueryRow(ctx, countQuery).Scan(&total); err != nil {
				return 0, dberr.Wrap(err, "count_events")
			}
			return total, nil
		},
		func(ctx context.Context, limit, offset int) ([]*Event, error) {
			rows, err := repository.db.Query(ctx, query, limit, offset)
			if err != nil {
				return nil, dberr.Wrap(err, "list_events")
			}
			defer rows.Close()

			var events []*Event
			for rows.Next() {
				e := &Event{}
				if err := rows.Scan(&e.ID, &e.Name, &e.Promotion, &e.Date); err != nil {
					return nil, dberr.Wrap(err, "scan_event")
				}
				events = append(events, e)
			}
			if err := rows.Err(); err != nil {
				return nil, dberr.Wrap(err, "list_events")
			}
			return events, nil
		},
	)
}

func (repository *PostgresRepository) GetEvent(ctx context.Context, id int) (*Event, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = $1
	`,
		strings.Join(schema.Event.Columns(), ", "),
		schema.Event.Table,
		schema.Event.ID,
	)

	e := &Event{}
	err := repository.db.QueryRow(ctx, query, id).Scan(&e.ID, &e.Name, &e.Promotion, &e.Date)
	if err != nil {
		return nil, dberr.Wrap(err, "get_event")
	}
	return e, nil
}
