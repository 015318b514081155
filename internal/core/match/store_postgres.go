package match

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ldelorme/ratematch/internal/core/language"
	"github.com/ldelorme/ratematch/internal/platform/database/schema"
	"github.com/ldelorme/ratematch/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) GetMatch(ctx context.Context, id int) (*Match, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = $1
	`,
		strings.Join(schema.Match.Columns(), ", "),
		schema.Match.Table,
		schema.Match.ID,
	)

	m := &Match{}
	err := repository.db.QueryRow(ctx, query, id).Scan(&m.ID, &m.EventID, &m.Workers)
	if err != nil {
		return nil, dberr.Wrap(err, "get_match")
	}
	return m, nil
}

// ListCard returns every match on an event, in card order (insertion order).
func (repository *PostgresRepository) ListCard(ctx context.Context, eventID int) ([]*Match, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = $1
		ORDER BY %s ASC
	`,
		strings.Join(schema.Match.Columns(), ", "),
		schema.Match.Table,
		schema.Match.EventID,
		schema.Match.ID,
	)

	rows, err := repository.db.Query(ctx, query, eventID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_card")
	}
	defer rows.Close()

	var card []*Match
	for rows.Next() {
		m := &Match{}
		if err := rows.Scan(&m.ID, &m.EventID, &m.Workers); err != nil {
			return nil, dberr.Wrap(err, "scan_match")
		}
		card = append(card, m)
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "list_card")
	}
	return card, nil
}

func (repository *PostgresRepository) GetDescription(ctx context.Context, matchID int, lang language.Language) (*Desc, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = $1 AND %s = $2
	`,
		strings.Join(schema.MatchDesc.Columns(), ", "),
		schema.MatchDesc.Table,
		schema.MatchDesc.MatchID, schema.MatchDesc.LanguageCode,
	)

	d := &Desc{}
	err := repository.db.QueryRow(ctx, query, matchID, lang).Scan(&d.ID, &d.MatchID, &d.Description, &d.Language)
	if err != nil {
		return nil, dberr.Wrap(err, "get_match_description")
	}
	return d, nil
}
