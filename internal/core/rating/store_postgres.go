package rating

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/ldelorme/ratematch/internal/core/language"
	"github.com/ldelorme/ratematch/internal/platform/apperr"
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

// ratingColumns is the SELECT list shared by every listing, qualified with
// the rating table alias used in the join variant.
func ratingColumns() string {
	columns := schema.Rating.Columns()
	for i, column := range columns {
		columns[i] = "r." + column
	}
	return strings.Join(columns, ", ")
}

// The FROM/WHERE fragments below are shared between each listing's count
// and fetch queries, so both always see the identical predicate.

// allRatingsFrom filters the whole rating table by language.
func allRatingsFrom() string {
	return fmt.Sprintf("FROM %s r WHERE r.%s = $1", schema.Rating.Table, schema.Rating.LanguageCode)
}

// eventRatingsFrom joins through match so the event scope covers exactly
// the union of the event's per-match ratings, language-filtered.
func eventRatingsFrom() string {
	return fmt.Sprintf("FROM %s r JOIN %s m ON r.%s = m.%s WHERE m.%s = $1 AND r.%s = $2",
		schema.Rating.Table, schema.Match.Table,
		schema.Rating.MatchID, schema.Match.ID,
		schema.Match.EventID, schema.Rating.LanguageCode,
	)
}

func matchRatingsFrom() string {
	return fmt.Sprintf("FROM %s r WHERE r.%s = $1 AND r.%s = $2",
		schema.Rating.Table, schema.Rating.MatchID, schema.Rating.LanguageCode)
}

func countQuery(from string) string {
	return "SELECT count(*) " + from
}

// listQuery builds the fetch query for a fragment: newest publication first,
// id breaking ties, with LIMIT/OFFSET placed after the fragment's argCount
// predicate arguments.
func listQuery(from string, argCount int) string {
	return fmt.Sprintf("SELECT %s %s ORDER BY r.%s DESC, r.%s DESC LIMIT $%d OFFSET $%d",
		ratingColumns(), from,
		schema.Rating.PublicationDate, schema.Rating.ID,
		argCount+1, argCount+2,
	)
}

func (repository *PostgresRepository) ListRatings(ctx context.Context, lang language.Language, page int) (*pagination.Page[*Rating], error) {
	return repository.paginate(ctx, page, allRatingsFrom(), []any{lang})
}

func (repository *PostgresRepository) ListForEvent(ctx context.Context, eventID int, lang language.Language, page int) (*pagination.Page[*Rating], error) {
	return repository.paginate(ctx, page, eventRatingsFrom(), []any{eventID, lang})
}

func (repository *PostgresRepository) ListForMatch(ctx context.Context, matchID int, lang language.Language, page int) (*pagination.Page[*Rating], error) {
	return repository.paginate(ctx, page, matchRatingsFrom(), []any{matchID, lang})
}

// paginate runs the shared count/fetch pair over a caller-supplied FROM/WHERE
// fragment.
func (repository *PostgresRepository) paginate(ctx context.Context, page int, from string, args []any) (*pagination.Page[*Rating], error) {
	count := countQuery(from)
	query := listQuery(from, len(args))

	return pagination.Paginate(ctx, page, pagination.DefaultPerPage,
		func(ctx context.Context) (int, error) {
			var total int
			if err := repository.db.QueryRow(ctx, count, args...).Scan(&total); err != nil {
				return 0, dberr.Wrap(err, "count_ratings")
			}
			return total, nil
		},
		func(ctx context.Context, limit, offset int) ([]*Rating, error) {
			fetchArgs := append(append([]any{}, args...), limit, offset)

			rows, err := repository.db.Query(ctx, query, fetchArgs...)
			if err != nil {
				return nil, dberr.Wrap(err, "list_ratings")
			}
			defer rows.Close()

			var ratings []*Rating
			for rows.Next() {
				r := &Rating{}
				if err := rows.Scan(&r.ID, &r.MatchID, &r.Language, &r.Username, &r.Score, &r.PublicationDate, &r.Opinion); err != nil {
					return nil, dberr.Wrap(err, "scan_rating")
				}
				ratings = append(ratings, r)
			}
			if err := rows.Err(); err != nil {
				return nil, dberr.Wrap(err, "list_ratings")
			}
			return ratings, nil
		},
	)
}

func (repository *PostgresRepository) Insert(ctx context.Context, r *Rating) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING %s
	`,
		schema.Rating.Table,
		schema.Rating.MatchID, schema.Rating.LanguageCode, schema.Rating.Username,
		schema.Rating.Score, schema.Rating.PublicationDate, schema.Rating.Opinion,
		schema.Rating.ID,
	)

	err := repository.db.QueryRow(ctx, query,
		r.MatchID, r.Language, r.Username, r.Score, r.PublicationDate, r.Opinion,
	).Scan(&r.ID)
	if err != nil {
		// The (match_id, username) unique constraint doubles as the
		// one-rating-per-user rule; give it a caller-usable identity.
		if dberr.IsUniqueViolation(err) {
			return apperr.Conflict("This username has already rated this match")
		}
		return dberr.Wrap(err, "insert_rating")
	}
	return nil
}

func (repository *PostgresRepository) AverageForMatch(ctx context.Context, matchID int) (decimal.NullDecimal, error) {
	query := fmt.Sprintf(`SELECT avg(%s) FROM %s WHERE %s = $1`,
		schema.Rating.Score, schema.Rating.Table, schema.Rating.MatchID)

	// avg over zero rows yields one NULL row, not ErrNoRows.
	var average decimal.NullDecimal
	if err := repository.db.QueryRow(ctx, query, matchID).Scan(&average); err != nil {
		return decimal.NullDecimal{}, dberr.Wrap(err, "average_for_match")
	}
	return average, nil
}

func (repository *PostgresRepository) AverageForEvent(ctx context.Context, eventID int) (decimal.NullDecimal, error) {
	query := fmt.Sprintf(`
		SELECT avg(r.%s)
		FROM %s r
		JOIN %s m ON r.%s = m.%s
		WHERE m.%s = $1
	`,
		schema.Rating.Score,
		schema.Rating.Table,
		schema.Match.Table,
		schema.Rating.MatchID, schema.Match.ID,
		schema.Match.EventID,
	)

	var average decimal.NullDecimal
	if err := repository.db.QueryRow(ctx, query, eventID).Scan(&average); err != nil {
		return decimal.NullDecimal{}, dberr.Wrap(err, "average_for_event")
	}
	return average, nil
}
