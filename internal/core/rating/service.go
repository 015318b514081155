package rating

import (
	"context"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ldelorme/ratematch/internal/core/language"
	"github.com/ldelorme/ratematch/internal/platform/validate"
	"github.com/ldelorme/ratematch/pkg/pagination"
)

type Service struct {
	repo   Repository
	logger *slog.Logger

	// now is swappable in tests; it stamps publication dates.
	now func() time.Time
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (service *Service) ListRatings(ctx context.Context, lang language.Language, page int) (*pagination.Page[*Rating], error) {
	return service.repo.ListRatings(ctx, lang, page)
}

func (service *Service) ListForEvent(ctx context.Context, eventID int, lang language.Language, page int) (*pagination.Page[*Rating], error) {
	return service.repo.ListForEvent(ctx, eventID, lang, page)
}

func (service *Service) ListForMatch(ctx context.Context, matchID int, lang language.Language, page int) (*pagination.Page[*Rating], error) {
	return service.repo.ListForMatch(ctx, matchID, lang, page)
}

// SubmitRating validates a submission, stamps its publication date and
// persists it. The client never supplies the publication date.
func (service *Service) SubmitRating(ctx context.Context, input *NewRating) (*Rating, error) {
	validator := &validate.Validator{}

	validator.Custom(FieldMatchID, input.MatchID <= 0, "Must reference a match").
		Custom(FieldLanguage, input.Language == nil, "This field is required").
		Required(FieldUsername, input.Username).
		MaxLen(FieldUsername, input.Username, 32).
		Custom(FieldScore, input.Score.LessThan(MinScore) || input.Score.GreaterThan(MaxScore), "Must be between 0 and 10")

	if input.Opinion != nil {
		validator.MaxLen(FieldOpinion, *input.Opinion, 4000)
	}

	if validator.HasErrors() {
		return nil, validator.Err()
	}

	r := &Rating{
		MatchID:         input.MatchID,
		Language:        *input.Language,
		Username:        input.Username,
		Score:           input.Score,
		PublicationDate: service.now(),
		Opinion:         input.Opinion,
	}

	if err := service.repo.Insert(ctx, r); err != nil {
		return nil, err
	}

	service.logger.Info("rating_submitted",
		slog.Int("match_id", r.MatchID),
		slog.String("username", r.Username),
		slog.String("score", r.Score.String()),
	)
	return r, nil
}

func (service *Service) AverageForMatch(ctx context.Context, matchID int) (decimal.NullDecimal, error) {
	return service.repo.AverageForMatch(ctx, matchID)
}

func (service *Service) AverageForEvent(ctx context.Context, eventID int) (decimal.NullDecimal, error) {
	return service.repo.AverageForEvent(ctx, eventID)
}
