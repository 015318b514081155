package match

import (
	"context"
	"log/slog"

	"github.com/ldelorme/ratematch/internal/core/language"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (service *Service) GetMatch(ctx context.Context, id int) (*Match, error) {
	return service.repo.GetMatch(ctx, id)
}

func (service *Service) ListCard(ctx context.Context, eventID int) ([]*Match, error) {
	return service.repo.ListCard(ctx, eventID)
}

func (service *Service) GetDescription(ctx context.Context, matchID int, lang language.Language) (*Desc, error) {
	return service.repo.GetDescription(ctx, matchID, lang)
}
