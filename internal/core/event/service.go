package event

import (
	"context"
	"log/slog"

	"github.com/ldelorme/ratematch/pkg/pagination"
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

func (service *Service) ListEvents(ctx context.Context, page int) (*pagination.Page[*Event], error) {
	return service.repo.ListEvents(ctx, page)
}

func (service *Service) GetEvent(ctx context.Context, id int) (*Event, error) {
	return service.repo.GetEvent(ctx, id)
}
