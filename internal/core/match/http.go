package match

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ldelorme/ratematch/internal/core/language"
	"github.com/ldelorme/ratematch/internal/core/rating"
	"github.com/ldelorme/ratematch/internal/platform/apperr"
	requestutil "github.com/ldelorme/ratematch/internal/platform/request"
	"github.com/ldelorme/ratematch/internal/platform/respond"
	"github.com/ldelorme/ratematch/pkg/pagination"
)

// Handler serves the /matches subtree, including localized descriptions and
// the match-scoped rating views.
type Handler struct {
	matches *Service
	ratings *rating.Service
}

func NewHandler(matches *Service, ratings *rating.Service) *Handler {
	return &Handler{
		matches: matches,
		ratings: ratings,
	}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/{id}", handler.getMatch)
	router.Get("/{id}/description", handler.getDescription)
	router.Get("/{id}/ratings", handler.listRatings)
	router.Get("/{id}/average", handler.getAverage)
}

func (handler *Handler) getMatch(writer http.ResponseWriter, request *http.Request) {
	matchID, err := matchIDParam(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	m, err := handler.matches.GetMatch(request.Context(), matchID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, m)
}

func (handler *Handler) getDescription(writer http.ResponseWriter, request *http.Request) {
	matchID, err := matchIDParam(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	lang, err := language.FromRequest(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	desc, err := handler.matches.GetDescription(request.Context(), matchID, lang)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, desc)
}

func (handler *Handler) listRatings(writer http.ResponseWriter, request *http.Request) {
	matchID, err := matchIDParam(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	params, err := pagination.FromRequest(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	lang, err := language.FromRequest(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	page, err := handler.ratings.ListForMatch(request.Context(), matchID, lang, params.Page)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Paginated(writer, page.Items, page.Meta)
}

func (handler *Handler) getAverage(writer http.ResponseWriter, request *http.Request) {
	matchID, err := matchIDParam(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	average, err := handler.ratings.AverageForMatch(request.Context(), matchID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, rating.Average{Average: average})
}

func matchIDParam(request *http.Request) (int, error) {
	matchID, err := strconv.Atoi(requestutil.Param(request, "id"))
	if err != nil {
		return 0, apperr.ValidationError("Validation failed", apperr.FieldError{
			Field:   "id",
			Message: "Must be an integer",
		})
	}
	return matchID, nil
}
