package event

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ldelorme/ratematch/internal/core/language"
	"github.com/ldelorme/ratematch/internal/core/match"
	"github.com/ldelorme/ratematch/internal/core/rating"
	"github.com/ldelorme/ratematch/internal/platform/apperr"
	requestutil "github.com/ldelorme/ratematch/internal/platform/request"
	"github.com/ldelorme/ratematch/internal/platform/respond"
	"github.com/ldelorme/ratematch/pkg/pagination"
)

// Handler serves the /events subtree, including the match card and the
// event-scoped rating views.
type Handler struct {
	events  *Service
	matches *match.Service
	ratings *rating.Service
}

func NewHandler(events *Service, matches *match.Service, ratings *rating.Service) *Handler {
	return &Handler{
		events:  events,
		matches: matches,
		ratings: ratings,
	}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listEvents)
	router.Get("/{id}", handler.getEvent)
	router.Get("/{id}/matches", handler.listCard)
	router.Get("/{id}/ratings", handler.listRatings)
	router.Get("/{id}/average", handler.getAverage)
}

func (handler *Handler) listEvents(writer http.ResponseWriter, request *http.Request) {
	params, err := pagination.FromRequest(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	page, err := handler.events.ListEvents(request.Context(), params.Page)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Paginated(writer, page.Items, page.Meta)
}

func (handler *Handler) getEvent(writer http.ResponseWriter, request *http.Request) {
	eventID, err := eventIDParam(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	evt, err := handler.events.GetEvent(request.Context(), eventID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, evt)
}

func (handler *Handler) listCard(writer http.ResponseWriter, request *http.Request) {
	eventID, err := eventIDParam(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	card, err := handler.matches.ListCard(request.Context(), eventID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, card)
}

func (handler *Handler) listRatings(writer http.ResponseWriter, request *http.Request) {
	eventID, err := eventIDParam(request)
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

	page, err := handler.ratings.ListForEvent(request.Context(), eventID, lang, params.Page)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Paginated(writer, page.Items, page.Meta)
}

func (handler *Handler) getAverage(writer http.ResponseWriter, request *http.Request) {
	eventID, err := eventIDParam(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	average, err := handler.ratings.AverageForEvent(request.Context(), eventID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, rating.Average{Average: average})
}

func eventIDParam(request *http.Request) (int, error) {
	eventID, err := strconv.Atoi(requestutil.Param(request, "id"))
	if err != nil {
		return 0, apperr.ValidationError("Validation failed", apperr.FieldError{
			Field:   "id",
			Message: "Must be an integer",
		})
	}
	return eventID, nil
}
