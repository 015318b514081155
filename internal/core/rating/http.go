package rating

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ldelorme/ratematch/internal/core/language"
	requestutil "github.com/ldelorme/ratematch/internal/platform/request"
	"github.com/ldelorme/ratematch/internal/platform/respond"
	"github.com/ldelorme/ratematch/pkg/pagination"
)

// Handler serves the global /ratings listing and the submission endpoint.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listRatings)
	router.Post("/", handler.submitRating)
}

func (handler *Handler) listRatings(writer http.ResponseWriter, request *http.Request) {
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

	page, err := handler.service.ListRatings(request.Context(), lang, params.Page)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Paginated(writer, page.Items, page.Meta)
}

func (handler *Handler) submitRating(writer http.ResponseWriter, request *http.Request) {
	var input NewRating
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	submitted, err := handler.service.SubmitRating(request.Context(), &input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, submitted)
}
