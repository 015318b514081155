package language

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ldelorme/ratematch/internal/platform/respond"
)

// FromRequest parses the "lang" query parameter.
//
// An absent parameter defaults to English, matching the behavior clients
// historically relied on; a present but unknown code is still a hard error.
func FromRequest(request *http.Request) (Language, error) {
	raw := request.URL.Query().Get("lang")
	if raw == "" {
		return English, nil
	}
	return Parse(raw)
}

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listLanguages)
}

// listLanguages exposes the closed language set so clients can populate
// pickers without hardcoding the codes.
func (handler *Handler) listLanguages(writer http.ResponseWriter, request *http.Request) {
	type entry struct {
		Code string `json:"code"`
		Name string `json:"name"`
	}

	entries := make([]entry, 0, len(All()))
	for _, lang := range All() {
		entries = append(entries, entry{Code: lang.Code(), Name: lang.Name()})
	}

	respond.OK(writer, entries)
}
