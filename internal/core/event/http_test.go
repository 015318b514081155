package event_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ldelorme/ratematch/internal/core/event"
	"github.com/ldelorme/ratematch/internal/core/language"
	"github.com/ldelorme/ratematch/internal/core/match"
	"github.com/ldelorme/ratematch/internal/core/rating"
	"github.com/ldelorme/ratematch/internal/platform/dberr"
	"github.com/ldelorme/ratematch/pkg/pagination"
)

// fakeEventRepository serves a fixed event list from memory.
type fakeEventRepository struct {
	events []*event.Event
}

func (f *fakeEventRepository) ListEvents(ctx context.Context, page int) (*pagination.Page[*event.Event], error) {
	return pagination.Paginate(ctx, page, pagination.DefaultPerPage,
		func(ctx context.Context) (int, error) { return len(f.events), nil },
		func(ctx context.Context, limit, offset int) ([]*event.Event, error) {
			var out []*event.Event
			for i := offset; i < len(f.events) && i < offset+limit; i++ {
				out = append(out, f.events[i])
			}
			return out, nil
		},
	)
}

func (f *fakeEventRepository) GetEvent(ctx context.Context, id int) (*event.Event, error) {
	for _, e := range f.events {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, dberr.ErrNotFound
}

type fakeMatchRepository struct{}

func (f *fakeMatchRepository) GetMatch(ctx context.Context, id int) (*match.Match, error) {
	return nil, dberr.ErrNotFound
}

func (f *fakeMatchRepository) ListCard(ctx context.Context, eventID int) ([]*match.Match, error) {
	return []*match.Match{{ID: 1, EventID: eventID, Workers: "A vs B"}}, nil
}

func (f *fakeMatchRepository) GetDescription(ctx context.Context, matchID int, lang language.Language) (*match.Desc, error) {
	return nil, dberr.ErrNotFound
}

type fakeRatingRepository struct{}

func (f *fakeRatingRepository) ListRatings(ctx context.Context, lang language.Language, page int) (*pagination.Page[*rating.Rating], error) {
	return &pagination.Page[*rating.Rating]{Items: []*rating.Rating{}}, nil
}

func (f *fakeRatingRepository) ListForEvent(ctx context.Context, eventID int, lang language.Language, page int) (*pagination.Page[*rating.Rating], error) {
	return &pagination.Page[*rating.Rating]{Items: []*rating.Rating{}}, nil
}

func (f *fakeRatingRepository) ListForMatch(ctx context.Context, matchID int, lang language.Language, page int) (*pagination.Page[*rating.Rating], error) {
	return &pagination.Page[*rating.Rating]{Items: []*rating.Rating{}}, nil
}

func (f *fakeRatingRepository) Insert(ctx context.Context, r *rating.Rating) error {
	return nil
}

func (f *fakeRatingRepository) AverageForMatch(ctx context.Context, matchID int) (decimal.NullDecimal, error) {
	return decimal.NullDecimal{}, nil
}

func (f *fakeRatingRepository) AverageForEvent(ctx context.Context, eventID int) (decimal.NullDecimal, error) {
	return decimal.NullDecimal{}, nil
}

func newTestRouter(events []*event.Event) http.Handler {
	log := slog.Default()

	eventService := event.NewService(&fakeEventRepository{events: events}, log)
	matchService := match.NewService(&fakeMatchRepository{}, log)
	ratingService := rating.NewService(&fakeRatingRepository{}, log)

	router := chi.NewRouter()
	router.Route("/events", event.NewHandler(eventService, matchService, ratingService).RegisterRoutes)
	return router
}

func seedEvents(n int) []*event.Event {
	events := make([]*event.Event, 0, n)
	for i := 1; i <= n; i++ {
		events = append(events, &event.Event{
			ID:        i,
			Name:      "Show",
			Promotion: "Promo",
			Date:      time.Date(2026, 1, i, 0, 0, 0, 0, time.UTC),
		})
	}
	return events
}

/*
TestListEvents_Paginated checks the list envelope: one page of items plus
the pagination metadata block.
*/
func TestListEvents_Paginated(t *testing.T) {
	router := newTestRouter(seedEvents(6)) // 2 pages at 4 per page

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest("GET", "/events?page=2", nil))

	require.Equal(t, http.StatusOK, recorder.Code)

	var body struct {
		Data []json.RawMessage `json:"data"`
		Meta pagination.Meta   `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))

	assert.Len(t, body.Data, 2)
	assert.Equal(t, 2, body.Meta.Page)
	assert.Equal(t, 6, body.Meta.Total)
	assert.Equal(t, 2, body.Meta.TotalPages)
}

/*
TestListEvents_InvalidPage checks that page=0 is rejected with a 400.
*/
func TestListEvents_InvalidPage(t *testing.T) {
	router := newTestRouter(seedEvents(2))

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest("GET", "/events?page=0", nil))

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

/*
TestGetEvent_NotFound checks the typed 404 for an unknown event id.
*/
func TestGetEvent_NotFound(t *testing.T) {
	router := newTestRouter(seedEvents(1))

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest("GET", "/events/99", nil))

	require.Equal(t, http.StatusNotFound, recorder.Code)

	var body struct {
		Code string `json:"code"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, "NOT_FOUND", body.Code)
}

/*
TestGetEventAverage_Empty checks that an event without ratings reports a
null average, not zero.
*/
func TestGetEventAverage_Empty(t *testing.T) {
	router := newTestRouter(seedEvents(1))

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest("GET", "/events/1/average", nil))

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"data": {"average": null}}`, recorder.Body.String())
}
