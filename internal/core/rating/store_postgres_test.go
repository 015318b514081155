package rating

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

/*
TestEventRatingsFrom pins the event-scope semantics: the fragment joins
ratings to their matches and filters on the match's event plus the rating's
language, so the event listing is exactly the union of the event's
per-match listings for that language.
*/
func TestEventRatingsFrom(t *testing.T) {
	from := eventRatingsFrom()

	assert.Equal(t, "FROM rating r JOIN match m ON r.match_id = m.id WHERE m.event_id = $1 AND r.language_code = $2", from)
}

/*
TestMatchRatingsFrom pins the match-scope predicate: match plus language.
*/
func TestMatchRatingsFrom(t *testing.T) {
	assert.Equal(t, "FROM rating r WHERE r.match_id = $1 AND r.language_code = $2", matchRatingsFrom())
}

/*
TestListQuery_Ordering pins the listing order shared by every scope: newest
publication first, id breaking ties, with the window placeholders numbered
after the predicate arguments.
*/
func TestListQuery_Ordering(t *testing.T) {
	query := listQuery(eventRatingsFrom(), 2)

	assert.Contains(t, query, "ORDER BY r.publication_date DESC, r.id DESC")
	assert.Contains(t, query, "LIMIT $3 OFFSET $4")
}

/*
TestCountAndListShareFragment verifies each scope's count and fetch queries
are built from the same FROM/WHERE fragment, so the page total and the page
rows can never disagree on the predicate.
*/
func TestCountAndListShareFragment(t *testing.T) {
	for _, from := range []string{allRatingsFrom(), eventRatingsFrom(), matchRatingsFrom()} {
		assert.Equal(t, "SELECT count(*) "+from, countQuery(from))
		assert.Contains(t, listQuery(from, 2), " "+from+" ")
	}
}
