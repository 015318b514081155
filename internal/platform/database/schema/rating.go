package schema

// RatingTable represents the 'rating' table
type RatingTable struct {
	Table           string
	ID              string
	MatchID         string
	LanguageCode    string
	Username        string
	Score           string
	PublicationDate string
	Opinion         string
}

// Rating is the schema definition for rating
var Rating = RatingTable{
	Table:           "rating",
	ID:              "id",
	MatchID:         "match_id",
	LanguageCode:    "language_code",
	Username:        "username",
	Score:           "score",
	PublicationDate: "publication_date",
	Opinion:         "opinion",
}

func (t RatingTable) Columns() []string {
	return []string{t.ID, t.MatchID, t.LanguageCode, t.Username, t.Score, t.PublicationDate, t.Opinion}
}
