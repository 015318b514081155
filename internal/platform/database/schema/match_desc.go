package schema

// MatchDescTable represents the 'match_desc' table
type MatchDescTable struct {
	Table        string
	ID           string
	MatchID      string
	Description  string
	LanguageCode string
}

// MatchDesc is the schema definition for match_desc
var MatchDesc = MatchDescTable{
	Table:        "match_desc",
	ID:           "id",
	MatchID:      "match_id",
	Description:  "description",
	LanguageCode: "language_code",
}

func (t MatchDescTable) Columns() []string {
	return []string{t.ID, t.MatchID, t.Description, t.LanguageCode}
}
