package schema

// MatchTable represents the 'match' table
type MatchTable struct {
	Table   string
	ID      string
	EventID string
	Workers string
}

// Match is the schema definition for match
var Match = MatchTable{
	Table:   "match",
	ID:      "id",
	EventID: "event_id",
	Workers: "workers",
}

func (t MatchTable) Columns() []string { return []string{t.ID, t.EventID, t.Workers} }
