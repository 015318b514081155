package schema

// EventTable represents the 'event' table
type EventTable struct {
	Table     string
	ID        string
	Name      string
	Promotion string
	Date      string
}

// Event is the schema definition for event
var Event = EventTable{
	Table:     "event",
	ID:        "id",
	Name:      "name",
	Promotion: "promotion",
	Date:      "date",
}

func (t EventTable) Columns() []string { return []string{t.ID, t.Name, t.Promotion, t.Date} }
