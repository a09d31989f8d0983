package types

// Clause tags a named structural region of rendered SQL.
type Clause string

const (
	// ClauseDropTableTable brackets the DROP TABLE keyword, the table name
	// and the optional CASCADE modifier.
	ClauseDropTableTable Clause = "DROP_TABLE_TABLE"
)

// Phase marks whether a clause event opens or closes its region.
type Phase string

const (
	PhaseStart Phase = "START"
	PhaseEnd   Phase = "END"
)

// ClauseEvent is one structural marker emitted during rendering.
type ClauseEvent struct {
	Clause Clause
	Phase  Phase
}

// String returns "<clause>:<phase>".
func (e ClauseEvent) String() string {
	return string(e.Clause) + ":" + string(e.Phase)
}
