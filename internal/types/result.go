package types

// QueryResult contains the rendered SQL and the structural events emitted
// while rendering it.
type QueryResult struct {
	SQL    string
	Events []ClauseEvent

	// Emulated is set when the dialect lacked native support for a requested
	// feature and the statement was wrapped in a fallback construct.
	Emulated bool

	// IgnoreSQLState is set when the engine cannot swallow the missing-object
	// failure inside SQL. Callers executing SQL treat this state as success.
	IgnoreSQLState string
}
