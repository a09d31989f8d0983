package types

import "fmt"

// StatementKind identifies the DDL statement being rendered.
// Fallback wrappers are keyed by it.
type StatementKind string

const (
	StatementDropTable StatementKind = "DROP_TABLE"
)

// DropTable describes one DROP TABLE statement.
// Cascade is the single source of truth for the drop behavior:
// false means RESTRICT, the SQL default.
type DropTable struct {
	Table    Table
	IfExists bool
	Cascade  bool
}

// Kind returns the statement kind.
func (s *DropTable) Kind() StatementKind {
	return StatementDropTable
}

// Validate checks the statement preconditions.
func (s *DropTable) Validate() error {
	if s == nil {
		return fmt.Errorf("statement is nil")
	}
	if s.Table.Name == "" {
		return fmt.Errorf("target table is required")
	}
	return nil
}
