package types

// Table represents a table reference.
// This is exported from the internal package so dialect renderers can use it,
// but external users cannot import this package.
type Table struct {
	Schema string
	Name   string
}

// GetName returns the table name.
func (t Table) GetName() string {
	return t.Name
}

// GetSchema returns the schema qualifier, empty when unqualified.
func (t Table) GetSchema() string {
	return t.Schema
}

// Qualified reports whether the table carries a schema qualifier.
func (t Table) Qualified() bool {
	return t.Schema != ""
}

// Parts returns the identifier parts in rendering order.
func (t Table) Parts() []string {
	if t.Schema == "" {
		return []string{t.Name}
	}
	return []string{t.Schema, t.Name}
}
