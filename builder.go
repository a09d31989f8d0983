package astddl

import (
	"fmt"

	"github.com/zoobzio/astddl/internal/types"
)

// DropTableBuilder provides a fluent API for constructing DROP TABLE
// statements. A builder is finalized by Build; modifiers called afterwards
// record an error.
type DropTableBuilder struct {
	stmt  types.DropTable
	built bool
	err   error
}

// DropTable creates a new DROP TABLE builder.
func DropTable(t types.Table) *DropTableBuilder {
	b := &DropTableBuilder{stmt: types.DropTable{Table: t}}
	if t.Name == "" {
		b.err = fmt.Errorf("DROP TABLE requires a table name")
	}
	return b
}

// DropTableIfExists creates a new DROP TABLE IF EXISTS builder.
func DropTableIfExists(t types.Table) *DropTableBuilder {
	b := DropTable(t)
	b.stmt.IfExists = true
	return b
}

// GetError returns the internal error.
func (b *DropTableBuilder) GetError() error {
	return b.err
}

// Cascade drops dependent objects along with the table.
func (b *DropTableBuilder) Cascade() *DropTableBuilder {
	return b.setCascade(true, "Cascade")
}

// Restrict refuses the drop when dependent objects exist. It overrides an
// earlier Cascade.
func (b *DropTableBuilder) Restrict() *DropTableBuilder {
	return b.setCascade(false, "Restrict")
}

func (b *DropTableBuilder) setCascade(cascade bool, method string) *DropTableBuilder {
	if b.err != nil {
		return b
	}
	if b.built {
		b.err = fmt.Errorf("%s() called after Build()", method)
		return b
	}
	b.stmt.Cascade = cascade
	return b
}

// Build finalizes the builder and returns the statement.
// The returned value is a copy; later builder calls cannot change it.
func (b *DropTableBuilder) Build() (*types.DropTable, error) {
	if b.err != nil {
		return nil, b.err
	}

	if err := b.stmt.Validate(); err != nil {
		return nil, err
	}

	b.built = true
	stmt := b.stmt
	return &stmt, nil
}

// MustBuild returns the statement or panics on error.
func (b *DropTableBuilder) MustBuild() *types.DropTable {
	stmt, err := b.Build()
	if err != nil {
		panic(err)
	}
	return stmt
}

// Render builds the statement and renders it with the given renderer.
func (b *DropTableBuilder) Render(r Renderer) (*QueryResult, error) {
	stmt, err := b.Build()
	if err != nil {
		return nil, err
	}
	return r.Render(stmt)
}

// MustRender builds and renders the statement or panics on error.
func (b *DropTableBuilder) MustRender(r Renderer) *QueryResult {
	result, err := b.Render(r)
	if err != nil {
		panic(err)
	}
	return result
}
