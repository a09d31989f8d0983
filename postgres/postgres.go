// Package postgres provides the PostgreSQL dialect renderer for astddl.
//
// PostgreSQL accepts DROP TABLE IF EXISTS natively since 8.2, so statements
// are never wrapped.
package postgres

import (
	"fmt"

	"github.com/zoobzio/astddl/internal/render"
	"github.com/zoobzio/astddl/internal/types"
)

// Renderer implements the PostgreSQL dialect renderer.
// It holds only immutable settings and is safe for concurrent use.
type Renderer struct {
	settings render.Settings
	dialect  types.Dialect
}

// New creates a new PostgreSQL renderer.
func New(opts ...render.Option) *Renderer {
	return &Renderer{dialect: types.DialectPostgres16, settings: render.NewSettings(opts...)}
}

// NewWithDialect creates a PostgreSQL renderer bound to a specific version.
// It panics when d does not belong to the PostgreSQL family.
func NewWithDialect(d types.Dialect, opts ...render.Option) *Renderer {
	if d.Family() != types.FamilyPostgres {
		panic(fmt.Errorf("postgres: dialect %s is not in family %s", d, types.FamilyPostgres))
	}
	return &Renderer{dialect: d, settings: render.NewSettings(opts...)}
}

// Render converts a DROP TABLE statement to a QueryResult with PostgreSQL SQL.
func (r *Renderer) Render(stmt *types.DropTable) (*types.QueryResult, error) {
	return render.Render(r.dialect, stmt, r.settings)
}

// Dialect returns the dialect the renderer is bound to.
func (r *Renderer) Dialect() types.Dialect {
	return r.dialect
}

// Capabilities returns the DDL features supported by PostgreSQL.
func (r *Renderer) Capabilities() render.Capabilities {
	return render.CapabilitiesFor(types.FamilyPostgres)
}

// QuoteIdentifier quotes an identifier the way PostgreSQL expects.
func (r *Renderer) QuoteIdentifier(name string) string {
	return render.QuoteIdentifier(types.FamilyPostgres, name)
}
