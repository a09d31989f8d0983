// Package derby provides the Apache Derby dialect renderer for astddl.
//
// Derby rejects DROP TABLE IF EXISTS and has no anonymous procedural block.
// Conditional drops render as a plain DROP TABLE and the result carries the
// SQLSTATE the caller must treat as success.
package derby

import (
	"github.com/zoobzio/astddl/internal/render"
	"github.com/zoobzio/astddl/internal/types"
)

// Renderer implements the Apache Derby dialect renderer.
// It holds only immutable settings and is safe for concurrent use.
type Renderer struct {
	settings render.Settings
	dialect  types.Dialect
}

// New creates a new Apache Derby renderer.
func New(opts ...render.Option) *Renderer {
	return &Renderer{dialect: types.DialectDerby, settings: render.NewSettings(opts...)}
}

// Render converts a DROP TABLE statement to a QueryResult with Apache Derby SQL.
func (r *Renderer) Render(stmt *types.DropTable) (*types.QueryResult, error) {
	return render.Render(r.dialect, stmt, r.settings)
}

// Dialect returns the dialect the renderer is bound to.
func (r *Renderer) Dialect() types.Dialect {
	return r.dialect
}

// Capabilities returns the DDL features supported by Apache Derby.
func (r *Renderer) Capabilities() render.Capabilities {
	return render.CapabilitiesFor(types.FamilyDerby)
}

// QuoteIdentifier quotes an identifier the way Apache Derby expects.
func (r *Renderer) QuoteIdentifier(name string) string {
	return render.QuoteIdentifier(types.FamilyDerby, name)
}
