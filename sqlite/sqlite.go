// Package sqlite provides the SQLite dialect renderer for astddl.
//
// SQLite accepts DROP TABLE IF EXISTS. It has no CASCADE; foreign keys are
// enforced per connection.
package sqlite

import (
	"github.com/zoobzio/astddl/internal/render"
	"github.com/zoobzio/astddl/internal/types"
)

// Renderer implements the SQLite dialect renderer.
// It holds only immutable settings and is safe for concurrent use.
type Renderer struct {
	settings render.Settings
	dialect  types.Dialect
}

// New creates a new SQLite renderer.
func New(opts ...render.Option) *Renderer {
	return &Renderer{dialect: types.DialectSQLite, settings: render.NewSettings(opts...)}
}

// Render converts a DROP TABLE statement to a QueryResult with SQLite SQL.
func (r *Renderer) Render(stmt *types.DropTable) (*types.QueryResult, error) {
	return render.Render(r.dialect, stmt, r.settings)
}

// Dialect returns the dialect the renderer is bound to.
func (r *Renderer) Dialect() types.Dialect {
	return r.dialect
}

// Capabilities returns the DDL features supported by SQLite.
func (r *Renderer) Capabilities() render.Capabilities {
	return render.CapabilitiesFor(types.FamilySQLite)
}

// QuoteIdentifier quotes an identifier the way SQLite expects.
func (r *Renderer) QuoteIdentifier(name string) string {
	return render.QuoteIdentifier(types.FamilySQLite, name)
}
