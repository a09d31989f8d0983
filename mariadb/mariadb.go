// Package mariadb provides the MariaDB dialect renderer for astddl.
//
// MariaDB quotes identifiers with backticks. CASCADE is parsed and ignored.
package mariadb

import (
	"github.com/zoobzio/astddl/internal/render"
	"github.com/zoobzio/astddl/internal/types"
)

// Renderer implements the MariaDB dialect renderer.
// It holds only immutable settings and is safe for concurrent use.
type Renderer struct {
	settings render.Settings
	dialect  types.Dialect
}

// New creates a new MariaDB renderer.
func New(opts ...render.Option) *Renderer {
	return &Renderer{dialect: types.DialectMariaDB, settings: render.NewSettings(opts...)}
}

// Render converts a DROP TABLE statement to a QueryResult with MariaDB SQL.
func (r *Renderer) Render(stmt *types.DropTable) (*types.QueryResult, error) {
	return render.Render(r.dialect, stmt, r.settings)
}

// Dialect returns the dialect the renderer is bound to.
func (r *Renderer) Dialect() types.Dialect {
	return r.dialect
}

// Capabilities returns the DDL features supported by MariaDB.
func (r *Renderer) Capabilities() render.Capabilities {
	return render.CapabilitiesFor(types.FamilyMariaDB)
}

// QuoteIdentifier quotes an identifier the way MariaDB expects.
func (r *Renderer) QuoteIdentifier(name string) string {
	return render.QuoteIdentifier(types.FamilyMariaDB, name)
}
