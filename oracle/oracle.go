// Package oracle provides the Oracle dialect renderer for astddl.
//
// Oracle rejects DROP TABLE IF EXISTS before 23c. Conditional drops are
// wrapped in a PL/SQL block that swallows ORA-00942.
package oracle

import (
	"fmt"

	"github.com/zoobzio/astddl/internal/render"
	"github.com/zoobzio/astddl/internal/types"
)

// Renderer implements the Oracle dialect renderer.
// It holds only immutable settings and is safe for concurrent use.
type Renderer struct {
	settings render.Settings
	dialect  types.Dialect
}

// New creates a new Oracle renderer.
func New(opts ...render.Option) *Renderer {
	return &Renderer{dialect: types.DialectOracle12c, settings: render.NewSettings(opts...)}
}

// NewWithDialect creates an Oracle renderer bound to a specific version.
// It panics when d does not belong to the Oracle family.
func NewWithDialect(d types.Dialect, opts ...render.Option) *Renderer {
	if d.Family() != types.FamilyOracle {
		panic(fmt.Errorf("oracle: dialect %s is not in family %s", d, types.FamilyOracle))
	}
	return &Renderer{dialect: d, settings: render.NewSettings(opts...)}
}

// Render converts a DROP TABLE statement to a QueryResult with Oracle SQL.
func (r *Renderer) Render(stmt *types.DropTable) (*types.QueryResult, error) {
	return render.Render(r.dialect, stmt, r.settings)
}

// Dialect returns the dialect the renderer is bound to.
func (r *Renderer) Dialect() types.Dialect {
	return r.dialect
}

// Capabilities returns the DDL features supported by Oracle.
func (r *Renderer) Capabilities() render.Capabilities {
	return render.CapabilitiesFor(types.FamilyOracle)
}

// QuoteIdentifier quotes an identifier the way Oracle expects.
func (r *Renderer) QuoteIdentifier(name string) string {
	return render.QuoteIdentifier(types.FamilyOracle, name)
}
