// Package firebird provides the Firebird dialect renderer for astddl.
//
// Firebird rejects DROP TABLE IF EXISTS. Conditional drops are wrapped in an
// EXECUTE BLOCK that swallows SQLCODE -607.
package firebird

import (
	"fmt"

	"github.com/zoobzio/astddl/internal/render"
	"github.com/zoobzio/astddl/internal/types"
)

// Renderer implements the Firebird dialect renderer.
// It holds only immutable settings and is safe for concurrent use.
type Renderer struct {
	settings render.Settings
	dialect  types.Dialect
}

// New creates a new Firebird renderer.
func New(opts ...render.Option) *Renderer {
	return &Renderer{dialect: types.DialectFirebird3_0, settings: render.NewSettings(opts...)}
}

// NewWithDialect creates a Firebird renderer bound to a specific version.
// It panics when d does not belong to the Firebird family.
func NewWithDialect(d types.Dialect, opts ...render.Option) *Renderer {
	if d.Family() != types.FamilyFirebird {
		panic(fmt.Errorf("firebird: dialect %s is not in family %s", d, types.FamilyFirebird))
	}
	return &Renderer{dialect: d, settings: render.NewSettings(opts...)}
}

// Render converts a DROP TABLE statement to a QueryResult with Firebird SQL.
func (r *Renderer) Render(stmt *types.DropTable) (*types.QueryResult, error) {
	return render.Render(r.dialect, stmt, r.settings)
}

// Dialect returns the dialect the renderer is bound to.
func (r *Renderer) Dialect() types.Dialect {
	return r.dialect
}

// Capabilities returns the DDL features supported by Firebird.
func (r *Renderer) Capabilities() render.Capabilities {
	return render.CapabilitiesFor(types.FamilyFirebird)
}

// QuoteIdentifier quotes an identifier the way Firebird expects.
func (r *Renderer) QuoteIdentifier(name string) string {
	return render.QuoteIdentifier(types.FamilyFirebird, name)
}
