// Package mssql provides the SQL Server dialect renderer for astddl.
//
// SQL Server 2016 and later accept DROP TABLE IF EXISTS. CASCADE is not part
// of the T-SQL grammar.
package mssql

import (
	"fmt"

	"github.com/zoobzio/astddl/internal/render"
	"github.com/zoobzio/astddl/internal/types"
)

// Renderer implements the SQL Server dialect renderer.
// It holds only immutable settings and is safe for concurrent use.
type Renderer struct {
	settings render.Settings
	dialect  types.Dialect
}

// New creates a new SQL Server renderer.
func New(opts ...render.Option) *Renderer {
	return &Renderer{dialect: types.DialectSQLServer2022, settings: render.NewSettings(opts...)}
}

// NewWithDialect creates a SQL Server renderer bound to a specific version.
// It panics when d does not belong to the SQL Server family.
func NewWithDialect(d types.Dialect, opts ...render.Option) *Renderer {
	if d.Family() != types.FamilySQLServer {
		panic(fmt.Errorf("mssql: dialect %s is not in family %s", d, types.FamilySQLServer))
	}
	return &Renderer{dialect: d, settings: render.NewSettings(opts...)}
}

// Render converts a DROP TABLE statement to a QueryResult with SQL Server SQL.
func (r *Renderer) Render(stmt *types.DropTable) (*types.QueryResult, error) {
	return render.Render(r.dialect, stmt, r.settings)
}

// Dialect returns the dialect the renderer is bound to.
func (r *Renderer) Dialect() types.Dialect {
	return r.dialect
}

// Capabilities returns the DDL features supported by SQL Server.
func (r *Renderer) Capabilities() render.Capabilities {
	return render.CapabilitiesFor(types.FamilySQLServer)
}

// QuoteIdentifier quotes an identifier the way SQL Server expects.
func (r *Renderer) QuoteIdentifier(name string) string {
	return render.QuoteIdentifier(types.FamilySQLServer, name)
}
