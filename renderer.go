package astddl

import (
	"github.com/zoobzio/astddl/internal/render"
	"github.com/zoobzio/astddl/internal/types"
)

// Renderer defines the interface for SQL dialect-specific rendering.
// Implementations convert a finalized statement to dialect-specific SQL.
type Renderer interface {
	// Render converts a DROP TABLE statement to a QueryResult.
	Render(stmt *types.DropTable) (*types.QueryResult, error)

	// Dialect returns the dialect the renderer is bound to.
	Dialect() types.Dialect

	// Capabilities returns the DDL features supported by the dialect's family.
	Capabilities() render.Capabilities
}
