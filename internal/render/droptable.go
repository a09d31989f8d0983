package render

import (
	"fmt"

	"github.com/zoobzio/astddl/internal/types"
)

// DropTable renders a DROP TABLE statement into ctx.
// An invalid statement is a caller defect and panics.
func DropTable(ctx *Context, stmt *types.DropTable) {
	if err := stmt.Validate(); err != nil {
		panic(fmt.Errorf("drop table: %w", err))
	}

	family := ctx.Family()
	strategy := ResolveDropTable(stmt, family)

	logger := ctx.Settings().Logger
	logger.Debug("rendering drop table",
		"dialect", ctx.Dialect().String(),
		"family", family.String(),
		"strategy", strategy.String())
	if stmt.Cascade && !CapabilitiesFor(family).DropCascade {
		logger.Warn("dialect does not accept CASCADE on DROP TABLE",
			"dialect", ctx.Dialect().String(),
			"table", stmt.Table.Name)
	}

	switch strategy {
	case StrategyEmulated:
		emitEmulated(ctx, stmt)
	default:
		emitDirect(ctx, stmt)
	}
}

func emitDirect(ctx *Context, stmt *types.DropTable) {
	emitDropTable(ctx, stmt, stmt.IfExists)
}

// emitEmulated brackets the statement with the fallback wrapper, which
// supplies the IF EXISTS semantics instead of the keyword.
func emitEmulated(ctx *Context, stmt *types.DropTable) {
	BeginFallback(ctx, stmt.Kind())
	emitDropTable(ctx, stmt, false)
	EndFallback(ctx, stmt.Kind())
}

func emitDropTable(ctx *Context, stmt *types.DropTable, ifExists bool) {
	ctx.Start(types.ClauseDropTableTable).
		Keyword("drop table").Space()

	if ifExists {
		ctx.Keyword("if exists").Space()
	}

	ctx.Table(stmt.Table)

	if stmt.Cascade {
		ctx.Space().Keyword("cascade")
	}

	ctx.End(types.ClauseDropTableTable)
}

// RenderDropTable renders a statement for a dialect in a fresh context.
func RenderDropTable(d types.Dialect, stmt *types.DropTable, settings Settings) *types.QueryResult {
	ctx := NewContext(d, settings)
	DropTable(ctx, stmt)
	return ctx.Finish()
}

// Render validates a statement and renders it for a dialect. Precondition
// failures are returned as errors instead of panicking.
func Render(d types.Dialect, stmt *types.DropTable, settings Settings) (*types.QueryResult, error) {
	if err := stmt.Validate(); err != nil {
		return nil, fmt.Errorf("invalid statement: %w", err)
	}
	return RenderDropTable(d, stmt, settings), nil
}
