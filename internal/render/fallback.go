package render

import "github.com/zoobzio/astddl/internal/types"

// Error codes raised when the dropped object does not exist.
// Each wrapper swallows its code and re-raises everything else. Firebird's
// -607 is the generic metadata-update failure, so it also covers errors
// other than a missing table.
var (
	oracleMissingCode = map[types.StatementKind]string{
		types.StatementDropTable: "-942", // ORA-00942
	}
	firebirdMissingCode = map[types.StatementKind]string{
		types.StatementDropTable: "-607",
	}
	db2MissingState = map[types.StatementKind]string{
		types.StatementDropTable: "42704",
	}
	derbyMissingState = map[types.StatementKind]string{
		types.StatementDropTable: "42Y55",
	}
)

// BeginFallback opens the family's error-tolerant execution block.
// The enclosed statement is emitted as a string literal until EndFallback.
func BeginFallback(ctx *Context, kind types.StatementKind) {
	switch ctx.Family() {
	case types.FamilyOracle:
		ctx.Keyword("begin").IndentStart().Separator().
			Keyword("execute immediate").SQL(" '").StringLiteral(true)
		ctx.markEmulated("")

	case types.FamilyFirebird:
		ctx.Keyword("execute block").Separator().
			Keyword("as").Separator().
			Keyword("begin").IndentStart().Separator().
			Keyword("execute statement").SQL(" '").StringLiteral(true)
		ctx.markEmulated("")

	case types.FamilyDB2:
		ctx.Keyword("begin").IndentStart().Separator().
			Keyword("declare continue handler for sqlstate").
			SQL(" '" + db2MissingState[kind] + "' ").
			Keyword("begin end").SQL(";").Separator().
			Keyword("execute immediate").SQL(" '").StringLiteral(true)
		ctx.markEmulated("")

	case types.FamilyDerby:
		// No anonymous blocks: the caller swallows the state instead.
		ctx.markEmulated(derbyMissingState[kind])

	default:
		ctx.markEmulated("")
	}
}

// EndFallback closes the block opened by BeginFallback.
func EndFallback(ctx *Context, kind types.StatementKind) {
	switch ctx.Family() {
	case types.FamilyOracle:
		ctx.StringLiteral(false).SQL("';").IndentEnd().Separator().
			Keyword("exception").IndentStart().Separator().
			Keyword("when others then").IndentStart().Separator().
			Keyword("if sqlcode").SQL(" != " + oracleMissingCode[kind] + " ").Keyword("then").IndentStart().Separator().
			Keyword("raise").SQL(";").IndentEnd().Separator().
			Keyword("end if").SQL(";").IndentEnd().IndentEnd().Separator().
			Keyword("end").SQL(";")

	case types.FamilyFirebird:
		ctx.StringLiteral(false).SQL("';").Separator().
			Keyword("when sqlcode").SQL(" " + firebirdMissingCode[kind] + " ").Keyword("do").IndentStart().Separator().
			Keyword("begin end").IndentEnd().IndentEnd().Separator().
			Keyword("end")

	case types.FamilyDB2:
		ctx.StringLiteral(false).SQL("';").IndentEnd().Separator().
			Keyword("end")
	}
}
