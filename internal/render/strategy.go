package render

import "github.com/zoobzio/astddl/internal/types"

// Strategy is the emission path chosen for a statement.
type Strategy int

const (
	// StrategyDirect renders the statement as-is, using native syntax.
	StrategyDirect Strategy = iota
	// StrategyEmulated wraps the statement in a fallback construct.
	StrategyEmulated
)

func (s Strategy) String() string {
	if s == StrategyEmulated {
		return "emulated"
	}
	return "direct"
}

// ResolveDropTable decides how a DROP TABLE statement is emitted for a family.
// Only a conditional drop on a family without native IF EXISTS is emulated.
func ResolveDropTable(stmt *types.DropTable, f types.Family) Strategy {
	if stmt.IfExists && !SupportsConditionalDrop(f) {
		return StrategyEmulated
	}
	return StrategyDirect
}
