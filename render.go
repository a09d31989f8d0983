package astddl

import (
	"fmt"
	"strings"

	"github.com/zoobzio/astddl/internal/render"
	"github.com/zoobzio/astddl/internal/types"
)

// dialectRenderer renders for any dialect in the enumeration.
type dialectRenderer struct {
	settings render.Settings
	dialect  types.Dialect
}

// NewRenderer creates a renderer bound to an arbitrary dialect.
// Dialects outside the enumeration render with the default family rules.
func NewRenderer(d Dialect, opts ...Option) Renderer {
	return &dialectRenderer{dialect: d, settings: render.NewSettings(opts...)}
}

func (r *dialectRenderer) Render(stmt *types.DropTable) (*types.QueryResult, error) {
	return render.Render(r.dialect, stmt, r.settings)
}

func (r *dialectRenderer) Dialect() types.Dialect {
	return r.dialect
}

func (r *dialectRenderer) Capabilities() render.Capabilities {
	return render.CapabilitiesFor(r.dialect.Family())
}

// Render converts a statement to SQL for the given dialect.
func Render(stmt *DropTableStatement, d Dialect, opts ...Option) (*QueryResult, error) {
	return NewRenderer(d, opts...).Render(stmt)
}

// Script is the output of rendering several statements for one dialect.
type Script struct {
	// SQL holds every statement, each followed by its delimiter.
	SQL string

	// Results holds the per-statement results in input order.
	Results []*QueryResult
}

// IgnoreSQLStates returns the distinct SQLSTATEs the caller must treat as
// success while executing the script.
func (s *Script) IgnoreSQLStates() []string {
	var states []string
	seen := make(map[string]bool)
	for _, r := range s.Results {
		if r.IgnoreSQLState == "" || seen[r.IgnoreSQLState] {
			continue
		}
		seen[r.IgnoreSQLState] = true
		states = append(states, r.IgnoreSQLState)
	}
	return states
}

// RenderScript renders statements in order and joins them with the
// dialect's statement delimiter. An Oracle PL/SQL block is already
// terminated and is followed by a line holding a single slash instead.
func RenderScript(stmts []*DropTableStatement, r Renderer) (*Script, error) {
	if len(stmts) == 0 {
		return nil, fmt.Errorf("script requires at least one statement")
	}

	var sql strings.Builder
	script := &Script{Results: make([]*QueryResult, 0, len(stmts))}
	for i, stmt := range stmts {
		result, err := r.Render(stmt)
		if err != nil {
			return nil, fmt.Errorf("statement %d: %w", i, err)
		}
		sql.WriteString(result.SQL)
		sql.WriteString(delimiter(r.Dialect().Family(), result))
		script.Results = append(script.Results, result)
	}
	script.SQL = sql.String()
	return script, nil
}

func delimiter(f types.Family, result *QueryResult) string {
	if f == types.FamilyOracle && result.Emulated {
		return "\n/\n"
	}
	return ";\n"
}
