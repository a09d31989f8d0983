package render

import (
	"log/slog"
	"strings"

	"github.com/zoobzio/astddl/internal/types"
)

// Context drives one render pass. It owns the output buffer and the clause
// marker stack, and is bound to a single dialect for its lifetime.
// A Context is not safe for concurrent use; create one per statement.
type Context struct {
	settings Settings
	dialect  types.Dialect
	family   types.Family

	sql     strings.Builder
	clauses []types.Clause
	events  []types.ClauseEvent

	literal int // string literal nesting depth
	depth   int // indentation depth for pretty output

	emulated       bool
	ignoreSQLState string
}

// NewContext creates a render context bound to a dialect.
func NewContext(d types.Dialect, settings Settings) *Context {
	if settings.Logger == nil {
		settings.Logger = slog.New(slog.DiscardHandler)
	}
	return &Context{
		settings: settings,
		dialect:  d,
		family:   d.Family(),
	}
}

// Dialect returns the bound dialect.
func (c *Context) Dialect() types.Dialect {
	return c.dialect
}

// Family returns the family of the bound dialect.
func (c *Context) Family() types.Family {
	return c.family
}

// Settings returns the render settings.
func (c *Context) Settings() Settings {
	return c.settings
}

// SQL appends raw SQL text. Inside a string literal, single quotes are
// doubled once per nesting level.
func (c *Context) SQL(s string) *Context {
	if c.literal > 0 && strings.Contains(s, "'") {
		s = strings.ReplaceAll(s, "'", strings.Repeat("'", 1<<c.literal))
	}
	c.sql.WriteString(s)
	return c
}

// Keyword appends a keyword cased per settings.
func (c *Context) Keyword(kw string) *Context {
	if c.settings.Keywords == KeywordLower {
		return c.SQL(strings.ToLower(kw))
	}
	return c.SQL(strings.ToUpper(kw))
}

// Space appends a single space.
func (c *Context) Space() *Context {
	c.sql.WriteByte(' ')
	return c
}

// Separator appends a line break with indentation in pretty mode, a single
// space otherwise.
func (c *Context) Separator() *Context {
	if !c.settings.Pretty {
		return c.Space()
	}
	c.sql.WriteByte('\n')
	c.sql.WriteString(strings.Repeat(" ", c.depth*c.settings.Indent))
	return c
}

// IndentStart increases the indentation depth used by Separator.
func (c *Context) IndentStart() *Context {
	c.depth++
	return c
}

// IndentEnd decreases the indentation depth used by Separator.
func (c *Context) IndentEnd() *Context {
	if c.depth > 0 {
		c.depth--
	}
	return c
}

// StringLiteral enters or leaves string literal mode.
func (c *Context) StringLiteral(on bool) *Context {
	if on {
		c.literal++
	} else if c.literal > 0 {
		c.literal--
	}
	return c
}

// Start pushes a clause marker and records its START event.
func (c *Context) Start(clause types.Clause) *Context {
	c.clauses = append(c.clauses, clause)
	c.emit(types.ClauseEvent{Clause: clause, Phase: types.PhaseStart})
	return c
}

// End pops the innermost clause marker and records its END event.
// Ending any clause other than the innermost open one panics.
func (c *Context) End(clause types.Clause) *Context {
	n := len(c.clauses)
	if n == 0 {
		panic(&ClauseMismatchError{Got: clause})
	}
	if open := c.clauses[n-1]; open != clause {
		panic(&ClauseMismatchError{Expected: open, Got: clause})
	}
	c.clauses = c.clauses[:n-1]
	c.emit(types.ClauseEvent{Clause: clause, Phase: types.PhaseEnd})
	return c
}

func (c *Context) emit(e types.ClauseEvent) {
	c.events = append(c.events, e)
	for _, l := range c.settings.Listeners {
		l(e)
	}
}

// Events returns a copy of the clause events recorded so far.
func (c *Context) Events() []types.ClauseEvent {
	out := make([]types.ClauseEvent, len(c.events))
	copy(out, c.events)
	return out
}

// String returns the SQL rendered so far.
func (c *Context) String() string {
	return c.sql.String()
}

// markEmulated records that a fallback wrapper was used.
func (c *Context) markEmulated(ignoreSQLState string) {
	c.emulated = true
	c.ignoreSQLState = ignoreSQLState
}

// Finish closes the render pass and returns its result.
// Open clause markers panic.
func (c *Context) Finish() *types.QueryResult {
	if n := len(c.clauses); n > 0 {
		panic(&ClauseMismatchError{Expected: c.clauses[n-1]})
	}
	return &types.QueryResult{
		SQL:            c.sql.String(),
		Events:         c.Events(),
		Emulated:       c.emulated,
		IgnoreSQLState: c.ignoreSQLState,
	}
}
