package render

import (
	"strings"

	"github.com/zoobzio/astddl/internal/types"
)

// quoteRule describes how a family delimits identifiers.
// Embedded closing delimiters are escaped by doubling.
type quoteRule struct {
	open  string
	close string
}

var (
	doubleQuotes = quoteRule{open: `"`, close: `"`}
	backticks    = quoteRule{open: "`", close: "`"}
	brackets     = quoteRule{open: "[", close: "]"}
)

func quoteRuleFor(f types.Family) quoteRule {
	switch f {
	case types.FamilyMySQL, types.FamilyMariaDB:
		return backticks
	case types.FamilySQLServer:
		return brackets
	default:
		return doubleQuotes
	}
}

// QuoteIdentifier quotes a single identifier for a family.
func QuoteIdentifier(f types.Family, name string) string {
	q := quoteRuleFor(f)
	escaped := strings.ReplaceAll(name, q.close, q.close+q.close)
	return q.open + escaped + q.close
}

// Identifier appends a single identifier rendered per the name style.
func (c *Context) Identifier(name string) *Context {
	switch c.settings.Names {
	case NameAsIs:
		return c.SQL(name)
	case NameUpper:
		return c.SQL(strings.ToUpper(name))
	case NameLower:
		return c.SQL(strings.ToLower(name))
	default:
		return c.SQL(QuoteIdentifier(c.family, name))
	}
}

// Table appends a table reference, schema-qualified when a schema is set.
func (c *Context) Table(t types.Table) *Context {
	for i, part := range t.Parts() {
		if i > 0 {
			c.SQL(".")
		}
		c.Identifier(part)
	}
	return c
}
