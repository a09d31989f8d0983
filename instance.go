package astddl

import (
	"fmt"
	"sort"
	"strings"

	"github.com/zoobzio/astddl/internal/types"
	"github.com/zoobzio/dbml"
)

// ASTDDL represents an instance of the statement builder bound to a DBML schema.
// Table references are resolved against the tables the schema declares.
//
// Tables in the default schema are keyed by their bare name. Tables in any
// other schema are keyed "schema.name", so the same name declared in two
// schemas yields two distinct references.
type ASTDDL struct {
	project *dbml.Project
	schema  string
	tables  map[string]types.Table
}

// NewFromDBML creates a new ASTDDL instance from a DBML project.
func NewFromDBML(project *dbml.Project) (*ASTDDL, error) {
	if project == nil {
		return nil, fmt.Errorf("project cannot be nil")
	}

	a := &ASTDDL{
		project: project,
		tables:  make(map[string]types.Table),
	}

	for _, table := range project.Tables {
		t, err := TableFromDBML(table)
		if err != nil {
			return nil, err
		}
		key := tableKey(t)
		if _, dup := a.tables[key]; dup {
			return nil, fmt.Errorf("table '%s' declared more than once", key)
		}
		a.tables[key] = t
	}

	return a, nil
}

func tableKey(t types.Table) string {
	if t.Schema == "" {
		return t.Name
	}
	return t.Schema + "." + t.Name
}

// WithSchema returns a copy of the instance whose unqualified table
// references are qualified with schema. Tables declared in an explicit
// schema keep it.
func (a *ASTDDL) WithSchema(schema string) *ASTDDL {
	qualified := &ASTDDL{
		project: a.project,
		schema:  schema,
		tables:  make(map[string]types.Table, len(a.tables)),
	}
	for key, t := range a.tables {
		if t.Schema == "" {
			t.Schema = schema
		}
		qualified.tables[key] = t
	}
	return qualified
}

// TryT returns the table reference for a declared table. The name is
// either a key as listed by Tables or a bare table name that only one
// schema declares.
func (a *ASTDDL) TryT(name string) (types.Table, error) {
	if t, ok := a.tables[name]; ok {
		return t, nil
	}
	if !strings.Contains(name, ".") {
		var matches []string
		for key, t := range a.tables {
			if t.Name == name {
				matches = append(matches, key)
			}
		}
		switch len(matches) {
		case 1:
			return a.tables[matches[0]], nil
		case 0:
		default:
			sort.Strings(matches)
			return types.Table{}, fmt.Errorf("table '%s' is ambiguous: %s", name, strings.Join(matches, ", "))
		}
	}
	return types.Table{}, fmt.Errorf("table '%s' not found in schema", name)
}

// T returns the table reference for a declared table, panicking when the
// schema does not declare it.
func (a *ASTDDL) T(name string) types.Table {
	t, err := a.TryT(name)
	if err != nil {
		panic(err)
	}
	return t
}

// Tables returns the keys of the declared tables, sorted.
func (a *ASTDDL) Tables() []string {
	names := make([]string, 0, len(a.tables))
	for name := range a.tables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DropAll returns one DROP TABLE builder per declared table, ordered as Tables.
func (a *ASTDDL) DropAll(ifExists bool) []*DropTableBuilder {
	names := a.Tables()
	builders := make([]*DropTableBuilder, 0, len(names))
	for _, name := range names {
		t := a.tables[name]
		if ifExists {
			builders = append(builders, DropTableIfExists(t))
		} else {
			builders = append(builders, DropTable(t))
		}
	}
	return builders
}
