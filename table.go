package astddl

import (
	"fmt"
	"strings"

	"github.com/zoobzio/astddl/internal/types"
	"github.com/zoobzio/dbml"
)

// TryT creates a table reference, returning an error if invalid.
// An optional schema qualifies the name.
func TryT(name string, schema ...string) (types.Table, error) {
	if strings.TrimSpace(name) == "" {
		return types.Table{}, fmt.Errorf("invalid table: name is empty")
	}

	t := types.Table{Name: name}
	if len(schema) > 0 {
		if strings.TrimSpace(schema[0]) == "" {
			return types.Table{}, fmt.Errorf("invalid table %s: schema is empty", name)
		}
		t.Schema = schema[0]
	}
	return t, nil
}

// T creates a table reference.
func T(name string, schema ...string) types.Table {
	table, err := TryT(name, schema...)
	if err != nil {
		panic(err)
	}
	return table
}

// dbmlDefaultSchema is the schema dbml assigns to tables declared without one.
const dbmlDefaultSchema = "public"

// TableFromDBML creates a table reference from DBML schema metadata.
// Tables in the default "public" schema are left unqualified so the
// connection's search path decides; any other schema qualifies the name.
func TableFromDBML(t *dbml.Table) (types.Table, error) {
	if t == nil {
		return types.Table{}, fmt.Errorf("invalid table: dbml table is nil")
	}
	if t.Schema == "" || t.Schema == dbmlDefaultSchema {
		return TryT(t.Name)
	}
	return TryT(t.Name, t.Schema)
}
