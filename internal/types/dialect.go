package types

import (
	"sort"
	"strings"
)

// Dialect identifies a specific database engine and version.
type Dialect int

const (
	DialectDefault Dialect = iota
	DialectDB2_11
	DialectDerby
	DialectFirebird2_5
	DialectFirebird3_0
	DialectH2
	DialectHSQLDB
	DialectMariaDB
	DialectMySQL5_7
	DialectMySQL8_0
	DialectOracle11g
	DialectOracle12c
	DialectPostgres9_5
	DialectPostgres16
	DialectSQLite
	DialectSQLServer2016
	DialectSQLServer2022
)

// Family groups dialects sharing SQL generation quirks.
type Family int

const (
	FamilyDefault Family = iota
	FamilyDB2
	FamilyDerby
	FamilyFirebird
	FamilyH2
	FamilyHSQLDB
	FamilyMariaDB
	FamilyMySQL
	FamilyOracle
	FamilyPostgres
	FamilySQLite
	FamilySQLServer
)

var dialectNames = map[Dialect]string{
	DialectDefault:       "default",
	DialectDB2_11:        "db2_11",
	DialectDerby:         "derby",
	DialectFirebird2_5:   "firebird2_5",
	DialectFirebird3_0:   "firebird3_0",
	DialectH2:            "h2",
	DialectHSQLDB:        "hsqldb",
	DialectMariaDB:       "mariadb",
	DialectMySQL5_7:      "mysql5_7",
	DialectMySQL8_0:      "mysql8_0",
	DialectOracle11g:     "oracle11g",
	DialectOracle12c:     "oracle12c",
	DialectPostgres9_5:   "postgres9_5",
	DialectPostgres16:    "postgres16",
	DialectSQLite:        "sqlite",
	DialectSQLServer2016: "sqlserver2016",
	DialectSQLServer2022: "sqlserver2022",
}

// Aliases accepted by ParseDialect in addition to the canonical names.
// Each alias resolves to the newest dialect of its family.
var dialectAliases = map[string]Dialect{
	"db2":        DialectDB2_11,
	"firebird":   DialectFirebird3_0,
	"mysql":      DialectMySQL8_0,
	"oracle":     DialectOracle12c,
	"postgres":   DialectPostgres16,
	"postgresql": DialectPostgres16,
	"mssql":      DialectSQLServer2022,
	"sqlserver":  DialectSQLServer2022,
}

var familyNames = map[Family]string{
	FamilyDefault:   "default",
	FamilyDB2:       "db2",
	FamilyDerby:     "derby",
	FamilyFirebird:  "firebird",
	FamilyH2:        "h2",
	FamilyHSQLDB:    "hsqldb",
	FamilyMariaDB:   "mariadb",
	FamilyMySQL:     "mysql",
	FamilyOracle:    "oracle",
	FamilyPostgres:  "postgres",
	FamilySQLite:    "sqlite",
	FamilySQLServer: "sqlserver",
}

// String returns the canonical lowercase dialect name.
func (d Dialect) String() string {
	if name, ok := dialectNames[d]; ok {
		return name
	}
	return "unknown"
}

// Family maps the dialect to its family.
// Values outside the enumeration resolve to FamilyDefault.
func (d Dialect) Family() Family {
	switch d {
	case DialectDB2_11:
		return FamilyDB2
	case DialectDerby:
		return FamilyDerby
	case DialectFirebird2_5, DialectFirebird3_0:
		return FamilyFirebird
	case DialectH2:
		return FamilyH2
	case DialectHSQLDB:
		return FamilyHSQLDB
	case DialectMariaDB:
		return FamilyMariaDB
	case DialectMySQL5_7, DialectMySQL8_0:
		return FamilyMySQL
	case DialectOracle11g, DialectOracle12c:
		return FamilyOracle
	case DialectPostgres9_5, DialectPostgres16:
		return FamilyPostgres
	case DialectSQLite:
		return FamilySQLite
	case DialectSQLServer2016, DialectSQLServer2022:
		return FamilySQLServer
	default:
		return FamilyDefault
	}
}

// String returns the lowercase family name.
func (f Family) String() string {
	if name, ok := familyNames[f]; ok {
		return name
	}
	return "unknown"
}

// ParseDialect resolves a dialect by canonical name or alias, case-insensitively.
func ParseDialect(name string) (Dialect, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	if d, ok := dialectAliases[key]; ok {
		return d, true
	}
	for d, n := range dialectNames {
		if n == key {
			return d, true
		}
	}
	return DialectDefault, false
}

// Dialects returns every known dialect in declaration order.
func Dialects() []Dialect {
	out := make([]Dialect, 0, len(dialectNames))
	for d := range dialectNames {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
