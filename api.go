// Package astddl renders DDL statements to dialect-correct SQL.
//
// Statements are built with fluent builders, finalized into immutable values,
// and rendered by a dialect Renderer. Capability differences between database
// families are negotiated at render time: a conditional DROP TABLE renders
// natively as IF EXISTS where the family supports it, and is wrapped in an
// error-tolerant fallback block where it does not.
//
// # Basic Usage
//
//	import "github.com/zoobzio/astddl/postgres"
//
//	result, err := astddl.DropTableIfExists(astddl.T("users")).
//		Cascade().
//		Render(postgres.New())
//	// result.SQL: DROP TABLE IF EXISTS "users" CASCADE
//
// # Emulation
//
// Families without native IF EXISTS receive an equivalent wrapper:
//
//	import "github.com/zoobzio/astddl/oracle"
//
//	result, err := astddl.DropTableIfExists(astddl.T("USERS")).Render(oracle.New())
//	// result.SQL: BEGIN EXECUTE IMMEDIATE 'DROP TABLE "USERS"'; EXCEPTION WHEN OTHERS
//	//             THEN IF SQLCODE != -942 THEN RAISE; END IF; END;
//	// result.Emulated: true
//
// Derby has no anonymous blocks; its result carries IgnoreSQLState instead,
// which the executing caller treats as success.
//
// # Instrumentation
//
// Every render records ordered clause events (START/END pairs tagged with a
// Clause). Listeners registered with render options receive them as they
// happen; the full list is returned on QueryResult.Events.
//
// # Schema Integration
//
// Table references can be taken from a DBML project:
//
//	instance, err := astddl.NewFromDBML(project)
//	users := instance.T("users")
package astddl

import "github.com/zoobzio/astddl/internal/types"

// Table is a reference to a table, optionally schema-qualified.
type Table = types.Table

// DropTableStatement is a finalized DROP TABLE statement.
type DropTableStatement = types.DropTable

// QueryResult contains the rendered SQL and clause events.
type QueryResult = types.QueryResult

// Dialect identifies a database engine and version.
type Dialect = types.Dialect

// Re-export dialect constants for public API.
const (
	DialectDefault       = types.DialectDefault
	DialectDB2_11        = types.DialectDB2_11
	DialectDerby         = types.DialectDerby
	DialectFirebird2_5   = types.DialectFirebird2_5
	DialectFirebird3_0   = types.DialectFirebird3_0
	DialectH2            = types.DialectH2
	DialectHSQLDB        = types.DialectHSQLDB
	DialectMariaDB       = types.DialectMariaDB
	DialectMySQL5_7      = types.DialectMySQL5_7
	DialectMySQL8_0      = types.DialectMySQL8_0
	DialectOracle11g     = types.DialectOracle11g
	DialectOracle12c     = types.DialectOracle12c
	DialectPostgres9_5   = types.DialectPostgres9_5
	DialectPostgres16    = types.DialectPostgres16
	DialectSQLite        = types.DialectSQLite
	DialectSQLServer2016 = types.DialectSQLServer2016
	DialectSQLServer2022 = types.DialectSQLServer2022
)

// Family groups dialects sharing SQL generation quirks.
type Family = types.Family

// Re-export family constants for public API.
const (
	FamilyDefault   = types.FamilyDefault
	FamilyDB2       = types.FamilyDB2
	FamilyDerby     = types.FamilyDerby
	FamilyFirebird  = types.FamilyFirebird
	FamilyH2        = types.FamilyH2
	FamilyHSQLDB    = types.FamilyHSQLDB
	FamilyMariaDB   = types.FamilyMariaDB
	FamilyMySQL     = types.FamilyMySQL
	FamilyOracle    = types.FamilyOracle
	FamilyPostgres  = types.FamilyPostgres
	FamilySQLite    = types.FamilySQLite
	FamilySQLServer = types.FamilySQLServer
)

// Clause tags a structural region of rendered SQL.
type Clause = types.Clause

// ClauseDropTableTable brackets the DROP TABLE statement body.
const ClauseDropTableTable = types.ClauseDropTableTable

// Phase marks whether a clause event opens or closes its region.
type Phase = types.Phase

// Re-export phase constants for public API.
const (
	PhaseStart = types.PhaseStart
	PhaseEnd   = types.PhaseEnd
)

// ClauseEvent is one structural marker emitted during rendering.
type ClauseEvent = types.ClauseEvent

// ParseDialect resolves a dialect by name, case-insensitively.
func ParseDialect(name string) (Dialect, bool) {
	return types.ParseDialect(name)
}

// Dialects returns every known dialect.
func Dialects() []Dialect {
	return types.Dialects()
}
