package astddl_test

import (
	"strings"
	"testing"

	"github.com/zoobzio/astddl"
	"github.com/zoobzio/astddl/oracle"
	"github.com/zoobzio/astddl/postgres"
	"github.com/zoobzio/dbml"
)

func createTestInstance(t *testing.T) *astddl.ASTDDL {
	t.Helper()

	project := dbml.NewProject("test_db")

	users := dbml.NewTable("users")
	users.AddColumn(dbml.NewColumn("id", "bigint"))
	users.AddColumn(dbml.NewColumn("email", "varchar"))
	project.AddTable(users)

	posts := dbml.NewTable("posts")
	posts.AddColumn(dbml.NewColumn("id", "bigint"))
	posts.AddColumn(dbml.NewColumn("user_id", "bigint"))
	project.AddTable(posts)

	instance, err := astddl.NewFromDBML(project)
	if err != nil {
		t.Fatalf("NewFromDBML() error = %v", err)
	}
	return instance
}

func TestNewFromDBML_Nil(t *testing.T) {
	if _, err := astddl.NewFromDBML(nil); err == nil {
		t.Error("Expected error for nil project")
	}
}

func TestInstance_T(t *testing.T) {
	instance := createTestInstance(t)

	users := instance.T("users")
	if users.Name != "users" {
		t.Errorf("Expected 'users', got '%s'", users.Name)
	}

	if _, err := instance.TryT("comments"); err == nil {
		t.Error("Expected error for undeclared table")
	}

	defer func() {
		if recover() == nil {
			t.Error("Expected panic for undeclared table")
		}
	}()
	instance.T("comments")
}

func TestInstance_WithSchema(t *testing.T) {
	instance := createTestInstance(t)
	qualified := instance.WithSchema("blog")

	if got := qualified.T("posts").Schema; got != "blog" {
		t.Errorf("Expected schema 'blog', got '%s'", got)
	}
	if got := instance.T("posts").Schema; got != "" {
		t.Errorf("Original instance was modified: schema '%s'", got)
	}
}

func TestInstance_Tables(t *testing.T) {
	got := createTestInstance(t).Tables()
	want := []string{"posts", "users"}
	if len(got) != len(want) {
		t.Fatalf("Tables() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Tables()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestInstance_DropAll(t *testing.T) {
	instance := createTestInstance(t)

	var sql []string
	for _, b := range instance.DropAll(true) {
		result, err := b.Cascade().Render(postgres.New())
		if err != nil {
			t.Fatalf("Render() error = %v", err)
		}
		sql = append(sql, result.SQL)
	}

	want := []string{
		`DROP TABLE IF EXISTS "posts" CASCADE`,
		`DROP TABLE IF EXISTS "users" CASCADE`,
	}
	if len(sql) != len(want) {
		t.Fatalf("DropAll rendered %v, want %v", sql, want)
	}
	for i := range want {
		if sql[i] != want[i] {
			t.Errorf("statement %d = %q, want %q", i, sql[i], want[i])
		}
	}
}

func TestInstance_DropAllEmulated(t *testing.T) {
	instance := createTestInstance(t).WithSchema("BLOG")

	for _, b := range instance.DropAll(true) {
		result := b.MustRender(oracle.New())
		if !result.Emulated {
			t.Errorf("Expected emulated drop for Oracle, got %q", result.SQL)
		}
	}
	for _, b := range instance.DropAll(false) {
		result := b.MustRender(oracle.New())
		if result.Emulated {
			t.Errorf("Expected direct drop without IF EXISTS, got %q", result.SQL)
		}
	}
}

func createMultiSchemaInstance(t *testing.T) *astddl.ASTDDL {
	t.Helper()

	project := dbml.NewProject("warehouse")
	project.AddTable(dbml.NewTable("events").WithSchema("billing"))
	project.AddTable(dbml.NewTable("events").WithSchema("audit"))
	project.AddTable(dbml.NewTable("invoices").WithSchema("billing"))
	project.AddTable(dbml.NewTable("users"))

	instance, err := astddl.NewFromDBML(project)
	if err != nil {
		t.Fatalf("NewFromDBML() error = %v", err)
	}
	return instance
}

func TestInstance_SchemaQualifiedTables(t *testing.T) {
	instance := createMultiSchemaInstance(t)

	got := instance.Tables()
	want := []string{"audit.events", "billing.events", "billing.invoices", "users"}
	if len(got) != len(want) {
		t.Fatalf("Tables() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Tables()[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	if got := instance.T("billing.events"); got.Schema != "billing" || got.Name != "events" {
		t.Errorf("T(billing.events) = %+v", got)
	}
	if got := instance.T("invoices"); got.Schema != "billing" {
		t.Errorf("T(invoices) schema = %q, want %q", got.Schema, "billing")
	}
	if got := instance.T("users"); got.Schema != "" {
		t.Errorf("T(users) schema = %q, want unqualified", got.Schema)
	}
}

func TestInstance_AmbiguousBareName(t *testing.T) {
	_, err := createMultiSchemaInstance(t).TryT("events")
	if err == nil {
		t.Fatal("Expected error for a name declared in two schemas")
	}
	if !strings.Contains(err.Error(), "audit.events") || !strings.Contains(err.Error(), "billing.events") {
		t.Errorf("Error = %v, want both candidates listed", err)
	}
}

func TestInstance_DropAllQualified(t *testing.T) {
	instance := createMultiSchemaInstance(t)

	var sql []string
	for _, b := range instance.DropAll(true) {
		sql = append(sql, b.MustRender(postgres.New()).SQL)
	}

	want := []string{
		`DROP TABLE IF EXISTS "audit"."events"`,
		`DROP TABLE IF EXISTS "billing"."events"`,
		`DROP TABLE IF EXISTS "billing"."invoices"`,
		`DROP TABLE IF EXISTS "users"`,
	}
	if len(sql) != len(want) {
		t.Fatalf("DropAll rendered %v, want %v", sql, want)
	}
	for i := range want {
		if sql[i] != want[i] {
			t.Errorf("statement %d = %q, want %q", i, sql[i], want[i])
		}
	}
}

func TestInstance_WithSchemaKeepsDeclaredSchema(t *testing.T) {
	qualified := createMultiSchemaInstance(t).WithSchema("staging")

	if got := qualified.T("users").Schema; got != "staging" {
		t.Errorf("T(users) schema = %q, want %q", got, "staging")
	}
	if got := qualified.T("audit.events").Schema; got != "audit" {
		t.Errorf("T(audit.events) schema = %q, want %q", got, "audit")
	}
}
