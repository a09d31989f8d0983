package integration

import (
	"context"
	"testing"

	"github.com/zoobzio/astddl"
	"github.com/zoobzio/astddl/postgres"
	astddltesting "github.com/zoobzio/astddl/testing"
	"github.com/zoobzio/dbml"
)

func pgRelationExists(ctx context.Context, t *testing.T, pc *PostgresContainer, name string) bool {
	t.Helper()
	var exists bool
	if err := pc.conn.QueryRow(ctx, `SELECT to_regclass($1) IS NOT NULL`, name).Scan(&exists); err != nil {
		t.Fatalf("Failed to check relation %s: %v", name, err)
	}
	return exists
}

func TestPostgres_DropTableIfExists(t *testing.T) {
	pc := getPostgresContainer(t)
	ctx := context.Background()
	r := postgres.New()

	result := astddl.DropTableIfExists(astddl.T("never_created")).MustRender(r)
	astddltesting.AssertSQL(t, `DROP TABLE IF EXISTS "never_created"`, result.SQL)
	astddltesting.AssertEvents(t, result)
	if _, err := pc.conn.Exec(ctx, result.SQL); err != nil {
		t.Errorf("DROP TABLE IF EXISTS on a missing table failed: %v\nSQL: %s", err, result.SQL)
	}

	plain := astddl.DropTable(astddl.T("never_created")).MustRender(r)
	if _, err := pc.conn.Exec(ctx, plain.SQL); err == nil {
		t.Error("expected error dropping a missing table")
	}
}

func TestPostgres_Cascade(t *testing.T) {
	pc := getPostgresContainer(t)
	ctx := context.Background()
	r := postgres.New()

	for _, stmt := range []string{
		`CREATE SCHEMA IF NOT EXISTS app`,
		`CREATE TABLE app.users (id bigint PRIMARY KEY)`,
		`CREATE VIEW app.active_users AS SELECT id FROM app.users`,
	} {
		if _, err := pc.conn.Exec(ctx, stmt); err != nil {
			t.Fatalf("setup: %v\nSQL: %s", err, stmt)
		}
	}

	// Restrict refuses while the view depends on the table.
	restrict := astddl.DropTable(astddl.T("users", "app")).Cascade().Restrict().MustRender(r)
	if _, err := pc.conn.Exec(ctx, restrict.SQL); err == nil {
		t.Fatal("expected dependent objects to block the drop")
	}

	cascade := astddl.DropTableIfExists(astddl.T("users", "app")).Cascade().MustRender(r)
	if _, err := pc.conn.Exec(ctx, cascade.SQL); err != nil {
		t.Fatalf("drop cascade: %v\nSQL: %s", err, cascade.SQL)
	}
	if pgRelationExists(ctx, t, pc, "app.users") || pgRelationExists(ctx, t, pc, "app.active_users") {
		t.Error("CASCADE left the table or its dependent view behind")
	}
}

func TestPostgres_DropAllSchemaQualified(t *testing.T) {
	pc := getPostgresContainer(t)
	ctx := context.Background()

	for _, stmt := range []string{
		`CREATE SCHEMA IF NOT EXISTS billing`,
		`CREATE SCHEMA IF NOT EXISTS audit`,
		`CREATE TABLE billing.events (id bigint)`,
		`CREATE TABLE audit.events (id bigint)`,
		`CREATE TABLE public.events (id bigint)`,
	} {
		if _, err := pc.conn.Exec(ctx, stmt); err != nil {
			t.Fatalf("setup: %v\nSQL: %s", err, stmt)
		}
	}
	t.Cleanup(func() { _, _ = pc.conn.Exec(ctx, `DROP TABLE IF EXISTS public.events`) })

	project := dbml.NewProject("warehouse")
	project.AddTable(dbml.NewTable("events").WithSchema("billing"))
	project.AddTable(dbml.NewTable("events").WithSchema("audit"))
	instance, err := astddl.NewFromDBML(project)
	astddltesting.AssertNoError(t, err)

	for _, b := range instance.DropAll(true) {
		result := b.MustRender(postgres.New())
		if _, err := pc.conn.Exec(ctx, result.SQL); err != nil {
			t.Fatalf("drop: %v\nSQL: %s", err, result.SQL)
		}
	}

	if pgRelationExists(ctx, t, pc, "billing.events") || pgRelationExists(ctx, t, pc, "audit.events") {
		t.Error("schema-qualified tables still exist")
	}
	if !pgRelationExists(ctx, t, pc, "public.events") {
		t.Error("unqualified drop removed public.events")
	}
}
