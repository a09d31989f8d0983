// Package testing provides test utilities for astddl.
package testing

import (
	"strings"
	"testing"

	"github.com/zoobzio/astddl"
	"github.com/zoobzio/dbml"
)

// TestInstance creates an ASTDDL instance for testing.
// Declares users, posts, comments, orders and products tables.
func TestInstance(t testing.TB) *astddl.ASTDDL {
	t.Helper()

	project := dbml.NewProject("test")

	users := dbml.NewTable("users")
	users.AddColumn(dbml.NewColumn("id", "bigint"))
	users.AddColumn(dbml.NewColumn("email", "varchar"))
	project.AddTable(users)

	posts := dbml.NewTable("posts")
	posts.AddColumn(dbml.NewColumn("id", "bigint"))
	posts.AddColumn(dbml.NewColumn("user_id", "bigint"))
	project.AddTable(posts)

	comments := dbml.NewTable("comments")
	comments.AddColumn(dbml.NewColumn("id", "bigint"))
	comments.AddColumn(dbml.NewColumn("post_id", "bigint"))
	project.AddTable(comments)

	orders := dbml.NewTable("orders")
	orders.AddColumn(dbml.NewColumn("id", "bigint"))
	orders.AddColumn(dbml.NewColumn("user_id", "bigint"))
	project.AddTable(orders)

	products := dbml.NewTable("products")
	products.AddColumn(dbml.NewColumn("id", "bigint"))
	products.AddColumn(dbml.NewColumn("name", "varchar"))
	project.AddTable(products)

	instance, err := astddl.NewFromDBML(project)
	if err != nil {
		t.Fatalf("Failed to create test instance: %v", err)
	}
	return instance
}

// AssertSQL compares expected and actual SQL, reporting detailed differences.
func AssertSQL(t testing.TB, expected, actual string) {
	t.Helper()
	if expected != actual {
		t.Errorf("SQL mismatch:\nExpected: %s\nActual:   %s", expected, actual)
	}
}

// AssertEvents checks that a result carries exactly one balanced pair of
// clause events for the DROP TABLE region.
func AssertEvents(t testing.TB, result *astddl.QueryResult) {
	t.Helper()
	want := []astddl.ClauseEvent{
		{Clause: astddl.ClauseDropTableTable, Phase: astddl.PhaseStart},
		{Clause: astddl.ClauseDropTableTable, Phase: astddl.PhaseEnd},
	}
	if len(result.Events) != len(want) {
		t.Errorf("Event count mismatch: expected %v, got %v", want, result.Events)
		return
	}
	for i := range want {
		if result.Events[i] != want[i] {
			t.Errorf("Event %d: expected %v, got %v", i, want[i], result.Events[i])
		}
	}
}

// AssertEmulated checks whether the statement was wrapped in a fallback.
func AssertEmulated(t testing.TB, result *astddl.QueryResult, want bool) {
	t.Helper()
	if result.Emulated != want {
		t.Errorf("Emulated mismatch: expected %v, got %v\nSQL: %s", want, result.Emulated, result.SQL)
	}
	if want && strings.Contains(result.SQL, "IF EXISTS") {
		t.Errorf("Emulated statement contains IF EXISTS: %s", result.SQL)
	}
}

// AssertNoError fails the test if err is not nil.
func AssertNoError(t testing.TB, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
}

// AssertErrorContains checks that error message contains substring.
func AssertErrorContains(t testing.TB, err error, substr string) {
	t.Helper()
	if err == nil {
		t.Fatalf("Expected error containing %q but got nil", substr)
	}
	if !strings.Contains(err.Error(), substr) {
		t.Errorf("Expected error containing %q, got: %v", substr, err)
	}
}

// AssertPanics verifies that a function panics.
func AssertPanics(t testing.TB, fn func()) {
	t.Helper()
	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic but function completed normally")
		}
	}()
	fn()
}
