package sqlite

import (
	"testing"

	"github.com/zoobzio/astddl/internal/types"
)

func TestRender_DropTable(t *testing.T) {
	r := New()
	tests := []struct {
		stmt types.DropTable
		want string
	}{
		{types.DropTable{Table: types.Table{Name: "users"}}, `DROP TABLE "users"`},
		{types.DropTable{Table: types.Table{Name: "users"}, IfExists: true}, `DROP TABLE IF EXISTS "users"`},
		{types.DropTable{Table: types.Table{Schema: "main", Name: "users"}, IfExists: true}, `DROP TABLE IF EXISTS "main"."users"`},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			result, err := r.Render(&tt.stmt)
			if err != nil {
				t.Fatalf("Render() error = %v", err)
			}
			if result.SQL != tt.want {
				t.Errorf("SQL = %q, want %q", result.SQL, tt.want)
			}
		})
	}
}

func TestRender_Events(t *testing.T) {
	result, err := New().Render(&types.DropTable{Table: types.Table{Name: "users"}, IfExists: true})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	want := []types.ClauseEvent{
		{Clause: types.ClauseDropTableTable, Phase: types.PhaseStart},
		{Clause: types.ClauseDropTableTable, Phase: types.PhaseEnd},
	}
	if len(result.Events) != len(want) {
		t.Fatalf("Events = %v, want %v", result.Events, want)
	}
	for i := range want {
		if result.Events[i] != want[i] {
			t.Errorf("Events[%d] = %v, want %v", i, result.Events[i], want[i])
		}
	}
}

func TestCapabilities(t *testing.T) {
	r := New()
	if r.Dialect() != types.DialectSQLite {
		t.Errorf("Dialect() = %s, want sqlite", r.Dialect())
	}
	if caps := r.Capabilities(); !caps.ConditionalDrop || caps.DropCascade {
		t.Errorf("Capabilities() = %+v", caps)
	}
}
