package render

import (
	"errors"
	"testing"

	"github.com/zoobzio/astddl/internal/types"
)

func TestClauseMismatchError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      ClauseMismatchError
		expected string
	}{
		{
			name:     "end without start",
			err:      ClauseMismatchError{Got: types.ClauseDropTableTable},
			expected: "clause DROP_TABLE_TABLE ended without a matching start",
		},
		{
			name:     "never ended",
			err:      ClauseMismatchError{Expected: types.ClauseDropTableTable},
			expected: "clause DROP_TABLE_TABLE was never ended",
		},
		{
			name:     "crossed",
			err:      ClauseMismatchError{Expected: types.ClauseDropTableTable, Got: "OTHER"},
			expected: "clause OTHER ended while DROP_TABLE_TABLE is open",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestNewUnknownNameError(t *testing.T) {
	err := NewUnknownNameError("dialect", "cobol")

	var unErr *UnknownNameError
	if !errors.As(err, &unErr) {
		t.Fatal("expected *UnknownNameError")
	}
	if unErr.Kind != "dialect" {
		t.Errorf("Kind = %q, want %q", unErr.Kind, "dialect")
	}
	if unErr.Name != "cobol" {
		t.Errorf("Name = %q, want %q", unErr.Name, "cobol")
	}
	if got, want := err.Error(), `unknown dialect: "cobol"`; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
