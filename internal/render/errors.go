package render

import (
	"fmt"

	"github.com/zoobzio/astddl/internal/types"
)

// ClauseMismatchError indicates unbalanced clause markers.
// It is raised with panic: markers are only pushed and popped by the
// compiler, so an imbalance is a bug in the compiler itself.
type ClauseMismatchError struct {
	Expected types.Clause // innermost open clause, empty when none
	Got      types.Clause // clause passed to End, empty for Finish
}

func (e *ClauseMismatchError) Error() string {
	switch {
	case e.Expected == "":
		return fmt.Sprintf("clause %s ended without a matching start", e.Got)
	case e.Got == "":
		return fmt.Sprintf("clause %s was never ended", e.Expected)
	default:
		return fmt.Sprintf("clause %s ended while %s is open", e.Got, e.Expected)
	}
}

// UnknownNameError indicates a name that does not resolve to a known value.
type UnknownNameError struct {
	Kind string
	Name string
}

func (e *UnknownNameError) Error() string {
	return fmt.Sprintf("unknown %s: %q", e.Kind, e.Name)
}

// NewUnknownNameError creates a new unknown name error.
func NewUnknownNameError(kind, name string) error {
	return &UnknownNameError{Kind: kind, Name: name}
}
