// github.com/cutkernel/planar - a 2D planar-region Boolean-geometry kernel

package planar

import (
	"errors"
	"fmt"
)

// ErrDegenerateGeometry is returned by constructors that reject
// near-degenerate input, such as a three-point circle through
// (near-)collinear points.
var ErrDegenerateGeometry = errors.New("planar: degenerate geometry")

// ErrMergeDidNotTerminate is returned by the Boolean merger when the
// extract-one-loop algorithm exceeds its iteration budget. The
// region-merger (BodySet.MergeBodies) catches this specific error and
// reschedules the offending body for a later pass.
var ErrMergeDidNotTerminate = errors.New("planar: merge did not terminate within iteration budget")

// InvariantError is panicked for precondition violations and internal
// invariant failures: a programmer error that the caller cannot recover
// from at the library layer. Its Kind distinguishes a caller mistake
// (PreconditionViolation) from an internal bug (InternalInvariant).
type InvariantError struct {
	Kind    InvariantKind
	Message string
}

// InvariantKind classifies an InvariantError.
type InvariantKind int

const (
	// PreconditionViolation means the caller supplied input that
	// violates a documented precondition (e.g. a negative outer loop
	// passed to NewBody).
	PreconditionViolation InvariantKind = iota
	// InternalInvariant means an internal algorithm invariant was
	// violated (e.g. a Merged intersection producing an unexpected
	// number of positive loops). This indicates a bug in the kernel.
	InternalInvariant
)

func (e *InvariantError) Error() string {
	switch e.Kind {
	case InternalInvariant:
		return fmt.Sprintf("planar: internal invariant violated: %s", e.Message)
	default:
		return fmt.Sprintf("planar: precondition violated: %s", e.Message)
	}
}

// precondition panics with a PreconditionViolation InvariantError if cond
// is false. Used at the boundary of operations with documented
// preconditions.
func precondition(cond bool, format string, args ...any) {
	if !cond {
		panic(&InvariantError{Kind: PreconditionViolation, Message: fmt.Sprintf(format, args...)})
	}
}

// internalInvariant panics with an InternalInvariant InvariantError if
// cond is false. Used for bugs that should never happen given correct
// kernel logic.
func internalInvariant(cond bool, format string, args ...any) {
	if !cond {
		panic(&InvariantError{Kind: InternalInvariant, Message: fmt.Sprintf(format, args...)})
	}
}
