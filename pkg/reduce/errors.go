package reduce

import (
	"errors"
	"fmt"

	"github.com/chainscript/evalcore/pkg/term"
)

// Sentinel errors for the structural-error taxonomy of spec §7.3. Callers
// use errors.Is against these rather than string-matching, the same way
// the teacher's cmd/able/main.go checks errors.Is(err, errManifestNotFound).
var (
	ErrUnknownBinding = errors.New("unknown binding")
	ErrUnknownHeader  = errors.New("unknown function header")
	ErrNotARecord     = errors.New("getter target is not a record")
	ErrNoSuchField    = errors.New("no such field")
	ErrNotABool       = errors.New("if condition is not a boolean")
	ErrArityMismatch  = errors.New("call argument count does not match header arity")
)

// StructuralError reports a malformed-input condition from spec §7.3:
// missing binding, missing header, missing field, a type mismatch in an
// If condition or Getter target, or an arity mismatch. These indicate a
// compiler bug or a malformed input tree and must not occur for
// well-typed programs.
type StructuralError struct {
	Sentinel error
	Detail   string
}

func (e *StructuralError) Error() string {
	if e.Detail == "" {
		return e.Sentinel.Error()
	}
	return fmt.Sprintf("%s: %s", e.Sentinel.Error(), e.Detail)
}

func (e *StructuralError) Unwrap() error { return e.Sentinel }

func structuralf(sentinel error, format string, args ...any) *StructuralError {
	return &StructuralError{Sentinel: sentinel, Detail: fmt.Sprintf(format, args...)}
}

// HostError reports a domain-specific failure raised by a native
// function (spec §7.2): the evaluator aborts the whole evaluation,
// carrying the failing header, the cost already charged, and the
// underlying message.
type HostError struct {
	Header term.Header
	Cost   uint64
	Err    error
}

func (e *HostError) Error() string {
	return fmt.Sprintf("native %s failed after cost %d: %v", e.Header, e.Cost, e.Err)
}

func (e *HostError) Unwrap() error { return e.Err }
