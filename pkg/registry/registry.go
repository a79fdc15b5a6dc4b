// Package registry describes the function-lookup component of spec §4.1:
// native and user function descriptors keyed by term.Header, plus the
// small enumeration of standard-library cost-table versions.
package registry

import (
	"fmt"

	"github.com/chainscript/evalcore/pkg/term"
)

// StdLibVersion selects which cost table a Native descriptor charges
// against. The evaluator never branches on it for anything else.
type StdLibVersion string

const (
	V1 StdLibVersion = "v1"
	V2 StdLibVersion = "v2"
	V3 StdLibVersion = "v3"
)

// CostTable maps a function header to the cost of invoking it under one
// StdLibVersion.
type CostTable map[term.Header]uint64

// NativeImpl is a pure, total function from fully-evaluated argument
// values to a result value, or a host error for ill-typed invocations.
// Its real implementations live outside this module (spec §1): this
// package only carries the signature and cost, per the standard
// library's contract with the evaluator.
type NativeImpl func(args []term.Value) (term.Value, error)

// Descriptor is the tagged sum of spec §3's function descriptor: Native
// or User.
type Descriptor interface {
	Header() term.Header
	isDescriptor()
}

// Native wraps a standard-library function: its header, a cost per
// StdLibVersion, and its pure implementation.
type Native struct {
	Hdr           term.Header
	CostByVersion map[StdLibVersion]uint64
	Impl          NativeImpl
}

func NewNative(hdr term.Header, costByVersion map[StdLibVersion]uint64, impl NativeImpl) *Native {
	return &Native{Hdr: hdr, CostByVersion: costByVersion, Impl: impl}
}

func (n *Native) Header() term.Header { return n.Hdr }
func (*Native) isDescriptor()         {}

// Cost returns the cost of invoking n under version, erroring if the
// table carries no entry for it — an unversioned native is a
// configuration bug, not a runtime condition callers should paper over.
func (n *Native) Cost(version StdLibVersion) (uint64, error) {
	c, ok := n.CostByVersion[version]
	if !ok {
		return 0, fmt.Errorf("native %s: no cost entry for stdlib version %s", n.Hdr, version)
	}
	return c, nil
}

// User wraps a source-defined function: its header, parameter names, and
// body. User calls are β-expanded into a Let chain by package reduce
// rather than evaluated through a native call frame (spec §9).
type User struct {
	Hdr    term.Header
	Params []string
	Body   term.Expr
}

func NewUser(hdr term.Header, params []string, body term.Expr) *User {
	return &User{Hdr: hdr, Params: params, Body: body}
}

func (u *User) Header() term.Header { return u.Hdr }
func (*User) isDescriptor()         {}
