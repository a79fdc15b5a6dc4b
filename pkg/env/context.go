// Package env implements the environment component of spec §3-§4.1: an
// immutable-style Context carrying name→binding and header→function
// tables plus accumulated cost. Every "with"-prefixed method returns a
// new Context; none mutates the receiver, matching spec §3's "treated as
// values (logical copies on update)".
package env

import (
	"sort"

	"github.com/chainscript/evalcore/pkg/registry"
	"github.com/chainscript/evalcore/pkg/term"
)

// Binding is the entry stored for each name in Context.lets: the
// (possibly still-redex) value expression, the environment that was in
// force when the binding was installed, and whether it has already been
// forced to a value.
type Binding struct {
	ValueExpr term.Expr
	Captured  *Context
	Resolved  bool
}

// Context is the triple (lets, funcs, cost) of spec §3, plus the
// stdlib version it was constructed with (spec §6's evaluate takes
// stdLibVersion; it rides along on Context rather than threading as a
// separate reduce parameter).
type Context struct {
	lets    map[string]Binding
	funcs   map[term.Header]registry.Descriptor
	cost    uint64
	version registry.StdLibVersion
}

// New returns an empty Context at zero cost for the given stdlib version.
func New(version registry.StdLibVersion) *Context {
	return &Context{
		lets:    make(map[string]Binding),
		funcs:   make(map[term.Header]registry.Descriptor),
		cost:    0,
		version: version,
	}
}

func (c *Context) cloneLets() *Context {
	lets := make(map[string]Binding, len(c.lets))
	for k, v := range c.lets {
		lets[k] = v
	}
	return &Context{lets: lets, funcs: c.funcs, cost: c.cost, version: c.version}
}

func (c *Context) cloneFuncs() *Context {
	funcs := make(map[term.Header]registry.Descriptor, len(c.funcs))
	for k, v := range c.funcs {
		funcs[k] = v
	}
	return &Context{lets: c.lets, funcs: funcs, cost: c.cost, version: c.version}
}

// Cost returns the accumulated cost.
func (c *Context) Cost() uint64 { return c.cost }

// Version returns the stdlib version this Context evaluates natives
// against.
func (c *Context) Version() registry.StdLibVersion { return c.version }

// WithCost returns a Context with cost increased by k.
func (c *Context) WithCost(k uint64) *Context {
	return &Context{lets: c.lets, funcs: c.funcs, cost: c.cost + k, version: c.version}
}

// WithLet installs or replaces a binding. The captured environment
// recorded for the new entry is c itself — the environment at the
// moment WithLet is called — which is what makes recursive Let illegal
// (spec §9): c does not yet contain name under the same unresolved
// entry.
func (c *Context) WithLet(name string, valueExpr term.Expr, resolved bool) *Context {
	next := c.cloneLets()
	next.lets[name] = Binding{ValueExpr: valueExpr, Captured: c, Resolved: resolved}
	return next
}

// WithAbsoluteCost returns a Context whose lets/funcs/version are c's own
// but whose cost is set to the given absolute value rather than added to
// c's current cost. It exists for exactly one caller: reduceUserCall,
// which must restore the caller's bindings after a β-expanded user call
// while still carrying forward however much cost the call body burned.
func (c *Context) WithAbsoluteCost(cost uint64) *Context {
	return &Context{lets: c.lets, funcs: c.funcs, cost: cost, version: c.version}
}

// WithFunction installs or replaces a function descriptor.
func (c *Context) WithFunction(desc registry.Descriptor) *Context {
	next := c.cloneFuncs()
	next.funcs[desc.Header()] = desc
	return next
}

// Combine produces a Context whose lets and funcs are c's overridden by
// other's, and whose cost is the max of the two. It is used only when
// restoring a closure's captured frame for a Ref lookup (spec §4.4).
func (c *Context) Combine(other *Context) *Context {
	lets := make(map[string]Binding, len(c.lets)+len(other.lets))
	for k, v := range c.lets {
		lets[k] = v
	}
	for k, v := range other.lets {
		lets[k] = v
	}
	funcs := make(map[term.Header]registry.Descriptor, len(c.funcs)+len(other.funcs))
	for k, v := range c.funcs {
		funcs[k] = v
	}
	for k, v := range other.funcs {
		funcs[k] = v
	}
	cost := c.cost
	if other.cost > cost {
		cost = other.cost
	}
	return &Context{lets: lets, funcs: funcs, cost: cost, version: c.version}
}

// Exhausted reports whether cost has reached or passed limit.
func (c *Context) Exhausted(limit uint64) bool {
	return c.cost >= limit
}

// Lookup returns the binding entry for name.
func (c *Context) Lookup(name string) (Binding, bool) {
	b, ok := c.lets[name]
	return b, ok
}

// LookupFunc returns the function descriptor for header.
func (c *Context) LookupFunc(header term.Header) (registry.Descriptor, bool) {
	d, ok := c.funcs[header]
	return d, ok
}

// LetNames returns the bound names in sorted order. It exists for
// deterministic debugging output (the CLI's inspect subcommand) and is
// never called from package reduce.
func (c *Context) LetNames() []string {
	names := make([]string, 0, len(c.lets))
	for k := range c.lets {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
