package term

// Expr is the tagged sum of spec §3: Let, Block, Func, Getter, If, Call,
// Ref, and Evaluated. Evaluated is terminal; every other variant is a
// redex the reducer may still have work to do on.
//
// EXPR and EVALUATED are deliberately the same Go interface (per the
// design note that residuals and values should share a type): an
// Evaluated node IS an Expr, so the reducer's signature stays uniform
// whether or not the budget ran out.
type Expr interface {
	Kind() Kind
}

type exprImpl struct {
	kind Kind
}

func (e exprImpl) Kind() Kind { return e.kind }

// Let introduces a lazy binding: Let(name, valueExpr, body).
type Let struct {
	exprImpl
	Name  string
	Value Expr
	Body  Expr
}

func NewLet(name string, value, body Expr) *Let {
	return &Let{exprImpl: exprImpl{KindLet}, Name: name, Value: value, Body: body}
}

// Decl is the declaration half of a Block: either a Let or a Func.
type Decl interface {
	Expr
	isDecl()
}

func (*Let) isDecl()  {}
func (*Func) isDecl() {}

// NewLetDecl builds a *Let for use as a Block's Decl: its Body is always
// nil, since the scoped expression lives on Block.Body instead. Reduce
// never dispatches on a Decl directly, only reads Name/Value off it, so
// the nil Body is never dereferenced.
func NewLetDecl(name string, value Expr) *Let {
	return &Let{exprImpl: exprImpl{KindLet}, Name: name, Value: value}
}

// Block pairs a declaration with the expression it scopes over. A Block
// whose Decl is a *Let is semantically identical to Let.
type Block struct {
	exprImpl
	Decl Decl
	Body Expr
}

func NewBlock(decl Decl, body Expr) *Block {
	return &Block{exprImpl: exprImpl{KindBlock}, Decl: decl, Body: body}
}

// Func declares a user function; it only ever appears as a Block's Decl.
type Func struct {
	exprImpl
	Name   string
	Params []string
	Body   Expr
}

func NewFunc(name string, params []string, body Expr) *Func {
	return &Func{exprImpl: exprImpl{KindFunc}, Name: name, Params: params, Body: body}
}

// Getter accesses a field on a record (CaseObj) value.
type Getter struct {
	exprImpl
	Obj   Expr
	Field string
}

func NewGetter(obj Expr, field string) *Getter {
	return &Getter{exprImpl: exprImpl{KindGetter}, Obj: obj, Field: field}
}

// If is a strict conditional.
type If struct {
	exprImpl
	Cond Expr
	Then Expr
	Else Expr
}

func NewIf(cond, then, els Expr) *If {
	return &If{exprImpl: exprImpl{KindIf}, Cond: cond, Then: then, Else: els}
}

// Call invokes the function identified by Header with positional Args.
type Call struct {
	exprImpl
	Header Header
	Args   []Expr
}

func NewCall(header Header, args []Expr) *Call {
	return &Call{exprImpl: exprImpl{KindCall}, Header: header, Args: args}
}

// Ref references a named binding.
type Ref struct {
	exprImpl
	Name string
}

func NewRef(name string) *Ref {
	return &Ref{exprImpl: exprImpl{KindRef}, Name: name}
}

// Evaluated wraps a fully-reduced Value. The reducer returns it unchanged.
type Evaluated struct {
	exprImpl
	V Value
}

func NewEvaluated(v Value) *Evaluated {
	return &Evaluated{exprImpl: exprImpl{KindEvaluated}, V: v}
}

// IsEvaluated reports whether expr is a terminal value node.
func IsEvaluated(expr Expr) bool {
	_, ok := expr.(*Evaluated)
	return ok
}

// AsValue extracts the Value from an Evaluated node, panicking if expr is
// not one. Callers must check IsEvaluated (or rely on a spec invariant
// that guarantees it) before calling this.
func AsValue(expr Expr) Value {
	return expr.(*Evaluated).V
}
