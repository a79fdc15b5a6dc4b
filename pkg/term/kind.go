package term

// Kind identifies the outermost constructor of an Expr, mirroring the
// teacher's ast.NodeType. Package reduce dispatches with a type switch on
// the concrete node type, not on Kind.
type Kind string

const (
	KindLet       Kind = "Let"
	KindBlock     Kind = "Block"
	KindFunc      Kind = "Func"
	KindGetter    Kind = "Getter"
	KindIf        Kind = "If"
	KindCall      Kind = "Call"
	KindRef       Kind = "Ref"
	KindEvaluated Kind = "Evaluated"
)

// ValueKind identifies the variant of a fully-reduced Value.
type ValueKind string

const (
	ValueKindBool    ValueKind = "Bool"
	ValueKindInt     ValueKind = "Int"
	ValueKindBytes   ValueKind = "Bytes"
	ValueKindString  ValueKind = "String"
	ValueKindCaseObj ValueKind = "CaseObj"
	ValueKindUnit    ValueKind = "Unit"
)
