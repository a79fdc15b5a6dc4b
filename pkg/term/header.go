package term

import "fmt"

// Header is the opaque key identifying a callable function by name and
// arity. It must be a comparable Go value so it can key the funcs map on
// Context and be embedded directly in a Call node.
type Header struct {
	Name  string
	Arity int
}

func NewHeader(name string, arity int) Header {
	return Header{Name: name, Arity: arity}
}

func (h Header) String() string {
	return fmt.Sprintf("%s/%d", h.Name, h.Arity)
}
