package circuit

import "fmt"

// Kind identifies the category of a library-level failure. These are
// construction- or propagation-time defects, not conditions a running
// circuit recovers from on its own.
type Kind int

const (
	// UnconnectedInput: verify found an input port with no upstream and
	// no propagation function.
	UnconnectedInput Kind = iota
	// ZeroWidthPort: verify found a port whose width is 0.
	ZeroWidthPort
	// DuplicateConnection: Connect was called on a destination that
	// already has an upstream source.
	DuplicateConnection
	// WidthMismatch: Connect was called between ports of different widths.
	WidthMismatch
	// UninitializedSignal: a derived port has neither an upstream link
	// nor a propagation function.
	UninitializedSignal
	// DivisionByZero: a Div/Mod primitive received a zero denominator.
	DivisionByZero
	// PartitionArityError: Kernighan-Lin bisection was called with fewer
	// than 2 nodes.
	PartitionArityError
	// RoutingNoPath: A* produced no path for a non-trivial net.
	RoutingNoPath
	// ReverseExhausted: Reverse was called while some register's
	// reverse stack is empty.
	ReverseExhausted
	// DoubleGraphicRegister: a graphics back-pointer was set twice.
	DoubleGraphicRegister
	// InvalidBitRange: a BitExtr primitive was constructed with hi < lo
	// or hi out of range of the input width.
	InvalidBitRange
	// UnpropagatableCircuit: a settle round made no progress — the
	// circuit contains a combinational loop with no register break.
	UnpropagatableCircuit
)

func (k Kind) String() string {
	switch k {
	case UnconnectedInput:
		return "UnconnectedInput"
	case ZeroWidthPort:
		return "ZeroWidthPort"
	case DuplicateConnection:
		return "DuplicateConnection"
	case WidthMismatch:
		return "WidthMismatch"
	case UninitializedSignal:
		return "UninitializedSignal"
	case DivisionByZero:
		return "DivisionByZero"
	case PartitionArityError:
		return "PartitionArityError"
	case RoutingNoPath:
		return "RoutingNoPath"
	case ReverseExhausted:
		return "ReverseExhausted"
	case DoubleGraphicRegister:
		return "DoubleGraphicRegister"
	case InvalidBitRange:
		return "InvalidBitRange"
	case UnpropagatableCircuit:
		return "UnpropagatableCircuit"
	default:
		return "Unknown"
	}
}

// Error is a typed library-level failure. Callers should check Kind via
// errors.As rather than string-matching Error().
type Error struct {
	Kind    Kind
	Subject string // e.g. port or component name
	Detail  string
}

func (e *Error) Error() string {
	if e.Subject == "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
	}
	return fmt.Sprintf("%s: %s: %s", e.Kind, e.Subject, e.Detail)
}

func newError(kind Kind, subject, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Subject: subject, Detail: fmt.Sprintf(format, args...)}
}
