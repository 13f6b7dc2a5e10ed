package grammar

import "fmt"

// ParseErrorKind classifies why a token stream is not well-formed.
type ParseErrorKind int

const (
	// ErrUnexpectedToken is an unrecognized token where a flag was
	// expected.
	ErrUnexpectedToken ParseErrorKind = iota
	// ErrMethodRepeated is a second -X method assignment.
	ErrMethodRepeated
)

// ParseError reports a malformed token stream. Only strict parsing
// returns it; lenient parsing records state instead of failing.
type ParseError struct {
	Kind     ParseErrorKind
	Position int    // index of the offending token
	Token    string // the offending token
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case ErrUnexpectedToken:
		return fmt.Sprintf("Unexpected '%s'.", e.Token)
	case ErrMethodRepeated:
		return "Method can only be specified once."
	default:
		panic(fmt.Sprintf("grammar: unknown parse error kind %d", int(e.Kind)))
	}
}
