// Package grammar turns an ordered command-line token list into a request
// draft. The machine runs in two modes: strict, which fails on malformed
// input and backs request execution, and lenient, which never fails and
// records where consumption stopped so completion can pick up from there.
package grammar

import "fmt"

// State identifies the position of the grammar machine in the token
// stream. The set is closed: every consumer switches over it exhaustively
// and panics on values it does not know.
type State int

const (
	// StatePath consumes leading path segments. Initial state.
	StatePath State = iota
	// StateArgs dispatches on the flag tokens -X, -H, -Q and -D.
	StateArgs
	// StateFlag holds an unrecognized flag token. Lenient parsing only;
	// strict parsing fails instead of entering it.
	StateFlag
	// StateMethod consumes the HTTP method after -X.
	StateMethod
	// StateHeaderKey and StateHeaderValue consume the -H pair.
	StateHeaderKey
	StateHeaderValue
	// StateQueryKey and StateQueryValue consume the -Q pair.
	StateQueryKey
	StateQueryValue
	// StateData consumes the request payload after -D.
	StateData
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StatePath:
		return "PATH"
	case StateArgs:
		return "ARGS"
	case StateFlag:
		return "FLAG"
	case StateMethod:
		return "METHOD"
	case StateHeaderKey:
		return "HEADER_KEY"
	case StateHeaderValue:
		return "HEADER_VALUE"
	case StateQueryKey:
		return "QUERY_KEY"
	case StateQueryValue:
		return "QUERY_VALUE"
	case StateData:
		return "DATA"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}
