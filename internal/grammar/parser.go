package grammar

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// Parser runs the grammar machine over token lists.
type Parser struct {
	logger *zap.Logger
}

// NewParser returns a parser. A nil logger is replaced with a no-op one.
func NewParser(logger *zap.Logger) *Parser {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Parser{logger: logger}
}

// Result is the outcome of a lenient run: the accumulated draft plus the
// bookkeeping the completion engine branches on.
type Result struct {
	Draft *Draft

	// Stop is the state the machine was in when input ran out.
	Stop State

	// Flag is the unrecognized token that moved the machine into
	// StateFlag; empty otherwise.
	Flag string

	// LastHeaderKey and LastQueryKey are the most recently captured
	// keys. Completion uses them to decide whether a value state really
	// is one, or whether the user is still choosing a key.
	LastHeaderKey string
	LastQueryKey  string
}

// Parse consumes tokens in strict mode. It fails on the first malformed
// token: an unrecognized flag, anything following one, or a repeated
// method.
func (p *Parser) Parse(tokens []string) (*Draft, error) {
	result, err := p.run(tokens, true)
	if err != nil {
		return nil, err
	}
	return result.Draft, nil
}

// ParseLenient consumes tokens in lenient mode. It never fails: malformed
// input degrades into StateFlag, and the state reached at end of input is
// recorded for the completion engine.
func (p *Parser) ParseLenient(tokens []string) *Result {
	result, _ := p.run(tokens, false)
	return result
}

func (p *Parser) run(tokens []string, strict bool) (*Result, error) {
	result := &Result{Draft: NewDraft()}
	draft := result.Draft

	state := StatePath
	for i, token := range tokens {
		if state == StatePath && strings.HasPrefix(token, "-") {
			// Not a path segment; reprocess the token as a flag.
			state = StateArgs
		}
		if !strict && token == "" && state != StatePath {
			// An empty token marks the cursor sitting on a fresh word.
			// Outside PATH it carries no content, and consuming it would
			// move the stop state past the position completion needs.
			continue
		}

		switch state {
		case StatePath:
			if name, value, ok := strings.Cut(token, "="); ok {
				draft.Path += "/{" + name + "}"
				draft.setPathVariable(name, value)
			} else {
				draft.Path += "/" + token
			}

		case StateArgs:
			switch token {
			case "-X":
				state = StateMethod
			case "-H":
				state = StateHeaderKey
			case "-Q":
				state = StateQueryKey
			case "-D":
				state = StateData
			default:
				if strict {
					return nil, &ParseError{Kind: ErrUnexpectedToken, Position: i, Token: token}
				}
				result.Flag = token
				state = StateFlag
			}

		case StateFlag:
			if strict {
				return nil, &ParseError{Kind: ErrUnexpectedToken, Position: i, Token: token}
			}
			// The stream is already off the rails; the recorded flag
			// token is all completion needs.

		case StateMethod:
			if strict && draft.Method != "" {
				return nil, &ParseError{Kind: ErrMethodRepeated, Position: i, Token: token}
			}
			draft.Method = strings.ToLower(token)
			state = StateArgs

		case StateHeaderKey:
			draft.Headers[token] = ""
			result.LastHeaderKey = token
			state = StateHeaderValue
		case StateHeaderValue:
			draft.Headers[result.LastHeaderKey] = token
			state = StateArgs

		case StateQueryKey:
			draft.Queries[token] = ""
			result.LastQueryKey = token
			state = StateQueryValue
		case StateQueryValue:
			draft.Queries[result.LastQueryKey] = token
			state = StateArgs

		case StateData:
			draft.Data = token
			state = StateArgs

		default:
			panic(fmt.Sprintf("grammar: unhandled state %s", state))
		}
	}

	result.Stop = state
	p.logger.Debug("tokens consumed",
		zap.Int("tokens", len(tokens)),
		zap.Bool("strict", strict),
		zap.Stringer("stop", state))
	return result, nil
}
