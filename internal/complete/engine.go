// Package complete proposes the next token for a partially typed
// command line.
//
// Tokens are normalized, parsed leniently and the parser's stop state
// decides what gets offered: contract paths segment by segment, flag
// tokens, methods, or the parameter keys the contract declares for the
// drafted request. Value positions never complete.
package complete

import (
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/m-horky/autocli/internal/contract"
	"github.com/m-horky/autocli/internal/grammar"
)

// Engine computes completions against one contract index.
type Engine struct {
	index  *contract.Index
	parser *grammar.Parser
	logger *zap.Logger
}

// NewEngine returns a completion engine backed by the contract index. A
// nil logger is replaced with a no-op one.
func NewEngine(index *contract.Index, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		index:  index,
		parser: grammar.NewParser(logger),
		logger: logger,
	}
}

// Complete returns the sorted candidates for the token under the cursor.
// The last token is the partial word being typed; an empty last token
// means the cursor sits on a fresh word.
func (e *Engine) Complete(tokens []string) []string {
	tokens = grammar.Normalize(tokens)
	result := e.parser.ParseLenient(tokens)
	candidates := e.candidates(result)

	e.logger.Debug("completion computed",
		zap.Int("tokens", len(tokens)),
		zap.Stringer("stop", result.Stop),
		zap.Strings("candidates", candidates))
	return candidates
}

func (e *Engine) candidates(result *grammar.Result) []string {
	draft := result.Draft
	stop := result.Stop
	partial := ""

	switch stop {
	case grammar.StateFlag:
		partial = result.Flag
	case grammar.StateHeaderValue:
		// The token under the cursor was consumed as a header key the
		// contract does not declare. Back it out and offer key
		// completions for it instead of value completions.
		if !e.declaresHeader(draft, result.LastHeaderKey) {
			delete(draft.Headers, result.LastHeaderKey)
			stop, partial = grammar.StateHeaderKey, result.LastHeaderKey
		}
	case grammar.StateQueryValue:
		if !e.declaresQuery(draft, result.LastQueryKey) {
			delete(draft.Queries, result.LastQueryKey)
			stop, partial = grammar.StateQueryKey, result.LastQueryKey
		}
	case grammar.StatePath:
		candidates, stub, matched := e.completePath(draft)
		if matched {
			return candidates
		}
		// The committed segments match nothing the contract declares,
		// so the trailing token cannot extend a path. Treat it as a
		// flag fragment.
		stop, partial = grammar.StateFlag, stub
	}

	switch stop {
	case grammar.StateArgs, grammar.StateFlag:
		return e.completeFlags(draft, partial)
	case grammar.StateMethod:
		return filterPrefix(e.index.Methods(draft.Path), draft.Method)
	case grammar.StateHeaderKey:
		return e.completeHeaderKeys(draft, partial)
	case grammar.StateQueryKey:
		return e.completeQueryKeys(draft, partial)
	case grammar.StateHeaderValue, grammar.StateQueryValue, grammar.StateData:
		return nil
	default:
		panic(fmt.Sprintf("complete: unhandled stop state %s", stop))
	}
}

// completePath offers the contract segments that can follow the already
// committed part of the drafted path. The last segment is the stub under
// the cursor and filters the candidates by prefix. matched reports
// whether any contract path starts with the committed segments; when it
// is false the stub cannot be part of a path at all.
func (e *Engine) completePath(draft *grammar.Draft) (candidates []string, stub string, matched bool) {
	segments := contract.SplitSegments(draft.Path)
	committed := segments[:len(segments)-1]
	stub = renderSegment(segments[len(segments)-1], draft)

	set := make(map[string]struct{})
	for _, path := range e.index.Paths() {
		declared := e.index.Segments(path)
		if len(declared) < len(committed) || !equalSegments(declared[:len(committed)], committed) {
			continue
		}
		matched = true
		if len(declared) == len(committed) {
			continue
		}
		candidate := renderSegment(declared[len(committed)], draft)
		if strings.HasPrefix(candidate, stub) {
			set[candidate] = struct{}{}
		}
	}
	return sortedSet(set), stub, matched
}

// completeFlags offers the flag tokens that still make sense for the
// draft. Before a method is chosen only -X helps; afterwards -H, -Q and
// -D are offered while the operation still has parameters to fill.
func (e *Engine) completeFlags(draft *grammar.Draft, partial string) []string {
	var flags []string
	if draft.Method == "" {
		flags = append(flags, "-X")
	} else {
		if len(e.completeHeaderKeys(draft, "")) > 0 {
			flags = append(flags, "-H")
		}
		if len(e.completeQueryKeys(draft, "")) > 0 {
			flags = append(flags, "-Q")
		}
		if e.index.HasBody(draft.Path, draft.Method) && draft.Data == "" {
			flags = append(flags, "-D")
		}
	}
	return filterPrefix(flags, partial)
}

// completeHeaderKeys offers the declared header names the draft has not
// set yet.
func (e *Engine) completeHeaderKeys(draft *grammar.Draft, partial string) []string {
	var keys []string
	for _, param := range e.index.HeaderParameters(draft.Path, draft.Method) {
		if _, set := draft.Headers[param.Name]; set {
			continue
		}
		keys = append(keys, param.Name)
	}
	return filterPrefix(keys, partial)
}

// completeQueryKeys offers the declared query names the draft has not
// set yet.
func (e *Engine) completeQueryKeys(draft *grammar.Draft, partial string) []string {
	var keys []string
	for _, param := range e.index.QueryParameters(draft.Path, draft.Method) {
		if _, set := draft.Queries[param.Name]; set {
			continue
		}
		keys = append(keys, param.Name)
	}
	return filterPrefix(keys, partial)
}

func (e *Engine) declaresHeader(draft *grammar.Draft, name string) bool {
	for _, param := range e.index.HeaderParameters(draft.Path, draft.Method) {
		if param.Name == name {
			return true
		}
	}
	return false
}

func (e *Engine) declaresQuery(draft *grammar.Draft, name string) bool {
	for _, param := range e.index.QueryParameters(draft.Path, draft.Method) {
		if param.Name == name {
			return true
		}
	}
	return false
}

// renderSegment converts a contract path segment into the shape the user
// types. Variable segments render as "name=value" using the value
// captured so far, literal segments render as themselves.
func renderSegment(segment string, draft *grammar.Draft) string {
	if strings.HasPrefix(segment, "{") && strings.HasSuffix(segment, "}") {
		name := segment[1 : len(segment)-1]
		return name + "=" + draft.PathVariables[name]
	}
	return segment
}

func equalSegments(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// filterPrefix returns the candidates that start with partial, sorted.
func filterPrefix(candidates []string, partial string) []string {
	var out []string
	for _, candidate := range candidates {
		if strings.HasPrefix(candidate, partial) {
			out = append(out, candidate)
		}
	}
	sort.Strings(out)
	return out
}

func sortedSet(set map[string]struct{}) []string {
	if len(set) == 0 {
		return nil
	}
	out := make([]string, 0, len(set))
	for candidate := range set {
		out = append(out, candidate)
	}
	sort.Strings(out)
	return out
}
