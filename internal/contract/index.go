package contract

import (
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"
)

// Index is a read-only view over a Document. The lookup tables are built
// on first use, guarded by sync.Once, and never mutated afterwards, so a
// single Index can be shared by any number of concurrent readers.
type Index struct {
	doc    *Document
	logger *zap.Logger

	once    sync.Once
	paths   map[string]*pathEntry
	ordered []string
}

type pathEntry struct {
	segments []string
	methods  map[string]*operationEntry
	ordered  []string
}

type operationEntry struct {
	parameters []Parameter
	headers    []Parameter
	queries    []Parameter
	hasBody    bool
}

// NewIndex wraps a loaded document. A nil logger is replaced with a no-op
// one.
func NewIndex(doc *Document, logger *zap.Logger) *Index {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Index{doc: doc, logger: logger}
}

func (ix *Index) build() {
	ix.once.Do(func() {
		ix.paths = make(map[string]*pathEntry, len(ix.doc.Paths))
		for path, item := range ix.doc.Paths {
			entry := &pathEntry{
				segments: SplitSegments(path),
				methods:  make(map[string]*operationEntry, len(item)),
			}
			for method, op := range item {
				operation := &operationEntry{parameters: op.Parameters}
				for _, param := range op.Parameters {
					switch param.In {
					case InHeader:
						operation.headers = append(operation.headers, param)
					case InQuery:
						operation.queries = append(operation.queries, param)
					case InBody:
						operation.hasBody = true
					}
				}
				name := strings.ToLower(method)
				entry.methods[name] = operation
				entry.ordered = append(entry.ordered, name)
			}
			sort.Strings(entry.ordered)
			ix.paths[path] = entry
			ix.ordered = append(ix.ordered, path)
		}
		sort.Strings(ix.ordered)
		ix.logger.Debug("contract index built", zap.Int("paths", len(ix.paths)))
	})
}

// HasPath reports whether the contract declares path.
func (ix *Index) HasPath(path string) bool {
	ix.build()
	_, ok := ix.paths[path]
	return ok
}

// Paths returns every declared path, sorted.
func (ix *Index) Paths() []string {
	ix.build()
	out := make([]string, len(ix.ordered))
	copy(out, ix.ordered)
	return out
}

// Segments returns the path's segment list, or nil when the path is not
// declared. Callers must not modify the returned slice.
func (ix *Index) Segments(path string) []string {
	ix.build()
	entry, ok := ix.paths[path]
	if !ok {
		return nil
	}
	return entry.segments
}

// Methods returns the methods declared for path, sorted, or nil when the
// path is not declared.
func (ix *Index) Methods(path string) []string {
	ix.build()
	entry, ok := ix.paths[path]
	if !ok {
		return nil
	}
	out := make([]string, len(entry.ordered))
	copy(out, entry.ordered)
	return out
}

// HasMethod reports whether path declares method.
func (ix *Index) HasMethod(path, method string) bool {
	return ix.operation(path, method) != nil
}

// Parameters returns the parameters declared for path+method in contract
// declaration order. Callers must not modify the returned slice.
func (ix *Index) Parameters(path, method string) []Parameter {
	operation := ix.operation(path, method)
	if operation == nil {
		return nil
	}
	return operation.parameters
}

// HeaderParameters returns the header parameters for path+method in
// declaration order.
func (ix *Index) HeaderParameters(path, method string) []Parameter {
	operation := ix.operation(path, method)
	if operation == nil {
		return nil
	}
	return operation.headers
}

// QueryParameters returns the query parameters for path+method in
// declaration order.
func (ix *Index) QueryParameters(path, method string) []Parameter {
	operation := ix.operation(path, method)
	if operation == nil {
		return nil
	}
	return operation.queries
}

// HasBody reports whether path+method declares a body parameter.
func (ix *Index) HasBody(path, method string) bool {
	operation := ix.operation(path, method)
	return operation != nil && operation.hasBody
}

func (ix *Index) operation(path, method string) *operationEntry {
	ix.build()
	entry, ok := ix.paths[path]
	if !ok {
		return nil
	}
	return entry.methods[method]
}
