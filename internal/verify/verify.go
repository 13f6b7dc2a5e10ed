// Package verify checks a fully parsed request draft against the
// contract.
package verify

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/m-horky/autocli/internal/contract"
	"github.com/m-horky/autocli/internal/grammar"
)

// Kind identifies the contract rule a draft violates.
type Kind int

const (
	// KindPathNotValid: the path is not declared by the contract.
	KindPathNotValid Kind = iota
	// KindPathVariableNotSet: a captured path variable has no value.
	KindPathVariableNotSet
	// KindMethodNotSet: no method was given.
	KindMethodNotSet
	// KindMethodNotSupported: the path does not declare the method.
	KindMethodNotSupported
	// KindHeaderNotSet: a required header parameter is missing.
	KindHeaderNotSet
	// KindQueryNotSet: a required query parameter is missing.
	KindQueryNotSet
	// KindDataNotSet: the operation takes a body but none was given.
	KindDataNotSet
)

// ValidationError reports the first contract rule a draft violates.
type ValidationError struct {
	Kind    Kind
	Subject string // path, variable, method or parameter name
}

func (e *ValidationError) Error() string {
	switch e.Kind {
	case KindPathNotValid:
		return fmt.Sprintf("Path '%s' is not valid.", e.Subject)
	case KindPathVariableNotSet:
		return fmt.Sprintf("Path variable '%s' has not been set.", e.Subject)
	case KindMethodNotSet:
		return "Method has not been set."
	case KindMethodNotSupported:
		return fmt.Sprintf("Method '%s' is not supported.", e.Subject)
	case KindHeaderNotSet:
		return fmt.Sprintf("Header '%s' has not been set.", e.Subject)
	case KindQueryNotSet:
		return fmt.Sprintf("Query '%s' has not been set.", e.Subject)
	case KindDataNotSet:
		return "Data has not been set."
	default:
		panic(fmt.Sprintf("verify: unknown validation error kind %d", int(e.Kind)))
	}
}

// Verifier validates drafts against one contract index.
type Verifier struct {
	index  *contract.Index
	logger *zap.Logger
}

// NewVerifier returns a verifier. A nil logger is replaced with a no-op
// one.
func NewVerifier(index *contract.Index, logger *zap.Logger) *Verifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Verifier{index: index, logger: logger}
}

// Verify checks the draft against the contract. The checks run in a fixed
// order and the first violation is returned: path declared, path
// variables filled, method set, method declared, required headers,
// required queries, body payload. Parameters a draft carries beyond the
// declared ones are not an error, and the payload content is never
// inspected.
func (v *Verifier) Verify(draft *grammar.Draft) error {
	if !v.index.HasPath(draft.Path) {
		return &ValidationError{Kind: KindPathNotValid, Subject: draft.Path}
	}
	for _, name := range draft.VariableOrder {
		if draft.PathVariables[name] == "" {
			return &ValidationError{Kind: KindPathVariableNotSet, Subject: name}
		}
	}
	if draft.Method == "" {
		return &ValidationError{Kind: KindMethodNotSet}
	}
	if !v.index.HasMethod(draft.Path, draft.Method) {
		return &ValidationError{Kind: KindMethodNotSupported, Subject: draft.Method}
	}
	for _, param := range v.index.HeaderParameters(draft.Path, draft.Method) {
		if !param.Required {
			continue
		}
		if _, ok := draft.Headers[param.Name]; !ok {
			return &ValidationError{Kind: KindHeaderNotSet, Subject: param.Name}
		}
	}
	for _, param := range v.index.QueryParameters(draft.Path, draft.Method) {
		if !param.Required {
			continue
		}
		if _, ok := draft.Queries[param.Name]; !ok {
			return &ValidationError{Kind: KindQueryNotSet, Subject: param.Name}
		}
	}
	if v.index.HasBody(draft.Path, draft.Method) && draft.Data == "" {
		return &ValidationError{Kind: KindDataNotSet}
	}

	v.logger.Debug("draft verified",
		zap.String("path", draft.Path),
		zap.String("method", draft.Method))
	return nil
}
