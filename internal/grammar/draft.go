package grammar

// Draft is the structured description of one invocation, accumulated as
// the machine consumes tokens. A draft is a pure function of the consumed
// token prefix: parsing the same tokens always yields an equal draft.
type Draft struct {
	// Path is the request path written so far, one "/segment" appended
	// per path token. Variable-bearing tokens ("name=value") append
	// "/{name}" and capture the value.
	Path string

	// PathVariables maps captured variable names to their values; an
	// empty value means the variable was named but not filled.
	// VariableOrder records the capture order, which validation
	// reporting depends on.
	PathVariables map[string]string
	VariableOrder []string

	// Method is the lower-cased HTTP method; empty means unset.
	Method string

	// Headers and Queries map parameter names to values. A key with an
	// empty value means the name was given but the value is pending.
	Headers map[string]string
	Queries map[string]string

	// Data is the raw request payload; empty means no payload.
	Data string
}

// NewDraft returns an empty draft.
func NewDraft() *Draft {
	return &Draft{
		PathVariables: map[string]string{},
		Headers:       map[string]string{},
		Queries:       map[string]string{},
	}
}

func (d *Draft) setPathVariable(name, value string) {
	if _, ok := d.PathVariables[name]; !ok {
		d.VariableOrder = append(d.VariableOrder, name)
	}
	d.PathVariables[name] = value
}
