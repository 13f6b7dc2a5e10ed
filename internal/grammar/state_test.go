package grammar

import "testing"

func TestStateString(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{StatePath, "PATH"},
		{StateArgs, "ARGS"},
		{StateFlag, "FLAG"},
		{StateMethod, "METHOD"},
		{StateHeaderKey, "HEADER_KEY"},
		{StateHeaderValue, "HEADER_VALUE"},
		{StateQueryKey, "QUERY_KEY"},
		{StateQueryValue, "QUERY_VALUE"},
		{StateData, "DATA"},
		{State(42), "State(42)"},
	}

	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("State(%d).String() = %q, want %q", int(tt.state), got, tt.want)
		}
	}
}
