package grammar

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name   string
		tokens []string
		want   []string
	}{
		{
			name:   "nothing to fuse",
			tokens: []string{"dns", "domains"},
			want:   []string{"dns", "domains"},
		},
		{
			name:   "fuses both neighbors",
			tokens: []string{"domain", "=", "example.org"},
			want:   []string{"domain=example.org"},
		},
		{
			name:   "missing right neighbor",
			tokens: []string{"domain", "="},
			want:   []string{"domain="},
		},
		{
			name:   "missing left neighbor",
			tokens: []string{"=", "example.org"},
			want:   []string{"=example.org"},
		},
		{
			name:   "lone separator",
			tokens: []string{"="},
			want:   []string{"="},
		},
		{
			name:   "chain folds left",
			tokens: []string{"a", "=", "=", "b"},
			want:   []string{"a==b"},
		},
		{
			name:   "embedded separator is not a separator token",
			tokens: []string{"a=b", "c"},
			want:   []string{"a=b", "c"},
		},
		{
			name:   "surrounding tokens untouched",
			tokens: []string{"dns", "domain", "=", "example.org", "-X", "GET"},
			want:   []string{"dns", "domain=example.org", "-X", "GET"},
		},
		{
			name:   "empty input",
			tokens: []string{},
			want:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, Normalize(tt.tokens)); diff != "" {
				t.Errorf("Normalize(%v) mismatch (-want +got):\n%s", tt.tokens, diff)
			}
		})
	}
}
