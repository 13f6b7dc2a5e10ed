package contract

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		doc, err := Load(filepath.Join("testdata", "contract.json"), FormatJSON)
		require.NoError(t, err)
		assert.Len(t, doc.Paths, 3)
		assert.Contains(t, doc.Paths, "/dns/{domain}/a")
	})

	t.Run("yaml", func(t *testing.T) {
		doc, err := Load(filepath.Join("testdata", "contract.yaml"), FormatYAML)
		require.NoError(t, err)
		assert.Len(t, doc.Paths, 3)
		assert.Contains(t, doc.Paths, "/dns/{domain}/a")
	})

	t.Run("auto picks the encoding by extension", func(t *testing.T) {
		fromJSON, err := Load(filepath.Join("testdata", "contract.json"), FormatAuto)
		require.NoError(t, err)
		fromYAML, err := Load(filepath.Join("testdata", "contract.yaml"), FormatAuto)
		require.NoError(t, err)

		if diff := cmp.Diff(fromJSON, fromYAML); diff != "" {
			t.Errorf("encodings disagree (-json +yaml):\n%s", diff)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.json"), FormatAuto)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read contract")
	})
}

func TestParse(t *testing.T) {
	t.Run("declaration order is kept", func(t *testing.T) {
		doc, err := Parse([]byte(`{
			"paths": {
				"/x": {
					"post": {
						"parameters": [
							{"name": "b", "in": "query", "required": true},
							{"name": "a", "in": "query", "required": false}
						]
					}
				}
			}
		}`), FormatJSON)
		require.NoError(t, err)

		params := doc.Paths["/x"]["post"].Parameters
		require.Len(t, params, 2)
		assert.Equal(t, "b", params[0].Name)
		assert.True(t, params[0].Required)
		assert.Equal(t, "a", params[1].Name)
		assert.False(t, params[1].Required)
	})

	t.Run("malformed json", func(t *testing.T) {
		_, err := Parse([]byte(`{"paths":`), FormatJSON)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse contract")
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := Parse([]byte("paths:\n\t/x: {}"), FormatYAML)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse contract")
	})

	t.Run("missing paths key yields an empty document", func(t *testing.T) {
		doc, err := Parse([]byte(`{}`), FormatJSON)
		require.NoError(t, err)
		require.NotNil(t, doc.Paths)
		assert.Empty(t, doc.Paths)
	})

	t.Run("unknown format", func(t *testing.T) {
		_, err := Parse([]byte(`{}`), Format("toml"))
		require.Error(t, err)
	})
}

func TestSplitSegments(t *testing.T) {
	tests := []struct {
		path string
		want []string
	}{
		{"/dns/{domain}/a", []string{"dns", "{domain}", "a"}},
		{"/status", []string{"status"}},
		{"/status/", []string{"status", ""}},
		{"/", []string{""}},
		{"", []string{""}},
	}

	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, SplitSegments(tt.path)); diff != "" {
			t.Errorf("SplitSegments(%q) mismatch (-want +got):\n%s", tt.path, diff)
		}
	}
}
