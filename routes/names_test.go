package routes

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStopNamesLookupChain(t *testing.T) {
	names := NewStopNames(map[string]string{
		"12345":  "North Adelaide Station",
		"GLNELG": "Moseley Square",
		"777":    "Salisbury Interchange",
	})

	tests := []struct {
		name   string
		stopID string
		want   string
	}{
		{"exact", "12345", "North Adelaide Station"},
		{"uppercase", "glnelg", "Moseley Square"},
		{"leading zeros stripped", "000777", "Salisbury Interchange"},
		{"numeric run extracted", "stop-12345-N", "North Adelaide Station"},
		{"numeric run zeros stripped", "platform00777X", "Salisbury Interchange"},
		{"short unknown id", "42", "Stop 42"},
		{"long unknown id truncated", "a-very-long-unrecognized-stop-identifier", "Stop a-very-long-unrecogn"},
		{"empty", "", "Unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, names.Lookup(tt.stopID))
		})
	}
}

func TestLoadStopNames(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stops.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"100":"Gawler Central"}`), 0o644))

	names, err := LoadStopNames(path)
	require.NoError(t, err)
	assert.Equal(t, 1, names.Len())
	assert.Equal(t, "Gawler Central", names.Lookup("100"))
}

func TestLoadStopNamesEmptyPath(t *testing.T) {
	names, err := LoadStopNames("")
	require.NoError(t, err)
	assert.Equal(t, 0, names.Len())
	assert.Equal(t, "Stop X1", names.Lookup("X1"))
}
