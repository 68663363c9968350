package log

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	l, err := ParseLevel("warn")
	require.NoError(t, err)
	assert.Equal(t, WarnLevel, l)

	_, err = ParseLevel("chatty")
	assert.Error(t, err)
}

func TestJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, InfoLevel)

	l.Named("generate").Info("document created", String("target", "forum"))
	l.Debug("not written")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "document created", entry["msg"])
	assert.Equal(t, "generate", entry["logger"])
	assert.Equal(t, "forum", entry["target"])
}

func TestConfigure(t *testing.T) {
	tests := []struct {
		name    string
		format  string
		level   string
		filter  string
		wantErr bool
	}{
		{name: "json", format: "json", level: "info"},
		{name: "text", format: "text", level: "debug"},
		{name: "with filter", format: "text", level: "debug", filter: "debug+:convert"},
		{name: "bad format", format: "xml", level: "info", wantErr: true},
		{name: "bad level", format: "json", level: "chatty", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := Configure(&bytes.Buffer{}, tt.format, tt.level, tt.filter)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, l)
		})
	}
}

func TestFilter(t *testing.T) {
	var buf bytes.Buffer
	l, err := Configure(&buf, "json", "debug", "debug+:convert")
	require.NoError(t, err)

	l.Named("convert").Debug("kept")
	l.Named("generate").Info("dropped")

	assert.Contains(t, buf.String(), "kept")
	assert.NotContains(t, buf.String(), "dropped")
}

func TestSetLevelSharedWithChildren(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, ErrorLevel)
	child := l.Named("child")
	child.Info("hidden")
	assert.Empty(t, buf.String())

	l.SetLevel(InfoLevel)
	child.Info("visible")
	assert.Contains(t, buf.String(), "visible")
	assert.Equal(t, InfoLevel, child.Level())
}

func TestResetDefault(t *testing.T) {
	prev := Default()
	defer ResetDefault(prev)

	var buf bytes.Buffer
	ResetDefault(New(&buf, DebugLevel))
	Debug("from package level", Int("n", 1))
	assert.Contains(t, buf.String(), "from package level")
}
