package embedder

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataURL(t *testing.T) {
	assert.Equal(t, "data:text/plain;base64,aGk=", DataURL([]byte("hi"), "text/plain"))
	assert.Equal(t, "data:image/png;base64,", DataURL(nil, "image/png"))
}

func TestEmbedExistingFile(t *testing.T) {
	dir := t.TempDir()
	content := []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a}
	path := filepath.Join(dir, "pic.png")
	require.NoError(t, os.WriteFile(path, content, 0o644))

	got := Embed(path)
	require.True(t, strings.HasPrefix(got, "data:image/png;base64,"), "got %q", got)

	decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(got, "data:image/png;base64,"))
	require.NoError(t, err)
	assert.Equal(t, content, decoded)
}

func TestEmbedUnknownExtensionDefaultsToTextPlain(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.zzz")
	require.NoError(t, os.WriteFile(path, []byte("plain"), 0o644))

	got := Embed(path)
	assert.True(t, strings.HasPrefix(got, "data:text/plain;base64,"), "got %q", got)
}

func TestEmbedMissingFileFallsBack(t *testing.T) {
	got := Embed(filepath.Join(t.TempDir(), "missing.png"))
	assertErrorGraphic(t, got)
}

func TestEmbedDirectoryFallsBack(t *testing.T) {
	assertErrorGraphic(t, Embed(t.TempDir()))
}

// Embed must produce a well-formed data URL for every input.
func TestEmbedIsTotal(t *testing.T) {
	inputs := []string{
		"",
		"/definitely/not/a/real/path.png",
		"\x00bad",
		filepath.Join(t.TempDir(), "nope"),
	}
	for _, in := range inputs {
		got := Embed(in)
		assert.True(t, strings.HasPrefix(got, "data:"), "Embed(%q) = %q", in, got)
		assert.Contains(t, got, ";base64,", "Embed(%q) = %q", in, got)
	}
}

func TestErrorGraphic(t *testing.T) {
	got := ErrorGraphic("orange", "boom")
	require.True(t, strings.HasPrefix(got, "data:image/svg+xml;base64,"), "got %q", got)

	decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(got, "data:image/svg+xml;base64,"))
	require.NoError(t, err)
	svg := string(decoded)
	assert.Contains(t, svg, "<svg")
	assert.Contains(t, svg, "boom")
	assert.Contains(t, svg, "orange")
}

func assertErrorGraphic(t *testing.T, dataURL string) {
	t.Helper()
	require.True(t, strings.HasPrefix(dataURL, "data:image/svg+xml;base64,"), "got %q", dataURL)

	decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(dataURL, "data:image/svg+xml;base64,"))
	require.NoError(t, err)
	assert.Contains(t, string(decoded), "Unable to embed image.")
	assert.Contains(t, string(decoded), "red")
}
