// Package embedder turns resolved resource paths into self-contained data
// URLs so rendered pages never reference the local filesystem directly.
package embedder

import (
	"bytes"
	"embed"
	"encoding/base64"
	"fmt"
	"html/template"
	"log/slog"
	"mime"
	"os"
	"path/filepath"
	"strings"
)

// Fallback graphic parameters used when a resource cannot be read.
const (
	fallbackFill    = "red"
	fallbackMessage = "Unable to embed image."
)

const defaultMimeType = "text/plain"

//go:embed templates/error.svg
var templatesFS embed.FS

var errorTmpl = template.Must(template.ParseFS(templatesFS, "templates/error.svg"))

// DataURL encodes data as an inline data URL carrying the given MIME type.
func DataURL(data []byte, mimeType string) string {
	return fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(data))
}

// Embed reads the file at path and returns it as a data URL, with the MIME
// type guessed from the file extension. When the file cannot be read the
// result is the error graphic instead; Embed never fails from the caller's
// perspective.
func Embed(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		slog.Warn("unable to embed resource", "path", path, "err", err)
		return ErrorGraphic(fallbackFill, fallbackMessage)
	}

	return DataURL(data, mimeTypeByExtension(path))
}

// mimeTypeByExtension guesses a MIME type from the file extension of path.
// Parameters such as charset are stripped to keep the data-URL shape plain,
// and unrecognized extensions default to text/plain.
func mimeTypeByExtension(path string) string {
	mimeType := mime.TypeByExtension(filepath.Ext(path))
	if mimeType == "" {
		return defaultMimeType
	}
	mimeType, _, _ = strings.Cut(mimeType, ";")
	return strings.TrimSpace(mimeType)
}

// ErrorGraphic renders the fallback SVG with the given fill color and
// message and wraps it in a data URL.
func ErrorGraphic(fill, message string) string {
	var buf bytes.Buffer
	_ = errorTmpl.Execute(&buf, struct{ Fill, Message string }{fill, message})
	return DataURL(buf.Bytes(), "image/svg+xml")
}
