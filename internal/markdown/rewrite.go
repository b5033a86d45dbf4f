package markdown

import (
	"net/url"
	"strings"

	"github.com/elijah-potter/tatum/internal/pathresolve"
)

// RewriteLink redirects a local link reference through the previewer's own
// navigation scheme. A reference that parses as a URL with a scheme is
// external and returned unchanged; anything else is resolved against base,
// relativized under cwd, and wrapped as /?path=<value> with the path in its
// plain string form.
func RewriteLink(reference, base, cwd string) string {
	if hasScheme(reference) {
		return reference
	}
	resolved := pathresolve.Resolve(reference, base)
	return "/?path=" + pathresolve.RelativizeUnder(resolved, cwd)
}

// hasScheme reports whether reference is a well-formed URL with a scheme
// (https, mailto, data, ...).
func hasScheme(reference string) bool {
	u, err := url.Parse(reference)
	return err == nil && u.Scheme != ""
}

// isExternalURL reports whether an image reference is one the browser
// fetches on its own: a URL with a scheme, or a protocol-relative //host
// form.
func isExternalURL(reference string) bool {
	return strings.HasPrefix(reference, "//") || hasScheme(reference)
}
