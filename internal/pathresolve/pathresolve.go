// Package pathresolve implements the lexical path algebra used to resolve
// document references. All functions are pure: they never touch the
// filesystem, so references to files that do not (yet) exist still resolve.
package pathresolve

import (
	"strings"
)

// Resolve converts a possibly-relative reference into a cleaned path.
//
// An absolute reference is used as-is (cleaned). A relative reference is
// joined to the directory of base: the base is always the document file
// currently being rendered, never a directory. This policy is shared by the
// image-embedding and link-rewriting paths.
func Resolve(reference, base string) string {
	if strings.HasPrefix(reference, "/") {
		return Clean(reference)
	}
	return Clean(dir(base) + "/" + reference)
}

// Clean normalizes p component by component: "." is dropped, ".." pops the
// previous component and is a no-op when there is nothing left to pop.
// Clean is idempotent.
func Clean(p string) string {
	rooted := strings.HasPrefix(p, "/")

	var stack []string
	for _, comp := range strings.Split(p, "/") {
		switch comp {
		case "", ".":
		case "..":
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		default:
			stack = append(stack, comp)
		}
	}

	joined := strings.Join(stack, "/")
	if rooted {
		return "/" + joined
	}
	if joined == "" {
		return "."
	}
	return joined
}

// RelativizeUnder returns p relative to the working directory cwd when p is
// a strict component-wise descendant of it, and p unchanged otherwise. The
// comparison runs on the raw component lists of both arguments, so callers
// should pass absolute paths.
func RelativizeUnder(p, cwd string) string {
	pc := components(p)
	cc := components(cwd)
	if len(pc) <= len(cc) {
		return p
	}
	for i, comp := range cc {
		if pc[i] != comp {
			return p
		}
	}
	return strings.Join(pc[len(cc):], "/")
}

// dir is the directory portion of a file path, "/" for root-level files and
// "." for bare filenames.
func dir(p string) string {
	i := strings.LastIndex(p, "/")
	switch {
	case i < 0:
		return "."
	case i == 0:
		return "/"
	default:
		return p[:i]
	}
}

func components(p string) []string {
	var out []string
	for _, comp := range strings.Split(p, "/") {
		if comp != "" {
			out = append(out, comp)
		}
	}
	return out
}
