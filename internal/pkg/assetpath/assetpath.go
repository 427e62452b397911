// Package assetpath canonicalizes stored file references into fetchable
// /images/... or /pdfs/... paths. The upload endpoints produce canonical
// paths, and any consumer resolving a stored reference must apply the same
// rule, so it lives here exactly once.
package assetpath

import "strings"

// Kind selects the URL prefix a reference belongs under. Its string value is
// also the storage subdirectory name.
type Kind string

const (
	Image Kind = "images"
	PDF   Kind = "pdfs"
)

// Prefix returns the canonical URL prefix for the kind, e.g. "/images/".
func (k Kind) Prefix() string { return "/" + string(k) + "/" }

// Canonical resolves a stored reference to a fetchable path:
// absolute http(s) URLs pass through untouched, references already under the
// kind's prefix pass through, a leading slash with the wrong prefix gets the
// prefix inserted, and a bare filename gets the prefix prepended.
func Canonical(k Kind, s string) string {
	if s == "" {
		return ""
	}
	if strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://") {
		return s
	}
	if strings.HasPrefix(s, k.Prefix()) {
		return s
	}
	if strings.HasPrefix(s, "/") {
		return "/" + string(k) + s
	}
	return k.Prefix() + s
}
