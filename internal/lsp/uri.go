package lsp

import (
	"net/url"
	"strings"
)

// IsScriptURI reports whether the document is one the server should
// diagnose.
func IsScriptURI(uri string) bool {
	return strings.HasSuffix(uri, ".brio")
}

// PathFromURI converts a file:// URI to a filesystem path, falling back
// to the raw string for anything it cannot parse.
func PathFromURI(uri string) string {
	u, err := url.Parse(uri)
	if err != nil || u.Scheme != "file" {
		return uri
	}
	return u.Path
}
