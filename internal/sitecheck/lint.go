package sitecheck

import (
	"fmt"
	"net/url"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"git.home.luguber.info/inful/pagesconf/internal/config"
)

// Lint reports base path problems as warnings. It never fails: the resolver
// passes values through verbatim and this is the only place they are judged.
func Lint(rec config.BuildConfiguration) []Finding {
	base := rec.BasePath
	if base == "" {
		return nil
	}

	var out []Finding
	add := func(c Code, format string, args ...any) {
		out = append(out, Finding{Code: c, Message: fmt.Sprintf(format, args...)})
	}

	if base == config.PlaceholderBasePath {
		add(CodePlaceholder, "base path %q is the repository-name placeholder; set BASE_PATH or paths.fallback_base", base)
	}
	if !strings.HasPrefix(base, "/") {
		add(CodeLeadingSlash, "base path %q must start with \"/\"", base)
	}
	switch {
	case base == "/":
		add(CodeTrailingSlash, "base path \"/\" is not accepted by the static adapter; use an empty base path to serve from root")
	case strings.HasSuffix(base, "/"):
		add(CodeTrailingSlash, "base path %q must not end with \"/\"", base)
	}
	if strings.IndexFunc(base, unicode.IsSpace) >= 0 {
		add(CodeWhitespace, "base path %q contains whitespace", base)
	}
	if strings.ContainsAny(base, "?#") {
		add(CodeQuery, "base path %q contains a query or fragment", base)
	}
	if base != config.PlaceholderBasePath && !isASCII(base) {
		add(CodeNonASCII, "base path %q contains non-ASCII characters; links will use %q", base, EscapeBasePath(base))
	}
	return out
}

// EscapeBasePath returns the NFC-normalized, percent-encoded form of base,
// which is how browsers request it.
func EscapeBasePath(base string) string {
	segments := strings.Split(norm.NFC.String(base), "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return strings.Join(segments, "/")
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] > unicode.MaxASCII {
			return false
		}
	}
	return true
}
