package sitecheck

import (
	"testing"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/pagesconf/internal/config"
)

func codes(fs []Finding) []Code {
	out := make([]Code, 0, len(fs))
	for _, f := range fs {
		out = append(out, f.Code)
	}
	return out
}

func TestLint(t *testing.T) {
	tests := []struct {
		base string
		want []Code
	}{
		{"", []Code{}},
		{"/my-site", []Code{}},
		{"/org/my-site", []Code{}},
		{config.PlaceholderBasePath, []Code{CodePlaceholder}},
		{"my-site", []Code{CodeLeadingSlash}},
		{"/my-site/", []Code{CodeTrailingSlash}},
		{"/", []Code{CodeTrailingSlash}},
		{"/my site", []Code{CodeWhitespace}},
		{"/site?x=1", []Code{CodeQuery}},
		{"/café", []Code{CodeNonASCII}},
		{"docs/ ", []Code{CodeLeadingSlash, CodeWhitespace}},
		{"docs/", []Code{CodeLeadingSlash, CodeTrailingSlash}},
	}
	for _, tt := range tests {
		t.Run(tt.base, func(t *testing.T) {
			rec := config.Default().WithFallbackBase(tt.base).Resolve(config.Invocation{})
			require.Equal(t, tt.want, codes(Lint(rec)))
		})
	}
}

func TestLintRootSlashFromOverride(t *testing.T) {
	rec := config.Default().Resolve(config.Invocation{Env: config.Environment{"BASE_PATH": "/"}})
	findings := Lint(rec)
	require.Len(t, findings, 1)
	require.Equal(t, CodeTrailingSlash, findings[0].Code)
	require.Contains(t, findings[0].Message, "empty base path")
}

func TestLintIgnoresDevelopment(t *testing.T) {
	rec := config.Default().Resolve(config.Invocation{Args: []string{"dev"}})
	require.Empty(t, Lint(rec))
}

func TestEscapeBasePath(t *testing.T) {
	require.Equal(t, "/my-site", EscapeBasePath("/my-site"))
	require.Equal(t, "/caf%C3%A9", EscapeBasePath("/café"))
	// Decomposed input is normalized to the composed form first.
	require.Equal(t, "/caf%C3%A9", EscapeBasePath("/cafe\u0301"))
	require.Equal(t, "/%E4%BD%A0%E7%9A%84%E4%BB%93%E5%BA%93%E5%90%8D", EscapeBasePath(config.PlaceholderBasePath))
}

func TestFindingString(t *testing.T) {
	require.Equal(t, "a.html:3: [link-outside-base] x", Finding{Code: CodeOutsideBase, Message: "x", File: "a.html", Line: 3}.String())
	require.Equal(t, "index.html: [fallback-missing] y", Finding{Code: CodeFallbackMissing, Message: "y", File: "index.html"}.String())
	require.Equal(t, "[base-query] z", Finding{Code: CodeQuery, Message: "z"}.String())
}
