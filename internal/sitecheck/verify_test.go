package sitecheck

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/pagesconf/internal/config"
	"git.home.luguber.info/inful/pagesconf/internal/foundation/errors"
)

func writeSite(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		p := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	}
	return dir
}

func recordFor(dir, base string) config.BuildConfiguration {
	cfg := config.Default().WithFallbackBase(base)
	cfg.Adapter.Pages = dir
	cfg.Adapter.Assets = dir
	return cfg.Resolve(config.Invocation{})
}

func TestExtractLinks(t *testing.T) {
	doc := `<!doctype html>
<html>
<head>
<link rel="stylesheet" href="/site/app.css">
<script src="/_app/start.js"></script>
</head>
<body>
<a href="about">About</a>
<img
  src="/logo.png" alt="logo"/>
<a>no href</a>
</body>
</html>`
	links := ExtractLinks(strings.NewReader(doc))
	require.Equal(t, []Link{
		{URL: "/site/app.css", Tag: "link", Attribute: "href", Line: 4},
		{URL: "/_app/start.js", Tag: "script", Attribute: "src", Line: 5},
		{URL: "about", Tag: "a", Attribute: "href", Line: 8},
		{URL: "/logo.png", Tag: "img", Attribute: "src", Line: 9},
	}, links)
}

func TestEscapesBase(t *testing.T) {
	tests := []struct {
		ref  string
		base string
		want bool
	}{
		{"/site/app.css", "/site", false},
		{"/site", "/site", false},
		{"/site?x=1", "/site", false},
		{"/siteother/app.css", "/site", true},
		{"/_app/start.js", "/site", true},
		{"app.css", "/site", false},
		{"../app.css", "/site", false},
		{"//cdn.example.com/x.js", "/site", false},
		{"https://example.com/x", "/site", false},
		{"#top", "/site", false},
		{"/anything", "", false},
		{"/%E4%BD%A0%E7%9A%84%E4%BB%93%E5%BA%93%E5%90%8D/app.js", config.PlaceholderBasePath, false},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, escapesBase(tt.ref, tt.base), "%s under %q", tt.ref, tt.base)
	}
}

func TestVerify(t *testing.T) {
	dir := writeSite(t, map[string]string{
		"index.html":       `<a href="/site/about">About</a>`,
		"about/index.html": "<html>\n<body>\n<img src=\"/logo.png\">\n<a href=\"/site/\">home</a>\n</body>\n</html>",
		"_app/app.js":      `console.log("/not/checked")`,
	})

	findings, err := Verify(context.Background(), recordFor(dir, "/site"))
	require.NoError(t, err)
	require.Equal(t, []Finding{{
		Code:    CodeOutsideBase,
		Message: `<img src="/logo.png"> is not under base path "/site"`,
		File:    "about/index.html",
		Line:    3,
	}}, findings)
}

func TestVerifyMissingFallback(t *testing.T) {
	dir := writeSite(t, map[string]string{"about.html": `<a href="about">x</a>`})

	findings, err := Verify(context.Background(), recordFor(dir, ""))
	require.NoError(t, err)
	require.Equal(t, []Code{CodeFallbackMissing}, codes(findings))
}

func TestVerifyMissingPagesDir(t *testing.T) {
	_, err := Verify(context.Background(), recordFor(filepath.Join(t.TempDir(), "build"), ""))
	require.Error(t, err)
	require.True(t, errors.HasCategory(err, errors.CategoryNotFound))
}

func TestVerifyCancelled(t *testing.T) {
	dir := writeSite(t, map[string]string{"index.html": "<p>hi</p>"})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Verify(ctx, recordFor(dir, ""))
	require.ErrorIs(t, err, context.Canceled)
}
