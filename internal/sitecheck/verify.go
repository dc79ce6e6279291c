package sitecheck

import (
	"bytes"
	"context"
	"io"
	"io/fs"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"

	"git.home.luguber.info/inful/pagesconf/internal/config"
	"git.home.luguber.info/inful/pagesconf/internal/foundation/errors"
	"git.home.luguber.info/inful/pagesconf/internal/logfields"
)

// Link is a URL reference found in built HTML.
type Link struct {
	URL       string
	Tag       string
	Attribute string
	Line      int
}

// linkAttrs lists the attributes that load or navigate to another resource.
var linkAttrs = map[string]string{
	"a":      "href",
	"link":   "href",
	"img":    "src",
	"script": "src",
	"iframe": "src",
	"source": "src",
	"video":  "src",
	"audio":  "src",
}

// Verify checks the built site in rec.Pages against rec.
func Verify(ctx context.Context, rec config.BuildConfiguration) ([]Finding, error) {
	root := rec.Pages
	info, err := os.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewError(errors.CategoryNotFound, "pages directory does not exist; run the build first").
				WithContext("path", root).
				Build()
		}
		return nil, errors.WrapError(err, errors.CategoryFileSystem, "failed to stat pages directory").
			WithContext("path", root).
			Build()
	}
	if !info.IsDir() {
		return nil, errors.ValidationError("pages path is not a directory").
			WithContext("path", root).
			Build()
	}

	var findings []Finding
	if rec.Fallback != "" {
		if _, err := os.Stat(filepath.Join(root, rec.Fallback)); err != nil {
			findings = append(findings, Finding{
				Code:    CodeFallbackMissing,
				Message: "fallback page is missing; unmatched paths will return 404",
				File:    rec.Fallback,
			})
		}
	}

	pages := 0
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(path), ".html") {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			rel = path
		}
		pages++

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		for _, l := range ExtractLinks(bytes.NewReader(data)) {
			if !escapesBase(l.URL, rec.BasePath) {
				continue
			}
			findings = append(findings, Finding{
				Code:    CodeOutsideBase,
				Message: "<" + l.Tag + " " + l.Attribute + "=\"" + l.URL + "\"> is not under base path \"" + rec.BasePath + "\"",
				File:    filepath.ToSlash(rel),
				Line:    l.Line,
			})
		}
		return nil
	})
	if err != nil {
		if ctx.Err() != nil {
			return findings, ctx.Err()
		}
		return findings, errors.WrapError(err, errors.CategoryFileSystem, "failed to walk pages directory").
			WithContext("path", root).
			Build()
	}

	slog.Debug("Verified built pages", logfields.Path(root), logfields.Count(pages), slog.Int("findings", len(findings)))
	return findings, nil
}

// ExtractLinks returns resource references in an HTML document with their line numbers.
func ExtractLinks(r io.Reader) []Link {
	var links []Link
	line := 1
	z := html.NewTokenizer(r)
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			return links
		}
		raw := z.Raw()
		startLine := line
		line += bytes.Count(raw, []byte{'\n'})

		if tt != html.StartTagToken && tt != html.SelfClosingTagToken {
			continue
		}
		tok := z.Token()
		attr, ok := linkAttrs[tok.Data]
		if !ok {
			continue
		}
		for _, a := range tok.Attr {
			if a.Key == attr && a.Val != "" {
				links = append(links, Link{URL: a.Val, Tag: tok.Data, Attribute: attr, Line: startLine})
			}
		}
	}
}

// escapesBase reports whether a root-absolute reference points outside base.
// Relative, protocol-relative, absolute-URL and fragment references are never flagged.
func escapesBase(ref, base string) bool {
	if base == "" || !strings.HasPrefix(ref, "/") || strings.HasPrefix(ref, "//") {
		return false
	}
	p := ref
	if u, err := url.Parse(ref); err == nil {
		p = u.Path
	}
	base = strings.TrimRight(base, "/")
	if base == "" {
		return false
	}
	for _, candidate := range []string{base, EscapeBasePath(base)} {
		if p == candidate || strings.HasPrefix(p, candidate+"/") {
			return false
		}
	}
	return true
}
