package config

import (
	"fmt"
	"slices"
	"strings"

	"git.home.luguber.info/inful/pagesconf/internal/foundation/errors"
)

// RenderAllEntry is the wildcard entry that crawls every reachable route.
const RenderAllEntry = "*"

// PrerenderMode is the canonical prerender directive. Only the render-all form is produced.
type PrerenderMode struct {
	Entries []string `json:"entries" yaml:"entries"`
}

// RenderAll returns the directive that renders every route at build time.
func RenderAll() PrerenderMode {
	return PrerenderMode{Entries: []string{RenderAllEntry}}
}

// RendersAll reports whether no route is excluded.
func (p PrerenderMode) RendersAll() bool {
	return slices.Contains(p.Entries, RenderAllEntry)
}

// NormalizationResult captures adjustments and warnings from normalization.
type NormalizationResult struct{ Warnings []string }

// Normalize canonicalizes the prerender section in place. The legacy
// `default: true` flag and entry lists containing the wildcard both collapse
// to entries ["*"]. Anything that would leave a route unrendered is rejected.
func (p *PrerenderConfig) Normalize() (*NormalizationResult, error) {
	res := &NormalizationResult{}

	if len(p.Entries) == 0 {
		if p.Default != nil && !*p.Default {
			return nil, errors.ValidationError("prerender.default=false without entries would skip every route").
				WithContext("field", "prerender.default").
				Build()
		}
		if p.Default != nil {
			res.Warnings = append(res.Warnings, "prerender.default is deprecated; normalized to entries [\"*\"]")
		}
		p.Entries = []string{RenderAllEntry}
		p.Default = nil
		return res, nil
	}

	if !slices.Contains(p.Entries, RenderAllEntry) {
		return nil, errors.ValidationError("prerender.entries must include \"*\" so every route is rendered").
			WithContext("entries", strings.Join(p.Entries, ",")).
			Build()
	}
	if p.Default != nil && !*p.Default {
		res.Warnings = append(res.Warnings, "prerender.default=false is ignored because entries include \"*\"")
	}
	if len(p.Entries) > 1 {
		res.Warnings = append(res.Warnings, fmt.Sprintf("prerender.entries %v are covered by \"*\"", without(p.Entries, RenderAllEntry)))
	}
	p.Entries = []string{RenderAllEntry}
	p.Default = nil
	return res, nil
}

func without(in []string, drop string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s != drop {
			out = append(out, s)
		}
	}
	return out
}
