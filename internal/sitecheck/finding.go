// Package sitecheck inspects a resolved configuration and the site built from it.
//
// Lint looks only at the configuration record and reports base path shapes the
// build tool is likely to reject or mis-route. Verify walks the pages output
// directory and reports what would break once the site is hosted under the base
// path: a missing fallback page and root-absolute links that escape the base path.
package sitecheck

import "fmt"

// Code identifies a kind of finding.
type Code string

const (
	CodeLeadingSlash    Code = "base-leading-slash"
	CodeTrailingSlash   Code = "base-trailing-slash"
	CodePlaceholder     Code = "base-placeholder"
	CodeWhitespace      Code = "base-whitespace"
	CodeQuery           Code = "base-query"
	CodeNonASCII        Code = "base-non-ascii"
	CodeFallbackMissing Code = "fallback-missing"
	CodeOutsideBase     Code = "link-outside-base"
)

// Finding is a single problem report. File and Line are set for findings in built output.
type Finding struct {
	Code    Code
	Message string
	File    string
	Line    int
}

func (f Finding) String() string {
	switch {
	case f.File != "" && f.Line > 0:
		return fmt.Sprintf("%s:%d: [%s] %s", f.File, f.Line, f.Code, f.Message)
	case f.File != "":
		return fmt.Sprintf("%s: [%s] %s", f.File, f.Code, f.Message)
	default:
		return fmt.Sprintf("[%s] %s", f.Code, f.Message)
	}
}
