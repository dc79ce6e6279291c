package commands

import (
	"fmt"

	"git.home.luguber.info/inful/pagesconf/internal/foundation/errors"
	"git.home.luguber.info/inful/pagesconf/internal/sitecheck"
)

// LintCmd implements the 'lint' command.
type LintCmd struct {
	Strict bool `help:"Exit non-zero when warnings are reported"`

	InvocationFlags `embed:""`
}

func (l *LintCmd) Run(g *Global, root *CLI) error {
	cfg, inv, err := loadInvocation(g, root, l.InvocationFlags)
	if err != nil {
		return err
	}
	rec := resolveRecord(cfg, inv)

	findings := sitecheck.Lint(rec)
	if len(findings) == 0 {
		_, _ = fmt.Fprintf(g.Stdout, "base path %q: no problems found\n", rec.BasePath)
		return nil
	}
	for _, f := range findings {
		_, _ = fmt.Fprintf(g.Stdout, "warning: %s\n", f)
	}
	if l.Strict {
		return errors.ValidationError("base path lint reported warnings").
			WithContext("warnings", len(findings)).
			Build()
	}
	return nil
}
