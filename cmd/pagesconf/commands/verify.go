package commands

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"git.home.luguber.info/inful/pagesconf/internal/foundation/errors"
	"git.home.luguber.info/inful/pagesconf/internal/sitecheck"
)

// VerifyCmd implements the 'verify' command.
type VerifyCmd struct {
	InvocationFlags `embed:""`
}

func (v *VerifyCmd) Run(g *Global, root *CLI) error {
	cfg, inv, err := loadInvocation(g, root, v.InvocationFlags)
	if err != nil {
		return err
	}
	rec := resolveRecord(cfg, inv)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	findings, err := sitecheck.Verify(ctx, rec)
	if err != nil {
		return err
	}
	if len(findings) == 0 {
		_, _ = fmt.Fprintf(g.Stdout, "%s: site is consistent with base path %q\n", rec.Pages, rec.BasePath)
		return nil
	}
	for _, f := range findings {
		_, _ = fmt.Fprintln(g.Stdout, f)
	}
	return errors.ValidationError("site verification found problems").
		WithContext("problems", len(findings)).
		WithContext("path", rec.Pages).
		Build()
}
