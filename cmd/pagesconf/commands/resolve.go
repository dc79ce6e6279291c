package commands

import (
	"git.home.luguber.info/inful/pagesconf/internal/emit"
)

// ResolveCmd implements the 'resolve' command.
type ResolveCmd struct {
	Format string `short:"f" help:"Output format (json|yaml|env)" default:"json"`

	InvocationFlags `embed:""`
}

func (r *ResolveCmd) Run(g *Global, root *CLI) error {
	format, err := emit.ParseFormat(r.Format)
	if err != nil {
		return err
	}
	cfg, inv, err := loadInvocation(g, root, r.InvocationFlags)
	if err != nil {
		return err
	}
	return emit.Write(g.Stdout, resolveRecord(cfg, inv), format)
}
