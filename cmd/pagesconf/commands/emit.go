package commands

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"git.home.luguber.info/inful/pagesconf/internal/emit"
	"git.home.luguber.info/inful/pagesconf/internal/logfields"
)

// EmitCmd implements the 'emit' command.
type EmitCmd struct {
	Output string `short:"o" required:"" help:"File to write the configuration record to"`
	Format string `short:"f" help:"Output format (json|yaml|env); inferred from the file extension when empty"`

	InvocationFlags `embed:""`
}

func (e *EmitCmd) Run(g *Global, root *CLI) error {
	format, err := emit.ParseFormat(formatForPath(e.Output, e.Format))
	if err != nil {
		return err
	}
	cfg, inv, err := loadInvocation(g, root, e.InvocationFlags)
	if err != nil {
		return err
	}
	rec := resolveRecord(cfg, inv)
	if err := emit.WriteFile(e.Output, rec, format); err != nil {
		return err
	}
	slog.Info("Build configuration written", logfields.Path(e.Output), logfields.Format(string(format)), logfields.BasePath(rec.BasePath))
	_, _ = fmt.Fprintf(g.Stdout, "Wrote %s\n", e.Output)
	return nil
}

// formatForPath returns explicit when set, otherwise a format derived from the file extension.
func formatForPath(path, explicit string) string {
	if explicit != "" {
		return explicit
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return string(emit.FormatYAML)
	case ".env", ".sh":
		return string(emit.FormatEnv)
	default:
		return string(emit.FormatJSON)
	}
}
