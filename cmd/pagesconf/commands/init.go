package commands

import (
	"fmt"
	"log/slog"

	"git.home.luguber.info/inful/pagesconf/internal/config"
	"git.home.luguber.info/inful/pagesconf/internal/logfields"
	"git.home.luguber.info/inful/pagesconf/internal/repoinfo"
)

// InitCmd implements the 'init' command.
type InitCmd struct {
	Force      bool `help:"Overwrite existing configuration file"`
	DetectRepo bool `name:"detect-repo" help:"Write the git origin remote's repository name as paths.fallback_base"`
}

func (i *InitCmd) Run(g *Global, root *CLI) error {
	example := config.Default()
	if i.DetectRepo {
		dir := g.Dir
		if dir == "" {
			dir = "."
		}
		if base, err := repoinfo.DetectBasePath(dir, repoinfo.DefaultRemote); err == nil {
			example = example.WithFallbackBase(base)
		} else {
			slog.Warn("Repository detection failed, writing placeholder base path", logfields.Error(err))
		}
	}

	_, _ = fmt.Fprintf(g.Stdout, "Writing configuration to %s\n", root.Config)
	if err := config.Init(root.Config, i.Force, example); err != nil {
		return err
	}
	_, _ = fmt.Fprintln(g.Stdout, "initialized successfully")
	return nil
}
