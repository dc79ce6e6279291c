package commands

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/pagesconf/internal/config"
	"git.home.luguber.info/inful/pagesconf/internal/foundation/normalization"
	"git.home.luguber.info/inful/pagesconf/internal/logfields"
	"git.home.luguber.info/inful/pagesconf/internal/repoinfo"
	"git.home.luguber.info/inful/pagesconf/internal/version"
)

// argsEnv carries the build invocation's arguments when none are given after "--".
const argsEnv = "PAGESCONF_ARGS"

const logLevelEnv = "PAGESCONF_LOG_LEVEL"

// Global is bound into every command's Run method.
type Global struct {
	Stdout io.Writer
	// Dir is where git metadata is looked up for --detect-repo.
	Dir string
}

// CLI definition & global flags.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path" default:"pagesconf.yaml"`
	EnvFile []string         `name:"env-file" help:"Dotenv files to read; earlier files win and the process environment always wins" default:".env.local,.env"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Resolve ResolveCmd `cmd:"" help:"Print the build configuration for an invocation"`
	Emit    EmitCmd    `cmd:"" help:"Write the build configuration to a file (only when it changed)"`
	Lint    LintCmd    `cmd:"" help:"Check the resolved base path for common mistakes"`
	Verify  VerifyCmd  `cmd:"" help:"Check a built site against the resolved configuration"`
	Init    InitCmd    `cmd:"" help:"Initialize a new configuration file"`
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: parseLogLevel(c.Verbose)}))
	slog.SetDefault(logger)
	return nil
}

// InvocationFlags are shared by the commands that resolve a configuration.
type InvocationFlags struct {
	DetectRepo bool     `name:"detect-repo" help:"Use the git origin remote's repository name as the fallback base path"`
	Args       []string `arg:"" optional:"" passthrough:"" help:"Arguments of the build invocation, e.g. -- vite dev (default: $PAGESCONF_ARGS)"`
}

// NewParser builds the kong parser used by main and by tests.
func NewParser(cli *CLI, options ...kong.Option) (*kong.Kong, error) {
	opts := append([]kong.Option{
		kong.Name("pagesconf"),
		kong.Description("Resolve the base path and prerender settings of a static-site build."),
		kong.UsageOnError(),
		kong.Vars{"version": version.String()},
	}, options...)
	return kong.New(cli, opts...)
}

var logLevels = normalization.New(map[string]slog.Level{
	"debug":   slog.LevelDebug,
	"info":    slog.LevelInfo,
	"warn":    slog.LevelWarn,
	"warning": slog.LevelWarn,
	"error":   slog.LevelError,
}, slog.LevelInfo)

// parseLogLevel honors -v first, then PAGESCONF_LOG_LEVEL (debug|info|warn|error).
func parseLogLevel(verbose bool) slog.Level {
	if verbose {
		return slog.LevelDebug
	}
	return logLevels.Normalize(os.Getenv(logLevelEnv))
}

// loadInvocation gathers the resolver inputs: project file, dotenv files, process environment and arguments.
func loadInvocation(g *Global, root *CLI, flags InvocationFlags) (*config.Config, config.Invocation, error) {
	fileEnv, loaded, err := config.ReadEnvFiles(root.EnvFile...)
	if err != nil {
		return nil, config.Invocation{}, err
	}
	for _, f := range loaded {
		slog.Debug("Loaded environment file", logfields.File(f))
	}
	env := config.ProcessEnvironment().Merge(fileEnv)

	cfg, err := config.Load(root.Config, env, !isDefaultConfigPath(root.Config))
	if err != nil {
		return nil, config.Invocation{}, err
	}

	if flags.DetectRepo {
		dir := g.Dir
		if dir == "" {
			dir = "."
		}
		base, err := repoinfo.DetectBasePath(dir, repoinfo.DefaultRemote)
		if err != nil {
			slog.Debug("Repository detection failed, keeping configured fallback", logfields.Error(err))
		} else {
			slog.Info("Detected fallback base path from git remote", logfields.BasePath(base))
			cfg = cfg.WithFallbackBase(base)
		}
	}

	return cfg, config.Invocation{Args: invocationArgs(flags.Args, env), Env: env}, nil
}

// invocationArgs drops the "--" separator kong keeps on passthrough args and
// falls back to PAGESCONF_ARGS when no arguments were given.
func invocationArgs(args []string, env config.Environment) []string {
	if len(args) > 0 && args[0] == "--" {
		args = args[1:]
	}
	if len(args) == 0 {
		if v, ok := env.Lookup(argsEnv); ok {
			args = strings.Fields(v)
		}
	}
	return args
}

// resolveRecord resolves and logs the configuration record.
func resolveRecord(cfg *config.Config, inv config.Invocation) config.BuildConfiguration {
	rec := cfg.Resolve(inv)
	_, _, source := config.ResolveBasePath(inv, cfg.Paths)
	slog.Debug("Resolved build configuration",
		logfields.BasePath(rec.BasePath),
		logfields.Source(string(source)),
		logfields.Mode(string(rec.Mode)))
	return rec
}

// isDefaultConfigPath reports whether path is the implicit default, which may be absent.
func isDefaultConfigPath(path string) bool {
	return path == config.DefaultConfigFile
}
