package config

import "slices"

// Invocation is everything the resolver looks at: the build's argument list
// and its environment. The caller gathers both; resolution itself does no I/O.
type Invocation struct {
	Args []string
	Env  Environment
}

// ResolveBasePath decides the base path for one invocation.
// Precedence:
// 1. dev marker among the arguments => "" (served from root)
// 2. override variable (BASE_PATH by default), when present and non-empty
// 3. configured fallback (placeholder unless configured)
//
// Values are passed through verbatim; validation is left to the build tool and to sitecheck.Lint.
func ResolveBasePath(inv Invocation, paths PathsConfig) (string, InvocationMode, BaseSource) {
	marker := paths.DevMarker
	if marker == "" {
		marker = DefaultDevMarker
	}
	if slices.Contains(inv.Args, marker) {
		return "", ModeDevelopment, SourceDevMarker
	}

	envName := paths.BaseEnv
	if envName == "" {
		envName = DefaultBaseEnv
	}
	if v, ok := inv.Env.Lookup(envName); ok && v != "" {
		return v, ModePublish, SourceEnv
	}

	if paths.FallbackBase == nil {
		return PlaceholderBasePath, ModePublish, SourceFallback
	}
	return *paths.FallbackBase, ModePublish, SourceFallback
}

// Resolve builds the configuration record for inv. A nil Config resolves with defaults.
// Resolve never fails.
func (c *Config) Resolve(inv Invocation) BuildConfiguration {
	if c == nil {
		c = Default()
	}
	base, mode, _ := ResolveBasePath(inv, c.Paths)

	pages := c.Adapter.Pages
	if pages == "" {
		pages = DefaultOutputDir
	}
	assets := c.Adapter.Assets
	if assets == "" {
		assets = pages
	}
	fallback := c.Adapter.Fallback
	if fallback == "" {
		fallback = DefaultFallbackPage
	}
	strict := c.Adapter.Strict == nil || *c.Adapter.Strict

	return BuildConfiguration{
		Adapter:     AdapterStatic,
		Pages:       pages,
		Assets:      assets,
		Fallback:    fallback,
		Precompress: c.Adapter.Precompress,
		Strict:      strict,
		BasePath:    base,
		Prerender:   RenderAll(),
		Mode:        mode,
	}
}
