package config

const (
	DefaultConfigFile = "pagesconf.yaml"

	DefaultOutputDir    = "build"
	DefaultFallbackPage = "index.html"

	// PlaceholderBasePath stands in for the repository name until a real one is configured.
	PlaceholderBasePath = "/你的仓库名"

	DefaultBaseEnv   = "BASE_PATH"
	DefaultDevMarker = "dev"
)

// Default returns a Config with every default applied.
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

func (c *Config) applyDefaults() {
	if c.Adapter.Pages == "" {
		c.Adapter.Pages = DefaultOutputDir
	}
	// Assets follow pages unless set.
	if c.Adapter.Assets == "" {
		c.Adapter.Assets = c.Adapter.Pages
	}
	if c.Adapter.Fallback == "" {
		c.Adapter.Fallback = DefaultFallbackPage
	}
	if c.Adapter.Strict == nil {
		strict := true
		c.Adapter.Strict = &strict
	}
	if c.Paths.FallbackBase == nil {
		base := PlaceholderBasePath
		c.Paths.FallbackBase = &base
	}
	if c.Paths.BaseEnv == "" {
		c.Paths.BaseEnv = DefaultBaseEnv
	}
	if c.Paths.DevMarker == "" {
		c.Paths.DevMarker = DefaultDevMarker
	}
	if len(c.Prerender.Entries) == 0 {
		c.Prerender.Entries = []string{RenderAllEntry}
	}
}

// WithFallbackBase returns a copy of c whose fallback base path is base.
func (c *Config) WithFallbackBase(base string) *Config {
	cp := *c
	cp.Paths.FallbackBase = &base
	return &cp
}
