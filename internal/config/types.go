package config

// AdapterKind names the output adapter of the external build tool.
type AdapterKind string

// AdapterStatic emits pre-rendered HTML and assets with no server runtime.
const AdapterStatic AdapterKind = "static"

// InvocationMode distinguishes a local development run from a publish build.
type InvocationMode string

const (
	ModeDevelopment InvocationMode = "development"
	ModePublish     InvocationMode = "publish"
)

// BaseSource records which input decided the base path.
type BaseSource string

const (
	SourceDevMarker BaseSource = "dev_marker"
	SourceEnv       BaseSource = "env"
	SourceFallback  BaseSource = "fallback"
)

// BuildConfiguration is the record handed to the external static-site build tool.
// It is produced once per invocation and never mutated afterwards.
type BuildConfiguration struct {
	Adapter     AdapterKind    `json:"adapter" yaml:"adapter"`
	Pages       string         `json:"pages" yaml:"pages"`
	Assets      string         `json:"assets" yaml:"assets"`
	Fallback    string         `json:"fallback" yaml:"fallback"`
	Precompress bool           `json:"precompress" yaml:"precompress"`
	Strict      bool           `json:"strict" yaml:"strict"`
	BasePath    string         `json:"base_path" yaml:"base_path"`
	Prerender   PrerenderMode  `json:"prerender" yaml:"prerender"`
	Mode        InvocationMode `json:"mode" yaml:"mode"`
}

// Config is the optional project file (pagesconf.yaml).
type Config struct {
	Adapter   AdapterConfig   `yaml:"adapter"`
	Paths     PathsConfig     `yaml:"paths"`
	Prerender PrerenderConfig `yaml:"prerender"`
}

// AdapterConfig configures the static adapter's output layout.
type AdapterConfig struct {
	Pages       string `yaml:"pages,omitempty"`
	Assets      string `yaml:"assets,omitempty"`
	Fallback    string `yaml:"fallback,omitempty"`
	Precompress bool   `yaml:"precompress"`
	Strict      *bool  `yaml:"strict,omitempty"`
}

// PathsConfig configures base path resolution.
type PathsConfig struct {
	// FallbackBase is used when neither the dev marker nor the override variable apply.
	// nil means the built-in placeholder; an explicit "" serves the site from root.
	FallbackBase *string `yaml:"fallback_base,omitempty"`
	BaseEnv      string  `yaml:"base_env,omitempty"`
	DevMarker    string  `yaml:"dev_marker,omitempty"`
}

// PrerenderConfig accepts both the entries form and the legacy default flag.
type PrerenderConfig struct {
	Entries []string `yaml:"entries,omitempty"`
	Default *bool    `yaml:"default,omitempty"`
}
