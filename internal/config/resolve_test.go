package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestResolveBasePath(t *testing.T) {
	repoFallback := PathsConfig{FallbackBase: strPtr(PlaceholderBasePath)}
	rootFallback := PathsConfig{FallbackBase: strPtr("")}

	tests := []struct {
		name       string
		inv        Invocation
		paths      PathsConfig
		wantBase   string
		wantMode   InvocationMode
		wantSource BaseSource
	}{
		{
			name:       "dev marker serves from root",
			inv:        Invocation{Args: []string{"dev"}, Env: Environment{}},
			paths:      repoFallback,
			wantBase:   "",
			wantMode:   ModeDevelopment,
			wantSource: SourceDevMarker,
		},
		{
			name:       "dev marker wins over override",
			inv:        Invocation{Args: []string{"vite", "dev", "--port", "5173"}, Env: Environment{"BASE_PATH": "/my-site"}},
			paths:      repoFallback,
			wantBase:   "",
			wantMode:   ModeDevelopment,
			wantSource: SourceDevMarker,
		},
		{
			name:       "override variable",
			inv:        Invocation{Env: Environment{"BASE_PATH": "/my-site"}},
			paths:      repoFallback,
			wantBase:   "/my-site",
			wantMode:   ModePublish,
			wantSource: SourceEnv,
		},
		{
			name:       "empty override falls back",
			inv:        Invocation{Env: Environment{"BASE_PATH": ""}},
			paths:      repoFallback,
			wantBase:   PlaceholderBasePath,
			wantMode:   ModePublish,
			wantSource: SourceFallback,
		},
		{
			name:       "placeholder fallback",
			inv:        Invocation{},
			paths:      repoFallback,
			wantBase:   "/你的仓库名",
			wantMode:   ModePublish,
			wantSource: SourceFallback,
		},
		{
			name:       "root fallback",
			inv:        Invocation{Args: []string{}, Env: Environment{}},
			paths:      rootFallback,
			wantBase:   "",
			wantMode:   ModePublish,
			wantSource: SourceFallback,
		},
		{
			name:       "unset fallback uses placeholder",
			inv:        Invocation{},
			paths:      PathsConfig{},
			wantBase:   PlaceholderBasePath,
			wantMode:   ModePublish,
			wantSource: SourceFallback,
		},
		{
			name:       "marker must match a whole argument",
			inv:        Invocation{Args: []string{"--mode=dev", "develop"}},
			paths:      rootFallback,
			wantBase:   "",
			wantMode:   ModePublish,
			wantSource: SourceFallback,
		},
		{
			name:       "malformed override passes through",
			inv:        Invocation{Env: Environment{"BASE_PATH": "no-leading-slash/ "}},
			paths:      repoFallback,
			wantBase:   "no-leading-slash/ ",
			wantMode:   ModePublish,
			wantSource: SourceEnv,
		},
		{
			name:       "custom variable and marker",
			inv:        Invocation{Args: []string{"serve"}, Env: Environment{"PAGES_BASE": "/docs", "BASE_PATH": "/ignored"}},
			paths:      PathsConfig{BaseEnv: "PAGES_BASE", DevMarker: "preview", FallbackBase: strPtr("")},
			wantBase:   "/docs",
			wantMode:   ModePublish,
			wantSource: SourceEnv,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base, mode, source := ResolveBasePath(tt.inv, tt.paths)
			require.Equal(t, tt.wantBase, base)
			require.Equal(t, tt.wantMode, mode)
			require.Equal(t, tt.wantSource, source)
		})
	}
}

func TestResolveRecord(t *testing.T) {
	got := Default().Resolve(Invocation{Env: Environment{"BASE_PATH": "/my-site"}})

	require.Equal(t, BuildConfiguration{
		Adapter:     AdapterStatic,
		Pages:       "build",
		Assets:      "build",
		Fallback:    "index.html",
		Precompress: false,
		Strict:      true,
		BasePath:    "/my-site",
		Prerender:   PrerenderMode{Entries: []string{"*"}},
		Mode:        ModePublish,
	}, got)
}

func TestResolveNilConfigUsesDefaults(t *testing.T) {
	var cfg *Config
	got := cfg.Resolve(Invocation{})
	require.Equal(t, PlaceholderBasePath, got.BasePath)
	require.Equal(t, AdapterStatic, got.Adapter)
	require.True(t, got.Prerender.RendersAll())
}

func TestResolveAlwaysRendersEveryRoute(t *testing.T) {
	invocations := []Invocation{
		{Args: []string{"dev"}},
		{Env: Environment{"BASE_PATH": "/x"}},
		{},
	}
	for _, cfg := range []*Config{Default(), Default().WithFallbackBase("")} {
		for _, inv := range invocations {
			require.True(t, cfg.Resolve(inv).Prerender.RendersAll())
		}
	}
}

func TestResolveRecordsAreIndependent(t *testing.T) {
	cfg := Default()
	a := cfg.Resolve(Invocation{})
	a.Prerender.Entries[0] = "/only-this"

	b := cfg.Resolve(Invocation{})
	require.Equal(t, []string{"*"}, b.Prerender.Entries)
}

func TestWithFallbackBaseDoesNotMutate(t *testing.T) {
	cfg := Default()
	root := cfg.WithFallbackBase("")

	require.Equal(t, PlaceholderBasePath, cfg.Resolve(Invocation{}).BasePath)
	require.Equal(t, "", root.Resolve(Invocation{}).BasePath)
}
