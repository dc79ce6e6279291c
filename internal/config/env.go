package config

import (
	"os"
	"regexp"
	"strings"

	"github.com/joho/godotenv"

	"git.home.luguber.info/inful/pagesconf/internal/foundation/errors"
)

// DefaultEnvFiles are read in order; earlier files win.
var DefaultEnvFiles = []string{".env.local", ".env"}

// Environment is a snapshot of environment variables.
type Environment map[string]string

// EnvironmentFromList parses KEY=VALUE pairs as returned by os.Environ.
func EnvironmentFromList(list []string) Environment {
	env := make(Environment, len(list))
	for _, kv := range list {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			continue
		}
		env[k] = v
	}
	return env
}

// ProcessEnvironment snapshots the current process environment.
func ProcessEnvironment() Environment {
	return EnvironmentFromList(os.Environ())
}

// Lookup returns the value of key and whether it is present.
func (e Environment) Lookup(key string) (string, bool) {
	if e == nil {
		return "", false
	}
	v, ok := e[key]
	return v, ok
}

// Merge returns a copy of e with keys filled from other where e has no value.
// Non-empty values in e are never overridden.
func (e Environment) Merge(other Environment) Environment {
	out := make(Environment, len(e)+len(other))
	for k, v := range other {
		out[k] = v
	}
	for k, v := range e {
		if v == "" {
			if _, ok := other[k]; ok {
				continue
			}
		}
		out[k] = v
	}
	return out
}

var bracedRef = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// Expand substitutes ${VAR} references using e. Unknown variables expand to "".
// A bare "$" is kept as written.
func (e Environment) Expand(s string) string {
	return bracedRef.ReplaceAllStringFunc(s, func(ref string) string {
		v, _ := e.Lookup(ref[2 : len(ref)-1])
		return v
	})
}

// ReadEnvFiles reads dotenv files without touching the process environment.
// Missing files are skipped. It returns the merged variables and the list of
// files that were read. A key set in an earlier file wins, even when empty.
func ReadEnvFiles(paths ...string) (Environment, []string, error) {
	merged := Environment{}
	var loaded []string
	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, loaded, errors.WrapError(err, errors.CategoryFileSystem, "failed to stat env file").
				WithContext("path", p).
				Build()
		}
		vars, err := godotenv.Read(p)
		if err != nil {
			return nil, loaded, errors.WrapError(err, errors.CategoryConfig, "failed to parse env file").
				WithContext("path", p).
				Build()
		}
		for k, v := range vars {
			if _, ok := merged[k]; !ok {
				merged[k] = v
			}
		}
		loaded = append(loaded, p)
	}
	return merged, loaded, nil
}
