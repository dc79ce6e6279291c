// Package emit renders a resolved build configuration for the external build tool.
package emit

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/adnsv/go-utils/fs"
	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/pagesconf/internal/config"
	"git.home.luguber.info/inful/pagesconf/internal/foundation/errors"
	"git.home.luguber.info/inful/pagesconf/internal/foundation/normalization"
)

// Format is an output encoding for the configuration record.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatEnv  Format = "env"
)

var formatNames = normalization.New(map[string]Format{
	"json":   FormatJSON,
	"yaml":   FormatYAML,
	"yml":    FormatYAML,
	"env":    FormatEnv,
	"dotenv": FormatEnv,
}, FormatJSON)

// ParseFormat validates a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	if f, ok := formatNames.Lookup(s); ok {
		return f, nil
	}
	return "", errors.ValidationError("unsupported output format").
		WithContext("format", s).
		WithContext("valid", strings.Join(formatNames.ValidKeys(), ",")).
		Build()
}

// Render encodes rec in the given format.
func Render(rec config.BuildConfiguration, f Format) ([]byte, error) {
	switch f {
	case FormatJSON:
		buf, err := json.MarshalIndent(rec, "", "  ")
		if err != nil {
			return nil, errors.WrapError(err, errors.CategoryInternal, "failed to encode json").Build()
		}
		return append(buf, '\n'), nil
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(rec); err != nil {
			return nil, errors.WrapError(err, errors.CategoryInternal, "failed to encode yaml").Build()
		}
		if err := enc.Close(); err != nil {
			return nil, errors.WrapError(err, errors.CategoryInternal, "failed to encode yaml").Build()
		}
		return buf.Bytes(), nil
	case FormatEnv:
		return renderEnv(rec), nil
	default:
		return nil, errors.ValidationError("unsupported output format").
			WithContext("format", string(f)).
			Build()
	}
}

// Write renders rec to w.
func Write(w io.Writer, rec config.BuildConfiguration, f Format) error {
	buf, err := Render(rec, f)
	if err != nil {
		return err
	}
	if _, err := w.Write(buf); err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "failed to write record").Build()
	}
	return nil
}

// WriteFile renders rec to path. The file is left untouched when its content
// is already identical, so watchers of the file are not retriggered.
func WriteFile(path string, rec config.BuildConfiguration, f Format) error {
	buf, err := Render(rec, f)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "failed to create record directory").
			WithContext("path", path).
			Build()
	}
	if err := fs.WriteFileIfChanged(path, buf); err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "failed to write record file").
			WithContext("path", path).
			Build()
	}
	return nil
}

func renderEnv(rec config.BuildConfiguration) []byte {
	var b strings.Builder
	line := func(k, v string) {
		fmt.Fprintf(&b, "%s=%s\n", k, shellQuote(v))
	}
	line("ADAPTER", string(rec.Adapter))
	line("BASE_PATH", rec.BasePath)
	line("PAGES_DIR", rec.Pages)
	line("ASSETS_DIR", rec.Assets)
	line("FALLBACK_PAGE", rec.Fallback)
	line("PRECOMPRESS", fmt.Sprint(rec.Precompress))
	line("STRICT", fmt.Sprint(rec.Strict))
	line("PRERENDER_ENTRIES", strings.Join(rec.Prerender.Entries, " "))
	line("BUILD_MODE", string(rec.Mode))
	return []byte(b.String())
}

// shellQuote wraps s in single quotes, escaping embedded single quotes for POSIX shells.
func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
