package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"maps"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment variable the tool reads.
const EnvPrefix = "ROWTABLE_"

// LoadFile parses a YAML configuration file. Unknown keys are rejected.
func LoadFile(path string) (Overlay, error) {
	f, err := os.Open(path)
	if err != nil {
		return Overlay{}, err
	}
	defer f.Close()
	return Decode(f)
}

// Decode parses a YAML configuration layer from r. An empty document is an
// empty layer.
func Decode(r io.Reader) (Overlay, error) {
	var over Overlay
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&over); err != nil && !errors.Is(err, io.EOF) {
		return Overlay{}, fmt.Errorf("decode config: %w", err)
	}
	return over, nil
}

// ReadDotEnv reads KEY=value pairs from a .env file. A missing file yields
// no pairs unless required is true.
func ReadDotEnv(path string, required bool) (map[string]string, error) {
	vars, err := godotenv.Read(path)
	if err != nil {
		if !required && errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	return vars, nil
}

// WithDotEnv returns environ extended by the .env pairs whose keys environ
// does not already set. Real environment variables always win.
func WithDotEnv(environ []string, dotenv map[string]string) []string {
	out := slices.Clone(environ)
	set := make(map[string]bool, len(environ))
	for _, kv := range environ {
		key, _, _ := strings.Cut(kv, "=")
		set[key] = true
	}
	keys := slices.Sorted(maps.Keys(dotenv))
	for _, key := range keys {
		if !set[key] {
			out = append(out, key+"="+dotenv[key])
		}
	}
	return out
}

// Lookup returns the value of key in environ.
func Lookup(environ []string, key string) (string, bool) {
	for i := len(environ) - 1; i >= 0; i-- {
		k, v, ok := strings.Cut(environ[i], "=")
		if ok && k == key {
			return v, true
		}
	}
	return "", false
}

// EnvOverlay builds a layer from ROWTABLE_* variables in environ, given in
// the "KEY=value" form of [os.Environ]. Malformed numbers and booleans are
// errors rather than silently ignored.
func EnvOverlay(environ []string) (Overlay, error) {
	var over Overlay
	var errs []error
	for _, kv := range environ {
		key, val, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		name, ok := strings.CutPrefix(key, EnvPrefix)
		if !ok {
			continue
		}
		switch name {
		case "NROWS":
			n, err := strconv.Atoi(strings.TrimSpace(val))
			if err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", key, err))
				continue
			}
			over.NRows = &n
		case "SEP":
			over.Sep = &val
		case "ESCAPE":
			b, err := strconv.ParseBool(strings.TrimSpace(val))
			if err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", key, err))
				continue
			}
			over.Escape = &b
		case "OUTFNFMT":
			over.OutFnFmt = &val
		case "FORMAT":
			v := strings.TrimSpace(val)
			over.Format = &v
		case "HEADER":
			over.Header = SplitList(val)
		case "BORDER":
			v := strings.TrimSpace(val)
			over.Border = &v
		case "LOG_LEVEL":
			v := strings.ToLower(strings.TrimSpace(val))
			over.Logging.Level = &v
		case "LOG_FORMAT":
			v := strings.ToLower(strings.TrimSpace(val))
			over.Logging.Format = &v
		}
	}
	return over, errors.Join(errs...)
}

// SplitList splits a comma-separated list, trimming each element and
// dropping empty ones.
func SplitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
