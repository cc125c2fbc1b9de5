package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/rowtable"
	"github.com/bjaus/rowtable/internal/config"
	"github.com/bjaus/rowtable/internal/outpath"
)

func ptr[T any](v T) *T { return &v }

func TestDefaults(t *testing.T) {
	t.Parallel()
	cfg := config.Defaults()
	assert.Equal(t, 2, cfg.NRows)
	assert.Equal(t, "\t", cfg.Sep)
	assert.True(t, cfg.Escape)
	assert.Empty(t, cfg.OutFnFmt)
	assert.Equal(t, "plain", cfg.Format)
	require.NoError(t, config.Validate(cfg))
}

func TestLoadFile(t *testing.T) {
	t.Parallel()
	over, err := config.LoadFile("testdata/basic.yaml")
	require.NoError(t, err)
	cfg := config.Defaults().Apply(over)
	assert.Equal(t, 3, cfg.NRows)
	assert.Equal(t, ", ", cfg.Sep)
	assert.False(t, cfg.Escape)
	assert.Equal(t, "table", cfg.Format)
	assert.Equal(t, []string{"name", "age", "city"}, cfg.Header)
	assert.Equal(t, "ascii", cfg.Border)
	assert.True(t, cfg.Number)
	assert.Equal(t, 20, cfg.MaxWidth)
	assert.Equal(t, config.Logging{Level: "info", Format: "json"}, cfg.Logging)
	require.NoError(t, config.Validate(cfg))
}

func TestLoadFileUnknownField(t *testing.T) {
	t.Parallel()
	_, err := config.LoadFile("testdata/unknown.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "columns")
}

func TestLoadFileMissing(t *testing.T) {
	t.Parallel()
	_, err := config.LoadFile("testdata/missing.yaml")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDecodeEmpty(t *testing.T) {
	t.Parallel()
	over, err := config.Decode(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, config.Defaults(), config.Defaults().Apply(over))
}

func TestApplyExplicitZeroOverrides(t *testing.T) {
	t.Parallel()
	cfg := config.Defaults().Apply(config.Overlay{
		Sep:    ptr(""),
		Escape: ptr(false),
	})
	assert.Equal(t, "", cfg.Sep)
	assert.False(t, cfg.Escape)
	assert.Equal(t, 2, cfg.NRows, "unset fields keep the lower layer")
}

func TestApplyDoesNotAlias(t *testing.T) {
	t.Parallel()
	header := []string{"a", "b"}
	cfg := config.Defaults().Apply(config.Overlay{Header: header})
	header[0] = "changed"
	assert.Equal(t, []string{"a", "b"}, cfg.Header)
}

func TestEnvOverlay(t *testing.T) {
	t.Parallel()
	env := []string{
		"HOME=/root",
		"ROWTABLE_NROWS=3",
		`ROWTABLE_SEP=\t`,
		"ROWTABLE_ESCAPE=false",
		"ROWTABLE_OUTFNFMT={fnroot}.out",
		"ROWTABLE_FORMAT= csv ",
		"ROWTABLE_HEADER=a, b ,c",
		"ROWTABLE_BORDER=heavy",
		"ROWTABLE_LOG_LEVEL=DEBUG",
		"ROWTABLE_LOG_FORMAT=json",
		"ROWTABLE_UNKNOWN=1",
	}
	over, err := config.EnvOverlay(env)
	require.NoError(t, err)
	cfg := config.Defaults().Apply(over)
	assert.Equal(t, 3, cfg.NRows)
	assert.Equal(t, `\t`, cfg.Sep)
	assert.False(t, cfg.Escape)
	assert.Equal(t, "{fnroot}.out", cfg.OutFnFmt)
	assert.Equal(t, "csv", cfg.Format)
	assert.Equal(t, []string{"a", "b", "c"}, cfg.Header)
	assert.Equal(t, "heavy", cfg.Border)
	assert.Equal(t, config.Logging{Level: "debug", Format: "json"}, cfg.Logging)
}

func TestEnvOverlayMalformed(t *testing.T) {
	t.Parallel()
	_, err := config.EnvOverlay([]string{"ROWTABLE_NROWS=two", "ROWTABLE_ESCAPE=maybe"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ROWTABLE_NROWS")
	assert.Contains(t, err.Error(), "ROWTABLE_ESCAPE")
}

func TestReadDotEnv(t *testing.T) {
	t.Parallel()
	vars, err := config.ReadDotEnv("testdata/basic.env", true)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"ROWTABLE_NROWS":  "4",
		"ROWTABLE_SEP":    ";",
		"ROWTABLE_FORMAT": "csv",
	}, vars)
}

func TestReadDotEnvMissing(t *testing.T) {
	t.Parallel()
	missing := filepath.Join(t.TempDir(), ".env")
	vars, err := config.ReadDotEnv(missing, false)
	require.NoError(t, err)
	assert.Empty(t, vars)

	_, err = config.ReadDotEnv(missing, true)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestWithDotEnv(t *testing.T) {
	t.Parallel()
	environ := []string{"ROWTABLE_NROWS=5"}
	got := config.WithDotEnv(environ, map[string]string{
		"ROWTABLE_NROWS": "4",
		"ROWTABLE_SEP":   ";",
	})
	assert.Equal(t, []string{"ROWTABLE_NROWS=5", "ROWTABLE_SEP=;"}, got)
	assert.Equal(t, []string{"ROWTABLE_NROWS=5"}, environ)

	v, ok := config.Lookup(got, "ROWTABLE_NROWS")
	assert.True(t, ok)
	assert.Equal(t, "5", v)
	_, ok = config.Lookup(got, "ROWTABLE_TITLE")
	assert.False(t, ok)
}

func TestSplitList(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []string{"a", "b", "c"}, config.SplitList("a, b , ,c"))
	assert.Nil(t, config.SplitList(" , "))
}

func TestValidate(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		mutate func(*config.Config)
		target error
		text   string
	}{
		"zero group size": {
			mutate: func(c *config.Config) { c.NRows = 0 },
			target: rowtable.ErrInvalidGroupSize,
		},
		"negative group size": {
			mutate: func(c *config.Config) { c.NRows = -2 },
			target: rowtable.ErrInvalidGroupSize,
		},
		"bad escape": {
			mutate: func(c *config.Config) { c.Sep = `\` },
			target: rowtable.ErrInvalidEscape,
		},
		"unknown format": {
			mutate: func(c *config.Config) { c.Format = "xml" },
			target: rowtable.ErrUnsupportedFormat,
		},
		"markdown without header": {
			mutate: func(c *config.Config) { c.Format = "markdown" },
			target: rowtable.ErrMissingHeader,
		},
		"header width": {
			mutate: func(c *config.Config) { c.Header = []string{"a", "b", "c"} },
			target: rowtable.ErrHeaderWidth,
		},
		"unknown border": {
			mutate: func(c *config.Config) { c.Border = "dotted" },
			target: rowtable.ErrUnsupportedBorder,
		},
		"negative max width": {
			mutate: func(c *config.Config) { c.MaxWidth = -1 },
			target: config.ErrInvalid,
		},
		"negative wrap": {
			mutate: func(c *config.Config) { c.Wrap = -1 },
			target: config.ErrInvalid,
		},
		"bad outfnfmt": {
			mutate: func(c *config.Config) { c.OutFnFmt = "{nope}" },
			target: outpath.ErrBadTemplate,
			text:   "unknown field",
		},
		"log level": {
			mutate: func(c *config.Config) { c.Logging.Level = "trace" },
			target: config.ErrInvalid,
		},
		"log format": {
			mutate: func(c *config.Config) { c.Logging.Format = "xml" },
			target: config.ErrInvalid,
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			cfg := config.Defaults()
			tt.mutate(&cfg)
			err := config.Validate(cfg)
			require.Error(t, err)
			if tt.target != nil {
				assert.ErrorIs(t, err, tt.target)
			}
			if tt.text != "" {
				assert.Contains(t, err.Error(), tt.text)
			}
		})
	}
}

func TestValidateReportsAll(t *testing.T) {
	t.Parallel()
	cfg := config.Defaults()
	cfg.NRows = 0
	cfg.Format = "xml"
	err := config.Validate(cfg)
	assert.ErrorIs(t, err, rowtable.ErrInvalidGroupSize)
	assert.ErrorIs(t, err, rowtable.ErrUnsupportedFormat)
}

func TestSeparator(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		sep    string
		escape bool
		want   string
	}{
		"escaped tab":     {sep: `\t`, escape: true, want: "\t"},
		"escape disabled": {sep: `\t`, escape: false, want: `\t`},
		"no backslash":    {sep: ",", escape: true, want: ","},
		"empty":           {sep: "", escape: true, want: ""},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			cfg := config.Defaults()
			cfg.Sep, cfg.Escape = tt.sep, tt.escape
			got, err := cfg.Separator()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRender(t *testing.T) {
	t.Parallel()
	cfg := config.Defaults()
	cfg.NRows = 3
	cfg.Sep = `\x2c`
	cfg.Format = "table"
	cfg.Border = "none"
	cfg.Header = []string{"a", "b", "c"}
	cfg.Number = true
	cfg.MaxWidth = 10
	cfg.Wrap = 4
	require.NoError(t, config.Validate(cfg))

	f, opts, err := cfg.Render()
	require.NoError(t, err)
	assert.Equal(t, rowtable.Table, f)
	assert.Equal(t, ",", opts.Sep)
	assert.Equal(t, rowtable.BorderNone, opts.Border)
	assert.Equal(t, []string{"a", "b", "c"}, opts.Header)
	assert.True(t, opts.Numbered)
	assert.Equal(t, []int{10, 10, 10}, opts.MaxWidths)
	assert.Equal(t, []int{4, 4, 4}, opts.WrapWidths)
}
