// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package internal

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"go.astrophena.name/hooks/cli"
	"go.astrophena.name/hooks/header"
	"go.astrophena.name/hooks/logger"
)

// ErrFilesChanged is returned by hooks run with -fail-on-change when they
// modified at least one file.
var ErrFilesChanged = errors.New("files were modified by this hook")

// Common holds flags shared by all hooks.
type Common struct {
	Config       string
	Verbose      bool
	Dry          bool
	FailOnChange bool
	Markers      Markers
}

// Flags registers the shared flags.
func (c *Common) Flags(fs *flag.FlagSet) {
	fs.StringVar(&c.Config, "config", ConfigFile, "Read defaults from txtar archive at `path`.")
	fs.BoolVar(&c.Verbose, "verbose", false, "Report every processed file.")
	fs.BoolVar(&c.Verbose, "v", false, "Shorthand for -verbose.")
	fs.BoolVar(&c.Dry, "dry", false, "Print the files that would be changed, without changing them.")
	fs.BoolVar(&c.FailOnChange, "fail-on-change", false, "Exit with an error if any file was changed.")
	fs.Var(&c.Markers, "marker", "Use comment `marker` for files with extension, as ext=marker (e.g. .go=//). Repeatable.")
}

// Setup loads the configuration and returns a context carrying a logger that
// writes to the environment's standard error.
func (c *Common) Setup(ctx context.Context) (context.Context, *Config, error) {
	env := cli.GetEnv(ctx)

	lv := new(slog.LevelVar)
	lv.Set(slog.LevelWarn)
	if c.Verbose {
		lv.Set(slog.LevelInfo)
	}
	l := logger.New(lv)
	l.Attach(l.NewTerminalHandler(env.Stderr, env.StderrIsTerminal()))
	ctx = logger.Put(ctx, l)

	cfg, err := LoadConfig(c.Config)
	if err != nil {
		return ctx, nil, err
	}
	if cfg.Markers == nil {
		cfg.Markers = make(map[string]string)
	}
	for ext, marker := range c.Markers {
		cfg.Markers[ext] = marker
	}
	return ctx, cfg, nil
}

// Apply runs m over the files passed on the command line and reports the
// outcome according to the shared flags.
func (c *Common) Apply(ctx context.Context, m *header.Manager) error {
	env := cli.GetEnv(ctx)
	res, err := m.Apply(ctx, env.Args...)
	if err != nil {
		if len(res.Changed) > 0 {
			logger.Warn(ctx, "aborted after modifying some files", slog.Any("files", res.Changed))
		}
		return err
	}
	if c.Dry {
		for _, file := range res.Changed {
			env.Logf("Would update license header in file %s.", file)
		}
		return nil
	}
	if c.FailOnChange && len(res.Changed) > 0 {
		return fmt.Errorf("%w: %s", ErrFilesChanged, strings.Join(res.Changed, ", "))
	}
	return nil
}

// Words is a repeatable flag collecting whitespace-separated tokens.
type Words []string

func (w *Words) String() string {
	if w == nil {
		return ""
	}
	return strings.Join(*w, " ")
}

// Set appends the fields of s.
func (w *Words) Set(s string) error {
	*w = append(*w, strings.Fields(s)...)
	return nil
}

// Markers is a repeatable ext=marker flag.
type Markers map[string]string

func (m *Markers) String() string {
	if m == nil || *m == nil {
		return ""
	}
	var parts []string
	for ext, marker := range *m {
		parts = append(parts, ext+"="+marker)
	}
	return strings.Join(parts, ",")
}

// Set parses an ext=marker pair. A missing leading dot is added.
func (m *Markers) Set(s string) error {
	ext, marker, ok := strings.Cut(s, "=")
	if !ok || ext == "" || marker == "" {
		return fmt.Errorf("%w: marker %q must have form ext=marker", cli.ErrInvalidArgs, s)
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	if *m == nil {
		*m = make(Markers)
	}
	(*m)[ext] = marker
	return nil
}

// OptionalBool is a boolean flag that takes an explicit value, as in
// "-update-year false", and remembers whether it was set.
type OptionalBool struct {
	Value bool
	IsSet bool
}

func (b *OptionalBool) String() string {
	if b == nil {
		return "false"
	}
	return strconv.FormatBool(b.Value)
}

// Set parses s with [strconv.ParseBool].
func (b *OptionalBool) Set(s string) error {
	v, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	b.Value, b.IsSet = v, true
	return nil
}

// Or returns the flag value if it was set, then def if not nil, then
// fallback.
func (b *OptionalBool) Or(def *bool, fallback bool) bool {
	switch {
	case b.IsSet:
		return b.Value
	case def != nil:
		return *def
	}
	return fallback
}
