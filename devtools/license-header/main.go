// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"cmp"
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strconv"
	"time"

	"go.astrophena.name/hooks/cli"
	"go.astrophena.name/hooks/devtools/internal"
	"go.astrophena.name/hooks/header"
	"go.astrophena.name/hooks/logger"
)

const defaultTemplate = "LICENSE"

func main() { cli.Main(new(app)) }

type app struct {
	internal.Common

	template    string
	startYear   string
	authorName  internal.Words
	authorEmail string
	git         bool

	// now is used instead of time.Now if set.
	now func() time.Time
}

func (a *app) Flags(fs *flag.FlagSet) {
	a.Common.Flags(fs)
	fs.StringVar(&a.template, "license-template", "", "Read the license template from `path` (default \""+defaultTemplate+"\").")
	fs.StringVar(&a.template, "lt", "", "Shorthand for -license-template.")
	fs.StringVar(&a.startYear, "start-year", "", "Substitute `year` for {{start-year}}.")
	fs.Var(&a.authorName, "author-name", "Substitute `name` for {{author-name}}. Repeatable; words are joined with spaces.")
	fs.StringVar(&a.authorEmail, "author-email", "", "Substitute `email` for {{author-email}}.")
	fs.BoolVar(&a.git, "git", false, "Take missing start year, author name and email from the Git repository.")
}

func (a *app) Run(ctx context.Context) error {
	ctx, cfg, err := a.Setup(ctx)
	if err != nil {
		return err
	}

	data, err := a.data(ctx, cfg)
	if err != nil {
		return err
	}

	path := cmp.Or(a.template, cfg.Template, defaultTemplate)
	text, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading license template: %w", err)
	}

	m, err := header.New(header.Options{
		Text:     string(text),
		Template: true,
		Data:     data,
		Strategy: header.Bounded,
		Markers:  cfg.Markers,
		DryRun:   a.Dry,
	})
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return a.Apply(ctx, m)
}

// data collects placeholder values from flags, then the configuration, then
// Git if enabled.
func (a *app) data(ctx context.Context, cfg *internal.Config) (header.Data, error) {
	now := time.Now
	if a.now != nil {
		now = a.now
	}
	d := header.Data{
		CurrentYear: now().Year(),
		StartYear:   cmp.Or(a.startYear, cfg.StartYearString()),
		AuthorName:  slices.Clone([]string(a.authorName)),
		AuthorEmail: cmp.Or(a.authorEmail, cfg.AuthorEmail),
	}
	if len(d.AuthorName) == 0 {
		d.AuthorName = slices.Clone(cfg.AuthorName)
	}
	if d.StartYear != "" {
		if _, err := strconv.Atoi(d.StartYear); err != nil {
			return d, fmt.Errorf("%w: start year %q is not a number", cli.ErrInvalidArgs, d.StartYear)
		}
	}
	if !a.git {
		return d, nil
	}

	gi, err := internal.LoadGitInfo(".")
	if err != nil {
		return d, fmt.Errorf("reading Git repository: %w", err)
	}
	if d.StartYear == "" && gi.FirstYear != 0 {
		d.StartYear = strconv.Itoa(gi.FirstYear)
	}
	if len(d.AuthorName) == 0 && gi.Name != "" {
		d.AuthorName = []string{gi.Name}
	}
	d.AuthorEmail = cmp.Or(d.AuthorEmail, gi.Email)
	logger.Debug(ctx, "placeholder values", slog.String("start-year", d.StartYear), slog.Any("author-name", d.AuthorName), slog.String("author-email", d.AuthorEmail))
	return d, nil
}
