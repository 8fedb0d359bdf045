// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"cmp"
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"go.astrophena.name/hooks/cli"
	"go.astrophena.name/hooks/devtools/internal"
	"go.astrophena.name/hooks/header"
)

const defaultLicenseFile = "LICENSE"

func main() { cli.Main(new(app)) }

type app struct {
	internal.Common

	licenseFile string
	updateYear  internal.OptionalBool
	keepShebang bool

	// now is used instead of time.Now if set.
	now func() time.Time
}

func (a *app) Flags(fs *flag.FlagSet) {
	a.Common.Flags(fs)
	fs.StringVar(&a.licenseFile, "license-file", "", "Read the license text from `path` (default \""+defaultLicenseFile+"\").")
	fs.StringVar(&a.licenseFile, "lf", "", "Shorthand for -license-file.")
	fs.Var(&a.updateYear, "update-year", "Whether to extend copyright years in the license text up to the current year (true or false, default true).")
	fs.BoolVar(&a.keepShebang, "keep-shebang", false, "Keep a \"#!\" first line above the license.")
}

func (a *app) Run(ctx context.Context) error {
	ctx, cfg, err := a.Setup(ctx)
	if err != nil {
		return err
	}

	path := cmp.Or(a.licenseFile, cfg.LicenseFile, defaultLicenseFile)
	text, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading license file: %w", err)
	}

	now := time.Now
	if a.now != nil {
		now = a.now
	}
	m, err := header.New(header.Options{
		Text:        string(text),
		Data:        header.Data{CurrentYear: now().Year()},
		Strategy:    header.Stripped,
		UpdateYear:  a.updateYear.Or(cfg.UpdateYear, true),
		KeepShebang: a.keepShebang,
		Markers:     cfg.Markers,
		DryRun:      a.Dry,
	})
	if err != nil {
		return err
	}
	return a.Apply(ctx, m)
}
