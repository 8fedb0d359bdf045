// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package header

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/go4org/hashtriemap"

	"go.astrophena.name/hooks/logger"
)

// Options configure a [Manager].
type Options struct {
	// Text is the header text before commenting.
	Text string
	// Template enables {{placeholder}} substitution in Text using Data.
	Template bool
	// Data provides placeholder values. Data.CurrentYear is also used by
	// UpdateYear.
	Data Data
	// Strategy selects how the header is applied to files.
	Strategy Strategy
	// UpdateYear brings copyright years in Text up to date before
	// commenting. Only valid with the Stripped strategy.
	UpdateYear bool
	// KeepShebang keeps a "#!" first line above the header. Only valid with
	// the Stripped strategy.
	KeepShebang bool
	// Markers maps file extensions (with the leading dot) to comment
	// markers. Files with other extensions use DefaultMarker.
	Markers map[string]string
	// DryRun reports which files would change without writing them.
	DryRun bool
}

// Manager applies a header to files. It is safe for concurrent use.
type Manager struct {
	opts   Options
	text   string
	blocks hashtriemap.HashTrieMap[string, string] // marker → commented text
}

// New resolves and validates the header described by opts. Any error in the
// template or its data is reported here, before any file is read.
func New(opts Options) (*Manager, error) {
	if opts.Strategy != Stripped && (opts.UpdateYear || opts.KeepShebang) {
		return nil, fmt.Errorf("year update and shebang handling require the %v strategy, got %v", Stripped, opts.Strategy)
	}
	for ext, marker := range opts.Markers {
		if marker == "" {
			return nil, fmt.Errorf("empty comment marker for %q files", ext)
		}
	}

	text := opts.Text
	if opts.Template {
		var err error
		if text, err = Resolve(text, opts.Data); err != nil {
			return nil, err
		}
	}
	if opts.UpdateYear {
		text = UpdateYears(text, opts.Data.CurrentYear)
	}
	return &Manager{opts: opts, text: text}, nil
}

// Text returns the resolved header text before commenting.
func (m *Manager) Text() string { return m.text }

// Block returns the commented header for marker.
func (m *Manager) Block(marker string) string {
	if b, ok := m.blocks.Load(marker); ok {
		return b
	}
	b, _ := m.blocks.LoadOrStore(marker, Comment(m.text, marker))
	return b
}

// Marker returns the comment marker used for path.
func (m *Manager) Marker(path string) string {
	if marker, ok := m.opts.Markers[filepath.Ext(path)]; ok {
		return marker
	}
	return DefaultMarker
}

// Render returns content with the header applied for a file at path.
func (m *Manager) Render(path, content string) (string, error) {
	marker := m.Marker(path)
	block := m.Block(marker)
	switch m.opts.Strategy {
	case Bounded:
		return upsertBounded(content, block, marker)
	case Stripped:
		return upsertStripped(content, block, marker, m.opts.KeepShebang), nil
	}
	return "", fmt.Errorf("unknown strategy %v", m.opts.Strategy)
}

// Result describes the outcome of [Manager.Apply].
type Result struct {
	// Processed lists files that were fully handled, in order.
	Processed []string
	// Changed lists files whose content was (or, in dry run mode, would
	// be) changed.
	Changed []string
}

// Apply applies the header to each file in turn. Files that already carry the
// header are left untouched.
//
// The first error stops processing; files handled before it keep their new
// content. The returned Result is valid even when err is not nil.
func (m *Manager) Apply(ctx context.Context, files ...string) (*Result, error) {
	res := new(Result)
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		changed, err := m.applyFile(ctx, file)
		if err != nil {
			return res, err
		}
		res.Processed = append(res.Processed, file)
		if changed {
			res.Changed = append(res.Changed, file)
		}
	}
	return res, nil
}

func (m *Manager) applyFile(ctx context.Context, file string) (changed bool, err error) {
	b, err := os.ReadFile(file)
	if err != nil {
		return false, err
	}
	content := string(b)

	updated, err := m.Render(file, content)
	if err != nil {
		return false, fmt.Errorf("%s: %w", file, err)
	}
	if updated == content {
		logger.Info(ctx, "license header is up to date", slog.String("file", file))
		return false, nil
	}
	if m.opts.DryRun {
		logger.Info(ctx, "license header would be updated", slog.String("file", file))
		return true, nil
	}

	if err := writeFile(file, []byte(updated)); err != nil {
		return false, err
	}
	logger.Info(ctx, "added license header", slog.String("file", file))
	return true, nil
}

// writeFile replaces the content of an existing file, keeping its mode.
func writeFile(path string, data []byte) error {
	fi, err := os.Stat(path)
	if err != nil {
		return err
	}
	if !fi.Mode().IsRegular() {
		return fmt.Errorf("%s: %w", path, errNotRegular)
	}
	return os.WriteFile(path, data, fi.Mode().Perm())
}

var errNotRegular = errors.New("not a regular file")
