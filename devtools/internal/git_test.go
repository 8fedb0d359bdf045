// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package internal

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"

	"go.astrophena.name/hooks/testutil"
)

// initRepo creates a repository in a temporary directory with one commit per
// year in years, and a local user identity.
func initRepo(t *testing.T, years ...int) string {
	t.Helper()

	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	if err != nil {
		t.Fatalf("PlainInit(): %v", err)
	}
	cfg, err := repo.Config()
	if err != nil {
		t.Fatalf("Config(): %v", err)
	}
	cfg.User.Name = "Jane Doe"
	cfg.User.Email = "jane@example.com"
	if err := repo.SetConfig(cfg); err != nil {
		t.Fatalf("SetConfig(): %v", err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		t.Fatalf("Worktree(): %v", err)
	}
	for i, year := range years {
		name := filepath.Join(dir, "file.txt")
		if err := os.WriteFile(name, []byte{byte('a' + i)}, 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := wt.Add("file.txt"); err != nil {
			t.Fatalf("Add(): %v", err)
		}
		sig := &object.Signature{
			Name:  "Jane Doe",
			Email: "jane@example.com",
			When:  time.Date(year, time.June, 1, 0, 0, 0, 0, time.UTC),
		}
		if _, err := wt.Commit("commit", &git.CommitOptions{Author: sig, Committer: sig}); err != nil {
			t.Fatalf("Commit(): %v", err)
		}
	}
	return dir
}

func TestLoadGitInfo(t *testing.T) {
	t.Run("history", func(t *testing.T) {
		dir := initRepo(t, 2019, 2021, 2024)
		sub := filepath.Join(dir, "sub")
		if err := os.Mkdir(sub, 0o755); err != nil {
			t.Fatal(err)
		}

		info, err := LoadGitInfo(sub)
		if err != nil {
			t.Fatalf("LoadGitInfo(): %v", err)
		}
		testutil.AssertEqual(t, info, &GitInfo{
			FirstYear: 2019,
			Name:      "Jane Doe",
			Email:     "jane@example.com",
		})
	})

	t.Run("no commits", func(t *testing.T) {
		dir := initRepo(t)
		info, err := LoadGitInfo(dir)
		if err != nil {
			t.Fatalf("LoadGitInfo(): %v", err)
		}
		testutil.AssertEqual(t, info.FirstYear, 0)
		testutil.AssertEqual(t, info.Name, "Jane Doe")
	})

	t.Run("not a repository", func(t *testing.T) {
		if _, err := LoadGitInfo(t.TempDir()); err == nil {
			t.Fatal("want error, got nil")
		}
	})
}
