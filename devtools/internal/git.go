// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package internal

import (
	"errors"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// GitInfo holds placeholder defaults derived from a Git repository.
type GitInfo struct {
	// FirstYear is the author year of the oldest reachable commit, or zero
	// if HEAD has no commits yet.
	FirstYear int
	// Name and Email come from user.name and user.email, with repository
	// settings taking precedence over global ones.
	Name  string
	Email string
}

// LoadGitInfo inspects the Git repository containing dir.
func LoadGitInfo(dir string) (*GitInfo, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, err
	}

	info := new(GitInfo)

	cfg, err := repo.ConfigScoped(config.GlobalScope)
	if err != nil {
		return nil, err
	}
	info.Name, info.Email = cfg.User.Name, cfg.User.Email

	commits, err := repo.Log(&git.LogOptions{})
	if errors.Is(err, plumbing.ErrReferenceNotFound) {
		// No commits yet.
		return info, nil
	}
	if err != nil {
		return nil, err
	}
	defer commits.Close()
	err = commits.ForEach(func(c *object.Commit) error {
		if y := c.Author.When.Year(); info.FirstYear == 0 || y < info.FirstYear {
			info.FirstYear = y
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return info, nil
}
