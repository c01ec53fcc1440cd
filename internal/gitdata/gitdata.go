// Package gitdata fetches the JSON corpus from a git repository before a
// generation run. Fetching is optional; runs against a local data directory
// skip it entirely.
package gitdata

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	"git.home.luguber.info/inful/taxsitegen/internal/config"
	"git.home.luguber.info/inful/taxsitegen/internal/logfields"
)

// Fetcher clones or updates the configured data repository.
type Fetcher struct {
	cfg *config.DataConfig
}

// NewFetcher creates a fetcher for the given data configuration.
func NewFetcher(cfg *config.DataConfig) *Fetcher {
	return &Fetcher{cfg: cfg}
}

// Enabled reports whether a data repository is configured.
func (f *Fetcher) Enabled() bool {
	return f.cfg.Repository != ""
}

// Sync brings the data directory up to date with the configured repository:
// a fresh clone when the directory is not a repository yet, a pull otherwise.
func (f *Fetcher) Sync() error {
	if !f.Enabled() {
		return nil
	}

	if _, err := os.Stat(filepath.Join(f.cfg.Dir, ".git")); err != nil {
		return f.clone()
	}
	return f.pull()
}

func (f *Fetcher) clone() error {
	slog.Debug("Cloning data repository",
		logfields.URL(f.cfg.Repository), logfields.File(f.cfg.Dir))

	if err := os.RemoveAll(f.cfg.Dir); err != nil {
		return fmt.Errorf("remove existing data directory: %w", err)
	}

	options := &git.CloneOptions{URL: f.cfg.Repository}
	if f.cfg.Branch != "" {
		options.ReferenceName = plumbing.ReferenceName("refs/heads/" + f.cfg.Branch)
		options.SingleBranch = true
	}

	repository, err := git.PlainClone(f.cfg.Dir, false, options)
	if err != nil {
		return fmt.Errorf("clone data repository %s: %w", f.cfg.Repository, err)
	}

	if ref, herr := repository.Head(); herr == nil {
		slog.Info("Data repository cloned",
			logfields.URL(f.cfg.Repository),
			slog.String("commit", ref.Hash().String()[:8]))
	} else {
		slog.Info("Data repository cloned", logfields.URL(f.cfg.Repository))
	}
	return nil
}

func (f *Fetcher) pull() error {
	repository, err := git.PlainOpen(f.cfg.Dir)
	if err != nil {
		return fmt.Errorf("open data repository: %w", err)
	}

	worktree, err := repository.Worktree()
	if err != nil {
		return fmt.Errorf("open worktree: %w", err)
	}

	options := &git.PullOptions{RemoteName: "origin"}
	if f.cfg.Branch != "" {
		options.ReferenceName = plumbing.ReferenceName("refs/heads/" + f.cfg.Branch)
		options.SingleBranch = true
	}

	if err := worktree.Pull(options); err != nil {
		if errors.Is(err, git.NoErrAlreadyUpToDate) {
			slog.Debug("Data repository already up to date", logfields.File(f.cfg.Dir))
			return nil
		}
		return fmt.Errorf("pull data repository: %w", err)
	}

	if ref, herr := repository.Head(); herr == nil {
		slog.Info("Data repository updated",
			logfields.File(f.cfg.Dir),
			slog.String("commit", ref.Hash().String()[:8]))
	}
	return nil
}
