package cli

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	git "github.com/go-git/go-git/v5"
	"github.com/spf13/cobra"
)

// ErrDrift is returned when a generated file no longer matches fresh output.
var ErrDrift = errors.New("generated file is out of date")

// NewCheckCmd creates the check command.
func NewCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <path>",
		Short: "Verify a generated errnos.inc matches fresh table output",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			em, err := newEmitter()
			if err != nil {
				return err
			}
			entries, err := loadEntries(cmd.Context())
			if err != nil {
				return err
			}

			var want bytes.Buffer
			if err := em.WriteTable(&want, entries); err != nil {
				return err
			}

			path, err := resolvePath(args[0])
			if err != nil {
				return err
			}
			got, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("read generated file: %w", err)
			}

			if !bytes.Equal(got, want.Bytes()) {
				return fmt.Errorf("%w: %s", ErrDrift, path)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s is up to date\n", path)
			return nil
		},
	}
}

// resolvePath anchors relative paths for builds that run the tool from a
// sandbox: BUILD_WORKING_DIRECTORY wins when set, then the enclosing git
// repository root, then the current directory.
func resolvePath(path string) (string, error) {
	if filepath.IsAbs(path) {
		return path, nil
	}
	if wd := os.Getenv("BUILD_WORKING_DIRECTORY"); wd != "" {
		return filepath.Join(wd, path), nil
	}

	root, err := repoRoot()
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return path, nil
		}
		return "", err
	}
	return filepath.Join(root, path), nil
}

// repoRoot returns the root of the repository containing the working
// directory.
func repoRoot() (string, error) {
	repo, err := git.PlainOpenWithOptions(".", &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", err
	}
	wt, err := repo.Worktree()
	if err != nil {
		return "", err
	}
	return wt.Filesystem.Root(), nil
}
