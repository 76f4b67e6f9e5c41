// Package githooks manages the commit-msg hook shim in a repository's hooks
// directory. The shim delegates to the installed commitcheck binary, so hook
// behavior always matches the binary that wrote it.
package githooks

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/storage/filesystem"
)

const (
	// HookName is the git hook managed by this package.
	HookName = "commit-msg"

	// BackupSuffix is appended to a foreign hook moved aside during install.
	BackupSuffix = ".backup"

	// shimMarker identifies hooks written by commitcheck.
	shimMarker = "# installed by commitcheck"
)

// Status describes the commit-msg hook of a repository.
type Status struct {
	// Path is the location of the hook file.
	Path string
	// Installed is true when the hook is a commitcheck shim.
	Installed bool
	// Foreign is true when a hook exists that commitcheck did not write.
	Foreign bool
}

// InstallResult reports what Install did.
type InstallResult struct {
	// Path is the location of the written hook file.
	Path string
	// BackedUp is true when a foreign hook was moved aside.
	BackedUp bool
}

// Install writes the commit-msg hook of the repository at repoPath as a thin
// shim executing execPath. An existing foreign hook is moved to a backup
// first, or overwritten in place when force is set.
func Install(repoPath, execPath string, force bool) (InstallResult, error) {
	hookPath, err := hookFile(repoPath)
	if err != nil {
		return InstallResult{}, err
	}

	result := InstallResult{Path: hookPath}

	_, statErr := os.Stat(hookPath)
	if statErr == nil && !force {
		shim, err := isShim(hookPath)
		if err != nil {
			return InstallResult{}, err
		}

		// Reinstalling over our own shim needs no backup
		if !shim {
			backupErr := os.Rename(hookPath, hookPath+BackupSuffix)
			if backupErr != nil {
				return InstallResult{}, fmt.Errorf("failed to back up existing hook: %w", backupErr)
			}

			result.BackedUp = true
		}
	}

	err = os.MkdirAll(filepath.Dir(hookPath), 0o755)
	if err != nil {
		return InstallResult{}, fmt.Errorf("failed to create hooks directory: %w", err)
	}

	// Hooks must be executable for git to run them
	err = os.WriteFile(hookPath, []byte(shimScript(execPath)), 0o755)
	if err != nil {
		return InstallResult{}, fmt.Errorf("failed to write hook: %w", err)
	}

	// WriteFile keeps the mode of a file that already exists
	err = os.Chmod(hookPath, 0o755)
	if err != nil {
		return InstallResult{}, fmt.Errorf("failed to make hook executable: %w", err)
	}

	return result, nil
}

// Uninstall removes the commit-msg shim of the repository at repoPath and
// restores a backed up hook if one exists. It reports whether a backup was
// restored. A hook not written by commitcheck is left in place.
func Uninstall(repoPath string) (bool, error) {
	hookPath, err := hookFile(repoPath)
	if err != nil {
		return false, err
	}

	_, statErr := os.Stat(hookPath)
	if os.IsNotExist(statErr) {
		return false, fmt.Errorf("no %s hook installed", HookName)
	}

	shim, err := isShim(hookPath)
	if err != nil {
		return false, err
	}

	if !shim {
		return false, fmt.Errorf("%s hook was not installed by commitcheck, leaving it in place", HookName)
	}

	err = os.Remove(hookPath)
	if err != nil {
		return false, fmt.Errorf("failed to remove hook: %w", err)
	}

	backupPath := hookPath + BackupSuffix
	_, backupErr := os.Stat(backupPath)
	if backupErr == nil {
		restoreErr := os.Rename(backupPath, hookPath)
		if restoreErr != nil {
			return false, fmt.Errorf("failed to restore backup hook: %w", restoreErr)
		}

		return true, nil
	}

	return false, nil
}

// Check reports the state of the commit-msg hook of the repository at
// repoPath.
func Check(repoPath string) (Status, error) {
	hookPath, err := hookFile(repoPath)
	if err != nil {
		return Status{}, err
	}

	status := Status{Path: hookPath}

	_, statErr := os.Stat(hookPath)
	if os.IsNotExist(statErr) {
		return status, nil
	}

	shim, err := isShim(hookPath)
	if err != nil {
		return Status{}, err
	}

	status.Installed = shim
	status.Foreign = !shim

	return status, nil
}

// hookFile resolves the hook path through the repository storage, which
// handles worktree layouts where .git is a file.
func hookFile(repoPath string) (string, error) {
	repo, err := git.PlainOpenWithOptions(repoPath, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", fmt.Errorf("failed to open git repository: %w", err)
	}

	storage, ok := repo.Storer.(*filesystem.Storage)
	if !ok {
		return "", errors.New("repository storage is not on disk")
	}

	return filepath.Join(storage.Filesystem().Root(), "hooks", HookName), nil
}

// isShim reports whether the hook at path was written by commitcheck.
func isShim(path string) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("failed to read hook: %w", err)
	}

	return strings.Contains(string(data), shimMarker), nil
}

// shimScript renders the hook shim for execPath.
func shimScript(execPath string) string {
	return fmt.Sprintf("#!/bin/sh\n%s\nexec \"%s\" run %s \"$@\"\n", shimMarker, execPath, HookName)
}
