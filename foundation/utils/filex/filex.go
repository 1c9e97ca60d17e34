// File: filex.go
// Title: File and Path Helpers
// Description: Implements existence checks, home expansion and directory
//              creation for the files the gregor CLI reads and writes.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-08-20
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive file utilities
// - 2025-08-20 v0.2.0: Reduced to path helpers, foundation error codes

package filex

import (
	"os"
	"path/filepath"
	"strings"

	mdwerror "github.com/msto63/gregor/foundation/core/error"
)

// userHomeDir is replaced in tests
var userHomeDir = os.UserHomeDir

// ===============================
// File Existence
// ===============================

// Exists checks if a file or directory exists
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// IsFile checks if the path exists and is a regular file
func IsFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// IsDir checks if the path exists and is a directory
func IsDir(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// ===============================
// Path Manipulation
// ===============================

// ExpandHome replaces a leading "~" or "~/" with the home directory.
// "~user" forms are returned unchanged.
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") && !strings.HasPrefix(path, "~"+string(filepath.Separator)) {
		return path, nil
	}
	home, err := userHomeDir()
	if err != nil {
		return "", mdwerror.Wrap(err, "cannot expand ~ without a home directory").
			WithCode(mdwerror.CodeEnvironmentError).
			WithOperation("filex.ExpandHome").
			WithDetail("path", path)
	}
	return filepath.Join(home, path[1:]), nil
}

// UserDataPath returns $XDG_DATA_HOME/elem..., defaulting to
// ~/.local/share/elem...
func UserDataPath(elem ...string) string {
	base := os.Getenv("XDG_DATA_HOME")
	if base == "" {
		base = filepath.Join(homeOrDot(), ".local", "share")
	}
	return filepath.Join(append([]string{base}, elem...)...)
}

// UserConfigPath returns the per-user config directory joined with elem
func UserConfigPath(elem ...string) string {
	base, err := os.UserConfigDir()
	if err != nil {
		base = filepath.Join(homeOrDot(), ".config")
	}
	return filepath.Join(append([]string{base}, elem...)...)
}

func homeOrDot() string {
	home, err := userHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return home
}

// ===============================
// Directory Operations
// ===============================

// EnsureParentDir creates the directory holding path and its parents
func EnsureParentDir(path string, perm os.FileMode) error {
	dir := filepath.Dir(path)
	if dir == "." || IsDir(dir) {
		return nil
	}
	if err := os.MkdirAll(dir, perm); err != nil {
		return mdwerror.Wrap(err, "failed to create directory").
			WithCode(mdwerror.CodeEnvironmentError).
			WithOperation("filex.EnsureParentDir").
			WithDetail("path", dir)
	}
	return nil
}
