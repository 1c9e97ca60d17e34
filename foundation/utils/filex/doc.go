// Package filex provides the small set of path and file helpers gregor
// needs for its config and data files.
//
// Package: filex
// Title: File and Path Helpers
// Description: Existence checks, home directory expansion and parent
//              directory creation for configuration and database paths.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-08-20
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive file utilities
// - 2025-08-20 v0.2.0: Reduced to path helpers for config and data files
//
// # Paths
//
// ExpandHome turns a leading "~" into the user's home directory, so config
// files may say
//
//	[timeline]
//	path = "~/.local/share/gregor/timeline.db"
//
// EnsureParentDir creates the directory that will hold a file:
//
//	if err := filex.EnsureParentDir(dbPath, 0755); err != nil {
//	    return err
//	}
//
// UserDataPath and UserConfigPath locate per-user files following the XDG
// conventions, falling back to the current directory when no home directory
// is known.
//
// # Errors
//
// Failures are *error.Error values carrying CodeEnvironmentError with the
// offending path in the details.
package filex
