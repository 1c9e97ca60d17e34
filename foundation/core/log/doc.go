// Package log provides structured logging for gregor.
//
// Package: log
// Title: Structured Logging
// Description: A small structured logger with levels, key/value fields,
//              JSON and text output and integration with the foundation error
//              type. The calendar value packages never log; the CLI and the
//              timeline store do.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2025-08-21
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging
// - 2025-08-16 v0.2.0: Dropped async buffering, console and logfmt formats;
//                       text output sorts fields for stable lines
// - 2025-08-21 v0.3.0: Level name tables, single timer finish path
//
// Usage:
//
//	logger := log.NewWithConfig(log.Config{
//		Level:  log.LevelDebug,
//		Format: log.FormatText,
//		Name:   "timeline",
//	})
//	logger.Info("entry stored", log.Fields{"id": id, "at": at})
//
//	timer := logger.StartTimer("timeline.list")
//	defer timer.Stop()
//
// Errors built with foundation/core/error can be passed to LogError, which
// picks the level from the error's severity and copies code, operation and
// details into the entry's fields.
package log
