// Package error provides structured error handling for the gregor libraries.
//
// Package: error
// Title: gregor Error Handling
// Description: This package implements a structured error type with error codes,
//              severity levels, contextual details and stack traces. Every validating
//              constructor and parser in gregor reports failures through it, so that
//              callers can distinguish an invalid date from an invalid time, a parse
//              failure or an unknown timezone without matching on message text.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2025-08-21
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2025-08-03 v0.2.0: Calendar error codes, chain-aware code lookup, trimmed metadata
// - 2025-08-21 v0.3.0: Code table, ordered details, %+v output
//
// Usage:
//   import mdwerror "github.com/msto63/gregor/foundation/core/error"
//
//   err := mdwerror.New("day out of range for month").
//     WithCode(mdwerror.CodeInvalidDate).
//     WithOperation("datetime.NewDate").
//     WithDetail("day", 31)
//
//   if mdwerror.HasCode(err, mdwerror.CodeInvalidDate) {
//     // reject input
//   }
//
//   fmt.Printf("%+v\n", err) // message, code, details and stack
//   os.Exit(mdwerror.GetCode(err).ExitCode())
package error
