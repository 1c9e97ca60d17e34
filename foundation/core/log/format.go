// File: format.go
// Title: Log Output Formats
// Description: JSON and text formatters for log entries.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-08-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with multiple output formats
// - 2025-08-16 v0.2.0: Kept JSON and text only; text sorts field keys

package log

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	mdwerror "github.com/msto63/gregor/foundation/core/error"
)

// Format selects a Formatter.
type Format int

const (
	FormatJSON Format = iota
	FormatText
)

func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatText:
		return "text"
	default:
		return "unknown"
	}
}

// ParseFormat accepts "json" and "text".
func ParseFormat(format string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json", "":
		return FormatJSON, nil
	case "text":
		return FormatText, nil
	}
	return FormatJSON, mdwerror.Newf("invalid log format: %s", format).
		WithCode(mdwerror.CodeInvalidConfig).
		WithOperation("log.ParseFormat")
}

// Formatter renders an entry as one output line including the newline.
type Formatter interface {
	Format(entry *Entry) ([]byte, error)
}

// JSONFormatter writes one JSON object per line.
type JSONFormatter struct {
	TimestampFormat string
}

// NewJSONFormatter creates a JSON formatter with RFC 3339 timestamps.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{TimestampFormat: time.RFC3339}
}

// Format renders entry as JSON.
func (f *JSONFormatter) Format(entry *Entry) ([]byte, error) {
	data := make(map[string]interface{}, len(entry.Fields)+6)
	for k, v := range entry.Fields {
		data[k] = v
	}
	data["timestamp"] = entry.Timestamp.Format(f.TimestampFormat)
	data["level"] = entry.Level.String()
	data["message"] = entry.Message
	if entry.Logger != "" {
		data["logger"] = entry.Logger
	}
	if entry.Error != nil {
		data["error"] = entry.Error.Error()
		if code := mdwerror.GetCode(entry.Error); code != mdwerror.CodeUnknown {
			data["error_code"] = code.String()
		}
	}
	if entry.Duration > 0 {
		data["duration_ms"] = float64(entry.Duration.Nanoseconds()) / 1e6
	}
	if entry.Caller != nil {
		data["caller"] = fmt.Sprintf("%s:%d", entry.Caller.File, entry.Caller.Line)
	}

	out, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	return append(out, '\n'), nil
}

// TextFormatter writes human-readable lines:
//
//	15:04:05 [INF] {timeline} entry stored [at=2022-01-01 id=42]
type TextFormatter struct {
	TimestampFormat  string
	DisableTimestamp bool
}

// NewTextFormatter creates a text formatter with clock-time stamps.
func NewTextFormatter() *TextFormatter {
	return &TextFormatter{TimestampFormat: "15:04:05"}
}

// Format renders entry as text. Fields are sorted by key.
func (f *TextFormatter) Format(entry *Entry) ([]byte, error) {
	var b strings.Builder
	if !f.DisableTimestamp {
		b.WriteString(entry.Timestamp.Format(f.TimestampFormat))
		b.WriteByte(' ')
	}
	fmt.Fprintf(&b, "[%s]", entry.Level.ShortString())
	if entry.Logger != "" {
		fmt.Fprintf(&b, " {%s}", entry.Logger)
	}
	b.WriteByte(' ')
	b.WriteString(entry.Message)

	if len(entry.Fields) > 0 {
		keys := make([]string, 0, len(entry.Fields))
		for k := range entry.Fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		b.WriteString(" [")
		for i, k := range keys {
			if i > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%s=%v", k, entry.Fields[k])
		}
		b.WriteByte(']')
	}
	if entry.Error != nil {
		fmt.Fprintf(&b, " error=%q", entry.Error.Error())
	}
	if entry.Duration > 0 {
		fmt.Fprintf(&b, " duration=%s", entry.Duration)
	}
	b.WriteByte('\n')
	return []byte(b.String()), nil
}

// GetFormatter returns the default formatter for format.
func GetFormatter(format Format) Formatter {
	if format == FormatText {
		return NewTextFormatter()
	}
	return NewJSONFormatter()
}
