package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// addOutputFlag registers -o/--output on c
func addOutputFlag(c *cobra.Command, target *string) {
	c.Flags().StringVarP(target, "output", "o", "text", "output format: text, json or yaml")
}

// render writes v as JSON or YAML, or calls text for the text format
func render(w io.Writer, format string, v interface{}, text func(io.Writer) error) error {
	switch format {
	case "", "text":
		return text(w)
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
	return usageError("unknown output format %q", format)
}

func writeLine(w io.Writer, a ...interface{}) error {
	_, err := fmt.Fprintln(w, a...)
	return err
}
