package cmd

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/msto63/gregor/pkg/datetime"
)

var diffOutput string

var diffCmd = &cobra.Command{
	Use:   "diff FROM TO",
	Short: "Print the time between two datetimes",
	Long: `Print TO - FROM as days and a time of day, e.g. "3d 04:00:00.000000000".
Zones are reconciled first, so "9:00 EST" and "14:00 UTC" are 0 apart.`,
	Example: `  gregor diff "2024-03-01 9:00 EST" "2024-03-02 14:00 UTC"
  gregor diff now 2024-12-24`,
	Args: cobra.ExactArgs(2),
	RunE: runDiff,
}

func init() {
	addOutputFlag(diffCmd, &diffOutput)
	rootCmd.AddCommand(diffCmd)
}

type diffResult struct {
	From         datetime.Datetime `json:"from" yaml:"from"`
	To           datetime.Datetime `json:"to" yaml:"to"`
	Delta        string            `json:"delta" yaml:"delta"`
	Days         int64             `json:"days" yaml:"days"`
	Milliseconds int64             `json:"milliseconds" yaml:"milliseconds"`
}

func runDiff(cmd *cobra.Command, args []string) error {
	tz, err := timezone()
	if err != nil {
		return err
	}
	from, err := parseInstant(args[0], tz, nil)
	if err != nil {
		return err
	}
	to, err := parseInstant(args[1], tz, nil)
	if err != nil {
		return err
	}

	delta := datetime.Between(to, from)
	res := diffResult{
		From:         from,
		To:           to,
		Delta:        delta.String(),
		Days:         delta.Days(),
		Milliseconds: to.UnixMilli() - from.UnixMilli(),
	}
	return render(cmd.OutOrStdout(), diffOutput, res, func(w io.Writer) error {
		return writeLine(w, delta.String())
	})
}
