package cmd

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/msto63/gregor/pkg/datetime"
)

var nowOutput string

var nowCmd = &cobra.Command{
	Use:   "now [offset...]",
	Short: "Print the current datetime",
	Long: `Print the current datetime in --tz, shifted by the given offsets.

Offsets are an integer followed by a unit: d, h, m, s, ms, us or ns.
Negative offsets need "--" before them: gregor now -- -2h`,
	Example: `  gregor now
  gregor now 1d 2h --tz EST
  gregor now -o json`,
	RunE: runNow,
}

func init() {
	addOutputFlag(nowCmd, &nowOutput)
	rootCmd.AddCommand(nowCmd)
}

type nowResult struct {
	Now      datetime.Datetime `json:"now" yaml:"now"`
	UnixMs   int64             `json:"unix_ms" yaml:"unix_ms"`
	Timezone datetime.Timezone `json:"timezone" yaml:"timezone"`
}

func runNow(cmd *cobra.Command, args []string) error {
	tz, err := timezone()
	if err != nil {
		return err
	}
	offsets, err := parseOffsets(args)
	if err != nil {
		return err
	}

	now := datetime.NowIn(tz, offsets...)
	res := nowResult{Now: now, UnixMs: now.UnixMilli(), Timezone: tz}
	return render(cmd.OutOrStdout(), nowOutput, res, func(w io.Writer) error {
		return writeLine(w, now.Format(cfg.Separators()), tz.Name())
	})
}
