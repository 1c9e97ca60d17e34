package cmd

import (
	"io"

	"github.com/spf13/cobra"
)

var (
	addSubtract bool
	addOutput   string
)

var addCmd = &cobra.Command{
	Use:   "add DATETIME OFFSET...",
	Short: "Add offsets to a datetime",
	Long: `Add each OFFSET to DATETIME in turn. Overflowing hours carry into the
date; a day offset never touches the time of day.

--sub subtracts instead. Negative offsets need "--" before them.`,
	Example: `  gregor add "2024-02-28 23:00" 2h
  gregor add now 90d --sub
  gregor add 2024-01-31 -- -1d`,
	Args: cobra.MinimumNArgs(2),
	RunE: runAdd,
}

func init() {
	addCmd.Flags().BoolVar(&addSubtract, "sub", false, "subtract the offsets")
	addOutputFlag(addCmd, &addOutput)
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	tz, err := timezone()
	if err != nil {
		return err
	}
	dt, err := parseInstant(args[0], tz, nil)
	if err != nil {
		return err
	}
	offsets, err := parseOffsets(args[1:])
	if err != nil {
		return err
	}

	for _, o := range offsets {
		if addSubtract {
			dt = dt.Sub(o)
		} else {
			dt = dt.Add(o)
		}
	}

	res := parseResult{Input: args[0], Datetime: dt, UnixMs: dt.UnixMilli(), Weekday: dt.Weekday().String()}
	return render(cmd.OutOrStdout(), addOutput, res, func(w io.Writer) error {
		return writeLine(w, dt.Format(cfg.Separators()), dt.Timezone().Name())
	})
}
