package cmd

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/msto63/gregor/pkg/datetime"
)

var (
	parseDateOrder string
	parseTimeOrder string
	parseOutput    string
)

var parseCmd = &cobra.Command{
	Use:   "parse TEXT",
	Short: "Parse a date, time of day or datetime",
	Long: `Parse TEXT and print it normalized.

TEXT of exactly ten characters is a date. Anything longer is a date, one
separator character and a time of day. A time alone is parsed with --time.
A trailing registry zone name overrides --tz.

Field orders are letters: y m d for dates, h i s l u n for hour, minute,
second, millisecond, microsecond and nanosecond.`,
	Example: `  gregor parse 2024-03-05
  gregor parse "05.03.2024 9:30" --order dmy
  gregor parse "2024-03-05 9:30 EST" --tz UTC
  gregor parse --time "30:09" --time-order ih`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

var parseTimeOnly bool

func init() {
	parseCmd.Flags().StringVar(&parseDateOrder, "order", "", "date field order, e.g. ymd, dmy, mdy")
	parseCmd.Flags().StringVar(&parseTimeOrder, "time-order", "", "time field order, e.g. his")
	parseCmd.Flags().BoolVar(&parseTimeOnly, "time", false, "TEXT is a time of day")
	addOutputFlag(parseCmd, &parseOutput)
	rootCmd.AddCommand(parseCmd)
}

type parseResult struct {
	Input    string            `json:"input" yaml:"input"`
	Datetime datetime.Datetime `json:"datetime" yaml:"datetime"`
	UnixMs   int64             `json:"unix_ms" yaml:"unix_ms"`
	Weekday  string            `json:"weekday" yaml:"weekday"`
}

func runParse(cmd *cobra.Command, args []string) error {
	tz, err := timezone()
	if err != nil {
		return err
	}
	dateOrder, err := fieldOrder(parseDateOrder)
	if err != nil {
		return err
	}
	timeOrder, err := fieldOrder(parseTimeOrder)
	if err != nil {
		return err
	}
	seps := cfg.Separators()

	if parseTimeOnly {
		t, err := datetime.ParseTime(args[0], tz, timeOrder...)
		if err != nil {
			return err
		}
		return render(cmd.OutOrStdout(), parseOutput, t, func(w io.Writer) error {
			return writeLine(w, t.Format(seps.Time, seps.Subsecond), t.Timezone().Name())
		})
	}

	var dt datetime.Datetime
	if len(timeOrder) > 0 {
		dt, err = datetime.ParseDatetime(args[0], tz, dateOrder, timeOrder...)
	} else {
		dt, err = parseInstant(args[0], tz, dateOrder)
	}
	if err != nil {
		return err
	}
	logger.Debug("parsed", "input", args[0], "result", dt.String())

	res := parseResult{Input: args[0], Datetime: dt, UnixMs: dt.UnixMilli(), Weekday: dt.Weekday().String()}
	return render(cmd.OutOrStdout(), parseOutput, res, func(w io.Writer) error {
		return writeLine(w, dt.Format(seps), dt.Timezone().Name())
	})
}
