package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/gregor/pkg/datetime"
)

var formatFlags struct {
	date, between, time, subsecond string
	in                             string
	dateOnly                       bool
}

var formatCmd = &cobra.Command{
	Use:   "format DATETIME",
	Short: "Render a datetime with custom separators",
	Long: `Render DATETIME with the given separators. Unset separators come from
the config file, then from the built-in defaults (- space : .).

--in converts the instant to another zone before rendering.`,
	Example: `  gregor format "2024-03-05 9:30" --date . --between T
  gregor format now --in PST --date-only`,
	Args: cobra.ExactArgs(1),
	RunE: runFormat,
}

func init() {
	f := formatCmd.Flags()
	f.StringVar(&formatFlags.date, "date", "", "date separator")
	f.StringVar(&formatFlags.between, "between", "", "separator between date and time")
	f.StringVar(&formatFlags.time, "time", "", "time separator")
	f.StringVar(&formatFlags.subsecond, "subsecond", "", "sub-second separator")
	f.StringVar(&formatFlags.in, "in", "", "convert to this zone first")
	f.BoolVar(&formatFlags.dateOnly, "date-only", false, "print only the date")
	rootCmd.AddCommand(formatCmd)
}

func runFormat(cmd *cobra.Command, args []string) error {
	tz, err := timezone()
	if err != nil {
		return err
	}
	dt, err := parseInstant(args[0], tz, nil)
	if err != nil {
		return err
	}
	if formatFlags.in != "" {
		target, err := datetime.ParseTimezone(formatFlags.in)
		if err != nil {
			return err
		}
		dt = dt.In(target)
	}

	seps := cfg.Separators()
	for _, o := range []struct {
		flag  string
		value string
		dst   *rune
	}{
		{"date", formatFlags.date, &seps.Date},
		{"between", formatFlags.between, &seps.Between},
		{"time", formatFlags.time, &seps.Time},
		{"subsecond", formatFlags.subsecond, &seps.Subsecond},
	} {
		if o.value == "" {
			continue
		}
		r := []rune(o.value)
		if len(r) != 1 {
			return usageError("--%s must be a single character, got %q", o.flag, o.value)
		}
		*o.dst = r[0]
	}

	if formatFlags.dateOnly {
		sep := seps.Date
		if sep == 0 {
			sep = datetime.DefaultSeparators.Date
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), dt.Date().Format(sep))
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), dt.Format(seps))
	return err
}
