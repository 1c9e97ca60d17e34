package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/gregor/foundation/core/error"
	"github.com/msto63/gregor/pkg/datetime"
)

var (
	fromMsSource string
	toMsClock    string
)

var fromMsCmd = &cobra.Command{
	Use:   "from-ms TIMESTAMP",
	Short: "Convert a millisecond timestamp to a datetime",
	Long: `Read TIMESTAMP as milliseconds since 1970-01-01 00:00 on the --from
zone's clock (UTC, i.e. a Unix timestamp, by default) and print that
instant in --tz.`,
	Example: `  gregor from-ms 1709631000000
  gregor from-ms 1709631000000 --tz EST
  gregor from-ms 1709613000000 --from EST --tz UTC`,
	Args: cobra.ExactArgs(1),
	RunE: runFromMs,
}

var toMsCmd = &cobra.Command{
	Use:   "to-ms DATETIME",
	Short: "Convert a datetime to a millisecond timestamp",
	Long: `Print DATETIME as milliseconds since 1970-01-01 00:00 on the --clock
zone's clock. With the default UTC clock this is the Unix timestamp.`,
	Example: `  gregor to-ms "2024-03-05 9:30 UTC"
  gregor to-ms now --clock EST`,
	Args: cobra.ExactArgs(1),
	RunE: runToMs,
}

func init() {
	fromMsCmd.Flags().StringVar(&fromMsSource, "from", "UTC", "zone whose clock the timestamp counts")
	toMsCmd.Flags().StringVar(&toMsClock, "clock", "UTC", "zone whose clock to count on")
	rootCmd.AddCommand(fromMsCmd, toMsCmd)
}

func runFromMs(cmd *cobra.Command, args []string) error {
	ts, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return mdwerror.Wrap(err, "timestamp is not an integer").
			WithCode(mdwerror.CodeParseError).
			WithOperation("cli.from-ms").
			WithDetail("input", args[0])
	}
	to, err := timezone()
	if err != nil {
		return err
	}
	from, err := datetime.ParseTimezone(fromMsSource)
	if err != nil {
		return err
	}

	dt := datetime.FromMs(ts, to, from)
	_, err = fmt.Fprintln(cmd.OutOrStdout(), dt.Format(cfg.Separators()), to.Name())
	return err
}

func runToMs(cmd *cobra.Command, args []string) error {
	tz, err := timezone()
	if err != nil {
		return err
	}
	dt, err := parseInstant(args[0], tz, nil)
	if err != nil {
		return err
	}
	clock, err := datetime.ParseTimezone(toMsClock)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), dt.ToMs(clock))
	return err
}
