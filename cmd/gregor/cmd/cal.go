package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/gregor/internal/timeline"
	"github.com/msto63/gregor/internal/tui/calview"
	"github.com/msto63/gregor/pkg/datetime"
)

var (
	calInteractive bool
	calNoMarks     bool
)

var calCmd = &cobra.Command{
	Use:   "cal [DATE]",
	Short: "Show a month calendar",
	Long: `Show the month containing DATE (today by default) with Monday as the
first weekday. Today is flagged with '*', days with marks with '+'.

--interactive opens a navigable calendar listing each day's marks.`,
	Example: `  gregor cal
  gregor cal 2024-02-01
  gregor cal -i`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCal,
}

func init() {
	calCmd.Flags().BoolVarP(&calInteractive, "interactive", "i", false, "open the interactive calendar")
	calCmd.Flags().BoolVar(&calNoMarks, "no-marks", false, "do not read the marks database")
	rootCmd.AddCommand(calCmd)
}

func runCal(cmd *cobra.Command, args []string) error {
	tz, err := timezone()
	if err != nil {
		return err
	}
	today := datetime.NowIn(tz).Date()
	cursor := today
	if len(args) == 1 {
		if cursor, err = datetime.ParseDate(args[0]); err != nil {
			return err
		}
	}

	var store timeline.Store
	if !calNoMarks {
		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()
		store = s
	}

	if calInteractive {
		return calview.Run(calview.Options{Today: today, Timezone: tz, Store: store})
	}

	marked := make(map[datetime.Date]bool)
	if store != nil {
		start := datetime.Combine(datetime.MustDate(cursor.Year(), cursor.Month(), 1), datetime.Midnight(tz))
		r, err := datetime.NewDatetimeRange(start, start.AddMonths(1).Sub(datetime.Nanoseconds(1)))
		if err != nil {
			return err
		}
		marks, err := store.List(context.Background(), timeline.Filter{Range: &r})
		if err != nil {
			return err
		}
		for _, m := range marks {
			marked[m.At.In(tz).Date()] = true
		}
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), calview.RenderMonth(cursor, today, marked))
	return err
}
