package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/msto63/gregor/internal/timeline"
	"github.com/msto63/gregor/pkg/datetime"
)

var markCmd = &cobra.Command{
	Use:   "mark",
	Short: "Record and list labelled instants",
	Long: `Marks are labelled instants kept in a SQLite database
(timeline.path in the config, ~/.local/share/gregor/timeline.db by default).
A mark keeps the zone it was recorded in.`,
}

var markAddCmd = &cobra.Command{
	Use:   "add LABEL [DATETIME]",
	Short: "Record a mark (now by default)",
	Example: `  gregor mark add standup
  gregor mark add release "2024-03-05 17:00 EST"`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runMarkAdd,
}

var markListFlags struct {
	from, to, prefix, output string
	limit                    int
}

var markListCmd = &cobra.Command{
	Use:   "list",
	Short: "List marks, oldest first",
	Example: `  gregor mark list
  gregor mark list --from 2024-03-01 --to 2024-03-31 --prefix deploy
  gregor mark list -o yaml`,
	Args: cobra.NoArgs,
	RunE: runMarkList,
}

var markRmCmd = &cobra.Command{
	Use:     "rm ID",
	Aliases: []string{"delete"},
	Short:   "Delete a mark",
	Args:    cobra.ExactArgs(1),
	RunE:    runMarkRm,
}

func init() {
	f := markListCmd.Flags()
	f.StringVar(&markListFlags.from, "from", "", "only marks at or after this datetime")
	f.StringVar(&markListFlags.to, "to", "", "only marks at or before this datetime")
	f.StringVar(&markListFlags.prefix, "prefix", "", "only labels starting with this")
	f.IntVar(&markListFlags.limit, "limit", 0, "at most this many marks")
	addOutputFlag(markListCmd, &markListFlags.output)

	markCmd.AddCommand(markAddCmd, markListCmd, markRmCmd)
	rootCmd.AddCommand(markCmd)
}

func runMarkAdd(cmd *cobra.Command, args []string) error {
	tz, err := timezone()
	if err != nil {
		return err
	}
	at := datetime.NowIn(tz)
	if len(args) == 2 {
		if at, err = parseInstant(args[1], tz, nil); err != nil {
			return err
		}
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	mark, err := store.Add(cmd.Context(), args[0], at)
	if err != nil {
		return err
	}
	logger.Info("mark added", "id", mark.ID, "label", mark.Label)
	_, err = fmt.Fprintln(cmd.OutOrStdout(), mark.ID)
	return err
}

func runMarkList(cmd *cobra.Command, args []string) error {
	tz, err := timezone()
	if err != nil {
		return err
	}
	filter := timeline.Filter{LabelPrefix: markListFlags.prefix, Limit: markListFlags.limit}

	if markListFlags.from != "" || markListFlags.to != "" {
		start := datetime.Datetime{}
		end := datetime.MustDatetime(9999, 12, 31, 23, 59, 59, 999, 999, 999, datetime.UTC)
		if markListFlags.from != "" {
			if start, err = parseInstant(markListFlags.from, tz, nil); err != nil {
				return err
			}
		}
		if markListFlags.to != "" {
			if end, err = parseInstant(markListFlags.to, tz, nil); err != nil {
				return err
			}
			// a bare date means the whole day
			if len(markListFlags.to) == 10 {
				end = end.AddDays(1).Sub(datetime.Nanoseconds(1))
			}
		}
		r, err := datetime.NewDatetimeRange(start, end)
		if err != nil {
			return err
		}
		filter.Range = &r
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	marks, err := store.List(cmd.Context(), filter)
	if err != nil {
		return err
	}
	if marks == nil {
		marks = []*timeline.Mark{}
	}

	seps := cfg.Separators()
	return render(cmd.OutOrStdout(), markListFlags.output, marks, func(w io.Writer) error {
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tAT\tZONE\tLABEL")
		for _, m := range marks {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", m.ID, m.At.Format(seps), m.At.Timezone().Name(), m.Label)
		}
		return tw.Flush()
	})
}

func runMarkRm(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Delete(cmd.Context(), args[0]); err != nil {
		return err
	}
	logger.Info("mark deleted", "id", args[0])
	return nil
}
