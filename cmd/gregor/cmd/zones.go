package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/msto63/gregor/pkg/datetime"
)

var zonesOutput string

var zonesCmd = &cobra.Command{
	Use:   "zones",
	Short: "List the known timezone names",
	Long: `List every timezone name gregor accepts and its fixed UTC offset.
OFFSET is UTC's hour minus the zone's hour, so EST is +5. Besides these
names, a bare offset in that convention ("5") or a label such as "UTC+9"
works.`,
	Args: cobra.NoArgs,
	RunE: runZones,
}

func init() {
	addOutputFlag(zonesCmd, &zonesOutput)
	rootCmd.AddCommand(zonesCmd)
}

type zoneInfo struct {
	Name   string `json:"name" yaml:"name"`
	Offset int    `json:"utc_offset" yaml:"utc_offset"`
	Zone   string `json:"zone" yaml:"zone"`
}

func runZones(cmd *cobra.Command, args []string) error {
	var zones []zoneInfo
	for _, nz := range datetime.Zones() {
		zones = append(zones, zoneInfo{Name: nz.Name, Offset: nz.Zone.UTCOffset(), Zone: nz.Zone.Name()})
	}

	return render(cmd.OutOrStdout(), zonesOutput, zones, func(w io.Writer) error {
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "NAME\tOFFSET\tZONE")
		for _, z := range zones {
			fmt.Fprintf(tw, "%s\t%+d\t%s\n", z.Name, z.Offset, z.Zone)
		}
		return tw.Flush()
	})
}
