package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-drift/rowkit/pkg/view"
)

func newLayoutCommand(opts *rootOptions) *cobra.Command {
	var (
		width  float64
		asJSON bool
	)
	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Print a row's laid out view tree",
		Long: `Builds a row from the catalog, lays it out at --width with its fitting
height and prints every view's frame followed by the number of active
constraints.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			row, resolved, err := opts.buildRow()
			if err != nil {
				return err
			}
			defer row.Dispose()
			row.SizeToFit(width)

			out := cmd.OutOrStdout()
			if asJSON {
				data, err := view.Capture(row).JSON()
				if err != nil {
					return err
				}
				_, err = out.Write(data)
				return err
			}
			fmt.Fprintf(out, "# %s: %s\n", resolved.ProjectName, row.DebugName())
			fmt.Fprint(out, view.Describe(row))
			fmt.Fprintf(out, "constraints: %d\n", row.Engine().ActiveCount())
			return nil
		},
	}
	addRowFlag(cmd, opts)
	cmd.Flags().Float64VarP(&width, "width", "w", 375, "row width in points")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print a JSON snapshot instead of the tree")
	return cmd
}
