package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/railway/guide"
)

var distanceCmd = &cobra.Command{
	Use:   "distance CITY CITY [CITY...]",
	Short: "Print the distance of an exact path",
	Long: `Follows the listed cities along direct routes only and prints the total
distance, or NO SUCH ROUTE when two consecutive cities are not directly joined.`,
	Example: "  railway distance A B C",
	Args:    cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return timed(cmd, func() error {
			return runDistance(cmd.OutOrStdout(), sess.guide, sess.styles, flagVerbose, args)
		})
	},
}

func init() {
	rootCmd.AddCommand(distanceCmd)
}

func runDistance(w io.Writer, gd *guide.Guide, st styles, verbose bool, names []string) error {
	t, err := gd.ExactPath(names...)
	if err == nil {
		var d int64
		if d, err = t.Weight(); err == nil {
			if verbose {
				fmt.Fprintln(w, st.Dim.Render(t.String()))
			}
			_, err = fmt.Fprintln(w, st.Value.Render(fmt.Sprint(d)))
			return err
		}
	}
	if outcome(err) {
		_, err = fmt.Fprintln(w, st.Miss.Render(describe(err, gd.Graph(), names...)))
		return err
	}

	return err
}
