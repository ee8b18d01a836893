package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/railway/dijkstra"
	"github.com/katalvlaran/railway/guide"
	"github.com/katalvlaran/railway/trip"
)

// shortestQuery holds the optional limits of a shortest invocation.
// Zero means no limit.
type shortestQuery struct {
	MaxDistance int64
	CloseOver   int64
}

var sq shortestQuery

var shortestCmd = &cobra.Command{
	Use:   "shortest FROM [TO]",
	Short: "Print the length of the shortest route",
	Long: `Prints the length of the shortest route from FROM to TO. With a single
city, prints the shortest round trip that leaves the city and returns to it.

  --max-distance D   report NO SUCH ROUTE when the shortest route exceeds D
  --close-over D     ignore every route whose own distance is D or more`,
	Example: `  railway shortest A C
  railway shortest B
  railway shortest A C --close-over 5`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return timed(cmd, func() error {
			return runShortest(cmd.OutOrStdout(), sess.guide, sess.styles, flagVerbose, args, sq)
		})
	},
}

func init() {
	f := shortestCmd.Flags()
	f.Int64Var(&sq.MaxDistance, "max-distance", 0, "longest acceptable total distance, 0 for no limit")
	f.Int64Var(&sq.CloseOver, "close-over", 0, "ignore routes of at least this distance, 0 for none")
	rootCmd.AddCommand(shortestCmd)
}

// options translates q into dijkstra options; negative limits are rejected.
func (q shortestQuery) options() ([]dijkstra.Option, error) {
	var opts []dijkstra.Option
	switch {
	case q.MaxDistance < 0:
		return nil, fmt.Errorf("shortest: %w: %d", dijkstra.ErrBadMaxDistance, q.MaxDistance)
	case q.MaxDistance > 0:
		opts = append(opts, dijkstra.WithMaxDistance(q.MaxDistance))
	}
	switch {
	case q.CloseOver < 0:
		return nil, fmt.Errorf("shortest: %w: %d", dijkstra.ErrBadInfThreshold, q.CloseOver)
	case q.CloseOver > 0:
		opts = append(opts, dijkstra.WithInfEdgeThreshold(q.CloseOver))
	}

	return opts, nil
}

func runShortest(w io.Writer, gd *guide.Guide, st styles, verbose bool, names []string, q shortestQuery) error {
	opts, err := q.options()
	if err != nil {
		return err
	}

	var (
		t *trip.Trip
		d int64
	)
	if len(names) == 1 {
		t, d, err = gd.ShortestRoundTrip(names[0], opts...)
	} else {
		t, d, err = gd.Shortest(names[0], names[1], opts...)
	}
	if outcome(err) {
		_, err = fmt.Fprintln(w, st.Miss.Render(describe(err, gd.Graph(), names...)))
		return err
	}
	if err != nil {
		return err
	}

	if verbose {
		fmt.Fprintln(w, st.Dim.Render(t.String()))
	}
	_, err = fmt.Fprintln(w, st.Value.Render(fmt.Sprint(d)))

	return err
}
