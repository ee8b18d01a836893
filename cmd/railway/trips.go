package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/railway/dfs"
	"github.com/katalvlaran/railway/guide"
	"github.com/katalvlaran/railway/trip"
)

// tripsQuery describes one trips invocation. Exactly one bound is set.
type tripsQuery struct {
	From, To    string
	MaxStops    int
	Stops       int
	MinStops    int
	Within      int64
	ShorterThan int64
}

var tq tripsQuery

var errNoBound = errors.New("trips: set one of --max-stops, --stops, --within or --shorter-than")

var tripsCmd = &cobra.Command{
	Use:   "trips --from CITY --to CITY (--max-stops N | --stops N | --within D | --shorter-than D)",
	Short: "Count the trips between two cities",
	Long: `Counts every trip from one city to another within a bound. Trips may pass
through any city, the destination included, more than once.

  --max-stops N      at most N stops (routes travelled)
  --stops N          exactly N stops; combine with --min-stops M for [M, N]
  --within D         total distance at most D
  --shorter-than D   total distance strictly less than D`,
	Example: `  railway trips --from C --to C --max-stops 3
  railway trips --from A --to C --stops 4
  railway trips --from C --to C --shorter-than 30 -v`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return timed(cmd, func() error {
			return runTrips(cmd.OutOrStdout(), sess.guide, sess.styles, flagVerbose, tq, boundsSet(cmd))
		})
	},
}

func init() {
	f := tripsCmd.Flags()
	f.StringVar(&tq.From, "from", "", "departure city")
	f.StringVar(&tq.To, "to", "", "arrival city")
	f.IntVar(&tq.MaxStops, "max-stops", 0, "at most this many stops")
	f.IntVar(&tq.Stops, "stops", 0, "exactly this many stops")
	f.IntVar(&tq.MinStops, "min-stops", -1, "lower bound on stops, used with --stops")
	f.Int64Var(&tq.Within, "within", 0, "total distance at most this value")
	f.Int64Var(&tq.ShorterThan, "shorter-than", 0, "total distance strictly less than this value")
	_ = tripsCmd.MarkFlagRequired("from")
	_ = tripsCmd.MarkFlagRequired("to")
	tripsCmd.MarkFlagsMutuallyExclusive("max-stops", "stops", "within", "shorter-than")

	rootCmd.AddCommand(tripsCmd)
}

// boundsSet returns the name of the bound flag the user set, or "".
func boundsSet(cmd *cobra.Command) string {
	for _, name := range []string{"max-stops", "stops", "within", "shorter-than"} {
		if cmd.Flags().Changed(name) {
			return name
		}
	}

	return ""
}

// runTrips prints the number of trips. With verbose, each trip is printed
// as soon as the search accepts it.
func runTrips(w io.Writer, gd *guide.Guide, st styles, verbose bool, q tripsQuery, bound string) error {
	var opts []dfs.Option
	if verbose {
		opts = append(opts, dfs.WithOnTrip(func(t *trip.Trip) error {
			d, err := t.Weight()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(w, "%s %s\n", t, st.Dim.Render(fmt.Sprintf("(%d stops, distance %d)", t.Hops(), d)))
			return err
		}))
	}

	var (
		trips []*trip.Trip
		err   error
	)
	switch bound {
	case "max-stops":
		trips, err = gd.TripsWithMaxStops(q.From, q.To, q.MaxStops, opts...)
	case "stops":
		lo := q.Stops
		if q.MinStops >= 0 {
			lo = q.MinStops
		}
		trips, err = gd.TripsWithStops(q.From, q.To, lo, q.Stops, opts...)
	case "within":
		trips, err = gd.TripsWithinDistance(q.From, q.To, q.Within, opts...)
	case "shorter-than":
		trips, err = gd.TripsShorterThan(q.From, q.To, q.ShorterThan, opts...)
	default:
		return errNoBound
	}
	if outcome(err) {
		_, err = fmt.Fprintln(w, st.Miss.Render(describe(err, gd.Graph(), q.From, q.To)))
		return err
	}
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, st.Value.Render(fmt.Sprint(len(trips))))

	return err
}
