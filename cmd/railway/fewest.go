package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/railway/bfs"
	"github.com/katalvlaran/railway/core"
	"github.com/katalvlaran/railway/guide"
)

// fewestQuery holds the optional restrictions of a fewest invocation.
type fewestQuery struct {
	MaxStops int
	Avoid    []string
}

var fq fewestQuery

var fewestCmd = &cobra.Command{
	Use:   "fewest FROM TO",
	Short: "Print the fewest stops needed to travel between two cities",
	Long: `Prints the smallest number of routes needed to travel from FROM to TO,
whatever their distance. --max-stops gives up beyond that many stops and
--avoid never passes through the listed cities.`,
	Example: `  railway fewest A C -v
  railway fewest A C --avoid B --max-stops 3`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return timed(cmd, func() error {
			return runFewest(cmd.OutOrStdout(), sess.guide, sess.styles, flagVerbose, args[0], args[1], fq)
		})
	},
}

func init() {
	f := fewestCmd.Flags()
	f.IntVar(&fq.MaxStops, "max-stops", 0, "give up beyond this many stops, 0 for no limit")
	f.StringSliceVar(&fq.Avoid, "avoid", nil, "cities the trip must not pass through")
	rootCmd.AddCommand(fewestCmd)
}

// options translates q into bfs options. Visits are traced at debug level.
func (q fewestQuery) options() []bfs.Option {
	opts := []bfs.Option{bfs.WithMaxStops(q.MaxStops)}
	if len(q.Avoid) > 0 {
		avoid := make(map[string]bool, len(q.Avoid))
		for _, name := range q.Avoid {
			avoid[name] = true
		}
		opts = append(opts, bfs.WithFilterRoute(func(r core.Route) bool { return !avoid[r.To] }))
	}
	if sess != nil && sess.log != nil {
		log := sess.log
		opts = append(opts, bfs.WithOnVisit(func(city string, stops int) error {
			log.Debug("bfs visit", "city", city, "stops", stops)
			return nil
		}))
	}

	return opts
}

func runFewest(w io.Writer, gd *guide.Guide, st styles, verbose bool, from, to string, q fewestQuery) error {
	t, n, err := gd.FewestStops(from, to, q.options()...)
	if outcome(err) {
		_, err = fmt.Fprintln(w, st.Miss.Render(describe(err, gd.Graph(), from, to)))
		return err
	}
	if err != nil {
		return err
	}

	if verbose {
		d, err := t.Weight()
		if err != nil {
			return err
		}
		fmt.Fprintln(w, st.Dim.Render(fmt.Sprintf("%s (distance %d)", t, d)))
	}
	_, err = fmt.Fprintln(w, st.Value.Render(fmt.Sprint(n)))

	return err
}
