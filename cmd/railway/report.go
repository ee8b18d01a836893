package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/railway/guide"
	"github.com/katalvlaran/railway/trip"
)

var reportCmd = &cobra.Command{
	Use:   "report [routes...]",
	Short: "Answer the ten Kiwiland questions",
	Long: `Prints the ten canonical answers for the loaded network: five exact path
distances, two trip counts bounded by stops, two shortest routes and one trip
count bounded by distance. Route tokens given as arguments (e.g. AB5 BC4)
replace the configured network.`,
	Example: `  railway report
  railway report AB5 BC4 CD8 DC8 DE6 AD5 CE2 EB3 AE7`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return timed(cmd, func() error {
			answers, err := buildReport(sess.guide)
			if err != nil {
				return err
			}
			title := fmt.Sprintf("%s (%d cities, %d routes)", sess.name, sess.graph.CityCount(), sess.graph.RouteCount())
			return renderReport(cmd.OutOrStdout(), title, answers, sess.styles, flagVerbose)
		})
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)
}

// question is one line of the report.
type question struct {
	text  string
	names []string // cities named in the question, for NO SUCH CITY
	ask   func(gd *guide.Guide) (int64, []*trip.Trip, error)
}

// answer is the outcome of a question. Missing is set when the network has
// no answer (NO SUCH ROUTE / NO SUCH CITY); Value then holds the message.
type answer struct {
	Question string
	Value    string
	Missing  bool
	Trips    []*trip.Trip
}

func exactPath(names ...string) question {
	return question{
		text:  "distance of route " + strings.Join(names, "-"),
		names: names,
		ask: func(gd *guide.Guide) (int64, []*trip.Trip, error) {
			t, err := gd.ExactPath(names...)
			if err != nil {
				return 0, nil, err
			}
			d, err := t.Weight()
			return d, []*trip.Trip{t}, err
		},
	}
}

func count(text string, names []string, fn func(gd *guide.Guide) ([]*trip.Trip, error)) question {
	return question{
		text:  text,
		names: names,
		ask: func(gd *guide.Guide) (int64, []*trip.Trip, error) {
			trips, err := fn(gd)
			return int64(len(trips)), trips, err
		},
	}
}

func shortest(text string, names []string, fn func(gd *guide.Guide) (*trip.Trip, int64, error)) question {
	return question{
		text:  text,
		names: names,
		ask: func(gd *guide.Guide) (int64, []*trip.Trip, error) {
			t, d, err := fn(gd)
			if err != nil {
				return 0, nil, err
			}
			return d, []*trip.Trip{t}, nil
		},
	}
}

// kiwilandQuestions lists the report in output order.
var kiwilandQuestions = []question{
	exactPath("A", "B", "C"),
	exactPath("A", "D"),
	exactPath("A", "D", "C"),
	exactPath("A", "E", "B", "C", "D"),
	exactPath("A", "E", "D"),
	count("trips from C to C with at most 3 stops", []string{"C"},
		func(gd *guide.Guide) ([]*trip.Trip, error) { return gd.TripsWithMaxStops("C", "C", 3) }),
	count("trips from A to C with exactly 4 stops", []string{"A", "C"},
		func(gd *guide.Guide) ([]*trip.Trip, error) { return gd.TripsWithStops("A", "C", 4, 4) }),
	shortest("shortest route from A to C", []string{"A", "C"},
		func(gd *guide.Guide) (*trip.Trip, int64, error) { return gd.Shortest("A", "C") }),
	shortest("shortest route from B to B", []string{"B"},
		func(gd *guide.Guide) (*trip.Trip, int64, error) { return gd.ShortestRoundTrip("B") }),
	count("trips from C to C with distance less than 30", []string{"C"},
		func(gd *guide.Guide) ([]*trip.Trip, error) { return gd.TripsShorterThan("C", "C", 30) }),
}

// buildReport asks every question. Query outcomes become Missing answers;
// any other error aborts the report.
func buildReport(gd *guide.Guide) ([]answer, error) {
	answers := make([]answer, 0, len(kiwilandQuestions))
	for _, q := range kiwilandQuestions {
		v, trips, err := q.ask(gd)
		switch {
		case err == nil:
			answers = append(answers, answer{Question: q.text, Value: strconv.FormatInt(v, 10), Trips: trips})
		case outcome(err):
			answers = append(answers, answer{Question: q.text, Value: describe(err, gd.Graph(), q.names...), Missing: true})
		default:
			return nil, fmt.Errorf("%s: %w", q.text, err)
		}
	}

	return answers, nil
}

// renderReport writes one "Output #n: value" line per answer. With verbose,
// the trips behind each answer follow, indented.
func renderReport(w io.Writer, title string, answers []answer, st styles, verbose bool) error {
	if _, err := fmt.Fprintln(w, st.Title.Render(title)); err != nil {
		return err
	}
	for i, a := range answers {
		value := st.Value.Render(a.Value)
		if a.Missing {
			value = st.Miss.Render(a.Value)
		}
		label := st.Label.Render(fmt.Sprintf("Output #%d:", i+1))
		if _, err := fmt.Fprintf(w, "%s %s\n", label, value); err != nil {
			return err
		}
		if !verbose {
			continue
		}
		fmt.Fprintln(w, st.Dim.Render("    "+a.Question))
		for _, t := range a.Trips {
			fmt.Fprintln(w, st.Dim.Render("      "+t.String()))
		}
	}

	return nil
}
