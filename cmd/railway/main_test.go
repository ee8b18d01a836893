package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/railway/bfs"
	"github.com/katalvlaran/railway/builder"
	"github.com/katalvlaran/railway/core"
	"github.com/katalvlaran/railway/dfs"
	"github.com/katalvlaran/railway/dijkstra"
	"github.com/katalvlaran/railway/guide"
	"github.com/katalvlaran/railway/internal/config"
)

func kiwilandGuide() *guide.Guide { return guide.New(builder.Kiwiland()) }

func TestReport_Kiwiland(t *testing.T) {
	answers, err := buildReport(kiwilandGuide())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, renderReport(&buf, "Kiwiland (5 cities, 9 routes)", answers, plainStyles(), false))

	want := strings.Join([]string{
		"Kiwiland (5 cities, 9 routes)",
		"Output #1: 9",
		"Output #2: 5",
		"Output #3: 13",
		"Output #4: 22",
		"Output #5: NO SUCH ROUTE",
		"Output #6: 2",
		"Output #7: 3",
		"Output #8: 9",
		"Output #9: 9",
		"Output #10: 7",
	}, "\n") + "\n"
	assert.Equal(t, want, buf.String())
}

func TestReport_Verbose(t *testing.T) {
	answers, err := buildReport(kiwilandGuide())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, renderReport(&buf, "K", answers, plainStyles(), true))
	out := buf.String()
	assert.Contains(t, out, "    trips from C to C with at most 3 stops\n")
	assert.Contains(t, out, "      C -> E -> B -> C\n")
	assert.Contains(t, out, "      B -> C -> E -> B\n")
}

func TestReport_OtherNetwork(t *testing.T) {
	g, err := builder.FromStrings([]string{"XY5"})
	require.NoError(t, err)

	answers, err := buildReport(guide.New(g))
	require.NoError(t, err)
	require.Len(t, answers, 10)
	for _, a := range answers {
		assert.True(t, a.Missing)
	}
	assert.Equal(t, "NO SUCH CITY: A", answers[0].Value)
	assert.Equal(t, "NO SUCH CITY: C", answers[5].Value)
	assert.Equal(t, "NO SUCH CITY: B", answers[8].Value)
}

func TestReport_DeadlineAborts(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := buildReport(guide.New(builder.Kiwiland(), guide.WithContext(ctx)))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunDistance(t *testing.T) {
	gd := kiwilandGuide()
	cases := []struct {
		names []string
		want  string
	}{
		{[]string{"A", "B", "C"}, "9\n"},
		{[]string{"A", "E", "D"}, "NO SUCH ROUTE\n"},
		{[]string{"A", "Q"}, "NO SUCH CITY: Q\n"},
	}
	for _, tc := range cases {
		var buf bytes.Buffer
		require.NoError(t, runDistance(&buf, gd, plainStyles(), false, tc.names))
		assert.Equal(t, tc.want, buf.String(), tc.names)
	}

	var buf bytes.Buffer
	require.NoError(t, runDistance(&buf, gd, plainStyles(), true, []string{"A", "D"}))
	assert.Equal(t, "A -> D\n5\n", buf.String())
}

func TestRunTrips(t *testing.T) {
	gd := kiwilandGuide()
	cases := []struct {
		name  string
		q     tripsQuery
		bound string
		want  string
	}{
		{"max stops", tripsQuery{From: "C", To: "C", MaxStops: 3}, "max-stops", "2\n"},
		{"exact stops", tripsQuery{From: "A", To: "C", Stops: 4, MinStops: -1}, "stops", "3\n"},
		{"stop window", tripsQuery{From: "A", To: "C", Stops: 4, MinStops: 2}, "stops", "6\n"},
		{"shorter than", tripsQuery{From: "C", To: "C", ShorterThan: 30}, "shorter-than", "7\n"},
		{"within", tripsQuery{From: "C", To: "C", Within: 9}, "within", "1\n"},
		{"unknown city", tripsQuery{From: "C", To: "Z", MaxStops: 3}, "max-stops", "NO SUCH CITY: Z\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, runTrips(&buf, gd, plainStyles(), false, tc.q, tc.bound))
			assert.Equal(t, tc.want, buf.String())
		})
	}
}

func TestRunTrips_Errors(t *testing.T) {
	gd := kiwilandGuide()
	var buf bytes.Buffer
	assert.ErrorIs(t, runTrips(&buf, gd, plainStyles(), false, tripsQuery{From: "A", To: "C"}, ""), errNoBound)
	err := runTrips(&buf, gd, plainStyles(), false, tripsQuery{From: "A", To: "C", Stops: 2, MinStops: 3}, "stops")
	assert.ErrorIs(t, err, dfs.ErrBadHopWindow)
	assert.Empty(t, buf.String())
}

func TestRunTrips_Verbose(t *testing.T) {
	var buf bytes.Buffer
	q := tripsQuery{From: "C", To: "C", MaxStops: 3}
	require.NoError(t, runTrips(&buf, kiwilandGuide(), plainStyles(), true, q, "max-stops"))
	assert.Equal(t, "C -> D -> C (2 stops, distance 16)\nC -> E -> B -> C (3 stops, distance 9)\n2\n", buf.String())
}

func TestRunShortest(t *testing.T) {
	gd := kiwilandGuide()
	cases := []struct {
		names []string
		want  string
	}{
		{[]string{"A", "C"}, "9\n"},
		{[]string{"B"}, "9\n"},
		{[]string{"C", "A"}, "NO SUCH ROUTE\n"},
		{[]string{"A"}, "NO SUCH ROUTE\n"},
		{[]string{"X", "A"}, "NO SUCH CITY: X\n"},
	}
	for _, tc := range cases {
		var buf bytes.Buffer
		require.NoError(t, runShortest(&buf, gd, plainStyles(), false, tc.names, shortestQuery{}))
		assert.Equal(t, tc.want, buf.String(), tc.names)
	}
}

func TestRunCities(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, runCities(&buf, builder.Kiwiland(), plainStyles()))
	assert.Equal(t, "A AB5 AD5 AE7\nB BC4\nC CD8 CE2\nD DC8 DE6\nE EB3\n", buf.String())
}

func TestLoadNetwork(t *testing.T) {
	g, name, err := loadNetwork(config.NetworkConfig{})
	require.NoError(t, err)
	assert.Equal(t, builder.KiwilandName, name)
	assert.Equal(t, 9, g.RouteCount())

	g, name, err = loadNetwork(config.NetworkConfig{Routes: "AB5 BC4"})
	require.NoError(t, err)
	assert.Equal(t, "custom", name)
	assert.Equal(t, []string{"A", "B", "C"}, g.Names())

	_, _, err = loadNetwork(config.NetworkConfig{Routes: " , "})
	assert.ErrorIs(t, err, builder.ErrNoRoutes)

	_, _, err = loadNetwork(config.NetworkConfig{Routes: "AB5,AB6", Strict: true})
	assert.ErrorIs(t, err, builder.ErrDuplicateRoute)

	path := filepath.Join(t.TempDir(), "net.yaml")
	require.NoError(t, os.WriteFile(path, []byte("routes:\n  - North-South:4\n"), 0o600))
	g, name, err = loadNetwork(config.NetworkConfig{File: path, Routes: "AB5"})
	require.NoError(t, err)
	assert.Equal(t, path, name, "unnamed documents are named after their file")
	assert.True(t, g.HasRoute("North", "South"))
}

func TestDescribe(t *testing.T) {
	g := builder.Kiwiland()
	assert.Equal(t, msgNoRoute, describe(core.ErrNoRouteFound, g))
	assert.Equal(t, "NO SUCH CITY: Q", describe(core.ErrUnknownCity, g, "A", "Q"))
	assert.Equal(t, msgNoCity, describe(core.ErrUnknownCity, nil, "Q"))

	_, err := builder.ParseRoute("A?")
	assert.True(t, strings.HasPrefix(describe(err, nil), "invalid route: "))
	assert.Equal(t, "boom", describe(errors.New("boom\n"), nil))
}

func TestRunFewest(t *testing.T) {
	gd := kiwilandGuide()
	var buf bytes.Buffer
	require.NoError(t, runFewest(&buf, gd, plainStyles(), true, "A", "C", fewestQuery{}))
	assert.Equal(t, "A -> B -> C (distance 9)\n2\n", buf.String())

	buf.Reset()
	require.NoError(t, runFewest(&buf, gd, plainStyles(), false, "C", "A", fewestQuery{}))
	assert.Equal(t, "NO SUCH ROUTE\n", buf.String())
}

func TestRunShortest_Limits(t *testing.T) {
	gd := kiwilandGuide()
	cases := []struct {
		name  string
		names []string
		q     shortestQuery
		want  string
	}{
		{"within max distance", []string{"A", "C"}, shortestQuery{MaxDistance: 9}, "9\n"},
		{"beyond max distance", []string{"A", "C"}, shortestQuery{MaxDistance: 8}, "NO SUCH ROUTE\n"},
		{"direct route closed", []string{"A", "E"}, shortestQuery{CloseOver: 7}, "11\n"},
		{"round trip beyond max distance", []string{"B"}, shortestQuery{MaxDistance: 8}, "NO SUCH ROUTE\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, runShortest(&buf, gd, plainStyles(), false, tc.names, tc.q))
			assert.Equal(t, tc.want, buf.String())
		})
	}

	var buf bytes.Buffer
	err := runShortest(&buf, gd, plainStyles(), false, []string{"A", "C"}, shortestQuery{MaxDistance: -1})
	assert.ErrorIs(t, err, dijkstra.ErrBadMaxDistance)
	err = runShortest(&buf, gd, plainStyles(), false, []string{"A", "C"}, shortestQuery{CloseOver: -1})
	assert.ErrorIs(t, err, dijkstra.ErrBadInfThreshold)
	assert.Empty(t, buf.String())
}

func TestRunFewest_Restrictions(t *testing.T) {
	gd := kiwilandGuide()

	var buf bytes.Buffer
	require.NoError(t, runFewest(&buf, gd, plainStyles(), true, "A", "C", fewestQuery{Avoid: []string{"B"}}))
	assert.Equal(t, "A -> D -> C (distance 13)\n2\n", buf.String())

	buf.Reset()
	require.NoError(t, runFewest(&buf, gd, plainStyles(), false, "A", "C", fewestQuery{MaxStops: 1}))
	assert.Equal(t, "NO SUCH ROUTE\n", buf.String())

	buf.Reset()
	err := runFewest(&buf, gd, plainStyles(), false, "A", "C", fewestQuery{MaxStops: -1})
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

func TestTimed_ReleasesDeadlineOnError(t *testing.T) {
	prev := sess
	t.Cleanup(func() { sess = prev })

	ctx, cancel := context.WithTimeout(context.Background(), time.Hour)
	sess = &session{log: slog.New(slog.NewTextHandler(io.Discard, nil)), cancel: cancel}

	boom := errors.New("boom")
	err := timed(&cobra.Command{Use: "trips"}, func() error { return boom })
	assert.ErrorIs(t, err, boom)
	assert.ErrorIs(t, ctx.Err(), context.Canceled)
}
