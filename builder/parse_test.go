package builder_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/railway/builder"
	"github.com/katalvlaran/railway/core"
)

func TestParseRoute(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in      string
		want    core.Route
		wantErr error
	}{
		{in: "AB5", want: core.Route{From: "A", To: "B", Distance: 5}},
		{in: " ae17 ", want: core.Route{From: "a", To: "e", Distance: 17}},
		{in: "Alpha-Beta:12", want: core.Route{From: "Alpha", To: "Beta", Distance: 12}},
		{in: "Q1-Q2:3", want: core.Route{From: "Q1", To: "Q2", Distance: 3}},
		{in: "AA3", wantErr: builder.ErrSelfLoop},
		{in: "Oslo-Oslo:3", wantErr: builder.ErrSelfLoop},
		{in: "AB0", wantErr: builder.ErrInvalidRoute},
		{in: "AB", wantErr: builder.ErrInvalidRoute},
		{in: "A5", wantErr: builder.ErrInvalidRoute},
		{in: "ABC5", wantErr: builder.ErrInvalidRoute},
		{in: "AB-5", wantErr: builder.ErrInvalidRoute},
		{in: "AB99999999999999999999", wantErr: builder.ErrInvalidRoute},
		{in: "AB9223372036854775807", wantErr: builder.ErrInvalidRoute},
		{in: "AB" + strconv.FormatInt(builder.MaxDistance+1, 10), wantErr: builder.ErrInvalidRoute},
		{in: "AB" + strconv.FormatInt(builder.MaxDistance, 10), want: core.Route{From: "A", To: "B", Distance: builder.MaxDistance}},
		{in: "", wantErr: builder.ErrInvalidRoute},
	}
	for _, tc := range cases {
		got, err := builder.ParseRoute(tc.in)
		if tc.wantErr != nil {
			assert.ErrorIs(t, err, tc.wantErr, tc.in)
			continue
		}
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
}

func TestParseRoute_ErrorContext(t *testing.T) {
	t.Parallel()

	_, err := builder.ParseRoute("XY")
	require.Error(t, err)
	assert.Contains(t, err.Error(), builder.MethodParseRoute)
	assert.Contains(t, err.Error(), `"XY"`)
}

func TestParseRoutes(t *testing.T) {
	t.Parallel()

	routes, err := builder.ParseRoutes("AB5, BC4\n CD8,,DE6")
	require.NoError(t, err)
	assert.Len(t, routes, 4)
	assert.Equal(t, core.Route{From: "C", To: "D", Distance: 8}, routes[2])

	routes, err = builder.ParseRoutes("  ")
	require.NoError(t, err)
	assert.Empty(t, routes)

	_, err = builder.ParseRoutes("AB5, B?4")
	assert.ErrorIs(t, err, builder.ErrInvalidRoute)
}

func TestFormatRoute(t *testing.T) {
	t.Parallel()

	for _, r := range []core.Route{
		{From: "A", To: "B", Distance: 5},
		{From: "Alpha", To: "B", Distance: 40},
	} {
		back, err := builder.ParseRoute(builder.FormatRoute(r))
		require.NoError(t, err)
		assert.Equal(t, r, back)
	}
	assert.Equal(t, "AB5", builder.FormatRoute(core.Route{From: "A", To: "B", Distance: 5}))
	assert.Equal(t, "Alpha-B:40", builder.FormatRoute(core.Route{From: "Alpha", To: "B", Distance: 40}))
}
