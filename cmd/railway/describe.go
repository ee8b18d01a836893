package main

import (
	"errors"
	"strings"

	"github.com/katalvlaran/railway/builder"
	"github.com/katalvlaran/railway/core"
)

const (
	msgNoRoute = "NO SUCH ROUTE"
	msgNoCity  = "NO SUCH CITY"
)

// outcome reports whether err is a query outcome (printed as an answer)
// rather than a failure of the command.
func outcome(err error) bool {
	return errors.Is(err, core.ErrNoRouteFound) || errors.Is(err, core.ErrUnknownCity)
}

// describe renders err for the terminal. names are the cities the query
// mentioned; the first one missing from g (if g is known) is named in NO SUCH CITY.
func describe(err error, g *core.Graph, names ...string) string {
	switch {
	case errors.Is(err, core.ErrNoRouteFound):
		return msgNoRoute
	case errors.Is(err, core.ErrUnknownCity):
		if g != nil {
			for _, n := range names {
				if !g.HasCity(n) {
					return msgNoCity + ": " + n
				}
			}
		}
		return msgNoCity
	case errors.Is(err, builder.ErrInvalidRoute),
		errors.Is(err, builder.ErrSelfLoop),
		errors.Is(err, builder.ErrDuplicateRoute):
		return "invalid route: " + err.Error()
	default:
		return strings.TrimSpace(err.Error())
	}
}
