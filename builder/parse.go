// SPDX-License-Identifier: MIT
// Package: railway/builder
//
// parse.go - route notation.
//
// Two textual forms are accepted:
//   • short: "AB5"           single-letter cities, then the distance.
//   • long:  "Alpha-Beta:12" arbitrary names without '-', ':', ',' or spaces.
//
// Lists of routes may be separated by commas and/or whitespace.

package builder

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/katalvlaran/railway/core"
)

var (
	shortRoute = regexp.MustCompile(`^([A-Za-z])([A-Za-z])(\d+)$`)
	longRoute  = regexp.MustCompile(`^([^\s,:\-]+)-([^\s,:\-]+):(\d+)$`)
)

// ParseRoute converts one route token into a core.Route.
//
// Errors:
//   - ErrInvalidRoute: the token matches neither form, or the distance lies
//     outside [MinDistance, MaxDistance].
//   - ErrSelfLoop: departure and arrival are the same city.
func ParseRoute(text string) (core.Route, error) {
	token := strings.TrimSpace(text)
	m := shortRoute.FindStringSubmatch(token)
	if m == nil {
		m = longRoute.FindStringSubmatch(token)
	}
	if m == nil {
		return core.Route{}, builderErrorf(MethodParseRoute, ErrInvalidRoute, "%q", text)
	}

	d, err := strconv.ParseInt(m[3], 10, 64)
	if err != nil {
		return core.Route{}, builderErrorf(MethodParseRoute, ErrInvalidRoute, "%q: distance out of range", text)
	}
	r := core.Route{From: m[1], To: m[2], Distance: d}
	if err = validateRoute(MethodParseRoute, r); err != nil {
		return core.Route{}, err
	}

	return r, nil
}

// ParseRoutes splits list on commas and whitespace and parses every token.
// An empty list yields no routes and no error. The first bad token aborts.
func ParseRoutes(list string) ([]core.Route, error) {
	tokens := strings.FieldsFunc(list, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	routes := make([]core.Route, 0, len(tokens))
	for _, tok := range tokens {
		r, err := ParseRoute(tok)
		if err != nil {
			return nil, err
		}
		routes = append(routes, r)
	}

	return routes, nil
}

// FormatRoute renders r in the short form when both names are single letters,
// and in the long form otherwise. ParseRoute(FormatRoute(r)) == r for valid routes.
func FormatRoute(r core.Route) string {
	d := strconv.FormatInt(r.Distance, 10)
	if isLetter(r.From) && isLetter(r.To) {
		return r.From + r.To + d
	}

	return r.From + "-" + r.To + ":" + d
}

func isLetter(s string) bool {
	return len(s) == 1 && ((s[0] >= 'A' && s[0] <= 'Z') || (s[0] >= 'a' && s[0] <= 'z'))
}

// validateRoute enforces non-empty names, the [MinDistance, MaxDistance] range
// and the no-self-loop rule.
func validateRoute(method string, r core.Route) error {
	if r.From == "" || r.To == "" {
		return builderErrorf(method, ErrInvalidRoute, "empty city name in %q -> %q", r.From, r.To)
	}
	if r.Distance < MinDistance {
		return builderErrorf(method, ErrInvalidRoute, "%s -> %s: distance must be ≥ %d, got %d",
			r.From, r.To, MinDistance, r.Distance)
	}
	if r.Distance > MaxDistance {
		return builderErrorf(method, ErrInvalidRoute, "%s -> %s: distance must be ≤ %d, got %d",
			r.From, r.To, MaxDistance, r.Distance)
	}
	if r.From == r.To {
		return builderErrorf(method, ErrSelfLoop, "%s", r.From)
	}

	return nil
}
