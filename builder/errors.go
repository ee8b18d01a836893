// SPDX-License-Identifier: MIT
// Package: railway/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Context (method name, offending text) is attached with %w wrapping.
//   • Option constructors may panic on meaningless values; parsing never does.

package builder

import (
	"errors"
	"fmt"
)

// ErrInvalidRoute indicates route text that does not match the route notation,
// an empty city name, or a distance outside [MinDistance, MaxDistance].
// Usage: if errors.Is(err, ErrInvalidRoute) { /* report the bad token */ }.
var ErrInvalidRoute = errors.New("builder: invalid route")

// ErrSelfLoop indicates a route whose departure and arrival cities are the same.
var ErrSelfLoop = errors.New("builder: route starts and ends in the same city")

// ErrDuplicateRoute indicates a second route for the same ordered pair of cities
// while the builder runs in strict mode (WithStrict).
var ErrDuplicateRoute = errors.New("builder: duplicate route")

// ErrNoRoutes indicates a network document without any route.
var ErrNoRoutes = errors.New("builder: network has no routes")

// builderErrorf wraps sentinel with the method context and a formatted detail.
// The result reads "<Method>: <sentinel>: <detail>" and matches errors.Is(err, sentinel).
func builderErrorf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w: %s", method, sentinel, fmt.Sprintf(format, args...))
}
