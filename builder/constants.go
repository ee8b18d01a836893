// Package builder defines shared constants used by the route parser and the
// network loaders.
package builder

import "math"

//-----------------------------------------------------------------------------
// Method Name Constants
//   used to prefix errors with the entry point that produced them.
//-----------------------------------------------------------------------------

const (
	// MethodParseRoute is the canonical name of ParseRoute.
	MethodParseRoute = "ParseRoute"
	// MethodAddRoute is the canonical name of Builder.AddRoute.
	MethodAddRoute = "AddRoute"
	// MethodFromYAML is the canonical name of FromYAML.
	MethodFromYAML = "FromYAML"
	// MethodLoadFile is the canonical name of LoadFile.
	MethodLoadFile = "LoadFile"
)

//-----------------------------------------------------------------------------
// Route limits
//-----------------------------------------------------------------------------

// MinDistance is the smallest accepted route distance. Distance-bounded walk
// enumeration needs every route to consume some budget.
const MinDistance = int64(1)

// MaxDistance is the largest accepted route distance. Any trip of up to
// 1<<24 routes still has a total that fits int64.
const MaxDistance = int64(math.MaxInt64 >> 24)

//-----------------------------------------------------------------------------
// Sample network
//-----------------------------------------------------------------------------

// KiwilandName is the display name of the sample network.
const KiwilandName = "Kiwiland"

// KiwilandRoutes is the sample Kiwiland rail network in short notation.
var KiwilandRoutes = []string{"AB5", "BC4", "CD8", "DC8", "DE6", "AD5", "CE2", "EB3", "AE7"}
