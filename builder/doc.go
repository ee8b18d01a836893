// Package builder turns textual route lists and YAML network documents into
// core.Graph rail networks.
//
// Route notation:
//
//	AB5             single-letter cities A and B, distance 5
//	Alpha-Beta:12   named cities, distance 12
//
// Every route must join two different cities and carry a distance of at least
// MinDistance. A repeated pair overwrites the earlier distance unless the
// Builder runs WithStrict, in which case ErrDuplicateRoute is returned.
//
// Entry points:
//
//	b := builder.NewBuilder()
//	_ = b.Add("AB5")
//	_ = b.AddRoute("B", "C", 4)
//	g, err := b.Build()            // Build resets b
//
//	g, err := builder.FromStrings([]string{"AB5", "BC4"})
//	g, name, err := builder.LoadFile("network.yaml")
//	g := builder.Kiwiland()         // the sample network
//
// Errors: ErrInvalidRoute, ErrSelfLoop, ErrDuplicateRoute, ErrNoRoutes; all
// are wrapped with the entry point name and the offending text.
package builder
