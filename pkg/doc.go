// Package pkg provides the libraries behind the tilings command.
//
// # Overview
//
// A tiling describes a set of gridded permutations: a grid of cells, a set
// of obstructions that no member may contain, and requirement lists of which
// every member must contain at least one pattern. The structural algorithms
// in this module rewrite a tiling into one or more simpler tilings describing
// the same set, and record each step as a rule.
//
// # Architecture
//
// The typical data flow:
//
//	JSON/YAML tiling file
//	         ↓
//	    [io] package (decode)
//	         ↓
//	    [tiling] package (minimized obstructions and requirements)
//	         ↓
//	    [algorithms/separation], [algorithms/factor], [algorithms/inferral]
//	         ↓
//	    [rule] package (parent, children, formal step)
//	         ↓
//	    [pipeline] package (cache, hooks, logging)
//
// # Quick Start
//
// Split a tiling into its independent factors:
//
//	import (
//	    "github.com/matzehuels/tilings/pkg/algorithms/factor"
//	    tilingio "github.com/matzehuels/tilings/pkg/io"
//	)
//
//	t, _ := tilingio.Import("tiling.json")
//	if r := factor.New(t, factor.ModeNone).Rule(false); r != nil {
//	    fmt.Println(r)
//	}
//
// # Main Packages
//
// ## Combinatorics
//
// [perm] - Permutation patterns: occurrences, symmetries, ranking.
//
// [gridded] - Gridded permutations and the point placement primitives.
//
// [tiling] - The tiling container. Construction minimizes obstructions and
// requirements and removes empty rows and columns.
//
// [graph] - Weighted inequality graphs. Reduction, cycle breaking and the
// best-first search for maximal acyclic orderings.
//
// ## Strategies
//
// [algorithms/separation] - Row and column separation, applied until the
// tiling stops changing.
//
// [algorithms/factor] - Factorization into independent sub-tilings.
//
// [algorithms/inferral] - Obstruction inferral: subobstructions, all short
// gridded permutations, and empty cells.
//
// [rule] - The result of applying a strategy.
//
// ## Infrastructure
//
// [pipeline] - Strategy dispatch shared by the CLI. Results are cached by
// tiling hash and strategy options.
//
// [cache] - File, Redis, MongoDB and Badger cache backends.
//
// [config] - TOML configuration.
//
// [observability] - Strategy and cache hooks, with a Prometheus
// implementation.
//
// [io] - JSON and YAML tiling files.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...                    # All tests
//	go test ./pkg/algorithms/...         # Strategies only
//	go test -run Example                 # Examples only
//	go test -tags integration ./pkg/...  # Include Redis and MongoDB tests
//
// [perm]: https://pkg.go.dev/github.com/matzehuels/tilings/pkg/perm
// [gridded]: https://pkg.go.dev/github.com/matzehuels/tilings/pkg/gridded
// [tiling]: https://pkg.go.dev/github.com/matzehuels/tilings/pkg/tiling
// [graph]: https://pkg.go.dev/github.com/matzehuels/tilings/pkg/graph
// [algorithms/separation]: https://pkg.go.dev/github.com/matzehuels/tilings/pkg/algorithms/separation
// [algorithms/factor]: https://pkg.go.dev/github.com/matzehuels/tilings/pkg/algorithms/factor
// [algorithms/inferral]: https://pkg.go.dev/github.com/matzehuels/tilings/pkg/algorithms/inferral
// [rule]: https://pkg.go.dev/github.com/matzehuels/tilings/pkg/rule
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/tilings/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/tilings/pkg/cache
// [config]: https://pkg.go.dev/github.com/matzehuels/tilings/pkg/config
// [observability]: https://pkg.go.dev/github.com/matzehuels/tilings/pkg/observability
// [io]: https://pkg.go.dev/github.com/matzehuels/tilings/pkg/io
package pkg
