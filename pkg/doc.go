// Package pkg provides the core libraries for Wayfinder state-space search.
//
// # Overview
//
// Wayfinder searches for a cheapest (or any) sequence of actions that takes a
// problem from its initial state to a goal state. The pkg directory is
// organized into four main areas:
//
//  1. [search] - The generic engine (nodes, frontiers, explorer)
//  2. [problems] - Reference problem formulations
//  3. [definition], [solve] - Problem files and the type-erased runner
//  4. [cache], [history], [config], [observability] - Infrastructure
//
// # Architecture
//
// The typical data flow through Wayfinder:
//
//	TOML/JSON definition file or built-in name
//	         ↓
//	    [definition] package (decode + validate)
//	         ↓
//	    [solve] package (cache lookup, build the typed problem)
//	         ↓
//	    [search] package (best-first search episode)
//	         ↓
//	    Report → CLI output, HTTP response, [history] run
//
// # Quick Start
//
// Search a problem directly with the generic engine:
//
//	import (
//	    "github.com/matzehuels/wayfinder/pkg/problems/graphs"
//	    "github.com/matzehuels/wayfinder/pkg/search"
//	)
//
//	g := graphs.Exercise()
//	res := search.New[string, string, float64](g, search.AStar).Search("S")
//	fmt.Println(res.Plan, res.Cost) // [D C F G2] 14
//
// Or go through the runner, which works on any definition:
//
//	def, _ := definition.Load("maze.toml")
//	runner := solve.NewRunner(nil, nil, logger)
//	report, _, err := runner.Solve(ctx, def, solve.Options{Strategy: "ucs"})
//
// # Main Packages
//
// ## Engine
//
// [search] - Generic best-first search over any [search.Problem]. Five
// strategies share one loop: breadth-first, depth-first, uniform-cost, greedy
// and A*. Supports graph and tree mode, depth bounds, iterative deepening and
// arena allocation.
//
// ## Problems
//
// [problems] - Reference formulations: weighted graphs, the vacuum world,
// sliding-tile puzzles, N-queens and HP lattice protein folding.
//
// ## Orchestration
//
// [definition] - Problem definition files (TOML or JSON) and built-ins.
//
// [solve] - Runs a definition with a strategy and options, caches the report
// and compares strategies. Used by both the CLI and the HTTP API.
//
// [render] - Node-link diagrams of graph problems using Graphviz.
//
// ## Infrastructure
//
// [cache] - Report cache with file, Redis and null backends.
//
// [history] - Recorded runs with memory, file and MongoDB backends.
//
// [config] - The TOML configuration file and XDG directories.
//
// [observability] - Hooks for metrics, with OpenTelemetry and Prometheus
// implementations.
//
// [errors] - Structured error codes shared by the CLI and the API.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...                    # All tests
//	go test ./pkg/search/...             # Specific package
//	go test -run Example                 # Examples only
//
// Redis and MongoDB backends are tested when WAYFINDER_TEST_REDIS_ADDR and
// WAYFINDER_TEST_MONGO_URI are set.
//
// [search]: https://pkg.go.dev/github.com/matzehuels/wayfinder/pkg/search
// [search.Problem]: https://pkg.go.dev/github.com/matzehuels/wayfinder/pkg/search#Problem
// [problems]: https://pkg.go.dev/github.com/matzehuels/wayfinder/pkg/problems
// [definition]: https://pkg.go.dev/github.com/matzehuels/wayfinder/pkg/definition
// [solve]: https://pkg.go.dev/github.com/matzehuels/wayfinder/pkg/solve
// [render]: https://pkg.go.dev/github.com/matzehuels/wayfinder/pkg/render
// [cache]: https://pkg.go.dev/github.com/matzehuels/wayfinder/pkg/cache
// [history]: https://pkg.go.dev/github.com/matzehuels/wayfinder/pkg/history
// [config]: https://pkg.go.dev/github.com/matzehuels/wayfinder/pkg/config
// [observability]: https://pkg.go.dev/github.com/matzehuels/wayfinder/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/wayfinder/pkg/errors
package pkg
