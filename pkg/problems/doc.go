// Package problems groups reference problem formulations for the search
// engine. Each subpackage implements [search.Problem] for one domain:
//
//   - vacuum: grid vacuum-cleaner world
//   - graphs: weighted directed graphs with a heuristic table
//   - puzzle: n×n sliding-tile puzzles
//   - queens: incremental N-queens placement
//   - folding: HP lattice protein folding
//
// The formulations double as test fixtures for the engine and as the
// problem kinds accepted by definition files.
package problems
