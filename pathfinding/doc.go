// Package pathfinding finds shortest 4-connected paths across a types.Grid.
//
// It exposes three entry points:
//
//   - FindPath: the path from start to target, or false when none exists.
//   - Search: the same search, reporting expansion counts and budget cut-offs.
//   - Stepper: iterate the search one expansion at a time for debugging tools.
//
// Every call owns its open and closed sets; nothing survives between calls,
// so obstacle snapshots may change freely from one call to the next.
package pathfinding
