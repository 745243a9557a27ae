// Package gridastar provides an allocation-free A* pathfinder for fixed
// rectangular grids with 8-way movement.
//
// It exposes two main entry points:
//
//   - Finder: run one search at a time against a grid, writing the result
//     into a reusable Path.
//   - Pool: answer batches of requests in parallel, one Finder per worker.
//
// Finder preallocates all of its search state. Cell state from earlier
// searches is invalidated by a generation stamp rather than cleared, so a
// search costs nothing up front, and its depth is capped by the capacity of
// the Path it fills. When the target cannot be reached the path leads to the
// visited cell closest to it.
package gridastar
