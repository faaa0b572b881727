// Package life implements the Game of Life grid engine with per-cell death
// history.
//
// A [Grid] is an N x N matrix of [Cell] values. [Step] computes the next
// generation into a fresh grid and never touches its input, so a caller can
// keep reading the previous generation while the next one is being built.
//
// The rule is the classic B3/S23: a live cell with two or three live
// neighbors survives, any cell with exactly three live neighbors is alive
// next generation, everything else is dead and has its death counter bumped.
// Cells outside the grid count as dead; there is no wrapping.
package life
