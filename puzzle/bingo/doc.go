// Package bingo solves Day 4 (Giant Squid): a bingo game between the
// submarine and a squid.
//
// Boards are marked draw by draw. Part A scores the first board to complete a
// row or column, part B the last one. Scores are the sum of the board's
// unmarked numbers times the draw that completed it.
//
// Marking for a single draw is spread over a bounded worker group, but the
// order in which wins are reported only depends on draw order and board
// index, never on goroutine scheduling.
package bingo
