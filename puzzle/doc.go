// Package puzzle provides the shared runtime for the Advent of Code 2021 solvers.
//
// # Reading Guide
//
// Start with these files:
//   - puzzle.go: the Puzzle interface every day implements and the Answers type
//   - registry.go: how days register themselves and how the CLI finds them
//   - runner.go: concurrent solving of a set of days with per-day timing
//
// # Architecture
//
// The puzzle package defines the interface and the runner; the solvers live in
// sub-packages, one per day:
//   - puzzle/sonar/: Day 1, sonar sweep depth increases
//   - puzzle/dive/: Day 2, submarine course commands
//   - puzzle/diagnostic/: Day 3, binary diagnostic report
//   - puzzle/bingo/: Day 4, bingo board simulation
//   - puzzle/vents/: Day 5, hydrothermal vent lines
//   - puzzle/lanternfish/: Day 6, lanternfish population growth
//   - puzzle/crabs/: Day 7, crab alignment fuel
//
// Sub-packages register their solvers via init() functions that call Register.
// Importing a sub-package (usually as a blank import) is enough to make its day
// available to Run.
//
// # Errors
//
// Malformed input is reported as an error wrapping ErrInvalidInput, usually an
// *InputError carrying the offending line. Solvers never retry.
package puzzle
