package cmd

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cloudstek/aoc2021/puzzle"
	_ "github.com/cloudstek/aoc2021/puzzle/bingo"
	_ "github.com/cloudstek/aoc2021/puzzle/crabs"
	_ "github.com/cloudstek/aoc2021/puzzle/diagnostic"
	_ "github.com/cloudstek/aoc2021/puzzle/dive"
	_ "github.com/cloudstek/aoc2021/puzzle/lanternfish"
	_ "github.com/cloudstek/aoc2021/puzzle/sonar"
	_ "github.com/cloudstek/aoc2021/puzzle/vents"
)

// Environment variables read after the .env file is loaded.
const (
	envInputDir = "AOC2021_INPUT_DIR"
	envConfig   = "AOC2021_CONFIG"
)

const defaultInputDir = "inputs"

// runOptions holds the `run` flag values.
type runOptions struct {
	days        []int         // Days to solve; empty means every registered day
	inputDir    string        // Directory holding dayNN.txt inputs
	configPath  string        // Optional YAML config file
	logLevel    string        // Log verbosity level
	workers     int           // Max days solved concurrently
	timeout     time.Duration // Deadline for the whole run (0 = none)
	timings     bool          // Print per-day solve time
	resultsPath string        // Optional JSON results file
}

var (
	envFile string // .env file loaded before any command runs
	runOpts runOptions
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "aoc2021",
	Short: "Advent of Code 2021 puzzle solvers",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		loadEnvFile(envFile)
	},
}

// loadEnvFile loads path into the process environment. Variables that are
// already set win over the file.
func loadEnvFile(path string) {
	if path == "" {
		return
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logrus.Debugf("No %s file found, reading environment variables", path)
			return
		}
		logrus.Fatalf("Failed to load %s: %v", path, err)
	}
}

// runSettings is the effective configuration of a run after merging flags,
// config file and environment.
type runSettings struct {
	Days    []int
	Timeout time.Duration
	Timings bool
	Run     puzzle.RunConfig
}

// resolveSettings merges the sources with precedence flag > config file >
// environment > default. changed reports whether a flag was set explicitly.
func resolveSettings(opts runOptions, changed func(string) bool, file *Config, getenv func(string) string) (runSettings, error) {
	if file == nil {
		file = &Config{}
	}
	s := runSettings{
		Timeout: file.Timeout,
		Timings: file.Timings,
		Run: puzzle.RunConfig{
			InputDir: defaultInputDir,
			Workers:  file.Workers,
			Inputs:   make(map[int]string),
		},
	}

	if dir := getenv(envInputDir); dir != "" {
		s.Run.InputDir = dir
	}
	if file.InputDir != "" {
		s.Run.InputDir = file.InputDir
	}
	if changed("input-dir") {
		s.Run.InputDir = opts.inputDir
	}
	if changed("workers") {
		if opts.workers < 0 {
			return runSettings{}, fmt.Errorf("--workers must be >= 0, got %d", opts.workers)
		}
		s.Run.Workers = opts.workers
	}
	if changed("timeout") {
		if opts.timeout < 0 {
			return runSettings{}, fmt.Errorf("--timeout must be >= 0, got %v", opts.timeout)
		}
		s.Timeout = opts.timeout
	}
	if changed("timings") {
		s.Timings = opts.timings
	}
	for day, dc := range file.Days {
		if dc.Input != "" {
			s.Run.Inputs[day] = dc.Input
		}
	}

	if len(opts.days) > 0 {
		for _, d := range opts.days {
			if _, ok := puzzle.Lookup(d); !ok {
				return runSettings{}, fmt.Errorf("day %d: no solver registered", d)
			}
		}
		s.Days = opts.days
		return s, nil
	}
	for _, d := range puzzle.Days() {
		if file.Days[d].Skip {
			logrus.Infof("Skipping day %d (config)", d)
			continue
		}
		s.Days = append(s.Days, d)
	}
	return s, nil
}

// runCmd solves the selected days and prints the answer sheet
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Solve Advent of Code 2021 puzzles",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(runOpts.logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", runOpts.logLevel)
		}
		logrus.SetLevel(level)

		configPath := runOpts.configPath
		if !cmd.Flags().Changed("config") {
			configPath = os.Getenv(envConfig)
		}
		var file *Config
		if configPath != "" {
			file, err = LoadConfig(configPath)
			if err != nil {
				logrus.Fatalf("%v", err)
			}
			logrus.Infof("Using config file %s", configPath)
		}

		settings, err := resolveSettings(runOpts, cmd.Flags().Changed, file, os.Getenv)
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		if len(settings.Days) == 0 {
			logrus.Fatalf("No days selected")
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()
		if settings.Timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, settings.Timeout)
			defer cancel()
		}

		logrus.Infof("Solving days %v from %s with %d workers", settings.Days, settings.Run.InputDir, settings.Run.Workers)
		startTime := time.Now()

		results, err := puzzle.Run(ctx, settings.Days, settings.Run)
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		report := puzzle.NewReport(startTime, results)
		report.Print(cmd.OutOrStdout(), settings.Timings)

		if runOpts.resultsPath != "" {
			if err := report.SaveResults(runOpts.resultsPath); err != nil {
				logrus.Errorf("%v", err)
			}
		}
		logrus.Infof("Run %s complete in %v.", report.RunID, time.Since(startTime))

		if n := report.Failed(); n > 0 {
			logrus.Errorf("%d of %d days failed", n, len(results))
			exit(1)
		}
	},
}

// exit is replaced in tests.
var exit = os.Exit

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Environment file loaded before running (missing file is ignored)")

	runCmd.Flags().IntSliceVar(&runOpts.days, "day", nil, "Day(s) to solve, e.g. --day 4 or --day 1,4 (default: all registered days)")
	runCmd.Flags().StringVar(&runOpts.inputDir, "input-dir", defaultInputDir, "Directory holding dayNN.txt input files (env "+envInputDir+")")
	runCmd.Flags().StringVar(&runOpts.configPath, "config", "", "Path to a YAML run config (env "+envConfig+")")
	runCmd.Flags().StringVar(&runOpts.logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	runCmd.Flags().IntVar(&runOpts.workers, "workers", 0, "Max days solved concurrently (0 = number of CPUs)")
	runCmd.Flags().DurationVar(&runOpts.timeout, "timeout", 0, "Deadline for the whole run, e.g. 30s (0 = none)")
	runCmd.Flags().BoolVar(&runOpts.timings, "timings", false, "Print the solve time of each day")
	runCmd.Flags().StringVar(&runOpts.resultsPath, "results-path", "", "File to save results as JSON")

	// Attach `run` as a subcommand to `root`
	rootCmd.AddCommand(runCmd)
}
