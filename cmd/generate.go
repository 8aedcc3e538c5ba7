package cmd

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cloudstek/aoc2021/puzzle/bingo"
)

var (
	genConfig     bingo.GeneratorConfig
	genOutputPath string // "" or "-" writes to stdout
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate synthetic puzzle inputs",
}

var generateBingoCmd = &cobra.Command{
	Use:   "bingo",
	Short: "Generate a random Day 4 bingo input",
	Long: "Generate a bingo input (draw line plus boards) from a seed. The same seed and " +
		"sizes always produce the same input. Output is written to stdout unless --output is given.",
	Run: func(cmd *cobra.Command, args []string) {
		gen, err := bingo.NewGenerator(genConfig)
		if err != nil {
			logrus.Fatalf("Invalid generator config: %v", err)
		}
		in := gen.Generate()

		var w io.Writer = cmd.OutOrStdout()
		if genOutputPath != "" && genOutputPath != "-" {
			f, err := os.Create(genOutputPath)
			if err != nil {
				logrus.Fatalf("Failed to create %s: %v", genOutputPath, err)
			}
			defer func() { _ = f.Close() }()
			w = f
		}
		if _, err := in.WriteTo(w); err != nil {
			logrus.Fatalf("Failed to write bingo input: %v", err)
		}
		logrus.Infof("Generated %d boards and %d draws (seed %d)", len(in.Boards), len(in.Draws), gen.Config().Seed)
	},
}

func init() {
	f := generateBingoCmd.Flags()
	f.Int64Var(&genConfig.Seed, "seed", 42, "Seed for the generator")
	f.IntVar(&genConfig.Boards, "boards", 100, "Number of boards")
	f.IntVar(&genConfig.Rows, "rows", bingo.DefaultRows, "Rows per board")
	f.IntVar(&genConfig.Cols, "cols", bingo.DefaultCols, "Columns per board")
	f.IntVar(&genConfig.MaxNumber, "max-number", 99, "Largest number on boards and in draws")
	f.IntVar(&genConfig.Draws, "draws", 0, "Number of draws (0 = every number once)")
	f.StringVarP(&genOutputPath, "output", "o", "", "Output file (default stdout)")

	generateCmd.AddCommand(generateBingoCmd)
	rootCmd.AddCommand(generateCmd)
}
