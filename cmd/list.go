package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cloudstek/aoc2021/puzzle"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the days that have a solver",
	Run: func(cmd *cobra.Command, args []string) {
		for _, d := range puzzle.Days() {
			e, _ := puzzle.Lookup(d)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Day %02d: %s\n", e.Day, e.Title)
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
