// Entry point of the aoc2021 CLI. Commands live in cmd/.

package main

import (
	"github.com/cloudstek/aoc2021/cmd"
)

func main() {
	cmd.Execute()
}
