// Package testutil provides shared test infrastructure for the puzzle solvers.
// It loads the golden example dataset used by puzzle/ and every day's package.
package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// GoldenDataset represents the structure of testdata/golden.json.
type GoldenDataset struct {
	Tests []GoldenTestCase `json:"tests"`
}

// GoldenTestCase is one day's published example and its expected answers.
type GoldenTestCase struct {
	Day     int     `json:"day"`
	Title   string  `json:"title"`
	Input   string  `json:"input"` // relative to testdata/
	Answers []int64 `json:"answers"`
}

// testdataDir resolves testdata/ relative to this source file:
// puzzle/internal/testutil/ → testdata/.
func testdataDir(t *testing.T) string {
	t.Helper()
	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}
	return filepath.Join(filepath.Dir(thisFile), "..", "..", "..", "testdata")
}

// LoadGoldenDataset loads the golden dataset from the testdata directory.
func LoadGoldenDataset(t *testing.T) *GoldenDataset {
	t.Helper()

	path := filepath.Join(testdataDir(t), "golden.json")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read golden dataset: %v", err)
	}

	var dataset GoldenDataset
	if err := json.Unmarshal(data, &dataset); err != nil {
		t.Fatalf("Failed to parse golden dataset: %v", err)
	}
	return &dataset
}

// GoldenCase returns the golden case for day, failing the test if absent.
func GoldenCase(t *testing.T, day int) GoldenTestCase {
	t.Helper()
	for _, tc := range LoadGoldenDataset(t).Tests {
		if tc.Day == day {
			return tc
		}
	}
	t.Fatalf("no golden case for day %d", day)
	return GoldenTestCase{}
}

// ExampleInput returns the example input of tc as a reader.
func ExampleInput(t *testing.T, tc GoldenTestCase) *strings.Reader {
	t.Helper()
	data, err := os.ReadFile(ExamplePath(t, tc))
	if err != nil {
		t.Fatalf("Failed to read example input for day %d: %v", tc.Day, err)
	}
	return strings.NewReader(string(data))
}

// ExamplePath returns the absolute path of tc's example input.
func ExamplePath(t *testing.T, tc GoldenTestCase) string {
	t.Helper()
	return filepath.Join(testdataDir(t), tc.Input)
}
