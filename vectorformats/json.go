package vectorformats

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/kpfaulkner/dct-golden/block"
	"github.com/kpfaulkner/dct-golden/core"
)

type vectorFile struct {
	TestCases []testCase `json:"test_cases"`
}

type testCase struct {
	Name           string    `json:"name"`
	Input          [][]int32 `json:"input"`
	ExpectedOutput [][]int32 `json:"expected_output"`
}

// WriteJSON writes the cases as {"test_cases": [{"name", "input",
// "expected_output"}]}, with 8x8 nested row-major integer arrays, indented by
// two spaces.
func WriteJSON(output io.Writer, cases []core.GoldenCase) error {
	f := vectorFile{TestCases: make([]testCase, 0, len(cases))}
	for _, c := range cases {
		f.TestCases = append(f.TestCases, testCase{
			Name:           c.Name,
			Input:          c.Input.Rows(),
			ExpectedOutput: c.Expected.Rows(),
		})
	}

	enc := json.NewEncoder(output)
	enc.SetIndent("", "  ")
	return enc.Encode(f)
}

// ReadJSON reads a file in the WriteJSON layout. Hardware result files use the
// same layout, with the engine's output in expected_output.
func ReadJSON(input io.Reader) ([]core.GoldenCase, error) {
	var f vectorFile
	if err := json.NewDecoder(input).Decode(&f); err != nil {
		return nil, fmt.Errorf("decoding test vectors: %w", err)
	}

	cases := make([]core.GoldenCase, 0, len(f.TestCases))
	for i, tc := range f.TestCases {
		in, err := block.PixelBlockFromRows(tc.Input)
		if err != nil {
			return nil, fmt.Errorf("test case %d (%s) input: %w", i, tc.Name, err)
		}
		out, err := block.CoefficientBlockFromRows(tc.ExpectedOutput)
		if err != nil {
			return nil, fmt.Errorf("test case %d (%s) expected_output: %w", i, tc.Name, err)
		}
		cases = append(cases, core.GoldenCase{Name: tc.Name, Input: in, Expected: out})
	}
	return cases, nil
}
