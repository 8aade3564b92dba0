package vectorformats

import (
	"bufio"
	"fmt"
	"io"

	"github.com/kpfaulkner/dct-golden/core"
)

const literalsPerLine = 8

// WriteVerilog writes the cases as SystemVerilog localparam arrays: per case a
// 64 entry 8 bit input array and a 64 entry signed 16 bit expected output
// array, both row major, followed by a NUM_TESTS constant.
func WriteVerilog(output io.Writer, cases []core.GoldenCase) error {
	w := bufio.NewWriter(output)

	fmt.Fprint(w, "// Auto-generated test vectors for DCT 2D\n")
	fmt.Fprint(w, "// Format: input pixels (8-bit) and expected DCT coefficients (16-bit)\n\n")

	for idx, c := range cases {
		fmt.Fprintf(w, "// Test pattern %d: %s\n", idx, c.Name)

		fmt.Fprintf(w, "localparam [0:63][7:0] test_input_%d = '{\n", idx)
		if err := writeLiterals(w, c.Input.Flatten(), pixelLiteral); err != nil {
			return fmt.Errorf("test pattern %d (%s) input: %w", idx, c.Name, err)
		}
		fmt.Fprint(w, "};\n\n")

		fmt.Fprintf(w, "localparam [0:63][15:0] test_output_%d = '{\n", idx)
		if err := writeLiterals(w, c.Expected.Flatten(), coefficientLiteral); err != nil {
			return fmt.Errorf("test pattern %d (%s) expected output: %w", idx, c.Name, err)
		}
		fmt.Fprint(w, "};\n\n")
	}

	fmt.Fprintf(w, "localparam NUM_TESTS = %d;\n", len(cases))
	return w.Flush()
}

func writeLiterals(w io.Writer, values []int32, literal func(int32) (string, error)) error {
	for i := 0; i < len(values); i += literalsPerLine {
		fmt.Fprint(w, "    ")
		for j, v := range values[i : i+literalsPerLine] {
			if j > 0 {
				fmt.Fprint(w, ", ")
			}
			s, err := literal(v)
			if err != nil {
				return err
			}
			fmt.Fprint(w, s)
		}
		if i+literalsPerLine < len(values) {
			fmt.Fprint(w, ",")
		}
		fmt.Fprint(w, "\n")
	}
	return nil
}

func pixelLiteral(v int32) (string, error) {
	if v < 0 || v > 255 {
		return "", fmt.Errorf("pixel %d does not fit an 8 bit literal", v)
	}
	return fmt.Sprintf("8'd%d", v), nil
}

// coefficientLiteral writes negative values as a negated sized literal,
// e.g. -16'sd128.
func coefficientLiteral(v int32) (string, error) {
	if v < -32768 || v > 32767 {
		return "", fmt.Errorf("coefficient %d does not fit a signed 16 bit literal", v)
	}
	if v < 0 {
		return fmt.Sprintf("-16'sd%d", -int64(v)), nil
	}
	return fmt.Sprintf("16'sd%d", v), nil
}
