package compare

import (
	"errors"
	"fmt"

	"github.com/kpfaulkner/dct-golden/core"
)

// ErrCaseMismatch means a result set does not line up with the golden set:
// different lengths, or a different name or input block at the same index.
var ErrCaseMismatch = errors.New("compare: result cases do not match golden cases")

type CaseResult struct {
	Index  int
	Name   string
	Report Report
}

type SuiteResult struct {
	Cases  []CaseResult
	Passed int
	Failed int
}

func (s SuiteResult) AllPassed() bool {
	return s.Failed == 0
}

// CompareCases compares each hardware case's Expected block with the golden
// case at the same index. Cases are correlated by index, and both the name and
// the input block must agree, so results captured from different stimuli are
// rejected rather than compared.
func CompareCases(hardware, golden []core.GoldenCase, tolerance float64) (SuiteResult, error) {
	if len(hardware) != len(golden) {
		return SuiteResult{}, fmt.Errorf("%w: %d hardware cases, %d golden cases", ErrCaseMismatch, len(hardware), len(golden))
	}

	var s SuiteResult
	for i := range golden {
		if hardware[i].Name != golden[i].Name {
			return SuiteResult{}, fmt.Errorf("%w: case %d is %q, want %q", ErrCaseMismatch, i, hardware[i].Name, golden[i].Name)
		}
		if hardware[i].Input != golden[i].Input {
			return SuiteResult{}, fmt.Errorf("%w: case %d (%s) input block differs from the golden input", ErrCaseMismatch, i, golden[i].Name)
		}
		r := Compare(hardware[i].Expected, golden[i].Expected, tolerance)
		if r.Passed {
			s.Passed++
		} else {
			s.Failed++
		}
		s.Cases = append(s.Cases, CaseResult{Index: i, Name: golden[i].Name, Report: r})
	}
	return s, nil
}
