package compare

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kpfaulkner/dct-golden/core"
)

func TestCompareCases(t *testing.T) {
	golden := []core.GoldenCase{
		{Name: "a", Expected: sampleBlock()},
		{Name: "b", Expected: sampleBlock()},
	}
	hardware := []core.GoldenCase{golden[0], golden[1]}
	hardware[1].Expected[4][4] += 500

	s, err := CompareCases(hardware, golden, DefaultTolerance)
	require.NoError(t, err)

	assert.Equal(t, 1, s.Passed)
	assert.Equal(t, 1, s.Failed)
	assert.False(t, s.AllPassed())
	require.Len(t, s.Cases, 2)
	assert.Equal(t, "b", s.Cases[1].Name)
	assert.Equal(t, 500.0, s.Cases[1].Report.MaxError)
}

func TestCompareCasesMismatch(t *testing.T) {
	golden := []core.GoldenCase{{Name: "a"}, {Name: "b"}}

	_, err := CompareCases(golden[:1], golden, 0)
	assert.ErrorIs(t, err, ErrCaseMismatch)

	_, err = CompareCases([]core.GoldenCase{{Name: "b"}, {Name: "a"}}, golden, 0)
	assert.ErrorIs(t, err, ErrCaseMismatch)

	s, err := CompareCases(golden, golden, 0)
	require.NoError(t, err)
	assert.True(t, s.AllPassed())
}

func TestCompareCasesRejectsDifferentInput(t *testing.T) {
	golden := []core.GoldenCase{{Name: "a", Expected: sampleBlock()}}
	golden[0].Input[0][0] = 255

	hardware := []core.GoldenCase{golden[0]}
	hardware[0].Input[0][0] = 254

	_, err := CompareCases(hardware, golden, DefaultTolerance)
	assert.ErrorIs(t, err, ErrCaseMismatch)

	hardware[0].Input = golden[0].Input
	s, err := CompareCases(hardware, golden, DefaultTolerance)
	require.NoError(t, err)
	assert.True(t, s.AllPassed())
}
