package cost

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShiftEvaluations(t *testing.T) {
	tests := []struct {
		name    string
		nParams int
		nSteps  int
		want    int
	}{
		{"typical run", 13, 13, 338},
		{"no parameters", 0, 100, 0},
		{"no steps", 100, 0, 0},
		{"single parameter single step", 1, 1, 2},
		{"layered circuit", 6, 50, 600},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ShiftEvaluations(tt.nParams, tt.nSteps)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestShiftEvaluationsNegative(t *testing.T) {
	_, err := ShiftEvaluations(-1, 10)
	assert.ErrorIs(t, err, ErrNegativeInput)

	_, err = ShiftEvaluations(10, -1)
	assert.ErrorIs(t, err, ErrNegativeInput)
}

func TestBackpropEvaluations(t *testing.T) {
	got, err := BackpropEvaluations(13)
	require.NoError(t, err)
	assert.Equal(t, 13, got, "reverse mode costs one evaluation per step")

	_, err = BackpropEvaluations(-5)
	assert.ErrorIs(t, err, ErrNegativeInput)
}

func TestBatchedShiftEvaluations(t *testing.T) {
	got, err := BatchedShiftEvaluations(13, 13, 1)
	require.NoError(t, err)
	assert.Equal(t, 338, got, "batch size 1 is the single-batch model")

	got, err = BatchedShiftEvaluations(13, 13, 4)
	require.NoError(t, err)
	assert.Equal(t, 1352, got)

	got, err = BatchedShiftEvaluations(13, 13, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, got)

	_, err = BatchedShiftEvaluations(13, 13, -1)
	assert.ErrorIs(t, err, ErrNegativeInput)

	_, err = BatchedShiftEvaluations(-1, 13, 2)
	assert.ErrorIs(t, err, ErrNegativeInput)
}
