package tensor

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShapeNumElements(t *testing.T) {
	assert.Equal(t, 6, Shape{2, 3}.NumElements())
	assert.Equal(t, 12, Shape{3, 2, 2}.NumElements())
	assert.Equal(t, 1, Shape{}.NumElements(), "scalar shape has one element")
}

func TestShapeValidate(t *testing.T) {
	assert.NoError(t, Shape{3, 2}.Validate())
	assert.Error(t, Shape{3, 0}.Validate())
	assert.Error(t, Shape{-1, 2}.Validate())
}

func TestShapeEqualAndClone(t *testing.T) {
	s := Shape{3, 2}
	assert.True(t, s.Equal(Shape{3, 2}))
	assert.False(t, s.Equal(Shape{2, 3}))
	assert.False(t, s.Equal(Shape{3, 2, 1}))

	clone := s.Clone()
	clone[0] = 99
	assert.Equal(t, 3, s[0], "mutating the clone must not touch the original")
}

func TestShapeComputeStrides(t *testing.T) {
	assert.Equal(t, []int{2, 1}, Shape{3, 2}.ComputeStrides())
	assert.Equal(t, []int{6, 2, 1}, Shape{4, 3, 2}.ComputeStrides())
}

func TestNewRejectsInvalidShape(t *testing.T) {
	_, err := New(Shape{2, 0})
	require.Error(t, err)

	var shapeErr *ShapeError
	assert.True(t, errors.As(err, &shapeErr))
}

func TestFromRows(t *testing.T) {
	p, err := FromRows([][]float64{
		{0.1, 0.2},
		{0.3, 0.4},
		{0.5, 0.6},
	})
	require.NoError(t, err)

	assert.True(t, p.Shape().Equal(Shape{3, 2}))
	assert.Equal(t, 6, p.NumElements())
	assert.Equal(t, 0.4, p.At(1, 1))
	assert.Equal(t, 0.5, p.At(2, 0))
}

func TestFromRowsRagged(t *testing.T) {
	_, err := FromRows([][]float64{
		{0.1, 0.2},
		{0.3},
	})
	require.Error(t, err)

	var shapeErr *ShapeError
	require.True(t, errors.As(err, &shapeErr))
	assert.Equal(t, "FromRows", shapeErr.Op)
}

func TestFromRowsEmpty(t *testing.T) {
	_, err := FromRows(nil)
	assert.Error(t, err)
}

func TestFromSliceLengthMismatch(t *testing.T) {
	_, err := FromSlice([]float64{1, 2, 3}, Shape{2, 2})
	require.Error(t, err)

	var shapeErr *ShapeError
	assert.True(t, errors.As(err, &shapeErr))
}

func TestSetAndFlatAccess(t *testing.T) {
	p, err := Zeros(2, 3)
	require.NoError(t, err)

	p.Set(1.5, 1, 2)
	assert.Equal(t, 1.5, p.At(1, 2))
	assert.Equal(t, 1.5, p.AtIndex(5), "row-major: (1,2) is flat index 5")

	p.SetIndex(0, -2.0)
	assert.Equal(t, -2.0, p.At(0, 0))
}

func TestCloneDoesNotAlias(t *testing.T) {
	p, err := FromSlice([]float64{1, 2, 3, 4}, Shape{2, 2})
	require.NoError(t, err)

	c := p.Clone()
	require.True(t, p.Equal(c))

	c.Set(99, 0, 1)
	assert.Equal(t, 2.0, p.At(0, 1), "original must not see the clone's write")
	assert.False(t, p.Equal(c))
}

func TestEqual(t *testing.T) {
	a, _ := FromSlice([]float64{1, 2}, Shape{1, 2})
	b, _ := FromSlice([]float64{1, 2}, Shape{2, 1})
	assert.False(t, a.Equal(b), "same data, different shape")
	assert.False(t, a.Equal(nil))
}

func TestAtPanicsOnBadIndex(t *testing.T) {
	p, _ := Zeros(2, 2)
	assert.Panics(t, func() { p.At(2, 0) })
	assert.Panics(t, func() { p.At(0) })
}
