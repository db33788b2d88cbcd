package tensor

import "fmt"

// Tensor is a dense float64 tensor in row-major layout.
//
// It is the carrier for circuit parameters and their gradients: a
// parameter tensor of shape (L, W) holds one rotation angle per layer
// and wire, and the gradient tensor produced for it has the identical
// shape. The backing storage is a single contiguous slice.
type Tensor struct {
	shape   Shape
	strides []int
	data    []float64
}

// New creates a zero-filled tensor with the given shape.
func New(shape Shape) (*Tensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, &ShapeError{Op: "New", Details: err.Error()}
	}
	s := shape.Clone()
	return &Tensor{
		shape:   s,
		strides: s.ComputeStrides(),
		data:    make([]float64, s.NumElements()),
	}, nil
}

// Zeros creates a 2D tensor of the given dimensions filled with zeros.
func Zeros(rows, cols int) (*Tensor, error) {
	return New(Shape{rows, cols})
}

// FromSlice creates a tensor from a Go slice.
// The slice is copied into the tensor's memory.
func FromSlice(data []float64, shape Shape) (*Tensor, error) {
	t, err := New(shape)
	if err != nil {
		return nil, err
	}
	if shape.NumElements() != len(data) {
		return nil, &ShapeError{
			Op:      "FromSlice",
			Want:    shape.Clone(),
			Got:     Shape{len(data)},
			Details: fmt.Sprintf("shape requires %d elements, got %d", shape.NumElements(), len(data)),
		}
	}
	copy(t.data, data)
	return t, nil
}

// FromRows creates a 2D tensor from a slice of rows.
// All rows must have equal length; ragged input fails with *ShapeError.
func FromRows(rows [][]float64) (*Tensor, error) {
	if len(rows) == 0 {
		return nil, &ShapeError{Op: "FromRows", Details: "no rows given"}
	}
	width := len(rows[0])
	for i, row := range rows {
		if len(row) != width {
			return nil, &ShapeError{
				Op:      "FromRows",
				Want:    Shape{len(rows), width},
				Got:     Shape{i, len(row)},
				Details: fmt.Sprintf("row %d has %d entries, row 0 has %d", i, len(row), width),
			}
		}
	}

	t, err := New(Shape{len(rows), width})
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		copy(t.data[i*width:(i+1)*width], row)
	}
	return t, nil
}

// Shape returns the tensor's shape.
func (t *Tensor) Shape() Shape {
	return t.shape
}

// NumElements returns the total number of elements.
func (t *Tensor) NumElements() int {
	return t.shape.NumElements()
}

// Data returns the backing slice in row-major order.
// The slice aliases the tensor's storage; callers that need an
// independent copy should Clone first.
func (t *Tensor) Data() []float64 {
	return t.data
}

// At returns the element at the given multi-dimensional index.
// Panics if the number of indices does not match the tensor's rank
// or an index is out of bounds.
func (t *Tensor) At(indices ...int) float64 {
	return t.data[t.flatIndex(indices)]
}

// Set stores v at the given multi-dimensional index.
func (t *Tensor) Set(v float64, indices ...int) {
	t.data[t.flatIndex(indices)] = v
}

// AtIndex returns the element at a flat row-major index.
func (t *Tensor) AtIndex(idx int) float64 {
	return t.data[idx]
}

// SetIndex stores v at a flat row-major index.
func (t *Tensor) SetIndex(idx int, v float64) {
	t.data[idx] = v
}

// Clone returns a deep copy of the tensor.
// The copy shares no storage with the original: mutating one is
// never observable through the other.
func (t *Tensor) Clone() *Tensor {
	data := make([]float64, len(t.data))
	copy(data, t.data)
	return &Tensor{
		shape:   t.shape.Clone(),
		strides: t.shape.ComputeStrides(),
		data:    data,
	}
}

// Equal reports whether two tensors have identical shape and
// bitwise-identical elements.
func (t *Tensor) Equal(other *Tensor) bool {
	if other == nil || !t.shape.Equal(other.shape) {
		return false
	}
	for i := range t.data {
		if t.data[i] != other.data[i] {
			return false
		}
	}
	return true
}

func (t *Tensor) flatIndex(indices []int) int {
	if len(indices) != len(t.shape) {
		panic(fmt.Sprintf("tensor: %d indices for rank-%d tensor", len(indices), len(t.shape)))
	}
	idx := 0
	for i, index := range indices {
		if index < 0 || index >= t.shape[i] {
			panic(fmt.Sprintf("tensor: index %d out of range for dimension %d (size %d)", index, i, t.shape[i]))
		}
		idx += index * t.strides[i]
	}
	return idx
}
