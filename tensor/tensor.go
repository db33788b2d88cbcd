// Copyright 2026 QGrad Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/qgrad-ml/qgrad/internal/tensor"
)

// Shape represents the dimensions of a tensor.
// Example: Shape{3, 2} is a parameter tensor with 3 layers and 2 wires.
type Shape = tensor.Shape

// Tensor is a dense float64 tensor in row-major layout.
type Tensor = tensor.Tensor

// ShapeError reports ragged input, a shape/data mismatch, or an index
// outside the tensor's bounds.
type ShapeError = tensor.ShapeError

// Creation functions

// New creates a zero-filled tensor with the given shape.
//
// Example:
//
//	grad, err := tensor.New(tensor.Shape{3, 2})
func New(shape Shape) (*Tensor, error) {
	return tensor.New(shape)
}

// Zeros creates a 2D tensor of the given dimensions filled with zeros.
//
// Example:
//
//	params, err := tensor.Zeros(3, 2) // 3 layers, 2 wires
func Zeros(rows, cols int) (*Tensor, error) {
	return tensor.Zeros(rows, cols)
}

// FromSlice creates a tensor from a Go slice.
// The slice is copied into the tensor's memory.
//
// Example:
//
//	params, err := tensor.FromSlice([]float64{1, 2, 3, 4, 5, 6}, tensor.Shape{3, 2})
func FromSlice(data []float64, shape Shape) (*Tensor, error) {
	return tensor.FromSlice(data, shape)
}

// FromRows creates a 2D tensor from a slice of rows.
// All rows must have equal length; ragged input fails with *ShapeError.
//
// Example:
//
//	params, err := tensor.FromRows([][]float64{
//	    {0.1, 0.2},
//	    {0.3, 0.4},
//	})
func FromRows(rows [][]float64) (*Tensor, error) {
	return tensor.FromRows(rows)
}
