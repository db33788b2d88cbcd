package oracle

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qgrad-ml/qgrad/internal/tensor"
)

func TestCounterCounts(t *testing.T) {
	c := NewCounter(func(_ []float64, _ *tensor.Tensor) (float64, error) {
		return 1.0, nil
	})
	fn := c.Oracle()

	params, err := tensor.Zeros(1, 1)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		_, err := fn(nil, params)
		require.NoError(t, err)
	}
	assert.Equal(t, 5, c.Calls())

	c.Reset()
	assert.Equal(t, 0, c.Calls())
}

func TestCounterConcurrent(t *testing.T) {
	c := NewCounter(func(_ []float64, _ *tensor.Tensor) (float64, error) {
		return 0, nil
	})
	fn := c.Oracle()
	params, _ := tensor.Zeros(1, 1)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				fn(nil, params) //nolint:errcheck
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 800, c.Calls())
}
