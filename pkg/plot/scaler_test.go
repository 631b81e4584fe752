package plot

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func linearScaler(height int, high, low float64) Scaler {
	var s Scaler
	s.Set(height, high, low, 1, 0, false)
	return s
}

func TestScaler_Edges(t *testing.T) {
	s := linearScaler(100, 15, 5)

	assert.Equal(t, 0, s.ConvertToY(15))
	assert.Equal(t, 100, s.ConvertToY(5))
	assert.Equal(t, 50, s.ConvertToY(10))

	// no clamping outside the range
	assert.Equal(t, -10, s.ConvertToY(16))
	assert.Equal(t, 110, s.ConvertToY(4))
}

func TestScaler_RoundTrip(t *testing.T) {
	s := linearScaler(300, 120.5, 98.25)
	tolerance := (120.5 - 98.25) / 300

	prev := math.MaxInt
	for v := 98.25; v <= 120.5; v += 0.37 {
		y := s.ConvertToY(v)
		assert.InDelta(t, v, s.ConvertToVal(y), tolerance)
		assert.LessOrEqual(t, y, prev)
		prev = y
	}
}

func TestScaler_Degenerate(t *testing.T) {
	s := linearScaler(100, 7, 7)
	assert.Equal(t, 50, s.ConvertToY(7))
	assert.Equal(t, 50, s.ConvertToY(1000))
	assert.Equal(t, 7.0, s.ConvertToVal(13))

	var empty Scaler
	assert.Equal(t, 0.0, empty.ConvertToVal(10))
}

func TestScaler_Log(t *testing.T) {
	logHigh, r := logRange(100, 1, true)
	var s Scaler
	s.Set(100, 100, 1, logHigh, r, true)

	assert.Equal(t, 0, s.ConvertToY(100))
	assert.Equal(t, 100, s.ConvertToY(1))
	assert.Equal(t, 50, s.ConvertToY(10))
	assert.Equal(t, 100, s.ConvertToY(0))
	assert.Equal(t, 100, s.ConvertToY(-3))
	assert.InDelta(t, 10, s.ConvertToVal(50), 1e-9)

	s.Set(100, 5, 5, 1, 0, true)
	assert.Equal(t, 50, s.ConvertToY(5))
	assert.Equal(t, 5.0, s.ConvertToVal(20))
}

func TestScaler_Clone(t *testing.T) {
	s := linearScaler(200, 10, 0)
	c := s.Clone(1, -1)

	assert.Equal(t, 200, c.Height())
	assert.Equal(t, 1.0, c.High())
	assert.Equal(t, -1.0, c.Low())
	assert.Equal(t, 10.0, s.High())
}

func TestScaler_ScaleArray(t *testing.T) {
	s := linearScaler(200, 15, 5)
	assert.Equal(t, []float64{6, 8, 10, 12, 14}, s.ScaleArray())

	s = linearScaler(80, 1, 0)
	assert.Equal(t, []float64{0, 0.5, 1}, s.ScaleArray())

	require.Empty(t, linearScaler(100, 3, 3).ScaleArray())
	require.Empty(t, linearScaler(0, 3, 1).ScaleArray())
}
