package plot

import "math"

// Scaler maps values to pixel rows and back. Row 0 is the top of the surface
// so larger values map to smaller rows. Values outside [low, high] are not
// clamped and may land off the surface.
type Scaler struct {
	height   int
	high     float64
	low      float64
	logHigh  float64
	logRange float64
	logScale bool
}

// Set establishes the mapping
func (s *Scaler) Set(height int, high, low, logHigh, logRange float64, logScale bool) {
	s.height = height
	s.high = high
	s.low = low
	s.logHigh = logHigh
	s.logRange = logRange
	s.logScale = logScale
}

// Clone returns a scaler sharing height and log settings but using its own
// range, used for lines scaled against themselves
func (s Scaler) Clone(high, low float64) Scaler {
	c := s
	c.high = high
	c.low = low
	return c
}

func (s Scaler) Height() int       { return s.height }
func (s Scaler) High() float64     { return s.high }
func (s Scaler) Low() float64      { return s.low }
func (s Scaler) LogHigh() float64  { return s.logHigh }
func (s Scaler) LogRange() float64 { return s.logRange }
func (s Scaler) LogScale() bool    { return s.logScale }

// ConvertToY maps a value to a pixel row
func (s Scaler) ConvertToY(v float64) int {
	if s.logScale {
		if s.logRange == 0 {
			return s.height / 2
		}
		if v <= 0 {
			return s.height
		}
		return round(float64(s.height) * (s.logHigh - math.Log(v)) / s.logRange)
	}

	r := s.high - s.low
	if r == 0 {
		return s.height / 2
	}
	return round(float64(s.height) * (s.high - v) / r)
}

// ConvertToVal maps a pixel row back to a value
func (s Scaler) ConvertToVal(y int) float64 {
	if s.height == 0 {
		return s.high
	}

	frac := float64(y) / float64(s.height)
	if s.logScale {
		if s.logRange == 0 {
			return s.high
		}
		return math.Exp(s.logHigh - frac*s.logRange)
	}

	if s.high == s.low {
		return s.high
	}
	return s.high - frac*(s.high-s.low)
}

// ScaleArray returns the values of the horizontal grid lines: multiples of a
// 1/2/5 step chosen so that ticks are about 40 pixels apart
func (s Scaler) ScaleArray() []float64 {
	const tickSpacing = 40

	r := s.high - s.low
	if r <= 0 || s.height <= 0 || math.IsInf(r, 0) || math.IsNaN(r) {
		return nil
	}

	ticks := max(s.height/tickSpacing, 1)
	step := niceStep(r / float64(ticks))

	values := make([]float64, 0, ticks+2)
	for v := math.Ceil(s.low/step) * step; v <= s.high; v += step {
		values = append(values, v)
	}
	return values
}

func niceStep(raw float64) float64 {
	magnitude := math.Pow(10, math.Floor(math.Log10(raw)))
	switch f := raw / magnitude; {
	case f <= 1:
		return magnitude
	case f <= 2:
		return 2 * magnitude
	case f <= 5:
		return 5 * magnitude
	default:
		return 10 * magnitude
	}
}

func round(v float64) int {
	return int(math.Round(v))
}
