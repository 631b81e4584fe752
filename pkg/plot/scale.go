package plot

import "math"

// pfHeadroom keeps the topmost point and figure box on the surface
const pfHeadroom = 1.02

// scaleInput is what the resolver reads from the plot
type scaleInput struct {
	indicator *Indicator
	objects   []ChartObject
	barCount  int
	viewport  Viewport
	style     Style
}

// resolveRange computes the shared axis range. In full-range mode it folds
// the cached extremes of every line plus every chart object; in
// scale-to-screen mode it only reads the visible samples and ignores
// objects. The bool reports whether any PF line took part.
func resolveRange(in scaleInput) (high, low float64, pf bool) {
	high, low = math.Inf(-1), math.Inf(1)

	if in.indicator != nil && in.indicator.Enabled {
		for _, line := range in.indicator.Lines {
			if line.Style == StyleInvisible || line.ScaleOverride || line.Len() == 0 {
				continue
			}

			if line.Style == StylePF {
				pf = true
			}

			if !in.style.ScaleToScreen {
				high = math.Max(high, line.High())
				low = math.Min(low, line.Low())
				continue
			}

			start := in.viewport.FirstSample(line.Len(), in.barCount)
			h, l, ok := line.HighLowRange(max(start, 0), start+in.viewport.VisibleBars())
			if !ok {
				continue
			}
			high = math.Max(high, h)
			low = math.Min(low, l)
		}
	}

	if !in.style.ScaleToScreen {
		for _, co := range in.objects {
			high = math.Max(high, co.High())
			low = math.Min(low, co.Low())
		}
	}

	if math.IsInf(high, 0) || math.IsInf(low, 0) {
		return 0, 0, pf
	}

	if pf {
		high *= pfHeadroom
	}
	return high, low, pf
}

// resolveScaler builds the shared scaler for a surface of the given height
func resolveScaler(in scaleInput) Scaler {
	high, low, _ := resolveRange(in)

	logHigh, logRange := logRange(high, low, in.style.LogScale)

	var s Scaler
	s.Set(in.viewport.Height, high, low, logHigh, logRange, in.style.LogScale)
	return s
}

// logRange precomputes the log-space range; non-positive bounds fall back
// to 1 for the top and 0 for the bottom
func logRange(high, low float64, enabled bool) (float64, float64) {
	if !enabled {
		return 1, 0
	}

	logHigh := 1.0
	if high > 0 {
		logHigh = math.Log(high)
	}

	logLow := 0.0
	if low > 0 {
		logLow = math.Log(low)
	}
	return logHigh, logHigh - logLow
}

// lineScaler returns the scaler a line renders with
func lineScaler(shared Scaler, line *PlotLine) Scaler {
	if !line.ScaleOverride || line.Len() == 0 {
		return shared
	}

	c := shared.Clone(line.High(), line.Low())
	if c.LogScale() {
		logHigh, r := logRange(line.High(), line.Low(), true)
		c.Set(c.Height(), c.High(), c.Low(), logHigh, r, true)
	}
	return c
}
