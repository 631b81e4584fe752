package plot

import (
	"image/color"
	"math"

	"github.com/raykavin/chartplot/pkg/core"
)

// LineStyle selects the draw primitive used for a PlotLine
type LineStyle int

const (
	StyleLine LineStyle = iota
	StyleDash
	StyleHistogram
	StyleHistogramBar
	StyleDot
	StyleBar
	StyleCandle
	StyleHorizontal
	StylePF
	StyleInvisible
)

var styleNames = map[LineStyle]string{
	StyleLine:         "Line",
	StyleDash:         "Dash",
	StyleHistogram:    "Histogram",
	StyleHistogramBar: "HistogramBar",
	StyleDot:          "Dot",
	StyleBar:          "Bar",
	StyleCandle:       "Candle",
	StyleHorizontal:   "Horizontal",
	StylePF:           "PF",
	StyleInvisible:    "Invisible",
}

func (s LineStyle) String() string {
	if name, ok := styleNames[s]; ok {
		return name
	}
	return "Unknown"
}

// ParseLineStyle converts a style name back to a LineStyle
func ParseLineStyle(name string) (LineStyle, bool) {
	for style, n := range styleNames {
		if n == name {
			return style, true
		}
	}
	return StyleLine, false
}

// OHLC reports whether the style carries open/high/low/close samples
func (s LineStyle) OHLC() bool {
	return s == StyleBar || s == StyleCandle || s == StylePF
}

// Sample is one value of a PlotLine. Scalar styles only use Value. Bar,
// Candle and PF styles use the OHLC fields; PF stores its box size in Box
// and marks X columns with Filled.
type Sample struct {
	Value  float64
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Box    float64
	Color  color.RGBA
	Filled bool
}

// PlotLine is an ordered sample sequence right-aligned against the most
// recent bar: sample i belongs to bar count(bars) - Len() + i.
type PlotLine struct {
	Style LineStyle
	Label string
	Color color.RGBA
	// ColorBars makes HistogramBar draw each sample with its own colour
	ColorBars bool
	// ScaleOverride scales the line against its own high/low
	ScaleOverride bool

	samples []Sample
	highs   core.Series[float64]
	lows    core.Series[float64]
	high    float64
	low     float64
}

// NewPlotLine creates an empty line
func NewPlotLine(style LineStyle, label string, c color.RGBA) *PlotLine {
	return &PlotLine{
		Style: style,
		Label: label,
		Color: c,
		high:  math.Inf(-1),
		low:   math.Inf(1),
	}
}

// Append adds a scalar sample
func (l *PlotLine) Append(v float64) {
	l.AppendSample(Sample{Value: v, Color: l.Color})
}

// AppendValues adds several scalar samples
func (l *PlotLine) AppendValues(values ...float64) {
	for _, v := range values {
		l.Append(v)
	}
}

// AppendBar adds an OHLC sample
func (l *PlotLine) AppendBar(c color.RGBA, open, high, low, cl float64, filled bool) {
	l.AppendSample(Sample{
		Value:  cl,
		Open:   open,
		High:   high,
		Low:    low,
		Close:  cl,
		Color:  c,
		Filled: filled,
	})
}

// AppendSample adds a sample and updates the high/low cache
func (l *PlotLine) AppendSample(s Sample) {
	hi, lo := s.Value, s.Value
	if l.Style.OHLC() {
		hi, lo = s.High, s.Low
	}

	l.samples = append(l.samples, s)
	l.highs = append(l.highs, hi)
	l.lows = append(l.lows, lo)
	l.high = math.Max(l.high, hi)
	l.low = math.Min(l.low, lo)
}

// Len returns the number of samples
func (l *PlotLine) Len() int {
	return len(l.samples)
}

// Sample returns sample i
func (l *PlotLine) Sample(i int) Sample {
	return l.samples[i]
}

// Value returns the scalar value of sample i
func (l *PlotLine) Value(i int) float64 {
	return l.samples[i].Value
}

// Last returns the most recent sample
func (l *PlotLine) Last() Sample {
	return l.samples[len(l.samples)-1]
}

// High returns the cached maximum over every sample
func (l *PlotLine) High() float64 {
	return l.high
}

// Low returns the cached minimum over every sample
func (l *PlotLine) Low() float64 {
	return l.low
}

// HighLowRange returns the extremes of the samples in [start, end). ok is
// false when the window holds no sample.
func (l *PlotLine) HighLowRange(start, end int) (high, low float64, ok bool) {
	high, _, ok = core.HighLow(l.highs.Window(start, end))
	if !ok {
		return 0, 0, false
	}
	_, low, _ = core.HighLow(l.lows.Window(start, end))
	return high, low, true
}

// Info adds the values of sample i to an info panel record
func (l *PlotLine) Info(i int, info *core.Setting) {
	s := l.samples[i]
	if l.Style.OHLC() && l.Style != StylePF {
		info.Set("O", Strip(s.Open))
		info.Set("H", Strip(s.High))
		info.Set("L", Strip(s.Low))
		info.Set("C", Strip(s.Close))
		return
	}
	info.Set(l.Label, Strip(s.Value))
}

// Indicator is the ordered set of lines shown by one plot
type Indicator struct {
	Name    string
	Enabled bool
	Lines   []*PlotLine
}

// NewIndicator creates an enabled indicator
func NewIndicator(name string, lines ...*PlotLine) *Indicator {
	return &Indicator{
		Name:    name,
		Enabled: true,
		Lines:   lines,
	}
}

// Add appends lines to the indicator
func (i *Indicator) Add(lines ...*PlotLine) {
	i.Lines = append(i.Lines, lines...)
}
