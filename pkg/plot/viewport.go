package plot

import (
	"time"

	"github.com/raykavin/chartplot/pkg/core"
)

// BarSeries is the read-only bar sequence the plot draws against
type BarSeries interface {
	Count() int
	Bar(i int) core.Bar
	// Index returns the position of the bar with the timestamp or core.NotFound
	Index(t time.Time) int
}

// Viewport converts the scroll position and zoom into pixel columns
type Viewport struct {
	StartX     int
	StartIndex int
	Pixelspace int
	Width      int
	Height     int
}

// VisibleBars returns how many bar columns fit on the surface
func (v Viewport) VisibleBars() int {
	if v.Pixelspace <= 0 {
		return 0
	}
	return v.Width / v.Pixelspace
}

// FirstSample returns the index of the line sample drawn in the first column.
// It is negative when the line starts after the first visible bar.
func (v Viewport) FirstSample(lineLen, barCount int) int {
	return lineLen - barCount + v.StartIndex
}

// Columns calls fn for every drawable sample of a line of lineLen samples,
// with the x position of its column. Negative sample indices are skipped
// while x still advances, so short lines stay right-aligned.
func (v Viewport) Columns(lineLen, barCount int, fn func(x, sample int)) {
	if v.Pixelspace <= 0 {
		return
	}

	sample := v.FirstSample(lineLen, barCount)
	for x := v.StartX; x < v.Width && sample < lineLen; x += v.Pixelspace {
		if sample > -1 {
			fn(x, sample)
		}
		sample++
	}
}

// XToIndex maps a pixel column to a bar index clamped to the visible bars
func (v Viewport) XToIndex(x, barCount int) int {
	if v.Pixelspace <= 0 {
		return v.StartIndex
	}

	i := x/v.Pixelspace + v.StartIndex
	if i >= barCount {
		i = barCount - 1
	}
	if i < v.StartIndex {
		i = v.StartIndex
	}
	return i
}

// IndexToX maps a bar index to the x position of its column
func (v Viewport) IndexToX(i int) int {
	return v.StartX + (i-v.StartIndex)*v.Pixelspace
}

// XFromDate maps a timestamp to a pixel column, or -1 when the bar sequence
// does not contain it
func (v Viewport) XFromDate(bars BarSeries, t time.Time) int {
	if bars == nil {
		return -1
	}

	i := bars.Index(t)
	if i == core.NotFound {
		return -1
	}
	return v.IndexToX(i)
}
