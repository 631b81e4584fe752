package core

import (
	"fmt"
	"strconv"
	"time"
)

// NotFound is returned by Bars.Index when a timestamp is not part of the sequence
const NotFound = -1

// Bar represents one time step of the underlying series with OHLCV data
type Bar struct {
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// GetTime returns the timestamp of the bar
func (b Bar) GetTime() time.Time { return b.Time }

// GetOpen returns the opening price of the bar
func (b Bar) GetOpen() float64 { return b.Open }

// GetHigh returns the highest price during the bar period
func (b Bar) GetHigh() float64 { return b.High }

// GetLow returns the lowest price during the bar period
func (b Bar) GetLow() float64 { return b.Low }

// GetClose returns the closing price of the bar
func (b Bar) GetClose() float64 { return b.Close }

// GetVolume returns the traded volume during the bar period
func (b Bar) GetVolume() float64 { return b.Volume }

// IsEmpty checks if the bar contains no significant data
func (b Bar) IsEmpty() bool { return b.Time.IsZero() && b.Close == 0 && b.Open == 0 && b.Volume == 0 }

// DateString formats the bar date with the given layout
func (b Bar) DateString(layout string) string { return b.Time.Format(layout) }

// ToSlice converts a bar to a string slice for serialization
// with the specified decimal precision
func (b Bar) ToSlice(precision int) []string {
	return []string{
		fmt.Sprintf("%d", b.Time.Unix()),
		strconv.FormatFloat(b.Open, 'f', precision, 64),
		strconv.FormatFloat(b.Close, 'f', precision, 64),
		strconv.FormatFloat(b.Low, 'f', precision, 64),
		strconv.FormatFloat(b.High, 'f', precision, 64),
		strconv.FormatFloat(b.Volume, 'f', precision, 64),
	}
}

// Bars is an ordered, read-only sequence of bars where index 0 is the oldest.
// Bars are immutable once stored.
type Bars struct {
	bars  []Bar
	index map[int64]int
}

// NewBars creates a bar sequence. The slice must be sorted from oldest to newest.
func NewBars(bars []Bar) *Bars {
	b := &Bars{
		bars:  make([]Bar, len(bars)),
		index: make(map[int64]int, len(bars)),
	}

	copy(b.bars, bars)
	for i, bar := range b.bars {
		b.index[bar.Time.UnixNano()] = i
	}

	return b
}

// Count returns the number of bars in the sequence
func (b *Bars) Count() int {
	if b == nil {
		return 0
	}
	return len(b.bars)
}

// Bar returns the bar at position i
func (b *Bars) Bar(i int) Bar {
	return b.bars[i]
}

// Time returns the timestamp of the bar at position i
func (b *Bars) Time(i int) time.Time {
	return b.bars[i].Time
}

// Last returns the most recent bar
func (b *Bars) Last() Bar {
	return b.bars[len(b.bars)-1]
}

// Index returns the position of the bar with the given timestamp or NotFound
func (b *Bars) Index(t time.Time) int {
	if b == nil {
		return NotFound
	}

	if i, ok := b.index[t.UnixNano()]; ok {
		return i
	}

	return NotFound
}

// Slice returns a copy of the underlying bars
func (b *Bars) Slice() []Bar {
	out := make([]Bar, b.Count())
	copy(out, b.rows())
	return out
}

// Opens returns the open column
func (b *Bars) Opens() Series[float64] {
	return b.column(Bar.GetOpen)
}

// Highs returns the high column
func (b *Bars) Highs() Series[float64] {
	return b.column(Bar.GetHigh)
}

// Lows returns the low column
func (b *Bars) Lows() Series[float64] {
	return b.column(Bar.GetLow)
}

// Closes returns the close column
func (b *Bars) Closes() Series[float64] {
	return b.column(Bar.GetClose)
}

// Volumes returns the volume column
func (b *Bars) Volumes() Series[float64] {
	return b.column(Bar.GetVolume)
}

// Times returns the timestamps of every bar
func (b *Bars) Times() []time.Time {
	times := make([]time.Time, b.Count())
	for i, bar := range b.rows() {
		times[i] = bar.Time
	}
	return times
}

// Boundaries returns the indices of the bars that start a new period, where a
// period is defined by the truncate function (e.g. first bar of each month).
// The first bar is never reported.
func (b *Bars) Boundaries(truncate func(time.Time) time.Time) []int {
	boundaries := make([]int, 0)
	for i := 1; i < b.Count(); i++ {
		if !truncate(b.bars[i].Time).Equal(truncate(b.bars[i-1].Time)) {
			boundaries = append(boundaries, i)
		}
	}
	return boundaries
}

func (b *Bars) column(get func(Bar) float64) Series[float64] {
	values := make(Series[float64], b.Count())
	for i, bar := range b.rows() {
		values[i] = get(bar)
	}
	return values
}

func (b *Bars) rows() []Bar {
	if b == nil {
		return nil
	}
	return b.bars
}
