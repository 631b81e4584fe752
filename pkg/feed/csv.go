// Package feed loads bar sequences from CSV files.
package feed

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/xhit/go-str2duration/v2"

	"github.com/raykavin/chartplot/pkg/core"
)

var (
	ErrInsufficientData = errors.New("insufficient data")
	ErrEmptyFeed        = errors.New("empty feed")

	defaultHeaderMap = map[string]int{
		"time": 0, "open": 1, "close": 2, "low": 3, "high": 4, "volume": 5,
	}

	// accepted layouts for non numeric time columns
	timeLayouts = []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02", "20060102"}
)

// CSVFeed holds the bars read from a CSV source, oldest first
type CSVFeed struct {
	Symbol string
	bars   []core.Bar
}

// NewCSVFeed reads the bars of symbol from a CSV file
func NewCSVFeed(symbol, file string) (*CSVFeed, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, fmt.Errorf("error opening feed: %w", err)
	}
	defer f.Close()

	return ReadCSV(symbol, f)
}

// ReadCSV reads bars from r. Files without a header row use the column
// order time,open,close,low,high,volume; otherwise columns are looked up by
// name and the volume column is optional.
func ReadCSV(symbol string, r io.Reader) (*CSVFeed, error) {
	lines, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("error reading csv: %w", err)
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyFeed, symbol)
	}

	headerMap, hasHeaders := parseHeaders(lines[0])
	if hasHeaders {
		lines = lines[1:]
	}

	bars := make([]core.Bar, 0, len(lines))
	for n, line := range lines {
		bar, err := parseBar(line, headerMap)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n+1, err)
		}
		bars = append(bars, bar)
	}

	// a sequence sorted newest first is flipped
	if len(bars) > 1 && bars[0].Time.After(bars[len(bars)-1].Time) {
		bars = lo.Reverse(bars)
	}

	return &CSVFeed{Symbol: symbol, bars: bars}, nil
}

// parseHeaders returns the column index of each field and whether the first
// row is a header row
func parseHeaders(headers []string) (map[string]int, bool) {
	if _, err := parseTime(headers[0]); err == nil {
		return defaultHeaderMap, false
	}

	headerMap := make(map[string]int, len(headers))
	for index, header := range headers {
		header = strings.ToLower(strings.TrimSpace(header))
		switch header {
		case "date", "timestamp":
			header = "time"
		}
		headerMap[header] = index
	}

	return headerMap, true
}

func parseBar(line []string, headerMap map[string]int) (core.Bar, error) {
	var (
		bar core.Bar
		err error
	)

	column := func(name string) (string, bool) {
		i, ok := headerMap[name]
		if !ok || i >= len(line) {
			return "", false
		}
		return strings.TrimSpace(line[i]), true
	}

	field, ok := column("time")
	if !ok {
		return bar, errors.New("missing time column")
	}
	if bar.Time, err = parseTime(field); err != nil {
		return bar, err
	}

	for _, f := range []struct {
		name     string
		dst      *float64
		optional bool
	}{
		{"open", &bar.Open, false},
		{"high", &bar.High, false},
		{"low", &bar.Low, false},
		{"close", &bar.Close, false},
		{"volume", &bar.Volume, true},
	} {
		field, ok := column(f.name)
		if !ok {
			if f.optional {
				continue
			}
			return bar, fmt.Errorf("missing %s column", f.name)
		}
		if *f.dst, err = strconv.ParseFloat(field, 64); err != nil {
			return bar, fmt.Errorf("invalid %s: %w", f.name, err)
		}
	}

	return bar, nil
}

// parseTime accepts unix seconds or one of the date layouts
func parseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if ts, err := strconv.ParseInt(s, 10, 64); err == nil && len(s) != len("20060102") {
		return time.Unix(ts, 0).UTC(), nil
	}

	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}

	return time.Time{}, fmt.Errorf("invalid time %q", s)
}

// Len returns the number of bars in the feed
func (c *CSVFeed) Len() int {
	return len(c.bars)
}

// Bars returns the feed as a bar sequence
func (c *CSVFeed) Bars() *core.Bars {
	return core.NewBars(c.bars)
}

// Last returns the newest limit bars
func (c *CSVFeed) Last(limit int) (*core.Bars, error) {
	if len(c.bars) < limit {
		return nil, fmt.Errorf("%w: %s", ErrInsufficientData, c.Symbol)
	}
	return core.NewBars(c.bars[len(c.bars)-limit:]), nil
}

// Limit keeps only the bars within window (e.g. "90d", "2w") of the newest
// bar. An empty window keeps everything.
func (c *CSVFeed) Limit(window string) (*CSVFeed, error) {
	if window == "" || len(c.bars) == 0 {
		return c, nil
	}

	duration, err := str2duration.ParseDuration(window)
	if err != nil {
		return nil, fmt.Errorf("invalid window %q: %w", window, err)
	}

	start := c.bars[len(c.bars)-1].Time.Add(-duration)
	c.bars = lo.Filter(c.bars, func(bar core.Bar, _ int) bool {
		return bar.Time.After(start)
	})
	return c, nil
}

// Compress merges the bars into longer periods: any str2duration length
// ("4h", "30m"), "1d" for calendar days, "1w" for weeks starting on Monday,
// "1M" for calendar months or "1y" for calendar years. Each merged bar is
// stamped with the start of its period.
func (c *CSVFeed) Compress(period string) (*CSVFeed, error) {
	truncate, err := Truncate(period)
	if err != nil {
		return nil, err
	}

	var (
		merged []core.Bar
		cur    core.Bar
	)
	for i, bar := range c.bars {
		start := truncate(bar.Time)
		if i == 0 || !start.Equal(cur.Time) {
			if i > 0 {
				merged = append(merged, cur)
			}
			cur = bar
			cur.Time = start
			continue
		}

		cur.High = math.Max(cur.High, bar.High)
		cur.Low = math.Min(cur.Low, bar.Low)
		cur.Close = bar.Close
		cur.Volume += bar.Volume
	}
	if len(c.bars) > 0 {
		merged = append(merged, cur)
	}

	c.bars = merged
	return c, nil
}

// Truncate returns the function mapping a time to the start of its period
func Truncate(period string) (func(time.Time) time.Time, error) {
	switch period {
	case "1y":
		return core.Yearly, nil
	case "1M":
		return core.Monthly, nil
	case "1d":
		return core.Daily, nil
	case "1w":
		return func(t time.Time) time.Time {
			day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
			return day.AddDate(0, 0, -((int(day.Weekday()) + 6) % 7))
		}, nil
	}

	duration, err := str2duration.ParseDuration(period)
	if err != nil || duration <= 0 {
		return nil, fmt.Errorf("invalid period %q", period)
	}
	return func(t time.Time) time.Time {
		return t.Truncate(duration)
	}, nil
}
