package feed

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const withHeaders = `date,open,high,low,close,volume
2024-01-01,10,12,9,11,100
2024-01-02,11,13,10,12,200
2024-01-03,12,12,8,9,300
2024-01-08,9,10,7,8,50
`

func TestReadCSV_Headers(t *testing.T) {
	feed, err := ReadCSV("TEST", strings.NewReader(withHeaders))
	require.NoError(t, err)
	require.Equal(t, 4, feed.Len())

	bars := feed.Bars()
	first := bars.Bar(0)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), first.Time)
	assert.Equal(t, 10.0, first.Open)
	assert.Equal(t, 12.0, first.High)
	assert.Equal(t, 9.0, first.Low)
	assert.Equal(t, 11.0, first.Close)
	assert.Equal(t, 100.0, first.Volume)
}

func TestReadCSV_DefaultColumns(t *testing.T) {
	// time,open,close,low,high,volume
	data := "1704067200,10,11,9,12,100\n1704153600,11,12,10,13,200\n"

	feed, err := ReadCSV("TEST", strings.NewReader(data))
	require.NoError(t, err)
	require.Equal(t, 2, feed.Len())

	bar := feed.Bars().Bar(1)
	assert.Equal(t, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), bar.Time)
	assert.Equal(t, 12.0, bar.Close)
	assert.Equal(t, 13.0, bar.High)
}

func TestReadCSV_NewestFirst(t *testing.T) {
	data := "date,open,high,low,close\n2024-01-02,2,2,2,2\n2024-01-01,1,1,1,1\n"

	feed, err := ReadCSV("TEST", strings.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 1.0, feed.Bars().Bar(0).Close)
	assert.Zero(t, feed.Bars().Bar(0).Volume)
}

func TestReadCSV_Errors(t *testing.T) {
	_, err := ReadCSV("TEST", strings.NewReader(""))
	assert.ErrorIs(t, err, ErrEmptyFeed)

	_, err = ReadCSV("TEST", strings.NewReader("date,open,high,low,close\n2024-01-01,x,1,1,1\n"))
	assert.ErrorContains(t, err, "invalid open")

	_, err = ReadCSV("TEST", strings.NewReader("date,open,high,low\n2024-01-01,1,1,1\n"))
	assert.ErrorContains(t, err, "missing close column")

	_, err = NewCSVFeed("TEST", filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
}

func TestNewCSVFeed(t *testing.T) {
	file := filepath.Join(t.TempDir(), "bars.csv")
	require.NoError(t, os.WriteFile(file, []byte(withHeaders), 0o600))

	feed, err := NewCSVFeed("TEST", file)
	require.NoError(t, err)
	assert.Equal(t, "TEST", feed.Symbol)
	assert.Equal(t, 4, feed.Len())
}

func TestLast(t *testing.T) {
	feed, err := ReadCSV("TEST", strings.NewReader(withHeaders))
	require.NoError(t, err)

	bars, err := feed.Last(2)
	require.NoError(t, err)
	assert.Equal(t, 2, bars.Count())
	assert.Equal(t, 8.0, bars.Last().Close)

	_, err = feed.Last(10)
	assert.ErrorIs(t, err, ErrInsufficientData)
}

func TestLimit(t *testing.T) {
	feed, err := ReadCSV("TEST", strings.NewReader(withHeaders))
	require.NoError(t, err)

	_, err = feed.Limit("6d")
	require.NoError(t, err)
	require.Equal(t, 2, feed.Len())
	assert.Equal(t, 3, feed.Bars().Bar(0).Time.Day())

	_, err = feed.Limit("soon")
	assert.Error(t, err)
}

func TestCompress_Weekly(t *testing.T) {
	feed, err := ReadCSV("TEST", strings.NewReader(withHeaders))
	require.NoError(t, err)

	_, err = feed.Compress("1w")
	require.NoError(t, err)
	require.Equal(t, 2, feed.Len())

	week := feed.Bars().Bar(0)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), week.Time)
	assert.Equal(t, 10.0, week.Open)
	assert.Equal(t, 13.0, week.High)
	assert.Equal(t, 8.0, week.Low)
	assert.Equal(t, 9.0, week.Close)
	assert.Equal(t, 600.0, week.Volume)

	assert.Equal(t, time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC), feed.Bars().Bar(1).Time)
}

func TestTruncate(t *testing.T) {
	at := time.Date(2024, 3, 14, 15, 27, 0, 0, time.UTC)

	month, err := Truncate("1M")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), month(at))

	week, err := Truncate("1w")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC), week(at))

	hours, err := Truncate("4h")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 14, 12, 0, 0, 0, time.UTC), hours(at))

	year, err := Truncate("1y")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), year(at))

	_, err = Truncate("often")
	assert.Error(t, err)
}
