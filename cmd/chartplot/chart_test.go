package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raykavin/chartplot/pkg/config"
	"github.com/raykavin/chartplot/pkg/logger/zerolog"
	"github.com/raykavin/chartplot/pkg/plot"
)

func writeBars(t *testing.T, n int) string {
	t.Helper()

	var b strings.Builder
	b.WriteString("date,open,high,low,close,volume\n")
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		v := 100 + float64(i%10)
		fmt.Fprintf(&b, "%s,%g,%g,%g,%g,1000\n", start.AddDate(0, 0, i).Format("2006-01-02"), v-1, v+2, v-2, v)
	}

	file := filepath.Join(t.TempDir(), "bars.csv")
	require.NoError(t, os.WriteFile(file, []byte(b.String()), 0o600))
	return file
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()

	cfg, err := config.Load("")
	require.NoError(t, err)

	cfg.Chart.Symbol = "TEST"
	cfg.Chart.Path = "charts/TEST"
	cfg.Chart.Bars = writeBars(t, 120)
	cfg.Chart.Indicators = []string{"price:candle", "sma:10", "volume"}
	cfg.Surface.Width = 300
	cfg.Surface.Height = 200
	cfg.Storage.Path = filepath.Join(t.TempDir(), "objects.db")
	return cfg
}

func TestParsePoints(t *testing.T) {
	got, err := parsePoints([]string{"10,20", "30,40"})
	require.NoError(t, err)
	assert.Equal(t, [][2]int{{10, 20}, {30, 40}}, got)

	_, err = parsePoints([]string{"10"})
	assert.Error(t, err)
}

func TestGridPeriod(t *testing.T) {
	assert.Equal(t, "1M", gridPeriod(""))
	assert.Equal(t, "1M", gridPeriod("1w"))
	assert.Equal(t, "1d", gridPeriod("4h"))
}

func TestBuildIndicator(t *testing.T) {
	cfg := testConfig(t)
	bars, err := loadBars(cfg.Chart)
	require.NoError(t, err)

	ind, err := buildIndicator(bars, []string{"price:bar", "rsi:14"})
	require.NoError(t, err)
	assert.Len(t, ind.Lines, 4)

	_, err = buildIndicator(bars, []string{"zigzag"})
	assert.Error(t, err)
}

func TestLoadBars(t *testing.T) {
	cfg := testConfig(t)

	cfg.Chart.Window = "30d"
	bars, err := loadBars(cfg.Chart)
	require.NoError(t, err)
	assert.Equal(t, 30, bars.Count())

	cfg.Chart.Window = ""
	cfg.Chart.Period = "1w"
	bars, err = loadBars(cfg.Chart)
	require.NoError(t, err)
	assert.Equal(t, 18, bars.Count())

	cfg.Chart.Bars = ""
	_, err = loadBars(cfg.Chart)
	assert.Error(t, err)
}

func TestNewChart_PlaceAndRestore(t *testing.T) {
	cfg := testConfig(t)

	c, err := newChart(cfg, zerolog.Nop(), nil)
	require.NoError(t, err)

	p := c.plot
	assert.Equal(t, 120-(300-2)/6, p.Index())

	p.SetDrawMode(true)
	p.NewChartObject("HorizontalLine")
	require.Equal(t, plot.MouseClickWait, p.MouseStatus())
	p.HandleEvent(plot.Event{Kind: plot.PointerMove, X: 150, Y: 100})
	p.HandleEvent(plot.Event{Kind: plot.PointerPress, Button: plot.LeftButton, X: 150, Y: 100})
	assert.Equal(t, plot.MouseNone, p.MouseStatus())
	p.SaveChartObjects()
	require.NoError(t, c.Close())

	again, err := newChart(cfg, zerolog.Nop(), nil)
	require.NoError(t, err)
	defer again.Close()

	objects := again.plot.ChartObjects()
	require.Len(t, objects, 1)
	assert.Equal(t, "TEST-1", objects[0].Name())
	assert.Equal(t, "HorizontalLine", objects[0].Type())
}
