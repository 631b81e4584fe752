package main

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/raykavin/chartplot/pkg/canvas"
	"github.com/raykavin/chartplot/pkg/config"
	"github.com/raykavin/chartplot/pkg/core"
	"github.com/raykavin/chartplot/pkg/feed"
	"github.com/raykavin/chartplot/pkg/logger"
	"github.com/raykavin/chartplot/pkg/plot"
	"github.com/raykavin/chartplot/pkg/plot/indicator"
	"github.com/raykavin/chartplot/pkg/plot/object"
	"github.com/raykavin/chartplot/pkg/storage"
)

// chart bundles a plot with the collaborators it was built from
type chart struct {
	plot  *plot.Plot
	bars  *core.Bars
	store *storage.BuntStore
}

func (c *chart) Close() error {
	if c.store == nil {
		return nil
	}
	return c.store.Close()
}

// loadBars reads, trims and compresses the configured bar file
func loadBars(cfg config.ChartConfig) (*core.Bars, error) {
	if cfg.Bars == "" {
		return nil, errors.New("no bar file configured (chart.bars or --bars)")
	}

	f, err := feed.NewCSVFeed(cfg.Symbol, cfg.Bars)
	if err != nil {
		return nil, err
	}
	if cfg.Period != "" {
		if f, err = f.Compress(cfg.Period); err != nil {
			return nil, err
		}
	}
	if f, err = f.Limit(cfg.Window); err != nil {
		return nil, err
	}
	if f.Len() == 0 {
		return nil, fmt.Errorf("%w: %s", feed.ErrInsufficientData, cfg.Bars)
	}

	return f.Bars(), nil
}

// buildIndicator composes the configured indicator lines
func buildIndicator(bars *core.Bars, specs []string) (*plot.Indicator, error) {
	indicators := make([]indicator.Indicator, 0, len(specs))
	for _, spec := range specs {
		ind, err := indicator.Parse(spec)
		if err != nil {
			return nil, err
		}
		indicators = append(indicators, ind)
	}
	return indicator.Compose("Bars", bars, indicators...), nil
}

// openStore opens the chart object store, or returns nil when none is
// configured
func openStore(cfg *config.Config) (*storage.BuntStore, error) {
	if cfg.Storage.Path == "" {
		return nil, nil
	}
	return storage.FromFile(cfg.Storage.Path)
}

// chartName is the key chart objects are stored under
func chartName(cfg *config.Config) string {
	return filepath.Base(cfg.Chart.Path)
}

// newChart builds a sized, scrolled plot with its indicator and stored chart
// objects
func newChart(cfg *config.Config, log logger.Logger, listener plot.Listener) (*chart, error) {
	style, err := cfg.Style.PlotStyle()
	if err != nil {
		return nil, err
	}

	bars, err := loadBars(cfg.Chart)
	if err != nil {
		return nil, err
	}

	ind, err := buildIndicator(bars, cfg.Chart.Indicators)
	if err != nil {
		return nil, err
	}

	store, err := openStore(cfg)
	if err != nil {
		return nil, err
	}

	options := []plot.Option{
		plot.WithStyle(style),
		plot.WithObjectFactory(object.NewFactory()),
		plot.WithChartPath(cfg.Chart.Path),
	}
	if store != nil {
		listener = storage.NewPersister(log, store, chartName(cfg), listener)
		options = append(options, plot.WithNamer(store))
	}
	if listener != nil {
		options = append(options, plot.WithListener(listener))
	}

	p := plot.NewPlot(log, canvas.Factory, options...)
	p.SetData(bars)
	p.SetIndicator(ind)

	if truncate, err := feed.Truncate(gridPeriod(cfg.Chart.Period)); err == nil {
		p.SetXGrid(bars.Boundaries(truncate))
	}

	c := &chart{plot: p, bars: bars, store: store}
	if store != nil {
		n, err := storage.Restore(log, store, chartName(cfg), p)
		if err != nil {
			c.Close()
			return nil, err
		}
		log.Debugf("restored %d chart objects", n)
	}

	if err := p.Resize(cfg.Surface.Width, cfg.Surface.Height); err != nil {
		c.Close()
		return nil, err
	}

	// show the newest bars
	visible := (cfg.Surface.Width - style.StartX) / p.Pixelspace()
	p.SetIndex(bars.Count() - visible)

	return c, nil
}

// gridPeriod picks the vertical grid spacing for a bar period
func gridPeriod(period string) string {
	switch period {
	case "", "1d", "1w", "1M":
		return "1M"
	default:
		return "1d"
	}
}
