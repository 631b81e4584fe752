// Package config loads the chartplot configuration using Viper
package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/raykavin/chartplot/pkg/plot"
)

// EnvPrefix prefixes every environment override, e.g. CHARTPLOT_CHART_SYMBOL
const EnvPrefix = "CHARTPLOT"

// Config is the whole configuration file
type Config struct {
	Chart   ChartConfig   `mapstructure:"chart"`
	Surface SurfaceConfig `mapstructure:"surface"`
	Style   StyleConfig   `mapstructure:"style"`
	Storage StorageConfig `mapstructure:"storage"`
	Log     LogConfig     `mapstructure:"log"`
}

// ChartConfig selects the bars and the lines drawn over them
type ChartConfig struct {
	Symbol string `mapstructure:"symbol"`
	// Path identifies the chart; chart objects are stored under its base name
	Path string `mapstructure:"path"`
	Bars string `mapstructure:"bars"`
	// Window keeps only the newest bars, e.g. "180d"
	Window string `mapstructure:"window"`
	// Period compresses the bars, e.g. "1w" or "1M"
	Period     string   `mapstructure:"period"`
	Indicators []string `mapstructure:"indicators"`
}

type SurfaceConfig struct {
	Width  int `mapstructure:"width"`
	Height int `mapstructure:"height"`
}

// StyleConfig mirrors plot.Style with colours as strings
type StyleConfig struct {
	Background    string  `mapstructure:"background"`
	Border        string  `mapstructure:"border"`
	Grid          string  `mapstructure:"grid"`
	FontFamily    string  `mapstructure:"font_family"`
	FontSize      float64 `mapstructure:"font_size"`
	GridLines     bool    `mapstructure:"grid_lines"`
	LogScale      bool    `mapstructure:"log_scale"`
	ScaleToScreen bool    `mapstructure:"scale_to_screen"`
	Crosshairs    bool    `mapstructure:"crosshairs"`
	InfoPanel     bool    `mapstructure:"info_panel"`
	Pixelspace    int     `mapstructure:"pixelspace"`
	MinPixelspace int     `mapstructure:"min_pixelspace"`
	DateLayout    string  `mapstructure:"date_layout"`
	TimeLayout    string  `mapstructure:"time_layout"`
	Up            string  `mapstructure:"up"`
	Down          string  `mapstructure:"down"`
	Unchanged     string  `mapstructure:"unchanged"`
}

type StorageConfig struct {
	Path string `mapstructure:"path"`
}

type LogConfig struct {
	Level   string `mapstructure:"level"`
	Colored bool   `mapstructure:"colored"`
	JSON    bool   `mapstructure:"json"`
}

func setDefaults(v *viper.Viper) {
	style := plot.DefaultStyle()

	v.SetDefault("chart.symbol", "")
	v.SetDefault("chart.path", "")
	v.SetDefault("chart.bars", "")
	v.SetDefault("chart.window", "")
	v.SetDefault("chart.period", "")
	v.SetDefault("chart.indicators", []string{"price:candle", "sma:20"})

	v.SetDefault("surface.width", 1024)
	v.SetDefault("surface.height", 600)

	v.SetDefault("style.background", plot.FormatColor(style.Background))
	v.SetDefault("style.border", plot.FormatColor(style.Border))
	v.SetDefault("style.grid", plot.FormatColor(style.Grid))
	v.SetDefault("style.font_family", style.Font.Family)
	v.SetDefault("style.font_size", style.Font.Size)
	v.SetDefault("style.grid_lines", style.GridLines)
	v.SetDefault("style.log_scale", style.LogScale)
	v.SetDefault("style.scale_to_screen", style.ScaleToScreen)
	v.SetDefault("style.crosshairs", style.Crosshairs)
	v.SetDefault("style.info_panel", style.InfoPanel)
	v.SetDefault("style.pixelspace", style.Pixelspace)
	v.SetDefault("style.min_pixelspace", style.MinPixelspace)
	v.SetDefault("style.date_layout", style.DateLayout)
	v.SetDefault("style.time_layout", style.TimeLayout)
	v.SetDefault("style.up", plot.FormatColor(style.Up))
	v.SetDefault("style.down", plot.FormatColor(style.Down))
	v.SetDefault("style.unchanged", plot.FormatColor(style.Unchanged))

	v.SetDefault("storage.path", "chartplot.db")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.colored", true)
	v.SetDefault("log.json", false)
}

func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the configuration file at path, falling back to defaults for
// missing keys. An empty path loads defaults and environment overrides only.
func Load(path string) (*Config, error) {
	v := newViper()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func viperDefaults() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	return v
}

// WriteDefault creates a configuration file holding the defaults
func WriteDefault(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("could not create configuration directory: %w", err)
		}
	}

	v := viperDefaults()
	v.SetConfigFile(path)
	if err := v.WriteConfig(); err != nil {
		return fmt.Errorf("could not save default configuration: %w", err)
	}
	return nil
}

// Validate checks the values that cannot be corrected at draw time
func (c Config) Validate() error {
	var errs []error
	if c.Surface.Width <= 0 || c.Surface.Height <= 0 {
		errs = append(errs, fmt.Errorf("invalid surface size %dx%d", c.Surface.Width, c.Surface.Height))
	}
	if _, err := c.Style.PlotStyle(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// PlotStyle converts the style section into a plot.Style
func (s StyleConfig) PlotStyle() (plot.Style, error) {
	style := plot.DefaultStyle()

	var err error
	parse := func(key, value string, dst *color.RGBA) {
		if err != nil {
			return
		}
		c, perr := plot.ParseColor(value)
		if perr != nil {
			err = fmt.Errorf("style.%s: %w", key, perr)
			return
		}
		*dst = c
	}

	parse("background", s.Background, &style.Background)
	parse("border", s.Border, &style.Border)
	parse("grid", s.Grid, &style.Grid)
	parse("up", s.Up, &style.Up)
	parse("down", s.Down, &style.Down)
	parse("unchanged", s.Unchanged, &style.Unchanged)
	if err != nil {
		return plot.Style{}, err
	}

	style.Font = plot.Font{Family: s.FontFamily, Size: s.FontSize}
	style.GridLines = s.GridLines
	style.LogScale = s.LogScale
	style.ScaleToScreen = s.ScaleToScreen
	style.Crosshairs = s.Crosshairs
	style.InfoPanel = s.InfoPanel
	style.Pixelspace = s.Pixelspace
	style.MinPixelspace = s.MinPixelspace
	style.DateLayout = s.DateLayout
	style.TimeLayout = s.TimeLayout

	return style, nil
}
