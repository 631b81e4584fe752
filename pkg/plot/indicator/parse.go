package indicator

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/raykavin/chartplot/pkg/plot"
)

// ErrUnknownIndicator is returned by Parse for an unsupported name
var ErrUnknownIndicator = errors.New("unknown indicator")

var priceStyles = map[string]plot.LineStyle{
	"bar":    plot.StyleBar,
	"candle": plot.StyleCandle,
	"line":   plot.StyleLine,
}

// Parse builds an indicator from a "name[:param...]" description such as
// "ema:20", "macd:12:26:9", "bb:20:2", "pf:1:3" or "price:candle".
// Missing parameters take the usual defaults.
func Parse(spec string) (Indicator, error) {
	fields := strings.Split(strings.TrimSpace(spec), ":")
	name, args := strings.ToLower(fields[0]), fields[1:]

	arg := func(i int, def float64) (float64, error) {
		if i >= len(args) || args[i] == "" {
			return def, nil
		}
		v, err := strconv.ParseFloat(args[i], 64)
		if err != nil {
			return 0, fmt.Errorf("invalid %s parameter %q: %w", name, args[i], err)
		}
		return v, nil
	}

	params := func(defs ...float64) ([]float64, error) {
		out := make([]float64, len(defs))
		for i, def := range defs {
			v, err := arg(i, def)
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return out, nil
	}

	switch name {
	case "price":
		style := plot.StyleCandle
		if len(args) > 0 {
			s, ok := priceStyles[strings.ToLower(args[0])]
			if !ok {
				return nil, fmt.Errorf("invalid price style %q", args[0])
			}
			style = s
		}
		return Price(style), nil

	case "volume", "vol":
		return Volume("green", "red"), nil
	}

	var defaults []float64
	switch name {
	case "sma", "ema":
		defaults = []float64{20}
	case "bb", "bollinger":
		defaults = []float64{20, 2}
	case "rsi":
		defaults = []float64{14}
	case "macd":
		defaults = []float64{12, 26, 9}
	case "cci":
		defaults = []float64{20}
	case "stoch":
		defaults = []float64{14, 3, 3}
	case "supertrend":
		defaults = []float64{10, 3}
	case "pf":
		defaults = []float64{1, 3}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownIndicator, name)
	}

	p, err := params(defaults...)
	if err != nil {
		return nil, err
	}

	switch name {
	case "sma":
		return SMA(int(p[0]), "yellow"), nil
	case "ema":
		return EMA(int(p[0]), "orange"), nil
	case "bb", "bollinger":
		return Bollinger(int(p[0]), p[1], "cyan"), nil
	case "rsi":
		return RSI(int(p[0]), "yellow"), nil
	case "macd":
		return MACD(int(p[0]), int(p[1]), int(p[2]), "red", "yellow", "gray"), nil
	case "cci":
		return CCI(int(p[0]), "magenta"), nil
	case "stoch":
		return Stoch(int(p[0]), int(p[1]), int(p[2]), "red", "yellow"), nil
	case "supertrend":
		return SuperTrend(int(p[0]), p[1], "white"), nil
	default:
		return PointFigure(p[0], int(p[1]), "green", "red"), nil
	}
}
