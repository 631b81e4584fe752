package indicator

import (
	"fmt"

	"github.com/markcheno/go-talib"

	"github.com/raykavin/chartplot/pkg/core"
	"github.com/raykavin/chartplot/pkg/plot"
)

// Stoch creates a new Stochastic Oscillator indicator
// fastK: the fast %K period
// slowK: the slow %K period
// slowD: the slow %D period
// colorK: color for the %K line
// colorD: color for the dashed %D line
func Stoch(fastK, slowK, slowD int, colorK, colorD string) Indicator {
	return &stoch{
		FastK:  fastK,
		SlowK:  slowK,
		SlowD:  slowD,
		ColorK: colorK,
		ColorD: colorD,
	}
}

type stoch struct {
	FastK   int
	SlowK   int
	SlowD   int
	ColorK  string
	ColorD  string
	ValuesK core.Series[float64]
	ValuesD core.Series[float64]
}

func (s stoch) Warmup() int {
	return s.FastK + s.SlowK + s.SlowD - 3
}

func (s stoch) Name() string {
	return fmt.Sprintf("STOCH(%d, %d, %d)", s.FastK, s.SlowK, s.SlowD)
}

func (s *stoch) Load(bars *core.Bars) {
	s.ValuesK, s.ValuesD = nil, nil

	warmup := s.Warmup()
	if !ValidateBars(bars, warmup+1) {
		return
	}

	k, d := talib.Stoch(
		bars.Highs(), bars.Lows(), bars.Closes(), s.FastK, s.SlowK, talib.SMA, s.SlowD, talib.SMA,
	)

	s.ValuesK = TrimData(k, warmup)
	s.ValuesD = TrimData(d, warmup)
}

func (s stoch) Lines() []*plot.PlotLine {
	return []*plot.PlotLine{
		CreateLine(plot.StyleLine, "%K", s.ColorK, s.ValuesK),
		CreateLine(plot.StyleDash, "%D", s.ColorD, s.ValuesD),
	}
}
