package indicator

import (
	"fmt"

	"github.com/markcheno/go-talib"

	"github.com/raykavin/chartplot/pkg/core"
	"github.com/raykavin/chartplot/pkg/plot"
)

// MACD creates a new Moving Average Convergence Divergence indicator
// fast: the fast period
// slow: the slow period
// signal: the signal period
// colorMACD: color for the MACD line
// colorMACDSignal: color for the dashed signal line
// colorMACDHist: color for the histogram
func MACD(fast, slow, signal int, colorMACD, colorMACDSignal, colorMACDHist string) Indicator {
	return &macd{
		Fast:            fast,
		Slow:            slow,
		Signal:          signal,
		ColorMACD:       colorMACD,
		ColorMACDSignal: colorMACDSignal,
		ColorMACDHist:   colorMACDHist,
	}
}

type macd struct {
	Fast             int
	Slow             int
	Signal           int
	ColorMACD        string
	ColorMACDSignal  string
	ColorMACDHist    string
	ValuesMACD       core.Series[float64]
	ValuesMACDSignal core.Series[float64]
	ValuesMACDHist   core.Series[float64]
}

func (m macd) Warmup() int {
	return m.Slow + m.Signal - 2
}

func (m macd) Name() string {
	return fmt.Sprintf("MACD(%d, %d, %d)", m.Fast, m.Slow, m.Signal)
}

func (m *macd) Load(bars *core.Bars) {
	m.ValuesMACD, m.ValuesMACDSignal, m.ValuesMACDHist = nil, nil, nil

	warmup := m.Warmup()
	if !ValidateBars(bars, warmup+1) {
		return
	}

	macdLine, signalLine, histogram := talib.Macd(bars.Closes(), m.Fast, m.Slow, m.Signal)
	m.ValuesMACD = TrimData(macdLine, warmup)
	m.ValuesMACDSignal = TrimData(signalLine, warmup)
	m.ValuesMACDHist = TrimData(histogram, warmup)
}

func (m macd) Lines() []*plot.PlotLine {
	return []*plot.PlotLine{
		CreateLine(plot.StyleHistogram, "Hist", m.ColorMACDHist, m.ValuesMACDHist),
		CreateLine(plot.StyleLine, "MACD", m.ColorMACD, m.ValuesMACD),
		CreateLine(plot.StyleDash, "Signal", m.ColorMACDSignal, m.ValuesMACDSignal),
	}
}
