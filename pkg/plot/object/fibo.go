package object

import (
	"fmt"
	"image"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/raykavin/chartplot/pkg/core"
	"github.com/raykavin/chartplot/pkg/plot"
)

// DefaultFiboLevels are the retracement ratios drawn between the 0% and
// 100% lines
var DefaultFiboLevels = []float64{0.236, 0.382, 0.5, 0.618, 0.786}

// FiboLine draws retracement levels between two (date, value) points
type FiboLine struct {
	base
	date2  time.Time
	value2 float64
	Levels []float64
	Extend bool
}

// NewFiboLine creates a red fibonacci retracement
func NewFiboLine() *FiboLine {
	return &FiboLine{
		base:   newBase(TypeFiboLine, plot.MustColor("red")),
		Levels: append([]float64(nil), DefaultFiboLevels...),
	}
}

func (f *FiboLine) High() float64 {
	if f.unplaced() {
		return noHigh
	}
	return math.Max(f.value, f.value2)
}

func (f *FiboLine) Low() float64 {
	if f.unplaced() {
		return noLow
	}
	return math.Min(f.value, f.value2)
}

// LevelValues returns the value of every drawn line from 0% to 100%,
// measured down from the high
func (f *FiboLine) LevelValues() []float64 {
	high, low := f.High(), f.Low()
	return lo.Map(f.ratios(), func(level float64, _ int) float64 {
		return high - (high-low)*level
	})
}

// ratios returns the configured levels framed by 0 and 1
func (f *FiboLine) ratios() []float64 {
	return append(append([]float64{0}, f.Levels...), 1)
}

func (f *FiboLine) Draw(ctx plot.DrawContext) {
	f.resetAreas()
	if f.placing && f.step == 0 {
		return
	}

	x1 := ctx.XFromDate(f.date)
	x2 := ctx.XFromDate(f.date2)
	if x1 == -1 || x2 == -1 {
		return
	}
	left, right := min(x1, x2), max(x1, x2)
	if f.Extend {
		right = ctx.Canvas.Width()
	}

	ratios := f.ratios()
	for i, v := range f.LevelValues() {
		y := ctx.Scaler.ConvertToY(v)
		ctx.Canvas.DrawLine(left, y, right, y, plot.Pen{Color: f.color})
		ctx.Canvas.DrawText(left, y-1,
			fmt.Sprintf("%.1f%% %s", ratios[i]*100, plot.Strip(v)),
			ctx.Style.Font, f.color)
		f.addSegment(image.Pt(left, y), image.Pt(right, y))
	}

	f.addHandle(ctx, image.Pt(x1, ctx.Scaler.ConvertToY(f.value)))
	f.addHandle(ctx, image.Pt(x2, ctx.Scaler.ConvertToY(f.value2)))
}

func (f *FiboLine) PointerClick(p image.Point, t time.Time, v float64) plot.Status {
	return f.click(p, func(step int) bool {
		if step == 0 {
			f.date, f.value = t, v
			f.date2, f.value2 = t, v
			f.host.Message("Select FiboLine low point...")
			return false
		}
		f.date2, f.value2 = t, v
		return true
	})
}

func (f *FiboLine) PointerMoving(_ image.Point, t time.Time, v float64) {
	if f.placing {
		if f.step == 1 {
			f.date2, f.value2 = t, v
			f.host.Redraw()
		}
		return
	}

	if f.status != plot.StatusMoving {
		return
	}
	if f.handle == 0 {
		f.date, f.value = t, v
	} else {
		f.date2, f.value2 = t, v
	}
	f.moved(t, v)
}

func (f *FiboLine) Settings() *core.Setting {
	s := f.settings()
	if !f.date2.IsZero() {
		s.SetTime("Date2", f.date2)
	}
	s.SetFloat("Value2", f.value2)
	s.Set("Levels", strings.Join(lo.Map(f.Levels, func(level float64, _ int) string {
		return strconv.FormatFloat(level, 'f', -1, 64)
	}), ","))
	s.SetBool("Extend", f.Extend)
	return s
}

func (f *FiboLine) SetSettings(s *core.Setting) error {
	if err := f.apply(s); err != nil {
		return err
	}
	if t, ok := s.Time("Date2"); ok {
		f.date2 = t
	}
	f.value2 = s.Float("Value2", f.value2)
	f.Extend = s.Bool("Extend", f.Extend)

	raw, ok := s.Lookup("Levels")
	if !ok {
		return nil
	}

	var bad error
	f.Levels = lo.FilterMap(strings.Split(raw, ","), func(field string, _ int) (float64, bool) {
		field = strings.TrimSpace(field)
		if field == "" {
			return 0, false
		}
		level, err := strconv.ParseFloat(field, 64)
		if err != nil {
			bad = fmt.Errorf("invalid fibonacci level %q: %w", field, err)
			return 0, false
		}
		return level, true
	})
	return bad
}
