package object

import (
	"errors"
	"fmt"
	"slices"

	"github.com/raykavin/chartplot/pkg/core"
	"github.com/raykavin/chartplot/pkg/plot"
)

// Chart object type names, as stored under the "Type" key
const (
	TypeBuyArrow       = "BuyArrow"
	TypeSellArrow      = "SellArrow"
	TypeCycle          = "Cycle"
	TypeFiboLine       = "FiboLine"
	TypeHorizontalLine = "HorizontalLine"
	TypeVerticalLine   = "VerticalLine"
	TypeText           = "Text"
	TypeTrendLine      = "TrendLine"
)

// ErrUnknownType is returned for a type name no constructor is registered for
var ErrUnknownType = errors.New("unknown chart object type")

var constructors = map[string]func() plot.ChartObject{
	TypeBuyArrow:       func() plot.ChartObject { return NewBuyArrow() },
	TypeSellArrow:      func() plot.ChartObject { return NewSellArrow() },
	TypeCycle:          func() plot.ChartObject { return NewCycle() },
	TypeFiboLine:       func() plot.ChartObject { return NewFiboLine() },
	TypeHorizontalLine: func() plot.ChartObject { return NewHorizontalLine() },
	TypeVerticalLine:   func() plot.ChartObject { return NewVerticalLine() },
	TypeText:           func() plot.ChartObject { return NewText() },
	TypeTrendLine:      func() plot.ChartObject { return NewTrendLine() },
}

// Types returns the known type names in sorted order
func Types() []string {
	types := make([]string, 0, len(constructors))
	for kind := range constructors {
		types = append(types, kind)
	}
	slices.Sort(types)
	return types
}

// Factory builds chart objects by type name. It implements plot.ObjectFactory.
type Factory struct{}

// NewFactory creates a factory
func NewFactory() Factory {
	return Factory{}
}

// New creates an empty object of the given type
func (Factory) New(kind string) (plot.ChartObject, error) {
	build, ok := constructors[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, kind)
	}
	return build(), nil
}

// Restore creates an object from a settings record carrying its "Type"
func (f Factory) Restore(s *core.Setting) (plot.ChartObject, error) {
	co, err := f.New(s.Get("Type"))
	if err != nil {
		return nil, err
	}

	if err := co.SetSettings(s); err != nil {
		return nil, fmt.Errorf("failed to restore %s: %w", s.Get("Name"), err)
	}
	return co, nil
}
