package plot

import "image/color"

// Style holds every visual setting read at draw time. Setters on Plot mutate
// it and take effect on the next draw.
type Style struct {
	Background color.RGBA
	Border     color.RGBA
	Grid       color.RGBA
	Font       Font

	GridLines     bool
	LogScale      bool
	ScaleToScreen bool
	Crosshairs    bool
	InfoPanel     bool
	DrawMode      bool

	// StartX is the left margin in pixels before the first bar column
	StartX        int
	Pixelspace    int
	MinPixelspace int

	DateLayout string
	TimeLayout string

	// Header colours for the change readout of Bar/Candle lines
	Up        color.RGBA
	Down      color.RGBA
	Unchanged color.RGBA
}

// DefaultStyle mirrors the defaults of the desktop charting widget
func DefaultStyle() Style {
	return Style{
		Background:    MustColor("black"),
		Border:        MustColor("white"),
		Grid:          MustColor("#626262"),
		Font:          Font{Family: "Helvetica", Size: 12},
		GridLines:     true,
		Crosshairs:    true,
		InfoPanel:     true,
		StartX:        2,
		Pixelspace:    6,
		MinPixelspace: 2,
		DateLayout:    "2006-01-02",
		TimeLayout:    "15:04:05",
		Up:            MustColor("green"),
		Down:          MustColor("red"),
		Unchanged:     MustColor("blue"),
	}
}

// pixelspace returns the effective bar width, never below the configured
// minimum or 1
func (s Style) pixelspace() int {
	return max(s.Pixelspace, s.MinPixelspace, 1)
}
