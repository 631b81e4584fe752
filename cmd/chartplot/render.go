package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/raykavin/chartplot/pkg/canvas"
)

// Render command flags
var (
	outputFile string
	index      int
	pixelspace int
	crosshair  []int
)

func buildRenderCmd() *cobra.Command {
	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "Render the chart to a PNG file",
		RunE:  runRender,
	}

	renderCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file path (e.g. ./chart.png)")
	renderCmd.Flags().IntVarP(&index, "index", "i", -1, "Oldest visible bar (default shows the newest bars)")
	renderCmd.Flags().IntVarP(&pixelspace, "pixelspace", "p", 0, "Bar width in pixels, overrides style.pixelspace")
	renderCmd.Flags().IntSliceVar(&crosshair, "crosshair", nil, "Draw the crosshair at x,y")

	renderCmd.MarkFlagRequired("output")

	return renderCmd
}

func runRender(_ *cobra.Command, _ []string) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}
	if pixelspace > 0 {
		cfg.Style.Pixelspace = pixelspace
	}

	c, err := newChart(cfg, log, nil)
	if err != nil {
		return err
	}
	defer c.Close()

	if index >= 0 {
		c.plot.SetIndex(index)
	}

	switch len(crosshair) {
	case 0:
		c.plot.Draw()
	case 2:
		c.plot.SetCrosshairs(true)
		c.plot.CrossHair(crosshair[0], crosshair[1], true)
	default:
		return errors.New("--crosshair takes x,y")
	}

	return save(c, outputFile)
}

func save(c *chart, file string) error {
	surface, ok := c.plot.Surface().(*canvas.Surface)
	if !ok {
		return errors.New("nothing rendered")
	}

	f, err := os.Create(file)
	if err != nil {
		return fmt.Errorf("error creating %s: %w", file, err)
	}
	defer f.Close()

	if err := surface.Save(f); err != nil {
		return err
	}

	fmt.Printf("%d bars written to %s [%dx%d]\n", c.bars.Count(), file, surface.Width(), surface.Height())
	return nil
}
