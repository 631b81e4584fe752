package main

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var infoX int

func buildInfoCmd() *cobra.Command {
	infoCmd := &cobra.Command{
		Use:   "info",
		Short: "Print the info panel values at a pixel column",
		RunE:  runInfo,
	}

	infoCmd.Flags().IntVarP(&infoX, "x", "x", -1, "Pixel column (default is the newest bar)")
	infoCmd.Flags().IntVarP(&index, "index", "i", -1, "Oldest visible bar (default shows the newest bars)")

	return infoCmd
}

func runInfo(_ *cobra.Command, _ []string) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}

	c, err := newChart(cfg, log, nil)
	if err != nil {
		return err
	}
	defer c.Close()

	if index >= 0 {
		c.plot.SetIndex(index)
	}

	x := infoX
	if x < 0 {
		style := c.plot.Style()
		x = style.StartX + (c.bars.Count()-1-c.plot.Index())*c.plot.Pixelspace()
	}

	info := c.plot.Info(x)
	if info == nil {
		return fmt.Errorf("no info at x=%d", x)
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Field", "Value"})
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})
	for _, key := range info.Keys() {
		table.Append([]string{key, info.Get(key)})
	}
	table.Render()

	return nil
}
