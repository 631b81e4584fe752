package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/raykavin/chartplot/pkg/plot"
	"github.com/raykavin/chartplot/pkg/plot/object"
)

var points []string

func buildObjectsCmd() *cobra.Command {
	objectsCmd := &cobra.Command{
		Use:   "objects",
		Short: "Manage the stored chart objects of a chart",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List the chart objects",
		RunE:  runObjectsList,
	}

	typesCmd := &cobra.Command{
		Use:   "types",
		Short: "List the chart object types",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(object.Types(), "\n"))
		},
	}

	deleteCmd := &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a chart object",
		Args:  cobra.ExactArgs(1),
		RunE:  runObjectsDelete,
	}

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete every chart object of the chart",
		RunE:  runObjectsClear,
	}

	placeCmd := &cobra.Command{
		Use:   "place <type>",
		Short: "Place a chart object by clicking at pixel points",
		Args:  cobra.ExactArgs(1),
		RunE:  runObjectsPlace,
	}
	placeCmd.Flags().StringArrayVar(&points, "at", nil, "Click position x,y (repeat for multi point objects)")
	placeCmd.MarkFlagRequired("at")

	objectsCmd.AddCommand(listCmd, typesCmd, deleteCmd, clearCmd, placeCmd)
	return objectsCmd
}

func openChart() (*chart, error) {
	cfg, log, err := loadConfig()
	if err != nil {
		return nil, err
	}
	if cfg.Storage.Path == "" {
		return nil, errors.New("no object store configured (storage.path)")
	}
	return newChart(cfg, log, nil)
}

func runObjectsList(_ *cobra.Command, _ []string) error {
	c, err := openChart()
	if err != nil {
		return err
	}
	defer c.Close()

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Name", "Type", "Date", "High", "Low"})
	for _, co := range c.plot.ChartObjects() {
		table.Append([]string{
			co.Name(),
			co.Type(),
			co.Date().Format(c.plot.Style().DateLayout),
			plot.Strip(co.High()),
			plot.Strip(co.Low()),
		})
	}
	table.Render()
	return nil
}

func runObjectsDelete(_ *cobra.Command, args []string) error {
	c, err := openChart()
	if err != nil {
		return err
	}
	defer c.Close()

	if _, ok := c.plot.ChartObject(args[0]); !ok {
		return fmt.Errorf("chart object %s not found", args[0])
	}
	c.plot.DeleteChartObject(args[0])
	return nil
}

func runObjectsClear(_ *cobra.Command, _ []string) error {
	c, err := openChart()
	if err != nil {
		return err
	}
	defer c.Close()

	c.plot.DeleteAllChartObjects()
	return nil
}

func runObjectsPlace(_ *cobra.Command, args []string) error {
	clicks, err := parsePoints(points)
	if err != nil {
		return err
	}

	c, err := openChart()
	if err != nil {
		return err
	}
	defer c.Close()

	before := len(c.plot.ChartObjects())
	c.plot.SetDrawMode(true)
	c.plot.NewChartObject(args[0])
	if len(c.plot.ChartObjects()) == before {
		return fmt.Errorf("cannot place %q (known types: %s)", args[0], strings.Join(object.Types(), ", "))
	}

	for _, p := range clicks {
		c.plot.HandleEvent(plot.Event{Kind: plot.PointerMove, X: p[0], Y: p[1]})
		c.plot.HandleEvent(plot.Event{Kind: plot.PointerPress, Button: plot.LeftButton, X: p[0], Y: p[1]})
	}

	if c.plot.MouseStatus() == plot.MouseClickWait {
		return errors.New("not enough points to place the chart object")
	}

	c.plot.SaveChartObjects()

	placed := c.plot.ChartObjects()[before]
	fmt.Printf("placed %s %s at %s %s\n", placed.Type(), placed.Name(),
		placed.Date().Format(c.plot.Style().DateLayout), plot.Strip(placed.High()))
	return nil
}

// parsePoints parses "x,y" pairs
func parsePoints(values []string) ([][2]int, error) {
	var errs []error
	out := lo.FilterMap(values, func(v string, _ int) ([2]int, bool) {
		var p [2]int
		if _, err := fmt.Sscanf(v, "%d,%d", &p[0], &p[1]); err != nil {
			errs = append(errs, fmt.Errorf("invalid point %q: %w", v, err))
			return p, false
		}
		return p, true
	})
	return out, errors.Join(errs...)
}
