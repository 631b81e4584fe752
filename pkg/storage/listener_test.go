package storage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raykavin/chartplot/pkg/core"
	"github.com/raykavin/chartplot/pkg/logger/zerolog"
	"github.com/raykavin/chartplot/pkg/plot"
	"github.com/raykavin/chartplot/pkg/plot/object"
	"github.com/raykavin/chartplot/pkg/plot/plottest"
)

func horizontal(name string, value float64) *core.Setting {
	s := core.NewSetting()
	s.Set("Name", name)
	s.Set("Type", object.TypeHorizontalLine)
	s.Set("Plot", "Bars")
	s.Set("Color", "#ff0000")
	s.SetTime("Date", time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC))
	s.SetFloat("Value", value)
	return s
}

func newPersistedPlot(t *testing.T) (*plot.Plot, *BuntStore, *plottest.Listener) {
	t.Helper()

	store, err := FromMemory()
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	listener := &plottest.Listener{}
	p := plot.NewPlot(zerolog.Nop(), plottest.Surfaces,
		plot.WithListener(NewPersister(zerolog.Nop(), store, "AAPL", listener)),
		plot.WithObjectFactory(object.NewFactory()),
		plot.WithNamer(store),
		plot.WithChartPath("charts/AAPL"),
	)
	return p, store, listener
}

func TestRestore(t *testing.T) {
	p, store, _ := newPersistedPlot(t)

	require.NoError(t, store.Save("AAPL", horizontal("AAPL-1", 10)))
	require.NoError(t, store.Save("AAPL", horizontal("AAPL-2", 20)))
	bad := horizontal("AAPL-3", 30)
	bad.Set("Type", "Spiral")
	require.NoError(t, store.Save("AAPL", bad))

	n, err := Restore(zerolog.Nop(), store, "AAPL", p)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	objects := p.ChartObjects()
	require.Len(t, objects, 2)
	assert.Equal(t, "AAPL-1", objects[0].Name())
	assert.Equal(t, 20.0, objects[1].High())
}

func TestPersister_DeleteAndSave(t *testing.T) {
	p, store, listener := newPersistedPlot(t)

	require.NoError(t, store.Save("AAPL", horizontal("AAPL-1", 10)))
	require.NoError(t, store.Save("AAPL", horizontal("AAPL-2", 20)))
	_, err := Restore(zerolog.Nop(), store, "AAPL", p)
	require.NoError(t, err)

	p.DeleteChartObject("AAPL-1")
	assert.Equal(t, []string{"AAPL-1"}, listener.Deleted)
	assert.Equal(t, []string{"AAPL-2"}, names(t, store, "AAPL"))

	p.SaveChartObject("AAPL-2")
	require.Len(t, listener.Saved, 1)
	assert.Equal(t, "AAPL-2", listener.Saved[0].Get("Name"))

	p.DeleteAllChartObjects()
	assert.Equal(t, 1, listener.DeletedAll)
	assert.Empty(t, names(t, store, "AAPL"))
}

func TestPersister_NilNext(t *testing.T) {
	store, err := FromMemory()
	require.NoError(t, err)
	defer store.Close()

	persister := NewPersister(zerolog.Nop(), store, "AAPL", nil)
	persister.SaveObject(horizontal("AAPL-1", 1))
	persister.StatusMessage("ignored")

	assert.Equal(t, []string{"AAPL-1"}, names(t, store, "AAPL"))
}
