package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raykavin/chartplot/pkg/core"
)

func settings(name, kind string, value float64) *core.Setting {
	s := core.NewSetting()
	s.Set("Name", name)
	s.Set("Type", kind)
	s.SetFloat("Value", value)
	return s
}

func names(t *testing.T, store ObjectStore, chart string) []string {
	t.Helper()

	objects, err := store.Objects(chart)
	require.NoError(t, err)

	out := make([]string, 0, len(objects))
	for _, s := range objects {
		out = append(out, s.Get("Name"))
	}
	return out
}

func TestBuntStore_SaveAndObjects(t *testing.T) {
	store, err := FromMemory()
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.Save("AAPL", settings("AAPL-2", "TrendLine", 10)))
	require.NoError(t, store.Save("AAPL", settings("AAPL-1", "Text", 11)))
	require.NoError(t, store.Save("MSFT", settings("MSFT-1", "Text", 12)))

	assert.Equal(t, []string{"AAPL-2", "AAPL-1"}, names(t, store, "AAPL"))
	assert.Equal(t, []string{"MSFT-1"}, names(t, store, "MSFT"))
	assert.Empty(t, names(t, store, "IBM"))

	// replacing keeps the position and the new values
	require.NoError(t, store.Save("AAPL", settings("AAPL-2", "TrendLine", 20)))
	objects, err := store.Objects("AAPL")
	require.NoError(t, err)
	require.Len(t, objects, 2)
	assert.Equal(t, "AAPL-2", objects[0].Get("Name"))
	assert.Equal(t, 20.0, objects[0].Float("Value", 0))
	assert.Equal(t, []string{"Name", "Type", "Value"}, objects[0].Keys())
}

func TestBuntStore_SaveWithoutName(t *testing.T) {
	store, err := FromMemory()
	require.NoError(t, err)
	defer store.Close()

	assert.Error(t, store.Save("AAPL", core.NewSetting()))
}

func TestBuntStore_Delete(t *testing.T) {
	store, err := FromMemory()
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.Save("AAPL", settings("AAPL-1", "Text", 1)))
	require.NoError(t, store.Save("AAPL", settings("AAPL-2", "Text", 2)))
	require.NoError(t, store.Save("MSFT", settings("MSFT-1", "Text", 3)))

	require.NoError(t, store.Delete("AAPL", "AAPL-1"))
	assert.Equal(t, []string{"AAPL-2"}, names(t, store, "AAPL"))

	assert.ErrorIs(t, store.Delete("AAPL", "AAPL-1"), ErrObjectNotFound)

	require.NoError(t, store.DeleteAll("AAPL"))
	assert.Empty(t, names(t, store, "AAPL"))
	assert.Equal(t, []string{"MSFT-1"}, names(t, store, "MSFT"))
}

func TestBuntStore_Namer(t *testing.T) {
	store, err := FromMemory()
	require.NoError(t, err)
	defer store.Close()

	first, err := store.NewChartObjectName("AAPL")
	require.NoError(t, err)
	second, err := store.NewChartObjectName("AAPL")
	require.NoError(t, err)
	other, err := store.NewChartObjectName("MSFT")
	require.NoError(t, err)

	assert.Equal(t, "AAPL-1", first)
	assert.Equal(t, "AAPL-2", second)
	assert.Equal(t, "MSFT-1", other)
}

func TestBuntStore_Reopen(t *testing.T) {
	file := filepath.Join(t.TempDir(), "objects.db")

	store, err := FromFile(file)
	require.NoError(t, err)
	require.NoError(t, store.Save("AAPL", settings("AAPL-1", "Text", 1)))
	name, err := store.NewChartObjectName("AAPL")
	require.NoError(t, err)
	assert.Equal(t, "AAPL-1", name)
	require.NoError(t, store.Close())

	store, err = FromFile(file)
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.Save("AAPL", settings("AAPL-0", "Text", 2)))
	assert.Equal(t, []string{"AAPL-1", "AAPL-0"}, names(t, store, "AAPL"))

	name, err = store.NewChartObjectName("AAPL")
	require.NoError(t, err)
	assert.Equal(t, "AAPL-2", name)
}
