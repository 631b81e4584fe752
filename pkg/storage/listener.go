package storage

import (
	"fmt"

	"github.com/raykavin/chartplot/pkg/core"
	"github.com/raykavin/chartplot/pkg/logger"
	"github.com/raykavin/chartplot/pkg/plot"
)

// Persister is a plot.Listener writing chart object save and delete intents
// to an ObjectStore before forwarding every notification to the next
// listener
type Persister struct {
	plot.Listener
	store ObjectStore
	chart string
	log   logger.Logger
}

// NewPersister wraps next. A nil next drops the forwarded notifications.
func NewPersister(log logger.Logger, store ObjectStore, chart string, next plot.Listener) *Persister {
	if next == nil {
		next = plot.NopListener{}
	}
	return &Persister{
		Listener: next,
		store:    store,
		chart:    chart,
		log:      log.WithField("chart", chart),
	}
}

func (p *Persister) SaveObject(settings *core.Setting) {
	if err := p.store.Save(p.chart, settings); err != nil {
		p.log.WithError(err).Error("failed to save chart object")
	}
	p.Listener.SaveObject(settings)
}

func (p *Persister) DeleteObject(name string) {
	if err := p.store.Delete(p.chart, name); err != nil {
		p.log.WithError(err).Warnf("failed to delete chart object %s", name)
	}
	p.Listener.DeleteObject(name)
}

func (p *Persister) DeleteAllObjects() {
	if err := p.store.DeleteAll(p.chart); err != nil {
		p.log.WithError(err).Error("failed to delete chart objects")
	}
	p.Listener.DeleteAllObjects()
}

// Restore adds the stored objects of chart to the plot. Objects that fail to
// restore are logged and skipped; the number restored is returned.
func Restore(log logger.Logger, store ObjectStore, chart string, p *plot.Plot) (int, error) {
	objects, err := store.Objects(chart)
	if err != nil {
		return 0, fmt.Errorf("failed to load chart objects: %w", err)
	}

	restored := 0
	for _, settings := range objects {
		if err := p.AddChartObject(settings); err != nil {
			log.WithError(err).Warnf("skipping chart object %s", settings.Get("Name"))
			continue
		}
		restored++
	}
	return restored, nil
}
