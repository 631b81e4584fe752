// Package storage persists chart object settings outside the plot.
package storage

import (
	"errors"

	"github.com/raykavin/chartplot/pkg/core"
)

// ErrObjectNotFound is returned when deleting an object that was never stored
var ErrObjectNotFound = errors.New("chart object not found")

// ObjectStore keeps chart object settings grouped by chart. Settings are
// identified by their "Name" key and returned in the order they were first
// saved.
type ObjectStore interface {
	Save(chart string, settings *core.Setting) error
	Delete(chart, name string) error
	DeleteAll(chart string) error
	Objects(chart string) ([]*core.Setting, error)
	Close() error
}

func objectName(settings *core.Setting) (string, error) {
	name := settings.Get("Name")
	if name == "" {
		return "", errors.New("chart object settings without name")
	}
	return name, nil
}
