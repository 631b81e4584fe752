package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/tidwall/buntdb"

	"github.com/raykavin/chartplot/pkg/core"
)

const (
	objectPrefix  = "object:"
	counterPrefix = "counter:"
	orderIndex    = "object_order"
)

// record is the stored form of a chart object
type record struct {
	Seq      int64         `json:"seq"`
	Settings *core.Setting `json:"settings"`
}

// BuntStore implements ObjectStore and plot.Namer using BuntDB
type BuntStore struct {
	lastSeq int64
	db      *buntdb.DB
}

// FromMemory creates an in-memory store
func FromMemory() (*BuntStore, error) {
	return NewBuntStore(":memory:")
}

// FromFile creates a file-based store
func FromFile(file string) (*BuntStore, error) {
	return NewBuntStore(file)
}

// NewBuntStore opens a BuntDB store
func NewBuntStore(sourceFile string) (*BuntStore, error) {
	db, err := buntdb.Open(sourceFile)
	if err != nil {
		return nil, fmt.Errorf("failed to open buntdb: %w", err)
	}

	err = db.CreateIndex(orderIndex, objectPrefix+"*", buntdb.IndexJSON("seq"))
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create index: %w", err)
	}

	store := &BuntStore{db: db}

	// continue the save sequence of a reopened file
	err = db.View(func(tx *buntdb.Tx) error {
		return tx.Descend(orderIndex, func(_, value string) bool {
			var r record
			if json.Unmarshal([]byte(value), &r) == nil {
				store.lastSeq = r.Seq
			}
			return false
		})
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to read sequence: %w", err)
	}

	return store, nil
}

func objectKey(chart, name string) string {
	return objectPrefix + chart + ":" + name
}

func (b *BuntStore) nextSeq() int64 {
	return atomic.AddInt64(&b.lastSeq, 1)
}

// Save inserts or replaces the settings of a chart object. A replaced object
// keeps its original position.
func (b *BuntStore) Save(chart string, settings *core.Setting) error {
	name, err := objectName(settings)
	if err != nil {
		return err
	}

	return b.db.Update(func(tx *buntdb.Tx) error {
		key := objectKey(chart, name)

		r := record{Settings: settings}
		if value, err := tx.Get(key); err == nil {
			var existing record
			if err := json.Unmarshal([]byte(value), &existing); err == nil {
				r.Seq = existing.Seq
			}
		}
		if r.Seq == 0 {
			r.Seq = b.nextSeq()
		}

		content, err := json.Marshal(r)
		if err != nil {
			return fmt.Errorf("failed to marshal chart object: %w", err)
		}

		if _, _, err = tx.Set(key, string(content), nil); err != nil {
			return fmt.Errorf("failed to store chart object: %w", err)
		}
		return nil
	})
}

// Delete removes a chart object
func (b *BuntStore) Delete(chart, name string) error {
	return b.db.Update(func(tx *buntdb.Tx) error {
		_, err := tx.Delete(objectKey(chart, name))
		if errors.Is(err, buntdb.ErrNotFound) {
			return fmt.Errorf("%w: %s", ErrObjectNotFound, name)
		}
		if err != nil {
			return fmt.Errorf("failed to delete chart object: %w", err)
		}
		return nil
	})
}

// DeleteAll removes every chart object of chart
func (b *BuntStore) DeleteAll(chart string) error {
	return b.db.Update(func(tx *buntdb.Tx) error {
		var keys []string
		err := tx.AscendKeys(objectKey(chart, "*"), func(key, _ string) bool {
			keys = append(keys, key)
			return true
		})
		if err != nil {
			return fmt.Errorf("failed to iterate over chart objects: %w", err)
		}

		for _, key := range keys {
			if _, err := tx.Delete(key); err != nil {
				return fmt.Errorf("failed to delete chart object: %w", err)
			}
		}
		return nil
	})
}

// Objects returns the settings of every chart object of chart
func (b *BuntStore) Objects(chart string) ([]*core.Setting, error) {
	objects := make([]*core.Setting, 0)
	prefix := objectKey(chart, "")

	err := b.db.View(func(tx *buntdb.Tx) error {
		return tx.Ascend(orderIndex, func(key, value string) bool {
			if !strings.HasPrefix(key, prefix) {
				return true
			}

			var r record
			if err := json.Unmarshal([]byte(value), &r); err != nil || r.Settings == nil {
				return true
			}
			objects = append(objects, r.Settings)
			return true
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to iterate over chart objects: %w", err)
	}

	return objects, nil
}

// NewChartObjectName hands out <symbol>-<n> names from a persisted counter so
// names stay unique across sessions
func (b *BuntStore) NewChartObjectName(symbol string) (string, error) {
	var next int
	err := b.db.Update(func(tx *buntdb.Tx) error {
		key := counterPrefix + symbol

		value, err := tx.Get(key)
		if err != nil && !errors.Is(err, buntdb.ErrNotFound) {
			return err
		}
		if value != "" {
			if next, err = strconv.Atoi(value); err != nil {
				return fmt.Errorf("corrupt counter %q: %w", key, err)
			}
		}

		next++
		_, _, err = tx.Set(key, strconv.Itoa(next), nil)
		return err
	})
	if err != nil {
		return "", fmt.Errorf("failed to name chart object: %w", err)
	}

	return fmt.Sprintf("%s-%d", symbol, next), nil
}

// Close closes the database
func (b *BuntStore) Close() error {
	if b.db != nil {
		return b.db.Close()
	}
	return nil
}
