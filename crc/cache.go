package crc

import (
	"strconv"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/bemasher/crcengine/bitutil"
)

type tableKey struct {
	poly      uint64
	width     int
	reflected bool
}

func (k tableKey) String() string {
	return strconv.FormatUint(k.poly, 16) + "/" + strconv.Itoa(k.width) + "/" + strconv.FormatBool(k.reflected)
}

// TableCache shares built tables between computations. Tables are immutable
// once stored, so readers need no locking. Concurrent requests for the same
// key wait on a single build.
type TableCache struct {
	tables sync.Map // tableKey -> *Table
	group  singleflight.Group

	buildsMu sync.Mutex
	builds   int
}

func NewTableCache() *TableCache {
	return &TableCache{}
}

var defaultCache = NewTableCache()

// Get returns the table for poly, width and reflected, building it on first use.
func (c *TableCache) Get(poly uint64, width int, reflected bool) (*Table, error) {
	if err := checkWidth(width); err != nil {
		return nil, err
	}

	key := tableKey{poly & bitutil.Mask(width), width, reflected}
	if t, ok := c.tables.Load(key); ok {
		return t.(*Table), nil
	}

	v, err, _ := c.group.Do(key.String(), func() (interface{}, error) {
		if t, ok := c.tables.Load(key); ok {
			return t, nil
		}

		t, err := BuildTable(key.poly, key.width, key.reflected)
		if err != nil {
			return nil, err
		}

		c.buildsMu.Lock()
		c.builds++
		c.buildsMu.Unlock()

		c.tables.Store(key, t)
		return t, nil
	})
	if err != nil {
		return nil, err
	}

	return v.(*Table), nil
}

// buildCount reports how many tables the cache has constructed.
func (c *TableCache) buildCount() int {
	c.buildsMu.Lock()
	defer c.buildsMu.Unlock()
	return c.builds
}
