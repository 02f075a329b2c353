package cache

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync"

	"github.com/landviz/parcelcore/internal/measure"
	"github.com/landviz/parcelcore/pkg/core"
)

// MeasurementCache memoizes measurements by shape geometry.
// Keys are built from the shape's values, so a point slice rebuilt on every
// render still hits, and an edited slice never returns a stale result.
type MeasurementCache struct {
	m       sync.Mutex
	entries map[string]measure.Measurements
	max     int
	hits    SafeCounter
	misses  SafeCounter
}

// NewMeasurementCache creates a cache holding at most limit entries. A limit of
// zero or less leaves the cache unbounded.
func NewMeasurementCache(limit int) *MeasurementCache {
	return &MeasurementCache{
		entries: make(map[string]measure.Measurements),
		max:     limit,
	}
}

// Key returns the structural key for a shape. Only the fields that affect
// measurements or their validity take part; ID, name and display metadata do not.
func Key(s core.Shape) string {
	var b strings.Builder
	b.Grow(len(s.Type) + 2 + (len(s.Points)+2)*34)
	b.WriteString(string(s.Type))
	b.WriteByte('|')
	for _, p := range s.Points {
		writePoint(&b, p)
	}
	if s.Rotation != nil {
		b.WriteByte('@')
		b.WriteString(strconv.FormatUint(math.Float64bits(s.Rotation.Angle), 16))
		b.WriteByte(';')
		writePoint(&b, s.Rotation.Center)
	}
	return b.String()
}

func writePoint(b *strings.Builder, p core.Point2D) {
	b.WriteString(strconv.FormatUint(math.Float64bits(p.X), 16))
	b.WriteByte(',')
	b.WriteString(strconv.FormatUint(math.Float64bits(p.Y), 16))
	b.WriteByte(';')
}

// Measure returns cached measurements for s, computing and storing them on a miss.
// Invalid shapes are rejected before the lookup. Errors are never cached.
func (c *MeasurementCache) Measure(s core.Shape) (measure.Measurements, error) {
	if err := s.Validate(); err != nil {
		return measure.Measurements{}, fmt.Errorf("measure shape %q: %w", s.ID, err)
	}
	key := Key(s)
	if m, ok := c.Get(key); ok {
		c.hits.Inc()
		return m, nil
	}
	c.misses.Inc()

	m, err := measure.ShapeMeasurements(s)
	if err != nil {
		return measure.Measurements{}, err
	}
	c.put(key, m)
	return m, nil
}

// Get looks up measurements by key.
func (c *MeasurementCache) Get(key string) (measure.Measurements, bool) {
	c.m.Lock()
	defer c.m.Unlock()
	m, ok := c.entries[key]
	return m, ok
}

func (c *MeasurementCache) put(key string, m measure.Measurements) {
	c.m.Lock()
	defer c.m.Unlock()
	if c.max > 0 && len(c.entries) >= c.max {
		// Measurements are cheap to recompute; start over instead of tracking recency.
		c.entries = make(map[string]measure.Measurements)
	}
	c.entries[key] = m
}

// Len returns the number of cached entries.
func (c *MeasurementCache) Len() int {
	c.m.Lock()
	defer c.m.Unlock()
	return len(c.entries)
}

// Reset drops every entry and zeroes the counters.
func (c *MeasurementCache) Reset() {
	c.m.Lock()
	c.entries = make(map[string]measure.Measurements)
	c.m.Unlock()
	c.hits.Set(0)
	c.misses.Set(0)
}

// Stats returns the hit and miss counts since creation or the last Reset.
func (c *MeasurementCache) Stats() (hits, misses int) {
	return c.hits.Value(), c.misses.Value()
}

// SafeCounter is a thread-safe counter
type SafeCounter struct {
	mu sync.Mutex
	v  int
}

func (c *SafeCounter) Value() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.v
}

func (c *SafeCounter) Set(v int) {
	c.mu.Lock()
	c.v = v
	c.mu.Unlock()
}

func (c *SafeCounter) Inc() {
	c.mu.Lock()
	c.v++
	c.mu.Unlock()
}
