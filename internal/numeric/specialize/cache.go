package specialize

import (
	"cmp"
	"fmt"
	"reflect"
	"slices"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

// Op identifies a specializable operation.
type Op string

// Key identifies a specialization slot.
type Key struct {
	Op    Op
	Types [2]reflect.Type
}

// NewKey builds a key from an operation and up to two types.
func NewKey(op Op, types ...reflect.Type) Key {
	if len(types) > 2 {
		panic(fmt.Sprintf("specialize: %s keyed by %d types, at most 2 supported", op, len(types)))
	}
	k := Key{Op: op}
	copy(k.Types[:], types)
	return k
}

// TypeNames renders the key's types, comma separated.
func (k Key) TypeNames() string {
	names := make([]string, 0, len(k.Types))
	for _, t := range k.Types {
		if t != nil {
			names = append(names, t.String())
		}
	}
	return strings.Join(names, ",")
}

func (k Key) String() string {
	return string(k.Op) + "[" + k.TypeNames() + "]"
}

// Observer receives one notification per slot resolution.
type Observer interface {
	SpecializationBuilt(op, types string, duration time.Duration, err error)
}

// Entry is a point-in-time view of one slot.
type Entry struct {
	Op       string        `json:"op"`
	Types    string        `json:"types"`
	Resolved bool          `json:"resolved"`
	Error    string        `json:"error,omitempty"`
	Duration time.Duration `json:"build_ns"`
}

// Stats summarizes cache activity.
type Stats struct {
	Slots    int    `json:"slots"`
	Builds   uint64 `json:"builds"`
	Failures uint64 `json:"failures"`
	Hits     uint64 `json:"hits"`
}

type slot struct {
	once     sync.Once
	done     atomic.Bool
	value    any
	err      error
	duration time.Duration
}

// Cache maps keys to lazily built implementations.
type Cache struct {
	slots    sync.Map // Key -> *slot
	builds   atomic.Uint64
	failures atomic.Uint64
	hits     atomic.Uint64
	logger   atomic.Pointer[zap.Logger]
	observer atomic.Pointer[Observer]
}

// Default is the process-wide cache used by the engine.
var Default = New()

// New creates an empty cache.
func New() *Cache {
	c := &Cache{}
	c.logger.Store(zap.NewNop())
	return c
}

// SetLogger routes build logs to logger. A nil logger disables logging.
func (c *Cache) SetLogger(logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}
	c.logger.Store(logger.Named("specialize"))
}

// SetObserver registers o for build notifications. A nil o removes it.
func (c *Cache) SetObserver(o Observer) {
	if o == nil {
		c.observer.Store(nil)
		return
	}
	c.observer.Store(&o)
}

// Lookup returns the value stored under key, building it on first use.
func (c *Cache) Lookup(key Key, build func() (any, error)) (any, error) {
	v, ok := c.slots.Load(key)
	if !ok {
		v, _ = c.slots.LoadOrStore(key, &slot{})
	}
	s := v.(*slot)

	if s.done.Load() {
		c.hits.Add(1)
		return s.value, s.err
	}

	s.once.Do(func() {
		start := time.Now()
		defer func() {
			if r := recover(); r != nil {
				s.value, s.err = nil, fmt.Errorf("specialize: building %s panicked: %v", key, r)
			}
			s.duration = time.Since(start)
			s.done.Store(true)
			c.record(key, s)
		}()
		s.value, s.err = build()
	})
	return s.value, s.err
}

func (c *Cache) record(key Key, s *slot) {
	c.builds.Add(1)
	logger := c.logger.Load()
	if s.err != nil {
		c.failures.Add(1)
		logger.Warn("specialization failed",
			zap.String("op", string(key.Op)),
			zap.String("types", key.TypeNames()),
			zap.Error(s.err),
		)
	} else {
		logger.Debug("specialization built",
			zap.String("op", string(key.Op)),
			zap.String("types", key.TypeNames()),
			zap.Duration("duration", s.duration),
		)
	}
	if o := c.observer.Load(); o != nil {
		(*o).SpecializationBuilt(string(key.Op), key.TypeNames(), s.duration, s.err)
	}
}

// Entries returns a snapshot of all slots, sorted by operation then types.
func (c *Cache) Entries() []Entry {
	var entries []Entry
	c.slots.Range(func(k, v any) bool {
		key := k.(Key)
		s := v.(*slot)
		e := Entry{Op: string(key.Op), Types: key.TypeNames()}
		if s.done.Load() {
			e.Resolved = true
			e.Duration = s.duration
			if s.err != nil {
				e.Error = s.err.Error()
			}
		}
		entries = append(entries, e)
		return true
	})
	slices.SortFunc(entries, func(a, b Entry) int {
		if n := cmp.Compare(a.Op, b.Op); n != 0 {
			return n
		}
		return cmp.Compare(a.Types, b.Types)
	})
	return entries
}

// Stats returns cache counters.
func (c *Cache) Stats() Stats {
	n := 0
	c.slots.Range(func(_, _ any) bool {
		n++
		return true
	})
	return Stats{
		Slots:    n,
		Builds:   c.builds.Load(),
		Failures: c.failures.Load(),
		Hits:     c.hits.Load(),
	}
}

// Resolve returns the implementation of op for types, building it with
// build the first time the key is seen.
func Resolve[F any](c *Cache, op Op, build func() (F, error), types ...reflect.Type) (F, error) {
	v, err := c.Lookup(NewKey(op, types...), func() (any, error) {
		return build()
	})
	if err != nil {
		var zero F
		return zero, err
	}
	return v.(F), nil
}

// For resolves op for the single type T in the default cache.
func For[T, F any](op Op, build func() (F, error)) (F, error) {
	return Resolve(Default, op, build, reflect.TypeFor[T]())
}

// For2 resolves op for the type pair (A, B) in the default cache.
func For2[A, B, F any](op Op, build func() (F, error)) (F, error) {
	return Resolve(Default, op, build, reflect.TypeFor[A](), reflect.TypeFor[B]())
}
