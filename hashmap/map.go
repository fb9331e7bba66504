package hashmap

import (
	"cmp"

	"github.com/hupe1980/cowgo/internal/hash"
	"github.com/hupe1980/cowgo/seq"
)

const (
	// minBuckets is the smallest bucket array, always a power of two.
	minBuckets = 8

	// Growth triggers when size exceeds 7/10 of the bucket count. The exact
	// fraction is a tunable, not a semantic guarantee.
	loadFactorNum = 7
	loadFactorDen = 10
)

type entry[K cmp.Ordered, V any] struct {
	key   K
	value V
}

// bucket holds the first key that hashed to its slot inline and all later
// collisions in a key-sorted overflow sequence. A bucket only exists while
// its inline slot is occupied.
type bucket[K cmp.Ordered, V any] struct {
	entry    entry[K, V]
	overflow *seq.List[entry[K, V]]
}

// searchOverflow binary-searches the key-sorted overflow. It returns the
// position of key, or the position it would be inserted at, and whether it
// was found.
func (b *bucket[K, V]) searchOverflow(key K) (int, bool) {
	if b.overflow == nil {
		return 0, false
	}
	lo, hi := 0, b.overflow.Len()
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if b.overflow.At(mid).key < key {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo, lo < b.overflow.Len() && b.overflow.At(lo).key == key
}

// Options configures a Map or Set.
type Options[K cmp.Ordered] struct {
	// InitialCapacity pre-sizes the bucket array so that this many entries
	// fit without growing.
	InitialCapacity int

	// Hash overrides the default maphash-based hash function. equal keys
	// must produce equal hashes.
	Hash func(K) uint64
}

// WithInitialCapacity pre-sizes the table for n entries.
func WithInitialCapacity[K cmp.Ordered](n int) func(*Options[K]) {
	return func(o *Options[K]) {
		o.InitialCapacity = n
	}
}

// WithHash injects a custom hash function.
func WithHash[K cmp.Ordered](fn func(K) uint64) func(*Options[K]) {
	return func(o *Options[K]) {
		o.Hash = fn
	}
}

// Map is a bucketed hash map. The zero value is not usable; construct with
// New.
type Map[K cmp.Ordered, V any] struct {
	buckets *seq.List[*bucket[K, V]]
	hash    func(K) uint64
	size    int
	mask    uint64
}

// New creates an empty Map.
func New[K cmp.Ordered, V any](optFns ...func(*Options[K])) *Map[K, V] {
	opts := Options[K]{}
	for _, fn := range optFns {
		fn(&opts)
	}
	h := opts.Hash
	if h == nil {
		h = hash.New[K]().Hash
	}
	m := &Map[K, V]{hash: h}
	m.init(bucketsFor(opts.InitialCapacity))
	return m
}

// bucketsFor returns the power-of-two bucket count at which n entries stay
// under the load factor.
func bucketsFor(n int) int {
	c := minBuckets
	for n*loadFactorDen > c*loadFactorNum {
		c <<= 1
	}
	return c
}

func (m *Map[K, V]) init(n int) {
	m.buckets = seq.New[*bucket[K, V]]()
	m.buckets.Append(make([]*bucket[K, V], n)...)
	m.mask = uint64(n - 1)
}

func (m *Map[K, V]) bucketCount() int { return int(m.mask) + 1 }

func (m *Map[K, V]) index(key K) int { return int(m.hash(key) & m.mask) }

// Len returns the number of entries.
func (m *Map[K, V]) Len() int { return m.size }

// Get returns the value stored under key.
func (m *Map[K, V]) Get(key K) (V, bool) {
	b := m.buckets.At(m.index(key))
	if b != nil {
		if b.entry.key == key {
			return b.entry.value, true
		}
		if i, ok := b.searchOverflow(key); ok {
			return b.overflow.At(i).value, true
		}
	}
	var zero V
	return zero, false
}

// Set stores value under key, replacing any previous value.
func (m *Map[K, V]) Set(key K, value V) {
	b := m.buckets.At(m.index(key))
	if b != nil {
		if b.entry.key == key {
			b.entry.value = value
			return
		}
		if i, ok := b.searchOverflow(key); ok {
			b.overflow.SetAt(i, entry[K, V]{key, value})
			return
		}
	}
	m.insert(entry[K, V]{key, value})
}

// GetOrInsert returns the value stored under key, inserting value first when
// the key is absent. The second result reports whether the key was already
// present.
func (m *Map[K, V]) GetOrInsert(key K, value V) (V, bool) {
	if v, ok := m.Get(key); ok {
		return v, true
	}
	m.insert(entry[K, V]{key, value})
	return value, false
}

// insert adds a known-absent entry, growing first when the load factor would
// be exceeded.
func (m *Map[K, V]) insert(e entry[K, V]) {
	if (m.size+1)*loadFactorDen > m.bucketCount()*loadFactorNum {
		m.rehash(m.bucketCount() * 2)
	}
	m.place(e)
	m.size++
}

// place routes an entry to its bucket without growth or size bookkeeping.
func (m *Map[K, V]) place(e entry[K, V]) {
	i := m.index(e.key)
	b := m.buckets.At(i)
	if b == nil {
		m.buckets.SetAt(i, &bucket[K, V]{entry: e})
		return
	}
	if b.overflow == nil {
		b.overflow = seq.New[entry[K, V]]()
	}
	pos, _ := b.searchOverflow(e.key)
	b.overflow.Insert(pos, e)
}

// rehash redistributes every entry into a bucket array of n slots. All
// iterators are invalidated.
func (m *Map[K, V]) rehash(n int) {
	old := m.buckets
	m.init(n)
	for b := range old.Values() {
		if b == nil {
			continue
		}
		m.place(b.entry)
		if b.overflow != nil {
			for e := range b.overflow.Values() {
				m.place(e)
			}
		}
	}
	old.Release()
}

// Delete removes key and reports whether it was present. Removing an inline
// entry promotes the last overflow entry into the inline slot (a swap, not a
// shift); a bucket whose last entry goes away is removed from the array.
func (m *Map[K, V]) Delete(key K) bool {
	i := m.index(key)
	b := m.buckets.At(i)
	if b == nil {
		return false
	}
	if b.entry.key == key {
		if b.overflow != nil && b.overflow.Len() > 0 {
			last, _ := b.overflow.Pop()
			b.entry = last
		} else {
			m.buckets.SetAt(i, nil)
		}
		m.size--
		return true
	}
	if p, ok := b.searchOverflow(key); ok {
		b.overflow.RemoveAt(p)
		m.size--
		return true
	}
	return false
}

// Reserve grows the bucket array so that n entries fit without further
// rehashing.
func (m *Map[K, V]) Reserve(n int) {
	if c := bucketsFor(n); c > m.bucketCount() {
		m.rehash(c)
	}
}

// Clear removes all entries and shrinks back to the minimum bucket array.
func (m *Map[K, V]) Clear() {
	m.buckets.Release()
	m.init(minBuckets)
	m.size = 0
}

// Clone returns an independent copy. Bucket structs are duplicated; the
// overflow sequences are shared copy-on-write and diverge only when mutated.
func (m *Map[K, V]) Clone() *Map[K, V] {
	c := &Map[K, V]{hash: m.hash, size: m.size, mask: m.mask}
	c.buckets = seq.New[*bucket[K, V]]()
	c.buckets.Reserve(m.bucketCount())
	for b := range m.buckets.Values() {
		if b == nil {
			c.buckets.Append(nil)
			continue
		}
		nb := &bucket[K, V]{entry: b.entry}
		if b.overflow != nil {
			nb.overflow = b.overflow.Clone()
		}
		c.buckets.Append(nb)
	}
	return c
}
