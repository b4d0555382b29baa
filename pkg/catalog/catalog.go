// Package catalog provides keyed collections of observable values.
//
// A Catalog keeps two views of its contents: the in-memory map used for
// lookups and the ordered backing list that is persisted. Serialize folds
// in-memory additions and removals into the backing list; Deserialize
// rebuilds the map from it, keeping the first occurrence of every key.
//
// Catalog is NOT thread-safe.
package catalog

import (
	"fmt"
	"iter"
	"slices"

	"github.com/go-drift/observable/pkg/errors"
	"github.com/go-drift/observable/pkg/observable"
	"github.com/go-drift/observable/pkg/vector"
)

// Pair is a key with the initial value of the model to create for it.
type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

// P builds a Pair.
func P[K comparable, V any](key K, value V) Pair[K, V] {
	return Pair[K, V]{Key: key, Value: value}
}

// Entry is one record of the backing list.
type Entry[K comparable, V any] struct {
	Key   K
	Value *observable.Value[V]
}

// Catalog maps keys to observable values. The zero value is an empty
// catalog ready to use.
type Catalog[K comparable, V any] struct {
	models  map[K]*observable.Value[V]
	order   []K
	backing []Entry[K, V]
	removed map[K]struct{}
}

// Empty returns a catalog with no entries.
func Empty[K comparable, V any]() *Catalog[K, V] {
	return &Catalog[K, V]{
		models:  make(map[K]*observable.Value[V]),
		removed: make(map[K]struct{}),
	}
}

// New builds one model per pair with factory. A key that appears twice
// fails with KindDuplicateKey.
func New[K comparable, V any](factory func(V) *observable.Value[V], pairs ...Pair[K, V]) (*Catalog[K, V], error) {
	c := Empty[K, V]()
	for _, p := range pairs {
		if _, ok := c.models[p.Key]; ok {
			return nil, &errors.ModelError{
				Op:   "catalog.New",
				Kind: errors.KindDuplicateKey,
				Key:  fmt.Sprint(p.Key),
			}
		}
		c.Put(p.Key, factory(p.Value))
	}
	return c, nil
}

// Bools builds a catalog of bool values.
func Bools(pairs ...Pair[string, bool]) (*Catalog[string, bool], error) {
	return New(observable.NewBool, pairs...)
}

// Ints builds a catalog of int values.
func Ints(pairs ...Pair[string, int]) (*Catalog[string, int], error) {
	return New(observable.NewInt, pairs...)
}

// Floats builds a catalog of float values.
func Floats(pairs ...Pair[string, float64]) (*Catalog[string, float64], error) {
	return New(observable.NewFloat, pairs...)
}

// Strings builds a catalog of string values.
func Strings(pairs ...Pair[string, string]) (*Catalog[string, string], error) {
	return New(observable.NewString, pairs...)
}

// Vec2s builds a catalog of 2D vector values.
func Vec2s(pairs ...Pair[string, vector.Vec2]) (*Catalog[string, vector.Vec2], error) {
	return New(observable.NewVec2, pairs...)
}

// Vec3s builds a catalog of 3D vector values.
func Vec3s(pairs ...Pair[string, vector.Vec3]) (*Catalog[string, vector.Vec3], error) {
	return New(observable.NewVec3, pairs...)
}

// Get returns the model stored under key.
func (c *Catalog[K, V]) Get(key K) (*observable.Value[V], error) {
	m, ok := c.models[key]
	if !ok {
		return nil, &errors.ModelError{
			Op:   "catalog.Get",
			Kind: errors.KindKeyNotFound,
			Key:  fmt.Sprint(key),
		}
	}
	return m, nil
}

// TryGet returns the model stored under key and whether it was found.
func (c *Catalog[K, V]) TryGet(key K) (*observable.Value[V], bool) {
	m, ok := c.models[key]
	return m, ok
}

// ContainsKey reports whether key is present.
func (c *Catalog[K, V]) ContainsKey(key K) bool {
	_, ok := c.models[key]
	return ok
}

// Len returns the number of entries.
func (c *Catalog[K, V]) Len() int {
	return len(c.models)
}

// Keys returns the keys in insertion order.
func (c *Catalog[K, V]) Keys() []K {
	return slices.Clone(c.order)
}

// Values returns the models in key insertion order.
func (c *Catalog[K, V]) Values() []*observable.Value[V] {
	out := make([]*observable.Value[V], len(c.order))
	for i, k := range c.order {
		out[i] = c.models[k]
	}
	return out
}

// All iterates the entries in insertion order.
func (c *Catalog[K, V]) All() iter.Seq2[K, *observable.Value[V]] {
	return func(yield func(K, *observable.Value[V]) bool) {
		for _, k := range c.order {
			if !yield(k, c.models[k]) {
				return
			}
		}
	}
}

// Put stores model under key, replacing any previous model. A replaced
// key keeps its position in both the key order and the backing list.
func (c *Catalog[K, V]) Put(key K, model *observable.Value[V]) {
	c.lazyInit()
	if _, ok := c.models[key]; !ok {
		c.order = append(c.order, key)
	}
	c.models[key] = model
	delete(c.removed, key)
	if i := c.backingIndex(key); i >= 0 {
		c.backing[i].Value = model
	}
}

// Remove deletes key. The backing entry is pruned on the next Serialize.
func (c *Catalog[K, V]) Remove(key K) bool {
	if _, ok := c.models[key]; !ok {
		return false
	}
	c.lazyInit()
	delete(c.models, key)
	c.order = slices.DeleteFunc(c.order, func(k K) bool { return k == key })
	c.removed[key] = struct{}{}
	return true
}

// ResetAll resets every model to its initial value.
func (c *Catalog[K, V]) ResetAll() {
	for _, k := range c.order {
		c.models[k].Reset()
	}
}

// Serialize appends every in-memory entry missing from the backing list,
// drops backing entries for removed keys and returns a copy of the result.
func (c *Catalog[K, V]) Serialize() []Entry[K, V] {
	if len(c.removed) > 0 {
		c.backing = slices.DeleteFunc(c.backing, func(e Entry[K, V]) bool {
			_, gone := c.removed[e.Key]
			return gone
		})
		clear(c.removed)
	}
	for _, k := range c.order {
		if c.backingIndex(k) < 0 {
			c.backing = append(c.backing, Entry[K, V]{Key: k, Value: c.models[k]})
		}
	}
	return slices.Clone(c.backing)
}

// Deserialize replaces the backing list with entries and rebuilds the
// in-memory map. The first entry for a key wins; entries without a model
// are skipped.
func (c *Catalog[K, V]) Deserialize(entries []Entry[K, V]) {
	c.backing = slices.Clone(entries)
	c.models = make(map[K]*observable.Value[V], len(entries))
	c.order = c.order[:0]
	c.removed = make(map[K]struct{})
	for _, e := range entries {
		if e.Value == nil {
			continue
		}
		if _, seen := c.models[e.Key]; seen {
			continue
		}
		c.models[e.Key] = e.Value
		c.order = append(c.order, e.Key)
	}
}

func (c *Catalog[K, V]) lazyInit() {
	if c.models == nil {
		c.models = make(map[K]*observable.Value[V])
	}
	if c.removed == nil {
		c.removed = make(map[K]struct{})
	}
}

func (c *Catalog[K, V]) backingIndex(key K) int {
	return slices.IndexFunc(c.backing, func(e Entry[K, V]) bool { return e.Key == key })
}
