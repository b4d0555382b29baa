package observable

import (
	"iter"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/go-drift/observable/pkg/errors"
)

// Items is the live proxy over a list's elements. Every mutation made
// through it notifies the owning List once, after the change.
//
// Items is NOT thread-safe.
type Items[E comparable] struct {
	inner  []E
	notify func()
}

func outOfRange(op string, i, n int) error {
	return &errors.ModelError{
		Op:   op,
		Kind: errors.KindIndexOutOfRange,
		Key:  strconv.Itoa(i),
		Err:  errIndex{index: i, length: n},
	}
}

type errIndex struct{ index, length int }

func (e errIndex) Error() string {
	return "index " + strconv.Itoa(e.index) + " out of range [0, " + strconv.Itoa(e.length) + ")"
}

// Len returns the number of elements.
func (it *Items[E]) Len() int { return len(it.inner) }

// At returns the element at index i.
func (it *Items[E]) At(i int) (E, error) {
	if i < 0 || i >= len(it.inner) {
		var zero E
		return zero, outOfRange("observable.Items.At", i, len(it.inner))
	}
	return it.inner[i], nil
}

// SetAt replaces the element at index i.
func (it *Items[E]) SetAt(i int, v E) error {
	if i < 0 || i >= len(it.inner) {
		return outOfRange("observable.Items.SetAt", i, len(it.inner))
	}
	it.inner[i] = v
	it.notify()
	return nil
}

// Add appends v.
func (it *Items[E]) Add(v E) {
	it.inner = append(it.inner, v)
	it.notify()
}

// Insert places v at index i, shifting later elements. i may equal Len.
func (it *Items[E]) Insert(i int, v E) error {
	if i < 0 || i > len(it.inner) {
		return outOfRange("observable.Items.Insert", i, len(it.inner)+1)
	}
	it.inner = slices.Insert(it.inner, i, v)
	it.notify()
	return nil
}

// Remove deletes the first occurrence of v. Listeners are only notified
// when something was removed.
func (it *Items[E]) Remove(v E) bool {
	i := slices.Index(it.inner, v)
	if i < 0 {
		return false
	}
	it.inner = slices.Delete(it.inner, i, i+1)
	it.notify()
	return true
}

// RemoveAt deletes the element at index i.
func (it *Items[E]) RemoveAt(i int) error {
	if i < 0 || i >= len(it.inner) {
		return outOfRange("observable.Items.RemoveAt", i, len(it.inner))
	}
	it.inner = slices.Delete(it.inner, i, i+1)
	it.notify()
	return nil
}

// Clear removes every element.
func (it *Items[E]) Clear() {
	clear(it.inner)
	it.inner = it.inner[:0]
	it.notify()
}

// Contains reports whether v is present.
func (it *Items[E]) Contains(v E) bool { return slices.Contains(it.inner, v) }

// IndexOf returns the index of the first occurrence of v, or -1.
func (it *Items[E]) IndexOf(v E) int { return slices.Index(it.inner, v) }

// Values iterates the live elements. The iterator reads the list as it is
// when each element is reached; mutating during iteration is unsupported.
func (it *Items[E]) Values() iter.Seq[E] {
	return func(yield func(E) bool) {
		for i := 0; i < len(it.inner); i++ {
			if !yield(it.inner[i]) {
				return
			}
		}
	}
}

// Slice returns a copy of the elements.
func (it *Items[E]) Slice() []E {
	return append([]E{}, it.inner...)
}

// Unwrap returns the inner slice without copying. Writing to it bypasses
// notification; passing it back to List.Set is a no-op.
func (it *Items[E]) Unwrap() []E {
	return it.inner
}

// List is an observable list of E. Its value is never nil.
//
// List is NOT thread-safe.
type List[E comparable] struct {
	items     *Items[E]
	initial   []E
	codec     Codec[E]
	listeners listeners[*Items[E]]
}

// NewList creates a list whose initial and current contents are values.
func NewList[E comparable](codec Codec[E], values ...E) *List[E] {
	l := &List[E]{
		initial: slices.Clone(values),
		codec:   codec,
	}
	l.items = &Items[E]{inner: append([]E{}, values...), notify: l.notify}
	return l
}

func (l *List[E]) notify() {
	l.listeners.notify(l.items)
}

// Value returns the live proxy.
func (l *List[E]) Value() *Items[E] {
	return l.items
}

// Set replaces the list contents with seq and notifies once. A nil seq
// becomes an empty list. Passing the proxy's own inner slice back is a
// no-op.
func (l *List[E]) Set(seq []E) {
	if seq == nil {
		seq = []E{}
	}
	if sameBacking(seq, l.items.inner) {
		return
	}
	l.items = &Items[E]{inner: seq, notify: l.notify}
	l.notify()
}

// sameBacking reports whether a and b are the same slice: same length,
// same capacity and the same last element of backing storage.
func sameBacking[E any](a, b []E) bool {
	if len(a) != len(b) || cap(a) != cap(b) || cap(a) == 0 {
		return false
	}
	return &a[:cap(a)][cap(a)-1] == &b[:cap(b)][cap(b)-1]
}

// Initial returns a copy of the contents Reset restores.
func (l *List[E]) Initial() []E {
	return slices.Clone(l.initial)
}

// Reset replaces the contents with a copy of the initial contents.
func (l *List[E]) Reset() {
	l.Set(append([]E{}, l.initial...))
}

// Restore assigns both the initial and current contents without notifying.
func (l *List[E]) Restore(initial, current []E) {
	l.initial = slices.Clone(initial)
	l.items = &Items[E]{inner: append([]E{}, current...), notify: l.notify}
}

// AddListener registers fn to be called with the proxy after every change.
// The returned function removes the listener.
func (l *List[E]) AddListener(fn func(*Items[E])) func() {
	return l.listeners.add(fn)
}

// ListenerCount returns the number of registered listeners.
func (l *List[E]) ListenerCount() int { return l.listeners.len() }

func (l *List[E]) Len() int                { return l.items.Len() }
func (l *List[E]) At(i int) (E, error)     { return l.items.At(i) }
func (l *List[E]) SetAt(i int, v E) error  { return l.items.SetAt(i, v) }
func (l *List[E]) Add(v E)                 { l.items.Add(v) }
func (l *List[E]) Insert(i int, v E) error { return l.items.Insert(i, v) }
func (l *List[E]) Remove(v E) bool         { return l.items.Remove(v) }
func (l *List[E]) RemoveAt(i int) error    { return l.items.RemoveAt(i) }
func (l *List[E]) Clear()                  { l.items.Clear() }
func (l *List[E]) Contains(v E) bool       { return l.items.Contains(v) }
func (l *List[E]) IndexOf(v E) int         { return l.items.IndexOf(v) }
func (l *List[E]) Values() iter.Seq[E]     { return l.items.Values() }
func (l *List[E]) Slice() []E              { return l.items.Slice() }

// Equal reports whether both lists hold the same elements in the same
// order. A nil List is equal only to another nil List.
func (l *List[E]) Equal(other *List[E]) bool {
	if l == nil || other == nil {
		return l == nil && other == nil
	}
	return slices.Equal(l.items.inner, other.items.inner)
}

// EqualValue reports whether the contents equal seq, element by element.
// A nil seq compares as empty.
func (l *List[E]) EqualValue(seq []E) bool {
	if l == nil {
		return false
	}
	return slices.Equal(l.items.inner, seq)
}

// ContainsAll reports whether every element of l occurs somewhere in other.
// Order and multiplicity are ignored.
// A nil List counts as empty on either side.
func (l *List[E]) ContainsAll(other *List[E]) bool {
	if l == nil {
		return true
	}
	if other == nil {
		return l.Len() == 0
	}
	for _, v := range l.items.inner {
		if !other.Contains(v) {
			return false
		}
	}
	return true
}

// Hash combines the hash of the slice type with the hash of the elements'
// canonical text forms, so lists that are Equal hash equally.
func (l *List[E]) Hash() uint64 {
	d := xxhash.New()
	for i, v := range l.items.inner {
		if i > 0 {
			d.WriteString(", ")
		}
		d.WriteString(l.codec.hashText(v))
	}
	typeHash := xxhash.Sum64String(reflect.TypeFor[[]E]().String())
	return typeHash*31 + d.Sum64()
}

// String joins the elements' text forms with ", ".
func (l *List[E]) String() string {
	return l.join(l.items.inner)
}

// InitialString joins the initial elements' text forms with ", ".
func (l *List[E]) InitialString() string {
	return l.join(l.initial)
}

func (l *List[E]) join(values []E) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = l.codec.Format(v)
	}
	return strings.Join(parts, ", ")
}

// SetString splits s on commas outside parentheses, parses every part with
// the element codec and assigns the result. Blank input clears the list.
//
// Every part is trimmed before parsing, so the text form is lossy for
// string lists: elements containing a comma are split and surrounding
// whitespace is dropped. Use Set or SetObject to assign such elements.
func (l *List[E]) SetString(s string) error {
	if strings.TrimSpace(s) == "" {
		l.Set(nil)
		return nil
	}
	parts := splitTopLevel(s)
	values := make([]E, 0, len(parts))
	for _, p := range parts {
		v, err := l.codec.Parse(strings.TrimSpace(p))
		if err != nil {
			return err
		}
		values = append(values, v)
	}
	l.Set(values)
	return nil
}

func splitTopLevel(s string) []string {
	var parts []string
	depth, start := 0, 0
	for i, r := range s {
		switch r {
		case '(':
			depth++
		case ')':
			if depth > 0 {
				depth--
			}
		case ',':
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	return append(parts, s[start:])
}

// Object returns a copy of the contents as []E.
func (l *List[E]) Object() any {
	return l.Slice()
}

// SetObject assigns x, which must be a []E or nil.
func (l *List[E]) SetObject(x any) error {
	if x == nil {
		l.Set(nil)
		return nil
	}
	seq, ok := x.([]E)
	if !ok {
		return errors.Newf("observable.List.SetObject", errors.KindTypeMismatch,
			"cannot assign %T to %s", x, reflect.TypeFor[[]E]())
	}
	l.Set(seq)
	return nil
}

// TypeName returns the element codec name with a "_list" suffix.
func (l *List[E]) TypeName() string {
	return l.codec.Name + "_list"
}
