package observable

import "slices"

type listenerEntry[T any] struct {
	id uint64
	fn func(T)
}

// listeners is an ordered multicast set. Removal copies the slice so a
// notification already in progress keeps iterating its own snapshot.
type listeners[T any] struct {
	nextID  uint64
	entries []listenerEntry[T]
}

func (l *listeners[T]) add(fn func(T)) func() {
	l.nextID++
	id := l.nextID
	l.entries = append(l.entries, listenerEntry[T]{id: id, fn: fn})
	return func() { l.remove(id) }
}

func (l *listeners[T]) remove(id uint64) {
	idx := slices.IndexFunc(l.entries, func(e listenerEntry[T]) bool { return e.id == id })
	if idx < 0 {
		return
	}
	next := make([]listenerEntry[T], 0, len(l.entries)-1)
	next = append(next, l.entries[:idx]...)
	l.entries = append(next, l.entries[idx+1:]...)
}

func (l *listeners[T]) len() int {
	return len(l.entries)
}

func (l *listeners[T]) notify(v T) {
	for _, e := range l.entries {
		e.fn(v)
	}
}
