package observable

import (
	"reflect"

	"github.com/cespare/xxhash/v2"
	"github.com/go-drift/observable/pkg/errors"
	"github.com/go-drift/observable/pkg/vector"
)

// Model is the type-erased view of a value or list, used by tooling that
// edits assets without knowing their element type.
type Model interface {
	// Reset restores the initial value and notifies listeners.
	Reset()
	// String renders the current value in its canonical text form.
	String() string
	// InitialString renders the initial value in the same form.
	InitialString() string
	// SetString parses s and assigns the result.
	SetString(s string) error
	// Object returns the current value boxed as any.
	Object() any
	// SetObject assigns v, which must hold the element type.
	SetObject(v any) error
	// TypeName identifies the model type (e.g., "float", "bool_list").
	TypeName() string
}

// Readable is the read-only view of an observable model holding T.
type Readable[T any] interface {
	Value() T
	AddListener(fn func(T)) func()
}

// Writable is a Readable that can also be assigned and reset.
type Writable[T any] interface {
	Readable[T]
	Set(v T)
	Reset()
}

// Value is an observable box around a single value of type T.
//
// Value is NOT thread-safe.
type Value[T any] struct {
	current   T
	initial   T
	codec     Codec[T]
	equal     func(a, b T) bool
	listeners listeners[T]
}

// New creates a Value whose current and initial values are both initial.
func New[T comparable](initial T, codec Codec[T]) *Value[T] {
	return NewWithEquality(initial, codec, func(a, b T) bool { return a == b })
}

// NewWithEquality creates a Value that compares values with equal.
func NewWithEquality[T any](initial T, codec Codec[T], equal func(a, b T) bool) *Value[T] {
	return &Value[T]{
		current: initial,
		initial: initial,
		codec:   codec,
		equal:   equal,
	}
}

// NewBool creates a bool value.
func NewBool(initial bool) *Value[bool] { return New(initial, BoolCodec) }

// NewInt creates an int value.
func NewInt(initial int) *Value[int] { return New(initial, IntCodec) }

// NewFloat creates a float value.
func NewFloat(initial float64) *Value[float64] { return New(initial, FloatCodec) }

// NewString creates a string value.
func NewString(initial string) *Value[string] { return New(initial, StringCodec) }

// NewVec2 creates a 2D vector value.
func NewVec2(initial vector.Vec2) *Value[vector.Vec2] { return New(initial, Vec2Codec) }

// NewVec3 creates a 3D vector value.
func NewVec3(initial vector.Vec3) *Value[vector.Vec3] { return New(initial, Vec3Codec) }

// Value returns the current value.
func (v *Value[T]) Value() T {
	return v.current
}

// Initial returns the value Reset restores.
func (v *Value[T]) Initial() T {
	return v.initial
}

// Set replaces the current value and notifies every listener, even if
// value equals the previous one.
func (v *Value[T]) Set(value T) {
	v.current = value
	v.listeners.notify(value)
}

// Reset sets the current value back to the initial value.
func (v *Value[T]) Reset() {
	v.Set(v.initial)
}

// Restore assigns both the initial and current values without notifying.
// It is the hook used when loading a persisted model.
func (v *Value[T]) Restore(initial, current T) {
	v.initial = initial
	v.current = current
}

// Repair resets the value when the current value is the zero value but the
// initial value is not. It reports whether a reset happened.
func (v *Value[T]) Repair() bool {
	var zero T
	if v.equal(v.current, zero) && !v.equal(v.initial, zero) {
		v.Reset()
		return true
	}
	return false
}

// AddListener registers fn to be called with the new value after every
// change. The returned function removes the listener.
func (v *Value[T]) AddListener(fn func(T)) func() {
	return v.listeners.add(fn)
}

// ListenerCount returns the number of registered listeners.
func (v *Value[T]) ListenerCount() int {
	return v.listeners.len()
}

// Equal reports whether both values hold equal current values.
// A nil Value is equal only to another nil Value.
func (v *Value[T]) Equal(other *Value[T]) bool {
	if v == nil || other == nil {
		return v == nil && other == nil
	}
	return v.equal(v.current, other.current)
}

// EqualValue reports whether the current value equals x.
// It is false for a nil Value.
func (v *Value[T]) EqualValue(x T) bool {
	if v == nil {
		return false
	}
	return v.equal(v.current, x)
}

// Equal reports whether a and b are equal under Value.Equal.
func Equal[T any](a, b *Value[T]) bool {
	return a.Equal(b)
}

// Hash combines the hash of the element type with the hash of the current
// value's canonical text form, so values that are Equal hash equally.
// A nil current value hashes to the type hash alone.
func (v *Value[T]) Hash() uint64 {
	typeHash := xxhash.Sum64String(reflect.TypeFor[T]().String())
	if isNil(v.current) {
		return typeHash
	}
	return typeHash*31 + xxhash.Sum64String(v.codec.hashText(v.current))
}

// String renders the current value with the element codec.
func (v *Value[T]) String() string {
	return v.codec.Format(v.current)
}

// InitialString renders the initial value with the element codec.
func (v *Value[T]) InitialString() string {
	return v.codec.Format(v.initial)
}

// SetString parses s with the element codec and assigns the result.
func (v *Value[T]) SetString(s string) error {
	parsed, err := v.codec.Parse(s)
	if err != nil {
		return err
	}
	v.Set(parsed)
	return nil
}

// Object returns the current value as any.
func (v *Value[T]) Object() any {
	return v.current
}

// SetObject assigns x if it holds a T.
func (v *Value[T]) SetObject(x any) error {
	t, ok := x.(T)
	if !ok {
		return errors.Newf("observable.Value.SetObject", errors.KindTypeMismatch,
			"cannot assign %T to %s", x, reflect.TypeFor[T]())
	}
	v.Set(t)
	return nil
}

// TypeName returns the codec name of the element type.
func (v *Value[T]) TypeName() string {
	return v.codec.Name
}

func isNil[T any](x T) bool {
	rv := reflect.ValueOf(any(x))
	if !rv.IsValid() {
		return true
	}
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
