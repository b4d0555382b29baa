package observable

import (
	"slices"
	"strings"

	"github.com/go-drift/observable/pkg/errors"
	"github.com/go-drift/observable/pkg/vector"
)

// Number is the element constraint for numeric reductions.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// Sum returns the sum of the elements, or zero for an empty list.
func Sum[E Number](l *List[E]) E {
	var total E
	for _, v := range l.items.inner {
		total += v
	}
	return total
}

// Min returns the smallest element.
func Min[E Number](l *List[E]) (E, error) {
	if l.Len() == 0 {
		var zero E
		return zero, errors.New("observable.Min", errors.KindEmptySequence, nil)
	}
	return slices.Min(l.items.inner), nil
}

// Max returns the largest element.
func Max[E Number](l *List[E]) (E, error) {
	if l.Len() == 0 {
		var zero E
		return zero, errors.New("observable.Max", errors.KindEmptySequence, nil)
	}
	return slices.Max(l.items.inner), nil
}

// Average returns the arithmetic mean of the elements.
func Average[E Number](l *List[E]) (float64, error) {
	if l.Len() == 0 {
		return 0, errors.New("observable.Average", errors.KindEmptySequence, nil)
	}
	return float64(Sum(l)) / float64(l.Len()), nil
}

// IntList is an observable list of ints with numeric reductions.
type IntList struct{ *List[int] }

// NewIntList creates an IntList holding values.
func NewIntList(values ...int) *IntList { return &IntList{NewList(IntCodec, values...)} }

func (l *IntList) Sum() int                  { return Sum(l.List) }
func (l *IntList) Min() (int, error)         { return Min(l.List) }
func (l *IntList) Max() (int, error)         { return Max(l.List) }
func (l *IntList) Average() (float64, error) { return Average(l.List) }

// FloatList is an observable list of floats with numeric reductions.
type FloatList struct{ *List[float64] }

// NewFloatList creates a FloatList holding values.
func NewFloatList(values ...float64) *FloatList { return &FloatList{NewList(FloatCodec, values...)} }

func (l *FloatList) Sum() float64              { return Sum(l.List) }
func (l *FloatList) Min() (float64, error)     { return Min(l.List) }
func (l *FloatList) Max() (float64, error)     { return Max(l.List) }
func (l *FloatList) Average() (float64, error) { return Average(l.List) }

// BoolList is an observable list of bools with logical reductions.
type BoolList struct{ *List[bool] }

// NewBoolList creates a BoolList holding values.
func NewBoolList(values ...bool) *BoolList { return &BoolList{NewList(BoolCodec, values...)} }

// All reports whether the list is non-empty and every element is true.
func (l *BoolList) All() bool {
	if l.Len() == 0 {
		return false
	}
	return !slices.Contains(l.items.inner, false)
}

// Any reports whether at least one element is true.
func (l *BoolList) Any() bool {
	return slices.Contains(l.items.inner, true)
}

// And is All.
func (l *BoolList) And() bool { return l.All() }

// Or is Any.
func (l *BoolList) Or() bool { return l.Any() }

// NotAll is the negation of All.
func (l *BoolList) NotAll() bool { return !l.All() }

// None reports whether no element is true.
func (l *BoolList) None() bool { return !l.Any() }

// Nand is the negation of And.
func (l *BoolList) Nand() bool { return !l.And() }

// Nor is the negation of Or.
func (l *BoolList) Nor() bool { return !l.Or() }

// AllEqual reports whether every element has the same value. It is true
// for an empty list.
func (l *BoolList) AllEqual() bool { return l.All() || l.None() }

// CountTrue returns the number of true elements.
func (l *BoolList) CountTrue() int {
	n := 0
	for _, v := range l.items.inner {
		if v {
			n++
		}
	}
	return n
}

// CountFalse returns the number of false elements.
func (l *BoolList) CountFalse() int {
	return l.Len() - l.CountTrue()
}

// StringList is an observable list of strings.
type StringList struct{ *List[string] }

// NewStringList creates a StringList holding values.
func NewStringList(values ...string) *StringList {
	return &StringList{NewList(StringCodec, values...)}
}

// Concatenated joins the elements with ", ".
func (l *StringList) Concatenated() string {
	return strings.Join(l.items.inner, ", ")
}

// Vec2List is an observable list of 2D vectors.
type Vec2List struct{ *List[vector.Vec2] }

// NewVec2List creates a Vec2List holding values.
func NewVec2List(values ...vector.Vec2) *Vec2List {
	return &Vec2List{NewList(Vec2Codec, values...)}
}

// Sum returns the component-wise sum of the elements.
func (l *Vec2List) Sum() vector.Vec2 {
	var total vector.Vec2
	for _, v := range l.items.inner {
		total = total.Add(v)
	}
	return total
}

// Centroid returns the mean of the elements.
func (l *Vec2List) Centroid() (vector.Vec2, error) {
	if l.Len() == 0 {
		return vector.Vec2{}, errors.New("observable.Vec2List.Centroid", errors.KindEmptySequence, nil)
	}
	return l.Sum().Scale(1 / float64(l.Len())), nil
}

// Vec3List is an observable list of 3D vectors.
type Vec3List struct{ *List[vector.Vec3] }

// NewVec3List creates a Vec3List holding values.
func NewVec3List(values ...vector.Vec3) *Vec3List {
	return &Vec3List{NewList(Vec3Codec, values...)}
}

// Sum returns the component-wise sum of the elements.
func (l *Vec3List) Sum() vector.Vec3 {
	var total vector.Vec3
	for _, v := range l.items.inner {
		total = total.Add(v)
	}
	return total
}

// Centroid returns the mean of the elements.
func (l *Vec3List) Centroid() (vector.Vec3, error) {
	if l.Len() == 0 {
		return vector.Vec3{}, errors.New("observable.Vec3List.Centroid", errors.KindEmptySequence, nil)
	}
	return l.Sum().Scale(1 / float64(l.Len())), nil
}

var (
	_ Model = (*Value[int])(nil)
	_ Model = (*List[int])(nil)
	_ Model = (*BoolList)(nil)

	_ Writable[int]          = (*Value[int])(nil)
	_ Readable[*Items[bool]] = (*List[bool])(nil)
)
