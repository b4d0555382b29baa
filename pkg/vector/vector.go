// Package vector provides the 2D and 3D vector values stored in observable
// models, along with their text forms.
//
// Both types accept the same loose input that hand-edited assets contain:
//
//	"1,2,3"  "(1,2,3)"  "1 2 3"  "(1 2 3)"  "1, 2, 3"  "(1, 2, 3)"
//
// and render as "(x, y, z)".
package vector

import (
	"strconv"
	"strings"

	"github.com/go-drift/observable/pkg/errors"
	"golang.org/x/image/math/f64"
)

// Vec2 is a two-component vector.
type Vec2 f64.Vec2

// Vec3 is a three-component vector.
type Vec3 f64.Vec3

// V2 builds a Vec2.
func V2(x, y float64) Vec2 { return Vec2{x, y} }

// V3 builds a Vec3.
func V3(x, y, z float64) Vec3 { return Vec3{x, y, z} }

func (v Vec2) X() float64 { return v[0] }
func (v Vec2) Y() float64 { return v[1] }

func (v Vec3) X() float64 { return v[0] }
func (v Vec3) Y() float64 { return v[1] }
func (v Vec3) Z() float64 { return v[2] }

// Add returns the component-wise sum.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v[0] + o[0], v[1] + o[1]} }

// Scale multiplies every component by s.
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v[0] * s, v[1] * s} }

// Add returns the component-wise sum.
func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v[0] + o[0], v[1] + o[1], v[2] + o[2]} }

// Scale multiplies every component by s.
func (v Vec3) Scale(s float64) Vec3 { return Vec3{v[0] * s, v[1] * s, v[2] * s} }

// Canonical returns v with every -0 component replaced by +0.
func (v Vec2) Canonical() Vec2 { return Vec2{canonical(v[0]), canonical(v[1])} }

// Canonical returns v with every -0 component replaced by +0.
func (v Vec3) Canonical() Vec3 { return Vec3{canonical(v[0]), canonical(v[1]), canonical(v[2])} }

func canonical(f float64) float64 {
	if f == 0 {
		return 0
	}
	return f
}

func (v Vec2) String() string { return format(v[:]) }
func (v Vec3) String() string { return format(v[:]) }

func (v Vec2) MarshalText() ([]byte, error) { return []byte(v.String()), nil }
func (v Vec3) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

func (v *Vec2) UnmarshalText(text []byte) error {
	p, err := ParseVec2(string(text))
	if err != nil {
		return err
	}
	*v = p
	return nil
}

func (v *Vec3) UnmarshalText(text []byte) error {
	p, err := ParseVec3(string(text))
	if err != nil {
		return err
	}
	*v = p
	return nil
}

// ParseVec2 parses a Vec2 from its loose text form.
func ParseVec2(s string) (Vec2, error) {
	var v Vec2
	if err := parseInto(v[:], "vec2", s); err != nil {
		return Vec2{}, err
	}
	return v, nil
}

// ParseVec3 parses a Vec3 from its loose text form.
func ParseVec3(s string) (Vec3, error) {
	var v Vec3
	if err := parseInto(v[:], "vec3", s); err != nil {
		return Vec3{}, err
	}
	return v, nil
}

func format(c []float64) string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, f := range c {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.FormatFloat(f, 'g', -1, 64))
	}
	sb.WriteByte(')')
	return sb.String()
}

func parseInto(dst []float64, typeName, s string) error {
	body := strings.TrimSpace(s)
	body = strings.TrimPrefix(body, "(")
	body = strings.TrimSuffix(body, ")")

	var parts []string
	if strings.Contains(body, ",") {
		parts = strings.Split(body, ",")
	} else {
		parts = strings.Fields(body)
	}
	if len(parts) != len(dst) {
		return errors.New("vector.Parse", errors.KindParse, &errors.ParseError{
			DataType: typeName,
			Input:    s,
			Err:      errComponentCount{want: len(dst), got: len(parts)},
		})
	}
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return errors.New("vector.Parse", errors.KindParse, &errors.ParseError{
				DataType: typeName,
				Input:    s,
				Err:      err,
			})
		}
		dst[i] = f
	}
	return nil
}

type errComponentCount struct{ want, got int }

func (e errComponentCount) Error() string {
	return "want " + strconv.Itoa(e.want) + " components, got " + strconv.Itoa(e.got)
}
