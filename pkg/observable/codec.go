package observable

import (
	"strconv"
	"strings"

	"github.com/go-drift/observable/pkg/errors"
	"github.com/go-drift/observable/pkg/vector"
)

// Codec converts values of T to and from their canonical text form.
type Codec[T any] struct {
	// Name identifies the element type in asset documents
	// (e.g., "float", "vec3").
	Name   string
	Format func(T) string
	Parse  func(string) (T, error)

	// Canonical, if set, maps values that compare equal to one
	// representative before hashing (e.g., -0 to +0).
	Canonical func(T) T
}

// hashText returns the text of the canonical form of v.
func (c Codec[T]) hashText(v T) string {
	if c.Canonical != nil {
		v = c.Canonical(v)
	}
	return c.Format(v)
}

// Built-in codecs for the supported element types.
var (
	BoolCodec   = Codec[bool]{Name: "bool", Format: strconv.FormatBool, Parse: parseBool}
	IntCodec    = Codec[int]{Name: "int", Format: strconv.Itoa, Parse: parseInt}
	FloatCodec  = Codec[float64]{Name: "float", Format: formatFloat, Parse: parseFloat, Canonical: canonicalFloat}
	StringCodec = Codec[string]{Name: "string", Format: identity, Parse: parseString}
	Vec2Codec   = Codec[vector.Vec2]{Name: "vec2", Format: vector.Vec2.String, Parse: vector.ParseVec2, Canonical: vector.Vec2.Canonical}
	Vec3Codec   = Codec[vector.Vec3]{Name: "vec3", Format: vector.Vec3.String, Parse: vector.ParseVec3, Canonical: vector.Vec3.Canonical}
)

func parseError(dataType, input string, err error) error {
	return errors.New("observable.Parse", errors.KindParse, &errors.ParseError{
		DataType: dataType,
		Input:    input,
		Err:      err,
	})
}

func parseBool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	return false, parseError("bool", s, nil)
}

func parseInt(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, parseError("int", s, err)
	}
	return n, nil
}

// parseFloat accepts both "42.5" and "42,5".
func parseFloat(s string) (float64, error) {
	f, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(s), ",", "."), 64)
	if err != nil {
		return 0, parseError("float", s, err)
	}
	return f, nil
}

// canonicalFloat folds -0 into +0.
func canonicalFloat(f float64) float64 {
	if f == 0 {
		return 0
	}
	return f
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func identity(s string) string { return s }

func parseString(s string) (string, error) { return s, nil }
