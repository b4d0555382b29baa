package vector

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/go-drift/observable/pkg/errors"
)

func TestParseVec3Tolerance(t *testing.T) {
	inputs := []string{
		"1,1,1",
		"(1,1,1)",
		"1 1 1",
		"(1 1 1)",
		"1, 1, 1",
		"(1, 1, 1)",
		"  ( 1,  1 ,1 )  ",
		"1   1\t1",
	}
	for _, in := range inputs {
		got, err := ParseVec3(in)
		if err != nil {
			t.Errorf("ParseVec3(%q) error: %v", in, err)
			continue
		}
		if got != V3(1, 1, 1) {
			t.Errorf("ParseVec3(%q) = %v, want (1, 1, 1)", in, got)
		}
	}
}

func TestParseVec2(t *testing.T) {
	tests := []struct {
		in   string
		want Vec2
	}{
		{"0.5, 2", V2(0.5, 2)},
		{"(-1 3.25)", V2(-1, 3.25)},
		{"(0,0)", V2(0, 0)},
	}
	for _, tt := range tests {
		got, err := ParseVec2(tt.in)
		if err != nil {
			t.Errorf("ParseVec2(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseVec2(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		fn   func() error
	}{
		{"vec3 too few", func() error { _, err := ParseVec3("1,2"); return err }},
		{"vec3 too many", func() error { _, err := ParseVec3("1 2 3 4"); return err }},
		{"vec2 not a number", func() error { _, err := ParseVec2("(a, 2)"); return err }},
		{"vec2 empty", func() error { _, err := ParseVec2(""); return err }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.fn()
			if !errors.IsKind(err, errors.KindParse) {
				t.Errorf("error = %v, want KindParse", err)
			}
		})
	}
}

func TestString(t *testing.T) {
	if got := V3(1, 0.5, -2).String(); got != "(1, 0.5, -2)" {
		t.Errorf("Vec3.String() = %q, want %q", got, "(1, 0.5, -2)")
	}
	if got := V2(0, 2).String(); got != "(0, 2)" {
		t.Errorf("Vec2.String() = %q, want %q", got, "(0, 2)")
	}
}

func TestArithmetic(t *testing.T) {
	if got := V3(1, 2, 3).Add(V3(1, 1, 1)).Scale(2); got != V3(4, 6, 8) {
		t.Errorf("Add/Scale = %v, want (4, 6, 8)", got)
	}
	v := V2(3, 4)
	if v.X() != 3 || v.Y() != 4 {
		t.Errorf("accessors = %v, %v", v.X(), v.Y())
	}
}

func TestTextRoundTrip(t *testing.T) {
	in := struct {
		P Vec3 `json:"p"`
	}{P: V3(1, 2.5, 3)}
	data, err := json.Marshal(in)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"p":"(1, 2.5, 3)"}` {
		t.Errorf("json = %s", data)
	}
	var out struct {
		P Vec3 `json:"p"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatal(err)
	}
	if out.P != in.P {
		t.Errorf("round trip = %v, want %v", out.P, in.P)
	}
}

func TestCanonical(t *testing.T) {
	negZero := math.Copysign(0, -1)
	v2 := V2(negZero, 1).Canonical()
	if math.Signbit(v2.X()) || v2.Y() != 1 {
		t.Errorf("Vec2.Canonical() = %v, want (0, 1)", v2)
	}
	v3 := V3(negZero, 2, negZero).Canonical()
	if math.Signbit(v3.X()) || math.Signbit(v3.Z()) || v3.Y() != 2 {
		t.Errorf("Vec3.Canonical() = %v, want (0, 2, 0)", v3)
	}
	if got := V2(-1, 0).Canonical(); got != V2(-1, 0) {
		t.Errorf("Canonical changed a non-zero component: %v", got)
	}
}
