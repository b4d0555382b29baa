package asset

import (
	goerrors "errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/go-drift/observable/pkg/catalog"
	"github.com/go-drift/observable/pkg/errors"
	"github.com/go-drift/observable/pkg/observable"
	"github.com/go-drift/observable/pkg/vector"
	"github.com/google/uuid"
)

var formats = []Format{YAML, JSON}

func TestValueRoundTrip(t *testing.T) {
	for _, f := range formats {
		t.Run(f.String(), func(t *testing.T) {
			src := observable.NewFloat(1.5)
			src.Set(2.25)
			guid := uuid.New()

			data, err := EncodeValue(src, guid, f)
			if err != nil {
				t.Fatalf("EncodeValue: %v", err)
			}

			dst := observable.NewFloat(0)
			notified := false
			dst.AddListener(func(float64) { notified = true })
			h, err := DecodeValue(data, f, dst)
			if err != nil {
				t.Fatalf("DecodeValue: %v\n%s", err, data)
			}
			if h.GUID != guid || h.Kind != "float" || h.Format != CurrentFormat {
				t.Errorf("header = %+v", h)
			}
			if dst.Initial() != 1.5 || dst.Value() != 2.25 {
				t.Errorf("initial, current = %v, %v, want 1.5, 2.25", dst.Initial(), dst.Value())
			}
			if notified {
				t.Error("decoding should not notify")
			}
		})
	}
}

func TestVectorListRoundTrip(t *testing.T) {
	for _, f := range formats {
		t.Run(f.String(), func(t *testing.T) {
			src := observable.NewVec3List(vector.V3(0, 0, 0), vector.V3(1, 2, 3))
			src.Add(vector.V3(0.5, 0, -1))

			data, err := EncodeList(src.List, uuid.New(), f)
			if err != nil {
				t.Fatal(err)
			}
			dst := observable.NewVec3List()
			if _, err := DecodeList(data, f, dst.List); err != nil {
				t.Fatalf("DecodeList: %v\n%s", err, data)
			}
			if !slices.Equal(dst.Slice(), src.Slice()) {
				t.Errorf("current = %v, want %v", dst.Slice(), src.Slice())
			}
			if !slices.Equal(dst.Initial(), src.Initial()) {
				t.Errorf("initial = %v, want %v", dst.Initial(), src.Initial())
			}
		})
	}
}

func TestEmptyListRoundTrip(t *testing.T) {
	data, err := EncodeList(observable.NewStringList().List, uuid.New(), JSON)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"current_value": []`) {
		t.Errorf("empty list should encode as [], got:\n%s", data)
	}
	dst := observable.NewStringList("x")
	if _, err := DecodeList(data, JSON, dst.List); err != nil {
		t.Fatal(err)
	}
	if dst.Len() != 0 || dst.Value() == nil {
		t.Errorf("Len() = %d, want 0", dst.Len())
	}
}

func TestCatalogRoundTrip(t *testing.T) {
	for _, f := range formats {
		t.Run(f.String(), func(t *testing.T) {
			src, err := catalog.Ints(catalog.P("hp", 100), catalog.P("mana", 50))
			if err != nil {
				t.Fatal(err)
			}
			hp, _ := src.Get("hp")
			hp.Set(80)

			data, err := EncodeCatalog(src, observable.IntCodec, uuid.New(), f)
			if err != nil {
				t.Fatal(err)
			}
			dst, h, err := DecodeCatalog(data, f, observable.IntCodec)
			if err != nil {
				t.Fatalf("DecodeCatalog: %v\n%s", err, data)
			}
			if h.Kind != "int_catalog" {
				t.Errorf("kind = %q", h.Kind)
			}
			if !slices.Equal(dst.Keys(), []string{"hp", "mana"}) {
				t.Errorf("Keys() = %v", dst.Keys())
			}
			got, _ := dst.Get("hp")
			if got.Value() != 80 || got.Initial() != 100 {
				t.Errorf("hp = %d (initial %d), want 80 (initial 100)", got.Value(), got.Initial())
			}
		})
	}
}

func TestCatalogDuplicateKeysFirstWins(t *testing.T) {
	doc := `format: v1.0.0
guid: 4f8e7b84-5d6a-4c0e-9a0b-8d2c3c1d5e6f
kind: float_catalog
entries:
  - key: one
    value: {initial_value: 1, current_value: 1}
  - key: one
    value: {initial_value: 2, current_value: 2}
`
	c, _, err := DecodeCatalog([]byte(doc), YAML, observable.FloatCodec)
	if err != nil {
		t.Fatal(err)
	}
	one, err := c.Get("one")
	if err != nil {
		t.Fatal(err)
	}
	if one.Value() != 1 {
		t.Errorf("one = %v, want 1", one.Value())
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}
}

func TestReadHeaderRejects(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"not yaml", "kind: [unterminated"},
		{"empty", ""},
		{"missing guid", "format: v1.0.0\nkind: int\ninitial_value: 1\ncurrent_value: 1\n"},
		{"bad guid", "format: v1.0.0\nguid: nope\nkind: int\ninitial_value: 1\ncurrent_value: 1\n"},
		{"unknown kind", "format: v1.0.0\nguid: 4f8e7b84-5d6a-4c0e-9a0b-8d2c3c1d5e6f\nkind: quaternion\ninitial_value: 1\ncurrent_value: 1\n"},
		{"no body", "format: v1.0.0\nguid: 4f8e7b84-5d6a-4c0e-9a0b-8d2c3c1d5e6f\nkind: int\n"},
		{"future major", "format: v2.0.0\nguid: 4f8e7b84-5d6a-4c0e-9a0b-8d2c3c1d5e6f\nkind: int\ninitial_value: 1\ncurrent_value: 1\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadHeader([]byte(tt.doc), YAML)
			if !errors.IsKind(err, errors.KindFormat) {
				t.Errorf("ReadHeader error = %v, want KindFormat", err)
			}
		})
	}
}

func TestReadHeaderAcceptsMinorVersion(t *testing.T) {
	doc := "format: v1.3.0\nguid: 4f8e7b84-5d6a-4c0e-9a0b-8d2c3c1d5e6f\nkind: int\ninitial_value: 1\ncurrent_value: 1\n"
	if _, err := ReadHeader([]byte(doc), YAML); err != nil {
		t.Errorf("ReadHeader: %v", err)
	}
}

func TestDecodeKindMismatch(t *testing.T) {
	data, err := EncodeValue(observable.NewInt(1), uuid.New(), YAML)
	if err != nil {
		t.Fatal(err)
	}
	_, err = DecodeValue(data, YAML, observable.NewString(""))
	if !errors.IsKind(err, errors.KindFormat) {
		t.Errorf("error = %v, want KindFormat", err)
	}
}

func TestDecodeBadElement(t *testing.T) {
	doc := `{"format":"v1.0.0","guid":"4f8e7b84-5d6a-4c0e-9a0b-8d2c3c1d5e6f","kind":"vec2","initial_value":"(1, 2)","current_value":"(1, 2, 3)"}`
	_, err := DecodeValue([]byte(doc), JSON, observable.NewVec2(vector.Vec2{}))
	if err == nil {
		t.Error("expected an error for a three-component vec2")
	}
}

func TestCreateAndOpen(t *testing.T) {
	tests := []struct {
		kind    Kind
		args    []string
		current string
	}{
		{"bool", []string{"True"}, "true"},
		{"float", []string{"42,5"}, "42.5"},
		{"vec3", []string{"(1 1 1)"}, "(1, 1, 1)"},
		{"int_list", []string{"1", "2", "3"}, "1, 2, 3"},
		{"string", nil, ""},
	}
	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			a, err := Create(tt.kind, tt.args...)
			if err != nil {
				t.Fatal(err)
			}
			data, err := a.Encode(YAML)
			if err != nil {
				t.Fatal(err)
			}
			opened, err := Open(data, YAML)
			if err != nil {
				t.Fatalf("Open: %v\n%s", err, data)
			}
			if opened.GUID != a.GUID {
				t.Errorf("GUID changed: %v -> %v", a.GUID, opened.GUID)
			}
			m, ok := opened.Model()
			if !ok {
				t.Fatal("Model() missing")
			}
			if m.String() != tt.current {
				t.Errorf("String() = %q, want %q", m.String(), tt.current)
			}
			if m.TypeName() != string(tt.kind) {
				t.Errorf("TypeName() = %q, want %q", m.TypeName(), tt.kind)
			}
		})
	}
}

func TestCreateCatalog(t *testing.T) {
	a, err := Create("vec2_catalog", "spawn=(0, 1)", "exit=2 3")
	if err != nil {
		t.Fatal(err)
	}
	c, ok := a.Catalog()
	if !ok {
		t.Fatal("Catalog() missing")
	}
	if !slices.Equal(c.Keys(), []string{"spawn", "exit"}) {
		t.Errorf("Keys() = %v", c.Keys())
	}
	m, err := c.Model("exit")
	if err != nil {
		t.Fatal(err)
	}
	if m.String() != "(2, 3)" {
		t.Errorf("exit = %q", m.String())
	}
	if _, err := c.Model("missing"); !errors.IsKind(err, errors.KindKeyNotFound) {
		t.Errorf("Model(missing) error = %v, want KindKeyNotFound", err)
	}

	if _, err := Create("int_catalog", "a=1", "a=2"); !errors.IsKind(err, errors.KindDuplicateKey) {
		t.Errorf("duplicate error = %v, want KindDuplicateKey", err)
	}
	if _, err := Create("int_catalog", "novalue"); !errors.IsKind(err, errors.KindParse) {
		t.Errorf("malformed entry error = %v, want KindParse", err)
	}
}

func TestCreateErrors(t *testing.T) {
	if _, err := Create("matrix"); !errors.IsKind(err, errors.KindFormat) {
		t.Errorf("unknown kind error = %v, want KindFormat", err)
	}
	if _, err := Create("int", "1", "2"); !errors.IsKind(err, errors.KindFormat) {
		t.Errorf("too many values error = %v, want KindFormat", err)
	}
	if _, err := Create("int", "x"); !errors.IsKind(err, errors.KindParse) {
		t.Errorf("bad value error = %v, want KindParse", err)
	}
}

func TestCatalogRemoveSurvivesSave(t *testing.T) {
	a, err := Create("string_catalog", "greeting=hello", "farewell=bye")
	if err != nil {
		t.Fatal(err)
	}
	c, _ := a.Catalog()
	c.Remove("greeting")

	data, err := a.Encode(JSON)
	if err != nil {
		t.Fatal(err)
	}
	reopened, err := Open(data, JSON)
	if err != nil {
		t.Fatal(err)
	}
	rc, _ := reopened.Catalog()
	if !slices.Equal(rc.Keys(), []string{"farewell"}) {
		t.Errorf("Keys() = %v, want [farewell]", rc.Keys())
	}
}

func TestLoadSave(t *testing.T) {
	dir := t.TempDir()
	a, err := Create("bool_list", "true", "false")
	if err != nil {
		t.Fatal(err)
	}
	m, _ := a.Model()
	if err := m.SetString("false, false, true"); err != nil {
		t.Fatal(err)
	}

	for _, name := range []string{"flags.yaml", "flags.json"} {
		path := filepath.Join(dir, name)
		if err := Save(path, a); err != nil {
			t.Fatalf("Save(%s): %v", name, err)
		}
		loaded, err := Load(path)
		if err != nil {
			t.Fatalf("Load(%s): %v", name, err)
		}
		lm, _ := loaded.Model()
		if lm.String() != "false, false, true" {
			t.Errorf("%s: String() = %q", name, lm.String())
		}
		lm.Reset()
		if lm.String() != "true, false" {
			t.Errorf("%s: after Reset = %q", name, lm.String())
		}
		if _, err := ValidateFile(path); err != nil {
			t.Errorf("ValidateFile(%s): %v", name, err)
		}
	}

	if err := Save(filepath.Join(dir, "flags.txt"), a); !errors.IsKind(err, errors.KindFormat) {
		t.Errorf("Save(.txt) error = %v, want KindFormat", err)
	}
	if _, err := Load(filepath.Join(dir, "missing.yaml")); !goerrors.Is(err, os.ErrNotExist) {
		t.Errorf("Load(missing) error = %v, want not-exist", err)
	}
}

func TestFormatForPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
		ok   bool
	}{
		{"a.yaml", YAML, true},
		{"a.YML", YAML, true},
		{"dir/a.json", JSON, true},
		{"a.toml", YAML, false},
		{"a", YAML, false},
	}
	for _, tt := range tests {
		got, err := FormatForPath(tt.path)
		if (err == nil) != tt.ok || (tt.ok && got != tt.want) {
			t.Errorf("FormatForPath(%q) = %v, %v", tt.path, got, err)
		}
	}
}

func TestKinds(t *testing.T) {
	kinds := Kinds()
	if len(kinds) != 18 {
		t.Errorf("len(Kinds()) = %d, want 18", len(kinds))
	}
	if !slices.IsSorted(kinds) {
		t.Error("Kinds() should be sorted")
	}
	k := Kind("vec3_catalog")
	if !k.IsCatalog() || k.IsList() || k.Element() != "vec3" {
		t.Errorf("Kind helpers mismatch for %q", k)
	}
}
