// Package asset persists observable models as YAML or JSON documents.
//
// Every document starts with a header naming the document format version,
// a GUID and the model kind:
//
//	format: v1.0.0
//	guid: 3f0b3c51-0d0e-4a5e-9f57-0e8ddc3b0b4e
//	kind: float
//	initial_value: 1.5
//	current_value: 2
//
// Lists store sequences in both value fields. Catalogs store an ordered
// entries list of {key, value: {initial_value, current_value}} records.
// Documents are validated against an embedded JSON Schema before they are
// decoded.
package asset

import (
	"encoding/json"
	"path/filepath"
	"strings"

	"github.com/go-drift/observable/pkg/errors"
	"github.com/google/uuid"
	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"
)

// CurrentFormat is the document format version written by this package.
// Documents with the same major version can be read.
const CurrentFormat = "v1.0.0"

// Format selects the document encoding.
type Format int

const (
	// YAML encodes documents with gopkg.in/yaml.v3.
	YAML Format = iota
	// JSON encodes documents with encoding/json.
	JSON
)

func (f Format) String() string {
	if f == JSON {
		return "json"
	}
	return "yaml"
}

// ParseFormat converts "yaml", "yml" or "json" to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yaml", "yml":
		return YAML, nil
	case "json":
		return JSON, nil
	}
	return YAML, errors.Newf("asset.ParseFormat", errors.KindFormat, "unknown format %q", s)
}

// FormatForPath picks the format from the file extension.
func FormatForPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return YAML, errors.Newf("asset.FormatForPath", errors.KindFormat, "no extension on %q", path)
	}
	return ParseFormat(ext)
}

// Kind names the model type stored in a document,
// e.g. "float", "float_list" or "float_catalog".
type Kind string

const (
	listSuffix    = "_list"
	catalogSuffix = "_catalog"
)

// Element returns the element type name of the kind.
func (k Kind) Element() string {
	s := strings.TrimSuffix(string(k), listSuffix)
	return strings.TrimSuffix(s, catalogSuffix)
}

// IsList reports whether the kind is a list kind.
func (k Kind) IsList() bool { return strings.HasSuffix(string(k), listSuffix) }

// IsCatalog reports whether the kind is a catalog kind.
func (k Kind) IsCatalog() bool { return strings.HasSuffix(string(k), catalogSuffix) }

// Header is the common prefix of every document.
type Header struct {
	Format string    `yaml:"format" json:"format"`
	GUID   uuid.UUID `yaml:"guid" json:"guid"`
	Kind   Kind      `yaml:"kind" json:"kind"`
}

// NewHeader returns a header for kind with a fresh GUID.
func NewHeader(kind Kind) Header {
	return Header{Format: CurrentFormat, GUID: uuid.New(), Kind: kind}
}

func checkFormat(version string) error {
	if !semver.IsValid(version) {
		return errors.Newf("asset.checkFormat", errors.KindFormat, "invalid format version %q", version)
	}
	if semver.Major(version) != semver.Major(CurrentFormat) {
		return errors.Newf("asset.checkFormat", errors.KindFormat,
			"format %s is not compatible with %s", version, CurrentFormat)
	}
	return nil
}

func marshal(doc any, f Format) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	switch f {
	case JSON:
		data, err = json.MarshalIndent(doc, "", "  ")
		if err == nil {
			data = append(data, '\n')
		}
	default:
		data, err = yaml.Marshal(doc)
	}
	if err != nil {
		return nil, errors.New("asset.marshal", errors.KindFormat, err)
	}
	return data, nil
}

func unmarshal(data []byte, f Format, out any) error {
	var err error
	switch f {
	case JSON:
		err = json.Unmarshal(data, out)
	default:
		err = yaml.Unmarshal(data, out)
	}
	if err != nil {
		return errors.New("asset.unmarshal", errors.KindFormat, err)
	}
	return nil
}

// ReadHeader validates data against the document schema, checks the
// format version and returns the header.
func ReadHeader(data []byte, f Format) (Header, error) {
	raw, err := decodeGeneric(data, f)
	if err != nil {
		return Header{}, err
	}
	if err := validateDocument(raw); err != nil {
		return Header{}, err
	}
	var h Header
	if err := unmarshal(data, f, &h); err != nil {
		return Header{}, err
	}
	if err := checkFormat(h.Format); err != nil {
		return Header{}, err
	}
	return h, nil
}

func expectKind(op string, h Header, want Kind) error {
	if h.Kind != want {
		return errors.Newf(op, errors.KindFormat, "document kind %q, want %q", h.Kind, want)
	}
	return nil
}
