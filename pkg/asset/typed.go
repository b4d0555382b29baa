package asset

import (
	"github.com/go-drift/observable/pkg/catalog"
	"github.com/go-drift/observable/pkg/observable"
	"github.com/google/uuid"
)

// Record is the persisted shape of a single model.
type Record[T any] struct {
	Initial T `yaml:"initial_value" json:"initial_value"`
	Current T `yaml:"current_value" json:"current_value"`
}

// ValueDocument is the document form of a single value.
type ValueDocument[T any] struct {
	Header    `yaml:",inline"`
	Record[T] `yaml:",inline"`
}

// ListDocument is the document form of a list.
type ListDocument[E any] struct {
	Header      `yaml:",inline"`
	Record[[]E] `yaml:",inline"`
}

// EntryDocument is one persisted catalog entry.
type EntryDocument[V any] struct {
	Key   string    `yaml:"key" json:"key"`
	Value Record[V] `yaml:"value" json:"value"`
}

// CatalogDocument is the document form of a catalog.
type CatalogDocument[V any] struct {
	Header  `yaml:",inline"`
	Entries []EntryDocument[V] `yaml:"entries" json:"entries"`
}

func orEmpty[E any](s []E) []E {
	if s == nil {
		return []E{}
	}
	return s
}

// EncodeValue writes v as a document with the given GUID.
func EncodeValue[T any](v *observable.Value[T], guid uuid.UUID, f Format) ([]byte, error) {
	doc := ValueDocument[T]{
		Header: Header{Format: CurrentFormat, GUID: guid, Kind: Kind(v.TypeName())},
		Record: Record[T]{Initial: v.Initial(), Current: v.Value()},
	}
	return marshal(doc, f)
}

// DecodeValue restores v from data without notifying its listeners.
func DecodeValue[T any](data []byte, f Format, v *observable.Value[T]) (Header, error) {
	h, err := ReadHeader(data, f)
	if err != nil {
		return Header{}, err
	}
	return h, restoreValue(h, data, f, v)
}

func restoreValue[T any](h Header, data []byte, f Format, v *observable.Value[T]) error {
	if err := expectKind("asset.DecodeValue", h, Kind(v.TypeName())); err != nil {
		return err
	}
	var doc ValueDocument[T]
	if err := unmarshal(data, f, &doc); err != nil {
		return err
	}
	v.Restore(doc.Initial, doc.Current)
	return nil
}

// EncodeList writes l as a document with the given GUID.
func EncodeList[E comparable](l *observable.List[E], guid uuid.UUID, f Format) ([]byte, error) {
	doc := ListDocument[E]{
		Header: Header{Format: CurrentFormat, GUID: guid, Kind: Kind(l.TypeName())},
		Record: Record[[]E]{Initial: orEmpty(l.Initial()), Current: orEmpty(l.Slice())},
	}
	return marshal(doc, f)
}

// DecodeList restores l from data without notifying its listeners.
func DecodeList[E comparable](data []byte, f Format, l *observable.List[E]) (Header, error) {
	h, err := ReadHeader(data, f)
	if err != nil {
		return Header{}, err
	}
	return h, restoreList(h, data, f, l)
}

func restoreList[E comparable](h Header, data []byte, f Format, l *observable.List[E]) error {
	if err := expectKind("asset.DecodeList", h, Kind(l.TypeName())); err != nil {
		return err
	}
	var doc ListDocument[E]
	if err := unmarshal(data, f, &doc); err != nil {
		return err
	}
	l.Restore(doc.Initial, doc.Current)
	return nil
}

// EncodeCatalog serializes c and writes its backing list as a document.
func EncodeCatalog[V comparable](c *catalog.Catalog[string, V], codec observable.Codec[V], guid uuid.UUID, f Format) ([]byte, error) {
	entries := c.Serialize()
	doc := CatalogDocument[V]{
		Header:  Header{Format: CurrentFormat, GUID: guid, Kind: Kind(codec.Name + catalogSuffix)},
		Entries: make([]EntryDocument[V], 0, len(entries)),
	}
	for _, e := range entries {
		if e.Value == nil {
			continue
		}
		doc.Entries = append(doc.Entries, EntryDocument[V]{
			Key:   e.Key,
			Value: Record[V]{Initial: e.Value.Initial(), Current: e.Value.Value()},
		})
	}
	return marshal(doc, f)
}

// DecodeCatalog builds a catalog from data. Duplicate keys keep their
// first occurrence.
func DecodeCatalog[V comparable](data []byte, f Format, codec observable.Codec[V]) (*catalog.Catalog[string, V], Header, error) {
	h, err := ReadHeader(data, f)
	if err != nil {
		return nil, Header{}, err
	}
	c, err := restoreCatalog(h, data, f, codec)
	if err != nil {
		return nil, Header{}, err
	}
	return c, h, nil
}

func restoreCatalog[V comparable](h Header, data []byte, f Format, codec observable.Codec[V]) (*catalog.Catalog[string, V], error) {
	if err := expectKind("asset.DecodeCatalog", h, Kind(codec.Name+catalogSuffix)); err != nil {
		return nil, err
	}
	var doc CatalogDocument[V]
	if err := unmarshal(data, f, &doc); err != nil {
		return nil, err
	}
	entries := make([]catalog.Entry[string, V], len(doc.Entries))
	for i, e := range doc.Entries {
		v := observable.New(e.Value.Initial, codec)
		v.Restore(e.Value.Initial, e.Value.Current)
		entries[i] = catalog.Entry[string, V]{Key: e.Key, Value: v}
	}
	c := catalog.Empty[string, V]()
	c.Deserialize(entries)
	return c, nil
}
