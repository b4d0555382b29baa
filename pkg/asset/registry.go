package asset

import (
	"slices"
	"strings"

	"github.com/go-drift/observable/pkg/catalog"
	"github.com/go-drift/observable/pkg/errors"
	"github.com/go-drift/observable/pkg/observable"
)

// Catalog is the type-erased view of a persisted catalog.
type Catalog interface {
	Keys() []string
	Len() int
	Model(key string) (observable.Model, error)
	Remove(key string) bool
	ResetAll()
}

type catalogView[V comparable] struct {
	c *catalog.Catalog[string, V]
}

func (v catalogView[V]) Keys() []string         { return v.c.Keys() }
func (v catalogView[V]) Len() int               { return v.c.Len() }
func (v catalogView[V]) Remove(key string) bool { return v.c.Remove(key) }
func (v catalogView[V]) ResetAll()              { v.c.ResetAll() }

func (v catalogView[V]) Model(key string) (observable.Model, error) {
	m, err := v.c.Get(key)
	if err != nil {
		return nil, err
	}
	return m, nil
}

// Asset is a decoded document of any kind.
type Asset struct {
	Header
	model   observable.Model
	catalog Catalog
	encode  func(h Header, f Format) ([]byte, error)
}

// Model returns the value or list held by the asset.
func (a *Asset) Model() (observable.Model, bool) {
	return a.model, a.model != nil
}

// Catalog returns the catalog held by the asset.
func (a *Asset) Catalog() (Catalog, bool) {
	return a.catalog, a.catalog != nil
}

// Encode writes the asset in format f, keeping its GUID.
func (a *Asset) Encode(f Format) ([]byte, error) {
	return a.encode(a.Header, f)
}

type kindHandler struct {
	open   func(h Header, data []byte, f Format) (*Asset, error)
	create func(h Header, args []string) (*Asset, error)
}

var handlers = map[Kind]kindHandler{}

func init() {
	register(observable.BoolCodec)
	register(observable.IntCodec)
	register(observable.FloatCodec)
	register(observable.StringCodec)
	register(observable.Vec2Codec)
	register(observable.Vec3Codec)
}

// register installs the value, list and catalog kinds for one element type.
func register[T comparable](codec observable.Codec[T]) {
	handlers[Kind(codec.Name)] = kindHandler{
		open: func(h Header, data []byte, f Format) (*Asset, error) {
			var zero T
			v := observable.New(zero, codec)
			if err := restoreValue(h, data, f, v); err != nil {
				return nil, err
			}
			return valueAsset(h, v), nil
		},
		create: func(h Header, args []string) (*Asset, error) {
			var initial T
			switch len(args) {
			case 0:
			case 1:
				parsed, err := codec.Parse(args[0])
				if err != nil {
					return nil, err
				}
				initial = parsed
			default:
				return nil, errors.Newf("asset.Create", errors.KindFormat, "%s takes at most one value, got %d", h.Kind, len(args))
			}
			return valueAsset(h, observable.New(initial, codec)), nil
		},
	}

	handlers[Kind(codec.Name+listSuffix)] = kindHandler{
		open: func(h Header, data []byte, f Format) (*Asset, error) {
			l := observable.NewList(codec)
			if err := restoreList(h, data, f, l); err != nil {
				return nil, err
			}
			return listAsset(h, l), nil
		},
		create: func(h Header, args []string) (*Asset, error) {
			values := make([]T, 0, len(args))
			for _, arg := range args {
				v, err := codec.Parse(arg)
				if err != nil {
					return nil, err
				}
				values = append(values, v)
			}
			return listAsset(h, observable.NewList(codec, values...)), nil
		},
	}

	handlers[Kind(codec.Name+catalogSuffix)] = kindHandler{
		open: func(h Header, data []byte, f Format) (*Asset, error) {
			c, err := restoreCatalog(h, data, f, codec)
			if err != nil {
				return nil, err
			}
			return catalogAsset(h, c, codec), nil
		},
		create: func(h Header, args []string) (*Asset, error) {
			pairs := make([]catalog.Pair[string, T], 0, len(args))
			for _, arg := range args {
				key, text, ok := strings.Cut(arg, "=")
				if !ok || key == "" {
					return nil, errors.Newf("asset.Create", errors.KindParse, "catalog entry %q is not key=value", arg)
				}
				v, err := codec.Parse(text)
				if err != nil {
					return nil, err
				}
				pairs = append(pairs, catalog.P(key, v))
			}
			c, err := catalog.New(func(v T) *observable.Value[T] { return observable.New(v, codec) }, pairs...)
			if err != nil {
				return nil, err
			}
			return catalogAsset(h, c, codec), nil
		},
	}
}

func valueAsset[T any](h Header, v *observable.Value[T]) *Asset {
	return &Asset{
		Header: h,
		model:  v,
		encode: func(h Header, f Format) ([]byte, error) { return EncodeValue(v, h.GUID, f) },
	}
}

func listAsset[E comparable](h Header, l *observable.List[E]) *Asset {
	return &Asset{
		Header: h,
		model:  l,
		encode: func(h Header, f Format) ([]byte, error) { return EncodeList(l, h.GUID, f) },
	}
}

func catalogAsset[V comparable](h Header, c *catalog.Catalog[string, V], codec observable.Codec[V]) *Asset {
	return &Asset{
		Header:  h,
		catalog: catalogView[V]{c: c},
		encode:  func(h Header, f Format) ([]byte, error) { return EncodeCatalog(c, codec, h.GUID, f) },
	}
}

// Kinds returns every supported kind, sorted.
func Kinds() []Kind {
	kinds := make([]Kind, 0, len(handlers))
	for k := range handlers {
		kinds = append(kinds, k)
	}
	slices.Sort(kinds)
	return kinds
}

func handlerFor(op string, kind Kind) (kindHandler, error) {
	h, ok := handlers[kind]
	if !ok {
		return kindHandler{}, errors.Newf(op, errors.KindFormat, "unknown kind %q", kind)
	}
	return h, nil
}

// Create builds a new asset of the given kind with a fresh GUID. Values
// are given in text form: one value for a value kind, one per element for
// a list kind and key=value per entry for a catalog kind.
func Create(kind Kind, args ...string) (*Asset, error) {
	h, err := handlerFor("asset.Create", kind)
	if err != nil {
		return nil, err
	}
	return h.create(NewHeader(kind), args)
}

// Open validates and decodes a document of any kind.
func Open(data []byte, f Format) (*Asset, error) {
	header, err := ReadHeader(data, f)
	if err != nil {
		return nil, err
	}
	h, err := handlerFor("asset.Open", header.Kind)
	if err != nil {
		return nil, err
	}
	return h.open(header, data, f)
}
