package asset

import (
	_ "embed"
	"encoding/json"
	"strings"
	"sync"

	"github.com/go-drift/observable/pkg/errors"
	"github.com/google/uuid"
	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

//go:embed schema/document.schema.json
var documentSchema []byte

var (
	schemaOnce sync.Once
	schema     *gojsonschema.Schema
	schemaErr  error
)

// guidFormatChecker implements gojsonschema.FormatChecker for guid.
type guidFormatChecker struct{}

// IsFormat validates that the input is a UUID.
func (guidFormatChecker) IsFormat(input interface{}) bool {
	s, ok := input.(string)
	if !ok {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}

func loadSchema() (*gojsonschema.Schema, error) {
	schemaOnce.Do(func() {
		gojsonschema.FormatCheckers.Add("guid", guidFormatChecker{})
		schema, schemaErr = gojsonschema.NewSchema(gojsonschema.NewBytesLoader(documentSchema))
	})
	return schema, schemaErr
}

// decodeGeneric unmarshals data into a plain map for schema validation.
func decodeGeneric(data []byte, f Format) (map[string]any, error) {
	var raw map[string]any
	var err error
	switch f {
	case JSON:
		err = json.Unmarshal(data, &raw)
	default:
		err = yaml.Unmarshal(data, &raw)
	}
	if err != nil {
		return nil, errors.New("asset.decode", errors.KindFormat, err)
	}
	if raw == nil {
		return nil, errors.Newf("asset.decode", errors.KindFormat, "empty document")
	}
	return raw, nil
}

// validateDocument checks raw against the embedded document schema.
func validateDocument(raw map[string]any) error {
	s, err := loadSchema()
	if err != nil {
		return errors.New("asset.validate", errors.KindFormat, err)
	}
	result, err := s.Validate(gojsonschema.NewGoLoader(raw))
	if err != nil {
		return errors.New("asset.validate", errors.KindFormat, err)
	}
	if !result.Valid() {
		var msgs []string
		for _, desc := range result.Errors() {
			msgs = append(msgs, desc.String())
		}
		return errors.Newf("asset.validate", errors.KindFormat, "invalid document: %s", strings.Join(msgs, "; "))
	}
	return nil
}
