package schema

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"

	"github.com/julianstephens/habitcraft/internal/validation"
)

// BodyField is the field path used for violations about the payload as a whole
const BodyField = "body"

func bodyError(reason string) error {
	return &validation.ValidationError{Violations: []validation.Violation{{Field: BodyField, Reason: reason}}}
}

// DecodeRaw decodes a single JSON object. Numbers are kept as json.Number so
// that integer fields can reject fractional values.
func DecodeRaw(data []byte) (Raw, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, bodyError("empty payload")
		}
		return nil, bodyError("invalid JSON: " + err.Error())
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, bodyError("unexpected data after JSON object")
	}

	obj, ok := v.(map[string]any)
	if !ok {
		return nil, bodyError("must be a JSON object")
	}
	return Raw(obj), nil
}

// Decode decodes data as a JSON object and constructs a record with parse
func Decode[T any](data []byte, parse func(Raw) (T, error)) (T, error) {
	raw, err := DecodeRaw(data)
	if err != nil {
		var zero T
		return zero, err
	}
	return parse(raw)
}
