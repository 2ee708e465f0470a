package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
)

// Decode reads the JSON body of r into val. Struct values are then
// checked against their validate tags.
func Decode[T any](r *http.Request, val *T) error {
	decoder := json.NewDecoder(r.Body)
	if err := decoder.Decode(val); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("decode: empty body")
		}
		return fmt.Errorf("decode: %w", err)
	}

	if reflect.Indirect(reflect.ValueOf(val)).Kind() != reflect.Struct {
		return nil
	}

	return Validate(val)
}

// Remarshal converts a decoded payload into the struct T and validates it.
func Remarshal[T any](payload map[string]any) (T, error) {
	var val T

	b, err := json.Marshal(payload)
	if err != nil {
		return val, fmt.Errorf("remarshal: %w", err)
	}
	if err := json.Unmarshal(b, &val); err != nil {
		return val, fmt.Errorf("remarshal: %w", err)
	}

	return val, Validate(&val)
}
