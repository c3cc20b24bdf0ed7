// Package yamlutil wraps YAML parsing to isolate the external dependency.
// This allows swapping the underlying YAML library without modifying callers.
package yamlutil

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/goccy/go-yaml"
)

// MaxInputSize limits YAML input to prevent memory exhaustion (default 1MB).
var MaxInputSize = 1 << 20

var (
	ErrNilData        = errors.New("yamlutil: nil or empty data")
	ErrNilDestination = errors.New("yamlutil: nil destination pointer")
	ErrInputTooLarge  = errors.New("yamlutil: input exceeds maximum size")
	ErrEmptyKey       = errors.New("yamlutil: empty mapping key")
)

// Field is one key of an ordered mapping.
type Field struct {
	Key   string
	Value any
}

func validateInput(data []byte, v any) error {
	if len(data) == 0 {
		return ErrNilData
	}
	if len(data) > MaxInputSize {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLarge, len(data), MaxInputSize)
	}
	if v == nil {
		return ErrNilDestination
	}
	return nil
}

func Unmarshal(data []byte, v any) error {
	if err := validateInput(data, v); err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, v); err != nil {
		return fmt.Errorf("yamlutil: %w", err)
	}
	return nil
}

func Marshal(v any) ([]byte, error) {
	result, err := yaml.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("yamlutil: %w", err)
	}
	return result, nil
}

// MarshalOrdered encodes fields as a block mapping, keys in the given order.
// Scalars are quoted only when plain style would change their meaning.
// Strings holding control characters are always double-quoted with escapes.
// An empty field list encodes to an empty byte slice.
func MarshalOrdered(fields []Field) ([]byte, error) {
	if len(fields) == 0 {
		return []byte{}, nil
	}

	slice := make(yaml.MapSlice, 0, len(fields))
	for _, f := range fields {
		if f.Key == "" {
			return nil, ErrEmptyKey
		}
		value := f.Value
		if str, ok := value.(string); ok && hasControl(str) {
			value = doubleQuoted(str)
		}
		slice = append(slice, yaml.MapItem{Key: f.Key, Value: value})
	}
	return Marshal(slice)
}

// doubleQuoted encodes as a double-quoted scalar. Plain style would fold or
// drop tabs and line breaks on the way back.
type doubleQuoted string

func (s doubleQuoted) MarshalYAML() ([]byte, error) {
	return []byte(strconv.Quote(string(s))), nil
}

func hasControl(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool {
		return unicode.IsControl(r) || r == '\u2028' || r == '\u2029'
	}) >= 0
}

// UnmarshalStrict rejects unknown fields in the input.
func UnmarshalStrict(data []byte, v any) error {
	if err := validateInput(data, v); err != nil {
		return err
	}
	if err := yaml.UnmarshalWithOptions(data, v, yaml.Strict()); err != nil {
		return fmt.Errorf("yamlutil: %w", err)
	}
	return nil
}
