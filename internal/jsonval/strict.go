package jsonval

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ParseStrict parses text under the standard JSON grammar, preserving object
// member order. Exactly one top-level value is allowed.
func ParseStrict(text string) (Value, error) {
	dec := json.NewDecoder(strings.NewReader(text))
	dec.UseNumber() // Ensure numbers are read as json.Number

	v, err := decodeValue(dec)
	if err != nil {
		if errors.Is(err, io.EOF) {
			if dec.InputOffset() == 0 {
				return nil, fmt.Errorf("input is empty")
			}
			return nil, fmt.Errorf("unexpected end of JSON input at offset %d", dec.InputOffset())
		}
		var syntaxError *json.SyntaxError
		if errors.As(err, &syntaxError) {
			return nil, fmt.Errorf("JSON syntax error at offset %d: %v", syntaxError.Offset, syntaxError)
		}
		return nil, err
	}

	// Anything but whitespace after the first value is an error.
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("multiple JSON values found at the root, only one is allowed")
	}

	return v, nil
}

// decodeValue reads one complete value from the token stream. The decoder
// validates syntax, so a delimiter token here can only open a container.
func decodeValue(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return decodeObject(dec)
		case '[':
			return decodeArray(dec)
		}
		return nil, fmt.Errorf("unexpected delimiter %q", t.String())
	default:
		// string, json.Number, bool, or nil for null.
		return t, nil
	}
}

func decodeObject(dec *json.Decoder) (Object, error) {
	obj := Object{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("object key is not a string: %v", tok)
		}

		val, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		obj = obj.set(key, val)
	}

	// Consume the closing '}'.
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return obj, nil
}

func decodeArray(dec *json.Decoder) (Array, error) {
	arr := Array{}
	for dec.More() {
		val, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		arr = append(arr, val)
	}

	// Consume the closing ']'.
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return arr, nil
}
