package jsonscan

import (
	"encoding/json"

	"github.com/buger/jsonparser"
)

// Type is the JSON type of a value.
type Type uint8

// JSON value types.
const (
	Invalid Type = iota
	String
	Number
	Object
	Array
	Boolean
	Null
)

// String returns the name of the type.
func (t Type) String() string {
	switch t {
	case String:
		return "string"
	case Number:
		return "number"
	case Object:
		return "object"
	case Array:
		return "array"
	case Boolean:
		return "boolean"
	case Null:
		return "null"
	default:
		return "invalid"
	}
}

func typeOf(vt jsonparser.ValueType) Type {
	switch vt {
	case jsonparser.String:
		return String
	case jsonparser.Number:
		return Number
	case jsonparser.Object:
		return Object
	case jsonparser.Array:
		return Array
	case jsonparser.Boolean:
		return Boolean
	case jsonparser.Null:
		return Null
	default:
		return Invalid
	}
}

// Validate checks that data holds exactly one well-formed JSON document.
// A single trailing NUL byte is excluded from the logical length. The
// returned slice is data without that byte.
func Validate(data []byte) ([]byte, error) {
	if n := len(data); n > 0 && data[n-1] == 0 {
		data = data[:n-1]
	}
	if len(data) == 0 || !json.Valid(data) {
		return nil, ErrInvalidJSON
	}
	return data, nil
}

// Members calls fn for every key/value pair of the object obj, in document
// order. Duplicate keys are reported as often as they occur. The first error
// returned by fn stops the walk and is returned.
func Members(obj []byte, fn func(key, value []byte, typ Type) error) error {
	var cbErr error
	err := jsonparser.ObjectEach(obj, func(key, value []byte, vt jsonparser.ValueType, _ int) error {
		if err := fn(key, value, typeOf(vt)); err != nil {
			cbErr = err
			return err
		}
		return nil
	})
	if cbErr != nil {
		return cbErr
	}
	if err != nil {
		return ErrUnexpectedResponse
	}
	return nil
}

// Elements calls fn for every element of the array arr, in document order.
// After fn returns an error the remaining elements are skipped and that error
// is returned.
func Elements(arr []byte, fn func(value []byte, typ Type) error) error {
	var cbErr error
	_, err := jsonparser.ArrayEach(arr, func(value []byte, vt jsonparser.ValueType, _ int, elemErr error) {
		if cbErr != nil {
			return
		}
		if elemErr != nil {
			cbErr = ErrUnexpectedResponse
			return
		}
		cbErr = fn(value, typeOf(vt))
	})
	if cbErr != nil {
		return cbErr
	}
	if err != nil {
		return ErrUnexpectedResponse
	}
	return nil
}

// SingleKey checks that data is an object holding exactly one member named
// key whose value has type typ, and returns that value.
func SingleKey(data []byte, key string, typ Type) ([]byte, error) {
	var (
		value []byte
		count int
		match bool
	)
	err := Members(data, func(k, v []byte, t Type) error {
		count++
		if count == 1 && string(k) == key && t == typ {
			value = v
			match = true
		}
		return nil
	})
	if err != nil || count != 1 || !match {
		return nil, ErrUnexpectedResponse
	}
	return value, nil
}

// maxUint64Digits keeps ParseDigits from overflowing.
const maxUint64Digits = 20

// ParseDigits converts a decimal digit string to an integer. Strings of
// maxDigits characters or more are rejected before any arithmetic.
func ParseDigits(b []byte, maxDigits int) (uint64, error) {
	if maxDigits > maxUint64Digits {
		maxDigits = maxUint64Digits
	}
	if len(b) == 0 || len(b) >= maxDigits {
		return 0, ErrInvalidNumber
	}
	var v uint64
	for _, c := range b {
		if c < '0' || c > '9' {
			return 0, ErrInvalidNumber
		}
		v = v*10 + uint64(c-'0')
	}
	return v, nil
}
