package signaling

import "github.com/backkem/kvsignaling/pkg/jsonscan"

// parseTTL reads a TTL number and checks it against [min, max].
func parseTTL(value []byte, typ jsonscan.Type, min, max uint64) (uint32, error) {
	if typ != jsonscan.Number {
		return 0, ErrInvalidTTL
	}
	v, err := jsonscan.ParseDigits(value, maxTTLDigits)
	if err != nil {
		return 0, ErrInvalidTTL
	}
	if v < min || v > max {
		return 0, ErrInvalidTTL
	}
	return uint32(v), nil
}

// stringValue returns value if it is a JSON string.
func stringValue(value []byte, typ jsonscan.Type) ([]byte, error) {
	if typ != jsonscan.String {
		return nil, ErrUnexpectedResponse
	}
	return value, nil
}

// expect validates data and returns the value of its single top-level key.
func expect(data []byte, key string, typ jsonscan.Type) ([]byte, error) {
	data, err := jsonscan.Validate(data)
	if err != nil {
		return nil, err
	}
	return jsonscan.SingleKey(data, key, typ)
}
