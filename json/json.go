package json

import "encoding/json"

// Unmarshal parses a JSON data structure from bytes
func Unmarshal[A any](data []byte) (A, error) {
	var result A
	err := json.Unmarshal(data, &result)
	return result, err
}

// Marshal converts a data structure to json
func Marshal[A any](a A) ([]byte, error) {
	return json.Marshal(a)
}
