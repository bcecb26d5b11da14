package vector

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// MarshalYAML encodes the live elements as a YAML sequence.
func (v *Vector[T]) MarshalYAML() (any, error) {
	data := v.Data()
	if data == nil {
		data = []T{}
	}
	return data, nil
}

// UnmarshalYAML replaces the contents with a decoded YAML sequence.
// On a decode error the vector is left unchanged.
func (v *Vector[T]) UnmarshalYAML(node *yaml.Node) error {
	var vals []T
	if err := node.Decode(&vals); err != nil {
		return err
	}
	*v = *Of(vals...)
	return nil
}

// MarshalJSON encodes the live elements as a JSON array.
func (v *Vector[T]) MarshalJSON() ([]byte, error) {
	data := v.Data()
	if data == nil {
		data = []T{}
	}
	return json.Marshal(data)
}

// UnmarshalJSON replaces the contents with a decoded JSON array.
// On a decode error the vector is left unchanged.
func (v *Vector[T]) UnmarshalJSON(b []byte) error {
	var vals []T
	if err := json.Unmarshal(b, &vals); err != nil {
		return err
	}
	*v = *Of(vals...)
	return nil
}
