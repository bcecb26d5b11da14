package hashset

import "gopkg.in/yaml.v3"

// MarshalYAML encodes the keys as a YAML sequence in iteration order.
func (s *Set[K]) MarshalYAML() (any, error) {
	return s.Keys(), nil
}

// UnmarshalYAML replaces the contents with the keys of a YAML sequence,
// inserted in document order. The hasher is kept. On a decode error the set
// is left unchanged.
func (s *Set[K]) UnmarshalYAML(node *yaml.Node) error {
	var keys []K
	if err := node.Decode(&keys); err != nil {
		return err
	}
	next := New(WithHasher(s.hash))
	for _, k := range keys {
		next.Insert(k)
	}
	*s = *next
	return nil
}
