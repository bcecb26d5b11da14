package bigint

import (
	"bytes"
	"fmt"
	"strconv"

	"google.golang.org/protobuf/encoding/protowire"
	"gopkg.in/yaml.v3"
)

// Binary layout, protobuf wire compatible:
//
//	field 1 (varint): sign, present only when negative
//	field 2 (bytes):  packed varint digits, least significant first
const (
	fieldNegative protowire.Number = 1
	fieldDigits   protowire.Number = 2
)

// MarshalText implements encoding.TextMarshaler.
func (x Int) MarshalText() ([]byte, error) { return []byte(x.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (x *Int) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*x = v
	return nil
}

// MarshalJSON encodes x as a bare JSON number.
func (x Int) MarshalJSON() ([]byte, error) { return []byte(x.String()), nil }

// UnmarshalJSON accepts a JSON number or a quoted decimal string.
func (x *Int) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		s, err := strconv.Unquote(string(data))
		if err != nil {
			return fmt.Errorf("%w: %s", ErrSyntax, data)
		}
		return x.UnmarshalText([]byte(s))
	}
	return x.UnmarshalText(data)
}

// MarshalYAML encodes x as a YAML integer scalar.
func (x Int) MarshalYAML() (any, error) {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: x.String()}, nil
}

// UnmarshalYAML decodes a YAML scalar holding a decimal integer.
func (x *Int) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("%w: line %d: expected scalar integer", ErrSyntax, node.Line)
	}
	return x.UnmarshalText([]byte(node.Value))
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (x Int) MarshalBinary() ([]byte, error) {
	abs := x.mag()
	var packed []byte
	for _, d := range abs {
		packed = protowire.AppendVarint(packed, uint64(d))
	}
	var b []byte
	if x.neg {
		b = protowire.AppendTag(b, fieldNegative, protowire.VarintType)
		b = protowire.AppendVarint(b, protowire.EncodeBool(true))
	}
	b = protowire.AppendTag(b, fieldDigits, protowire.BytesType)
	b = protowire.AppendBytes(b, packed)
	return b, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. Unknown fields are
// skipped. On error x is unchanged.
func (x *Int) UnmarshalBinary(b []byte) error {
	var (
		neg bool
		abs nat
	)
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return fmt.Errorf("%w: %v", ErrSyntax, protowire.ParseError(n))
		}
		b = b[n:]
		switch {
		case num == fieldNegative && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return fmt.Errorf("%w: %v", ErrSyntax, protowire.ParseError(n))
			}
			neg = protowire.DecodeBool(v)
			b = b[n:]
		case num == fieldDigits && typ == protowire.BytesType:
			packed, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return fmt.Errorf("%w: %v", ErrSyntax, protowire.ParseError(n))
			}
			b = b[n:]
			for len(packed) > 0 {
				d, m := protowire.ConsumeVarint(packed)
				if m < 0 {
					return fmt.Errorf("%w: %v", ErrSyntax, protowire.ParseError(m))
				}
				if d >= Radix {
					return fmt.Errorf("%w: digit %d out of range", ErrSyntax, d)
				}
				abs = append(abs, uint32(d))
				packed = packed[m:]
			}
		default:
			n := protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return fmt.Errorf("%w: %v", ErrSyntax, protowire.ParseError(n))
			}
			b = b[n:]
		}
	}
	v, err := makeInt(abs.trim(), neg)
	if err != nil {
		return err
	}
	*x = v
	return nil
}
