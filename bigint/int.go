package bigint

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

const (
	// Radix is the base of one stored digit.
	Radix = 1000
	// DigitWidth is the number of decimal digits one stored digit holds.
	DigitWidth = 3
	// DefaultMaxDigits is the default decimal precision ceiling.
	DefaultMaxDigits = 30001
)

// MaxDigits is the decimal precision ceiling applied by Parse, Add, Sub and
// Mul. It is read on every operation; change it only while no arithmetic is
// running.
var MaxDigits = DefaultMaxDigits

var (
	// ErrOverflow is returned when a result would exceed MaxDigits decimal digits.
	ErrOverflow = errors.New("bigint: overflow")
	// ErrDivisionByZero is returned by Quo and Rem for a zero divisor.
	ErrDivisionByZero = errors.New("bigint: division by zero")
	// ErrSyntax is returned for input that is not a decimal integer.
	ErrSyntax = errors.New("bigint: invalid syntax")
)

// Int is a signed integer. The zero value is 0.
type Int struct {
	abs nat
	neg bool
}

// New returns the Int with value n.
func New(n int64) Int {
	u := uint64(n)
	if n < 0 {
		u = ^u + 1
	}
	if u == 0 {
		return Int{}
	}
	var abs nat
	for u > 0 {
		abs = append(abs, uint32(u%Radix))
		u /= Radix
	}
	return Int{abs: abs, neg: n < 0}
}

// Parse reads a decimal integer with an optional leading '+' or '-'.
func Parse(s string) (Int, error) {
	body := s
	neg := false
	if body != "" && (body[0] == '+' || body[0] == '-') {
		neg = body[0] == '-'
		body = body[1:]
	}
	if body == "" {
		return Int{}, fmt.Errorf("%w: %q", ErrSyntax, s)
	}
	for i := 0; i < len(body); i++ {
		if body[i] < '0' || body[i] > '9' {
			return Int{}, fmt.Errorf("%w: %q", ErrSyntax, s)
		}
	}

	abs := make(nat, 0, (len(body)+DigitWidth-1)/DigitWidth)
	for end := len(body); end > 0; end -= DigitWidth {
		start := max(end-DigitWidth, 0)
		var d uint32
		for _, c := range body[start:end] {
			d = d*10 + uint32(c-'0')
		}
		abs = append(abs, d)
	}
	return makeInt(abs.trim(), neg)
}

// MustParse is like Parse but panics on error.
func MustParse(s string) Int {
	x, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return x
}

// makeInt builds a canonical Int from a trimmed magnitude and enforces MaxDigits.
func makeInt(abs nat, neg bool) (Int, error) {
	if len(abs)*DigitWidth > MaxDigits {
		return Int{}, fmt.Errorf("%w: result has %d digits, limit %d", ErrOverflow, len(abs)*DigitWidth, MaxDigits)
	}
	return canonical(abs, neg), nil
}

func canonical(abs nat, neg bool) Int {
	if abs.isZero() {
		return Int{}
	}
	return Int{abs: abs, neg: neg}
}

// mag returns the magnitude, mapping the zero value to {0}.
func (x Int) mag() nat {
	if len(x.abs) == 0 {
		return natZero
	}
	return x.abs
}

// IsNegative reports whether x < 0.
func (x Int) IsNegative() bool { return x.neg }

// IsZero reports whether x == 0.
func (x Int) IsZero() bool { return x.mag().isZero() }

// Sign returns -1, 0 or +1.
func (x Int) Sign() int {
	switch {
	case x.IsZero():
		return 0
	case x.neg:
		return -1
	}
	return 1
}

// Neg returns -x. The negation of zero is zero.
func (x Int) Neg() Int { return canonical(x.mag(), !x.neg) }

// Abs returns |x|.
func (x Int) Abs() Int { return canonical(x.mag(), false) }

// Cmp returns -1, 0 or +1 as x is less than, equal to or greater than y.
func (x Int) Cmp(y Int) int {
	if x.neg != y.neg {
		if x.neg {
			return -1
		}
		return 1
	}
	c := cmpNat(x.mag(), y.mag())
	if x.neg {
		return -c
	}
	return c
}

// Equal reports whether x == y.
func (x Int) Equal(y Int) bool { return x.Cmp(y) == 0 }

// Less reports whether x < y.
func (x Int) Less(y Int) bool { return x.Cmp(y) < 0 }

// LessEqual reports whether x <= y.
func (x Int) LessEqual(y Int) bool { return x.Cmp(y) <= 0 }

// Greater reports whether x > y.
func (x Int) Greater(y Int) bool { return x.Cmp(y) > 0 }

// GreaterEqual reports whether x >= y.
func (x Int) GreaterEqual(y Int) bool { return x.Cmp(y) >= 0 }

// Int64 returns x as an int64 and whether it fits.
func (x Int) Int64() (int64, bool) {
	abs := x.mag()
	var u uint64
	for i := len(abs) - 1; i >= 0; i-- {
		if u > (1<<64-1-uint64(abs[i]))/Radix {
			return 0, false
		}
		u = u*Radix + uint64(abs[i])
	}
	if x.neg {
		if u > 1<<63 {
			return 0, false
		}
		return int64(^u + 1), true
	}
	if u > 1<<63-1 {
		return 0, false
	}
	return int64(u), true
}

// String renders x in decimal: the sign, the most significant digit
// unpadded, then every lower digit zero-padded to DigitWidth.
func (x Int) String() string {
	abs := x.mag()
	var b strings.Builder
	b.Grow(len(abs)*DigitWidth + 1)
	if x.neg {
		b.WriteByte('-')
	}
	b.WriteString(strconv.FormatUint(uint64(abs[len(abs)-1]), 10))
	for i := len(abs) - 2; i >= 0; i-- {
		s := strconv.FormatUint(uint64(abs[i]), 10)
		b.WriteString(strings.Repeat("0", DigitWidth-len(s)))
		b.WriteString(s)
	}
	return b.String()
}

// Scan implements fmt.Scanner. It reads one whitespace-delimited token and
// parses it with Parse.
func (x *Int) Scan(state fmt.ScanState, verb rune) error {
	switch verb {
	case 'd', 's', 'v':
	default:
		return fmt.Errorf("bigint: unsupported scan verb %%%c", verb)
	}
	state.SkipSpace()
	tok, err := state.Token(true, func(r rune) bool { return !unicode.IsSpace(r) })
	if err != nil {
		return err
	}
	v, err := Parse(string(tok))
	if err != nil {
		return err
	}
	*x = v
	return nil
}
