package bigint

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"testing"
)

func TestNewCanonical(t *testing.T) {
	tests := []struct {
		in     int64
		digits []uint32
		neg    bool
	}{
		{0, []uint32{0}, false},
		{7, []uint32{7}, false},
		{-7, []uint32{7}, true},
		{1000, []uint32{0, 1}, false},
		{1000001, []uint32{1, 0, 1}, false},
		{-123456789, []uint32{789, 456, 123}, true},
	}
	for _, tt := range tests {
		x := New(tt.in)
		got := x.mag()
		if len(got) != len(tt.digits) {
			t.Errorf("New(%d) digits=%v want %v", tt.in, got, tt.digits)
			continue
		}
		for i := range got {
			if got[i] != tt.digits[i] {
				t.Errorf("New(%d) digits=%v want %v", tt.in, got, tt.digits)
				break
			}
		}
		if x.IsNegative() != tt.neg {
			t.Errorf("New(%d) negative=%v", tt.in, x.IsNegative())
		}
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "0"},
		{"-0", "0"},
		{"+42", "42"},
		{"007", "7"},
		{"-000123", "-123"},
		{"1000001", "1000001"},
		{"123456789012345678901234567890", "123456789012345678901234567890"},
		{"-1000", "-1000"},
	}
	for _, tt := range tests {
		x, err := Parse(tt.in)
		if err != nil {
			t.Errorf("Parse(%q): %v", tt.in, err)
			continue
		}
		if x.String() != tt.want {
			t.Errorf("Parse(%q)=%s want %s", tt.in, x, tt.want)
		}
	}
	if x := MustParse("-0"); x.IsNegative() || !x.IsZero() {
		t.Error("negative zero must be canonicalised")
	}
}

func TestParseSyntaxErrors(t *testing.T) {
	for _, in := range []string{"", "-", "+", "12a", " 1", "1 ", "--1", "1.5", "0x10"} {
		if _, err := Parse(in); !errors.Is(err, ErrSyntax) {
			t.Errorf("Parse(%q) err=%v want ErrSyntax", in, err)
		}
	}
}

func TestStringPadding(t *testing.T) {
	tests := []struct {
		x    Int
		want string
	}{
		{New(0), "0"},
		{New(5), "5"},
		{New(1000001), "1000001"},
		{New(-1002), "-1002"},
		{New(120034), "120034"},
		{New(math.MinInt64), "-9223372036854775808"},
	}
	for _, tt := range tests {
		if got := tt.x.String(); got != tt.want {
			t.Errorf("String()=%q want %q", got, tt.want)
		}
	}
	if got := fmt.Sprintf("%v|%s", New(-5), New(3000)); got != "-5|3000" {
		t.Errorf("fmt got %q", got)
	}
}

func TestRoundTripInt64(t *testing.T) {
	values := []int64{0, 1, -1, 999, 1000, -1000, 1001, math.MaxInt64, math.MinInt64, math.MaxInt32, math.MinInt32}
	for v := int64(1); v < math.MaxInt64/7; v *= 7 {
		values = append(values, v, -v, v+1, -(v + 999))
	}
	for _, v := range values {
		x := New(v)
		y, err := Parse(x.String())
		if err != nil {
			t.Fatalf("Parse(%q): %v", x.String(), err)
		}
		if !y.Equal(x) {
			t.Errorf("round trip %d: got %s", v, y)
		}
		if y.String() != fmt.Sprint(v) {
			t.Errorf("String(%d)=%s", v, y)
		}
		if back, ok := y.Int64(); !ok || back != v {
			t.Errorf("Int64(%d)=%d,%v", v, back, ok)
		}
	}
}

func TestInt64Overflow(t *testing.T) {
	for _, s := range []string{"9223372036854775808", "-9223372036854775809", "100000000000000000000"} {
		if _, ok := MustParse(s).Int64(); ok {
			t.Errorf("Int64(%s) should not fit", s)
		}
	}
	if v, ok := MustParse("-9223372036854775808").Int64(); !ok || v != math.MinInt64 {
		t.Errorf("MinInt64 got %d,%v", v, ok)
	}
}

func TestCmp(t *testing.T) {
	ordered := []string{"-1000000", "-999", "-2", "-1", "0", "1", "2", "999", "1000", "1000000"}
	for i, a := range ordered {
		for j, b := range ordered {
			x, y := MustParse(a), MustParse(b)
			want := 0
			switch {
			case i < j:
				want = -1
			case i > j:
				want = 1
			}
			if got := x.Cmp(y); got != want {
				t.Errorf("Cmp(%s, %s)=%d want %d", a, b, got, want)
			}
			if x.Less(y) != (want < 0) || x.LessEqual(y) != (want <= 0) ||
				x.Greater(y) != (want > 0) || x.GreaterEqual(y) != (want >= 0) || x.Equal(y) != (want == 0) {
				t.Errorf("relational helpers disagree with Cmp for %s, %s", a, b)
			}
		}
	}
	var zero Int
	if !zero.Equal(New(0)) || !zero.Equal(MustParse("-0")) {
		t.Error("zero value must equal parsed zero")
	}
}

func TestSignNegAbs(t *testing.T) {
	if New(-3).Sign() != -1 || New(0).Sign() != 0 || New(3).Sign() != 1 {
		t.Error("Sign")
	}
	if z := New(0).Neg(); z.IsNegative() {
		t.Error("-0 must stay non-negative")
	}
	if !New(-3).Abs().Equal(New(3)) || !New(3).Neg().Equal(New(-3)) {
		t.Error("Abs/Neg")
	}
}

func TestScan(t *testing.T) {
	var a, b, c Int
	n, err := fmt.Fscan(strings.NewReader("  -123\n+4560000000000000000000\t0"), &a, &b, &c)
	if err != nil || n != 3 {
		t.Fatalf("Fscan n=%d err=%v", n, err)
	}
	if a.String() != "-123" || b.String() != "4560000000000000000000" || !c.IsZero() {
		t.Errorf("got %s %s %s", a, b, c)
	}
	var bad Int
	if _, err := fmt.Sscan("12x", &bad); !errors.Is(err, ErrSyntax) {
		t.Errorf("got %v want ErrSyntax", err)
	}
}

func TestParseOverflow(t *testing.T) {
	if _, err := Parse(strings.Repeat("9", 30000)); err != nil {
		t.Fatalf("30000 digits should fit: %v", err)
	}
	if _, err := Parse(strings.Repeat("9", 30001)); !errors.Is(err, ErrOverflow) {
		t.Errorf("got %v want ErrOverflow", err)
	}
}
