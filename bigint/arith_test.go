package bigint

import (
	"errors"
	"math"
	"math/rand/v2"
	"strings"
	"testing"
)

func mustInt(t *testing.T) func(Int, error) Int {
	return func(x Int, err error) Int {
		t.Helper()
		if err != nil {
			t.Fatal(err)
		}
		return x
	}
}

func TestConcreteScenarios(t *testing.T) {
	must := mustInt(t)
	if got := must(MustParse("123").Add(MustParse("-23"))); !got.Equal(New(100)) {
		t.Errorf("123 + -23 = %s", got)
	}
	if got := must(MustParse("7").Quo(MustParse("2"))); !got.Equal(New(3)) {
		t.Errorf("7 / 2 = %s", got)
	}
	if got := must(MustParse("7").Rem(MustParse("2"))); !got.Equal(New(1)) {
		t.Errorf("7 %% 2 = %s", got)
	}
}

func TestAddSub(t *testing.T) {
	tests := []struct{ a, b, sum, diff string }{
		{"0", "0", "0", "0"},
		{"999", "1", "1000", "998"},
		{"1", "999", "1000", "-998"},
		{"-999", "-1", "-1000", "-998"},
		{"1000000", "-1", "999999", "1000001"},
		{"-1000000", "1", "-999999", "-1000001"},
		{"5", "-5", "0", "10"},
		{"999999999999", "1", "1000000000000", "999999999998"},
		{"1000000000000", "-999999999999", "1", "1999999999999"},
		{"123456789123456789", "-123456789123456788", "1", "246913578246913577"},
	}
	must := mustInt(t)
	for _, tt := range tests {
		a, b := MustParse(tt.a), MustParse(tt.b)
		if got := must(a.Add(b)); got.String() != tt.sum {
			t.Errorf("%s + %s = %s want %s", tt.a, tt.b, got, tt.sum)
		}
		if got := must(a.Sub(b)); got.String() != tt.diff {
			t.Errorf("%s - %s = %s want %s", tt.a, tt.b, got, tt.diff)
		}
	}
	if z := must(New(5).Add(New(-5))); z.IsNegative() || !z.IsZero() {
		t.Error("x + -x must be canonical zero")
	}
}

func TestMul(t *testing.T) {
	tests := []struct{ a, b, want string }{
		{"0", "-5", "0"},
		{"-5", "0", "0"},
		{"999", "999", "998001"},
		{"-1000", "1000", "-1000000"},
		{"-12345", "-6789", "83810205"},
		{"123456789012345678901234567890", "987654321098765432109876543210", "121932631137021795226185032733622923332237463801111263526900"},
	}
	must := mustInt(t)
	for _, tt := range tests {
		got := must(MustParse(tt.a).Mul(MustParse(tt.b)))
		if got.String() != tt.want {
			t.Errorf("%s * %s = %s want %s", tt.a, tt.b, got, tt.want)
		}
		if got.IsZero() && got.IsNegative() {
			t.Errorf("%s * %s produced negative zero", tt.a, tt.b)
		}
	}
}

func TestQuoRem(t *testing.T) {
	tests := []struct{ a, b, q, r string }{
		{"7", "2", "3", "1"},
		{"-7", "2", "-3", "-1"},
		{"7", "-2", "-3", "1"},
		{"-7", "-2", "3", "-1"},
		{"6", "-3", "-2", "0"},
		{"-6", "3", "-2", "0"},
		{"1", "1000", "0", "1"},
		{"-1", "1000", "0", "-1"},
		{"1000000", "999", "1001", "1"},
		{"121932631137021795226185032733622923332237463801111263526900", "987654321098765432109876543210", "123456789012345678901234567890", "0"},
		{"100000000000000000000000", "7", "14285714285714285714285", "5"},
	}
	must := mustInt(t)
	for _, tt := range tests {
		a, b := MustParse(tt.a), MustParse(tt.b)
		q := must(a.Quo(b))
		r := must(a.Rem(b))
		if q.String() != tt.q || r.String() != tt.r {
			t.Errorf("%s / %s = %s r %s want %s r %s", tt.a, tt.b, q, r, tt.q, tt.r)
		}
		if (q.IsZero() && q.IsNegative()) || (r.IsZero() && r.IsNegative()) {
			t.Errorf("%s / %s produced negative zero", tt.a, tt.b)
		}
	}
}

func TestDivisionByZero(t *testing.T) {
	x := New(10)
	if _, err := x.Quo(New(0)); !errors.Is(err, ErrDivisionByZero) {
		t.Errorf("Quo err=%v", err)
	}
	if _, err := x.Rem(Int{}); !errors.Is(err, ErrDivisionByZero) {
		t.Errorf("Rem err=%v", err)
	}
	if err := x.QuoAssign(New(0)); !errors.Is(err, ErrDivisionByZero) || !x.Equal(New(10)) {
		t.Errorf("QuoAssign err=%v x=%s", err, x)
	}
}

func TestArithmeticIdentities(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	must := mustInt(t)
	for i := 0; i < 2000; i++ {
		a := r.Int64N(1<<40) - 1<<39
		b := r.Int64N(1<<20) - 1<<19
		x, y := New(a), New(b)
		if got := must(x.Add(y)); !got.Equal(New(a + b)) {
			t.Fatalf("%d + %d = %s", a, b, got)
		}
		if got := must(x.Sub(y)); !got.Equal(New(a - b)) {
			t.Fatalf("%d - %d = %s", a, b, got)
		}
		if got := must(x.Mul(y)); !got.Equal(New(a * b)) {
			t.Fatalf("%d * %d = %s", a, b, got)
		}
		if b == 0 {
			continue
		}
		q, rem := must(x.Quo(y)), must(x.Rem(y))
		if !q.Equal(New(a/b)) || !rem.Equal(New(a%b)) {
			t.Fatalf("%d / %d = %s r %s want %d r %d", a, b, q, rem, a/b, a%b)
		}
		back := must(must(q.Mul(y)).Add(rem))
		if !back.Equal(x) {
			t.Fatalf("(a/b)*b + a%%b = %s want %d", back, a)
		}
		if !rem.IsZero() && rem.IsNegative() != x.IsNegative() {
			t.Fatalf("remainder %s sign differs from dividend %d", rem, a)
		}
	}
}

func TestExtremeInt64(t *testing.T) {
	must := mustInt(t)
	minInt := New(math.MinInt64)
	if got := must(minInt.Sub(New(1))); got.String() != "-9223372036854775809" {
		t.Errorf("MinInt64 - 1 = %s", got)
	}
	if got := must(New(math.MaxInt64).Mul(New(math.MaxInt64))); got.String() != "85070591730234615847396907784232501249" {
		t.Errorf("MaxInt64^2 = %s", got)
	}
	if got := must(minInt.Quo(New(-1))); got.String() != "9223372036854775808" {
		t.Errorf("MinInt64 / -1 = %s", got)
	}
}

func TestOverflow(t *testing.T) {
	must := mustInt(t)
	nines := MustParse(strings.Repeat("9", 30000))
	if _, err := nines.Add(New(1)); !errors.Is(err, ErrOverflow) {
		t.Errorf("Add err=%v want ErrOverflow", err)
	}
	if _, err := nines.Neg().Sub(New(1)); !errors.Is(err, ErrOverflow) {
		t.Errorf("Sub err=%v want ErrOverflow", err)
	}
	if got := must(nines.Sub(nines)); !got.IsZero() {
		t.Errorf("x - x = %s", got)
	}

	half := MustParse("1" + strings.Repeat("0", 15000))
	if _, err := half.Mul(half); !errors.Is(err, ErrOverflow) {
		t.Errorf("Mul err=%v want ErrOverflow", err)
	}

	x := nines
	if err := x.Inc(); !errors.Is(err, ErrOverflow) {
		t.Errorf("Inc err=%v", err)
	}
	if !x.Equal(nines) {
		t.Error("failed Inc must leave the value unchanged")
	}
}

func TestConfiguredCeiling(t *testing.T) {
	prev := MaxDigits
	MaxDigits = 9
	t.Cleanup(func() { MaxDigits = prev })

	x := MustParse("999999999")
	if _, err := x.Add(New(1)); !errors.Is(err, ErrOverflow) {
		t.Errorf("got %v want ErrOverflow", err)
	}
	if _, err := Parse("1000000000"); !errors.Is(err, ErrOverflow) {
		t.Errorf("got %v want ErrOverflow", err)
	}
	if _, err := x.Quo(New(3)); err != nil {
		t.Errorf("division is not bounded by the ceiling: %v", err)
	}
}

func TestCompoundAssignment(t *testing.T) {
	x := New(10)
	steps := []struct {
		op   func() error
		want int64
	}{
		{func() error { return x.AddAssign(New(5)) }, 15},
		{func() error { return x.SubAssign(New(20)) }, -5},
		{func() error { return x.MulAssign(New(-4)) }, 20},
		{func() error { return x.QuoAssign(New(3)) }, 6},
		{func() error { return x.RemAssign(New(4)) }, 2},
		{x.Inc, 3},
		{x.Dec, 2},
	}
	for i, s := range steps {
		if err := s.op(); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
		if !x.Equal(New(s.want)) {
			t.Fatalf("step %d: x=%s want %d", i, x, s.want)
		}
	}
}

func TestPostIncDec(t *testing.T) {
	x := New(-1)
	prev, err := x.PostInc()
	if err != nil || !prev.Equal(New(-1)) || !x.IsZero() || x.IsNegative() {
		t.Fatalf("PostInc prev=%s x=%s err=%v", prev, x, err)
	}
	prev, err = x.PostDec()
	if err != nil || !prev.IsZero() || !x.Equal(New(-1)) {
		t.Fatalf("PostDec prev=%s x=%s err=%v", prev, x, err)
	}
}

func TestOperandsNotMutated(t *testing.T) {
	a := MustParse("999999")
	b := MustParse("1")
	sum, _ := a.Add(b)
	_, _ = sum.Mul(a)
	if a.String() != "999999" || b.String() != "1" {
		t.Errorf("operands changed: %s %s", a, b)
	}
	c := a
	if err := c.Inc(); err != nil {
		t.Fatal(err)
	}
	if a.String() != "999999" {
		t.Error("Inc on a copy changed the source value")
	}
}
