package bigint

// Add returns x + y.
func (x Int) Add(y Int) (Int, error) {
	a, b := x.mag(), y.mag()
	if x.neg == y.neg {
		return makeInt(addNat(a, b), x.neg)
	}
	switch cmpNat(a, b) {
	case 0:
		return Int{}, nil
	case 1:
		return makeInt(subNat(a, b), x.neg)
	default:
		return makeInt(subNat(b, a), y.neg)
	}
}

// Sub returns x - y.
func (x Int) Sub(y Int) (Int, error) { return x.Add(y.Neg()) }

// Mul returns x * y.
func (x Int) Mul(y Int) (Int, error) {
	return makeInt(mulNat(x.mag(), y.mag()), x.neg != y.neg)
}

// Quo returns x / y truncated toward zero.
func (x Int) Quo(y Int) (Int, error) {
	if y.IsZero() {
		return Int{}, ErrDivisionByZero
	}
	q, _ := quoRemNat(x.mag(), y.mag())
	return canonical(q, x.neg != y.neg), nil
}

// Rem returns |x| - |y|*(|x|/|y|) with the sign of x.
func (x Int) Rem(y Int) (Int, error) {
	if y.IsZero() {
		return Int{}, ErrDivisionByZero
	}
	a, b := x.mag(), y.mag()
	q, _ := quoRemNat(a, b)
	return canonical(subNat(a, mulNat(b, q)), x.neg), nil
}

// AddAssign sets x = x + y. On error x is unchanged.
func (x *Int) AddAssign(y Int) error { return x.assign(x.Add(y)) }

// SubAssign sets x = x - y. On error x is unchanged.
func (x *Int) SubAssign(y Int) error { return x.assign(x.Sub(y)) }

// MulAssign sets x = x * y. On error x is unchanged.
func (x *Int) MulAssign(y Int) error { return x.assign(x.Mul(y)) }

// QuoAssign sets x = x / y. On error x is unchanged.
func (x *Int) QuoAssign(y Int) error { return x.assign(x.Quo(y)) }

// RemAssign sets x = x % y. On error x is unchanged.
func (x *Int) RemAssign(y Int) error { return x.assign(x.Rem(y)) }

var one = New(1)

// Inc adds one to x.
func (x *Int) Inc() error { return x.AddAssign(one) }

// Dec subtracts one from x.
func (x *Int) Dec() error { return x.SubAssign(one) }

// PostInc adds one to x and returns the value x held before.
func (x *Int) PostInc() (Int, error) {
	prev := *x
	return prev, x.Inc()
}

// PostDec subtracts one from x and returns the value x held before.
func (x *Int) PostDec() (Int, error) {
	prev := *x
	return prev, x.Dec()
}

func (x *Int) assign(v Int, err error) error {
	if err != nil {
		return err
	}
	*x = v
	return nil
}
