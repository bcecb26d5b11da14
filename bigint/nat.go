package bigint

// nat is a magnitude: base-Radix digits, least significant first.
// Helpers below take and return trimmed nats (no most significant zero digit,
// zero is {0}) and never modify their arguments.
type nat []uint32

var natZero = nat{0}

func (z nat) isZero() bool { return len(z) == 1 && z[0] == 0 }

// trim drops most significant zero digits, keeping at least one digit.
func (z nat) trim() nat {
	n := len(z)
	for n > 1 && z[n-1] == 0 {
		n--
	}
	if n == 0 {
		return natZero
	}
	return z[:n]
}

func cmpNat(x, y nat) int {
	if len(x) != len(y) {
		if len(x) < len(y) {
			return -1
		}
		return 1
	}
	for i := len(x) - 1; i >= 0; i-- {
		switch {
		case x[i] < y[i]:
			return -1
		case x[i] > y[i]:
			return 1
		}
	}
	return 0
}

func addNat(x, y nat) nat {
	if len(x) < len(y) {
		x, y = y, x
	}
	z := make(nat, len(x)+1)
	var carry uint32
	for i := range x {
		d := x[i] + carry
		if i < len(y) {
			d += y[i]
		}
		if d >= Radix {
			d -= Radix
			carry = 1
		} else {
			carry = 0
		}
		z[i] = d
	}
	z[len(x)] = carry
	return z.trim()
}

// subNat returns x - y. It requires x >= y.
func subNat(x, y nat) nat {
	z := make(nat, len(x))
	var borrow uint32
	for i := range x {
		var yi uint32
		if i < len(y) {
			yi = y[i]
		}
		if x[i] < yi+borrow {
			z[i] = Radix + x[i] - yi - borrow
			borrow = 1
		} else {
			z[i] = x[i] - yi - borrow
			borrow = 0
		}
	}
	return z.trim()
}

func mulNat(x, y nat) nat {
	if x.isZero() || y.isZero() {
		return natZero
	}
	z := make(nat, len(x)+len(y))
	for i := range x {
		var carry uint64
		for j := 0; j < len(y) || carry != 0; j++ {
			cur := uint64(z[i+j]) + carry
			if j < len(y) {
				cur += uint64(x[i]) * uint64(y[j])
			}
			z[i+j] = uint32(cur % Radix)
			carry = cur / Radix
		}
	}
	return z.trim()
}

// mulDigit returns x * m for a single digit 0 <= m < Radix.
func mulDigit(x nat, m uint32) nat {
	if m == 0 || x.isZero() {
		return natZero
	}
	z := make(nat, len(x)+1)
	var carry uint32
	for i := range x {
		cur := x[i]*m + carry
		z[i] = cur % Radix
		carry = cur / Radix
	}
	z[len(x)] = carry
	return z.trim()
}

// shiftIn returns x*Radix + d.
func shiftIn(x nat, d uint32) nat {
	z := make(nat, len(x)+1)
	z[0] = d
	copy(z[1:], x)
	return z.trim()
}

// quoRemNat performs long division of x by a non-zero y. For each dividend
// digit, most significant first, the quotient digit is the largest q in
// [0, Radix) with y*q <= remainder, found by binary search.
func quoRemNat(x, y nat) (q, r nat) {
	q = make(nat, len(x))
	r = natZero
	for i := len(x) - 1; i >= 0; i-- {
		r = shiftIn(r, x[i])
		var digit uint32
		lo, hi := 0, Radix-1
		for lo <= hi {
			m := (lo + hi) / 2
			if cmpNat(mulDigit(y, uint32(m)), r) <= 0 {
				digit = uint32(m)
				lo = m + 1
			} else {
				hi = m - 1
			}
		}
		q[i] = digit
		r = subNat(r, mulDigit(y, digit))
	}
	return q.trim(), r
}
