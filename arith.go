package polylib

import "github.com/inttik/polylib/ring"

// Add returns p + q. Missing coefficients count as ring zeros; the result
// is normalized, which matters when coefficients cancel exactly (e.g. in
// modular rings).
func (p Polynomial[E]) Add(q Polynomial[E]) (Polynomial[E], error) {
	long, short := p.coeffs, q.coeffs
	if len(short) > len(long) {
		long, short = short, long
	}

	zero := p.r.Zero()
	out := make([]E, len(long))

	var err error
	for i := range long {
		rhs := zero
		if i < len(short) {
			rhs = short[i]
		}

		// the tail is summed against zero rather than copied, so every
		// coefficient passes the ring's operand checks.
		if out[i], err = p.r.Add(long[i], rhs); err != nil {
			return Polynomial[E]{}, err
		}
	}

	return Polynomial[E]{r: p.r, coeffs: trim(p.r, out)}, nil
}

// Neg returns -p. Fails with ring.ErrIncompatibleType when the coefficient
// ring has no negation.
func (p Polynomial[E]) Neg() (Polynomial[E], error) {
	nr, ok := p.r.(ring.NegRing[E])
	if !ok {
		return Polynomial[E]{}, ring.ErrIncompatibleType
	}

	out := make([]E, len(p.coeffs))

	var err error
	for i, c := range p.coeffs {
		if out[i], err = nr.Neg(c); err != nil {
			return Polynomial[E]{}, err
		}
	}

	// negation never introduces or removes zero coefficients.
	return Polynomial[E]{r: p.r, coeffs: out}, nil
}

// Sub returns p - q, defined as p + (-q). Requires the coefficient ring to
// implement negation, failing with ring.ErrIncompatibleType otherwise.
func (p Polynomial[E]) Sub(q Polynomial[E]) (Polynomial[E], error) {
	nq, err := q.Neg()
	if err != nil {
		return Polynomial[E]{}, err
	}

	return p.Add(nq)
}

// MulScalar multiplies every coefficient by scalar on the right (the
// coefficient is the left factor, which matters for non-commutative rings
// such as matrices).
func (p Polynomial[E]) MulScalar(scalar E) (Polynomial[E], error) {
	out := make([]E, len(p.coeffs))

	var err error
	for i, c := range p.coeffs {
		if out[i], err = p.r.Mul(c, scalar); err != nil {
			return Polynomial[E]{}, err
		}
	}

	return Polynomial[E]{r: p.r, coeffs: trim(p.r, out)}, nil
}

// Mul returns the product p * q by convolution: the coefficient of x^k is
// the sum over i+j=k of p[i]*q[j]. The result degree is at most
// Degree(p)+Degree(q); trimming is mandatory since zero-divisors in the
// ring can cancel the leading term.
func (p Polynomial[E]) Mul(q Polynomial[E]) (Polynomial[E], error) {
	out := make([]E, len(p.coeffs)+len(q.coeffs)-1)
	for i := range out {
		out[i] = p.r.Zero()
	}

	for i, a := range p.coeffs {
		for j, b := range q.coeffs {
			term, err := p.r.Mul(a, b)
			if err != nil {
				return Polynomial[E]{}, err
			}

			if out[i+j], err = p.r.Add(out[i+j], term); err != nil {
				return Polynomial[E]{}, err
			}
		}
	}

	return Polynomial[E]{r: p.r, coeffs: trim(p.r, out)}, nil
}

// Pow raises p to the k-th power by squaring. Pow(0) is the constant-one
// polynomial.
func (p Polynomial[E]) Pow(k uint) (Polynomial[E], error) {
	acc := One(p.r)
	base := p

	var err error
	for k > 0 {
		if k&1 == 1 {
			if acc, err = acc.Mul(base); err != nil {
				return Polynomial[E]{}, err
			}
		}

		k >>= 1
		if k == 0 {
			break
		}

		if base, err = base.Mul(base); err != nil {
			return Polynomial[E]{}, err
		}
	}

	return acc, nil
}
