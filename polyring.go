package polylib

import "github.com/inttik/polylib/ring"

// PolyRing presents Polynomial[E] itself as a coefficient ring: zero is the
// zero polynomial, one the constant-one polynomial, and addition and
// multiplication are the polynomial operations. This is what turns
// composition into ordinary Horner evaluation, and nesting it yields
// multivariate polynomials (Polynomial[Polynomial[E]]).
type PolyRing[E any] struct {
	base ring.Ring[E]
}

var _ ring.NegRing[Polynomial[int]] = PolyRing[int]{}

// NewPolyRing returns the ring of polynomials over base.
func NewPolyRing[E any](base ring.Ring[E]) PolyRing[E] {
	return PolyRing[E]{base: base}
}

// Base returns the coefficient ring.
func (r PolyRing[E]) Base() ring.Ring[E] {
	return r.base
}

func (r PolyRing[E]) Zero() Polynomial[E] {
	return Zero(r.base)
}

func (r PolyRing[E]) One() Polynomial[E] {
	return One(r.base)
}

func (r PolyRing[E]) Add(a, b Polynomial[E]) (Polynomial[E], error) {
	return a.Add(b)
}

func (r PolyRing[E]) Mul(a, b Polynomial[E]) (Polynomial[E], error) {
	return a.Mul(b)
}

func (r PolyRing[E]) Neg(a Polynomial[E]) (Polynomial[E], error) {
	return a.Neg()
}

func (r PolyRing[E]) Equal(a, b Polynomial[E]) bool {
	return a.Equal(b)
}
