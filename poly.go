// Package polylib implements generic univariate polynomial algebra.
//
// A Polynomial[E] holds coefficients from any ring satisfying
// ring.Ring[E], from machine integers to residues mod n, matrices, or
// polynomials themselves (see PolyRing). Arithmetic and substitution are
// pure: operations return new values and never mutate their operands, so
// polynomials may be shared freely, including across goroutines.
package polylib

import (
	"errors"
	"math"

	"github.com/inttik/polylib/ring"
)

// ErrNegativeExponent reports a coefficient lookup at a negative power.
var ErrNegativeExponent = errors.New("negative exponent")

// Polynomial is a finite-degree univariate polynomial over a coefficient
// ring. Coefficients are ordered from lowest to highest degree, so
// [1, 2, 3] is 1 + 2x + 3x^2.
//
// The representation is always normalized: it is never empty, and no
// trailing coefficient is the ring zero except in the single-element zero
// polynomial. Both operands of a binary operation must be built over the
// same ring; rings whose elements carry their own context (Zn, Matrix)
// report cross-ring mixes through their own errors.
type Polynomial[E any] struct {
	r      ring.Ring[E]
	coeffs []E
}

// New builds a polynomial over r from ascending-degree coefficients. The
// slice is copied and trailing zero coefficients are trimmed; an empty or
// all-zero input yields the zero polynomial.
func New[E any](r ring.Ring[E], coeffs []E) Polynomial[E] {
	inner := make([]E, len(coeffs))
	copy(inner, coeffs)

	return Polynomial[E]{r: r, coeffs: trim(r, inner)}
}

// Constant returns the degree-0 polynomial holding value.
func Constant[E any](r ring.Ring[E], value E) Polynomial[E] {
	return New(r, []E{value})
}

// Zero returns the zero polynomial over r.
func Zero[E any](r ring.Ring[E]) Polynomial[E] {
	return Polynomial[E]{r: r, coeffs: []E{r.Zero()}}
}

// One returns the constant-one polynomial over r.
func One[E any](r ring.Ring[E]) Polynomial[E] {
	return Constant(r, r.One())
}

// trim drops trailing zero coefficients, keeping at least one element.
// Callers own the slice.
func trim[E any](r ring.Ring[E], coeffs []E) []E {
	zero := r.Zero()

	last := len(coeffs) - 1
	for last >= 0 && r.Equal(coeffs[last], zero) {
		last--
	}

	if last < 0 {
		return []E{zero}
	}

	return coeffs[:last+1]
}

// Ring returns the coefficient ring the polynomial was built over.
func (p Polynomial[E]) Ring() ring.Ring[E] {
	return p.r
}

// IsZero reports whether p is the zero polynomial.
func (p Polynomial[E]) IsZero() bool {
	return len(p.coeffs) == 1 && p.r.Equal(p.coeffs[0], p.r.Zero())
}

// Degree returns the degree of the polynomial. The zero polynomial reports
// math.MinInt, so degree arithmetic on it never looks like a valid degree.
func (p Polynomial[E]) Degree() int {
	if p.IsZero() {
		return math.MinInt
	}

	return len(p.coeffs) - 1
}

// Coeff returns the coefficient of x^power. Powers beyond the degree hold
// the ring zero. Negative powers fail with ErrNegativeExponent.
func (p Polynomial[E]) Coeff(power int) (E, error) {
	if power < 0 {
		var zero E
		return zero, ErrNegativeExponent
	}

	if power >= len(p.coeffs) {
		return p.r.Zero(), nil
	}

	return p.coeffs[power], nil
}

// LeadCoeff returns the highest-degree coefficient, or the ring zero for
// the zero polynomial.
func (p Polynomial[E]) LeadCoeff() E {
	return p.coeffs[len(p.coeffs)-1]
}

// Coeffs returns a copy of the normalized coefficient slice, lowest degree
// first.
func (p Polynomial[E]) Coeffs() []E {
	out := make([]E, len(p.coeffs))
	copy(out, p.coeffs)

	return out
}

// Equal reports whether p and q have identical coefficients under the
// ring's equality.
func (p Polynomial[E]) Equal(q Polynomial[E]) bool {
	if len(p.coeffs) != len(q.coeffs) {
		return false
	}

	for i := range p.coeffs {
		if !p.r.Equal(p.coeffs[i], q.coeffs[i]) {
			return false
		}
	}

	return true
}
