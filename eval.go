package polylib

import "github.com/inttik/polylib/ring"

// Evaluate substitutes x for the variable of p, computing the result in the
// target ring. lift embeds a coefficient of p into the target ring; it must
// map the coefficient zero to the target zero and commute with the ring
// operations.
//
// The single Horner loop covers every substitution case: target == p.Ring()
// with an identity lift is plain evaluation, a different ring (say,
// matrices over the coefficient ring, with a scalar-matrix lift) is
// type-changing substitution, and target == PolyRing is composition.
//
// The accumulator starts from the lifted leading coefficient and folds
// acc = acc*x + lift(c) downward, spending exactly Degree(p)
// multiplications and additions in the target ring. Errors from lift or
// from the target ring propagate unchanged.
func Evaluate[T, E any](p Polynomial[T], target ring.Ring[E], lift func(T) (E, error), x E) (E, error) {
	var zero E

	if target == nil || lift == nil {
		return zero, ring.ErrIncompatibleType
	}

	acc, err := lift(p.coeffs[len(p.coeffs)-1])
	if err != nil {
		return zero, err
	}

	for i := len(p.coeffs) - 2; i >= 0; i-- {
		if acc, err = target.Mul(acc, x); err != nil {
			return zero, err
		}

		c, err := lift(p.coeffs[i])
		if err != nil {
			return zero, err
		}

		if acc, err = target.Add(acc, c); err != nil {
			return zero, err
		}
	}

	return acc, nil
}

// EvaluateRight is the mirrored Horner fold acc = x*acc + lift(c): each
// coefficient lands to the right of its power, reading the polynomial as
// x^k·c_k instead of c_k·x^k. Over commutative target rings it agrees with
// Evaluate; over non-commutative ones (e.g. polynomials with matrix
// coefficients) the two are distinct substitutions. Operation count and
// error behaviour match Evaluate.
func EvaluateRight[T, E any](p Polynomial[T], target ring.Ring[E], lift func(T) (E, error), x E) (E, error) {
	var zero E

	if target == nil || lift == nil {
		return zero, ring.ErrIncompatibleType
	}

	acc, err := lift(p.coeffs[len(p.coeffs)-1])
	if err != nil {
		return zero, err
	}

	for i := len(p.coeffs) - 2; i >= 0; i-- {
		if acc, err = target.Mul(x, acc); err != nil {
			return zero, err
		}

		c, err := lift(p.coeffs[i])
		if err != nil {
			return zero, err
		}

		if acc, err = target.Add(acc, c); err != nil {
			return zero, err
		}
	}

	return acc, nil
}

// Eval evaluates p at a point of its own coefficient ring.
func (p Polynomial[E]) Eval(x E) (E, error) {
	return Evaluate(p, p.r, func(c E) (E, error) { return c, nil }, x)
}

// Compose substitutes q for the variable of p, returning p∘q. The degree
// grows multiplicatively: Degree(p)*Degree(q) at most, with equality when
// no cancellation occurs in the ring.
func (p Polynomial[E]) Compose(q Polynomial[E]) (Polynomial[E], error) {
	lift := func(c E) (Polynomial[E], error) { return Constant(p.r, c), nil }

	return Evaluate(p, NewPolyRing(p.r), lift, q)
}
