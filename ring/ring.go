// Package ring defines the coefficient capability contract consumed by the
// polynomial engine, together with a set of reference ring implementations
// (machine integers, residues mod n, square matrices, prime fields).
package ring

import "errors"

// Ring is the minimal capability a coefficient type must expose: the two
// identities, addition and multiplication. Operations are methods on a ring
// object rather than on elements, so rings whose identities need runtime
// context (a modulus, a matrix dimension) can supply it.
//
// Ring laws (associativity, commutativity of addition, identity behaviour)
// are assumed, never verified. Add and Mul report precondition violations of
// the concrete ring (mismatched moduli, incompatible shapes) and nothing
// else; for total rings the error is always nil.
type Ring[E any] interface {
	Zero() E
	One() E

	Add(a, b E) (E, error)
	Mul(a, b E) (E, error)

	Equal(a, b E) bool
}

// NegRing extends Ring with additive inverses. Negation is optional:
// polynomial subtraction is available only over rings implementing it.
type NegRing[E any] interface {
	Ring[E]

	Neg(a E) (E, error)
}

var ErrMismatchedModulus = errors.New("mismatched moduli")
var ErrDimensionMismatch = errors.New("incompatible matrix dimensions")
var ErrIncompatibleType = errors.New("type does not satisfy the required ring capability")
var ErrZeroModulus = errors.New("modulus must be non-zero")
