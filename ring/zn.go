package ring

import "lukechampine.com/uint128"

// Zn is a residue mod n. Each value carries its modulus, and values combine
// only when their moduli agree; there is no silent re-reduction.
type Zn struct {
	value   uint64
	modulus uint64
}

// NewZn returns value mod modulus.
func NewZn(value, modulus uint64) (Zn, error) {
	if modulus == 0 {
		return Zn{}, ErrZeroModulus
	}

	return Zn{value: value % modulus, modulus: modulus}, nil
}

func (z Zn) Value() uint64 {
	return z.value
}

func (z Zn) Modulus() uint64 {
	return z.modulus
}

// ZnRing is the ring of residues mod a fixed n. Intermediate sums and
// products are computed in 128 bits, so any uint64 modulus is safe.
type ZnRing struct {
	modulus uint64
}

var _ NegRing[Zn] = ZnRing{}

func NewZnRing(modulus uint64) (ZnRing, error) {
	if modulus == 0 {
		return ZnRing{}, ErrZeroModulus
	}

	return ZnRing{modulus: modulus}, nil
}

func (r ZnRing) Modulus() uint64 {
	return r.modulus
}

func (r ZnRing) Zero() Zn {
	return Zn{value: 0, modulus: r.modulus}
}

func (r ZnRing) One() Zn {
	return Zn{value: 1 % r.modulus, modulus: r.modulus}
}

func (r ZnRing) checkOperands(a, b Zn) error {
	if a.modulus != r.modulus || b.modulus != r.modulus {
		return ErrMismatchedModulus
	}

	return nil
}

func (r ZnRing) Add(a, b Zn) (Zn, error) {
	if err := r.checkOperands(a, b); err != nil {
		return Zn{}, err
	}

	sum := uint128.From64(a.value).Add64(b.value).Mod64(r.modulus)

	return Zn{value: sum, modulus: r.modulus}, nil
}

func (r ZnRing) Mul(a, b Zn) (Zn, error) {
	if err := r.checkOperands(a, b); err != nil {
		return Zn{}, err
	}

	prod := uint128.From64(a.value).Mul64(b.value).Mod64(r.modulus)

	return Zn{value: prod, modulus: r.modulus}, nil
}

func (r ZnRing) Neg(a Zn) (Zn, error) {
	if a.modulus != r.modulus {
		return Zn{}, ErrMismatchedModulus
	}

	if a.value == 0 {
		return a, nil
	}

	return Zn{value: r.modulus - a.value, modulus: r.modulus}, nil
}

func (r ZnRing) Equal(a, b Zn) bool {
	return a == b
}
