// Package bls12377 adapts the BLS12-377 scalar field from gnark-crypto to
// the ring capability contract, so fr.Element values can serve directly as
// polynomial coefficients.
package bls12377

import (
	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"

	"github.com/inttik/polylib/ring"
)

// Field is the ring of fr.Element values. All operations are total.
type Field struct{}

var _ ring.NegRing[fr.Element] = Field{}

// NewElement is the canonical way to create an element with a small value.
func NewElement(v uint64) fr.Element {
	return fr.NewElement(v)
}

func (Field) Zero() fr.Element {
	return fr.Element{}
}

func (Field) One() fr.Element {
	var e fr.Element
	e.SetOne()

	return e
}

func (Field) Add(a, b fr.Element) (fr.Element, error) {
	var c fr.Element
	c.Add(&a, &b)

	return c, nil
}

func (Field) Mul(a, b fr.Element) (fr.Element, error) {
	var c fr.Element
	c.Mul(&a, &b)

	return c, nil
}

func (Field) Neg(a fr.Element) (fr.Element, error) {
	var c fr.Element
	c.Neg(&a)

	return c, nil
}

func (Field) Equal(a, b fr.Element) bool {
	return a.Equal(&b)
}
