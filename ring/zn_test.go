package ring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewZn(t *testing.T) {
	a := assert.New(t)

	z, err := NewZn(7, 5)
	a.NoError(err)
	a.Equal(uint64(2), z.Value())
	a.Equal(uint64(5), z.Modulus())

	_, err = NewZn(7, 0)
	a.ErrorIs(err, ErrZeroModulus)

	_, err = NewZnRing(0)
	a.ErrorIs(err, ErrZeroModulus)
}

func TestZnOps(t *testing.T) {
	a := assert.New(t)

	r, err := NewZnRing(5)
	a.NoError(err)

	mustZn := func(v uint64) Zn {
		z, err := NewZn(v, 5)
		a.NoError(err)

		return z
	}

	t.Run("identities", func(t *testing.T) {
		a.Equal(uint64(0), r.Zero().Value())
		a.Equal(uint64(1), r.One().Value())

		sum, err := r.Add(mustZn(3), r.Zero())
		a.NoError(err)
		a.Equal(mustZn(3), sum)

		prod, err := r.Mul(mustZn(3), r.One())
		a.NoError(err)
		a.Equal(mustZn(3), prod)
	})

	t.Run("wrapAround", func(t *testing.T) {
		sum, err := r.Add(mustZn(4), mustZn(4))
		a.NoError(err)
		a.Equal(uint64(3), sum.Value())

		prod, err := r.Mul(mustZn(4), mustZn(4))
		a.NoError(err)
		a.Equal(uint64(1), prod.Value())
	})

	t.Run("negation", func(t *testing.T) {
		neg, err := r.Neg(mustZn(2))
		a.NoError(err)
		a.Equal(uint64(3), neg.Value())

		neg, err = r.Neg(r.Zero())
		a.NoError(err)
		a.Equal(uint64(0), neg.Value())

		sum, err := r.Add(mustZn(2), neg)
		a.NoError(err)
		a.Equal(uint64(2), sum.Value())
	})
}

func TestZnMismatchedModulus(t *testing.T) {
	a := assert.New(t)

	r5, err := NewZnRing(5)
	a.NoError(err)

	in5, err := NewZn(3, 5)
	a.NoError(err)

	in7, err := NewZn(3, 7)
	a.NoError(err)

	_, err = r5.Add(in5, in7)
	a.ErrorIs(err, ErrMismatchedModulus)

	_, err = r5.Mul(in7, in5)
	a.ErrorIs(err, ErrMismatchedModulus)

	_, err = r5.Neg(in7)
	a.ErrorIs(err, ErrMismatchedModulus)
}

func TestZnLargeModulus(t *testing.T) {
	a := assert.New(t)

	const mod = ^uint64(0) - 58 // close to 2^64

	r, err := NewZnRing(mod)
	a.NoError(err)

	big, err := NewZn(mod-1, mod)
	a.NoError(err)

	// (mod-1) + (mod-1) = mod-2, overflows 64 bits on the way.
	sum, err := r.Add(big, big)
	a.NoError(err)
	a.Equal(mod-2, sum.Value())

	// (mod-1)^2 = (-1)^2 = 1 (mod mod).
	prod, err := r.Mul(big, big)
	a.NoError(err)
	a.Equal(uint64(1), prod.Value())
}
