package ring

import (
	"errors"
	"math/big"
	"math/bits"

	latring "github.com/tuneinsight/lattigo/v6/ring"
)

// PrimeField is the field of uint64 residues mod a prime p. It satisfies
// NegRing[uint64] and additionally exposes the field-only operations
// (inversion, exponentiation, roots of unity).
type PrimeField struct {
	prime     uint64
	generator uint64
	factors   []uint64
}

var _ NegRing[uint64] = (*PrimeField)(nil)

var (
	errPrimeTooLarge = errors.New("supporting up to 63-bit prime")
	errNotPrime      = errors.New("this ring requires a prime modulus")
)

const maxBitUsage = 63

func NewPrimeField(prime uint64) (*PrimeField, error) {
	if prime > (1 << maxBitUsage) {
		return nil, errPrimeTooLarge
	}

	b := (&big.Int{}).SetUint64(prime)
	// ProbablyPrime is 100% accurate for 64-bit numbers, so one base check
	// is enough.
	if !b.ProbablyPrime(1) {
		return nil, errNotPrime
	}

	g, factors, err := latring.PrimitiveRoot(prime, nil)
	if err != nil {
		return nil, err
	}

	return &PrimeField{
		prime:     prime,
		generator: g,
		factors:   factors,
	}, nil
}

func (f *PrimeField) Modulus() uint64 {
	return f.prime
}

func (f *PrimeField) Generator() uint64 {
	return f.generator
}

func (f *PrimeField) Factors() []uint64 {
	return f.factors
}

func (f *PrimeField) Reduce(val uint64) uint64 {
	return val % f.prime
}

func (f *PrimeField) Zero() uint64 {
	return 0
}

func (f *PrimeField) One() uint64 {
	return 1
}

func (f *PrimeField) Add(a, b uint64) (uint64, error) {
	a, b = f.Reduce(a), f.Reduce(b)

	tmp := a + b // can't overflow, both operands are below 2^63.
	if tmp >= f.prime {
		tmp -= f.prime
	}

	return tmp, nil
}

func (f *PrimeField) Mul(a, b uint64) (uint64, error) {
	a, b = f.Reduce(a), f.Reduce(b)
	if a == 0 || b == 0 {
		return 0, nil
	}

	return fieldMul(a, b, f.prime), nil
}

func fieldMul(a, b uint64, mod uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	_, rem := bits.Div64(hi, lo, mod)

	return rem
}

func (f *PrimeField) Neg(a uint64) (uint64, error) {
	a = f.Reduce(a)
	if a == 0 {
		return 0, nil
	}

	return f.prime - a, nil
}

func (f *PrimeField) Sub(a, b uint64) uint64 {
	a, b = f.Reduce(a), f.Reduce(b)
	if a < b {
		return f.prime - (b - a)
	}

	return a - b
}

func (f *PrimeField) Equal(a, b uint64) bool {
	return f.Reduce(a) == f.Reduce(b)
}

// Pow computes base^exp by squaring.
// https://en.wikipedia.org/wiki/Exponentiation_by_squaring
func (f *PrimeField) Pow(base, exp uint64) uint64 {
	mod := f.prime
	base = f.Reduce(base)

	x := uint64(1)
	for exp > 0 {
		if exp%2 == 1 {
			x = fieldMul(x, base, mod)
		}

		base = fieldMul(base, base, mod)
		exp /= 2
	}

	return x % mod
}

var errZeroInverse = errors.New("zero has no inverse")

// Inverse returns a^-1 mod p.
func (f *PrimeField) Inverse(a uint64) (uint64, error) {
	// Fermat's little theorem: a^(p) = a (mod p)
	// thus:
	// a^(p-2)*a^p = a^(2p-2) = a^(p-1)^2 = 1*1=1 (mod p)
	// a^(p-2) is the inverse of a
	a = f.Reduce(a)
	if a == 0 {
		return 0, errZeroInverse
	}

	return f.Pow(a, f.prime-2), nil
}

var (
	errNotPowerOfTwo = errors.New("n must be a power of 2")
	errNotDivisible  = errors.New("n must divide p-1")
	errNTooSmall     = errors.New("n must be >= 2")
)

func (f *PrimeField) GetRootOfUnity(n uint64) (uint64, error) {
	if n == 0 || n == 1 {
		return 0, errNTooSmall
	}

	if !isPowerOfTwo(n) {
		return 0, errNotPowerOfTwo
	}

	if (f.prime-1)%n != 0 {
		return 0, errNotDivisible
	}

	// The nth root of unity is the generator raised to the power of (prime-1)/n
	// since g^(x) == 1 (mod p) iff x=p-1, then w=g^((p-1)/n) is not 1, and the
	// following n powers of w != 1 too.
	// proof is by contradiction to g being the generator of the field.
	return f.Pow(f.generator, (f.prime-1)/n), nil
}

func isPowerOfTwo(n uint64) bool {
	// https://graphics.stanford.edu/~seander/bithacks.html#DetermineIfPowerOf2
	return n != 0 && (n&(n-1)) == 0
}
