package ring

import "golang.org/x/exp/constraints"

// Integers is the ring of Go signed machine integers. Arithmetic follows
// machine semantics, including overflow wrap-around.
type Integers[T constraints.Signed] struct{}

var _ NegRing[int] = Integers[int]{}

func (Integers[T]) Zero() T {
	return 0
}

func (Integers[T]) One() T {
	return 1
}

func (Integers[T]) Add(a, b T) (T, error) {
	return a + b, nil
}

func (Integers[T]) Mul(a, b T) (T, error) {
	return a * b, nil
}

func (Integers[T]) Neg(a T) (T, error) {
	return -a, nil
}

func (Integers[T]) Equal(a, b T) bool {
	return a == b
}
