package ring

// Matrix holds a rows×cols array of some base ring's elements in row-major
// order. Matrices are immutable once constructed; the arithmetic that
// combines them lives on MatrixRing.
type Matrix[E any] struct {
	rows, cols int
	data       []E
}

// NewMatrix builds a rows×cols matrix from row-major data. The data slice is
// copied. Fails with ErrDimensionMismatch when len(data) != rows*cols.
func NewMatrix[E any](rows, cols int, data []E) (Matrix[E], error) {
	if rows <= 0 || cols <= 0 || len(data) != rows*cols {
		return Matrix[E]{}, ErrDimensionMismatch
	}

	inner := make([]E, len(data))
	copy(inner, data)

	return Matrix[E]{rows: rows, cols: cols, data: inner}, nil
}

func (m Matrix[E]) Rows() int {
	return m.rows
}

func (m Matrix[E]) Cols() int {
	return m.cols
}

// At returns the element at row i, column j.
func (m Matrix[E]) At(i, j int) E {
	return m.data[i*m.cols+j]
}

// Data returns the elements in a row-major copy.
func (m Matrix[E]) Data() []E {
	out := make([]E, len(m.data))
	copy(out, m.data)

	return out
}

// MatrixRing is the ring of dim×dim matrices over a base ring. Zero is the
// zero matrix and One the identity. Base-ring failures propagate unchanged.
type MatrixRing[E any] struct {
	dim  int
	base Ring[E]
}

var _ NegRing[Matrix[int]] = MatrixRing[int]{}

func NewMatrixRing[E any](base Ring[E], dim int) (MatrixRing[E], error) {
	if dim <= 0 {
		return MatrixRing[E]{}, ErrDimensionMismatch
	}

	return MatrixRing[E]{dim: dim, base: base}, nil
}

func (r MatrixRing[E]) Dim() int {
	return r.dim
}

func (r MatrixRing[E]) Base() Ring[E] {
	return r.base
}

// Full returns the dim×dim matrix with every entry set to value.
func (r MatrixRing[E]) Full(value E) Matrix[E] {
	data := make([]E, r.dim*r.dim)
	for i := range data {
		data[i] = value
	}

	return Matrix[E]{rows: r.dim, cols: r.dim, data: data}
}

// Eye returns the dim×dim matrix with value on the main diagonal and zeros
// elsewhere. Eye(c) is the scalar matrix c·I, which is also how a base-ring
// element is lifted into the matrix ring during substitution.
func (r MatrixRing[E]) Eye(value E) Matrix[E] {
	m := r.Full(r.base.Zero())
	for i := 0; i < r.dim; i++ {
		m.data[i*r.dim+i] = value
	}

	return m
}

func (r MatrixRing[E]) Zero() Matrix[E] {
	return r.Full(r.base.Zero())
}

func (r MatrixRing[E]) One() Matrix[E] {
	return r.Eye(r.base.One())
}

// Add is the element-wise sum. Shapes must match exactly.
func (r MatrixRing[E]) Add(a, b Matrix[E]) (Matrix[E], error) {
	if a.rows != b.rows || a.cols != b.cols {
		return Matrix[E]{}, ErrDimensionMismatch
	}

	data := make([]E, len(a.data))

	var err error
	for i := range data {
		if data[i], err = r.base.Add(a.data[i], b.data[i]); err != nil {
			return Matrix[E]{}, err
		}
	}

	return Matrix[E]{rows: a.rows, cols: a.cols, data: data}, nil
}

// Mul is the standard matrix product. Requires a.Cols() == b.Rows().
func (r MatrixRing[E]) Mul(a, b Matrix[E]) (Matrix[E], error) {
	if a.cols != b.rows {
		return Matrix[E]{}, ErrDimensionMismatch
	}

	data := make([]E, a.rows*b.cols)

	for i := 0; i < a.rows; i++ {
		for j := 0; j < b.cols; j++ {
			acc := r.base.Zero()

			for k := 0; k < a.cols; k++ {
				term, err := r.base.Mul(a.data[i*a.cols+k], b.data[k*b.cols+j])
				if err != nil {
					return Matrix[E]{}, err
				}

				if acc, err = r.base.Add(acc, term); err != nil {
					return Matrix[E]{}, err
				}
			}

			data[i*b.cols+j] = acc
		}
	}

	return Matrix[E]{rows: a.rows, cols: b.cols, data: data}, nil
}

// Neg negates element-wise. Fails with ErrIncompatibleType when the base
// ring has no negation.
func (r MatrixRing[E]) Neg(a Matrix[E]) (Matrix[E], error) {
	base, ok := r.base.(NegRing[E])
	if !ok {
		return Matrix[E]{}, ErrIncompatibleType
	}

	data := make([]E, len(a.data))

	var err error
	for i := range data {
		if data[i], err = base.Neg(a.data[i]); err != nil {
			return Matrix[E]{}, err
		}
	}

	return Matrix[E]{rows: a.rows, cols: a.cols, data: data}, nil
}

func (r MatrixRing[E]) Equal(a, b Matrix[E]) bool {
	if a.rows != b.rows || a.cols != b.cols {
		return false
	}

	for i := range a.data {
		if !r.base.Equal(a.data[i], b.data[i]) {
			return false
		}
	}

	return true
}
