package scheme

import "fmt"

// Element is the set of numeric types a secret and its shares may hold.
type Element interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Array is a dense row-major array with a fixed shape. Secrets and shares
// are both Arrays of the same element type.
type Array[T Element] struct {
	Shape []int
	Data  []T
}

// NewArray wraps data in an Array. With no shape the array is
// one-dimensional. The data slice is not copied.
func NewArray[T Element](data []T, shape ...int) (*Array[T], error) {
	if len(shape) == 0 {
		shape = []int{len(data)}
	}
	n, err := shapeSize(shape)
	if err != nil {
		return nil, err
	}
	if n != len(data) {
		return nil, fmt.Errorf("shape %v holds %d elements, got %d", shape, n, len(data))
	}
	return &Array[T]{Shape: append([]int(nil), shape...), Data: data}, nil
}

// Size returns the number of elements.
func (a *Array[T]) Size() int {
	if a == nil {
		return 0
	}
	return len(a.Data)
}

// Clone returns a deep copy of a.
func (a *Array[T]) Clone() *Array[T] {
	if a == nil {
		return nil
	}
	return &Array[T]{
		Shape: append([]int(nil), a.Shape...),
		Data:  append([]T(nil), a.Data...),
	}
}

// Reshape returns a copy of a with a new shape holding the same number of
// elements.
func (a *Array[T]) Reshape(shape ...int) (*Array[T], error) {
	n, err := shapeSize(shape)
	if err != nil {
		return nil, err
	}
	if n != a.Size() {
		return nil, fmt.Errorf("cannot reshape %d elements into %v", a.Size(), shape)
	}
	c := a.Clone()
	c.Shape = append([]int(nil), shape...)
	return c, nil
}

func shapeSize(shape []int) (int, error) {
	n := 1
	for _, d := range shape {
		if d < 0 {
			return 0, fmt.Errorf("negative dimension in shape %v", shape)
		}
		n *= d
	}
	return n, nil
}

// Matrix is a dense row-major two-dimensional array.
type Matrix[T Element] struct {
	Rows int
	Cols int
	Data []T
}

// NewMatrix returns a zeroed rows x cols matrix.
func NewMatrix[T Element](rows, cols int) *Matrix[T] {
	return &Matrix[T]{Rows: rows, Cols: cols, Data: make([]T, rows*cols)}
}

// Row returns row i. The returned slice aliases the matrix.
func (m *Matrix[T]) Row(i int) []T {
	return m.Data[i*m.Cols : (i+1)*m.Cols]
}

// At returns the element at row i, column j.
func (m *Matrix[T]) At(i, j int) T {
	return m.Data[i*m.Cols+j]
}
