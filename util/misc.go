package util

func IfThenElse[T any](condition bool, a T, b T) T {
	if condition {
		return a
	}
	return b
}

func MakeMatrix2D[T any](a int, b int) [][]T {
	matrix := make([][]T, a)
	for i := range matrix {
		matrix[i] = make([]T, b)
	}
	return matrix
}

// IsRectangular reports whether m has exactly rows rows of exactly cols entries.
func IsRectangular[T any](m [][]T, rows int, cols int) bool {
	if len(m) != rows {
		return false
	}
	for _, r := range m {
		if len(r) != cols {
			return false
		}
	}
	return true
}

// MaxAbsDiff is the largest elementwise absolute difference between two
// matrices of the same shape.
func MaxAbsDiff(a, b [][]float64) float64 {
	max := 0.0
	for y := range a {
		for x := range a[y] {
			max = Max(max, Abs(a[y][x]-b[y][x]))
		}
	}
	return max
}
