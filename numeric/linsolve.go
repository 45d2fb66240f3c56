package numeric

import "errors"

// ErrSingular indicates a 2x2 linear system has no unique solution (the
// coefficient matrix is singular to within Err, e.g. two parallel lines).
var ErrSingular = errors.New("numeric: singular 2x2 system")

// Err is the numeric epsilon below which a determinant is treated as zero.
const Err = 1e-10

// SolveLinear2 solves the 2x2 system
//
//	a00*x + a01*y = b0
//	a10*x + a11*y = b1
//
// by Cramer's rule, the 2-variable specialization of Gaussian elimination.
// Returns ErrSingular if the determinant is within Err of zero.
func SolveLinear2(a00, a01, a10, a11, b0, b1 float64) (x, y float64, err error) {
	det := a00*a11 - a01*a10
	if det > -Err && det < Err {
		return 0, 0, ErrSingular
	}
	x = (b0*a11 - a01*b1) / det
	y = (a00*b1 - b0*a10) / det
	return x, y, nil
}
