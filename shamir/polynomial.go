package shamir

import (
	"errors"

	"github.com/f3rmion/sss/field"
)

// evalPolynomial evaluates coeffs (lowest degree first) at x using Horner's
// method.
func (s *Scheme[T]) evalPolynomial(coeffs []field.Element, x field.Element) field.Element {
	result := s.field.NewElement().Set(coeffs[len(coeffs)-1])
	for i := len(coeffs) - 2; i >= 0; i-- {
		result = s.field.NewElement().Mul(result, x)
		result = s.field.NewElement().Add(result, coeffs[i])
	}
	return result
}

// lagrangeBasis returns, for every point x_i, the coefficients (lowest
// degree first) of the Lagrange basis polynomial
//
//	L_i(x) = prod_{m != i} (x - x_m) / (x_i - x_m)
//
// so that the polynomial through (x_i, y_i) has coefficient j equal to
// sum_i y_i * L_i[j].
func (s *Scheme[T]) lagrangeBasis(points []int) ([][]field.Element, error) {
	xs := make([]field.Element, len(points))
	for i, p := range points {
		xs[i] = s.field.NewElement().SetUint64(uint64(p))
	}

	basis := make([][]field.Element, len(xs))
	for i := range xs {
		poly := []field.Element{s.field.NewElement().SetUint64(1)}
		den := s.field.NewElement().SetUint64(1)

		for m := range xs {
			if m == i {
				continue
			}
			poly = s.mulLinear(poly, xs[m])
			diff := s.field.NewElement().Sub(xs[i], xs[m])
			den = s.field.NewElement().Mul(den, diff)
		}

		if den.IsZero() {
			return nil, errors.New("duplicate evaluation point")
		}
		denInv, err := s.field.NewElement().Invert(den)
		if err != nil {
			return nil, err
		}
		for j := range poly {
			poly[j] = s.field.NewElement().Mul(poly[j], denInv)
		}
		basis[i] = poly
	}
	return basis, nil
}

// mulLinear returns poly * (x - a).
func (s *Scheme[T]) mulLinear(poly []field.Element, a field.Element) []field.Element {
	out := make([]field.Element, len(poly)+1)
	for k := range out {
		out[k] = s.field.NewElement()
	}
	for k, c := range poly {
		// shift: c*x^(k+1)
		out[k+1] = s.field.NewElement().Add(out[k+1], c)
		// constant: -a*c*x^k
		ac := s.field.NewElement().Mul(a, c)
		out[k] = s.field.NewElement().Sub(out[k], ac)
	}
	return out
}
