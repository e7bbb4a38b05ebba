package voronoi

import (
	"math"

	"github.com/pkg/errors"
)

// Circumcircle ищет описанную окружность через пересечение серединных перпендикуляров
// к сторонам A-C и B-C.
func (t Triangle) Circumcircle(eps float64) (Circle, error) {
	a, b, c := t.A, t.B, t.C

	num1 := a.X - c.X
	den1 := c.Y - a.Y
	num2 := b.X - c.X
	den2 := c.Y - b.Y

	if t.IsDegenerate(eps) {
		return Circle{}, errors.Wrapf(ErrDegenerateGeometry, "triangle %v is flat", t)
	}

	// сторона считается горизонтальной относительно своей длины
	flat1 := nearZero(den1, a.Dist(c))
	flat2 := nearZero(den2, b.Dist(c))
	if flat1 && flat2 {
		return Circle{}, errors.Wrapf(ErrDegenerateGeometry, "triangle %v", t)
	}

	var x, y float64
	switch {
	case flat1:
		// перпендикуляр к A-C вертикальный
		m2 := num2 / den2
		c2 := (c.Y + b.Y - (b.X+c.X)*m2) / 2
		x = (a.X + c.X) / 2
		y = m2*x + c2
	case flat2:
		// перпендикуляр к B-C вертикальный
		m1 := num1 / den1
		c1 := (c.Y + a.Y - (a.X+c.X)*m1) / 2
		x = (b.X + c.X) / 2
		y = m1*x + c1
	default:
		m1 := num1 / den1
		m2 := num2 / den2
		if m1 == m2 {
			return Circle{}, errors.Wrapf(ErrDegenerateGeometry, "triangle %v has parallel bisectors", t)
		}
		c1 := (c.Y + a.Y - (a.X+c.X)*m1) / 2
		c2 := (c.Y + b.Y - (b.X+c.X)*m2) / 2
		x = (c2 - c1) / (m1 - m2)
		y = m1*x + c1
	}

	center := Point{X: x, Y: y}
	if !center.finite() {
		return Circle{}, errors.Wrapf(ErrDegenerateGeometry, "triangle %v circumcenter is not finite", t)
	}

	return Circle{Center: center, Radius: center.Dist(a)}, nil
}

// nearZero - проекция v пренебрежимо мала по сравнению с длиной стороны
func nearZero(v, length float64) bool {
	return math.Abs(v) <= slopeTolerance*length
}

const slopeTolerance = 1e-8
