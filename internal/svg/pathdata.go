// seehuhn.de/go/epicycles - Fourier epicycle animations of traced shapes
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package svg

import (
	"fmt"
	"math"
	"strconv"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// lexer splits SVG number lists and path data into commands and numbers.
type lexer struct {
	s   string
	pos int
}

func isSep(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == ','
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func (l *lexer) skipSep() {
	for l.pos < len(l.s) && isSep(l.s[l.pos]) {
		l.pos++
	}
}

func (l *lexer) done() bool {
	l.skipSep()
	return l.pos >= len(l.s)
}

// command returns the next path command letter, if there is one.
func (l *lexer) command() (byte, bool) {
	l.skipSep()
	if l.pos < len(l.s) && isLetter(l.s[l.pos]) && l.s[l.pos] != 'e' && l.s[l.pos] != 'E' {
		c := l.s[l.pos]
		l.pos++
		return c, true
	}
	return 0, false
}

func (l *lexer) number() (float64, error) {
	l.skipSep()
	start := l.pos
	i := l.pos
	if i < len(l.s) && (l.s[i] == '-' || l.s[i] == '+') {
		i++
	}
	digits := 0
	for i < len(l.s) && l.s[i] >= '0' && l.s[i] <= '9' {
		i++
		digits++
	}
	if i < len(l.s) && l.s[i] == '.' {
		i++
		for i < len(l.s) && l.s[i] >= '0' && l.s[i] <= '9' {
			i++
			digits++
		}
	}
	if digits == 0 {
		return 0, fmt.Errorf("%w: expected number at offset %d", ErrSyntax, start)
	}
	if i < len(l.s) && (l.s[i] == 'e' || l.s[i] == 'E') {
		j := i + 1
		if j < len(l.s) && (l.s[j] == '-' || l.s[j] == '+') {
			j++
		}
		if j < len(l.s) && l.s[j] >= '0' && l.s[j] <= '9' {
			for j < len(l.s) && l.s[j] >= '0' && l.s[j] <= '9' {
				j++
			}
			i = j
		}
	}
	l.pos = i
	x, err := strconv.ParseFloat(l.s[start:i], 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrSyntax, err)
	}
	return x, nil
}

// flag reads an arc flag, which may be written without a separator.
func (l *lexer) flag() (bool, error) {
	l.skipSep()
	if l.pos < len(l.s) {
		switch l.s[l.pos] {
		case '0':
			l.pos++
			return false, nil
		case '1':
			l.pos++
			return true, nil
		}
	}
	return false, fmt.Errorf("%w: expected arc flag at offset %d", ErrSyntax, l.pos)
}

func (l *lexer) point() (vec.Vec2, error) {
	x, err := l.number()
	if err != nil {
		return vec.Vec2{}, err
	}
	y, err := l.number()
	if err != nil {
		return vec.Vec2{}, err
	}
	return vec.Vec2{X: x, Y: y}, nil
}

// numbers parses a whitespace or comma separated list.
func numbers(s string) ([]float64, error) {
	l := &lexer{s: s}
	var res []float64
	for !l.done() {
		x, err := l.number()
		if err != nil {
			return nil, err
		}
		res = append(res, x)
	}
	return res, nil
}

func apply(m matrix.Matrix, v vec.Vec2) vec.Vec2 {
	x, y := m.Apply(v.X, v.Y)
	return vec.Vec2{X: x, Y: y}
}

// builder appends transformed segments to a path.
type builder struct {
	m matrix.Matrix
	p *path.Data
}

func (b *builder) moveTo(v vec.Vec2) {
	b.p = b.p.MoveTo(apply(b.m, v))
}

func (b *builder) lineTo(v vec.Vec2) {
	b.p = b.p.LineTo(apply(b.m, v))
}

func (b *builder) quadTo(c, v vec.Vec2) {
	b.p = b.p.QuadTo(apply(b.m, c), apply(b.m, v))
}

func (b *builder) cubeTo(c1, c2, v vec.Vec2) {
	b.p = b.p.CubeTo(apply(b.m, c1), apply(b.m, c2), apply(b.m, v))
}

func (b *builder) close() {
	b.p = b.p.Close()
}

// parsePathData converts the d attribute of a path element, mapping all
// points through m.
func parsePathData(d string, m matrix.Matrix) (*path.Data, error) {
	b := &builder{m: m, p: &path.Data{}}
	l := &lexer{s: d}

	var cur, start, ctrl vec.Vec2
	var prev byte
	open := false
	for !l.done() {
		cmd, ok := l.command()
		if !ok {
			// repeated arguments continue the previous command
			switch prev {
			case 0, 'z', 'Z':
				return nil, fmt.Errorf("%w: path data must start with a command", ErrSyntax)
			case 'M':
				cmd = 'L'
			case 'm':
				cmd = 'l'
			default:
				cmd = prev
			}
		}
		rel := cmd >= 'a'
		abs := func(v vec.Vec2) vec.Vec2 {
			if rel {
				return v.Add(cur)
			}
			return v
		}
		if !open && cmd != 'M' && cmd != 'm' && cmd != 'Z' && cmd != 'z' {
			b.moveTo(cur)
			start = cur
			open = true
		}

		switch cmd {
		case 'M', 'm':
			v, err := l.point()
			if err != nil {
				return nil, err
			}
			cur = abs(v)
			start = cur
			b.moveTo(cur)
			open = true
		case 'L', 'l':
			v, err := l.point()
			if err != nil {
				return nil, err
			}
			cur = abs(v)
			b.lineTo(cur)
		case 'H', 'h':
			x, err := l.number()
			if err != nil {
				return nil, err
			}
			if rel {
				x += cur.X
			}
			cur.X = x
			b.lineTo(cur)
		case 'V', 'v':
			y, err := l.number()
			if err != nil {
				return nil, err
			}
			if rel {
				y += cur.Y
			}
			cur.Y = y
			b.lineTo(cur)
		case 'C', 'c', 'S', 's':
			var c1 vec.Vec2
			if cmd == 'C' || cmd == 'c' {
				v, err := l.point()
				if err != nil {
					return nil, err
				}
				c1 = abs(v)
			} else if prev == 'C' || prev == 'c' || prev == 'S' || prev == 's' {
				c1 = cur.Mul(2).Sub(ctrl)
			} else {
				c1 = cur
			}
			v2, err := l.point()
			if err != nil {
				return nil, err
			}
			v, err := l.point()
			if err != nil {
				return nil, err
			}
			c2, end := abs(v2), abs(v)
			b.cubeTo(c1, c2, end)
			ctrl, cur = c2, end
		case 'Q', 'q', 'T', 't':
			var c vec.Vec2
			if cmd == 'Q' || cmd == 'q' {
				v, err := l.point()
				if err != nil {
					return nil, err
				}
				c = abs(v)
			} else if prev == 'Q' || prev == 'q' || prev == 'T' || prev == 't' {
				c = cur.Mul(2).Sub(ctrl)
			} else {
				c = cur
			}
			v, err := l.point()
			if err != nil {
				return nil, err
			}
			end := abs(v)
			b.quadTo(c, end)
			ctrl, cur = c, end
		case 'A', 'a':
			rx, err := l.number()
			if err != nil {
				return nil, err
			}
			ry, err := l.number()
			if err != nil {
				return nil, err
			}
			phi, err := l.number()
			if err != nil {
				return nil, err
			}
			large, err := l.flag()
			if err != nil {
				return nil, err
			}
			sweep, err := l.flag()
			if err != nil {
				return nil, err
			}
			v, err := l.point()
			if err != nil {
				return nil, err
			}
			end := abs(v)
			arcTo(b, cur, rx, ry, phi, large, sweep, end)
			cur = end
		case 'Z', 'z':
			if open {
				b.close()
			}
			cur = start
			open = false
		default:
			return nil, fmt.Errorf("%w: unknown path command %q", ErrSyntax, cmd)
		}
		prev = cmd
	}
	return b.p, nil
}

// arcTo appends an elliptical arc from p0 to p1 as cubic Bézier curves of
// at most 90 degrees each, following the endpoint to centre conversion of
// the SVG implementation notes.
func arcTo(b *builder, p0 vec.Vec2, rx, ry, phiDeg float64, large, sweep bool, p1 vec.Vec2) {
	if p0 == p1 {
		return
	}
	rx, ry = math.Abs(rx), math.Abs(ry)
	if rx == 0 || ry == 0 {
		b.lineTo(p1)
		return
	}

	sinPhi, cosPhi := math.Sincos(phiDeg * math.Pi / 180)
	dx := (p0.X - p1.X) / 2
	dy := (p0.Y - p1.Y) / 2
	x1 := cosPhi*dx + sinPhi*dy
	y1 := -sinPhi*dx + cosPhi*dy

	if lambda := x1*x1/(rx*rx) + y1*y1/(ry*ry); lambda > 1 {
		s := math.Sqrt(lambda)
		rx *= s
		ry *= s
	}

	num := rx*rx*ry*ry - rx*rx*y1*y1 - ry*ry*x1*x1
	den := rx*rx*y1*y1 + ry*ry*x1*x1
	coef := math.Sqrt(max(0, num/den))
	if large == sweep {
		coef = -coef
	}
	cxp := coef * rx * y1 / ry
	cyp := -coef * ry * x1 / rx
	cx := cosPhi*cxp - sinPhi*cyp + (p0.X+p1.X)/2
	cy := sinPhi*cxp + cosPhi*cyp + (p0.Y+p1.Y)/2

	angle := func(ux, uy, vx, vy float64) float64 {
		return math.Atan2(ux*vy-uy*vx, ux*vx+uy*vy)
	}
	ux, uy := (x1-cxp)/rx, (y1-cyp)/ry
	vx, vy := (-x1-cxp)/rx, (-y1-cyp)/ry
	theta := angle(1, 0, ux, uy)
	delta := angle(ux, uy, vx, vy)
	if !sweep && delta > 0 {
		delta -= 2 * math.Pi
	} else if sweep && delta < 0 {
		delta += 2 * math.Pi
	}

	point := func(a float64) vec.Vec2 {
		sa, ca := math.Sincos(a)
		return vec.Vec2{
			X: cx + rx*ca*cosPhi - ry*sa*sinPhi,
			Y: cy + rx*ca*sinPhi + ry*sa*cosPhi,
		}
	}
	tangent := func(a float64) vec.Vec2 {
		sa, ca := math.Sincos(a)
		return vec.Vec2{
			X: -rx*sa*cosPhi - ry*ca*sinPhi,
			Y: -rx*sa*sinPhi + ry*ca*cosPhi,
		}
	}

	n := int(math.Ceil(math.Abs(delta) / (math.Pi / 2)))
	step := delta / float64(n)
	k := 4.0 / 3.0 * math.Tan(step/4)
	for i := range n {
		a1 := theta + float64(i)*step
		a2 := a1 + step
		end := point(a2)
		if i == n-1 {
			end = p1
		}
		b.cubeTo(point(a1).Add(tangent(a1).Mul(k)), point(a2).Sub(tangent(a2).Mul(k)), end)
	}
}
