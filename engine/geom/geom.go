package geom

import "github.com/chewxy/math32"

// Vec2 is a 2D point or direction with float32 components.
type Vec2 struct {
	X, Y float32
}

func V2(x, y float32) Vec2 { return Vec2{X: x, Y: y} }

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

func (v Vec2) MulScalar(s float32) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Len returns the euclidean length of v.
func (v Vec2) Len() float32 { return math32.Sqrt(v.X*v.X + v.Y*v.Y) }

// Normal returns v scaled to unit length. The zero vector has no
// direction; Normal returns it unchanged rather than dividing by zero.
func (v Vec2) Normal() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

// Rect is an axis-aligned rectangle spanning (X1,Y1)-(X2,Y2).
// Callers are expected to keep X1 <= X2 and Y1 <= Y2; this is not enforced.
type Rect struct {
	X1, Y1, X2, Y2 float32
}

func R(x1, y1, x2, y2 float32) Rect { return Rect{X1: x1, Y1: y1, X2: x2, Y2: y2} }

func (r Rect) W() float32 { return r.X2 - r.X1 }
func (r Rect) H() float32 { return r.Y2 - r.Y1 }

// Translate returns r moved by (dx, dy).
func (r Rect) Translate(dx, dy float32) Rect {
	return Rect{r.X1 + dx, r.Y1 + dy, r.X2 + dx, r.Y2 + dy}
}

// Line is a segment between two points. It is degenerate when P1 == P2.
type Line struct {
	P1, P2 Vec2
}

func L(x1, y1, x2, y2 float32) Line {
	return Line{P1: Vec2{x1, y1}, P2: Vec2{x2, y2}}
}

// Dir returns the unit direction from P1 to P2, or the zero vector for a
// degenerate line.
func (l Line) Dir() Vec2 { return l.P2.Sub(l.P1).Normal() }
